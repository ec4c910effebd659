package middleware

import "github.com/labstack/echo/v4"

// ResolveUser rewrites the "me" alias in the userId path parameter to the
// demo user id. The storefront has no real authentication; the original
// UI hardcoded the same user.
func ResolveUser(demoUserID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			names := c.ParamNames()
			values := c.ParamValues()
			for i, name := range names {
				if name == "userId" && (values[i] == "me" || values[i] == "") {
					values[i] = demoUserID
				}
			}
			c.SetParamNames(names...)
			c.SetParamValues(values...)
			return next(c)
		}
	}
}
