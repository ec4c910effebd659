package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUserRewritesAlias(t *testing.T) {
	e := echo.New()
	e.GET("/cart/:userId", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("userId"))
	}, ResolveUser("123"))

	req := httptest.NewRequest(http.MethodGet, "/cart/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "123", rec.Body.String())
}

func TestResolveUserLeavesExplicitIDAlone(t *testing.T) {
	e := echo.New()
	e.GET("/cart/:userId", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("userId"))
	}, ResolveUser("123"))

	req := httptest.NewRequest(http.MethodGet, "/cart/456", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "456", rec.Body.String())
}
