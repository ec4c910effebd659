package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"storefront-gateway/internal/handler"
	appmiddleware "storefront-gateway/internal/middleware"
	"storefront-gateway/internal/repository"
	"storefront-gateway/internal/service"
)

type Server struct {
	echo            *echo.Echo
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
}

func NewServer(products service.ProductService, cart service.CartService, checkout service.CheckoutService, currency string, log logrus.FieldLogger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		productHandler:  handler.NewProductHandler(products),
		cartHandler:     handler.NewCartHandler(cart, currency),
		checkoutHandler: handler.NewCheckoutHandler(checkout, currency),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/search", s.productHandler.SearchProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)

	// -------- cart --------
	cart := api.Group("/cart/:userId", appmiddleware.ResolveUser(repository.SampleUserID))
	cart.GET("", s.cartHandler.GetCart)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PATCH("/items/:itemId", s.cartHandler.UpdateQuantity)
	cart.DELETE("/items/:itemId", s.cartHandler.RemoveItem)
	cart.DELETE("", s.cartHandler.ClearCart)

	// -------- checkout --------
	checkout := api.Group("/checkout/:userId", appmiddleware.ResolveUser(repository.SampleUserID))
	checkout.POST("/session", s.checkoutHandler.BeginSession)
	checkout.GET("/session", s.checkoutHandler.GetSession)
	checkout.PUT("/session/address", s.checkoutHandler.SelectAddress)
	checkout.PUT("/session/payment", s.checkoutHandler.SelectPayment)
	checkout.POST("/session/next", s.checkoutHandler.NextStep)
	checkout.POST("/session/back", s.checkoutHandler.PrevStep)
	checkout.GET("/addresses", s.checkoutHandler.ListAddresses)
	checkout.POST("/addresses", s.checkoutHandler.AddAddress)
	checkout.POST("/orders", s.checkoutHandler.SubmitOrder)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
