package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/config"
	"storefront-gateway/internal/repository"
	"storefront-gateway/internal/server"
	"storefront-gateway/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Log)

	// Fallback mode keeps the storefront usable without the commerce API:
	// the clients fall back to an in-memory store seeded with sample data.
	var store *repository.Store
	if cfg.Commerce.UseFallbackData {
		db, err := repository.Open()
		if err != nil {
			log.WithError(err).Fatal("open fallback store")
		}
		store = repository.NewStore(db)
		log.Info("fallback mode enabled, sample data loaded")
	}

	clientCfg := client.Config{
		BaseURL: cfg.Commerce.BaseURL,
		Timeout: cfg.Commerce.Timeout,
		Log:     log,
	}

	var (
		productClient  client.ProductClient
		cartClient     client.CartClient
		checkoutClient client.CheckoutClient
	)
	if store != nil {
		productClient = client.NewProductClient(clientCfg, store.Products)
		cartClient = client.NewCartClient(clientCfg, store.Carts)
		checkoutClient = client.NewCheckoutClient(clientCfg, store)
	} else {
		productClient = client.NewProductClient(clientCfg, nil)
		cartClient = client.NewCartClient(clientCfg, nil)
		checkoutClient = client.NewCheckoutClient(clientCfg, nil)
	}

	productService := service.NewProductService(productClient)
	cartService := service.NewCartService(cartClient, cfg.Checkout.Currency, log)
	checkoutService := service.NewCheckoutService(cartService, checkoutClient, cfg.Checkout, log)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(productService, cartService, checkoutService, cfg.Checkout.Currency, log)

	log.WithFields(logrus.Fields{"addr": serverAddr, "env": cfg.Environment.Name}).Info("starting HTTP server")
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.WithError(err).Fatal("HTTP server shutdown error")
	}
}

func newLogger(cfg config.Log) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
