package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Commerce Commerce `envPrefix:"COMMERCE_"`
	Checkout Checkout `envPrefix:"CHECKOUT_"`
}

// Commerce configures the upstream commerce API clients. UseFallbackData
// is resolved once at startup and injected into the clients, so tests
// can toggle it deterministically instead of reading process state.
type Commerce struct {
	BaseURL         string        `env:"BASE_URL" envDefault:"http://localhost:9090/api"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"30s"`
	UseFallbackData bool          `env:"USE_FALLBACK_DATA" envDefault:"false"`
}

type Checkout struct {
	Currency              string  `env:"CURRENCY" envDefault:"CNY"`
	FreeShippingThreshold float64 `env:"FREE_SHIPPING_THRESHOLD" envDefault:"100"`
	FlatShippingFee       float64 `env:"FLAT_SHIPPING_FEE" envDefault:"10"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
