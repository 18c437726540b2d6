// Package config provides type-safe environment variable loading using Go
// generics. A .env file is loaded automatically on first use, then the
// caarlos0/env library parses environment variables into struct fields.
//
// # Usage
//
//	import "github.com/dmitrymomot/securecookies/pkg/config"
//
//	type CookieConfig struct {
//		Name          string        `env:"COOKIE_NAME,required"`
//		TTL           time.Duration `env:"COOKIE_TTL" envDefault:"24h"`
//		SigningSecret string        `env:"COOKIE_SIGNING_SECRET,required"`
//	}
//
//	func main() {
//		var cfg CookieConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Parse failures are wrapped with ErrParsingConfig so callers can match
// with errors.Is.
package config
