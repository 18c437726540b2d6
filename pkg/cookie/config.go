package cookie

import (
	"time"
)

// Config holds environment-based configuration for the cookie stack.
type Config struct {
	Name          string        `env:"COOKIE_NAME,required"`
	Domain        string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge        int           `env:"COOKIE_MAX_AGE" envDefault:"0"` // seconds; 0 = session cookie
	Secure        bool          `env:"COOKIE_SECURE" envDefault:"false"`
	TTL           time.Duration `env:"COOKIE_TTL" envDefault:"24h"`
	SigningSecret string        `env:"COOKIE_SIGNING_SECRET,required"`
	EncryptionKey string        `env:"COOKIE_ENCRYPTION_KEY" envDefault:""`
}

// transportOptions translates the config into transport options.
func (c Config) transportOptions() []TransportOption {
	opts := make([]TransportOption, 0, 3)
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(true))
	}
	return opts
}

// NewSignerFromConfig builds a Transport and Signer from configuration.
func NewSignerFromConfig(cfg Config, opts ...SignerOption) (*Signer, error) {
	transport, err := NewTransport(cfg.Name, cfg.transportOptions()...)
	if err != nil {
		return nil, err
	}
	return NewSigner(transport, cfg.SigningSecret, cfg.TTL, opts...)
}

// NewEncryptorFromConfig builds the full stack from configuration:
// transport, signer, and encryptor. Requires COOKIE_ENCRYPTION_KEY.
func NewEncryptorFromConfig(cfg Config, opts ...EncryptorOption) (*Encryptor, error) {
	signer, err := NewSignerFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewEncryptor(signer, cfg.EncryptionKey, opts...)
}
