package cookie

import (
	"crypto/cipher"
	"hash"
	"log/slog"
	"net/http"
	"time"
)

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithMaxAge sets the cookie max-age in seconds. Zero (the default) writes
// a session cookie.
func WithMaxAge(seconds int) TransportOption {
	return func(t *Transport) {
		t.maxAge = seconds
	}
}

// WithDomain sets the cookie domain attribute.
func WithDomain(domain string) TransportOption {
	return func(t *Transport) {
		t.domain = domain
	}
}

// WithSecure sets the secure flag, ensuring the cookie is only sent over HTTPS.
func WithSecure(secure bool) TransportOption {
	return func(t *Transport) {
		t.secure = secure
	}
}

// WithHTTPOnly controls JavaScript access to the cookie. Defaults to true.
func WithHTTPOnly(httpOnly bool) TransportOption {
	return func(t *Transport) {
		t.httpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute for CSRF protection.
func WithSameSite(sameSite http.SameSite) TransportOption {
	return func(t *Transport) {
		t.sameSite = sameSite
	}
}

// SignerOption configures a Signer.
type SignerOption func(*Signer)

// WithClock injects the time source used for expiration instants. Defaults
// to time.Now. Tests use it to move time around without sleeping.
func WithClock(now func() time.Time) SignerOption {
	return func(s *Signer) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHash injects the hash constructor used for both stages of the HMAC
// construction. Defaults to sha256.New.
func WithHash(newHash func() hash.Hash) SignerOption {
	return func(s *Signer) {
		if newHash != nil {
			s.newHash = newHash
		}
	}
}

// EncryptorOption configures an Encryptor.
type EncryptorOption func(*Encryptor)

// WithBlockCipher injects the block cipher factory. Defaults to
// aes.NewCipher.
func WithBlockCipher(factory func(key []byte) (cipher.Block, error)) EncryptorOption {
	return func(e *Encryptor) {
		if factory != nil {
			e.newCipher = factory
		}
	}
}

// WithLogger sets the logger used to report decryption failures on values
// the signer already authenticated. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) EncryptorOption {
	return func(e *Encryptor) {
		if logger != nil {
			e.logger = logger
		}
	}
}
