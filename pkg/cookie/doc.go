// Package cookie implements a stateless, tamper-evident, optionally
// confidential token protocol carried inside an HTTP cookie, suitable for
// session and SSO-style authentication without server-side storage.
//
// # Architecture
//
// The protocol is three composable layers:
//
//   - Transport: raw named cookie read/write against a request/response
//     pair. No cryptography.
//   - Signer: wraps a Transport; appends an expiration instant and a
//     keyed HMAC to outgoing values and classifies incoming values as
//     valid, expired, or forged.
//   - Encryptor: wraps a Signer; encrypts the payload with AES-256-CBC
//     before signing and decrypts only values the signer has already
//     authenticated.
//
// Writes flow Encryptor → Signer → Transport; reads flow the other way,
// with decryption gated behind signature verification so unauthenticated
// ciphertext never reaches the cipher (no padding-oracle surface).
//
// # Wire Format
//
// Signed values look like `data|epoch-millis|base64(signature)`, split at
// the two right-most delimiters so the data may itself contain "|". The
// signature uses a two-stage HMAC: a per-message subkey is derived by
// hashing the timestamp with the master secret, then that subkey signs the
// full payload. Encrypted values place `base64(IV || ciphertext)` in the
// data field.
//
// # Usage
//
//	import "github.com/dmitrymomot/securecookies/pkg/cookie"
//
//	transport, err := cookie.NewTransport("auth", cookie.WithSecure(true))
//	if err != nil { log.Fatal(err) }
//
//	signer, err := cookie.NewSigner(transport, os.Getenv("COOKIE_SIGNING_SECRET"), time.Hour)
//	if err != nil { log.Fatal(err) }
//
//	enc, err := cookie.NewEncryptor(signer, os.Getenv("COOKIE_ENCRYPTION_KEY"))
//	if err != nil { log.Fatal(err) }
//
//	http.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
//	    _ = enc.Set(w, "user123")
//	})
//
//	http.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
//	    user, ok := enc.GetIfGood(r)
//	    _ = user
//	    _ = ok
//	})
//
// Keys are supplied base64-encoded; generate them with cmd/keygen. The AES
// key must decode to exactly 32 bytes or construction fails.
//
// # Decode Results
//
// Malformed, expired, or forged values never surface as errors. Signer.Get
// returns a Result with independent Expired and Forged flags, and GetIfGood
// returns the payload only when both are clear. Wrap handlers with
// Middleware to memoize decode results for the lifetime of one request.
//
// # Concurrency
//
// All three components are constructed once per process and are immutable
// afterwards; they are safe for concurrent use by many goroutines handling
// independent requests. The only mutable state is the per-request decode
// cache, which lives in the request context and is never shared.
//
// # Configuration
//
// The Config struct carries env tags for github.com/caarlos0/env. Use
// NewSignerFromConfig or NewEncryptorFromConfig together with pkg/config
// to build the stack from the environment.
package cookie
