// Package secrets provides key material helpers for the secure cookie
// protocol: random key generation, base64 encoding/decoding with strict
// length validation, and derivation of independent key pairs from a single
// master secret.
//
// # Architecture
//
//  1. Generation – `GenerateKey` produces 256-bit keys from crypto/rand,
//     suitable both as AES-256 keys and as HMAC secrets.
//  2. Encoding – keys travel through configuration as standard base64
//     (`EncodeKey`/`DecodeKey`). AES keys must decode to exactly 32 bytes;
//     anything else fails with `ErrInvalidKeySize` so a misconfigured
//     process refuses to start rather than running with a weak key.
//  3. Derivation – `DeriveKeyPair` expands one master secret into separate
//     encryption and signing keys via HKDF-SHA-256 with domain-separated
//     info labels.
//
// # Usage
//
//	import "github.com/dmitrymomot/securecookies/pkg/secrets"
//
//	key, err := secrets.GenerateKey()
//	if err != nil {
//	    // handle error
//	}
//	encoded := secrets.EncodeKey(key)
//
//	// Later, at construction time:
//	key, err = secrets.DecodeKey(encoded)
//
// # Error Handling
//
// All functions wrap a package sentinel (`ErrMalformedKey`,
// `ErrInvalidKeySize`, `ErrKeyDerivationFailed`) so callers can match with
// `errors.Is`.
package secrets
