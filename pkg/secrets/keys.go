package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the required size in bytes for AES-256 keys.
const KeySize = 32

// Domain-separation labels for HKDF so the derived encryption and signing
// keys can never collide even though they share a master secret.
const (
	encKeyInfo = "securecookies-enc-v1"
	macKeyInfo = "securecookies-mac-v1"
)

// GenerateKey creates a new random 256-bit key suitable for AES-256
// encryption or as an HMAC secret.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrKeyGenerationFailed, err)
	}
	return key, nil
}

// EncodeKey returns the base64 representation of a key, the format expected
// by the constructors in pkg/cookie and by .env files.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey decodes a base64-encoded AES-256 key and enforces the exact
// 256-bit length. Anything other than 32 decoded bytes is a configuration
// error, not a recoverable condition.
func DecodeKey(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrMalformedKey, err)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrInvalidKeySize, len(key), KeySize)
	}
	return key, nil
}

// DecodeSecret decodes a base64-encoded secret without a length constraint.
// HMAC accepts keys of any length, so signing secrets are only checked for
// valid encoding and non-emptiness.
func DecodeSecret(encoded string) ([]byte, error) {
	secret, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrMalformedKey, err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: secret is empty", ErrInvalidKeySize)
	}
	return secret, nil
}

// DeriveKeyPair expands a single master secret into independent encryption
// and signing keys using HKDF-SHA-256. Deployments that manage one secret
// can derive both keys at startup instead of configuring two values.
func DeriveKeyPair(master []byte) (encKey, macKey []byte, err error) {
	if len(master) == 0 {
		return nil, nil, fmt.Errorf("%w: master secret is empty", ErrInvalidKeySize)
	}

	encKey = make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(encKeyInfo)), encKey); err != nil {
		return nil, nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	macKey = make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(macKeyInfo)), macKey); err != nil {
		return nil, nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	return encKey, macKey, nil
}
