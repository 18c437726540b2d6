package secrets

import "errors"

var (
	ErrMalformedKey        = errors.New("secrets.malformed_key")
	ErrInvalidKeySize      = errors.New("secrets.invalid_key_size")
	ErrKeyGenerationFailed = errors.New("secrets.key_generation_failed")
	ErrKeyDerivationFailed = errors.New("secrets.key_derivation_failed")
)
