package cookie

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/securecookies/pkg/secrets"
)

// Encryptor wraps a Signer and adds confidentiality: the payload is
// encrypted with AES-256-CBC before signing, so the signature transitively
// authenticates the IV and ciphertext. It never talks to the transport
// directly.
//
// Only GetIfGood is offered for reads. Decryption runs strictly after the
// signer has authenticated the wire value, so the decryption path is never
// exposed to attacker-controlled ciphertext (no padding-oracle surface).
//
// An Encryptor is immutable after construction and safe for concurrent use
// across requests.
type Encryptor struct {
	signer    *Signer
	block     cipher.Block
	newCipher func(key []byte) (cipher.Block, error)
	logger    *slog.Logger
}

// NewEncryptor creates an encryptor over the given signer. The AES key is
// supplied base64-encoded and must decode to exactly 32 bytes; anything
// else fails construction immediately rather than at first use.
func NewEncryptor(signer *Signer, base64AESKey string, opts ...EncryptorOption) (*Encryptor, error) {
	if signer == nil {
		return nil, ErrNoSigner
	}

	key, err := secrets.DecodeKey(base64AESKey)
	if err != nil {
		return nil, err
	}

	e := &Encryptor{
		signer:    signer,
		newCipher: aes.NewCipher,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	block, err := e.newCipher(key)
	if err != nil {
		return nil, err
	}
	e.block = block

	return e, nil
}

// Set encrypts the value under a fresh random IV and hands
// base64(IV||ciphertext) to the wrapped signer.
func (e *Encryptor) Set(w http.ResponseWriter, value string) error {
	encrypted, err := e.encrypt([]byte(value))
	if err != nil {
		return err
	}
	return e.signer.Set(w, base64.StdEncoding.EncodeToString(encrypted))
}

// GetIfGood returns the decrypted payload iff the wrapped signer reports
// the wire value present, unexpired, and untampered. A decryption failure
// after authentication indicates a corrupted key or an internal bug, not an
// attacker; it is logged and surfaced as absent.
func (e *Encryptor) GetIfGood(r *http.Request) (string, bool) {
	ciphertext, ok := e.signer.GetIfGood(r)
	if !ok {
		return "", false
	}

	plaintext, err := e.decrypt(ciphertext)
	if err != nil {
		e.logger.ErrorContext(r.Context(), "failed to decrypt authenticated cookie value",
			slog.String("cookie", e.signer.transport.Name()),
			slog.Any("error", err))
		return "", false
	}
	return string(plaintext), true
}

// Unset expires the cookie.
func (e *Encryptor) Unset(w http.ResponseWriter) {
	e.signer.Unset(w)
}

// encrypt returns IV||ciphertext with the plaintext PKCS7-padded to the
// block size. The IV is freshly generated for every call; reuse under the
// same key would break CBC confidentiality.
func (e *Encryptor) encrypt(plaintext []byte) ([]byte, error) {
	padded := pkcs7Pad(plaintext, e.block.BlockSize())

	out := make([]byte, e.block.BlockSize()+len(padded))
	iv := out[:e.block.BlockSize()]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}

	cipher.NewCBCEncrypter(e.block, iv).CryptBlocks(out[e.block.BlockSize():], padded)
	return out, nil
}

func (e *Encryptor) decrypt(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}

	blockSize := e.block.BlockSize()
	if len(raw) < 2*blockSize || (len(raw)-blockSize)%blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", ErrDecryptionFailed, len(raw))
	}

	iv, ciphertext := raw[:blockSize], raw[blockSize:]
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(e.block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, blockSize)
	if err != nil {
		return nil, errors.Join(ErrDecryptionFailed, err)
	}
	return unpadded, nil
}

// pkcs7Pad appends 1..blockSize bytes, each holding the pad length.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, errors.New("invalid padding length")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("invalid padding byte")
		}
	}
	return data[:len(data)-padLen], nil
}
