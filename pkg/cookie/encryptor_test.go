package cookie_test

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/securecookies/pkg/cookie"
)

// testEncryptionKey is a base64-encoded 256-bit AES key.
var testEncryptionKey = base64.StdEncoding.EncodeToString([]byte("abcdef0123456789abcdef0123456789"))

func newTestEncryptor(t *testing.T, opts ...cookie.EncryptorOption) *cookie.Encryptor {
	t.Helper()
	e, err := cookie.NewEncryptor(newTestSigner(t, time.Hour), testEncryptionKey, opts...)
	require.NoError(t, err)
	return e
}

func TestNewEncryptor_KeyValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid 32-byte key", testEncryptionKey, false},
		{"31 bytes", base64.StdEncoding.EncodeToString(make([]byte, 31)), true},
		{"33 bytes", base64.StdEncoding.EncodeToString(make([]byte, 33)), true},
		{"empty", "", true},
		{"not base64", "!!definitely-not-base64!!", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := cookie.NewEncryptor(newTestSigner(t, time.Hour), tt.key)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewEncryptor_NilSigner(t *testing.T) {
	t.Parallel()
	_, err := cookie.NewEncryptor(nil, testEncryptionKey)
	require.ErrorIs(t, err, cookie.ErrNoSigner)
}

func TestEncryptor_RoundTrip(t *testing.T) {
	t.Parallel()
	e := newTestEncryptor(t)

	tests := []struct {
		name  string
		value string
	}{
		{"simple", "user123"},
		{"empty", ""},
		{"contains pipes", "alice|admin|eu-west"},
		{"unicode", "héllo wörld 🌍"},
		{"exactly one block", strings.Repeat("a", 16)},
		{"long payload", strings.Repeat("session-data-", 50)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			require.NoError(t, e.Set(w, tt.value))

			got, ok := e.GetIfGood(roundTrip(t, w))
			require.True(t, ok, "GetIfGood() must return a freshly set value")
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestEncryptor_PayloadNotReadable(t *testing.T) {
	t.Parallel()
	e := newTestEncryptor(t)

	w := httptest.NewRecorder()
	require.NoError(t, e.Set(w, "top-secret-payload"))

	wire := findCookie(t, w, "test").Value
	assert.NotContains(t, wire, "top-secret-payload", "plaintext must not appear on the wire")
}

func TestEncryptor_Absent(t *testing.T) {
	t.Parallel()
	e := newTestEncryptor(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := e.GetIfGood(r)
	assert.False(t, ok)
}

func TestEncryptor_TamperedCiphertext(t *testing.T) {
	t.Parallel()
	e := newTestEncryptor(t)

	w := httptest.NewRecorder()
	require.NoError(t, e.Set(w, "user123"))

	wire := findCookie(t, w, "test").Value

	// Flip one character inside the ciphertext (data) segment. The signer
	// rejects the value before decryption is ever attempted.
	idx := strings.IndexByte(wire, '|') / 2
	flipped := flipChar(wire, idx)

	r := requestWith("test", flipped)
	_, ok := e.GetIfGood(r)
	assert.False(t, ok, "tampered ciphertext must never decrypt")
}

func TestEncryptor_DecryptFailureAfterAuth(t *testing.T) {
	t.Parallel()

	// A correctly signed value whose data segment is not a valid
	// IV||ciphertext blob: the signature authenticates, decryption fails.
	// That is an internal error which must be logged and surfaced as
	// absent, not propagated.
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	signer := newTestSigner(t, time.Hour)
	reader, err := cookie.NewEncryptor(newTestSigner(t, time.Hour), testEncryptionKey, cookie.WithLogger(logger))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, signer.Set(w, base64.StdEncoding.EncodeToString([]byte("short"))))

	_, ok := reader.GetIfGood(roundTrip(t, w))
	assert.False(t, ok, "a post-authentication decrypt failure must fail closed")
	assert.Contains(t, logBuf.String(), "decrypt", "the internal failure must be logged")
}

func TestEncryptor_Unset(t *testing.T) {
	t.Parallel()
	e := newTestEncryptor(t)

	w := httptest.NewRecorder()
	e.Unset(w)

	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

// flipChar replaces the byte at idx with a different cookie-safe character.
func flipChar(s string, idx int) string {
	b := []byte(s)
	if b[idx] == 'A' {
		b[idx] = 'B'
	} else {
		b[idx] = 'A'
	}
	return string(b)
}
