package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"hash"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/securecookies/pkg/secrets"
)

// Signer wraps a Transport and applies expiration and HMAC validation to
// the cookie value (e.g. for auth/SSO). Outgoing values carry an absolute
// expiration instant and a signature; incoming values are classified as
// valid, expired, or forged.
//
// Wire format: data|epoch-millis|base64(signature). The split happens at
// the two right-most delimiters, so the data itself may contain "|".
//
// A Signer is immutable after construction and safe for concurrent use
// across requests. Each instance gets a unique ID used to key its decode
// results in the per-request cache (see Middleware).
type Signer struct {
	transport *Transport
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
	newHash   func() hash.Hash
	id        string
}

// NewSigner creates a signer over the given transport. The secret is
// supplied base64-encoded and decoded once; malformed key material fails
// construction. The validity duration is added to the clock reading at set
// time to produce the expiration instant.
func NewSigner(transport *Transport, base64Secret string, ttl time.Duration, opts ...SignerOption) (*Signer, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}
	if base64Secret == "" {
		return nil, ErrNoSecret
	}

	secret, err := secrets.DecodeSecret(base64Secret)
	if err != nil {
		return nil, err
	}

	s := &Signer{
		transport: transport,
		secret:    secret,
		ttl:       ttl,
		now:       time.Now,
		newHash:   sha256.New,
		id:        uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Set writes the value with its expiration instant and signature appended.
func (s *Signer) Set(w http.ResponseWriter, value string) error {
	ts := strconv.FormatInt(s.now().Add(s.ttl).UnixMilli(), 10)
	return s.transport.Set(w, value+"|"+ts+"|"+s.sign(ts, value))
}

// Get decodes the cookie value and reports the full classification,
// including the payload of expired or forged values. Callers that only
// want trustworthy data should use GetIfGood.
func (s *Signer) Get(r *http.Request) Result {
	if c, ok := cacheFrom(r.Context()); ok {
		if res, ok := c.get(s.id); ok {
			return res
		}
		res := s.decode(r)
		c.put(s.id, res)
		return res
	}
	return s.decode(r)
}

// GetIfGood returns the payload iff the value is present, unexpired, and
// carries a valid signature. This is the only method that hands payload
// back without the caller separately checking flags.
func (s *Signer) GetIfGood(r *http.Request) (string, bool) {
	res := s.Get(r)
	if !res.Valid() {
		return "", false
	}
	return res.Data, true
}

// IsExpired reports whether the cookie's signed expiration instant has passed.
func (s *Signer) IsExpired(r *http.Request) bool {
	return s.Get(r).Expired
}

// IsForged reports whether the cookie failed signature verification.
func (s *Signer) IsForged(r *http.Request) bool {
	return s.Get(r).Forged
}

// Unset expires the cookie.
func (s *Signer) Unset(w http.ResponseWriter) {
	s.transport.Unset(w)
}

// decode is a pure function of the raw cookie value and the current clock
// reading. No retries, no partial states.
func (s *Signer) decode(r *http.Request) Result {
	raw, ok := s.transport.Get(r)
	if !ok {
		return Result{}
	}

	last := strings.LastIndexByte(raw, '|')
	if last < 0 {
		// Unparseable values cannot be trusted, so classify as forged.
		return Result{Forged: true}
	}
	second := strings.LastIndexByte(raw[:last], '|')
	if second < 0 {
		return Result{Forged: true}
	}

	data := raw[:second]
	ts := raw[second+1 : last]
	sig := raw[last+1:]

	// Both checks always run: callers may inspect IsExpired and IsForged
	// independently even when the value is rejected overall.
	expired := s.hasPast(ts)
	expected := s.sign(ts, data)
	forged := subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1

	return Result{Data: data, Present: true, Expired: expired, Forged: forged}
}

func (s *Signer) hasPast(ts string) bool {
	expiry, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		// An unreadable expiration instant is treated as already past.
		return true
	}
	return s.now().UnixMilli() >= expiry
}

// sign derives a per-message subkey from the timestamp, then signs the full
// payload with it. The master secret never touches attacker-influenced
// input directly.
func (s *Signer) sign(ts, data string) string {
	k := s.hmac([]byte(ts), s.secret)
	return base64.StdEncoding.EncodeToString(s.hmac([]byte(ts+data), k))
}

func (s *Signer) hmac(msg, key []byte) []byte {
	mac := hmac.New(s.newHash, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
