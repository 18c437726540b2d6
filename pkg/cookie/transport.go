package cookie

import (
	"net/http"
	"time"
)

// Transport reads and writes one named cookie against an HTTP
// request/response pair. It performs no validation of the value and no
// cryptography; the signing and encryption layers wrap it.
//
// A Transport is immutable after construction and safe for concurrent use
// across requests.
type Transport struct {
	name     string
	maxAge   int // seconds; 0 means session cookie
	domain   string
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// NewTransport creates a transport bound to the named cookie. By default it
// writes a session cookie with HttpOnly and SameSite=Lax; the path is
// always "/".
func NewTransport(name string, opts ...TransportOption) (*Transport, error) {
	if name == "" {
		return nil, ErrNoCookieName
	}

	t := &Transport{
		name:     name,
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Name returns the cookie name the transport is bound to.
func (t *Transport) Name() string {
	return t.name
}

// Get returns the raw value of the cookie, or false if the request does not
// carry it.
func (t *Transport) Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(t.name)
	if err != nil {
		// r.Cookie only ever returns http.ErrNoCookie.
		return "", false
	}
	return c.Value, true
}

// Set writes the value with the configured attributes. A zero max-age
// produces a session cookie (no Max-Age attribute on the wire).
func (t *Transport) Set(w http.ResponseWriter, value string) error {
	http.SetCookie(w, t.cookie(value, t.maxAge))
	return nil
}

// Unset rewrites the cookie with an immediate expiry so the browser
// discards it.
func (t *Transport) Unset(w http.ResponseWriter) {
	c := t.cookie("", -1)
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

func (t *Transport) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     t.name,
		Value:    value,
		Path:     "/",
		Domain:   t.domain,
		MaxAge:   maxAge,
		Secure:   t.secure,
		HttpOnly: t.httpOnly,
		SameSite: t.sameSite,
	}
}
