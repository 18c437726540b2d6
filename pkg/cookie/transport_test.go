package cookie_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrymomot/securecookies/pkg/cookie"
)

func TestNewTransport(t *testing.T) {
	t.Parallel()
	_, err := cookie.NewTransport("")
	if !errors.Is(err, cookie.ErrNoCookieName) {
		t.Errorf("NewTransport() error = %v, want %v", err, cookie.ErrNoCookieName)
	}

	tr, err := cookie.NewTransport("session")
	if err != nil {
		t.Fatalf("NewTransport() error = %v", err)
	}
	if tr.Name() != "session" {
		t.Errorf("Name() = %q, want %q", tr.Name(), "session")
	}
}

func TestTransport_SetGet(t *testing.T) {
	t.Parallel()
	tr, _ := cookie.NewTransport("test")

	tests := []struct {
		name  string
		value string
	}{
		{"simple", "value"},
		{"empty value", ""},
		{"pipes and base64", "abc|123|QUJD=="},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			if err := tr.Set(w, tt.value); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

			got, ok := tr.Get(r)
			if !ok {
				t.Fatal("Get() reported absent for a set cookie")
			}
			if got != tt.value {
				t.Errorf("Get() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestTransport_GetAbsent(t *testing.T) {
	t.Parallel()
	tr, _ := cookie.NewTransport("missing")
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := tr.Get(r); ok {
		t.Error("Get() reported present for an absent cookie")
	}
}

func TestTransport_Attributes(t *testing.T) {
	t.Parallel()
	tr, _ := cookie.NewTransport("auth",
		cookie.WithDomain("example.com"),
		cookie.WithMaxAge(3600),
		cookie.WithSecure(true),
	)

	w := httptest.NewRecorder()
	_ = tr.Set(w, "value")

	c := findCookie(t, w, "auth")
	if c.Path != "/" {
		t.Errorf("Path = %q, want %q", c.Path, "/")
	}
	if c.Domain != "example.com" {
		t.Errorf("Domain = %q, want %q", c.Domain, "example.com")
	}
	if c.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want %d", c.MaxAge, 3600)
	}
	if !c.Secure {
		t.Error("Secure flag not set")
	}
	if !c.HttpOnly {
		t.Error("HttpOnly flag not set by default")
	}
}

func TestTransport_SessionCookieByDefault(t *testing.T) {
	t.Parallel()
	tr, _ := cookie.NewTransport("session")

	w := httptest.NewRecorder()
	_ = tr.Set(w, "value")

	header := w.Header().Get("Set-Cookie")
	if strings.Contains(header, "Max-Age") {
		t.Errorf("session cookie must not carry Max-Age, got %q", header)
	}
}

func TestTransport_Unset(t *testing.T) {
	t.Parallel()
	tr, _ := cookie.NewTransport("session")

	w := httptest.NewRecorder()
	tr.Unset(w)

	c := findCookie(t, w, "session")
	if c.Value != "" {
		t.Errorf("Unset() value = %q, want empty", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("Unset() MaxAge = %d, want negative (Max-Age=0 on the wire)", c.MaxAge)
	}

	header := w.Header().Get("Set-Cookie")
	if !strings.Contains(header, "Max-Age=0") {
		t.Errorf("Unset() must send Max-Age=0, got %q", header)
	}
}

// findCookie returns the named cookie written to the recorder.
func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not found in response", name)
	return nil
}
