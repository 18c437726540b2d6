package cookie

import (
	"context"
	"net/http"
	"sync"
)

type cacheContextKey struct{}

// decodeCache memoizes decode results within one logical request, keyed by
// signer instance ID. Decoding recomputes two HMACs, so handlers that call
// Get, IsExpired, and IsForged on the same request would otherwise pay for
// every call. The cache lives in the request context and is never shared
// across requests.
type decodeCache struct {
	mu      sync.Mutex
	results map[string]Result
}

func (c *decodeCache) get(id string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.results[id]
	return res, ok
}

func (c *decodeCache) put(id string, res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[id] = res
}

// WithDecodeCache returns a context carrying a fresh decode cache. Handlers
// served through Middleware get one automatically.
func WithDecodeCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, cacheContextKey{}, &decodeCache{results: make(map[string]Result)})
}

func cacheFrom(ctx context.Context) (*decodeCache, bool) {
	c, ok := ctx.Value(cacheContextKey{}).(*decodeCache)
	return c, ok
}

// Middleware installs a per-request decode cache into the request context.
// Without it every Get decodes the cookie value fresh, which is correct but
// repeats the HMAC work.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithDecodeCache(r.Context())))
	})
}
