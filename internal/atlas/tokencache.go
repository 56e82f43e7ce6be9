package atlas

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// defaultTokenTTL stays under the server's ~30 minute token expiry.
const defaultTokenTTL = 25 * time.Minute

// TokenCache holds live access tokens keyed by public API key so that
// repeated exports within one process skip the login round-trip. Tokens
// never leave the process and expire well before the server-side expiry.
type TokenCache struct {
	cache *ristretto.Cache[string, string]
	ttl   time.Duration
}

// NewTokenCache creates a token cache. A non-positive ttl selects the
// default, which stays under the server-side token expiry.
func NewTokenCache(ttl time.Duration) (*TokenCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCache{cache: cache, ttl: ttl}, nil
}

// Get returns the cached token for a public key, if still live.
func (tc *TokenCache) Get(publicKey string) (string, bool) {
	return tc.cache.Get(publicKey)
}

// Set stores a token. Ristretto applies writes asynchronously, so wait for
// the buffer to drain; token writes are rare and the cost is negligible.
func (tc *TokenCache) Set(publicKey, token string) {
	tc.cache.SetWithTTL(publicKey, token, 1, tc.ttl)
	tc.cache.Wait()
}

// Close releases the cache's internal resources.
func (tc *TokenCache) Close() {
	tc.cache.Close()
}
