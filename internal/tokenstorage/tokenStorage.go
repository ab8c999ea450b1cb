// Package tokenstorage keeps the in-memory denylist of revoked session
// tokens. A restart clears it, which is acceptable: tokens also carry their
// own expiry.
package tokenstorage

import "sync"

var (
	mu      sync.RWMutex
	revoked = make(map[string]struct{})
)

func Revoke(token string) {
	mu.Lock()
	defer mu.Unlock()
	revoked[token] = struct{}{}
}

func IsRevoked(token string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := revoked[token]
	return ok
}
