package server

import (
	"errors"
	"net/http"
	"sync"
	"time"
)

var (
	errKeyRequired       = errors.New("API key required")
	errInvalidKey        = errors.New("invalid API key")
	errRateLimitExceeded = errors.New("rate limit exceeded, try again later")
)

// anonymousKey is returned by verify when no key is supplied and anonymous
// access is allowed. Anonymous requests bypass the rate limiter, matching
// how identified keys are the unit of limiting.
const anonymousKey = "anonymous"

type authenticator struct {
	keys           map[string]bool
	allowAnonymous bool
}

func newAuthenticator(keys []string, allowAnonymous bool) *authenticator {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k != "" {
			set[k] = true
		}
	}
	return &authenticator{keys: set, allowAnonymous: allowAnonymous}
}

// verify checks the X-API-Key header and returns the caller identity.
func (a *authenticator) verify(r *http.Request) (string, error) {
	key := r.Header.Get("X-API-Key")
	if key == "" {
		if a.allowAnonymous {
			return anonymousKey, nil
		}
		return "", errKeyRequired
	}
	if !a.keys[key] {
		return "", errInvalidKey
	}
	return key, nil
}

// rateLimiter is a per-key in-memory sliding window. Timestamps older than
// the window are dropped on each check.
type rateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	max      int
	window   time.Duration
	now      func() time.Time
}

func newRateLimiter(max int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		requests: make(map[string][]time.Time),
		max:      max,
		window:   window,
		now:      time.Now,
	}
}

// allow records a request for the key and reports whether it is within the
// window budget.
func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	recent := rl.requests[key][:0]
	for _, t := range rl.requests[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.max {
		rl.requests[key] = recent
		return false
	}

	rl.requests[key] = append(recent, now)
	return true
}
