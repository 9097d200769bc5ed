package guardrails

import (
	"fmt"
	"sync"
	"time"

	"github.com/Annapoorna04/HiperAI/internal/models"
)

// RateLimiter is a sliding-window admission controller keyed by client
// identity. Each client owns an ordered slice of request timestamps; a
// request is admitted when, after pruning entries older than the window,
// fewer than maxRequests remain. Denied attempts are not recorded, so a
// client hammering the endpoint does not extend its own lockout.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	now         func() time.Time

	mu      sync.Mutex
	clients map[string]*clientWindow
}

type clientWindow struct {
	mu         sync.Mutex
	timestamps []time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
		clients:     make(map[string]*clientWindow),
	}
}

// WithClock replaces the limiter's time source. Tests use this to step
// through window boundaries deterministically.
func (r *RateLimiter) WithClock(now func() time.Time) *RateLimiter {
	r.now = now
	return r
}

// Allow records one request attempt for clientID. The prune+append on a
// single client's window is atomic relative to that client; different
// clients only contend on the map lookup.
func (r *RateLimiter) Allow(clientID string) models.StageResult {
	now := r.now()

	r.mu.Lock()
	window, ok := r.clients[clientID]
	if !ok {
		window = &clientWindow{}
		r.clients[clientID] = window
	}
	r.mu.Unlock()

	window.mu.Lock()
	defer window.mu.Unlock()

	cutoff := now.Add(-r.window)
	kept := window.timestamps[:0]
	for _, ts := range window.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	window.timestamps = kept

	if len(window.timestamps) >= r.maxRequests {
		reason := fmt.Sprintf("Rate limit exceeded. Max %d requests per %d seconds.",
			r.maxRequests, int(r.window.Seconds()))
		return rejected("rate-limit", models.ClassRateLimited, "", reason)
	}

	window.timestamps = append(window.timestamps, now)
	return accepted("rate-limit")
}

// Sweep drops clients whose every timestamp has aged out of the window.
// Without it the map grows one entry per distinct client for the life of
// the process.
func (r *RateLimiter) Sweep() int {
	now := r.now()
	cutoff := now.Add(-r.window)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for clientID, window := range r.clients {
		window.mu.Lock()
		idle := true
		for _, ts := range window.timestamps {
			if ts.After(cutoff) {
				idle = false
				break
			}
		}
		window.mu.Unlock()

		if idle {
			delete(r.clients, clientID)
			removed++
		}
	}
	return removed
}

func (r *RateLimiter) Name() string {
	return "rate-limit"
}

func (r *RateLimiter) Check(req *Request) models.StageResult {
	return r.Allow(req.ClientID)
}
