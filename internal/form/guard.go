package form

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrDuplicateSubmit = errors.New("submission already in progress")

// Guard ignores a form token while an earlier submission with the same
// token is still in flight. Tokens are reusable once that call resolves.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewGuard() *Guard { return &Guard{inflight: map[string]struct{}{}} }

// NewToken returns the value rendered into each form's hidden token field.
func NewToken() string { return uuid.NewString() }

// Begin reports false if token is already in flight. Empty tokens are never tracked.
func (g *Guard) Begin(token string) bool {
	if token == "" {
		return true
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[token]; busy {
		return false
	}
	g.inflight[token] = struct{}{}
	return true
}

func (g *Guard) End(token string) {
	if token == "" {
		return
	}
	g.mu.Lock()
	delete(g.inflight, token)
	g.mu.Unlock()
}
