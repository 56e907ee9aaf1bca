package telegram

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// confirmTTL is the window a pending confirmation token stays valid,
// per spec.md §4.9/§9: "hex token, 5-min expiry, admin-scoped".
const confirmTTL = 5 * time.Minute

// pendingConfirm is one outstanding /run or /confirm-gated action awaiting
// its matching token.
type pendingConfirm struct {
	adminID   int64
	command   string
	args      []string
	createdAt time.Time
}

func (p pendingConfirm) expired(now time.Time) bool {
	return now.Sub(p.createdAt) > confirmTTL
}

// confirmCache holds pending two-step confirmations. Per the
// already-recorded REDESIGN FLAGS resolution, this replaces a
// process-wide global map: it lives on Handler and is pruned lazily on
// every access rather than by a background goroutine.
type confirmCache struct {
	mu      sync.Mutex
	pending map[string]pendingConfirm
}

func newConfirmCache() *confirmCache {
	return &confirmCache{pending: make(map[string]pendingConfirm)}
}

// create registers a new pending confirmation and returns its token.
func (c *confirmCache) create(adminID int64, command string, args []string) (string, error) {
	token, err := randomHexToken()
	if err != nil {
		return "", fmt.Errorf("generate confirm token: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked(time.Now())
	c.pending[token] = pendingConfirm{adminID: adminID, command: command, args: args, createdAt: time.Now()}
	return token, nil
}

// resolve consumes a token if it exists, is unexpired, and belongs to
// adminID. The token is removed whether or not it resolves successfully
// — a confirm may only be used once.
func (c *confirmCache) resolve(adminID int64, token string) (pendingConfirm, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.pruneLocked(now)

	p, ok := c.pending[token]
	if !ok {
		return pendingConfirm{}, false
	}
	delete(c.pending, token)
	if p.expired(now) || p.adminID != adminID {
		return pendingConfirm{}, false
	}
	return p, true
}

// pruneLocked removes every expired entry. Callers must hold c.mu.
func (c *confirmCache) pruneLocked(now time.Time) {
	for token, p := range c.pending {
		if p.expired(now) {
			delete(c.pending, token)
		}
	}
}

// randomHexToken generates a 16-byte (32 hex char) confirmation token.
func randomHexToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
