// Package session maps session IDs to their cart and locale stores.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/harshita-store/internal/domain/cart"
	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/storage/kv"
)

// CartKey is the storage key of the cart snapshot of session id.
func CartKey(id string) string { return id + ":cart" }

// LanguageKey is the storage key of the language preference of session id.
func LanguageKey(id string) string { return id + ":language" }

// Session is the state owned by one visitor.
type Session struct {
	ID     string
	Cart   *cart.Store
	Locale *locale.Store
}

type entry struct {
	once    sync.Once
	session *Session
	seen    time.Time
}

// Registry creates sessions on first use and drops them from memory once they
// have been idle for longer than the idle TTL. Dropped sessions are rebuilt
// from storage on their next request.
type Registry struct {
	storage kv.Store
	idleTTL time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// NewRegistry creates a Registry over storage.
func NewRegistry(storage kv.Store, idleTTL time.Duration) *Registry {
	return &Registry{
		storage: storage,
		idleTTL: idleTTL,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Get returns the session for id, hydrating its stores from storage the first
// time it is seen.
func (r *Registry) Get(ctx context.Context, id string) *Session {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		e = &entry{}
		r.entries[id] = e
	}
	e.seen = r.now()
	r.mu.Unlock()

	e.once.Do(func() {
		e.session = &Session{
			ID:     id,
			Cart:   cart.NewStore(ctx, r.storage, CartKey(id)),
			Locale: locale.NewStore(ctx, r.storage, LanguageKey(id)),
		}
	})
	return e.session
}

// Len returns the number of sessions held in memory.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Evict drops sessions idle for longer than the idle TTL and returns how many
// were dropped.
func (r *Registry) Evict() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if e.seen.Before(cutoff) {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// Run evicts idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	lg := zctx.From(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Evict(); n > 0 {
				lg.Debug("Evicted idle sessions", zap.Int("count", n), zap.Int("remaining", r.Len()))
			}
		}
	}
}
