package cart

import (
	"context"
	"sync"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/harshita-store/internal/domain/product"
)

// Storage is the durable key-value medium holding cart snapshots.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// persistTimeout bounds a snapshot write, which is detached from the caller's
// cancellation.
const persistTimeout = 5 * time.Second

// Store is the single source of truth for one session's cart. Transitions are
// applied one at a time; after each one the item snapshot is written to
// Storage. In-memory state is authoritative: write failures are logged and
// never surfaced to the caller.
type Store struct {
	storage Storage
	key     string

	mu    sync.Mutex
	state State
}

// NewStore creates a Store and hydrates it with a single read of key. An
// absent, unreadable or malformed snapshot leaves the cart empty.
func NewStore(ctx context.Context, storage Storage, key string) *Store {
	s := &Store{
		storage: storage,
		key:     key,
		state:   withTotals(nil),
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	lg := zctx.From(ctx).With(zap.String("key", s.key))

	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		lg.Warn("Read cart snapshot", zap.Error(err))
		return
	}
	if !ok {
		return
	}

	items, err := DecodeItems([]byte(raw))
	if err != nil {
		lg.Warn("Malformed cart snapshot, starting empty", zap.Error(err))
		return
	}
	next, err := Reduce(s.state, Load{Items: items})
	if err != nil {
		lg.Warn("Invalid cart snapshot, starting empty", zap.Error(err))
		return
	}
	s.state = next
}

// State returns a copy of the current cart state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Add puts one unit of p in the cart. It fails with *OutOfStockError when the
// cart would hold more units than p.Stock.
func (s *Store) Add(ctx context.Context, p product.Product) (State, error) {
	return s.Dispatch(ctx, Add{Product: p})
}

// Remove deletes the item for productID, if present.
func (s *Store) Remove(ctx context.Context, productID string) State {
	st, _ := s.Dispatch(ctx, Remove{ProductID: productID})
	return st
}

// SetQuantity replaces the quantity of the item for productID; quantity <= 0
// removes it.
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) State {
	st, _ := s.Dispatch(ctx, SetQuantity{ProductID: productID, Quantity: quantity})
	return st
}

// SetQuantityInStock is SetQuantity that fails with *OutOfStockError, leaving
// the cart untouched, when quantity exceeds the stock of the item in the cart.
func (s *Store) SetQuantityInStock(ctx context.Context, productID string, quantity int) (State, error) {
	return s.Dispatch(ctx, SetQuantityInStock{ProductID: productID, Quantity: quantity})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) State {
	st, _ := s.Dispatch(ctx, Clear{})
	return st
}

// Load replaces the cart contents. It fails with ErrInvalidSnapshot when items
// break the cart invariants, leaving the cart untouched.
func (s *Store) Load(ctx context.Context, items []Item) (State, error) {
	return s.Dispatch(ctx, Load{Items: items})
}

// Dispatch applies cmd and persists the result. On error the state is left
// unchanged and nothing is written.
func (s *Store) Dispatch(ctx context.Context, cmd Command) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.state, cmd)
	if err != nil {
		return s.state.clone(), err
	}
	s.state = next

	// Written under the lock so snapshots reach storage in transition order.
	s.persist(ctx, cmd, next)
	return next.clone(), nil
}

// persist writes the snapshot of st. Clear drops the key instead.
func (s *Store) persist(ctx context.Context, cmd Command, st State) {
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	var err error
	if _, ok := cmd.(Clear); ok {
		err = s.storage.Delete(wctx, s.key)
	} else {
		err = s.storage.Set(wctx, s.key, string(EncodeItems(st.Items)))
	}
	if err != nil {
		zctx.From(ctx).Warn("Persist cart snapshot",
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
}
