package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/domain/product"
	"github.com/xenking/harshita-store/internal/storage/kv"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testProduct() product.Product {
	return product.Product{
		ID:          "sample-1",
		Name:        "Premium Basmati Rice (5kg)",
		Price:       decimal.NewFromInt(450),
		Stock:       25,
		IsActive:    true,
		IsAvailable: true,
	}
}

func TestRegistry_SameSessionSameStores(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(kv.NewMemory(), time.Hour)

	a := r.Get(ctx, "s1")
	b := r.Get(ctx, "s1")
	c := r.Get(ctx, "s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(kv.NewMemory(), time.Hour)

	_, err := r.Get(ctx, "s1").Cart.Add(ctx, testProduct())
	require.NoError(t, err)
	_, err = r.Get(ctx, "s1").Locale.SetLanguage(ctx, "hi")
	require.NoError(t, err)

	other := r.Get(ctx, "s2")
	assert.True(t, other.Cart.State().Empty())
	assert.Equal(t, locale.English, other.Locale.Language())
}

func TestRegistry_EvictedSessionRehydrates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(kv.NewMemory(), time.Minute)
	r.now = func() time.Time { return now }

	s := r.Get(ctx, "s1")
	_, err := s.Cart.Add(ctx, testProduct())
	require.NoError(t, err)
	_, err = s.Locale.SetLanguage(ctx, "hi")
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	r.Get(ctx, "s2")
	now = now.Add(45 * time.Second)

	assert.Equal(t, 1, r.Evict())
	assert.Equal(t, 1, r.Len())

	again := r.Get(ctx, "s1")
	assert.NotSame(t, s, again)
	assert.Equal(t, 1, again.Cart.State().TotalItems)
	assert.Equal(t, locale.Hindi, again.Locale.Language())
}

func TestRegistry_ConcurrentGet(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(kv.NewMemory(), time.Hour)

	const workers = 32
	got := make([]*Session, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			got[i] = r.Get(ctx, "shared")
		}()
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, got[0], s)
	}
}

func TestRegistry_RunStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRegistry(kv.NewMemory(), time.Millisecond)
	r.Get(ctx, "s1")

	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "abc:cart", CartKey("abc"))
	assert.Equal(t, "abc:language", LanguageKey("abc"))
}
