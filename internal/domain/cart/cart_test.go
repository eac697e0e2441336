package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/harshita-store/internal/domain/product"
)

// --- Helpers ---

func newTestProduct(id, name string, price int64) product.Product {
	return product.Product{
		ID:          id,
		Name:        name,
		Price:       decimal.NewFromInt(price),
		Category:    "Groceries",
		Stock:       100,
		Tags:        []string{"test"},
		IsActive:    true,
		IsAvailable: true,
	}
}

func mustReduce(t *testing.T, s State, cmds ...Command) State {
	t.Helper()
	for _, cmd := range cmds {
		var err error
		s, err = Reduce(s, cmd)
		require.NoError(t, err)
	}
	return s
}

func assertTotals(t *testing.T, s State, items int, amount int64) {
	t.Helper()
	assert.Equal(t, items, s.TotalItems, "total items")
	assert.True(t, decimal.NewFromInt(amount).Equal(s.TotalAmount),
		"total amount: want %d, got %s", amount, s.TotalAmount)
}

// --- Tests ---

func TestReduce_Scenario(t *testing.T) {
	a := newTestProduct("a", "Basmati Rice", 100)
	b := newTestProduct("b", "Toor Dal", 50)

	s := mustReduce(t, State{}, Add{Product: a}, Add{Product: a}, Add{Product: b})

	require.Len(t, s.Items, 2)
	assert.Equal(t, "a", s.Items[0].Product.ID)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.True(t, decimal.NewFromInt(200).Equal(s.Items[0].Subtotal()))
	assert.Equal(t, "b", s.Items[1].Product.ID)
	assert.Equal(t, 1, s.Items[1].Quantity)
	assert.True(t, decimal.NewFromInt(50).Equal(s.Items[1].Subtotal()))
	assertTotals(t, s, 3, 250)
}

func TestReduce_AddSameProductTwice(t *testing.T) {
	p := newTestProduct("p1", "Milk", 65)

	s := mustReduce(t, State{}, Add{Product: p}, Add{Product: p})

	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assertTotals(t, s, 2, 130)
}

func TestReduce_AddOutOfStock(t *testing.T) {
	p := newTestProduct("p1", "Milk", 65)
	p.Stock = 0

	s, err := Reduce(State{}, Add{Product: p})

	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, "p1", oos.ProductID)
	assert.Equal(t, 0, oos.Stock)
	assert.True(t, s.Empty())
	assertTotals(t, s, 0, 0)
}

func TestReduce_AddBeyondStock(t *testing.T) {
	p := newTestProduct("p1", "Milk", 65)
	p.Stock = 2

	s := mustReduce(t, State{}, Add{Product: p}, Add{Product: p})
	next, err := Reduce(s, Add{Product: p})

	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, 3, oos.Requested)
	assert.Equal(t, s, next)
	assertTotals(t, next, 2, 130)
}

func TestReduce_SetQuantity(t *testing.T) {
	a := newTestProduct("a", "Rice", 100)
	b := newTestProduct("b", "Dal", 50)
	base := mustReduce(t, State{}, Add{Product: a}, Add{Product: b})

	tests := []struct {
		name      string
		quantity  int
		wantIDs   []string
		wantItems int
		wantTotal int64
	}{
		{name: "replaces quantity", quantity: 5, wantIDs: []string{"a", "b"}, wantItems: 6, wantTotal: 550},
		{name: "zero removes", quantity: 0, wantIDs: []string{"b"}, wantItems: 1, wantTotal: 50},
		{name: "negative removes", quantity: -1, wantIDs: []string{"b"}, wantItems: 1, wantTotal: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustReduce(t, base, SetQuantity{ProductID: "a", Quantity: tt.quantity})

			ids := make([]string, len(s.Items))
			for i, it := range s.Items {
				ids[i] = it.Product.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assertTotals(t, s, tt.wantItems, tt.wantTotal)
		})
	}
}

func TestReduce_SetQuantityIsNotAdditive(t *testing.T) {
	p := newTestProduct("p1", "Rice", 10)
	s := mustReduce(t, State{}, Add{Product: p}, SetQuantity{ProductID: "p1", Quantity: 3}, SetQuantity{ProductID: "p1", Quantity: 3})

	assert.Equal(t, 3, s.Items[0].Quantity)
	assertTotals(t, s, 3, 30)
}

func TestReduce_SetQuantityAbsentIsNoop(t *testing.T) {
	p := newTestProduct("p1", "Rice", 10)
	s := mustReduce(t, State{}, Add{Product: p})

	next := mustReduce(t, s, SetQuantity{ProductID: "missing", Quantity: 4})
	assert.Equal(t, s, next)
}

func TestReduce_SetQuantityInStock(t *testing.T) {
	a := newTestProduct("a", "Greek Yogurt", 85)
	a.Stock = 12
	s := mustReduce(t, State{}, Add{Product: a})

	got, err := Reduce(s, SetQuantityInStock{ProductID: "a", Quantity: 13})
	var oos *OutOfStockError
	require.ErrorAs(t, err, &oos)
	assert.Equal(t, 12, oos.Stock)
	assert.Equal(t, 13, oos.Requested)
	assertTotals(t, got, 1, 85)

	got = mustReduce(t, s, SetQuantityInStock{ProductID: "a", Quantity: 12})
	assertTotals(t, got, 12, 1020)

	got = mustReduce(t, s, SetQuantityInStock{ProductID: "a", Quantity: 0})
	assert.True(t, got.Empty())

	// Absent products have no stock to check.
	got = mustReduce(t, s, SetQuantityInStock{ProductID: "missing", Quantity: 500})
	assertTotals(t, got, 1, 85)
}

func TestReduce_RemoveAbsentIsNoop(t *testing.T) {
	p := newTestProduct("p1", "Rice", 10)
	s := mustReduce(t, State{}, Add{Product: p})

	next := mustReduce(t, s, Remove{ProductID: "missing"})
	assert.Equal(t, s, next)

	again := mustReduce(t, next, Remove{ProductID: "missing"})
	assert.Equal(t, next, again)
}

func TestReduce_Clear(t *testing.T) {
	s := mustReduce(t, State{},
		Add{Product: newTestProduct("a", "Rice", 100)},
		Add{Product: newTestProduct("b", "Dal", 50)},
		Clear{},
	)

	assert.True(t, s.Empty())
	assertTotals(t, s, 0, 0)
}

func TestReduce_LoadRecomputesTotals(t *testing.T) {
	items := []Item{
		{Product: newTestProduct("a", "Rice", 100), Quantity: 2},
		{Product: newTestProduct("b", "Dal", 50), Quantity: 3},
	}

	s := mustReduce(t, State{TotalItems: 99, TotalAmount: decimal.NewFromInt(1)}, Load{Items: items})

	assert.Equal(t, items, s.Items)
	assertTotals(t, s, 5, 350)
}

func TestReduce_LoadInvalid(t *testing.T) {
	p := newTestProduct("a", "Rice", 100)
	base := mustReduce(t, State{}, Add{Product: p})

	tests := []struct {
		name  string
		items []Item
	}{
		{name: "empty product id", items: []Item{{Product: product.Product{}, Quantity: 1}}},
		{name: "zero quantity", items: []Item{{Product: p, Quantity: 0}}},
		{name: "negative quantity", items: []Item{{Product: p, Quantity: -2}}},
		{name: "duplicate product", items: []Item{{Product: p, Quantity: 1}, {Product: p, Quantity: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Reduce(base, Load{Items: tt.items})
			require.ErrorIs(t, err, ErrInvalidSnapshot)
			assert.Equal(t, base, s)
		})
	}
}

func TestReduce_DoesNotAliasInput(t *testing.T) {
	a := newTestProduct("a", "Rice", 100)
	s1 := mustReduce(t, State{}, Add{Product: a})
	s2 := mustReduce(t, s1, Add{Product: a})

	assert.Equal(t, 1, s1.Items[0].Quantity)
	assert.Equal(t, 2, s2.Items[0].Quantity)
}
