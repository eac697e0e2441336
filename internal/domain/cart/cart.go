// Package cart implements the shopping cart: a pure state reducer over cart
// commands and a session-scoped Store that persists every transition.
package cart

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/harshita-store/internal/domain/product"
)

// ErrInvalidSnapshot is returned when a set of items cannot be loaded into a
// cart because it violates the cart invariants.
var ErrInvalidSnapshot = errors.New("invalid cart snapshot")

// OutOfStockError indicates an Add that would put more units of a product in
// the cart than are in stock.
type OutOfStockError struct {
	ProductID string
	Stock     int
	Requested int
}

func (e *OutOfStockError) Error() string {
	if e.Stock <= 0 {
		return fmt.Sprintf("product %s is out of stock", e.ProductID)
	}
	return fmt.Sprintf("product %s: requested %d, only %d in stock", e.ProductID, e.Requested, e.Stock)
}

// Item is one product in the cart together with its quantity.
type Item struct {
	Product  product.Product
	Quantity int
}

// Subtotal returns price × quantity for the item.
func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// State is the cart contents in insertion order plus totals derived from them.
type State struct {
	Items       []Item
	TotalItems  int
	TotalAmount decimal.Decimal
}

// Empty reports whether the cart holds no items.
func (s State) Empty() bool {
	return len(s.Items) == 0
}

// Find returns the item for productID, if present.
func (s State) Find(productID string) (Item, bool) {
	if i := s.index(productID); i >= 0 {
		return s.Items[i], true
	}
	return Item{}, false
}

func (s State) index(productID string) int {
	for i := range s.Items {
		if s.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// clone returns a State whose Items slice does not alias s.Items.
func (s State) clone() State {
	out := s
	out.Items = append([]Item(nil), s.Items...)
	return out
}

// NewState builds a State from items and computes its totals.
func NewState(items []Item) State {
	return withTotals(append([]Item(nil), items...))
}

// withTotals recomputes both totals with a full pass over items.
func withTotals(items []Item) State {
	s := State{Items: items, TotalAmount: decimal.Zero}
	for _, it := range items {
		s.TotalItems += it.Quantity
		s.TotalAmount = s.TotalAmount.Add(it.Subtotal())
	}
	return s
}

// Command is a cart state transition. The set of commands is closed.
type Command interface {
	apply(items []Item) ([]Item, error)
}

// Add puts one unit of Product in the cart, incrementing the quantity when the
// product is already present.
type Add struct {
	Product product.Product
}

// Remove deletes the item for ProductID. Removing an absent product is a no-op.
type Remove struct {
	ProductID string
}

// SetQuantity replaces the quantity of the item for ProductID. A quantity of
// zero or less removes the item.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// SetQuantityInStock is SetQuantity that fails with *OutOfStockError when
// Quantity exceeds the stock of the item in the cart.
type SetQuantityInStock struct {
	ProductID string
	Quantity  int
}

// Clear empties the cart.
type Clear struct{}

// Load replaces the cart contents with Items.
type Load struct {
	Items []Item
}

// Reduce applies cmd to s and returns the resulting state. Totals of the result
// are always recomputed from its items. On error s is returned unchanged.
func Reduce(s State, cmd Command) (State, error) {
	items, err := cmd.apply(s.Items)
	if err != nil {
		return s, err
	}
	return withTotals(items), nil
}

func (c Add) apply(items []Item) ([]Item, error) {
	p := c.Product
	out := make([]Item, 0, len(items)+1)
	found := false
	for _, it := range items {
		if it.Product.ID == p.ID {
			if it.Quantity+1 > p.Stock {
				return nil, &OutOfStockError{ProductID: p.ID, Stock: p.Stock, Requested: it.Quantity + 1}
			}
			it.Quantity++
			found = true
		}
		out = append(out, it)
	}
	if found {
		return out, nil
	}
	if !p.InStock() {
		return nil, &OutOfStockError{ProductID: p.ID, Stock: p.Stock, Requested: 1}
	}
	return append(out, Item{Product: p, Quantity: 1}), nil
}

func (c Remove) apply(items []Item) ([]Item, error) {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Product.ID != c.ProductID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (c SetQuantity) apply(items []Item) ([]Item, error) {
	if c.Quantity <= 0 {
		return Remove{ProductID: c.ProductID}.apply(items)
	}
	out := make([]Item, len(items))
	for i, it := range items {
		if it.Product.ID == c.ProductID {
			it.Quantity = c.Quantity
		}
		out[i] = it
	}
	return out, nil
}

func (c SetQuantityInStock) apply(items []Item) ([]Item, error) {
	for _, it := range items {
		if it.Product.ID == c.ProductID && c.Quantity > it.Product.Stock {
			return nil, &OutOfStockError{ProductID: c.ProductID, Stock: it.Product.Stock, Requested: c.Quantity}
		}
	}
	return SetQuantity(c).apply(items)
}

func (Clear) apply([]Item) ([]Item, error) {
	return nil, nil
}

func (c Load) apply([]Item) ([]Item, error) {
	if err := Validate(c.Items); err != nil {
		return nil, err
	}
	return append([]Item(nil), c.Items...), nil
}

// Validate checks that items can form a cart: every item names a product,
// has a positive quantity, and no product appears twice.
func Validate(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		id := it.Product.ID
		if id == "" {
			return errors.Wrapf(ErrInvalidSnapshot, "item %d: empty product id", i)
		}
		if it.Quantity <= 0 {
			return errors.Wrapf(ErrInvalidSnapshot, "item %d (%s): quantity %d", i, id, it.Quantity)
		}
		if _, dup := seen[id]; dup {
			return errors.Wrapf(ErrInvalidSnapshot, "item %d: duplicate product %s", i, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
