package order

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned when an order is composed from a cart with no items.
var ErrEmptyCart = errors.New("cart is empty")

// MissingFieldError indicates a required customer field is blank.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("customer %s is required", e.Field)
}

// CustomerInfo is the checkout form. It is never persisted.
type CustomerInfo struct {
	Name    string
	Phone   string
	Address string
}

// Validate checks that every field is present.
func (c CustomerInfo) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"phone", c.Phone},
		{"address", c.Address},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

// Order is a composed order message and the link that opens it in the
// messaging service.
type Order struct {
	Text        string
	URL         string
	Destination string
	TotalItems  int
	TotalAmount decimal.Decimal
}
