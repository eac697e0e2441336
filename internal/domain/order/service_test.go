package order

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/harshita-store/internal/domain/cart"
	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/domain/product"
)

// --- Helpers ---

type translator locale.Language

func (l translator) T(key locale.Key) string {
	return locale.T(locale.Language(l), key)
}

func newTestProduct(id, name string, price decimal.Decimal) product.Product {
	return product.Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Category:    "Groceries",
		Stock:       10,
		IsActive:    true,
		IsAvailable: true,
	}
}

func testCart(t *testing.T) cart.State {
	t.Helper()
	return cart.NewState([]cart.Item{
		{Product: newTestProduct("a", "Basmati Rice", decimal.NewFromInt(100)), Quantity: 2},
		{Product: newTestProduct("b", "Toor Dal", decimal.NewFromInt(50)), Quantity: 1},
	})
}

var testCustomer = CustomerInfo{Name: "Asha", Phone: "9876543210", Address: "12 MG Road, Jaipur"}

// --- Tests ---

func TestCompose_EmptyCart(t *testing.T) {
	svc := NewService(Config{})

	_, err := svc.Compose(cart.NewState(nil), testCustomer, translator(locale.English), nil)
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCompose_MissingField(t *testing.T) {
	tests := []struct {
		name     string
		customer CustomerInfo
		field    string
	}{
		{name: "name", customer: CustomerInfo{Phone: "1", Address: "x"}, field: "name"},
		{name: "phone blank", customer: CustomerInfo{Name: "A", Phone: "   ", Address: "x"}, field: "phone"},
		{name: "address", customer: CustomerInfo{Name: "A", Phone: "1"}, field: "address"},
	}

	svc := NewService(Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Compose(testCart(t), tt.customer, translator(locale.English), nil)

			var mfErr *MissingFieldError
			require.ErrorAs(t, err, &mfErr)
			assert.Equal(t, tt.field, mfErr.Field)
		})
	}
}

func TestComposeMessage_English(t *testing.T) {
	got := ComposeMessage(testCart(t), testCustomer, translator(locale.English))

	want := "🛒 *Place Order via WhatsApp*\n\n" +
		"*Customer Information:*\n" +
		"Full Name: Asha\n" +
		"Phone Number: 9876543210\n" +
		"Address: 12 MG Road, Jaipur\n\n" +
		"*Order Summary:*\n" +
		"• Basmati Rice - items: 2 - ₹200\n" +
		"• Toor Dal - items: 1 - ₹50\n" +
		"\n*Order Summary:*\n" +
		"Total items: 3\n" +
		"Total: ₹250\n\n" +
		"Please confirm my order and share pickup details.\nThank you!"
	assert.Equal(t, want, got)
}

func TestComposeMessage_Hindi(t *testing.T) {
	got := ComposeMessage(testCart(t), testCustomer, translator(locale.Hindi))

	assert.True(t, strings.HasPrefix(got, "🛒 *"+locale.T(locale.Hindi, locale.KeyCartPlaceOrder)+"*"))
	assert.Contains(t, got, "• Basmati Rice - "+locale.T(locale.Hindi, locale.KeyCartItems)+": 2 - ₹200\n")
	assert.True(t, strings.HasSuffix(got, "धन्यवाद!"))
}

func TestCompose_Link(t *testing.T) {
	svc := NewService(Config{})

	o, err := svc.Compose(testCart(t), testCustomer, translator(locale.English), nil)
	require.NoError(t, err)

	const prefix = "https://wa.me/918058124167?text="
	require.True(t, strings.HasPrefix(o.URL, prefix), o.URL)
	assert.NotContains(t, o.URL[len(prefix):], " ")

	decoded, err := url.QueryUnescape(o.URL[len(prefix):])
	require.NoError(t, err)
	assert.Equal(t, o.Text, decoded)
	assert.Equal(t, 3, o.TotalItems)
	assert.True(t, decimal.NewFromInt(250).Equal(o.TotalAmount))
}

func TestService_Destination(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		settings *product.StoreSettings
		want     string
	}{
		{name: "default", want: DefaultNumber},
		{name: "configured fallback", cfg: Config{FallbackNumber: "9000000001"}, want: "9000000001"},
		{name: "settings win", cfg: Config{FallbackNumber: "9000000001"}, settings: &product.StoreSettings{WhatsAppNumber: "98765 43210"}, want: "9876543210"},
		{name: "blank settings number", settings: &product.StoreSettings{}, want: DefaultNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewService(tt.cfg).Destination(tt.settings))
		})
	}
}

func TestLink(t *testing.T) {
	got := Link("https://wa.me/", "91", "8058124167", "Hi there! 2+2=4 & ₹")
	assert.Equal(t, "https://wa.me/918058124167?text=Hi%20there!%202%2B2%3D4%20%26%20%E2%82%B9", got)
}

func TestEscapeComponent_Unreserved(t *testing.T) {
	const keep = "AZaz09-_.!~*'()"
	assert.Equal(t, keep, EscapeComponent(keep))
	assert.Equal(t, "%0A%2F%3F%23", EscapeComponent("\n/?#"))
}
