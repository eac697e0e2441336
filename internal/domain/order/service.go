package order

import (
	"strconv"
	"strings"

	"github.com/xenking/harshita-store/internal/domain/cart"
	"github.com/xenking/harshita-store/internal/domain/locale"
	"github.com/xenking/harshita-store/internal/domain/product"
)

const (
	DefaultEndpoint    = "https://wa.me"
	DefaultCountryCode = "91"
	DefaultNumber      = "8058124167"
)

// Translator resolves message labels in the session language.
type Translator interface {
	T(key locale.Key) string
}

// Config selects the messaging endpoint and the destination used when the
// store settings carry no number.
type Config struct {
	Endpoint       string
	CountryCode    string
	FallbackNumber string
}

// Service composes order messages.
type Service struct {
	cfg Config
}

// NewService creates an order Service, filling unset Config fields with the
// defaults.
func NewService(cfg Config) *Service {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = DefaultCountryCode
	}
	if cfg.FallbackNumber == "" {
		cfg.FallbackNumber = DefaultNumber
	}
	return &Service{cfg: cfg}
}

// Destination returns the number orders are sent to: the store settings
// WhatsApp number when set, the configured fallback otherwise.
func (s *Service) Destination(settings *product.StoreSettings) string {
	if settings != nil {
		if n := digits(settings.WhatsAppNumber); n != "" {
			return n
		}
	}
	return digits(s.cfg.FallbackNumber)
}

// Compose validates the customer, formats the order text for state and builds
// the messaging link. Nothing is stored or sent.
func (s *Service) Compose(state cart.State, customer CustomerInfo, tr Translator, settings *product.StoreSettings) (*Order, error) {
	if state.Empty() {
		return nil, ErrEmptyCart
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	dest := s.Destination(settings)
	text := ComposeMessage(state, customer, tr)
	return &Order{
		Text:        text,
		URL:         Link(s.cfg.Endpoint, s.cfg.CountryCode, dest, text),
		Destination: dest,
		TotalItems:  state.TotalItems,
		TotalAmount: state.TotalAmount,
	}, nil
}

// ComposeMessage formats the order text: a header, the customer block, one
// line per item, the totals and a closing line.
func ComposeMessage(state cart.State, customer CustomerInfo, tr Translator) string {
	var b strings.Builder
	t := tr.T

	b.WriteString("🛒 *" + t(locale.KeyCartPlaceOrder) + "*\n\n")

	b.WriteString("*" + t(locale.KeyCustomerInfo) + ":*\n")
	b.WriteString(t(locale.KeyCustomerFullName) + ": " + strings.TrimSpace(customer.Name) + "\n")
	b.WriteString(t(locale.KeyCustomerPhone) + ": " + strings.TrimSpace(customer.Phone) + "\n")
	b.WriteString(t(locale.KeyCustomerAddress) + ": " + strings.TrimSpace(customer.Address) + "\n\n")

	b.WriteString("*" + t(locale.KeyCartOrderSummary) + ":*\n")
	for _, it := range state.Items {
		b.WriteString("• " + it.Product.Name + " - " + t(locale.KeyCartItems) + ": ")
		b.WriteString(strconv.Itoa(it.Quantity) + " - ₹" + it.Subtotal().String() + "\n")
	}

	b.WriteString("\n*" + t(locale.KeyCartOrderSummary) + ":*\n")
	b.WriteString(t(locale.KeyCartTotal) + " " + t(locale.KeyCartItems) + ": " + strconv.Itoa(state.TotalItems) + "\n")
	b.WriteString(t(locale.KeyCartTotal) + ": ₹" + state.TotalAmount.String() + "\n\n")

	b.WriteString(t(locale.KeyOrderClosing))
	return b.String()
}

// Link builds <endpoint>/<countryCode><number>?text=<text>, escaping text the
// way browsers escape a URI component.
func Link(endpoint, countryCode, number, text string) string {
	return strings.TrimRight(endpoint, "/") + "/" + countryCode + number + "?text=" + EscapeComponent(text)
}

const upperhex = "0123456789ABCDEF"

// EscapeComponent percent-encodes every byte of s except ASCII letters, digits
// and - _ . ! ~ * ' ( ).
func EscapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
