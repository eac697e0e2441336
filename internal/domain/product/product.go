package product

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested product, category or settings
// record does not exist.
var ErrNotFound = errors.New("not found")

// lowStockThreshold is the stock level below which a product is flagged as
// running low.
const lowStockThreshold = 5

// Product represents a catalog item available for purchase.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string
	SubCategory string
	Stock       int
	ImageURL    string
	Tags        []string
	IsActive    bool
	IsAvailable bool
	CreatedAt   time.Time
}

// Listed reports whether the product is visible in the catalog.
func (p Product) Listed() bool {
	return p.IsActive && p.IsAvailable
}

// InStock reports whether at least one unit can be ordered.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// LowStock reports whether the product is in stock but below the low stock
// threshold.
func (p Product) LowStock() bool {
	return p.Stock > 0 && p.Stock < lowStockThreshold
}

// Category groups products and optionally nests subcategories.
type Category struct {
	ID            string
	Name          string
	Description   string
	ImageURL      string
	SubCategories []SubCategory
	CreatedAt     time.Time
}

// SubCategory is a named subdivision of a Category.
type SubCategory struct {
	ID          string
	Name        string
	Description string
}

// StoreSettings is the single configuration record describing the store.
type StoreSettings struct {
	StoreName      string
	StoreNameHindi string
	Tagline        string
	Description    string

	PrimaryPhone   string
	SecondaryPhone string
	WhatsAppNumber string
	Email          string
	Website        string

	Address string
	City    string
	State   string
	Pincode string

	MondayToSaturday string
	Sunday           string

	Facebook  string
	Instagram string
	Twitter   string

	MetaTitle       string
	MetaDescription string
	Keywords        []string

	CreatedAt time.Time
	UpdatedAt time.Time
	UpdatedBy string
}

// Repository defines read operations against the catalog data source.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetSettings(ctx context.Context) (*StoreSettings, error)
}
