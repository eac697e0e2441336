// Package handler serves the storefront JSON API.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xenking/harshita-store/internal/domain/order"
	"github.com/xenking/harshita-store/internal/domain/product"
	"github.com/xenking/harshita-store/internal/session"
	"github.com/xenking/harshita-store/pkg/httpmiddleware"
)

// Catalog is the read side of the product catalog.
type Catalog interface {
	ActiveProducts(ctx context.Context) []product.Product
	FeaturedProducts(ctx context.Context, limit int) []product.Product
	ProductByID(ctx context.Context, id string) (product.Product, error)
	Categories(ctx context.Context) []product.Category
	CategoryByID(ctx context.Context, id string) (product.Category, error)
	CategoryProducts(ctx context.Context, categoryID, subCategory string) (product.Category, []product.Product, error)
	Settings(ctx context.Context) *product.StoreSettings
}

// Sessions resolves visitor sessions.
type Sessions interface {
	Get(ctx context.Context, id string) *session.Session
}

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// ImageBaseURL is prepended to relative image paths in product responses.
	ImageBaseURL string
	// Store is served by /api/settings when the catalog has no settings
	// record.
	Store product.StoreSettings
}

// Handler serves the storefront API for one process.
type Handler struct {
	catalog  Catalog
	sessions Sessions
	orders   *order.Service

	imageBaseURL string
	store        product.StoreSettings

	cartCommands metric.Int64Counter
	rejectedAdds metric.Int64Counter
	checkouts    metric.Int64Counter
}

// NewHandler creates a Handler. Counters are registered on the "storefront"
// meter of mp.
func NewHandler(cfg Config, catalog Catalog, sessions Sessions, orders *order.Service, mp metric.MeterProvider) (*Handler, error) {
	meter := mp.Meter("storefront")
	h := &Handler{
		catalog:      catalog,
		sessions:     sessions,
		orders:       orders,
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		store:        cfg.Store,
	}

	var err error
	if h.cartCommands, err = meter.Int64Counter("storefront.cart.commands",
		metric.WithDescription("Cart commands applied"),
	); err != nil {
		return nil, errors.Wrap(err, "cart commands counter")
	}
	if h.rejectedAdds, err = meter.Int64Counter("storefront.cart.rejected_adds",
		metric.WithDescription("Add commands rejected for lack of stock"),
	); err != nil {
		return nil, errors.Wrap(err, "rejected adds counter")
	}
	if h.checkouts, err = meter.Int64Counter("storefront.orders.composed",
		metric.WithDescription("Order messages composed"),
	); err != nil {
		return nil, errors.Wrap(err, "checkouts counter")
	}
	return h, nil
}

// Register adds the API routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/featured", h.FeaturedProducts)
	mux.HandleFunc("GET /api/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.HandleFunc("GET /api/categories/{id}", h.GetCategory)
	mux.HandleFunc("GET /api/categories/{id}/products", h.CategoryProducts)
	mux.HandleFunc("GET /api/settings", h.GetSettings)

	mux.HandleFunc("GET /api/cart", h.GetCart)
	mux.HandleFunc("DELETE /api/cart", h.ClearCart)
	mux.HandleFunc("POST /api/cart/items", h.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", h.SetItemQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("POST /api/cart/checkout", h.Checkout)

	mux.HandleFunc("GET /api/locale", h.GetLocale)
	mux.HandleFunc("PUT /api/locale", h.SetLocale)
	mux.HandleFunc("GET /api/locale/translations", h.Translations)
}

// session returns the visitor session, writing 400 when the request carries
// none.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := httpmiddleware.SessionIDFromContext(r.Context())
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing session")
		return nil, false
	}
	return h.sessions.Get(r.Context(), id), true
}

func (h *Handler) countCommand(ctx context.Context, name string) {
	h.cartCommands.Add(ctx, 1, metric.WithAttributes(attribute.String("command", name)))
}

// imageURL resolves relative image paths against the image base URL.
func (h *Handler) imageURL(path string) string {
	if path == "" || h.imageBaseURL == "" || strings.Contains(path, "://") {
		return path
	}
	return h.imageBaseURL + "/" + strings.TrimLeft(path, "/")
}
