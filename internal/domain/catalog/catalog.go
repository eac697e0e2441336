// Package catalog serves products, categories and store settings from the
// catalog source, substituting the built-in sample data when the source is
// empty or unreachable.
package catalog

import (
	"context"
	"slices"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/xenking/harshita-store/internal/domain/product"
)

// DefaultFeaturedLimit is the number of featured products when no limit is given.
const DefaultFeaturedLimit = 8

// Service reads the catalog. Source failures are logged and never returned.
type Service struct {
	repo   product.Repository
	tracer trace.Tracer
}

// NewService creates a catalog Service over repo.
func NewService(repo product.Repository, tp trace.TracerProvider) *Service {
	return &Service{
		repo:   repo,
		tracer: tp.Tracer("storefront/catalog"),
	}
}

func (s *Service) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "catalog."+name)
}

func fail(ctx context.Context, span trace.Span, msg string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)
	zctx.From(ctx).Warn(msg, zap.Error(err))
}

// ActiveProducts returns the listed products, newest first. Products whose
// creation time is unknown follow, ordered by name. The sample products are
// returned when the source fails or lists nothing.
func (s *Service) ActiveProducts(ctx context.Context) []product.Product {
	ctx, span := s.start(ctx, "ActiveProducts")
	defer span.End()

	all, err := s.repo.ListProducts(ctx)
	if err != nil {
		fail(ctx, span, "Fetch products, using sample data", err)
		span.SetAttributes(attribute.Bool("catalog.sample", true))
		return SampleProducts()
	}

	listed := make([]product.Product, 0, len(all))
	for _, p := range all {
		if p.Listed() {
			listed = append(listed, p)
		}
	}
	if len(listed) == 0 {
		zctx.From(ctx).Info("No listed products, using sample data", zap.Int("fetched", len(all)))
		span.SetAttributes(attribute.Bool("catalog.sample", true))
		return SampleProducts()
	}

	sortNewest(listed)
	span.SetAttributes(attribute.Int("catalog.products", len(listed)))
	return listed
}

func sortNewest(products []product.Product) {
	slices.SortStableFunc(products, newestFirst(collate.New(language.English, collate.IgnoreCase)))
}

// newestFirst orders products by creation time, newest first. Unknown times
// sort after every known one; equal or unknown times fall back to the name.
func newestFirst(col *collate.Collator) func(a, b product.Product) int {
	return func(a, b product.Product) int {
		aKnown, bKnown := !a.CreatedAt.IsZero(), !b.CreatedAt.IsZero()
		switch {
		case aKnown && !bKnown:
			return -1
		case !aKnown && bKnown:
			return 1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return col.CompareString(a.Name, b.Name)
	}
}

// Categories returns every category, or the sample categories when the
// source fails or has none.
func (s *Service) Categories(ctx context.Context) []product.Category {
	ctx, span := s.start(ctx, "Categories")
	defer span.End()

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		fail(ctx, span, "Fetch categories, using sample data", err)
		return SampleCategories()
	}
	if len(categories) == 0 {
		zctx.From(ctx).Info("No categories, using sample data")
		return SampleCategories()
	}
	span.SetAttributes(attribute.Int("catalog.categories", len(categories)))
	return categories
}

// Settings returns the store settings record, or nil when it is absent or
// cannot be read.
func (s *Service) Settings(ctx context.Context) *product.StoreSettings {
	ctx, span := s.start(ctx, "Settings")
	defer span.End()

	settings, err := s.repo.GetSettings(ctx)
	switch {
	case errors.Is(err, product.ErrNotFound):
		zctx.From(ctx).Debug("No store settings")
		return nil
	case err != nil:
		fail(ctx, span, "Fetch store settings", err)
		return nil
	}
	return settings
}

// ProductsByCategory returns the active products whose category matches name
// ignoring case. An empty name matches every product.
func (s *Service) ProductsByCategory(ctx context.Context, name string) []product.Product {
	products := s.ActiveProducts(ctx)
	if name == "" {
		return products
	}
	return filter(products, func(p product.Product) bool {
		return equalFold(p.Category, name)
	})
}

// FeaturedProducts returns the first limit active products.
func (s *Service) FeaturedProducts(ctx context.Context, limit int) []product.Product {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	products := s.ActiveProducts(ctx)
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// ProductByID looks up an active product.
func (s *Service) ProductByID(ctx context.Context, id string) (product.Product, error) {
	for _, p := range s.ActiveProducts(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return product.Product{}, errors.Wrapf(product.ErrNotFound, "product %s", id)
}

// CategoryByID looks up a category.
func (s *Service) CategoryByID(ctx context.Context, id string) (product.Category, error) {
	for _, c := range s.Categories(ctx) {
		if c.ID == id {
			return c, nil
		}
	}
	return product.Category{}, errors.Wrapf(product.ErrNotFound, "category %s", id)
}

// CategoryProducts returns a category and its active products. subCategory,
// when set, narrows the products to one subcategory given by name or ID.
func (s *Service) CategoryProducts(ctx context.Context, categoryID, subCategory string) (product.Category, []product.Product, error) {
	c, err := s.CategoryByID(ctx, categoryID)
	if err != nil {
		return product.Category{}, nil, err
	}

	products := s.ProductsByCategory(ctx, c.Name)
	if subCategory == "" {
		return c, products, nil
	}

	name := subCategory
	for _, sc := range c.SubCategories {
		if sc.ID == subCategory {
			name = sc.Name
			break
		}
	}
	return c, filter(products, func(p product.Product) bool {
		return p.SubCategory != "" && equalFold(p.SubCategory, name)
	}), nil
}

func filter(products []product.Product, keep func(product.Product) bool) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func equalFold(a, b string) bool {
	return fold(a) == fold(b)
}
