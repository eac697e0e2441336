package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"pgregory.net/rapid"

	"github.com/xenking/harshita-store/internal/domain/product"
)

// --- Mock implementations ---

type mockRepo struct {
	products    []product.Product
	categories  []product.Category
	settings    *product.StoreSettings
	productsErr error
	catErr      error
	settingsErr error
}

func (m *mockRepo) ListProducts(context.Context) ([]product.Product, error) {
	return m.products, m.productsErr
}

func (m *mockRepo) ListCategories(context.Context) ([]product.Category, error) {
	return m.categories, m.catErr
}

func (m *mockRepo) GetSettings(context.Context) (*product.StoreSettings, error) {
	if m.settingsErr != nil {
		return nil, m.settingsErr
	}
	if m.settings == nil {
		return nil, product.ErrNotFound
	}
	return m.settings, nil
}

// --- Helpers ---

func newService(repo *mockRepo) *Service {
	return NewService(repo, noop.NewTracerProvider())
}

func fakeProduct(category string, created time.Time) product.Product {
	return product.Product{
		ID:          gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Price:       decimal.NewFromFloat(gofakeit.Price(10, 500)).Round(2),
		Category:    category,
		Stock:       gofakeit.IntRange(1, 50),
		Tags:        []string{gofakeit.Word()},
		IsActive:    true,
		IsAvailable: true,
		CreatedAt:   created,
	}
}

func ids(products []product.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

// --- Tests ---

func TestActiveProducts_FallsBackToSample(t *testing.T) {
	hidden := fakeProduct("Groceries", time.Now())
	hidden.IsAvailable = false

	tests := []struct {
		name string
		repo *mockRepo
	}{
		{name: "empty source", repo: &mockRepo{}},
		{name: "source error", repo: &mockRepo{productsErr: errors.New("unreachable")}},
		{name: "nothing listed", repo: &mockRepo{products: []product.Product{hidden}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newService(tt.repo).ActiveProducts(context.Background())
			assert.Equal(t, ids(SampleProducts()), ids(got))
		})
	}
}

func TestActiveProducts_FiltersAndSorts(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	older := fakeProduct("Dairy", base)
	newer := fakeProduct("Dairy", base.Add(time.Hour))
	inactive := fakeProduct("Dairy", base.Add(2*time.Hour))
	inactive.IsActive = false
	unavailable := fakeProduct("Dairy", base.Add(3*time.Hour))
	unavailable.IsAvailable = false

	svc := newService(&mockRepo{products: []product.Product{older, inactive, newer, unavailable}})

	got := svc.ActiveProducts(context.Background())
	assert.Equal(t, []string{newer.ID, older.ID}, ids(got))
}

func TestActiveProducts_UnknownTimesSortByName(t *testing.T) {
	b := fakeProduct("Snacks", time.Time{})
	b.Name = "banana chips"
	a := fakeProduct("Snacks", time.Time{})
	a.Name = "Aloo Bhujia"

	got := newService(&mockRepo{products: []product.Product{b, a}}).ActiveProducts(context.Background())
	assert.Equal(t, []string{a.ID, b.ID}, ids(got))
}

func TestActiveProducts_MixedKnownAndUnknownTimes(t *testing.T) {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	a := fakeProduct("Snacks", base.Add(time.Hour))
	a.Name = "Zeera Biscuits"
	b := fakeProduct("Snacks", time.Time{})
	b.Name = "Mathri"
	c := fakeProduct("Snacks", base)
	c.Name = "Aloo Bhujia"

	for _, order := range [][]product.Product{{a, b, c}, {c, b, a}, {b, c, a}} {
		got := newService(&mockRepo{products: order}).ActiveProducts(context.Background())
		assert.Equal(t, []string{a.ID, c.ID, b.ID}, ids(got))
	}
}

func TestNewestFirst_StrictWeakOrder(t *testing.T) {
	cmp := newestFirst(collate.New(language.English, collate.IgnoreCase))
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	rapid.Check(t, func(t *rapid.T) {
		gen := rapid.Custom(func(t *rapid.T) product.Product {
			p := product.Product{Name: rapid.SampledFrom([]string{"a", "B", "c", "m", "Z"}).Draw(t, "name")}
			if rapid.Bool().Draw(t, "known") {
				p.CreatedAt = base.Add(time.Duration(rapid.IntRange(0, 3).Draw(t, "hour")) * time.Hour)
			}
			return p
		})
		x, y, z := gen.Draw(t, "x"), gen.Draw(t, "y"), gen.Draw(t, "z")

		if cmp(x, y) != -cmp(y, x) {
			t.Fatalf("asymmetric: %v %v", x, y)
		}
		if cmp(x, y) < 0 && cmp(y, z) < 0 && cmp(x, z) >= 0 {
			t.Fatalf("not transitive: %v %v %v", x, y, z)
		}
		if cmp(x, y) == 0 && cmp(y, z) == 0 && cmp(x, z) != 0 {
			t.Fatalf("equivalence not transitive: %v %v %v", x, y, z)
		}
	})
}

func TestCategories(t *testing.T) {
	ctx := context.Background()

	got := newService(&mockRepo{}).Categories(ctx)
	require.Len(t, got, 6)
	assert.Equal(t, "Z1IkRqWZcbWk2kVrI2n4", got[0].ID)

	got = newService(&mockRepo{catErr: errors.New("boom")}).Categories(ctx)
	assert.Len(t, got, 6)

	own := []product.Category{{ID: "c1", Name: "Household"}}
	got = newService(&mockRepo{categories: own}).Categories(ctx)
	assert.Equal(t, own, got)
}

func TestSettings(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, newService(&mockRepo{}).Settings(ctx))
	assert.Nil(t, newService(&mockRepo{settingsErr: errors.New("boom")}).Settings(ctx))

	want := &product.StoreSettings{StoreName: "Harshita General Store", WhatsAppNumber: "9000000001"}
	assert.Equal(t, want, newService(&mockRepo{settings: want}).Settings(ctx))
}

func TestProductsByCategory_IgnoresCase(t *testing.T) {
	svc := newService(&mockRepo{})
	ctx := context.Background()

	dairy := svc.ProductsByCategory(ctx, "dAiRy")
	assert.Equal(t, []string{"sample-9", "sample-10"}, ids(dairy))

	assert.Len(t, svc.ProductsByCategory(ctx, ""), 12)
	assert.Empty(t, svc.ProductsByCategory(ctx, "Bakery"))
}

func TestFeaturedProducts(t *testing.T) {
	svc := newService(&mockRepo{})
	ctx := context.Background()

	assert.Len(t, svc.FeaturedProducts(ctx, 0), DefaultFeaturedLimit)
	assert.Len(t, svc.FeaturedProducts(ctx, 3), 3)
	assert.Len(t, svc.FeaturedProducts(ctx, 100), 12)
}

func TestProductByID(t *testing.T) {
	svc := newService(&mockRepo{})
	ctx := context.Background()

	p, err := svc.ProductByID(ctx, "sample-5")
	require.NoError(t, err)
	assert.Equal(t, "Toor Dal (1kg)", p.Name)

	_, err = svc.ProductByID(ctx, "missing")
	require.ErrorIs(t, err, product.ErrNotFound)
}

func TestCategoryProducts(t *testing.T) {
	svc := newService(&mockRepo{})
	ctx := context.Background()

	tests := []struct {
		name string
		sub  string
		want []string
	}{
		{name: "whole category", want: []string{"sample-1", "sample-2", "sample-3", "sample-4", "sample-5", "sample-6", "sample-7", "sample-8"}},
		{name: "subcategory by name", sub: "cooking oil", want: []string{"sample-3", "sample-4"}},
		{name: "subcategory by id", sub: "pulses", want: []string{"sample-5", "sample-6"}},
		{name: "unknown subcategory", sub: "frozen", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, products, err := svc.CategoryProducts(ctx, "Z1IkRqWZcbWk2kVrI2n4", tt.sub)
			require.NoError(t, err)
			assert.Equal(t, "Groceries", c.Name)
			assert.Equal(t, tt.want, ids(products))
		})
	}

	_, _, err := svc.CategoryProducts(ctx, "cat-missing", "")
	require.ErrorIs(t, err, product.ErrNotFound)
}
