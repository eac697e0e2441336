//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/xenking/harshita-store/internal/domain/product"
	"github.com/xenking/harshita-store/internal/storage/postgres"
)

func startPostgres(ctx context.Context) (*tcpostgres.PostgresContainer, string, error) {
	c, err := tcpostgres.Run(ctx, "postgres:17.6-alpine3.22", tcpostgres.BasicWaitStrategies())
	if err != nil {
		return nil, "", err
	}
	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}
	return c, connStr, nil
}

type storageSuite struct {
	suite.Suite

	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repo      *postgres.CatalogRepository
	kv        *postgres.KV
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(storageSuite))
}

func (s *storageSuite) SetupSuite() {
	ctx := s.T().Context()

	var (
		connStr string
		err     error
	)
	s.container, connStr, err = startPostgres(ctx)
	s.Require().NoError(err)

	s.pool, err = postgres.NewPool(ctx, connStr)
	s.Require().NoError(err)
	s.Require().NoError(postgres.RunMigrations(ctx, s.pool))
	// Migrations are idempotent.
	s.Require().NoError(postgres.RunMigrations(ctx, s.pool))

	s.repo = postgres.NewCatalogRepository(s.pool)
	s.kv = postgres.NewKV(s.pool)
}

func (s *storageSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *storageSuite) TearDownTest() {
	_, err := s.pool.Exec(context.Background(),
		"TRUNCATE TABLE products, categories, store_settings, kv_entries")
	s.NoError(err)
}

func randomProduct() product.Product {
	return product.Product{
		ID:          gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Price:       decimal.NewFromFloat(gofakeit.Price(1, 999)).Round(2),
		Category:    gofakeit.RandomString([]string{"Groceries", "Dairy", "Snacks"}),
		SubCategory: gofakeit.Word(),
		Stock:       gofakeit.IntRange(0, 100),
		ImageURL:    gofakeit.URL(),
		Tags:        []string{gofakeit.Word(), gofakeit.Word()},
		IsActive:    gofakeit.Bool(),
		IsAvailable: gofakeit.Bool(),
		CreatedAt:   gofakeit.Date().Truncate(time.Second).UTC(),
	}
}

func (s *storageSuite) TestProductsRoundTrip() {
	ctx := s.T().Context()

	want := []product.Product{randomProduct(), randomProduct(), randomProduct()}
	want[2].CreatedAt = time.Time{}
	want[2].Tags = []string{}
	s.Require().NoError(s.repo.UpsertProducts(ctx, want))

	// Upsert replaces.
	want[0].Stock = 7
	s.Require().NoError(s.repo.UpsertProducts(ctx, want[:1]))

	got, err := s.repo.ListProducts(ctx)
	s.Require().NoError(err)

	opts := cmp.Options{
		cmpopts.SortSlices(func(a, b product.Product) bool { return a.ID < b.ID }),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		s.Failf("products mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *storageSuite) TestCategoriesRoundTrip() {
	ctx := s.T().Context()

	want := []product.Category{
		{
			ID:          "cat-dairy",
			Name:        "Dairy",
			Description: "Milk and more",
			SubCategories: []product.SubCategory{
				{ID: "milk", Name: "Milk"},
				{ID: "yogurt", Name: "Yogurt", Description: "Set curd"},
			},
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{ID: "cat-bakery", Name: "Bakery"},
	}
	s.Require().NoError(s.repo.UpsertCategories(ctx, want))

	got, err := s.repo.ListCategories(ctx)
	s.Require().NoError(err)

	// Ordered by name.
	s.Require().Len(got, 2)
	s.Equal("Bakery", got[0].Name)
	if diff := cmp.Diff(want[0], got[1]); diff != "" {
		s.Failf("category mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *storageSuite) TestSettings() {
	ctx := s.T().Context()

	_, err := s.repo.GetSettings(ctx)
	s.ErrorIs(err, product.ErrNotFound)

	want := product.StoreSettings{
		StoreName:      "Harshita General Store",
		StoreNameHindi: "हर्षिता जनरल स्टोर",
		WhatsAppNumber: "8058124167",
		City:           "Jaipur",
		Keywords:       []string{"grocery", "kirana"},
		UpdatedBy:      "seed",
	}
	s.Require().NoError(s.repo.UpsertSettings(ctx, want))

	got, err := s.repo.GetSettings(ctx)
	s.Require().NoError(err)
	s.Equal(want.StoreName, got.StoreName)
	s.Equal(want.StoreNameHindi, got.StoreNameHindi)
	s.Equal(want.WhatsAppNumber, got.WhatsAppNumber)
	s.Equal(want.Keywords, got.Keywords)
	s.False(got.UpdatedAt.IsZero())
}

func (s *storageSuite) TestKV() {
	ctx := s.T().Context()

	_, ok, err := s.kv.Get(ctx, "sid:cart")
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.kv.Set(ctx, "sid:cart", "[]"))
	s.Require().NoError(s.kv.Set(ctx, "sid:cart", `[{"quantity":2}]`))

	v, ok, err := s.kv.Get(ctx, "sid:cart")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(`[{"quantity":2}]`, v)

	s.Require().NoError(s.kv.Delete(ctx, "sid:cart"))
	_, ok, err = s.kv.Get(ctx, "sid:cart")
	s.Require().NoError(err)
	s.False(ok)

	s.NoError(s.kv.Ping(ctx))
}
