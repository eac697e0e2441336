package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/harshita-store/internal/domain/cart"
	"github.com/xenking/harshita-store/internal/domain/catalog"
	"github.com/xenking/harshita-store/internal/domain/product"
	"github.com/xenking/harshita-store/internal/storage/postgres"
)

type options struct {
	databaseURL    string
	productsFile   string
	storeName      string
	storeNameHindi string
	whatsAppNumber string
	city           string
}

func main() {
	var opts options
	flag.StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&opts.productsFile, "products-file", "", "JSON array of product documents; the sample catalog when empty")
	flag.StringVar(&opts.storeName, "store-name", "Harshita General Store", "store name")
	flag.StringVar(&opts.storeNameHindi, "store-name-hindi", "हर्षिता जनरल स्टोर", "store name in Hindi")
	flag.StringVar(&opts.whatsAppNumber, "whatsapp-number", "8058124167", "order destination number")
	flag.StringVar(&opts.city, "city", "Jaipur", "store city")
	flag.Parse()

	if opts.databaseURL == "" {
		opts.databaseURL = os.Getenv("DATABASE_URL")
	}
	if opts.databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, opts options) error {
	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, opts.databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	repo := postgres.NewCatalogRepository(pool)

	products := catalog.SampleProducts()
	if opts.productsFile != "" {
		if products, err = readProducts(opts.productsFile); err != nil {
			return errors.Wrap(err, "read products")
		}
	}

	slog.Info("upserting products", slog.Int("count", len(products)))
	if err := repo.UpsertProducts(ctx, products); err != nil {
		return errors.Wrap(err, "seed products")
	}

	categories := catalog.SampleCategories()
	slog.Info("upserting categories", slog.Int("count", len(categories)))
	if err := repo.UpsertCategories(ctx, categories); err != nil {
		return errors.Wrap(err, "seed categories")
	}

	slog.Info("upserting store settings", slog.String("store", opts.storeName))
	if err := repo.UpsertSettings(ctx, product.StoreSettings{
		StoreName:        opts.storeName,
		StoreNameHindi:   opts.storeNameHindi,
		Tagline:          "Your neighbourhood kirana store",
		WhatsAppNumber:   opts.whatsAppNumber,
		PrimaryPhone:     "+91 " + opts.whatsAppNumber,
		City:             opts.city,
		State:            "Rajasthan",
		MondayToSaturday: "8:00 AM - 9:00 PM",
		Sunday:           "9:00 AM - 1:00 PM",
		Keywords:         []string{"grocery", "kirana", opts.city},
		CreatedAt:        time.Now().UTC(),
		UpdatedBy:        "seed-db",
	}); err != nil {
		return errors.Wrap(err, "seed settings")
	}

	return nil
}

// readProducts parses a JSON array of catalog documents.
func readProducts(path string) ([]product.Product, error) {
	slog.Info("reading products file", slog.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	var products []product.Product
	if err := jx.DecodeBytes(data).Arr(func(d *jx.Decoder) error {
		p, err := cart.DecodeProduct(d)
		if err != nil {
			return err
		}
		products = append(products, p)
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "parse products")
	}
	return products, nil
}
