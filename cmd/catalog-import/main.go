package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-faster/errors"

	"github.com/xenking/harshita-store/internal/importer"
	"github.com/xenking/harshita-store/internal/storage/postgres"
)

func main() {
	var (
		dataDir     string
		pattern     string
		databaseURL string
		opts        importer.Options
	)

	flag.StringVar(&dataDir, "data-dir", "data", "directory containing product exports")
	flag.StringVar(&pattern, "pattern", "*.ndjson.gz", "export file name pattern")
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.UintVar(&opts.Capacity, "capacity", 1_000_000, "expected products per file")
	flag.IntVar(&opts.BatchSize, "batch-size", 500, "products per upsert batch")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, filepath.Join(dataDir, pattern), databaseURL, opts); err != nil {
		slog.Error("catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog import completed successfully")
}

func run(ctx context.Context, glob, databaseURL string, opts importer.Options) error {
	files, err := filepath.Glob(glob)
	if err != nil {
		return errors.Wrap(err, "list exports")
	}
	if len(files) == 0 {
		return errors.Errorf("no exports match %s", glob)
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	stats, err := importer.Import(ctx, files, postgres.NewCatalogRepository(pool), opts)
	if err != nil {
		return errors.Wrap(err, "import")
	}

	slog.Info("import stats",
		slog.Uint64("read", stats.Read),
		slog.Int("written", stats.Written),
		slog.Int("duplicates", stats.Duplicates),
	)
	return nil
}
