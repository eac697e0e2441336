// Package importer loads gzip NDJSON product exports into the catalog.
//
// Exports are large and may repeat a product across files. Import makes two
// passes: the first builds one bloom filter of product IDs per file, the
// second streams every file again and holds back only the products whose ID
// probably occurs more than once. Those are resolved by keeping the most
// recently created record; all other products go straight to the sink.
package importer

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	pgzip "github.com/klauspost/pgzip"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/harshita-store/internal/domain/cart"
	"github.com/xenking/harshita-store/internal/domain/product"
)

// Sink receives imported products in batches.
type Sink interface {
	UpsertProducts(ctx context.Context, products []product.Product) error
}

// Options tune an Import.
type Options struct {
	// Capacity is the expected number of products per file.
	Capacity uint
	// FalsePositiveRate of the per-file bloom filters.
	FalsePositiveRate float64
	// BatchSize is the number of products per sink call.
	BatchSize int
	// ProgressEvery logs progress after this many lines per file.
	ProgressEvery uint64
}

func (o *Options) setDefaults() {
	if o.Capacity == 0 {
		o.Capacity = 1_000_000
	}
	if o.FalsePositiveRate <= 0 {
		o.FalsePositiveRate = 0.001
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 500
	}
	if o.ProgressEvery == 0 {
		o.ProgressEvery = 1_000_000
	}
}

// Stats summarizes an Import.
type Stats struct {
	Read       uint64
	Written    int
	Duplicates int
}

// fileIndex is the pass 1 result for one file.
type fileIndex struct {
	filter *bloom.BloomFilter
	// repeats holds IDs that probably occur twice within the file.
	repeats map[string]struct{}
}

// Import reads files and writes their products to sink.
func Import(ctx context.Context, files []string, sink Sink, opts Options) (Stats, error) {
	opts.setDefaults()

	slog.Info("pass 1: indexing product IDs", slog.Int("files", len(files)))
	ix, err := buildIndex(ctx, files, opts)
	if err != nil {
		return Stats{}, errors.Wrap(err, "build index")
	}

	slog.Info("pass 2: writing products")
	b := &batcher{sink: sink, size: opts.BatchSize}
	held := make([]map[string]product.Product, len(files))
	var (
		mu         sync.Mutex
		read, kept uint64
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			repeated := make(map[string]product.Product)
			n, err := streamFile(gctx, path, opts.ProgressEvery, func(p product.Product) error {
				if !ix.probablyRepeated(i, p.ID) {
					return b.add(gctx, p)
				}
				if prev, ok := repeated[p.ID]; !ok || !newer(prev, p) {
					repeated[p.ID] = p
				}
				return nil
			})
			if err != nil {
				return errors.Wrapf(err, "scan %s", path)
			}
			held[i] = repeated

			mu.Lock()
			read += n
			kept += uint64(len(repeated))
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	// Later files win ties.
	merged := make(map[string]product.Product)
	for _, repeated := range held {
		for id, p := range repeated {
			if prev, ok := merged[id]; !ok || !newer(prev, p) {
				merged[id] = p
			}
		}
	}
	slog.Info("resolved repeated products",
		slog.Uint64("held", kept),
		slog.Int("unique", len(merged)),
	)
	for _, p := range merged {
		if err := b.add(ctx, p); err != nil {
			return Stats{}, err
		}
	}
	if err := b.flush(ctx); err != nil {
		return Stats{}, err
	}

	return Stats{
		Read:       read,
		Written:    b.written,
		Duplicates: int(read) - b.written,
	}, nil
}

type index []fileIndex

func (ix index) probablyRepeated(file int, id string) bool {
	if _, ok := ix[file].repeats[id]; ok {
		return true
	}
	for j, other := range ix {
		if j != file && other.filter.TestString(id) {
			return true
		}
	}
	return false
}

func buildIndex(ctx context.Context, files []string, opts Options) (index, error) {
	ix := make(index, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			fi := fileIndex{
				filter:  bloom.NewWithEstimates(opts.Capacity, opts.FalsePositiveRate),
				repeats: make(map[string]struct{}),
			}
			n, err := streamFile(ctx, path, opts.ProgressEvery, func(p product.Product) error {
				if fi.filter.TestAndAddString(p.ID) {
					fi.repeats[p.ID] = struct{}{}
				}
				return nil
			})
			if err != nil {
				return errors.Wrapf(err, "index %s", path)
			}
			slog.Info("pass 1 complete",
				slog.String("file", path),
				slog.Uint64("products", n),
				slog.Int("repeats", len(fi.repeats)),
			)
			ix[i] = fi
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ix, nil
}

// newer reports whether a was created after b. Records without a creation
// time are never newer.
func newer(a, b product.Product) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

// streamFile decodes every line of a gzip NDJSON file.
func streamFile(ctx context.Context, path string, progressEvery uint64, fn func(product.Product) error) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open")
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return 0, errors.Wrap(err, "gzip reader")
	}
	defer func() { _ = gz.Close() }()

	var n uint64
	err = Scan(ctx, gz, func(p product.Product) error {
		n++
		if n%progressEvery == 0 {
			slog.Info("progress", slog.String("file", path), slog.Uint64("products", n))
		}
		return fn(p)
	})
	return n, err
}

// Scan decodes one product document per non-empty line of r.
func Scan(ctx context.Context, r io.Reader, fn func(product.Product) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), 4<<20)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		p, err := cart.DecodeProduct(jx.DecodeBytes(data))
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		if p.ID == "" {
			return errors.Errorf("line %d: product without id", line)
		}
		if err := fn(p); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "read lines")
}

// batcher groups products into sink calls. It is shared by the pass 2
// goroutines.
type batcher struct {
	sink Sink
	size int

	mu      sync.Mutex
	pending []product.Product
	written int
}

func (b *batcher) add(ctx context.Context, p product.Product) error {
	b.mu.Lock()
	b.pending = append(b.pending, p)
	if len(b.pending) < b.size {
		b.mu.Unlock()
		return nil
	}
	batch := b.pending
	b.pending = nil
	b.written += len(batch)
	b.mu.Unlock()

	return b.write(ctx, batch)
}

func (b *batcher) flush(ctx context.Context) error {
	b.mu.Lock()
	batch := b.pending
	b.pending = nil
	b.written += len(batch)
	b.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}
	return b.write(ctx, batch)
}

func (b *batcher) write(ctx context.Context, batch []product.Product) error {
	if err := b.sink.UpsertProducts(ctx, batch); err != nil {
		return errors.Wrapf(err, "upsert %d products", len(batch))
	}
	slog.Info("upserted batch", slog.Int("products", len(batch)))
	return nil
}
