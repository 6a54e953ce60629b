package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/jewel-store/internal/domain/coupon"
)

// store is the slice of the coupon repository the importer writes through.
type store interface {
	Codes(ctx context.Context, fn func(code string) error) error
	ExistingCodes(ctx context.Context, codes []string) ([]string, error)
	Import(ctx context.Context, coupons []coupon.Coupon) (int64, error)
}

type options struct {
	BatchSize         int
	ExpectedCodes     uint
	FalsePositiveRate float64
	DryRun            bool
}

// Stats summarizes an import run.
type Stats struct {
	Imported   int64
	Duplicates int64
	Rejected   int64
}

type importer struct {
	store store
	lg    *zap.Logger
	opts  options
	// dryRun holds the codes a dry run would have written, standing in for
	// the database when checking suspects.
	dryRun map[string]struct{}
}

func newImporter(s store, lg *zap.Logger, opts options) *importer {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 5000
	}
	if opts.ExpectedCodes == 0 {
		opts.ExpectedCodes = 1_000_000
	}
	if opts.FalsePositiveRate <= 0 {
		opts.FalsePositiveRate = 0.001
	}
	imp := &importer{store: s, lg: lg, opts: opts}
	if opts.DryRun {
		imp.dryRun = make(map[string]struct{})
	}
	return imp
}

// Run parses files concurrently and writes the coupons in batches from a
// single writer. Malformed rows are logged and skipped; the first I/O or
// database error aborts the run.
func (imp *importer) Run(ctx context.Context, files []string) (Stats, error) {
	filter := bloom.NewWithEstimates(imp.opts.ExpectedCodes, imp.opts.FalsePositiveRate)
	var stored int
	if err := imp.store.Codes(ctx, func(code string) error {
		filter.AddString(code)
		stored++
		return nil
	}); err != nil {
		return Stats{}, errors.Wrap(err, "prime filter")
	}
	imp.lg.Info("Primed duplicate filter", zap.Int("stored_codes", stored))

	var (
		stats    Stats
		rejected = make([]int64, len(files))
		parsed   = make(chan coupon.Coupon, imp.opts.BatchSize)
	)
	g, gctx := errgroup.WithContext(ctx)
	readers, rctx := errgroup.WithContext(gctx)
	for i, path := range files {
		readers.Go(func() error {
			n, err := imp.readFile(rctx, path, parsed)
			rejected[i] = n
			return err
		})
	}
	g.Go(func() error {
		defer close(parsed)
		return readers.Wait()
	})
	g.Go(func() error {
		return imp.write(gctx, filter, parsed, &stats)
	})
	err := g.Wait()
	for _, n := range rejected {
		stats.Rejected += n
	}
	return stats, err
}

// readFile streams one gzipped CSV file into out and returns the number of
// rejected rows.
func (imp *importer) readFile(ctx context.Context, path string, out chan<- coupon.Coupon) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open")
	}
	defer func() { _ = f.Close() }()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return 0, errors.Wrapf(err, "gzip reader for %s", path)
	}
	defer func() { _ = gz.Close() }()

	r := csv.NewReader(gz)
	r.FieldsPerRecord = -1
	r.ReuseRecord = true

	first, err := r.Read()
	if err != nil {
		return 0, errors.Wrapf(err, "read header of %s", path)
	}
	h, err := parseHeader(first)
	if err != nil {
		return 0, errors.Wrapf(err, "header of %s", path)
	}

	lg := imp.lg.With(zap.String("file", path))
	var rejected int64
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				rejected++
				lg.Warn("Skipping malformed row", zap.Int("line", perr.Line), zap.Error(err))
				continue
			}
			return rejected, errors.Wrapf(err, "read %s", path)
		}
		c, err := h.parseRecord(record)
		if err != nil {
			line, _ := r.FieldPos(0)
			rejected++
			lg.Warn("Skipping invalid coupon", zap.Int("line", line), zap.String("code", c.Code), zap.Error(err))
			continue
		}
		select {
		case out <- c:
		case <-ctx.Done():
			return rejected, ctx.Err()
		}
	}
	lg.Info("File parsed", zap.Int64("rejected", rejected))
	return rejected, nil
}

// batch is a set of coupons pending insertion. suspects are codes the bloom
// filter flagged; they are checked against the database before the flush.
type batch struct {
	coupons  []coupon.Coupon
	codes    map[string]struct{}
	suspects []string
}

func (imp *importer) newBatch() *batch {
	return &batch{
		coupons: make([]coupon.Coupon, 0, imp.opts.BatchSize),
		codes:   make(map[string]struct{}, imp.opts.BatchSize),
	}
}

func (imp *importer) write(ctx context.Context, filter *bloom.BloomFilter, in <-chan coupon.Coupon, stats *Stats) error {
	b := imp.newBatch()
	for c := range in {
		if _, dup := b.codes[c.Code]; dup {
			stats.Duplicates++
			continue
		}
		if filter.TestAndAddString(c.Code) {
			b.suspects = append(b.suspects, c.Code)
		}
		b.codes[c.Code] = struct{}{}
		b.coupons = append(b.coupons, c)

		if len(b.coupons) >= imp.opts.BatchSize {
			if err := imp.flush(ctx, b, stats); err != nil {
				return err
			}
			b = imp.newBatch()
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return imp.flush(ctx, b, stats)
}

func (imp *importer) flush(ctx context.Context, b *batch, stats *Stats) error {
	if len(b.suspects) > 0 {
		existing, err := imp.store.ExistingCodes(ctx, b.suspects)
		if err != nil {
			return errors.Wrap(err, "check duplicates")
		}
		for _, code := range b.suspects {
			if _, ok := imp.dryRun[code]; ok {
				existing = append(existing, code)
			}
		}
		if len(existing) > 0 {
			skip := make(map[string]struct{}, len(existing))
			for _, code := range existing {
				skip[code] = struct{}{}
			}
			kept := b.coupons[:0]
			for _, c := range b.coupons {
				if _, ok := skip[c.Code]; ok {
					stats.Duplicates++
					continue
				}
				kept = append(kept, c)
			}
			b.coupons = kept
		}
	}
	if len(b.coupons) == 0 {
		return nil
	}
	if imp.opts.DryRun {
		for _, c := range b.coupons {
			imp.dryRun[c.Code] = struct{}{}
		}
		stats.Imported += int64(len(b.coupons))
		return nil
	}
	n, err := imp.store.Import(ctx, b.coupons)
	if err != nil {
		return errors.Wrap(err, "import batch")
	}
	stats.Imported += n
	imp.lg.Info("Batch imported", zap.Int64("coupons", n), zap.Int64("total", stats.Imported))
	return nil
}
