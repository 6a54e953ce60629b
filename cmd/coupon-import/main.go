// Command coupon-import bulk-loads coupons from gzip-compressed CSV files.
//
// Files are parsed concurrently. A bloom filter primed with every stored code
// screens duplicates; only codes the filter flags are checked against the
// database, so large imports need no per-code lookups.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/internal/storage/postgres"
)

func main() {
	var (
		pattern     string
		databaseURL string
		opts        options
	)
	flag.StringVar(&pattern, "files", "data/coupons*.csv.gz", "glob of gzipped CSV files")
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.IntVar(&opts.BatchSize, "batch-size", 5000, "coupons per COPY batch")
	flag.UintVar(&opts.ExpectedCodes, "expected-codes", 1_000_000, "bloom filter capacity")
	flag.Float64Var(&opts.FalsePositiveRate, "fpr", 0.001, "bloom filter false positive rate")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "validate files without writing")
	flag.Parse()

	lg, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = lg.Sync() }()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		lg.Fatal("Database URL is required: set --database-url or DATABASE_URL")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, pattern, databaseURL, opts); err != nil {
		lg.Fatal("Coupon import failed", zap.Error(err))
	}
}

func run(ctx context.Context, lg *zap.Logger, pattern, databaseURL string, opts options) error {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return errors.Wrap(err, "glob files")
	}
	if len(files) == 0 {
		return errors.Errorf("no files match %q", pattern)
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	imp := newImporter(postgres.NewCouponRepository(pool), lg, opts)
	stats, err := imp.Run(ctx, files)
	if err != nil {
		return err
	}
	lg.Info("Coupon import completed",
		zap.Int("files", len(files)),
		zap.Int64("imported", stats.Imported),
		zap.Int64("duplicates", stats.Duplicates),
		zap.Int64("rejected", stats.Rejected),
		zap.Bool("dry_run", opts.DryRun),
	)
	return nil
}
