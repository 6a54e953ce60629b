package main

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/internal/domain/coupon"
)

type memStore struct {
	mu        sync.Mutex
	codes     map[string]struct{}
	batches   [][]coupon.Coupon
	lookups   [][]string
	importErr error
}

func newMemStore(existing ...string) *memStore {
	s := &memStore{codes: map[string]struct{}{}}
	for _, c := range existing {
		s.codes[c] = struct{}{}
	}
	return s
}

func (s *memStore) Codes(_ context.Context, fn func(string) error) error {
	for c := range s.codes {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *memStore) ExistingCodes(_ context.Context, codes []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups = append(s.lookups, slices.Clone(codes))
	var out []string
	for _, c := range codes {
		if _, ok := s.codes[c]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *memStore) Import(_ context.Context, coupons []coupon.Coupon) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.importErr != nil {
		return 0, s.importErr
	}
	for _, c := range coupons {
		if _, ok := s.codes[c.Code]; ok {
			return 0, errors.Errorf("duplicate key %s", c.Code)
		}
		s.codes[c.Code] = struct{}{}
	}
	s.batches = append(s.batches, slices.Clone(coupons))
	return int64(len(coupons)), nil
}

func writeGz(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := pgzip.NewWriter(f)
	_, err = gz.Write([]byte(strings.Join(lines, "\n") + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
	return path
}

const csvHeader = "code,type,value,start_date,end_date"

func TestImporter(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeGz(t, dir, "a.csv.gz", csvHeader,
			"SAVE10,percentage,10,2025-01-01,2025-12-31",
			"FLAT100,fixed,100,2025-01-01,2025-12-31",
			"BROKEN,fixed,abc,2025-01-01,2025-12-31",
			"OLD1,fixed,50,2025-01-01,2025-12-31",
		),
		writeGz(t, dir, "b.csv.gz", csvHeader,
			"save10,percentage,15,2025-01-01,2025-12-31",
			"SHIPFREE,free_shipping,0,2025-01-01,2025-12-31",
			"LATE,fixed,5,2025-05-01,2025-04-01",
		),
	}
	s := newMemStore("OLD1")
	imp := newImporter(s, zap.NewNop(), options{BatchSize: 2, ExpectedCodes: 1000})

	stats, err := imp.Run(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Imported)
	assert.Equal(t, int64(2), stats.Duplicates, "SAVE10 twice and OLD1 already stored")
	assert.Equal(t, int64(2), stats.Rejected)
	for _, code := range []string{"SAVE10", "FLAT100", "SHIPFREE", "OLD1"} {
		assert.Contains(t, s.codes, code)
	}
	for _, b := range s.batches {
		assert.LessOrEqual(t, len(b), 2)
	}
}

func TestImporter_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeGz(t, dir, "a.csv.gz", csvHeader,
		"A1,fixed,10,2025-01-01,2025-12-31",
		"A2,fixed,10,2025-01-01,2025-12-31",
		"A1,fixed,20,2025-01-01,2025-12-31",
	)
	s := newMemStore()
	imp := newImporter(s, zap.NewNop(), options{BatchSize: 1, DryRun: true})

	stats, err := imp.Run(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Imported)
	assert.Equal(t, int64(1), stats.Duplicates)
	assert.Empty(t, s.batches)
}

func TestImporter_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeGz(t, dir, "good.csv.gz", csvHeader, "A1,fixed,10,2025-01-01,2025-12-31")

	t.Run("missing file", func(t *testing.T) {
		imp := newImporter(newMemStore(), zap.NewNop(), options{})
		_, err := imp.Run(context.Background(), []string{good, filepath.Join(dir, "nope.csv.gz")})
		require.Error(t, err)
	})
	t.Run("bad header", func(t *testing.T) {
		bad := writeGz(t, dir, "bad.csv.gz", "code,value", "A1,10")
		imp := newImporter(newMemStore(), zap.NewNop(), options{})
		_, err := imp.Run(context.Background(), []string{bad})
		assert.ErrorContains(t, err, `missing column "type"`)
	})
	t.Run("database failure", func(t *testing.T) {
		s := newMemStore()
		s.importErr = errors.New("connection reset")
		imp := newImporter(s, zap.NewNop(), options{})
		_, err := imp.Run(context.Background(), []string{good})
		assert.ErrorContains(t, err, "connection reset")
	})
}
