package extractor

import (
	"context"

	"github.com/gbif/regiontools/pkg/models/regions"
	"github.com/gbif/regiontools/pkg/rlog"
	"github.com/gbif/regiontools/pkg/splitfile"
	"github.com/gbif/regiontools/regiondb"
	"github.com/pkg/errors"
)

// RegionLister is the part of the region catalog the extractor reads from.
type RegionLister interface {
	ListRegions(ctx context.Context, table string) ([]*regiondb.Region, error)
}

var _ RegionLister = regiondb.RegionDB(nil)

// Stats summarises one extraction run.
type Stats struct {
	Regions int
	Splits  int
}

// DefaultSplitsFile is the file ExtractStartKeys writes to when no output is given.
func DefaultSplitsFile(table string) string {
	return table + "_splits.txt"
}

// ExtractEndKeys writes the end key of every region of table except the last
// one to outPath, one decoded int32 per line in key order. The output file is
// recreated before the catalog is contacted.
func ExtractEndKeys(ctx context.Context, lister RegionLister, table, outPath string) (*Stats, error) {
	return extractToPath(ctx, lister, table, outPath, WriteEndKeys)
}

// ExtractStartKeys writes the start key of every region of table except the
// first one to outPath. For a contiguous table the result equals ExtractEndKeys.
func ExtractStartKeys(ctx context.Context, lister RegionLister, table, outPath string) (*Stats, error) {
	return extractToPath(ctx, lister, table, outPath, WriteStartKeys)
}

// WriteEndKeys is ExtractEndKeys appending to an already recreated split file.
func WriteEndKeys(ctx context.Context, lister RegionLister, table string, w *splitfile.Writer) (*Stats, error) {
	return extract(ctx, lister, table, w, endKeys)
}

// WriteStartKeys is ExtractStartKeys appending to an already recreated split file.
func WriteStartKeys(ctx context.Context, lister RegionLister, table string, w *splitfile.Writer) (*Stats, error) {
	return extract(ctx, lister, table, w, regions.SplitPoints)
}

type writeFunc func(ctx context.Context, lister RegionLister, table string, w *splitfile.Writer) (*Stats, error)

func extractToPath(ctx context.Context, lister RegionLister, table, outPath string, write writeFunc) (*Stats, error) {
	var stats *Stats
	err := splitfile.WithWriter(outPath, func(w *splitfile.Writer) error {
		var err error
		stats, err = write(ctx, lister, table, w)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func endKeys(rs []*regions.Region) [][]byte {
	keys := make([][]byte, 0, len(rs))
	for _, r := range rs {
		if r.IsLast() {
			continue
		}
		keys = append(keys, r.EndKey)
	}
	return keys
}

func extract(ctx context.Context, lister RegionLister, table string, w *splitfile.Writer, splitKeys func([]*regions.Region) [][]byte) (*Stats, error) {
	dbRegions, err := lister.ListRegions(ctx, table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list regions of table %q", table)
	}
	rs := regions.RegionsFromDB(dbRegions)
	regions.Sort(rs)

	if gaps := regions.Gaps(rs); len(gaps) > 0 {
		rlog.Zero.Warn().
			Str("table", table).
			Ints("at", gaps).
			Msg("extractor: region boundaries are not contiguous")
	}

	written := w.Count()
	for _, key := range splitKeys(rs) {
		v, err := regions.DecodeSplitKey(key)
		if err != nil {
			return nil, errors.Wrapf(err, "table %q", table)
		}
		if err := w.Append(v); err != nil {
			return nil, err
		}
		rlog.Zero.Debug().Str("table", table).Int32("key", v).Msg("extractor: wrote split key")
	}

	stats := &Stats{Regions: len(rs), Splits: w.Count() - written}
	rlog.Zero.Info().
		Str("table", table).
		Int("regions", stats.Regions).
		Int("splits", stats.Splits).
		Msg("extractor: split keys extracted")
	return stats, nil
}
