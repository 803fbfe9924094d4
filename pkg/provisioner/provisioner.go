package provisioner

import (
	"context"

	"github.com/gbif/regiontools/pkg/models/regions"
	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/pkg/models/tables"
	"github.com/gbif/regiontools/pkg/rlog"
	"github.com/gbif/regiontools/pkg/splitfile"
	"github.com/gbif/regiontools/regiondb"
	"github.com/pkg/errors"
)

type TableCreator interface {
	CreateTable(ctx context.Context, desc *regiondb.TableDescriptor, splits [][]byte) error
}

// TableCloner reads an existing table's schema and boundaries and creates new tables.
type TableCloner interface {
	TableCreator
	GetTableDescriptor(ctx context.Context, table string) (*regiondb.TableDescriptor, error)
	ListRegions(ctx context.Context, table string) ([]*regiondb.Region, error)
}

var _ TableCloner = regiondb.RegionDB(nil)

// CreateRequest describes a table provisioned from parameters.
type CreateRequest struct {
	Table        string
	ColumnFamily string
	// SplitsFile is optional. Without it the table starts with a single region.
	SplitsFile string
	// RegionSizeMB is the max region file size. Zero or negative keeps the store default.
	RegionSizeMB int
}

func (r *CreateRequest) validate() error {
	if r == nil || r.Table == "" {
		return rerror.New(rerror.RG_CONFIG_ERROR, "table name is empty")
	}
	if r.ColumnFamily == "" {
		return rerror.Newf(rerror.RG_CONFIG_ERROR, "column family of table %s is empty", r.Table)
	}
	return nil
}

// CreatePreSplitTable creates req.Table with one column family, pre-split at
// the keys listed in req.SplitsFile.
func CreatePreSplitTable(ctx context.Context, creator TableCreator, req *CreateRequest) error {
	if err := req.validate(); err != nil {
		return err
	}

	var splits [][]byte
	if req.SplitsFile != "" {
		xs, err := splitfile.Read(req.SplitsFile)
		if err != nil {
			return err
		}
		splits, err = sortedSplits(req.Table, regions.EncodeSplitKeys(xs))
		if err != nil {
			return err
		}
	}

	desc := tables.NewTableDescriptor(req.Table, tables.NewPreSplitFamily(req.ColumnFamily))
	if err := desc.SetMaxFileSizeMB(req.RegionSizeMB); err != nil {
		return err
	}

	rlog.Zero.Info().
		Str("table", req.Table).
		Str("family", req.ColumnFamily).
		Int("splits", len(splits)).
		Int64("max file size", desc.MaxFileSize).
		Msg("provisioner: creating pre-split table")

	if err := creator.CreateTable(ctx, desc.ToDB(), splits); err != nil {
		return errors.Wrapf(err, "failed to create table %q", req.Table)
	}
	return nil
}

// ClonePreSplitTable creates newTable with the schema and region boundaries of existing.
func ClonePreSplitTable(ctx context.Context, store TableCloner, existing, newTable string) error {
	if existing == "" || newTable == "" {
		return rerror.New(rerror.RG_CONFIG_ERROR, "table name is empty")
	}

	dbDesc, err := store.GetTableDescriptor(ctx, existing)
	if err != nil {
		return errors.Wrapf(err, "failed to read descriptor of table %q", existing)
	}
	desc := tables.TableDescriptorFromDB(dbDesc).CloneAs(newTable)

	dbRegions, err := store.ListRegions(ctx, existing)
	if err != nil {
		return errors.Wrapf(err, "failed to list regions of table %q", existing)
	}
	rs := regions.RegionsFromDB(dbRegions)
	regions.Sort(rs)
	splits := regions.SplitPoints(rs)

	rlog.Zero.Info().
		Str("source", existing).
		Str("table", newTable).
		Strs("families", desc.FamilyNames()).
		Int("splits", len(splits)).
		Msg("provisioner: cloning pre-split table")

	if err := store.CreateTable(ctx, desc.ToDB(), splits); err != nil {
		return errors.Wrapf(err, "failed to create table %q", newTable)
	}
	return nil
}

func sortedSplits(table string, keys [][]byte) ([][]byte, error) {
	if !regions.IsSorted(keys) {
		rlog.Zero.Warn().Str("table", table).Msg("provisioner: split keys are not in key order, sorting them")
	}
	sorted, err := regions.SortSplitKeys(keys)
	if err != nil {
		return nil, errors.Wrapf(err, "table %q", table)
	}
	return sorted, nil
}
