package regiondb

//go:generate mockgen -source=regiondb.go -destination=mock/regiondb.go -package=mock

import (
	"context"

	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/models/rerror"
)

// RegionDB is the catalog of tables and their region boundaries.
type RegionDB interface {
	ListTables(ctx context.Context) ([]string, error)
	GetTableDescriptor(ctx context.Context, table string) (*TableDescriptor, error)
	// ListRegions returns the regions of table ordered by start key.
	ListRegions(ctx context.Context, table string) ([]*Region, error)
	// CreateTable creates desc pre-split at splits: N split keys yield N+1 regions.
	// It fails if the table already exists.
	CreateTable(ctx context.Context, desc *TableDescriptor, splits [][]byte) error
	DropTable(ctx context.Context, table string) error

	Close() error
}

func NewRegionDB(cfg *config.Tool) (RegionDB, error) {
	switch cfg.Store {
	case config.StoreEtcd:
		return NewEtcdRegionDB(cfg.EtcdEndpoints, cfg.DialTimeout)
	case config.StoreMem:
		return RestoreMemRegionDB(cfg.MemBackupPath)
	default:
		return nil, rerror.Newf(rerror.RG_CONFIG_ERROR, "region store implementation %q is invalid", cfg.Store)
	}
}
