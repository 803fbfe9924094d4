package regiondb

import (
	"context"
	"encoding/json"
	"os"
	"slices"
	"sync"

	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/pkg/rlog"
)

// MemRegionDB keeps the catalog in memory. With a backup path every
// mutation is dumped to that file, so state survives between tool runs.
type MemRegionDB struct {
	mu sync.RWMutex

	Tables  map[string]*TableDescriptor `json:"tables"`
	Regions map[string][]*Region        `json:"regions"`

	backupPath string
}

var _ RegionDB = &MemRegionDB{}

func NewMemRegionDB(backupPath string) *MemRegionDB {
	return &MemRegionDB{
		Tables:  map[string]*TableDescriptor{},
		Regions: map[string][]*Region{},

		backupPath: backupPath,
	}
}

// RestoreMemRegionDB loads the catalog from backupPath. A missing backup
// file is created empty.
func RestoreMemRegionDB(backupPath string) (*MemRegionDB, error) {
	db := NewMemRegionDB(backupPath)
	if backupPath == "" {
		return db, nil
	}
	if _, err := os.Stat(backupPath); err != nil {
		rlog.Zero.Info().Err(err).Str("path", backupPath).Msg("memregiondb: backup file not exists. Creating new one.")
		if err := db.DumpState(); err != nil {
			return nil, rerror.Newf(rerror.RG_STORE_ERROR, "failed to create backup file %s: %w", backupPath, err)
		}
		return db, nil
	}
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return nil, rerror.Newf(rerror.RG_STORE_ERROR, "failed to read backup file %s: %w", backupPath, err)
	}
	if err := json.Unmarshal(data, db); err != nil {
		return nil, rerror.Newf(rerror.RG_STORE_ERROR, "backup file %s is corrupted: %w", backupPath, err)
	}
	if db.Tables == nil {
		db.Tables = map[string]*TableDescriptor{}
	}
	if db.Regions == nil {
		db.Regions = map[string][]*Region{}
	}
	return db, nil
}

// DumpState writes the catalog to the backup path through a temp file and rename.
func (q *MemRegionDB) DumpState() error {
	if q.backupPath == "" {
		return nil
	}
	tmpPath := q.backupPath + ".tmp"

	state, err := json.MarshalIndent(q, "", "	")
	if err != nil {
		return err
	}

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(state); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, q.backupPath)
}

// ==============================================================================
//                                   TABLES
// ==============================================================================

func (q *MemRegionDB) ListTables(_ context.Context) ([]string, error) {
	rlog.Zero.Debug().Msg("memregiondb: list tables")
	q.mu.RLock()
	defer q.mu.RUnlock()

	ret := make([]string, 0, len(q.Tables))
	for name := range q.Tables {
		ret = append(ret, name)
	}
	slices.Sort(ret)
	return ret, nil
}

func (q *MemRegionDB) GetTableDescriptor(_ context.Context, table string) (*TableDescriptor, error) {
	rlog.Zero.Debug().Str("table", table).Msg("memregiondb: get table descriptor")
	q.mu.RLock()
	defer q.mu.RUnlock()

	desc, ok := q.Tables[table]
	if !ok {
		return nil, tableNotFound(table)
	}
	return desc.clone(), nil
}

func (q *MemRegionDB) CreateTable(_ context.Context, desc *TableDescriptor, splits [][]byte) error {
	if err := validateDescriptor(desc); err != nil {
		return err
	}
	sorted, err := normalizeSplits(splits)
	if err != nil {
		return err
	}
	rlog.Zero.Debug().
		Str("table", desc.Name).
		Int("splits", len(sorted)).
		Msg("memregiondb: create table")

	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.Tables[desc.Name]; ok {
		return tableExists(desc.Name)
	}

	return ExecuteCommands(q.DumpState,
		NewUpdateCommand(q.Tables, desc.Name, desc.clone()),
		NewUpdateCommand(q.Regions, desc.Name, buildRegions(desc.Name, sorted)))
}

func (q *MemRegionDB) DropTable(_ context.Context, table string) error {
	rlog.Zero.Debug().Str("table", table).Msg("memregiondb: drop table")
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.Tables[table]; !ok {
		return tableNotFound(table)
	}

	return ExecuteCommands(q.DumpState,
		NewDeleteCommand(q.Tables, table),
		NewDeleteCommand(q.Regions, table))
}

// ==============================================================================
//                                  REGIONS
// ==============================================================================

func (q *MemRegionDB) ListRegions(_ context.Context, table string) ([]*Region, error) {
	rlog.Zero.Debug().Str("table", table).Msg("memregiondb: list regions")
	q.mu.RLock()
	defer q.mu.RUnlock()

	if _, ok := q.Tables[table]; !ok {
		return nil, tableNotFound(table)
	}
	ret := cloneRegions(q.Regions[table])
	sortRegions(ret)
	return ret, nil
}

func (q *MemRegionDB) Close() error {
	return nil
}
