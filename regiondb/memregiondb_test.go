package regiondb_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gbif/regiontools/pkg/config"
	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/regiondb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mockDescriptor = &regiondb.TableDescriptor{
	Name: "occurrence",
	Families: []regiondb.ColumnFamily{
		{Name: "o", Compression: "SNAPPY", DataBlockEncoding: "FAST_DIFF", MaxVersions: 1},
	},
	MaxFileSize: 268435456,
}

func boundaries(regions []*regiondb.Region) [][2]string {
	ret := make([][2]string, 0, len(regions))
	for _, r := range regions {
		ret = append(ret, [2]string{string(r.StartKey), string(r.EndKey)})
	}
	return ret
}

func TestCreateTableBuildsRegions(t *testing.T) {
	assert := assert.New(t)
	ctx := context.TODO()

	db := regiondb.NewMemRegionDB("")
	err := db.CreateTable(ctx, mockDescriptor, [][]byte{[]byte("m"), []byte("c"), []byte("x")})
	require.NoError(t, err)

	regions, err := db.ListRegions(ctx, "occurrence")
	require.NoError(t, err)

	assert.Equal([][2]string{{"", "c"}, {"c", "m"}, {"m", "x"}, {"x", ""}}, boundaries(regions))
	for _, r := range regions {
		assert.Equal("occurrence", r.Table)
		assert.NotEmpty(r.RegionID)
	}

	desc, err := db.GetTableDescriptor(ctx, "occurrence")
	require.NoError(t, err)
	assert.Equal(mockDescriptor, desc)
}

func TestCreateTableWithoutSplits(t *testing.T) {
	assert := assert.New(t)
	ctx := context.TODO()

	db := regiondb.NewMemRegionDB("")
	require.NoError(t, db.CreateTable(ctx, mockDescriptor, nil))

	regions, err := db.ListRegions(ctx, "occurrence")
	require.NoError(t, err)
	assert.Equal([][2]string{{"", ""}}, boundaries(regions))
}

func TestCreateTableRejects(t *testing.T) {
	ctx := context.TODO()

	for _, tc := range []struct {
		name   string
		desc   *regiondb.TableDescriptor
		splits [][]byte
		code   string
	}{
		{
			name: "empty name",
			desc: &regiondb.TableDescriptor{Families: mockDescriptor.Families},
			code: rerror.RG_CONFIG_ERROR,
		},
		{
			name: "no families",
			desc: &regiondb.TableDescriptor{Name: "t"},
			code: rerror.RG_CONFIG_ERROR,
		},
		{
			name: "repeated family",
			desc: &regiondb.TableDescriptor{Name: "t", Families: []regiondb.ColumnFamily{{Name: "a"}, {Name: "a"}}},
			code: rerror.RG_CONFIG_ERROR,
		},
		{
			name:   "repeated split",
			desc:   mockDescriptor,
			splits: [][]byte{[]byte("a"), []byte("b"), []byte("a")},
			code:   rerror.RG_INVALID_SPLITS,
		},
		{
			name:   "empty split",
			desc:   mockDescriptor,
			splits: [][]byte{{}},
			code:   rerror.RG_INVALID_SPLITS,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			db := regiondb.NewMemRegionDB("")
			err := db.CreateTable(ctx, tc.desc, tc.splits)
			assert.True(t, rerror.IsCode(err, tc.code), "unexpected error: %v", err)

			tables, err := db.ListTables(ctx)
			assert.NoError(t, err)
			assert.Empty(t, tables)
		})
	}
}

func TestCreateTableTwiceFails(t *testing.T) {
	assert := assert.New(t)
	ctx := context.TODO()

	db := regiondb.NewMemRegionDB("")
	require.NoError(t, db.CreateTable(ctx, mockDescriptor, [][]byte{[]byte("b")}))

	err := db.CreateTable(ctx, mockDescriptor, [][]byte{[]byte("c"), []byte("d")})
	assert.True(rerror.IsCode(err, rerror.RG_TABLE_EXISTS), "unexpected error: %v", err)

	regions, err := db.ListRegions(ctx, "occurrence")
	require.NoError(t, err)
	assert.Equal([][2]string{{"", "b"}, {"b", ""}}, boundaries(regions))
}

func TestUnknownTable(t *testing.T) {
	assert := assert.New(t)
	ctx := context.TODO()

	db := regiondb.NewMemRegionDB("")

	_, err := db.GetTableDescriptor(ctx, "missing")
	assert.True(rerror.IsCode(err, rerror.RG_TABLE_NOT_FOUND))
	_, err = db.ListRegions(ctx, "missing")
	assert.True(rerror.IsCode(err, rerror.RG_TABLE_NOT_FOUND))
	err = db.DropTable(ctx, "missing")
	assert.True(rerror.IsCode(err, rerror.RG_TABLE_NOT_FOUND))
}

func TestReturnedValuesAreCopies(t *testing.T) {
	assert := assert.New(t)
	ctx := context.TODO()

	db := regiondb.NewMemRegionDB("")
	require.NoError(t, db.CreateTable(ctx, mockDescriptor, [][]byte{[]byte("b")}))

	regions, err := db.ListRegions(ctx, "occurrence")
	require.NoError(t, err)
	regions[0].EndKey[0] = 'z'

	desc, err := db.GetTableDescriptor(ctx, "occurrence")
	require.NoError(t, err)
	desc.Families[0].Name = "changed"

	regions, err = db.ListRegions(ctx, "occurrence")
	require.NoError(t, err)
	assert.Equal("b", string(regions[0].EndKey))

	desc, err = db.GetTableDescriptor(ctx, "occurrence")
	require.NoError(t, err)
	assert.Equal("o", desc.Families[0].Name)
}

func TestRestoreFromBackup(t *testing.T) {
	assert := assert.New(t)
	ctx := context.TODO()
	backup := filepath.Join(t.TempDir(), "regions.json")

	db, err := regiondb.RestoreMemRegionDB(backup)
	require.NoError(t, err)
	_, err = os.Stat(backup)
	require.NoError(t, err, "backup file must be created on first restore")

	require.NoError(t, db.CreateTable(ctx, mockDescriptor, [][]byte{[]byte("b"), []byte("d")}))
	require.NoError(t, db.CreateTable(ctx, &regiondb.TableDescriptor{
		Name:     "verbatim",
		Families: []regiondb.ColumnFamily{{Name: "v"}},
	}, nil))
	require.NoError(t, db.DropTable(ctx, "verbatim"))
	before, err := db.ListRegions(ctx, "occurrence")
	require.NoError(t, err)

	restored, err := regiondb.RestoreMemRegionDB(backup)
	require.NoError(t, err)

	tables, err := restored.ListTables(ctx)
	require.NoError(t, err)
	assert.Equal([]string{"occurrence"}, tables)

	after, err := restored.ListRegions(ctx, "occurrence")
	require.NoError(t, err)
	assert.Equal(before, after)

	desc, err := restored.GetTableDescriptor(ctx, "occurrence")
	require.NoError(t, err)
	assert.Equal(mockDescriptor, desc)
}

func TestRestoreCorruptedBackup(t *testing.T) {
	backup := filepath.Join(t.TempDir(), "regions.json")
	require.NoError(t, os.WriteFile(backup, []byte("{not json"), 0644))

	_, err := regiondb.RestoreMemRegionDB(backup)
	assert.True(t, rerror.IsCode(err, rerror.RG_STORE_ERROR), "unexpected error: %v", err)
}

func TestFailedDumpLeavesStateUntouched(t *testing.T) {
	assert := assert.New(t)
	ctx := context.TODO()

	db := regiondb.NewMemRegionDB(filepath.Join(t.TempDir(), "missing-dir", "regions.json"))

	err := db.CreateTable(ctx, mockDescriptor, nil)
	assert.Error(err)

	tables, err := db.ListTables(ctx)
	require.NoError(t, err)
	assert.Empty(tables)
}

func TestNewRegionDB(t *testing.T) {
	assert := assert.New(t)

	db, err := regiondb.NewRegionDB(&config.Tool{Store: config.StoreMem})
	require.NoError(t, err)
	assert.IsType(&regiondb.MemRegionDB{}, db)
	assert.NoError(db.Close())

	_, err = regiondb.NewRegionDB(&config.Tool{Store: "hbase"})
	assert.True(rerror.IsCode(err, rerror.RG_CONFIG_ERROR))

	_, err = regiondb.NewRegionDB(&config.Tool{Store: config.StoreEtcd})
	assert.True(rerror.IsCode(err, rerror.RG_CONFIG_ERROR))
}

// must run with -race
func TestMemRegionDBRacing(t *testing.T) {
	db := regiondb.NewMemRegionDB("")
	ctx := context.TODO()

	var wg sync.WaitGroup
	methods := []func(){
		func() { _ = db.CreateTable(ctx, mockDescriptor, [][]byte{[]byte("b")}) },
		func() { _, _ = db.ListTables(ctx) },
		func() { _, _ = db.ListRegions(ctx, mockDescriptor.Name) },
		func() { _, _ = db.GetTableDescriptor(ctx, mockDescriptor.Name) },
		func() { _ = db.DropTable(ctx, mockDescriptor.Name) },
	}
	for i := 0; i < 10; i++ {
		for _, m := range methods {
			wg.Add(1)
			go func(m func()) {
				defer wg.Done()
				m()
			}(m)
		}
	}
	wg.Wait()
}
