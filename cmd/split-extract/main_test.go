package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gbif/regiontools/pkg/models/regions"
	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/regiondb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(t *testing.T, table string, splits ...int32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.json")

	db, err := regiondb.RestoreMemRegionDB(path)
	require.NoError(t, err)
	require.NoError(t, db.CreateTable(context.Background(), &regiondb.TableDescriptor{
		Name:     table,
		Families: []regiondb.ColumnFamily{{Name: "o", MaxVersions: 1}},
	}, regions.EncodeSplitKeys(splits)))
	return path
}

func TestSplitExtract(t *testing.T) {
	backup := seedCatalog(t, "occurrence", 200, 100)
	out := filepath.Join(t.TempDir(), "splits.txt")

	cmd := newCommand()
	cmd.SetArgs([]string{"--mem-backup", backup, "occurrence", out})
	require.NoError(t, cmd.Execute())

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "100\n200\n", string(raw))
}

func TestSplitExtractUnknownTable(t *testing.T) {
	backup := seedCatalog(t, "occurrence")

	cmd := newCommand()
	cmd.SetArgs([]string{"--mem-backup", backup, "missing", filepath.Join(t.TempDir(), "splits.txt")})
	assert.True(t, rerror.IsCode(cmd.Execute(), rerror.RG_TABLE_NOT_FOUND))
}

func TestSplitExtractArgs(t *testing.T) {
	cmd := newCommand()
	cmd.SetArgs([]string{"occurrence"})
	assert.True(t, rerror.IsCode(cmd.Execute(), rerror.RG_CONFIG_ERROR))
}

func TestSplitExtractTruncatesOutputWhenStoreFails(t *testing.T) {
	dir := t.TempDir()
	backup := filepath.Join(dir, "regions.json")
	out := filepath.Join(dir, "splits.txt")
	require.NoError(t, os.WriteFile(backup, []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("111\n222\n"), 0o644))

	cmd := newCommand()
	cmd.SetArgs([]string{"--mem-backup", backup, "occurrence", out})
	assert.True(t, rerror.IsCode(cmd.Execute(), rerror.RG_STORE_ERROR))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, raw)
}
