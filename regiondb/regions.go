package regiondb

import (
	"bytes"
	"slices"

	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/google/uuid"
)

func validateDescriptor(desc *TableDescriptor) error {
	if desc == nil || desc.Name == "" {
		return rerror.New(rerror.RG_CONFIG_ERROR, "table name is empty")
	}
	if len(desc.Families) == 0 {
		return rerror.Newf(rerror.RG_CONFIG_ERROR, "table %s has no column families", desc.Name)
	}
	seen := make(map[string]struct{}, len(desc.Families))
	for _, cf := range desc.Families {
		if cf.Name == "" {
			return rerror.Newf(rerror.RG_CONFIG_ERROR, "table %s has a column family without name", desc.Name)
		}
		if _, ok := seen[cf.Name]; ok {
			return rerror.Newf(rerror.RG_CONFIG_ERROR, "column family %s is declared twice in table %s", cf.Name, desc.Name)
		}
		seen[cf.Name] = struct{}{}
	}
	if desc.MaxFileSize < 0 {
		return rerror.Newf(rerror.RG_CONFIG_ERROR, "table %s has negative max file size %d", desc.Name, desc.MaxFileSize)
	}
	return nil
}

// normalizeSplits returns a sorted copy of splits. Empty and repeated keys are rejected.
func normalizeSplits(splits [][]byte) ([][]byte, error) {
	ret := make([][]byte, 0, len(splits))
	for _, s := range splits {
		if len(s) == 0 {
			return nil, rerror.New(rerror.RG_INVALID_SPLITS, "split key must not be empty")
		}
		ret = append(ret, append([]byte(nil), s...))
	}
	slices.SortFunc(ret, bytes.Compare)
	for i := 1; i < len(ret); i++ {
		if bytes.Equal(ret[i-1], ret[i]) {
			return nil, rerror.Newf(rerror.RG_INVALID_SPLITS, "split key %x is repeated", ret[i])
		}
	}
	return ret, nil
}

// buildRegions turns sorted split keys into len(splits)+1 contiguous regions.
func buildRegions(table string, splits [][]byte) []*Region {
	regions := make([]*Region, 0, len(splits)+1)
	var start []byte
	for _, s := range splits {
		regions = append(regions, &Region{
			RegionID: uuid.NewString(),
			Table:    table,
			StartKey: start,
			EndKey:   s,
		})
		start = s
	}
	return append(regions, &Region{
		RegionID: uuid.NewString(),
		Table:    table,
		StartKey: start,
	})
}

func sortRegions(regions []*Region) {
	slices.SortFunc(regions, func(a, b *Region) int {
		return bytes.Compare(a.StartKey, b.StartKey)
	})
}

func tableNotFound(table string) error {
	return rerror.Newf(rerror.RG_TABLE_NOT_FOUND, "table %s does not exist", table)
}

func tableExists(table string) error {
	return rerror.Newf(rerror.RG_TABLE_EXISTS, "table %s already exists", table)
}
