package regions

import (
	"bytes"
	"slices"

	"github.com/gbif/regiontools/regiondb"
)

type Region struct {
	ID       string
	Table    string
	StartKey []byte
	EndKey   []byte
}

func RegionFromDB(r *regiondb.Region) *Region {
	return &Region{
		ID:       r.RegionID,
		Table:    r.Table,
		StartKey: r.StartKey,
		EndKey:   r.EndKey,
	}
}

func RegionsFromDB(rs []*regiondb.Region) []*Region {
	ret := make([]*Region, 0, len(rs))
	for _, r := range rs {
		ret = append(ret, RegionFromDB(r))
	}
	return ret
}

func (r *Region) ToDB() *regiondb.Region {
	return &regiondb.Region{
		RegionID: r.ID,
		Table:    r.Table,
		StartKey: r.StartKey,
		EndKey:   r.EndKey,
	}
}

// IsFirst reports whether the region is unbounded below.
func (r *Region) IsFirst() bool {
	return len(r.StartKey) == 0
}

// IsLast reports whether the region is unbounded above.
func (r *Region) IsLast() bool {
	return len(r.EndKey) == 0
}

// Sort orders regions by start key.
func Sort(rs []*Region) {
	slices.SortFunc(rs, func(a, b *Region) int {
		return bytes.Compare(a.StartKey, b.StartKey)
	})
}

// Gaps returns the indexes i for which rs[i-1] does not end where rs[i] starts.
// rs must be sorted.
func Gaps(rs []*Region) []int {
	var ret []int
	for i := 1; i < len(rs); i++ {
		if !bytes.Equal(rs[i-1].EndKey, rs[i].StartKey) {
			ret = append(ret, i)
		}
	}
	return ret
}

func StartKeys(rs []*Region) [][]byte {
	ret := make([][]byte, 0, len(rs))
	for _, r := range rs {
		ret = append(ret, r.StartKey)
	}
	return ret
}

// SplitPoints returns the start keys of rs without the empty lower bound of
// the first region. These are exactly the split keys that recreate rs.
func SplitPoints(rs []*Region) [][]byte {
	ret := make([][]byte, 0, len(rs))
	for _, r := range rs {
		if r.IsFirst() {
			continue
		}
		ret = append(ret, r.StartKey)
	}
	return ret
}
