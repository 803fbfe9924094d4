package regions_test

import (
	"math"
	"testing"

	"github.com/gbif/regiontools/pkg/models/regions"
	"github.com/gbif/regiontools/pkg/models/rerror"
	"github.com/gbif/regiontools/regiondb"
	"github.com/stretchr/testify/assert"
)

func TestSplitKeyCodec(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []int32{0, 1, 100, 200, -1, -100, math.MaxInt32, math.MinInt32} {
		key := regions.EncodeSplitKey(v)
		assert.Len(key, regions.SplitKeyWidth)

		got, err := regions.DecodeSplitKey(key)
		assert.NoError(err)
		assert.Equal(v, got)
	}

	assert.Equal([]byte{0x00, 0x00, 0x00, 0x64}, regions.EncodeSplitKey(100))
	assert.Equal([]byte{0xff, 0xff, 0xff, 0xff}, regions.EncodeSplitKey(-1))
}

func TestDecodeSplitKeyWrongWidth(t *testing.T) {
	for _, key := range [][]byte{nil, {0x01}, {0, 0, 0, 0, 0, 0, 0, 1}} {
		_, err := regions.DecodeSplitKey(key)
		assert.True(t, rerror.IsCode(err, rerror.RG_DECODE_ERROR), "key %x: %v", key, err)
	}
}

func TestSortSplitKeys(t *testing.T) {
	assert := assert.New(t)

	keys := regions.EncodeSplitKeys([]int32{200, -5, 100})
	assert.False(regions.IsSorted(keys))

	sorted, err := regions.SortSplitKeys(keys)
	assert.NoError(err)
	assert.True(regions.IsSorted(sorted))
	assert.Equal(regions.EncodeSplitKeys([]int32{100, 200, -5}), sorted)

	_, err = regions.SortSplitKeys(regions.EncodeSplitKeys([]int32{7, 3, 7}))
	assert.True(rerror.IsCode(err, rerror.RG_INVALID_SPLITS))
}

func TestCmpKeysLess(t *testing.T) {
	assert := assert.New(t)

	assert.True(regions.CmpKeysLess(nil, []byte{0}))
	assert.True(regions.CmpKeysLess(regions.EncodeSplitKey(100), regions.EncodeSplitKey(200)))
	assert.True(regions.CmpKeysLess(regions.EncodeSplitKey(200), regions.EncodeSplitKey(-1)))
	assert.False(regions.CmpKeysLess([]byte("b"), []byte("a")))
}

func TestSplitPoints(t *testing.T) {
	assert := assert.New(t)

	rs := regions.RegionsFromDB([]*regiondb.Region{
		{RegionID: "3", Table: "t", StartKey: []byte("m")},
		{RegionID: "1", Table: "t", EndKey: []byte("c")},
		{RegionID: "2", Table: "t", StartKey: []byte("c"), EndKey: []byte("m")},
	})
	regions.Sort(rs)

	assert.True(rs[0].IsFirst())
	assert.True(rs[2].IsLast())
	assert.Empty(regions.Gaps(rs))
	assert.Equal([][]byte{nil, []byte("c"), []byte("m")}, regions.StartKeys(rs))
	assert.Equal([][]byte{[]byte("c"), []byte("m")}, regions.SplitPoints(rs))
	assert.Equal("2", rs[1].ToDB().RegionID)
}

func TestGaps(t *testing.T) {
	rs := []*regions.Region{
		{EndKey: []byte("c")},
		{StartKey: []byte("d"), EndKey: []byte("f")},
		{StartKey: []byte("f")},
	}

	assert.Equal(t, []int{1}, regions.Gaps(rs))
}
