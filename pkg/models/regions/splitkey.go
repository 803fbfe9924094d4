package regions

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/gbif/regiontools/pkg/models/rerror"
)

// SplitKeyWidth is the width of an encoded split key: a big-endian int32.
const SplitKeyWidth = 4

func EncodeSplitKey(v int32) []byte {
	buf := make([]byte, SplitKeyWidth)
	binary.BigEndian.PutUint32(buf, uint32(v))
	return buf
}

func EncodeSplitKeys(vs []int32) [][]byte {
	ret := make([][]byte, 0, len(vs))
	for _, v := range vs {
		ret = append(ret, EncodeSplitKey(v))
	}
	return ret
}

// DecodeSplitKey fails for keys that are not exactly SplitKeyWidth bytes long.
func DecodeSplitKey(key []byte) (int32, error) {
	if len(key) != SplitKeyWidth {
		return 0, rerror.Newf(rerror.RG_DECODE_ERROR, "split key %x is %d bytes long, expected %d", key, len(key), SplitKeyWidth)
	}
	return int32(binary.BigEndian.Uint32(key)), nil
}

// CmpKeysLess orders keys the way the table does: as unsigned byte strings.
// Negative int32 keys therefore sort after positive ones.
func CmpKeysLess(key []byte, other []byte) bool {
	return bytes.Compare(key, other) < 0
}

func IsSorted(keys [][]byte) bool {
	return slices.IsSortedFunc(keys, bytes.Compare)
}

// SortSplitKeys sorts keys in table order. Repeated keys would describe an
// empty region and are rejected.
func SortSplitKeys(keys [][]byte) ([][]byte, error) {
	ret := slices.Clone(keys)
	slices.SortFunc(ret, bytes.Compare)
	for i := 1; i < len(ret); i++ {
		if bytes.Equal(ret[i-1], ret[i]) {
			return nil, rerror.Newf(rerror.RG_INVALID_SPLITS, "split key %x is repeated", ret[i])
		}
	}
	return ret, nil
}
