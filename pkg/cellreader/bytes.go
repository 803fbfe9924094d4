package cellreader

import (
	"encoding/binary"
	"math"
)

func PutInt32(v int32) []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(v))
}

func PutInt64(v int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(v))
}

func PutFloat32(v float32) []byte {
	return binary.BigEndian.AppendUint32(nil, math.Float32bits(v))
}

func PutFloat64(v float64) []byte {
	return binary.BigEndian.AppendUint64(nil, math.Float64bits(v))
}
