package cellreader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrDecode matches every *DecodeError via errors.Is.
var ErrDecode = errors.New("cellreader: decode error")

// DecodeError reports a cell whose byte length does not fit the requested type.
type DecodeError struct {
	Family string
	Column string
	Type   string
	Want   int
	Got    int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cellreader: cannot decode %s:%s as %s, want %d bytes, got %d", e.Family, e.Column, e.Type, e.Want, e.Got)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func lookup(row Row, family, column string) ([]byte, bool) {
	c, ok := row.LatestCell(family, column)
	if !ok || c == nil {
		return nil, false
	}
	return c.Value, true
}

func decodeFixed[T any](row Row, family, column string, defaultValue T, typ string, width int, decode func([]byte) T) (T, error) {
	raw, ok := lookup(row, family, column)
	if !ok {
		return defaultValue, nil
	}
	if len(raw) != width {
		var zero T
		return zero, &DecodeError{Family: family, Column: column, Type: typ, Want: width, Got: len(raw)}
	}
	return decode(raw), nil
}

// GetString returns the value at family:column as a string, or defaultValue if absent.
func GetString(row Row, family, column string, defaultValue string) string {
	raw, ok := lookup(row, family, column)
	if !ok {
		return defaultValue
	}
	return string(raw)
}

// GetInt32 decodes a 4 byte big-endian value.
func GetInt32(row Row, family, column string, defaultValue int32) (int32, error) {
	return decodeFixed(row, family, column, defaultValue, "int32", 4, func(b []byte) int32 {
		return int32(binary.BigEndian.Uint32(b))
	})
}

// GetInt64 decodes an 8 byte big-endian value.
func GetInt64(row Row, family, column string, defaultValue int64) (int64, error) {
	return decodeFixed(row, family, column, defaultValue, "int64", 8, func(b []byte) int64 {
		return int64(binary.BigEndian.Uint64(b))
	})
}

// GetFloat32 decodes the IEEE 754 bits of a 4 byte big-endian value.
func GetFloat32(row Row, family, column string, defaultValue float32) (float32, error) {
	return decodeFixed(row, family, column, defaultValue, "float32", 4, func(b []byte) float32 {
		return math.Float32frombits(binary.BigEndian.Uint32(b))
	})
}

// GetFloat64 decodes the IEEE 754 bits of an 8 byte big-endian value.
func GetFloat64(row Row, family, column string, defaultValue float64) (float64, error) {
	return decodeFixed(row, family, column, defaultValue, "float64", 8, func(b []byte) float64 {
		return math.Float64frombits(binary.BigEndian.Uint64(b))
	})
}

// GetBytes returns the raw value, or defaultValue (which may be nil) if absent.
func GetBytes(row Row, family, column string, defaultValue []byte) []byte {
	raw, ok := lookup(row, family, column)
	if !ok {
		return defaultValue
	}
	return raw
}

// GetTimestamp returns the write timestamp of the latest cell at family:column.
// The second result is false when there is no such cell.
func GetTimestamp(row Row, family, column string) (int64, bool) {
	c, ok := row.LatestCell(family, column)
	if !ok || c == nil {
		return 0, false
	}
	return c.Timestamp, true
}
