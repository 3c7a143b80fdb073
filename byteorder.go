package tracekit

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ByteOrder names the interpretation of multi-byte values in a trace file.
// The two valid values are [BigEndian] and [LittleEndian]; comparison of
// raw strings is case-insensitive via [ParseByteOrder].
type ByteOrder string

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = "big-endian"

	// LittleEndian stores the least significant byte first.
	LittleEndian ByteOrder = "little-endian"
)

// ParseByteOrder normalizes a byte-order name to one of the two canonical
// values. Matching is case-insensitive, so "Big-Endian" and "BIG-ENDIAN"
// both parse to BigEndian.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case string(BigEndian):
		return BigEndian, nil
	case string(LittleEndian):
		return LittleEndian, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadByteOrder, s)
	}
}

// Valid reports whether the value names one of the two known byte orders,
// ignoring case.
func (o ByteOrder) Valid() bool {
	_, err := ParseByteOrder(string(o))
	return err == nil
}

// Binary returns the encoding/binary order used to decode bytes carried in
// this byte order. It returns nil for unrecognized values; check Valid
// first when the value comes from outside the package.
func (o ByteOrder) Binary() binary.ByteOrder {
	normalized, err := ParseByteOrder(string(o))
	if err != nil {
		return nil
	}
	if normalized == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// String returns the canonical spelling, or the raw value when it does not
// parse.
func (o ByteOrder) String() string {
	normalized, err := ParseByteOrder(string(o))
	if err != nil {
		return string(o)
	}
	return string(normalized)
}
