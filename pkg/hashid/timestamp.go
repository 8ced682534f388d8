package hashid

import "encoding/binary"

// PrefixSize is the length of the timestamp prefix in bytes.
const PrefixSize = 4

// PackEpoch encodes the low 32 bits of epoch as four big-endian bytes.
// Negative and over-range values wrap around with two's-complement semantics.
func PackEpoch(epoch int64) [PrefixSize]byte {
	var b [PrefixSize]byte
	binary.BigEndian.PutUint32(b[:], uint32(epoch))
	return b
}

// UnpackEpoch is the inverse of PackEpoch for values in the uint32 range.
func UnpackEpoch(b [PrefixSize]byte) uint32 {
	return binary.BigEndian.Uint32(b[:])
}
