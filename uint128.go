// Package strongid - uint128.go provides the 128-bit unsigned integer
// suffix type.
//
// Go has no native 128-bit integer, so Uint128 carries two uint64 halves.
// It is comparable (usable as a map key and with ==) and encodes to the same
// 26-character form as a UUID, making the two interchangeable on the wire.

package strongid

import "encoding/binary"

// Uint128 is a 128-bit unsigned integer with a canonical 16-byte big-endian
// representation.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128From builds a Uint128 from a 64-bit value.
func Uint128From(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Uint128FromBytes builds a Uint128 from a 16-byte big-endian buffer.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes returns the canonical 16-byte big-endian representation.
func (v Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], v.Hi)
	binary.BigEndian.PutUint64(b[8:], v.Lo)
	return b
}

// IsZero reports whether the value is zero.
func (v Uint128) IsZero() bool {
	return v.Hi == 0 && v.Lo == 0
}

// Compare returns -1, 0 or 1 depending on whether v is less than, equal to
// or greater than other. The ordering matches the byte-wise ordering of the
// encoded form.
func (v Uint128) Compare(other Uint128) int {
	switch {
	case v.Hi < other.Hi:
		return -1
	case v.Hi > other.Hi:
		return 1
	case v.Lo < other.Lo:
		return -1
	case v.Lo > other.Lo:
		return 1
	default:
		return 0
	}
}

// Encode returns the 26-character base32 form of the value.
func (v Uint128) Encode() string {
	src := v.Bytes()
	var dst [26]byte
	encode(dst[:], src[:])
	return string(dst[:])
}

// Decode parses a 26-character base32 string into a Uint128.
func (Uint128) Decode(s string) (Uint128, error) {
	var out [16]byte
	if err := decodeString(out[:], s); err != nil {
		return Uint128{}, err
	}
	return Uint128FromBytes(out), nil
}

// EncodedLen returns 26.
func (Uint128) EncodedLen() int { return EncodedLen(16) }
