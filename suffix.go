// Package strongid - suffix.go defines the suffix value abstraction and its
// fixed-width unsigned integer implementations.
//
// A suffix is the encoded-value portion of an identifier. Any comparable
// type with a canonical big-endian byte representation can serve as one; the
// Suffix constraint is the only thing the identifier containers depend on,
// which keeps ID and Typed value-type-polymorphic with compile-time dispatch
// and zero runtime overhead.

package strongid

import (
	"encoding/binary"
	"math/bits"
)

// Suffix is the capability constraint for identifier value types.
//
// The set of implementations is closed and known at compile time: Uint8,
// Uint16, Uint32, Uint64, Uint, Uint128 and UUID. Decode is a value-receiver
// method that returns a fresh value, so generic code can decode through a
// zero value without reflection:
//
//	var zero T
//	v, err := zero.Decode(text)
//
// Implementations must guarantee that Encode always produces exactly
// EncodedLen() characters and that Decode(Encode(v)) == v for every value.
type Suffix[T any] interface {
	comparable

	// Encode returns the canonical fixed-length base32 form of the value.
	Encode() string

	// Decode parses a fixed-length base32 string produced by Encode.
	// Input of any other length fails with a LengthError before the codec
	// runs; codec failures surface as ErrInvalidByte or ErrInvalidFirstByte.
	Decode(s string) (T, error)

	// EncodedLen returns the fixed encoded length for this type.
	EncodedLen() int
}

// Fixed-width unsigned integer suffix types.
//
// Each wraps the corresponding Go integer; conversions to and from the raw
// value are plain type conversions. Uint matches the platform word size
// (32 or 64 bits), mirroring the behavior of a native size type.
type (
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	Uint   uint
)

// uintWidth is the byte width of the platform word.
const uintWidth = bits.UintSize / 8

// ============================================================================
// Uint8
// ============================================================================

// Encode returns the 2-character base32 form of the value.
func (v Uint8) Encode() string {
	var src [1]byte
	var dst [2]byte
	src[0] = byte(v)
	encode(dst[:], src[:])
	return string(dst[:])
}

// Decode parses a 2-character base32 string into a Uint8.
func (Uint8) Decode(s string) (Uint8, error) {
	var out [1]byte
	if err := decodeString(out[:], s); err != nil {
		return 0, err
	}
	return Uint8(out[0]), nil
}

// EncodedLen returns 2.
func (Uint8) EncodedLen() int { return EncodedLen(1) }

// ============================================================================
// Uint16
// ============================================================================

// Encode returns the 4-character base32 form of the value.
func (v Uint16) Encode() string {
	var src [2]byte
	var dst [4]byte
	binary.BigEndian.PutUint16(src[:], uint16(v))
	encode(dst[:], src[:])
	return string(dst[:])
}

// Decode parses a 4-character base32 string into a Uint16.
func (Uint16) Decode(s string) (Uint16, error) {
	var out [2]byte
	if err := decodeString(out[:], s); err != nil {
		return 0, err
	}
	return Uint16(binary.BigEndian.Uint16(out[:])), nil
}

// EncodedLen returns 4.
func (Uint16) EncodedLen() int { return EncodedLen(2) }

// ============================================================================
// Uint32
// ============================================================================

// Encode returns the 7-character base32 form of the value.
func (v Uint32) Encode() string {
	var src [4]byte
	var dst [7]byte
	binary.BigEndian.PutUint32(src[:], uint32(v))
	encode(dst[:], src[:])
	return string(dst[:])
}

// Decode parses a 7-character base32 string into a Uint32.
func (Uint32) Decode(s string) (Uint32, error) {
	var out [4]byte
	if err := decodeString(out[:], s); err != nil {
		return 0, err
	}
	return Uint32(binary.BigEndian.Uint32(out[:])), nil
}

// EncodedLen returns 7.
func (Uint32) EncodedLen() int { return EncodedLen(4) }

// ============================================================================
// Uint64
// ============================================================================

// Encode returns the 13-character base32 form of the value.
func (v Uint64) Encode() string {
	var src [8]byte
	var dst [13]byte
	binary.BigEndian.PutUint64(src[:], uint64(v))
	encode(dst[:], src[:])
	return string(dst[:])
}

// Decode parses a 13-character base32 string into a Uint64.
func (Uint64) Decode(s string) (Uint64, error) {
	var out [8]byte
	if err := decodeString(out[:], s); err != nil {
		return 0, err
	}
	return Uint64(binary.BigEndian.Uint64(out[:])), nil
}

// EncodedLen returns 13.
func (Uint64) EncodedLen() int { return EncodedLen(8) }

// ============================================================================
// Uint (platform width)
// ============================================================================

// Encode returns the base32 form of the value: 13 characters on 64-bit
// platforms, 7 on 32-bit ones.
func (v Uint) Encode() string {
	var src [uintWidth]byte
	dst := make([]byte, EncodedLen(uintWidth))
	putUint(src[:], uint64(v))
	encode(dst, src[:])
	return string(dst)
}

// Decode parses a platform-width base32 string into a Uint.
func (Uint) Decode(s string) (Uint, error) {
	var out [uintWidth]byte
	if err := decodeString(out[:], s); err != nil {
		return 0, err
	}
	return Uint(getUint(out[:])), nil
}

// EncodedLen returns the fixed length for the platform word width.
func (Uint) EncodedLen() int { return EncodedLen(uintWidth) }

// putUint writes v big-endian into a 4- or 8-byte buffer.
func putUint(b []byte, v uint64) {
	if len(b) == 8 {
		binary.BigEndian.PutUint64(b, v)
		return
	}
	binary.BigEndian.PutUint32(b, uint32(v))
}

// getUint reads a big-endian 4- or 8-byte buffer.
func getUint(b []byte) uint64 {
	if len(b) == 8 {
		return binary.BigEndian.Uint64(b)
	}
	return uint64(binary.BigEndian.Uint32(b))
}

// decodeString validates the input length against the output width and runs
// the codec. Shared by every suffix implementation so the length check and
// the error mapping stay in one place.
func decodeString(dst []byte, s string) error {
	want := EncodedLen(len(dst))
	if len(s) != want {
		return &LengthError{Expected: want, Found: len(s)}
	}
	return decode(dst, []byte(s))
}
