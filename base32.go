// Package strongid - base32.go implements the fixed-width base32 codec that
// backs every identifier suffix.
//
// # Design
//
// This is not a general-purpose base32: it is the TypeID/Crockford variant,
// specialised for fixed-width values:
//   - Every W-byte value encodes to exactly EncodedLen(W) characters, with
//     leading zero-characters preserved. No minimal-length encoding.
//   - Because the length is fixed and the alphabet is ordered, encoded
//     strings sort byte-wise in exactly the same order as the values they
//     encode. This is the property that makes the identifiers usable as
//     database keys and pagination cursors.
//   - Decoding is strict: a single out-of-alphabet character or an
//     overflowing leading digit rejects the whole input.
//
// # Performance Optimizations
//
//   - Bitshifting throughout (base32 is a power-of-2 base)
//   - Pre-computed 256-byte lookup table for O(1) character-to-value mapping
//   - Caller-provided buffers; encode and decode perform zero allocations
//
// # Thread Safety
//
// All functions are safe for concurrent use. The lookup table is built once
// at package init time and is read-only afterwards.
package strongid

// alphabet is the Crockford-style base32 character set used by the TypeID
// specification. Lowercase only; excludes the visually ambiguous i, l, o, u.
// The alphabet is ordered, so encoded strings preserve numeric ordering.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// decodeMap provides O(1) character-to-value lookups.
// Initialized once at package init time and read-only afterwards, making it
// safe for concurrent access without synchronization.
var decodeMap [256]byte

// invalidChar marks bytes outside the alphabet in decodeMap.
const invalidChar = 0xFF

func init() {
	for i := 0; i < len(decodeMap); i++ {
		decodeMap[i] = invalidChar
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = byte(i)
	}
}

// EncodedLen returns the number of base32 characters needed for a value of
// the given byte width: ceil(width*8 / 5).
//
//	EncodedLen(1)  == 2   // uint8
//	EncodedLen(2)  == 4   // uint16
//	EncodedLen(4)  == 7   // uint32
//	EncodedLen(8)  == 13  // uint64
//	EncodedLen(16) == 26  // uint128 / UUID
func EncodedLen(width int) int {
	return (width*8 + 4) / 5
}

// encode writes the fixed-length base32 form of src into dst.
//
// src is treated as a single big-endian unsigned integer and emitted
// most-significant-digit first, left-padded with '0' so the output always
// fills dst. len(dst) must be EncodedLen(len(src)); the caller guarantees
// buffer sizes, so encode cannot fail.
//
// The bits of src are consumed from the least significant end, five at a
// time, filling dst from the right. Whatever is left over (src width in bits
// is rarely a multiple of 5) becomes the partial leading digit.
func encode(dst, src []byte) {
	var acc uint32
	var bits uint

	j := len(dst) - 1
	for i := len(src) - 1; i >= 0; i-- {
		acc |= uint32(src[i]) << bits
		bits += 8
		for bits >= 5 {
			dst[j] = alphabet[acc&0x1F]
			j--
			acc >>= 5
			bits -= 5
		}
	}
	if j >= 0 {
		// Partial leading digit: fewer than 5 real bits remain.
		dst[j] = alphabet[acc&0x1F]
	}
}

// decode reverses encode: it maps each character of src back through the
// alphabet and writes the big-endian value into dst.
//
// len(src) must be EncodedLen(len(dst)); length validation happens in the
// suffix types before decode is invoked.
//
// Errors:
//   - ErrInvalidByte: any character outside the alphabet.
//   - ErrInvalidFirstByte: the leading character encodes a magnitude that
//     does not fit in len(dst) bytes. The first character is the only one
//     whose full 5-bit range exceeds the real output bits (the encoding
//     carries EncodedLen(W)*5 - W*8 spare bits there), so it is checked
//     up front before any accumulation.
//
// decode never panics on malformed input and performs no allocations.
func decode(dst, src []byte) error {
	// Spare bits carried by the leading character.
	overhang := uint(len(src)*5 - len(dst)*8)

	first := decodeMap[src[0]]
	if first == invalidChar {
		return ErrInvalidByte
	}
	if first>>(5-overhang) != 0 {
		return ErrInvalidFirstByte
	}

	// Seed the accumulator with only the real bits of the first character,
	// so the bit stream lines up exactly with len(dst) output bytes.
	acc := uint32(first)
	bits := 5 - overhang

	j := 0
	for i := 1; i < len(src); i++ {
		v := decodeMap[src[i]]
		if v == invalidChar {
			return ErrInvalidByte
		}
		acc = acc<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst[j] = byte(acc >> bits)
			j++
			acc &= 1<<bits - 1
		}
	}
	return nil
}
