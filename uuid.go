// Package strongid - uuid.go provides the UUID suffix type and generation
// helpers, backed by github.com/google/uuid.
//
// A UUID suffix is what makes an identifier TypeID-compatible: a 128-bit
// value encoded as 26 base32 characters behind an optional prefix. UUIDv7
// is the variant the TypeID specification pairs with, since its timestamp
// prefix keeps encoded identifiers sortable by creation time.

package strongid

import "github.com/google/uuid"

// UUID is a 128-bit universally unique identifier suffix.
//
// It is a defined type over uuid.UUID, so it is comparable, copyable and
// convertible to and from the underlying library type at zero cost.
type UUID uuid.UUID

// UUIDFrom wraps a uuid.UUID as a suffix value.
func UUIDFrom(u uuid.UUID) UUID {
	return UUID(u)
}

// UUIDFromUint128 builds a UUID from a 128-bit integer. No version or
// variant bits are set; the value is taken verbatim.
func UUIDFromUint128(v Uint128) UUID {
	return UUID(v.Bytes())
}

// NewUUIDv4 generates a random (version 4) UUID suffix.
func NewUUIDv4() (UUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return UUID{}, err
	}
	return UUID(u), nil
}

// NewUUIDv7 generates a time-ordered (version 7) UUID suffix.
//
// This is the variant to use for TypeID-style identifiers: encoded IDs sort
// lexicographically in creation order.
func NewUUIDv7() (UUID, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return UUID{}, err
	}
	return UUID(u), nil
}

// UUID returns the underlying uuid.UUID.
func (u UUID) UUID() uuid.UUID {
	return uuid.UUID(u)
}

// Uint128 returns the UUID bytes as a 128-bit integer.
func (u UUID) Uint128() Uint128 {
	return Uint128FromBytes([16]byte(u))
}

// String returns the canonical hyphenated RFC 4122 form. For the base32
// identifier form, use Encode.
func (u UUID) String() string {
	return uuid.UUID(u).String()
}

// Encode returns the 26-character base32 form of the UUID.
func (u UUID) Encode() string {
	var dst [26]byte
	encode(dst[:], u[:])
	return string(dst[:])
}

// Decode parses a 26-character base32 string into a UUID.
func (UUID) Decode(s string) (UUID, error) {
	var out [16]byte
	if err := decodeString(out[:], s); err != nil {
		return UUID{}, err
	}
	return UUID(out), nil
}

// EncodedLen returns 26.
func (UUID) EncodedLen() int { return EncodedLen(16) }

// ============================================================================
// Generation Helpers
// ============================================================================

// NewV4 generates a prefixed identifier over a fresh random UUID.
func NewV4(prefix string) (ID[UUID], error) {
	u, err := NewUUIDv4()
	if err != nil {
		return ID[UUID]{}, err
	}
	return New(prefix, u)
}

// NewV4Plain generates an unprefixed identifier over a fresh random UUID.
func NewV4Plain() (ID[UUID], error) {
	u, err := NewUUIDv4()
	if err != nil {
		return ID[UUID]{}, err
	}
	return NewPlain(u), nil
}

// NewV7 generates a prefixed identifier over a fresh time-ordered UUID.
//
//	id, err := strongid.NewV7("user")
//	fmt.Println(id) // user_01h536gfwffx2rm6pa0xg63337
func NewV7(prefix string) (ID[UUID], error) {
	u, err := NewUUIDv7()
	if err != nil {
		return ID[UUID]{}, err
	}
	return New(prefix, u)
}

// NewV7Plain generates an unprefixed identifier over a fresh time-ordered
// UUID.
func NewV7Plain() (ID[UUID], error) {
	u, err := NewUUIDv7()
	if err != nil {
		return ID[UUID]{}, err
	}
	return NewPlain(u), nil
}

// NewTypedV4 generates a fixed-prefix identifier over a fresh random UUID.
func NewTypedV4[P TypePrefix]() (Typed[UUID, P], error) {
	u, err := NewUUIDv4()
	if err != nil {
		return Typed[UUID, P]{}, err
	}
	return NewTyped[UUID, P](u), nil
}

// NewTypedV7 generates a fixed-prefix identifier over a fresh time-ordered
// UUID.
func NewTypedV7[P TypePrefix]() (Typed[UUID, P], error) {
	u, err := NewUUIDv7()
	if err != nil {
		return Typed[UUID, P]{}, err
	}
	return NewTyped[UUID, P](u), nil
}
