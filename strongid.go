// Package strongid provides strongly-typed, lexicographically-meaningful
// identifiers compatible with the TypeID specification.
//
// # Overview
//
// An identifier is a fixed-width value (an unsigned integer of 8 to 128
// bits, or a UUID) rendered as a fixed-length lowercase base32 string,
// optionally namespaced by a validated textual prefix:
//
//	user_01h536gfwffx2rm6pa0xg63337   // prefixed, UUID-backed
//	0343                              // bare, uint16-backed
//
// Identifiers are:
//   - Sortable: the encoding is fixed-width with leading zero-characters
//     preserved, so encoded strings sort byte-wise exactly as the
//     underlying values sort
//   - Reversible: decode(encode(v)) == v for every supported width, and
//     malformed input always yields a typed error, never a panic
//   - Strongly typed: the suffix type is a compile-time parameter, so a
//     user ID and an order ID cannot be mixed up even when both are UUIDs
//
// # Two Identifier Flavors
//
//   - ID[T]: the prefix is a runtime value, validated on construction and
//     recorded on parse. Use this when prefixes arrive as data.
//   - Typed[T, P]: the prefix is a compile-time constant supplied by a
//     TypePrefix implementation; parsing rejects non-matching prefixes.
//     Use this to declare one Go type per identifier namespace.
//
// # Usage
//
//	// Dynamic, prefix known at runtime
//	id, err := strongid.New("user", strongid.Uint16(3203))
//	fmt.Println(id) // user_0343
//
//	parsed, err := strongid.Parse[strongid.Uint16]("user_0343")
//
//	// TypeID-compatible, UUID-backed
//	uid, err := strongid.NewV7("user")
//
// # Thread Safety
//
// Everything in this package is pure computation over immutable inputs.
// All operations are safe to invoke concurrently without coordination.
package strongid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is an identifier whose prefix is a runtime value.
//
// The zero ID has no prefix and the zero suffix value. Equality, ordering
// and hashing are structural over (prefix, suffix): two IDs are == exactly
// when both parts match, and ID is usable as a map key.
//
// An ID is immutable after construction.
type ID[T Suffix[T]] struct {
	prefix Prefix
	suffix T
}

// New creates an identifier from a prefix and a suffix value.
//
// The prefix must be 1-63 lowercase ASCII letters; see NewPrefix for the
// failure modes. An empty prefix is ErrPrefixExpected - use NewPlain for
// identifiers without one.
func New[T Suffix[T]](prefix string, value T) (ID[T], error) {
	p, err := NewPrefix(prefix)
	if err != nil {
		return ID[T]{}, err
	}
	return ID[T]{prefix: p, suffix: value}, nil
}

// NewDelimited is New but additionally permits '_' inside the prefix.
func NewDelimited[T Suffix[T]](prefix string, value T) (ID[T], error) {
	p, err := NewDelimitedPrefix(prefix)
	if err != nil {
		return ID[T]{}, err
	}
	return ID[T]{prefix: p, suffix: value}, nil
}

// NewPlain creates an identifier without a prefix.
func NewPlain[T Suffix[T]](value T) ID[T] {
	return ID[T]{suffix: value}
}

// Parse parses the canonical string form of an identifier.
//
// The input is split on the last underscore: the left part, if any, is
// validated as a prefix and the right part is decoded as the suffix. With
// no underscore the whole input is the suffix.
//
//	strongid.Parse[strongid.Uint16]("user_0343") // prefix "user", 3203
//	strongid.Parse[strongid.Uint16]("0343")      // no prefix,     3203
//
// Failure modes: MissingPrefixError for a blank left part, prefix
// validation errors (see NewPrefix), LengthError for a suffix of the wrong
// length, and ErrInvalidByte/ErrInvalidFirstByte from the codec.
func Parse[T Suffix[T]](s string) (ID[T], error) {
	return parse[T](s, false)
}

// ParseDelimited is Parse but permits '_' inside the prefix. Splitting on
// the last underscore keeps the grammar unambiguous:
//
//	strongid.ParseDelimited[strongid.Uint16]("multi_part_0000")
//	// prefix "multi_part", suffix 0
func ParseDelimited[T Suffix[T]](s string) (ID[T], error) {
	return parse[T](s, true)
}

// MustParse is Parse but panics on error. For literals in tests and
// program setup.
func MustParse[T Suffix[T]](s string) ID[T] {
	id, err := Parse[T](s)
	if err != nil {
		panic(fmt.Sprintf("strongid: MustParse(%q): %v", s, err))
	}
	return id
}

func parse[T Suffix[T]](s string, delimited bool) (ID[T], error) {
	var zero T
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		left, right := s[:i], s[i+1:]
		if strings.TrimSpace(left) == "" {
			return ID[T]{}, &MissingPrefixError{Prefix: left}
		}
		p, err := newPrefix(left, delimited)
		if err != nil {
			return ID[T]{}, err
		}
		v, err := zero.Decode(right)
		if err != nil {
			return ID[T]{}, err
		}
		return ID[T]{prefix: p, suffix: v}, nil
	}
	v, err := zero.Decode(s)
	if err != nil {
		return ID[T]{}, err
	}
	return ID[T]{suffix: v}, nil
}

// ============================================================================
// Accessors
// ============================================================================

// Prefix returns the prefix text, or "" when the identifier has none.
func (id ID[T]) Prefix() string {
	return id.prefix.value
}

// HasPrefix reports whether the identifier carries a prefix.
func (id ID[T]) HasPrefix() bool {
	return !id.prefix.IsZero()
}

// Suffix returns the suffix value.
func (id ID[T]) Suffix() T {
	return id.suffix
}

// String returns the canonical form: "prefix_suffix" when a prefix is
// present, the bare encoded suffix otherwise. This implements fmt.Stringer.
func (id ID[T]) String() string {
	if id.prefix.IsZero() {
		return id.suffix.Encode()
	}
	return id.prefix.value + "_" + id.suffix.Encode()
}

// ============================================================================
// Comparison
// ============================================================================

// Equal checks if two identifiers have the same prefix and suffix.
// Equivalent to ==; provided for symmetry with Compare.
func (id ID[T]) Equal(other ID[T]) bool {
	return id == other
}

// Compare orders identifiers by prefix, then by suffix value.
//
// Returns -1, 0 or 1. Because the encoding preserves numeric order, the
// suffix comparison is done on the encoded form and matches the ordering
// of the underlying values.
func (id ID[T]) Compare(other ID[T]) int {
	if c := strings.Compare(id.prefix.value, other.prefix.value); c != 0 {
		return c
	}
	return strings.Compare(id.suffix.Encode(), other.suffix.Encode())
}

// ============================================================================
// Text, JSON and SQL Integration
// ============================================================================

// MarshalText implements encoding.TextMarshaler using the canonical string
// form.
func (id ID[T]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Parsing is delimited-tolerant so every constructible identifier survives
// a marshal/unmarshal round trip, including those built with
// NewDelimitedPrefix.
func (id *ID[T]) UnmarshalText(text []byte) error {
	parsed, err := ParseDelimited[T](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The identifier is a JSON string.
func (id ID[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID[T]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// Scan implements sql.Scanner, reading the canonical string form from TEXT
// or VARCHAR columns. NULL scans to the zero identifier.
func (id *ID[T]) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*id = ID[T]{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into ID", value)
	}
}

// Value implements driver.Valuer, storing the canonical string form.
//
// Because the encoding is fixed-width and order-preserving, TEXT columns of
// identifiers sort and range-scan in value order.
func (id ID[T]) Value() (driver.Value, error) {
	return id.String(), nil
}
