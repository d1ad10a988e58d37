// Package strongid - typed.go implements the fixed-prefix identifier
// variant, where the prefix is a compile-time constant of the Go type
// rather than a runtime field.
//
// Other implementations of this pattern generate a struct per identifier
// namespace with a macro or a build-time code generator. In Go the same
// contract falls out of a generic type parametrised by a prefix-carrying
// marker type: declaring a namespace is three lines and the compiler keeps
// distinct namespaces distinct.
//
//	type userPrefix struct{}
//
//	func (userPrefix) IDPrefix() string { return "user" }
//
//	type UserID = strongid.Typed[strongid.UUID, userPrefix]
//
// A UserID and an OrderID are now different types: one cannot be assigned,
// compared or parsed as the other, with no runtime dispatch involved.

package strongid

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TypePrefix supplies the compile-time prefix literal for a Typed
// identifier. Implementations are zero-size marker types.
//
// IDPrefix must return either "" (the identifier has no prefix) or a valid
// prefix: 1-63 bytes of lowercase ASCII letters, with '_' permitted as an
// internal delimiter. An invalid literal is a programmer error and panics
// at first use; input data never panics.
type TypePrefix interface {
	IDPrefix() string
}

// NoPrefix is the TypePrefix for identifiers without a prefix.
type NoPrefix struct{}

// IDPrefix returns "".
func (NoPrefix) IDPrefix() string { return "" }

// Typed is an identifier whose prefix is fixed by the type parameter P.
//
// Only the suffix is stored, so a Typed value is exactly the size of its
// suffix. Equality, ordering and hashing are structural; values of the
// same instantiation compare with ==.
type Typed[T Suffix[T], P TypePrefix] struct {
	suffix T
}

// typedPrefix resolves and validates P's literal. An invalid literal baked
// into a TypePrefix implementation is caught here, once per use site.
func typedPrefix[P TypePrefix]() string {
	var p P
	s := p.IDPrefix()
	if s == "" {
		return ""
	}
	if _, err := NewDelimitedPrefix(s); err != nil {
		panic(fmt.Sprintf("strongid: invalid prefix literal %q: %v", s, err))
	}
	return s
}

// NewTyped creates a fixed-prefix identifier from a raw suffix value.
func NewTyped[T Suffix[T], P TypePrefix](value T) Typed[T, P] {
	return Typed[T, P]{suffix: value}
}

// ParseTyped parses the canonical string form of a fixed-prefix identifier.
//
// The split logic matches Parse (last underscore wins), but the prefix is
// checked against P's literal instead of being recorded:
//   - prefix configured, input has none or a blank left part:
//     MissingPrefixError carrying the expected literal
//   - prefix configured, left part differs: InvalidPrefixError
//   - no prefix configured, input carries one: NoPrefixExpectedError
//
// Suffix decoding fails as in Parse.
func ParseTyped[T Suffix[T], P TypePrefix](s string) (Typed[T, P], error) {
	var zero T
	expected := typedPrefix[P]()

	i := strings.LastIndexByte(s, '_')
	if expected == "" {
		if i >= 0 {
			return Typed[T, P]{}, &NoPrefixExpectedError{Found: s[:i]}
		}
		v, err := zero.Decode(s)
		if err != nil {
			return Typed[T, P]{}, err
		}
		return Typed[T, P]{suffix: v}, nil
	}

	if i < 0 {
		return Typed[T, P]{}, &MissingPrefixError{Prefix: expected}
	}
	left, right := s[:i], s[i+1:]
	if left == "" {
		return Typed[T, P]{}, &MissingPrefixError{Prefix: expected}
	}
	if left != expected {
		return Typed[T, P]{}, &InvalidPrefixError{Expected: expected, Found: left}
	}
	v, err := zero.Decode(right)
	if err != nil {
		return Typed[T, P]{}, err
	}
	return Typed[T, P]{suffix: v}, nil
}

// MustParseTyped is ParseTyped but panics on error. For literals in tests
// and program setup.
func MustParseTyped[T Suffix[T], P TypePrefix](s string) Typed[T, P] {
	id, err := ParseTyped[T, P](s)
	if err != nil {
		panic(fmt.Sprintf("strongid: MustParseTyped(%q): %v", s, err))
	}
	return id
}

// ============================================================================
// Accessors
// ============================================================================

// Prefix returns P's prefix literal, or "" when none is configured.
func (id Typed[T, P]) Prefix() string {
	return typedPrefix[P]()
}

// Suffix returns the raw suffix value.
func (id Typed[T, P]) Suffix() T {
	return id.suffix
}

// Dynamic converts to the runtime-prefix representation, for code that
// handles identifiers of mixed namespaces.
func (id Typed[T, P]) Dynamic() ID[T] {
	if p := typedPrefix[P](); p != "" {
		return ID[T]{prefix: Prefix{value: p}, suffix: id.suffix}
	}
	return ID[T]{suffix: id.suffix}
}

// String returns the canonical form: "prefix_suffix" when P configures a
// prefix, the bare encoded suffix otherwise. This implements fmt.Stringer.
func (id Typed[T, P]) String() string {
	if p := typedPrefix[P](); p != "" {
		return p + "_" + id.suffix.Encode()
	}
	return id.suffix.Encode()
}

// Equal checks if two identifiers carry the same suffix value.
// Equivalent to ==; provided for symmetry with Compare.
func (id Typed[T, P]) Equal(other Typed[T, P]) bool {
	return id == other
}

// Compare orders identifiers by suffix value, via the order-preserving
// encoded form. Returns -1, 0 or 1.
func (id Typed[T, P]) Compare(other Typed[T, P]) int {
	return strings.Compare(id.suffix.Encode(), other.suffix.Encode())
}

// ============================================================================
// Text, JSON and SQL Integration
// ============================================================================

// MarshalText implements encoding.TextMarshaler using the canonical string
// form.
func (id Typed[T, P]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Typed[T, P]) UnmarshalText(text []byte) error {
	parsed, err := ParseTyped[T, P](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler. The identifier is a JSON string.
func (id Typed[T, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *Typed[T, P]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

// Scan implements sql.Scanner, reading the canonical string form from TEXT
// or VARCHAR columns. NULL scans to the zero identifier.
func (id *Typed[T, P]) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*id = Typed[T, P]{}
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Typed", value)
	}
}

// Value implements driver.Valuer, storing the canonical string form.
func (id Typed[T, P]) Value() (driver.Value, error) {
	return id.String(), nil
}
