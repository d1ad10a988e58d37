// Package strongid - prefix.go implements the prefix grammar and its
// validation.
//
// A prefix is the optional human-readable namespace label ahead of the
// suffix: 1-63 bytes of lowercase ASCII letters, or, in delimited mode,
// lowercase letters plus '_'. Delimited prefixes are unambiguous because
// parsing always splits on the last underscore in the input.

package strongid

// MaxPrefixLen is the exclusive upper bound on prefix length in bytes.
// Prefixes of 64 bytes or more are rejected.
const MaxPrefixLen = 64

// Prefix is validated prefix text.
//
// The zero value means "no prefix". Construct non-zero values through
// NewPrefix or NewDelimitedPrefix; the identifier constructors and parsers
// never produce an unvalidated Prefix.
//
// Prefix text is held as a plain string: Go strings are immutable views, so
// the caller's text is shared or copied by the runtime as needed and the
// borrowed/owned distinction of other languages does not arise.
type Prefix struct {
	value string
}

// NewPrefix validates s as a prefix of lowercase ASCII letters.
//
// Validation order: length first (PrefixTooLongError for 64+ bytes), then
// the first disallowed byte (PrefixCharacterError), then emptiness
// (ErrPrefixExpected) - asking for a prefix and supplying none is an error;
// use NewPlain for identifiers without one.
func NewPrefix(s string) (Prefix, error) {
	return newPrefix(s, false)
}

// NewDelimitedPrefix validates s like NewPrefix but additionally permits
// '_' as an internal delimiter, allowing prefixes such as "multi_part".
func NewDelimitedPrefix(s string) (Prefix, error) {
	return newPrefix(s, true)
}

func newPrefix(s string, delimited bool) (Prefix, error) {
	if len(s) >= MaxPrefixLen {
		return Prefix{}, &PrefixTooLongError{Length: len(s)}
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if delimited && b == '_' {
			continue
		}
		if b < 'a' || b > 'z' {
			return Prefix{}, &PrefixCharacterError{Char: b}
		}
	}
	if s == "" {
		return Prefix{}, ErrPrefixExpected
	}
	return Prefix{value: s}, nil
}

// String returns the prefix text, or "" for the zero Prefix.
func (p Prefix) String() string {
	return p.value
}

// IsZero reports whether the Prefix is the zero "no prefix" value.
func (p Prefix) IsZero() bool {
	return p.value == ""
}
