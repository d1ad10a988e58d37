// Package strongid - errors.go defines the closed set of error kinds for
// identifier construction, parsing and decoding.
//
// Every failure mode has a package-level sentinel usable with errors.Is().
// Failures that carry context (expected/found values, offending characters)
// are represented by struct errors which Unwrap() to their sentinel, so both
// errors.Is() and errors.As() work:
//
//	_, err := strongid.Parse[strongid.Uint16]("user_0000000000")
//	if errors.Is(err, strongid.ErrInvalidLength) { ... }
//
//	var lenErr *strongid.LengthError
//	if errors.As(err, &lenErr) {
//	    log.Printf("expected %d chars, got %d", lenErr.Expected, lenErr.Found)
//	}
//
// All errors are surfaced as values; no operation panics on malformed input.
// Operations are pure and deterministic, so there is nothing to retry and no
// partial success: a parse either yields a complete identifier or an error.

package strongid

import (
	"errors"
	"fmt"
)

// Sentinel errors. Struct errors below unwrap to these.
var (
	// ErrInvalidByte is returned when decode input contains a character
	// outside the base32 alphabet.
	ErrInvalidByte = errors.New("invalid base32 byte")

	// ErrInvalidFirstByte is returned when the leading character of decode
	// input encodes a magnitude that cannot fit in the target width.
	ErrInvalidFirstByte = errors.New("invalid base32 first byte")

	// ErrInvalidLength is returned when decode input length does not match
	// the fixed encoded length of the target width.
	ErrInvalidLength = errors.New("invalid encoded length")

	// ErrMissingPrefix is returned when a prefix was required but the input
	// carried none.
	ErrMissingPrefix = errors.New("missing prefix")

	// ErrInvalidPrefix is returned when input carried a prefix that does not
	// match the fixed prefix configured for the type.
	ErrInvalidPrefix = errors.New("invalid prefix")

	// ErrNoPrefixExpected is returned when input carried a prefix but the
	// type is configured without one.
	ErrNoPrefixExpected = errors.New("no prefix expected")

	// ErrPrefixTooLong is returned for prefixes of 64 bytes or more.
	ErrPrefixTooLong = errors.New("prefix too long")

	// ErrPrefixExpected is returned when a prefix was supplied but turned
	// out to be empty.
	ErrPrefixExpected = errors.New("no prefix was given, but one was expected")

	// ErrIncorrectPrefixCharacter is returned when a prefix contains a byte
	// outside its allowed character set.
	ErrIncorrectPrefixCharacter = errors.New("incorrect prefix character")
)

// ============================================================================
// Struct Errors
// ============================================================================

// LengthError reports a decode input whose length does not equal the fixed
// encoded length of the target width.
type LengthError struct {
	// Expected is the fixed encoded length for the width, in characters.
	Expected int

	// Found is the actual input length.
	Found int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid encoded length: expected %d, found %d", e.Expected, e.Found)
}

// Unwrap returns ErrInvalidLength for errors.Is() compatibility.
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// MissingPrefixError reports input that should have carried a prefix but did
// not. For fixed-prefix types, Prefix holds the expected literal; for
// dynamic parsing it holds the (empty or blank) text found left of the
// separator.
type MissingPrefixError struct {
	Prefix string
}

// Error implements the error interface.
func (e *MissingPrefixError) Error() string {
	return fmt.Sprintf("expected prefix %q", e.Prefix)
}

// Unwrap returns ErrMissingPrefix for errors.Is() compatibility.
func (e *MissingPrefixError) Unwrap() error {
	return ErrMissingPrefix
}

// InvalidPrefixError reports a fixed-prefix parse whose input prefix did not
// textually match the configured literal.
type InvalidPrefixError struct {
	Expected string
	Found    string
}

// Error implements the error interface.
func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("invalid prefix: expected %q, found %q", e.Expected, e.Found)
}

// Unwrap returns ErrInvalidPrefix for errors.Is() compatibility.
func (e *InvalidPrefixError) Unwrap() error {
	return ErrInvalidPrefix
}

// NoPrefixExpectedError reports input that carried a prefix where the type
// is configured without one.
type NoPrefixExpectedError struct {
	Found string
}

// Error implements the error interface.
func (e *NoPrefixExpectedError) Error() string {
	return fmt.Sprintf("found prefix %q, none expected", e.Found)
}

// Unwrap returns ErrNoPrefixExpected for errors.Is() compatibility.
func (e *NoPrefixExpectedError) Unwrap() error {
	return ErrNoPrefixExpected
}

// PrefixTooLongError reports a prefix at or over the 64-byte limit.
type PrefixTooLongError struct {
	Length int
}

// Error implements the error interface.
func (e *PrefixTooLongError) Error() string {
	return fmt.Sprintf("prefix too long: must be under 64 bytes, found %d", e.Length)
}

// Unwrap returns ErrPrefixTooLong for errors.Is() compatibility.
func (e *PrefixTooLongError) Unwrap() error {
	return ErrPrefixTooLong
}

// PrefixCharacterError reports the first disallowed byte found in a prefix.
type PrefixCharacterError struct {
	Char byte
}

// Error implements the error interface.
func (e *PrefixCharacterError) Error() string {
	return fmt.Sprintf("prefix may only contain lowercase ascii characters, found %q", e.Char)
}

// Unwrap returns ErrIncorrectPrefixCharacter for errors.Is() compatibility.
func (e *PrefixCharacterError) Unwrap() error {
	return ErrIncorrectPrefixCharacter
}

// ============================================================================
// Error Helper Functions
// ============================================================================

// IsLengthError checks if an error is or wraps a LengthError.
func IsLengthError(err error) bool {
	var lengthErr *LengthError
	return errors.As(err, &lengthErr)
}

// IsPrefixError checks if an error relates to prefix validation or matching.
func IsPrefixError(err error) bool {
	return errors.Is(err, ErrMissingPrefix) ||
		errors.Is(err, ErrInvalidPrefix) ||
		errors.Is(err, ErrNoPrefixExpected) ||
		errors.Is(err, ErrPrefixTooLong) ||
		errors.Is(err, ErrPrefixExpected) ||
		errors.Is(err, ErrIncorrectPrefixCharacter)
}

// IsCodecError checks if an error originated in the base32 codec.
func IsCodecError(err error) bool {
	return errors.Is(err, ErrInvalidByte) ||
		errors.Is(err, ErrInvalidFirstByte) ||
		errors.Is(err, ErrInvalidLength)
}

// GetLengthError extracts the LengthError from an error chain.
//
// Returns the LengthError and true if found, nil and false otherwise.
func GetLengthError(err error) (*LengthError, bool) {
	var lengthErr *LengthError
	if errors.As(err, &lengthErr) {
		return lengthErr, true
	}
	return nil, false
}

// GetInvalidPrefixError extracts the InvalidPrefixError from an error chain.
//
// Returns the InvalidPrefixError and true if found, nil and false otherwise.
func GetInvalidPrefixError(err error) (*InvalidPrefixError, bool) {
	var prefixErr *InvalidPrefixError
	if errors.As(err, &prefixErr) {
		return prefixErr, true
	}
	return nil, false
}
