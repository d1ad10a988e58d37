package strongid

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Message Tests
// ============================================================================

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"length",
			&LengthError{Expected: 4, Found: 10},
			"invalid encoded length: expected 4, found 10",
		},
		{
			"missing prefix",
			&MissingPrefixError{Prefix: "user"},
			`expected prefix "user"`,
		},
		{
			"invalid prefix",
			&InvalidPrefixError{Expected: "user", Found: "order"},
			`invalid prefix: expected "user", found "order"`,
		},
		{
			"no prefix expected",
			&NoPrefixExpectedError{Found: "user"},
			`found prefix "user", none expected`,
		},
		{
			"prefix too long",
			&PrefixTooLongError{Length: 70},
			"prefix too long: must be under 64 bytes, found 70",
		},
		{
			"prefix character",
			&PrefixCharacterError{Char: 'C'},
			`prefix may only contain lowercase ascii characters, found 'C'`,
		},
		{
			"prefix expected sentinel",
			ErrPrefixExpected,
			"no prefix was given, but one was expected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Unwrap Tests
// ============================================================================

func TestErrorUnwrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"length", &LengthError{Expected: 2, Found: 3}, ErrInvalidLength},
		{"missing prefix", &MissingPrefixError{Prefix: "x"}, ErrMissingPrefix},
		{"invalid prefix", &InvalidPrefixError{}, ErrInvalidPrefix},
		{"no prefix expected", &NoPrefixExpectedError{}, ErrNoPrefixExpected},
		{"prefix too long", &PrefixTooLongError{Length: 64}, ErrPrefixTooLong},
		{"prefix character", &PrefixCharacterError{Char: '!'}, ErrIncorrectPrefixCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
			// Wrapping preserves the chain.
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("wrapped errors.Is failed for %v", tt.err)
			}
		})
	}
}

// ============================================================================
// Helper Function Tests
// ============================================================================

func TestIsLengthError(t *testing.T) {
	_, err := Parse[Uint16]("user_0000000000")
	if !IsLengthError(err) {
		t.Error("IsLengthError should be true for a length failure")
	}
	if IsLengthError(nil) {
		t.Error("IsLengthError(nil) should be false")
	}
	if IsLengthError(ErrInvalidByte) {
		t.Error("IsLengthError should be false for a codec byte error")
	}
}

func TestIsPrefixError(t *testing.T) {
	prefixFailures := []error{
		&MissingPrefixError{},
		&InvalidPrefixError{},
		&NoPrefixExpectedError{},
		&PrefixTooLongError{},
		&PrefixCharacterError{},
		ErrPrefixExpected,
	}
	for _, err := range prefixFailures {
		if !IsPrefixError(err) {
			t.Errorf("IsPrefixError(%T) = false, want true", err)
		}
	}

	if IsPrefixError(ErrInvalidByte) {
		t.Error("IsPrefixError should be false for codec errors")
	}
	if IsPrefixError(nil) {
		t.Error("IsPrefixError(nil) should be false")
	}
}

func TestIsCodecError(t *testing.T) {
	codecFailures := []error{
		ErrInvalidByte,
		ErrInvalidFirstByte,
		&LengthError{Expected: 2, Found: 1},
	}
	for _, err := range codecFailures {
		if !IsCodecError(err) {
			t.Errorf("IsCodecError(%v) = false, want true", err)
		}
	}

	if IsCodecError(&InvalidPrefixError{}) {
		t.Error("IsCodecError should be false for prefix errors")
	}
}

func TestGetLengthError(t *testing.T) {
	_, err := Uint16(0).Decode("09d")
	lenErr, ok := GetLengthError(err)
	if !ok {
		t.Fatalf("GetLengthError failed for %v", err)
	}
	if lenErr.Expected != 4 || lenErr.Found != 3 {
		t.Errorf("LengthError = {%d, %d}, want {4, 3}", lenErr.Expected, lenErr.Found)
	}

	if _, ok := GetLengthError(ErrInvalidByte); ok {
		t.Error("GetLengthError should miss on unrelated errors")
	}
}

func TestGetInvalidPrefixError(t *testing.T) {
	_, err := ParseTyped[Uint32, testPrefix]("dyn_3000000")
	prefixErr, ok := GetInvalidPrefixError(err)
	if !ok {
		t.Fatalf("GetInvalidPrefixError failed for %v", err)
	}
	if prefixErr.Expected != "prefix" || prefixErr.Found != "dyn" {
		t.Errorf("InvalidPrefixError = {%q, %q}", prefixErr.Expected, prefixErr.Found)
	}

	if _, ok := GetInvalidPrefixError(ErrInvalidByte); ok {
		t.Error("GetInvalidPrefixError should miss on unrelated errors")
	}
}
