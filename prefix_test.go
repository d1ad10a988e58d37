package strongid

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// NewPrefix Tests
// ============================================================================

func TestNewPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"single letter", "a", nil},
		{"word", "user", nil},
		{"63 bytes", strings.Repeat("a", 63), nil},
		{"64 bytes", strings.Repeat("a", 64), ErrPrefixTooLong},
		{"200 bytes", strings.Repeat("a", 200), ErrPrefixTooLong},
		{"empty", "", ErrPrefixExpected},
		{"uppercase", "Case", ErrIncorrectPrefixCharacter},
		{"leading digits", "00numeric", ErrIncorrectPrefixCharacter},
		{"trailing digit", "case0", ErrIncorrectPrefixCharacter},
		{"underscore", "multi_part", ErrIncorrectPrefixCharacter},
		{"hyphen", "multi-part", ErrIncorrectPrefixCharacter},
		{"space", "a b", ErrIncorrectPrefixCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrefix(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewPrefix(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if tt.want == nil && p.String() != tt.input {
				t.Errorf("NewPrefix(%q).String() = %q", tt.input, p.String())
			}
			if tt.want != nil && !p.IsZero() {
				t.Errorf("failed NewPrefix(%q) should return the zero Prefix", tt.input)
			}
		})
	}
}

func TestNewDelimitedPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"word", "user", nil},
		{"one underscore", "multi_part", nil},
		{"many underscores", "a_b_c_d", nil},
		{"leading underscore", "_part", nil},
		{"trailing underscore", "part_", nil},
		{"only underscores", "___", nil},
		{"empty", "", ErrPrefixExpected},
		{"uppercase", "Multi_Part", ErrIncorrectPrefixCharacter},
		{"digit", "part_0", ErrIncorrectPrefixCharacter},
		{"64 bytes", strings.Repeat("a_", 32), ErrPrefixTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewDelimitedPrefix(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewDelimitedPrefix(%q) error = %v, want %v", tt.input, err, tt.want)
			}
			if tt.want == nil && p.String() != tt.input {
				t.Errorf("NewDelimitedPrefix(%q).String() = %q", tt.input, p.String())
			}
		})
	}
}

// ============================================================================
// Validation Order Tests
// ============================================================================

func TestPrefixValidationOrder(t *testing.T) {
	// Length is checked before content: an over-long prefix full of invalid
	// characters reports PrefixTooLongError, not PrefixCharacterError.
	_, err := NewPrefix(strings.Repeat("!", 100))
	if !errors.Is(err, ErrPrefixTooLong) {
		t.Errorf("over-long invalid prefix error = %v, want ErrPrefixTooLong", err)
	}

	var tooLong *PrefixTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected *PrefixTooLongError, got %T", err)
	}
	if tooLong.Length != 100 {
		t.Errorf("PrefixTooLongError.Length = %d, want 100", tooLong.Length)
	}

	// The first offending byte is the one reported.
	_, err = NewPrefix("ab9cd!")
	var charErr *PrefixCharacterError
	if !errors.As(err, &charErr) {
		t.Fatalf("expected *PrefixCharacterError, got %T", err)
	}
	if charErr.Char != '9' {
		t.Errorf("PrefixCharacterError.Char = %q, want '9'", charErr.Char)
	}
}

func TestPrefixZeroValue(t *testing.T) {
	var p Prefix
	if !p.IsZero() {
		t.Error("zero Prefix should report IsZero")
	}
	if p.String() != "" {
		t.Errorf("zero Prefix.String() = %q, want empty", p.String())
	}
}
