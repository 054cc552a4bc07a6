package decimal

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"123", "123"},
		{"-123.45", "-123.45"},
		{"1.1", "1.1"},
		{"  1.1  ", "1.1"},
		{"+1.1", "1.1"},
		{"1_000.5", "1000.5"},
		{".5", "0.5"},
		{"5.", "5"},
		{"1e2", "100"},
		{"1.5e2", "150"},
		{"1.5e-2", "0.015"},
		{"1E+2", "100"},
		{"79228162514264337593543950335", "79228162514264337593543950335"},
	}
	for _, tt := range tests {
		d, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.in, err)
		}
		if got := d.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrConversionSyntax},
		{"   ", ErrConversionSyntax},
		{"abc", ErrConversionSyntax},
		{".", ErrConversionSyntax},
		{"1.2.3", ErrConversionSyntax},
		{"1e", ErrConversionSyntax},
		{"792281625142643375935439503350", ErrOverflow}, // 30-digit integer part
		{"79228162514264337593543950336", ErrOverflow},  // MAX+1: 29 digits, still over MAX
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestParse_ScaleOverflowRounds(t *testing.T) {
	// 29 fractional digits must be rounded down to 28 under HALF_EVEN.
	d, err := Parse("0.00000000000000000000000000005")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got, want := d.Scale(), MaxScale; got != want {
		t.Errorf("Scale() = %d, want %d", got, want)
	}
}

func TestParse_ExactIntegerScaleGrows(t *testing.T) {
	d, err := Parse("1.5e1")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got, want := d.String(), "15"; got != want {
		t.Errorf("Parse(\"1.5e1\").String() = %q, want %q", got, want)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse(\"\") did not panic")
		}
	}()
	MustParse("")
}
