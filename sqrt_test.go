package decimal

import (
	"errors"
	"strings"
	"testing"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		d    string
		want string
	}{
		{"0", "0"},
		{"4", "2.0000000000000000000000000000"},
		{"9", "3.0000000000000000000000000000"},
	}
	for _, tt := range tests {
		got, err := MustParse(tt.d).Sqrt()
		if err != nil {
			t.Fatalf("%v.Sqrt() failed: %v", tt.d, err)
		}
		if got.String() != tt.want {
			t.Errorf("%v.Sqrt() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestSqrt_Two(t *testing.T) {
	got, err := MustParse("2").Sqrt()
	if err != nil {
		t.Fatalf("2.Sqrt() failed: %v", err)
	}
	want := "1.4142135623730950488016887242"
	if got.String() != want {
		t.Errorf("2.Sqrt() = %v, want %v", got, want)
	}
}

func TestSqrt_NegativeIsInvalid(t *testing.T) {
	neg := MustParse("-1")
	_, err := neg.Sqrt()
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("(-1).Sqrt() error = %v, want ErrInvalidOperation", err)
	}
}

func TestSqrt_SquaresBackToInput(t *testing.T) {
	// P5: sqrt(x)^2, rounded to 28 places, must match x.
	x := MustParse("2")
	root, err := x.Sqrt()
	if err != nil {
		t.Fatalf("Sqrt() failed: %v", err)
	}
	squared, err := root.Mul(root)
	if err != nil {
		t.Fatalf("Mul() failed: %v", err)
	}
	rounded, err := squared.Round(MaxScale, HalfEven)
	if err != nil {
		t.Fatalf("Round() failed: %v", err)
	}
	xRounded, err := x.Round(MaxScale, HalfEven)
	if err != nil {
		t.Fatalf("Round() failed: %v", err)
	}
	// Allow the accuracy to differ by at most 1 ULP at scale 28.
	diff, err := rounded.Sub(xRounded)
	if err != nil {
		t.Fatalf("Sub() failed: %v", err)
	}
	ulp := MustParse("0." + strings.Repeat("0", MaxScale-1) + "1")
	if diff.Abs().Cmp(ulp) > 0 {
		t.Errorf("sqrt(2)^2 = %v, differs from %v by more than 1 ULP", rounded, xRounded)
	}
}

func FuzzSqrt(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(2))
	f.Add(uint64(1 << 32))
	f.Fuzz(func(t *testing.T, v uint64) {
		x := New(int64(v & (1<<63 - 1)))
		root, err := x.Sqrt()
		if err != nil {
			t.Fatalf("Sqrt(%v) failed: %v", x, err)
		}
		if root.IsNegative() {
			t.Errorf("Sqrt(%v) = %v, want non-negative", x, root)
		}
	})
}
