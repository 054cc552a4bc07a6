package decimal

import (
	"math/big"
	"testing"
)

func TestU128_MulSmall(t *testing.T) {
	tests := []struct {
		x    u128
		y    uint64
		want string
		ok   bool
	}{
		{u128FromUint64(0), 10, "0", true},
		{u128FromUint64(1), 10, "10", true},
		{maxCoefficient, 1, maxCoefficient.String(), true},
		{u128{hi: ^uint64(0), lo: ^uint64(0)}, 2, "", false},
	}
	for _, tt := range tests {
		got, ok := tt.x.mulSmall(tt.y)
		if ok != tt.ok {
			t.Fatalf("%v.mulSmall(%d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
		}
		if ok && got.String() != tt.want {
			t.Errorf("%v.mulSmall(%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestU128_AddOverflow(t *testing.T) {
	_, ok := maxCoefficient.add(u128FromUint64(1))
	if !ok {
		t.Fatalf("maxCoefficient.add(1) overflowed a 128-bit word unexpectedly")
	}

	allOnes := u128{hi: ^uint64(0), lo: ^uint64(0)}
	if _, ok := allOnes.add(u128FromUint64(1)); ok {
		t.Errorf("allOnes.add(1) did not report overflow")
	}
}

func TestU128_Cmp(t *testing.T) {
	a := u128{hi: 1, lo: 0}
	b := u128{hi: 0, lo: ^uint64(0)}
	if a.cmp(b) <= 0 {
		t.Errorf("{1,0}.cmp({0,max}) <= 0, want > 0")
	}
	if !a.gt(b) || !a.gte(b) {
		t.Errorf("{1,0}.gt/gte({0,max}) = false, want true")
	}
}

func TestU128_Prec(t *testing.T) {
	tests := []struct {
		x    u128
		want int
	}{
		{u128{}, 0},
		{u128FromUint64(1), 1},
		{u128FromUint64(9), 1},
		{u128FromUint64(10), 2},
		{maxCoefficient, 29},
	}
	for _, tt := range tests {
		if got := tt.x.prec(); got != tt.want {
			t.Errorf("%v.prec() = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestU128_QuoRem(t *testing.T) {
	x := u128FromUint64(100)
	y := u128FromUint64(7)
	q, r := x.quoRem(y)
	if q.String() != "14" || r.String() != "2" {
		t.Errorf("100.quoRem(7) = (%v, %v), want (14, 2)", q, r)
	}
}

func TestU128FromBig_RejectsOversize(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 129)
	if _, ok := u128FromBig(huge); ok {
		t.Errorf("u128FromBig(2^129) ok = true, want false")
	}
}

func TestBint_Pow10Cache(t *testing.T) {
	p := pow10Bint(100)
	want := new(big.Int).Exp(big.NewInt(10), big.NewInt(100), nil)
	if p.string() != want.String() {
		t.Errorf("pow10Bint(100) = %s, want %s", p.string(), want.String())
	}
	// Re-fetching a previously cached power must be idempotent.
	if p2 := pow10Bint(100); p2.string() != p.string() {
		t.Errorf("pow10Bint(100) not stable across calls")
	}
}

func TestBint_MulAliasSafe(t *testing.T) {
	x := newBint()
	x.setInt64(7)
	x.mul(x, x) // z == x == y
	if got, want := x.string(), "49"; got != want {
		t.Errorf("x.mul(x, x) = %s, want %s", got, want)
	}
}
