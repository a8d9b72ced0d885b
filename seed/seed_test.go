package seed

import (
	"math/big"
	"testing"

	"pqbrake/ring"
)

func poly(coeffs ...int64) ring.IntPoly {
	p := ring.NewIntPoly(len(coeffs))
	for i, c := range coeffs {
		p.Coeffs[i] = big.NewInt(c)
	}
	p.Normalize()
	return p
}

func TestToSeedDeterministic(t *testing.T) {
	p := poly(1, -1, 0, 5)
	a := ToSeed(p)
	b := ToSeed(p)
	if a != b {
		t.Fatalf("ToSeed not deterministic: %x vs %x", a, b)
	}
}

func TestToSeedIsAllHexCharacters(t *testing.T) {
	p := poly(3, 0, -7)
	out := ToSeed(p)
	for _, b := range out {
		isHex := (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')
		if !isHex {
			t.Fatalf("byte %q is not an ASCII hex character, want the documented quirk", b)
		}
	}
}

func TestToSeedDiffersOnDifferingInput(t *testing.T) {
	a := ToSeed(poly(1, 2, 3))
	b := ToSeed(poly(1, 2, 4))
	if a == b {
		t.Fatalf("expected different seeds for different y_rounded")
	}
}

func TestToSeedRawIsNotRestrictedToHexCharacters(t *testing.T) {
	seenNonHex := false
	for i := 0; i < 64; i++ {
		out := ToSeedRaw(poly(9, 9, 9, 9, 9, 9, 9, int64(i)))
		for _, b := range out {
			if !((b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')) {
				seenNonHex = true
			}
		}
		if seenNonHex {
			break
		}
	}
	if !seenNonHex {
		t.Fatalf("expected ToSeedRaw's raw digest bytes to escape the ASCII-hex alphabet at least once across trials")
	}
}
