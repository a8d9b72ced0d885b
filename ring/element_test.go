package ring

import (
	"math/big"
	"math/rand"
	"testing"
)

func randElement(t *testing.T, ctx *Ctx, r *rand.Rand) Element {
	t.Helper()
	q := ctx.Q()
	coeffs := make([]*big.Int, ctx.N())
	for i := range coeffs {
		coeffs[i] = new(big.Int).Rand(r, q)
	}
	e, err := FromCoeffs(ctx, coeffs)
	if err != nil {
		t.Fatalf("FromCoeffs: %v", err)
	}
	return e
}

func TestRingArithmeticLaws(t *testing.T) {
	ctx, err := NewCtx(ToyParams())
	if err != nil {
		t.Fatalf("NewCtx: %v", err)
	}
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 20; trial++ {
		a := randElement(t, ctx, r)
		b := randElement(t, ctx, r)
		c := randElement(t, ctx, r)

		// a+(b+c) == (a+b)+c
		bc, _ := b.Add(c)
		abc1, _ := a.Add(bc)
		ab, _ := a.Add(b)
		abc2, _ := ab.Add(c)
		if !abc1.Equal(abc2) {
			t.Fatalf("addition not associative at trial %d", trial)
		}

		// a*(b+c) == a*b + a*c
		lhs, _ := a.Mul(bc)
		axb, _ := a.Mul(b)
		axc, _ := a.Mul(c)
		rhs, _ := axb.Add(axc)
		if !lhs.Equal(rhs) {
			t.Fatalf("multiplication not distributive over addition at trial %d", trial)
		}

		// a*b == b*a
		ba, _ := b.Mul(a)
		if !axb.Equal(ba) {
			t.Fatalf("multiplication not commutative at trial %d", trial)
		}
	}

	zero := NewElement(ctx)
	one := NewElement(ctx)
	one.Coeffs[0].SetInt64(1)

	a := randElement(t, ctx, r)
	azero, _ := a.Mul(zero)
	if !azero.Equal(zero) {
		t.Fatal("a*0 != 0")
	}
	aone, _ := a.Mul(one)
	if !aone.Equal(a) {
		t.Fatal("a*1 != a")
	}
}

// TestXNEquivalentToMinusOne checks x^N ≡ -1 (mod x^N+1, q): the degree-N
// monomial, reduced through Mul of two degree-(N/2) monomials, must land
// on q-1 at coefficient 0.
func TestXNEquivalentToMinusOne(t *testing.T) {
	ctx, err := NewCtx(ToyParams())
	if err != nil {
		t.Fatalf("NewCtx: %v", err)
	}
	n := ctx.N()
	half := n / 2

	xHalf := NewElement(ctx)
	xHalf.Coeffs[half].SetInt64(1)

	xN, err := xHalf.Mul(xHalf)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	want := NewElement(ctx)
	want.Coeffs[0].Sub(ctx.Q(), big.NewInt(1))
	if !xN.Equal(want) {
		t.Fatalf("x^N = %v, want %v (== -1 mod q)", xN.Coeffs, want.Coeffs)
	}
}

func TestLiftSignedRepresentative(t *testing.T) {
	ctx, err := NewCtx(ToyParams())
	if err != nil {
		t.Fatalf("NewCtx: %v", err)
	}
	e := NewElement(ctx)
	// q=127, qHalf=63. Coefficient 63 stays positive; 64 shifts to -63.
	e.Coeffs[0].SetInt64(63)
	e.Coeffs[1].SetInt64(64)
	lifted := e.Lift()
	if lifted.Coeff(0).Int64() != 63 {
		t.Fatalf("coeff 0 = %v, want 63", lifted.Coeff(0))
	}
	if lifted.Coeff(1).Int64() != -63 {
		t.Fatalf("coeff 1 = %v, want -63", lifted.Coeff(1))
	}
}
