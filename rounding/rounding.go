// Package rounding implements the R_q -> Z[x] rounding operation that
// eliminates the OPRF's RLWE noise: each coefficient is shifted to its
// signed representative, scaled by p/q as an exact rational, and rounded
// half-down (ties toward -infinity) via ceil(u - 1/2). Round-half-to-even
// MUST NOT be used (SPEC_FULL.md §4.5 / spec.md §4.4).
package rounding

import (
	"math/big"

	"pqbrake/ring"
)

var half = big.NewRat(1, 2)

// Round maps a ring element to its rounded integer polynomial.
func Round(ctx *ring.Ctx, z ring.Element) ring.IntPoly {
	q := ctx.Q()
	qHalf := ctx.QHalf()
	p := big.NewInt(ctx.P())

	out := ring.NewIntPoly(len(z.Coeffs))
	for i, v := range z.Coeffs {
		out.Coeffs[i] = roundCoeff(v, qHalf, q, p)
	}
	out.Normalize()
	return out
}

// roundCoeff implements the three-step formula in spec.md §4.4 for a
// single canonical coefficient v in [0,q).
func roundCoeff(v, qHalf, q, p *big.Int) *big.Int {
	vs := new(big.Int).Set(v)
	if vs.Cmp(qHalf) > 0 {
		vs.Sub(vs, q)
	}
	u := new(big.Rat).SetFrac(new(big.Int).Mul(vs, p), q)
	x := new(big.Rat).Sub(u, half)
	return ceilRat(x)
}

// ceilRat returns the smallest integer >= x.
func ceilRat(x *big.Rat) *big.Int {
	num := x.Num()
	den := x.Denom() // always > 0 for a *big.Rat
	quo := new(big.Int)
	rem := new(big.Int)
	quo.QuoRem(num, den, rem)
	if rem.Sign() != 0 && num.Sign() > 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo
}
