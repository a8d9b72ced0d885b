// Package oracle implements the OPRF correctness oracle (SPEC_FULL.md
// §4.7, spec.md §4.6): an independent recomputation used to detect RLWE
// noise overflow, for testing and instrumentation only. It is never
// consulted by Run itself.
package oracle

import (
	"math/big"

	"pqbrake/oprf"
	"pqbrake/oprferr"
	"pqbrake/ring"
	"pqbrake/rounding"
)

// Check recomputes a_x*k independently of the protocol run, rounds it,
// reduces both round(a_x*k) and client.YRound modulo p, and compares
// coefficient-wise. A nil return means every coefficient matched; a
// non-nil *oprferr.RoundingMismatch lists the coefficients that disagree.
// Check does not mutate client or eval.
func Check(ctx *ring.Ctx, client *oprf.ClientState, eval *oprf.EvaluatorState) (*oprferr.RoundingMismatch, error) {
	axk, err := client.AX.Mul(eval.K)
	if err != nil {
		return nil, err
	}
	expected := rounding.Round(ctx, axk)

	p := big.NewInt(ctx.P())
	n := len(expected.Coeffs)
	if len(client.YRound.Coeffs) > n {
		n = len(client.YRound.Coeffs)
	}
	var failing []int
	for i := 0; i < n; i++ {
		e := new(big.Int).Mod(expected.Coeff(i), p)
		got := new(big.Int).Mod(client.YRound.Coeff(i), p)
		if e.Cmp(got) != 0 {
			failing = append(failing, i)
		}
	}
	if len(failing) > 0 {
		return &oprferr.RoundingMismatch{FailingIndices: failing}, nil
	}
	return nil, nil
}

// ExpectedFailureRate returns the theoretical per-run mismatch
// probability 1 - (1 - (2N+B)/q)^N, per spec.md §4.6, as an exact
// rational (B and q can both be far larger than a float64 mantissa at
// production parameters).
func ExpectedFailureRate(ctx *ring.Ctx) *big.Rat {
	n := big.NewInt(int64(ctx.N()))
	twoN := new(big.Int).Lsh(n, 1)
	numer := new(big.Int).Add(twoN, ctx.B())

	perCoeff := new(big.Rat).SetFrac(numer, ctx.Q())
	oneMinus := new(big.Rat).Sub(big.NewRat(1, 1), perCoeff)

	pow := big.NewRat(1, 1)
	for i := 0; i < ctx.N(); i++ {
		pow.Mul(pow, oneMinus)
	}
	return new(big.Rat).Sub(big.NewRat(1, 1), pow)
}
