package oracle

import (
	"math/big"
	"testing"

	"pqbrake/oprf"
	"pqbrake/ring"
	"pqbrake/sampler"
)

// TestCheckPassesForWellFormedRun reproduces scenario S1's oracle clause:
// with overwhelming probability at toy parameters scaled up a bit, a
// freshly-run protocol passes the correctness oracle.
func TestCheckPassesForWellFormedRun(t *testing.T) {
	ctx, err := ring.NewCtx(ring.Params{Q: big.NewInt(1021), N: 8, P: 2, B: big.NewInt(2)})
	if err != nil {
		t.Fatalf("NewCtx: %v", err)
	}
	secret := ring.NewIntPoly(4)
	secret.Coeffs[0] = big.NewInt(5)
	secret.Coeffs[1] = big.NewInt(2)
	secret.Coeffs[3] = big.NewInt(1)
	secret.Normalize()

	src := sampler.Seeded([]byte("oracle-pass-seed"))
	client := oprf.NewClientState(secret)
	eval := oprf.NewEvaluatorState()
	if _, err := oprf.Run(ctx, client, eval, src, false, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	mismatch, err := Check(ctx, client, eval)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if mismatch != nil {
		t.Fatalf("unexpected mismatch at %v (B/q too large for these toy params?)", mismatch.FailingIndices)
	}
}

// TestCheckDetectsInjectedMismatch corrupts y_rounded after a correct run
// and checks the oracle notices.
func TestCheckDetectsInjectedMismatch(t *testing.T) {
	ctx, err := ring.NewCtx(ring.Params{Q: big.NewInt(1021), N: 8, P: 2, B: big.NewInt(2)})
	if err != nil {
		t.Fatalf("NewCtx: %v", err)
	}
	secret := ring.NewIntPoly(1)
	secret.Coeffs[0] = big.NewInt(7)
	secret.Normalize()

	src := sampler.Seeded([]byte("oracle-fail-seed"))
	client := oprf.NewClientState(secret)
	eval := oprf.NewEvaluatorState()
	if _, err := oprf.Run(ctx, client, eval, src, false, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}
	client.YRound.Coeffs[0].Add(client.YRound.Coeffs[0], big.NewInt(1))

	mismatch, err := Check(ctx, client, eval)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if mismatch == nil {
		t.Fatalf("expected a mismatch after corrupting y_rounded, got none")
	}
	found := false
	for _, i := range mismatch.FailingIndices {
		if i == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected coefficient 0 to be flagged, got %v", mismatch.FailingIndices)
	}
}

// TestExpectedFailureRateIsSmallForSafeParameters checks the closed-form
// bound from spec.md §4.6 against production-scale parameters: the
// expected per-run failure rate must be negligible.
func TestExpectedFailureRateIsSmallForSafeParameters(t *testing.T) {
	ctx, err := ring.NewCtx(ring.DefaultParams())
	if err != nil {
		t.Fatalf("NewCtx: %v", err)
	}
	rate := ExpectedFailureRate(ctx)
	if rate.Sign() < 0 || rate.Cmp(big.NewRat(1, 1)) > 0 {
		t.Fatalf("failure rate %v out of [0,1]", rate)
	}
	threshold := new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 64))
	if rate.Cmp(threshold) >= 0 {
		t.Fatalf("expected failure rate %v not negligible at production parameters", rate)
	}
}

// TestExpectedFailureRateGrowsWithSmallQ sanity-checks the formula's
// direction: shrinking q (relative to N, B) increases the expected
// failure rate.
func TestExpectedFailureRateGrowsWithSmallQ(t *testing.T) {
	small, err := ring.NewCtx(ring.Params{Q: big.NewInt(127), N: 4, P: 2, B: big.NewInt(8)})
	if err != nil {
		t.Fatalf("NewCtx small: %v", err)
	}
	large, err := ring.NewCtx(ring.Params{Q: big.NewInt(100003), N: 4, P: 2, B: big.NewInt(8)})
	if err != nil {
		t.Fatalf("NewCtx large: %v", err)
	}
	if ExpectedFailureRate(small).Cmp(ExpectedFailureRate(large)) <= 0 {
		t.Fatalf("expected smaller q to have a larger failure rate")
	}
}
