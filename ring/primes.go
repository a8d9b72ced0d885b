package ring

import "math/big"

// findNTTPrime searches for a prime p of exactly bitLen bits with
// p ≡ 1 (mod 2N), the condition lattigo's ring package requires for a
// primitive 2N-th root of unity to exist mod p (needed for the negacyclic
// NTT). Search starts just below 2^bitLen and walks downward by 2N so
// every candidate satisfies the congruence exactly.
func findNTTPrime(bitLen int, n int, excl map[uint64]bool) (uint64, bool) {
	step := int64(2 * n)
	top := new(big.Int).Lsh(big.NewInt(1), uint(bitLen))
	top.Sub(top, big.NewInt(1))
	// round down to the nearest candidate ≡ 1 mod step
	rem := new(big.Int).Mod(top, big.NewInt(step))
	cand := new(big.Int).Sub(top, rem)
	cand.Add(cand, big.NewInt(1))
	if cand.Cmp(top) > 0 {
		cand.Sub(cand, big.NewInt(step))
	}

	stepBig := big.NewInt(step)
	floor := new(big.Int).Lsh(big.NewInt(1), uint(bitLen-1))
	for cand.Cmp(floor) > 0 {
		if cand.ProbablyPrime(30) {
			v := cand.Uint64()
			if !excl[v] {
				return v, true
			}
		}
		cand.Sub(cand, stepBig)
	}
	return 0, false
}
