package ring

import "math/big"

// schoolbookMul computes the negacyclic convolution of a and b modulo
// (x^N+1) and q using plain math/big arithmetic: O(N^2) big.Int
// multiplications. This is the exact, easy-to-audit path used for toy
// parameters and as the reference implementation RNS acceleration is
// checked against (see rns.go).
func schoolbookMul(a, b Element) (Element, error) {
	ctx := a.ctx
	n := len(a.Coeffs)
	acc := make([]*big.Int, n)
	for i := range acc {
		acc[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, ai := range a.Coeffs {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b.Coeffs {
			if bj.Sign() == 0 {
				continue
			}
			tmp.Mul(ai, bj)
			k := i + j
			if k < n {
				acc[k].Add(acc[k], tmp)
			} else {
				// x^N == -1 (mod x^N+1): the wrapped term flips sign.
				acc[k-n].Sub(acc[k-n], tmp)
			}
		}
	}
	out := NewElement(ctx)
	for i, c := range acc {
		out.Coeffs[i].Mod(c, ctx.q)
	}
	return out, nil
}
