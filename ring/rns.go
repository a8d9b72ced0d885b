package ring

import (
	"fmt"
	"math/big"
	"os"
	"sync"

	lring "github.com/tuneinsight/lattigo/v4/ring"

	"pqbrake/internal/xlog"
)

// limbBits is the bit length of each auxiliary NTT-friendly prime used by
// the RNS multiplication path. These primes are NOT factors of q (q is
// prime and so has none); they are auxiliary CRT moduli chosen only to
// let the *exact* (unreduced, over Z) negacyclic convolution be computed
// via fast per-limb NTTs and then reconstructed and finally reduced mod
// q. This generalizes the teacher's ToRNS/FromRNS/PackCRT/MatOp pattern
// (originally built to decompose an RNS-defined NTRU modulus) to
// accelerating multiplication for a single large prime modulus instead.
const limbBits = 55

const maxLimbs = 24

// rnsBackend holds the auxiliary CRT basis and one lattigo ring per limb.
type rnsBackend struct {
	q       *big.Int
	n       int
	moduli  []uint64
	rings   []*lring.Ring
	modulus *big.Int // product of moduli
}

// buildRNSBackend searches for enough auxiliary NTT-friendly primes that
// their product exceeds 2*N*q^2 (a safe bound on the magnitude of the
// exact, unreduced negacyclic convolution of two coefficient vectors in
// [0,q)), then builds one lattigo ring per prime.
func buildRNSBackend(q *big.Int, n int) (*rnsBackend, error) {
	bound := new(big.Int).Mul(q, q)
	bound.Mul(bound, big.NewInt(int64(n)))
	bound.Lsh(bound, 1)

	used := make(map[uint64]bool)
	var moduli []uint64
	product := big.NewInt(1)
	for product.Cmp(bound) <= 0 {
		if len(moduli) >= maxLimbs {
			return nil, fmt.Errorf("ring: could not find enough NTT-friendly primes for N=%d", n)
		}
		p, ok := findNTTPrime(limbBits, n, used)
		if !ok {
			return nil, fmt.Errorf("ring: no further %d-bit NTT-friendly primes for N=%d", limbBits, n)
		}
		used[p] = true
		moduli = append(moduli, p)
		product.Mul(product, new(big.Int).SetUint64(p))
	}

	rings := make([]*lring.Ring, len(moduli))
	for i, qi := range moduli {
		r, err := lring.NewRing(n, []uint64{qi})
		if err != nil {
			return nil, fmt.Errorf("ring: lattigo NewRing(N=%d, q=%d): %w", n, qi, err)
		}
		rings[i] = r
	}

	xlog.Tracef(os.Stderr, "[ring] RNS backend: N=%d limbs=%d bound_bits=%d\n", n, len(moduli), bound.BitLen())

	return &rnsBackend{q: q, n: n, moduli: moduli, rings: rings, modulus: product}, nil
}

// mul computes a*b via per-limb NTT multiplication, CRT reconstruction of
// the exact integer result, and a final reduction mod q.
func (rb *rnsBackend) mul(a, b Element) (Element, error) {
	n := rb.n
	limbResults := make([][]uint64, len(rb.rings))

	var wg sync.WaitGroup
	for li, r := range rb.rings {
		wg.Add(1)
		go func(li int, r *lring.Ring, qi uint64) {
			defer wg.Done()
			A := r.NewPoly()
			B := r.NewPoly()
			qiBig := new(big.Int).SetUint64(qi)
			tmp := new(big.Int)
			for j := 0; j < n; j++ {
				tmp.Mod(a.Coeffs[j], qiBig)
				A.Coeffs[0][j] = tmp.Uint64()
				tmp.Mod(b.Coeffs[j], qiBig)
				B.Coeffs[0][j] = tmp.Uint64()
			}
			r.MForm(A, A)
			r.MForm(B, B)
			r.NTT(A, A)
			r.NTT(B, B)
			C := r.NewPoly()
			r.MulCoeffsMontgomery(A, B, C)
			r.InvNTT(C, C)
			r.InvMForm(C, C)
			limbResults[li] = C.Coeffs[0]
		}(li, r, rb.moduli[li])
	}
	wg.Wait()

	out := NewElement(a.ctx)
	half := new(big.Int).Rsh(rb.modulus, 1)
	for j := 0; j < n; j++ {
		residues := make([]uint64, len(rb.rings))
		for li := range rb.rings {
			residues[li] = limbResults[li][j]
		}
		x := garnerCRT(residues, rb.moduli)
		if x.Cmp(half) > 0 {
			x.Sub(x, rb.modulus)
		}
		out.Coeffs[j].Mod(x, rb.q)
	}
	return out, nil
}

// garnerCRT reconstructs the unique x in [0, prod(moduli)) with
// x ≡ residues[i] (mod moduli[i]) for all i, via Garner's algorithm.
func garnerCRT(residues []uint64, moduli []uint64) *big.Int {
	x := new(big.Int).SetUint64(residues[0])
	m := new(big.Int).SetUint64(moduli[0])
	for i := 1; i < len(residues); i++ {
		qi := new(big.Int).SetUint64(moduli[i])
		t := new(big.Int).SetUint64(residues[i])
		t.Sub(t, x)
		t.Mod(t, qi)
		inv := new(big.Int).ModInverse(m, qi)
		t.Mul(t, inv)
		t.Mod(t, qi)
		t.Mul(t, m)
		x.Add(x, t)
		m.Mul(m, qi)
	}
	return x
}
