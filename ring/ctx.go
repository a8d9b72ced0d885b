// Package ring implements the polynomial ring R_q = Z_q[x]/(x^N+1) that
// underlies the PQ-BRAKE vOPRF: element construction, the three ring
// operations (add, sub, mul), conversion to/from signed-representative
// integer polynomials, and an RNS/NTT-accelerated multiplication path for
// production-sized parameters.
//
// There is no process-wide global modulus: every operation is relative
// to an explicit, immutable *Ctx passed by the caller (see SPEC_FULL.md
// §4.1 — this replaces the thread-local "current modulus" pattern common
// to NTL-style big-integer libraries).
package ring

import (
	"math/big"

	"pqbrake/oprferr"
)

// rnsMinN is the smallest N for which the RNS/NTT multiplication path is
// attempted. Below it, schoolbook convolution is both fast enough and
// avoids the overhead (and prime-search flakiness) of building an RNS
// basis for a handful of coefficients — this is also what keeps the toy
// scenarios (N=4) on the exact, easy-to-audit code path.
const rnsMinN = 256

// Params is the (q, N, p, sec, B) parameter tuple fixed at construction.
// B may be left nil, in which case NewCtx derives it as 2*N*2^Sec.
type Params struct {
	Q   *big.Int
	N   int
	P   int64
	Sec int
	B   *big.Int
}

// DefaultParams returns the recommended production parameters: q is the
// first prime at or above 2^75, N = 2^12, p = 2, sec = 40 (B derived).
func DefaultParams() Params {
	q := new(big.Int).Lsh(big.NewInt(1), 75)
	q = nextPrime(q)
	return Params{Q: q, N: 4096, P: 2, Sec: 40}
}

// ToyParams returns the hand-checkable toy parameters from scenario S4:
// q=127, N=4, B=8, p=2.
func ToyParams() Params {
	return Params{Q: big.NewInt(127), N: 4, P: 2, B: big.NewInt(8)}
}

// Ctx is the immutable ring context: q, N, Φ(x)=x^N+1 (implicit), p, B.
// A *Ctx is safe for concurrent use by many goroutines once constructed.
type Ctx struct {
	q     *big.Int
	qHalf *big.Int // floor(q/2)
	n     int
	p     int64
	sec   int
	b     *big.Int
	rns   *rnsBackend // nil if RNS acceleration unavailable/not attempted
}

// NewCtx validates params and constructs a Ctx. Fails with *oprferr.ParameterError
// if q is not prime, N is not a positive power of two, or B <= 0.
func NewCtx(p Params) (*Ctx, error) {
	if p.Q == nil || p.Q.Sign() <= 0 {
		return nil, &oprferr.ParameterError{Field: "Q", Reason: "must be positive"}
	}
	if !p.Q.ProbablyPrime(40) {
		return nil, &oprferr.ParameterError{Field: "Q", Reason: "must be prime"}
	}
	if p.N <= 0 || (p.N&(p.N-1)) != 0 {
		return nil, &oprferr.ParameterError{Field: "N", Reason: "must be a positive power of two"}
	}
	plain := p.P
	if plain == 0 {
		plain = 2
	}
	b := p.B
	if b == nil {
		if p.Sec <= 0 {
			return nil, &oprferr.ParameterError{Field: "Sec", Reason: "must be >0 when B is not given explicitly"}
		}
		// B = 2*N*2^sec
		b = new(big.Int).Lsh(big.NewInt(int64(2*p.N)), uint(p.Sec))
	}
	if b.Sign() <= 0 {
		return nil, &oprferr.ParameterError{Field: "B", Reason: "must be positive"}
	}

	// Signed-representative threshold: v stays positive when v <= floor(q/2),
	// else v shifts to v-q (strict ">"), matching original_source's
	// rounding() exactly (q_half = floor(q/2), "if (element > q_half)").
	qHalf := new(big.Int).Rsh(p.Q, 1)

	ctx := &Ctx{
		q:     new(big.Int).Set(p.Q),
		qHalf: qHalf,
		n:     p.N,
		p:     plain,
		sec:   p.Sec,
		b:     new(big.Int).Set(b),
	}

	if p.N >= rnsMinN {
		if rns, err := buildRNSBackend(ctx.q, p.N); err == nil {
			ctx.rns = rns
		}
		// A failed RNS basis search is not fatal: Mul falls back to
		// schoolbook convolution transparently.
	}

	return ctx, nil
}

// Q returns the ring modulus.
func (c *Ctx) Q() *big.Int { return new(big.Int).Set(c.q) }

// N returns the ring degree.
func (c *Ctx) N() int { return c.n }

// P returns the plaintext modulus.
func (c *Ctx) P() int64 { return c.p }

// B returns the large-noise sampling bound.
func (c *Ctx) B() *big.Int { return new(big.Int).Set(c.b) }

// QHalf returns floor(q/2), the threshold used by the signed-representative shift.
func (c *Ctx) QHalf() *big.Int { return new(big.Int).Set(c.qHalf) }

// Accelerated reports whether this Ctx multiplies via the RNS/NTT path.
func (c *Ctx) Accelerated() bool { return c.rns != nil }

func nextPrime(from *big.Int) *big.Int {
	n := new(big.Int).Set(from)
	if n.Bit(0) == 0 {
		n.Add(n, big.NewInt(1))
	}
	for !n.ProbablyPrime(40) {
		n.Add(n, big.NewInt(2))
	}
	return n
}
