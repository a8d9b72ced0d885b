package ring

import (
	"math/big"

	"pqbrake/oprferr"
)

// Element is a ring element: exactly ctx.N() coefficients, canonical
// (each reduced into [0,q)). Two elements from different Ctx values must
// never be mixed; operations take the receiver's Ctx as ground truth.
type Element struct {
	ctx    *Ctx
	Coeffs []*big.Int
}

// NewElement returns the zero element of ctx.
func NewElement(ctx *Ctx) Element {
	coeffs := make([]*big.Int, ctx.n)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	return Element{ctx: ctx, Coeffs: coeffs}
}

// FromCoeffs builds an Element from exactly N big.Int coefficients,
// reducing each into [0,q). Returns *oprferr.ShapeError if len(coeffs) != ctx.N().
func FromCoeffs(ctx *Ctx, coeffs []*big.Int) (Element, error) {
	if len(coeffs) != ctx.n {
		return Element{}, &oprferr.ShapeError{Want: ctx.n, Got: len(coeffs)}
	}
	e := NewElement(ctx)
	for i, c := range coeffs {
		e.Coeffs[i].Mod(c, ctx.q)
	}
	return e, nil
}

// Ctx returns the element's ring context.
func (e Element) Ctx() *Ctx { return e.ctx }

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	out := NewElement(e.ctx)
	for i, c := range e.Coeffs {
		out.Coeffs[i].Set(c)
	}
	return out
}

// Zero overwrites e's coefficients with zero in place, for secret hygiene.
func (e Element) Zero() {
	for _, c := range e.Coeffs {
		c.SetInt64(0)
	}
}

func (e Element) checkShape(other Element) error {
	if e.ctx != other.ctx {
		if len(e.Coeffs) != len(other.Coeffs) {
			return &oprferr.ShapeError{Want: len(e.Coeffs), Got: len(other.Coeffs)}
		}
	}
	return nil
}

// Add returns e+other, reduced mod q.
func (e Element) Add(other Element) (Element, error) {
	if err := e.checkShape(other); err != nil {
		return Element{}, err
	}
	out := NewElement(e.ctx)
	for i := range out.Coeffs {
		out.Coeffs[i].Add(e.Coeffs[i], other.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], e.ctx.q)
	}
	return out, nil
}

// Sub returns e-other, reduced mod q.
func (e Element) Sub(other Element) (Element, error) {
	if err := e.checkShape(other); err != nil {
		return Element{}, err
	}
	out := NewElement(e.ctx)
	for i := range out.Coeffs {
		out.Coeffs[i].Sub(e.Coeffs[i], other.Coeffs[i])
		out.Coeffs[i].Mod(out.Coeffs[i], e.ctx.q)
	}
	return out, nil
}

// Mul returns e*other reduced modulo (x^N+1) and q, via the Ctx's
// accelerated RNS/NTT path when available, otherwise schoolbook
// negacyclic convolution over math/big.
func (e Element) Mul(other Element) (Element, error) {
	if err := e.checkShape(other); err != nil {
		return Element{}, err
	}
	if e.ctx.rns != nil {
		return e.ctx.rns.mul(e, other)
	}
	return schoolbookMul(e, other)
}

// MulScalar returns s*e, reduced mod q, for a small integer scalar s
// (e.g. the plaintext modulus p in p*e / p*E).
func (e Element) MulScalar(s int64) Element {
	scalar := big.NewInt(s)
	out := NewElement(e.ctx)
	for i, c := range e.Coeffs {
		out.Coeffs[i].Mul(c, scalar)
		out.Coeffs[i].Mod(out.Coeffs[i], e.ctx.q)
	}
	return out
}

// Equal reports whether e and other have identical canonical coefficients.
func (e Element) Equal(other Element) bool {
	if len(e.Coeffs) != len(other.Coeffs) {
		return false
	}
	for i := range e.Coeffs {
		if e.Coeffs[i].Cmp(other.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Lift converts e to its signed-representative integer polynomial: each
// coefficient v is mapped to v if v <= floor(q/2), else v-q.
func (e Element) Lift() IntPoly {
	out := NewIntPoly(len(e.Coeffs))
	for i, v := range e.Coeffs {
		signed := new(big.Int).Set(v)
		if signed.Cmp(e.ctx.qHalf) > 0 {
			signed.Sub(signed, e.ctx.q)
		}
		out.Coeffs[i] = signed
	}
	out.Normalize()
	return out
}
