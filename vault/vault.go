// Package vault defines the shape the core consumes from the (external,
// out-of-scope) biometric fuzzy-vault collaborator: a small polynomial
// over a small binary field, read only for its non-negative integer
// coefficients. The core never constructs a SmallBinaryPoly itself.
package vault

import "pqbrake/ring"

// SmallBinaryPoly is the minimal shape the OPRF core needs from a
// fuzzy-vault-produced secret candidate polynomial: its degree and its
// coefficients, read as non-negative integers.
type SmallBinaryPoly interface {
	Degree() int
	Coeff(i int) uint64
}

// ToIntPoly lifts a SmallBinaryPoly into the Z[x] secret polynomial the
// hashlift package hashes, per spec.md §3 ("the core reads coefficients
// as non-negative integers and ingests them into a Z[x] secret").
func ToIntPoly(p SmallBinaryPoly) ring.IntPoly {
	out := ring.NewIntPoly(p.Degree() + 1)
	for i := 0; i <= p.Degree(); i++ {
		out.Coeffs[i].SetUint64(p.Coeff(i))
	}
	out.Normalize()
	return out
}
