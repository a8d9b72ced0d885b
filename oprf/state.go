// Package oprf implements the two-party blinded RLWE vOPRF protocol
// engine (SPEC_FULL.md §4.6): a pure sequence of algebraic operations
// with no I/O and no network layer, composable by any transport the
// caller provides.
package oprf

import "pqbrake/ring"

// ClientState holds everything the client party owns for one protocol
// execution. SecretPolynomial is the hashed biometric lift source and is
// read-only after construction; it may persist across many runs of the
// same party. The remaining fields are fresh per execution and are
// populated by Run.
type ClientState struct {
	SecretPolynomial ring.IntPoly

	S       ring.Element // s: fresh ternary
	EPrime  ring.Element // e': fresh ternary
	AX      ring.Element // a_x: deterministic function of SecretPolynomial
	DX      ring.Element // d_x: received from the evaluator
	Y       ring.Element // y: unblinded result
	YRound  ring.IntPoly // y_rounded: final output
}

// NewClientState constructs a ClientState owning secret exclusively.
func NewClientState(secret ring.IntPoly) *ClientState {
	return &ClientState{SecretPolynomial: secret}
}

// Zero overwrites secret-bearing fields with zero coefficients, for
// hardening deployments that want to scrub state after use (spec.md §5:
// hygiene is a hardening decision, not a correctness requirement).
func (c *ClientState) Zero() {
	for _, v := range c.SecretPolynomial.Coeffs {
		v.SetInt64(0)
	}
	c.SecretPolynomial.Coeffs = nil
	zeroIfSet(c.S)
	zeroIfSet(c.EPrime)
	zeroIfSet(c.Y)
}

// EvaluatorState holds everything the evaluator party owns. A, K, E, C
// form the evaluator's long-term public commitment when reused across
// "warm" runs; EBig and CX are fresh per run.
type EvaluatorState struct {
	A ring.Element // public randomness
	K ring.Element // OPRF key (ternary)
	E ring.Element // RLWE error (ternary)
	C ring.Element // public commitment = a*k + p*e

	EBig ring.Element // E: fresh large noise per run, uniform in [-B,B]
	CX   ring.Element // c_x: received from the client
}

// NewEvaluatorState returns a zero-value EvaluatorState; its fields are
// populated by the first (cold) call to Run.
func NewEvaluatorState() *EvaluatorState {
	return &EvaluatorState{}
}

// Zero overwrites secret-bearing fields (the OPRF key and its error) with
// zero coefficients.
func (e *EvaluatorState) Zero() {
	zeroIfSet(e.K)
	zeroIfSet(e.E)
}

func zeroIfSet(e ring.Element) {
	if e.Coeffs != nil {
		e.Zero()
	}
}
