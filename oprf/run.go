package oprf

import (
	"pqbrake/hashlift"
	"pqbrake/ring"
	"pqbrake/rounding"
	"pqbrake/sampler"
)

// Run executes one full protocol round between client and eval over ctx,
// drawing randomness from src, and returns the client's rounded output
// y_rounded (spec.md §4.5 steps 1-8). trace may be nil.
//
// When warm is true, eval.A, eval.K, eval.E and eval.C are assumed to
// already hold a prior run's values and are reused unchanged (step 1 is
// skipped); this models the evaluator amortizing its public commitment
// across many client queries, per SPEC_FULL.md §4.6. warm is false on the
// first call for any given EvaluatorState.
func Run(ctx *ring.Ctx, client *ClientState, eval *EvaluatorState, src sampler.Source, warm bool, trace TraceSink) (ring.IntPoly, error) {
	var stepErr error

	if !warm {
		traced(trace, "evaluator-setup", func() {
			var a, k, e ring.Element
			if a, stepErr = sampler.UniformQ(ctx, src); stepErr != nil {
				return
			}
			if k, stepErr = sampler.Ternary(ctx, src); stepErr != nil {
				return
			}
			if e, stepErr = sampler.Ternary(ctx, src); stepErr != nil {
				return
			}
			var ak, c ring.Element
			if ak, stepErr = a.Mul(k); stepErr != nil {
				return
			}
			pe := e.MulScalar(ctx.P())
			if c, stepErr = ak.Add(pe); stepErr != nil {
				return
			}
			eval.A, eval.K, eval.E, eval.C = a, k, e, c
		})
		if stepErr != nil {
			return ring.IntPoly{}, stepErr
		}
	}

	traced(trace, "client-sample", func() {
		if client.S, stepErr = sampler.Ternary(ctx, src); stepErr != nil {
			return
		}
		client.EPrime, stepErr = sampler.Ternary(ctx, src)
	})
	if stepErr != nil {
		return ring.IntPoly{}, stepErr
	}

	traced(trace, "compute-a-x", func() {
		client.AX, stepErr = hashlift.ComputeAX(ctx, client.SecretPolynomial)
	})
	if stepErr != nil {
		return ring.IntPoly{}, stepErr
	}

	traced(trace, "compute-c-x", func() {
		var as, asPlusEPrime ring.Element
		if as, stepErr = eval.A.Mul(client.S); stepErr != nil {
			return
		}
		if asPlusEPrime, stepErr = as.Add(client.EPrime); stepErr != nil {
			return
		}
		eval.CX, stepErr = asPlusEPrime.Add(client.AX)
	})
	if stepErr != nil {
		return ring.IntPoly{}, stepErr
	}

	traced(trace, "evaluator-sample-e", func() {
		eval.EBig, stepErr = sampler.UniformB(ctx, src)
	})
	if stepErr != nil {
		return ring.IntPoly{}, stepErr
	}

	traced(trace, "compute-d-x", func() {
		var cxk ring.Element
		if cxk, stepErr = eval.CX.Mul(eval.K); stepErr != nil {
			return
		}
		pE := eval.EBig.MulScalar(ctx.P())
		client.DX, stepErr = cxk.Add(pE)
	})
	if stepErr != nil {
		return ring.IntPoly{}, stepErr
	}

	traced(trace, "unblind", func() {
		var cs ring.Element
		if cs, stepErr = eval.C.Mul(client.S); stepErr != nil {
			return
		}
		client.Y, stepErr = client.DX.Sub(cs)
	})
	if stepErr != nil {
		return ring.IntPoly{}, stepErr
	}

	traced(trace, "round", func() {
		client.YRound = rounding.Round(ctx, client.Y)
	})

	return client.YRound, nil
}
