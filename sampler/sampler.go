package sampler

import (
	"encoding/binary"
	"math/big"

	"pqbrake/ring"
)

// sampleUniformRange draws a value uniformly from [0, rangeSize) using
// rejection sampling over words read from src, so no modular-reduction
// bias is introduced (mirrors the teacher's FillPolyBoundedFromPRNG
// rejection loop, generalized from a single uint64 word to an arbitrary
// big.Int range so it also covers uniform_q() where q does not fit in a
// machine word).
func sampleUniformRange(src Source, rangeSize *big.Int) (*big.Int, error) {
	if rangeSize.Sign() <= 0 {
		return new(big.Int), nil
	}
	k := rangeSize.BitLen()
	words := (k + 63) / 64
	buf := make([]byte, words*8)
	for {
		for w := 0; w < words; w++ {
			v, err := src.ReadUint64()
			if err != nil {
				return nil, err
			}
			binary.LittleEndian.PutUint64(buf[w*8:], v)
		}
		val := new(big.Int).SetBytes(buf)
		val.Rsh(val, uint(words*64-k))
		if val.Cmp(rangeSize) < 0 {
			return val, nil
		}
	}
}

// Ternary samples a ring element with N coefficients uniform in
// {-1, 0, 1} (negative values represented canonically, i.e. -1 as q-1).
func Ternary(ctx *ring.Ctx, src Source) (ring.Element, error) {
	return sampleSigned(ctx, src, big.NewInt(1))
}

// UniformQ samples a ring element with N coefficients uniform in [0, q).
func UniformQ(ctx *ring.Ctx, src Source) (ring.Element, error) {
	n := ctx.N()
	q := ctx.Q()
	coeffs := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		v, err := sampleUniformRange(src, q)
		if err != nil {
			return ring.Element{}, err
		}
		coeffs[i] = v
	}
	return ring.FromCoeffs(ctx, coeffs)
}

// UniformB samples a ring element with N coefficients uniform in [-B, B].
func UniformB(ctx *ring.Ctx, src Source) (ring.Element, error) {
	return sampleSigned(ctx, src, ctx.B())
}

// sampleSigned draws N coefficients uniform in [-bound, bound] and embeds
// them into the ring canonically.
func sampleSigned(ctx *ring.Ctx, src Source, bound *big.Int) (ring.Element, error) {
	n := ctx.N()
	span := new(big.Int).Lsh(bound, 1)
	span.Add(span, big.NewInt(1)) // 2*bound+1
	coeffs := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		v, err := sampleUniformRange(src, span)
		if err != nil {
			return ring.Element{}, err
		}
		v.Sub(v, bound)
		coeffs[i] = v
	}
	return ring.FromCoeffs(ctx, coeffs)
}
