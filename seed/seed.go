// Package seed implements the orchestration glue that turns an OPRF
// result into the 32-byte seed handed to the (out-of-scope) KEM
// collaborator (SPEC_FULL.md §4.8, spec.md §4.7).
package seed

import (
	"crypto/sha256"
	"strings"

	"pqbrake/hashlift"
	"pqbrake/ring"
)

// ToSeed implements oprf_to_seed(y_rounded) as specified: concatenate the
// decimal (signed) representation of y_rounded's coefficients 0..deg,
// SHA-256-hex the result, and take the first 32 bytes of the ASCII hex
// string itself (not the decoded digest) as the seed. This is the
// documented hex-string-reuse quirk (spec.md §9); see ToSeedRaw for a
// clean-room alternative.
func ToSeed(y ring.IntPoly) [32]byte {
	var sb strings.Builder
	for i := 0; i <= y.Deg(); i++ {
		sb.WriteString(y.Coeff(i).String())
	}
	h := hashlift.SHA256Hex([]byte(sb.String()))

	var out [32]byte
	copy(out[:], h[:32])
	return out
}

// ToSeedRaw is a clean-room variant that returns the raw 32-byte SHA-256
// digest of the same coefficient concatenation, without the ASCII-hex
// reinterpretation quirk ToSeed preserves for bit-exact compatibility
// (spec.md §9: "for a clean-room rewrite, prefer raw bytes").
func ToSeedRaw(y ring.IntPoly) [32]byte {
	var sb strings.Builder
	for i := 0; i <= y.Deg(); i++ {
		sb.WriteString(y.Coeff(i).String())
	}
	return sha256.Sum256([]byte(sb.String()))
}
