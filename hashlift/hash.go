// Package hashlift implements the deterministic SHA-256-based map from a
// client's secret integer polynomial to a ring element (a_x), as
// specified in SPEC_FULL.md §4.4. The hex-string-as-bytes step is the
// documented quirk the spec preserves verbatim for bit-exact behavior
// (see SPEC_FULL.md §4.4 and spec.md §9).
package hashlift

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"pqbrake/ring"
)

// SHA256Hex returns the 64-character lowercase hex digest of b.
func SHA256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// HashCoefficients implements hash_coefficients(secret): concatenates the
// decimal (signed) representation of secret's coefficients 0..deg into a
// string h's preimage, hashes it to get h, then returns N+1 strings
// t_i = sha256_hex(decimal(i) || h) for i = 0..N.
func HashCoefficients(secret ring.IntPoly, n int) []string {
	var sb strings.Builder
	for i := 0; i <= secret.Deg(); i++ {
		sb.WriteString(secret.Coeff(i).String())
	}
	h := SHA256Hex([]byte(sb.String()))

	out := make([]string, n+1)
	for i := 0; i <= n; i++ {
		out[i] = SHA256Hex([]byte(strconv.Itoa(i) + h))
	}
	return out
}

// ComputeAX computes a_x = compute_a_x(secret): each t_i is treated as
// its raw ASCII hex bytes (not decoded), interpreted as a big-endian
// non-negative integer, reduced mod q, and assembled into a ring element
// using only the first N of the N+1 hashed values (the (N+1)-th,
// REDESIGN FLAG in spec.md §9, is immediately reduced away by Φ and so is
// dropped here rather than sampled at all).
func ComputeAX(ctx *ring.Ctx, secret ring.IntPoly) (ring.Element, error) {
	n := ctx.N()
	hashed := HashCoefficients(secret, n)
	if len(hashed) < n {
		return ring.Element{}, fmt.Errorf("hashlift: expected at least %d hashed coefficients, got %d", n, len(hashed))
	}
	coeffs := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		coeffs[i] = new(big.Int).SetBytes([]byte(hashed[i]))
	}
	return ring.FromCoeffs(ctx, coeffs)
}
