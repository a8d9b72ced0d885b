// Package sampler implements the three ring-element samplers the OPRF
// engine needs (ternary, uniform over [0,q), signed-uniform over
// [-B,B]), each built on top of a pluggable uniform-word Source via
// rejection sampling to avoid modular bias.
package sampler

// Source supplies uniformly distributed 64-bit words of entropy. Two
// implementations are provided: OSSource (crypto/rand, for production)
// and Seeded (a deterministic CSPRNG, for reproducible test runs).
type Source interface {
	// ReadUint64 returns one uniformly distributed 64-bit word, or an
	// error if the underlying entropy source failed.
	ReadUint64() (uint64, error)
}
