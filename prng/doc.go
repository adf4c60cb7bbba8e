// Package prng provides a seed-deterministic, self-contained random source
// for the puzzle algorithms in this module.
//
// What
//
//   - New(seed): expand arbitrary-length seed bytes into a fixed internal
//     state via crypto/sha256, then SplitMix64-style avalanche mixing.
//   - Bits(k): return the next k (0<=k<=32) random bits as a uint32.
//   - Upto(limit): return a uniformly distributed value in [0,limit).
//   - Shuffle(s, xs): Fisher-Yates shuffle xs in place using s.
//
// Why
//
//   - matching's randomized augmenting-path order, latin's generator, and
//     divvy's cell-transfer selection all need the same reproducible
//     source: same seed bytes in, same sequence of decisions out, on every
//     platform and Go version. Go's math/rand does not promise its
//     generator algorithm is stable across releases, so this package owns
//     its generator outright rather than wrapping math/rand.
//
// Determinism
//
//	The generator is pure 64-bit integer arithmetic (xorshift128+ state
//	advance, seeded via a SplitMix64-style avalanche mix of the SHA-256
//	expansion of the caller's seed bytes). No floating point, no global
//	state, no reliance on time or OS entropy.
//
// Concurrency
//
//	A *Source is not goroutine-safe, the same way math/rand.Rand is not;
//	give each goroutine its own Source derived from a distinct seed.
//
// Complexity
//
//	Bits, Upto: O(1). Shuffle: O(n).
package prng
