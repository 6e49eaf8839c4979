package filament

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Placement hashing is split in two stages so that the per-name work is done
// once and the per-map work stays cheap:
//
//  1. Each Name caches a seed-independent 64-bit content hash (xxhash of the
//     normalized lowercase bytes). Standard names get theirs from a table
//     built at init time, so the common case never hashes at all.
//  2. The map mixes the cached hash with its own random 64-bit seed through
//     an avalanche finalizer and masks the result down to a table index.
//
// An attacker who does not know the map's seed cannot pre-compute bucket
// placements. If a header set still drives probe distances past the red
// threshold, the map draws a fresh seed and rehashes (see danger.go), so the
// degradation window is bounded by a single rehash.

// contentHash returns the seed-independent hash of normalized name bytes.
//
// Allocation behavior: 0 allocs/op
func contentHash(norm string) uint64 {
	return xxhash.Sum64String(norm)
}

// mixHash folds a per-map seed into a cached content hash. This is the
// 64-bit avalanche finalizer from MurmurHash3: every seed bit affects every
// output bit, which is what makes cached per-name hashes safe to reuse
// across maps with different seeds.
//
// Allocation behavior: 0 allocs/op
func mixHash(seed, contentHash uint64) uint64 {
	h := contentHash ^ seed
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// newSeed draws a fresh map seed. math/rand/v2 is backed by a runtime-seeded
// ChaCha8 generator, so seeds are unpredictable without the cost of a system
// call per map.
func newSeed() uint64 {
	return rand.Uint64()
}
