// Package luck provides the deterministic pseudo-random seed function used
// by the spawner. For a fixed salt the same seed string always maps to the
// same value, which is what lets cells be destroyed and recreated without
// the world changing underneath the player.
package luck

import "hash/fnv"

// Func maps a seed string to a value in [0, 1). Implementations must be
// pure and stable across invocations for the same seed string.
type Func func(seed string) float64

// New returns a luck function salted with the given world salt. Different
// salts produce different (but individually stable) worlds.
func New(salt uint64) Func {
	return func(seed string) float64 {
		h := fnv.New64a()
		// Mix the salt in first so "salted" streams never collide with
		// the unsalted stream for crafted seed strings.
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(salt >> (8 * i))
		}
		h.Write(buf[:])
		h.Write([]byte(seed))
		// Take the top 53 bits so the float64 mantissa is fully used.
		return float64(h.Sum64()>>11) / (1 << 53)
	}
}

// Default is the luck function for the default world (salt 0).
func Default() Func {
	return New(0)
}
