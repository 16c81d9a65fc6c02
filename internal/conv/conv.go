// Package conv provides safe integer conversion helpers used while
// building the automaton: instruction offsets and pattern counts come in
// as Go ints but are stored as fixed-width IDs, and a pattern set large
// enough to overflow one deserves a panic, not a silently wrapped offset.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms where
	// int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: integer overflow converting int to uint32")
	}
	return uint32(n)
}
