// Package asciiscan provides CPU-feature-gated byte classification used by
// the stream searcher's hot paths: deciding whether a chunk is pure ASCII
// (enabling the cheap byte-oriented UTF-8 fast path) and whether a segment
// is an ASCII whitespace run (used by the searcher's whitespace-folding
// test).
//
// IsASCII dispatches between an amd64 path gated on golang.org/x/sys/cpu
// feature bits (asciiscan_amd64.go) and a portable fallback
// (asciiscan_fallback.go), both ultimately built on the same SWAR
// (SIMD-within-a-register) word-at-a-time scan in this file. No assembly
// kernel is included, so the amd64 path's CPU check currently only widens
// the SWAR stride; a real vector kernel can drop in behind IsASCII
// without changing any caller.
package asciiscan

import "encoding/binary"

// IsWhitespaceRun reports whether every byte in data is an ASCII space,
// tab, or newline. An empty slice is not a whitespace run.
func IsWhitespaceRun(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n':
		default:
			return false
		}
	}
	return true
}

const hiBits = uint64(0x8080808080808080)

// isASCIISWAR checks 8 bytes at a time via bitwise AND against the
// high-bit mask, falling back to a byte loop for the tail. Used as the
// primary implementation on all platforms and as the non-accelerated
// fallback on amd64 for small inputs.
func isASCIISWAR(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}
	if n < 8 {
		for i := 0; i < n; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[i:])
		if chunk&hiBits != 0 {
			return false
		}
		i += 8
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}

// isASCIIWide checks 16 bytes (two SWAR words) at a time; used on amd64
// when the CPU has the vector feature bits that would back a real
// assembly kernel, since it's worth the larger stride even without one.
func isASCIIWide(data []byte) bool {
	n := len(data)
	i := 0
	for i+16 <= n {
		lo := binary.LittleEndian.Uint64(data[i:])
		hi := binary.LittleEndian.Uint64(data[i+8:])
		if (lo|hi)&hiBits != 0 {
			return false
		}
		i += 16
	}
	return isASCIISWAR(data[i:])
}
