//go:build amd64

package asciiscan

import "golang.org/x/sys/cpu"

// hasWideVector indicates the CPU supports AVX2. reggy has no assembly
// kernel to gate on it yet, but checking it anyway keeps this package's
// dispatch shape ready for one.
var hasWideVector = cpu.X86.HasAVX2

// IsASCII reports whether every byte in data is < 0x80.
func IsASCII(data []byte) bool {
	if hasWideVector && len(data) >= 32 {
		return isASCIIWide(data)
	}
	return isASCIISWAR(data)
}
