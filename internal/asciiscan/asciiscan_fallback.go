//go:build !amd64

package asciiscan

// IsASCII reports whether every byte in data is < 0x80.
func IsASCII(data []byte) bool {
	return isASCIISWAR(data)
}
