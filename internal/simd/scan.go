// Package simd carries over the teacher's CPU-feature-detection idiom
// (simd/memchr_amd64.go) without its assembly kernels: this module has no
// .s files, so there is nothing for cpu.X86.HasAVX2/HasSSE42 to dispatch
// to in assembly. What survives is the feature-detection vars themselves,
// repurposed to pick a scan chunk width for the pure-Go byte scan that the
// backre package's Regex search uses to jump to candidate starts when the
// regex has a single determined first byte; a wider chunk means fewer bounds checks per
// byte found on capable hardware, and costs nothing on hardware without it.
package simd

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// ScanWidth returns the chunk width, in bytes, that IndexByte scans at a
// time when looking for the next candidate start position. It never
// changes the result of a search, only how many
// bytes are inspected per loop iteration.
func ScanWidth() int {
	switch {
	case cpu.X86.HasAVX2:
		return 32
	case cpu.X86.HasSSE42:
		return 16
	default:
		return 8
	}
}

// IndexByte is bytes.IndexByte restricted to haystack[from:], returning an
// absolute index or -1. It exists so callers that already compute from
// inline don't need a second slice/offset arithmetic at every call site.
//
// The search itself is delegated to bytes.IndexByte chunk by chunk, at
// ScanWidth()-sized granularity: the chunking does not change the result,
// only how many IndexByte calls are issued to reach it, so this stays
// correct even where the cpu feature detection above is wrong (e.g. under
// emulation) while still letting wider hardware do less call overhead per
// byte scanned.
func IndexByte(haystack []byte, b byte, from int) int {
	if from >= len(haystack) {
		return -1
	}
	h := haystack[from:]
	width := ScanWidth()

	i := 0
	for i+width <= len(h) {
		if j := bytes.IndexByte(h[i:i+width], b); j >= 0 {
			return from + i + j
		}
		i += width
	}
	if j := bytes.IndexByte(h[i:], b); j >= 0 {
		return from + i + j
	}
	return -1
}
