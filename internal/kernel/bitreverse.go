package kernel

import "math/bits"

// BitReverse permutes re and im in place so that element i moves to
// bit-reverse(i) (within the log2(len(re))-bit index width), the standard
// decimation-in-time reordering pass.
//
// re and im must have equal, positive, power-of-two length; violating this
// is a caller precondition error (see the façade packages' length checks),
// not something this function reports.
//
// Ported from the original source's bit_reverse_reorder, which took two
// differently-typed arrays specifically so the same routine could reorder
// either a single array (by passing a zero-sized companion) or a split
// re/im pair. Go has no zero-sized-type trick to exploit the same way, so
// callers that only need to permute one array use PermuteOne, a
// single-slice copy of the same loop.
func BitReverse[T any](re, im []T) {
	n := len(re)
	if n < 2 {
		return
	}
	logN := bits.TrailingZeros(uint(n))
	shift := bits.UintSize - logN
	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> uint(shift))
		if j > i {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}
}

// PermuteOne bit-reverse permutes a single buffer in place, for callers
// that only hold one array (e.g. the interleaved Complex layout, reordered
// as a single slice of pairs before the split fields are addressed
// independently inside RunPairs).
func PermuteOne[T any](data []T) {
	n := len(data)
	if n < 2 {
		return
	}
	logN := bits.TrailingZeros(uint(n))
	shift := bits.UintSize - logN
	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> uint(shift))
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
	}
}
