// Package ffti32 is the Q31 fixed-point scalar FFT entry point. See the
// root package tinyfft for the shared contract every scalar package
// implements.
package ffti32

import (
	"github.com/llehouerou/go-tinyfft"
	"github.com/llehouerou/go-tinyfft/internal/kernel"
)

// FFTArrays computes the forward FFT of the split-layout buffer (re, im) in
// place. len(re) must equal len(im) and be a power of two in
// [kernel.MinN, kernel.MaxN]; violating this panics.
//
// Input and output are Q31 fixed point: integer x represents the real
// value x/2147483648. The returned RangeInfo is the exponent a caller
// multiplies the raw output by (value = float64(raw) * 2^RangeInfo) to
// recover the true complex value.
func FFTArrays(re, im []int32) tinyfft.RangeInfo {
	if len(re) != len(im) {
		panic("tinyfft/ffti32: re and im must have equal length")
	}
	kernel.CheckLength(len(re))
	kernel.BitReverse(re, im)
	return tinyfft.RangeInfo(kernel.Run[int32](kernel.I32{}, re, im))
}

// FFTPairs computes the forward FFT of the interleaved-layout buffer data
// in place. len(data) must be a power of two in [kernel.MinN, kernel.MaxN].
func FFTPairs(data []tinyfft.Complex[int32]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	kernel.PermuteOne(data)
	return tinyfft.RangeInfo(kernel.RunPairs[int32](kernel.I32{}, data))
}

// FFTPairsDyn is FFTPairs with the length discovered from the buffer rather
// than known at the call site; see fft32.FFTPairsDyn for why the two
// collapse to one implementation here.
func FFTPairsDyn(data []tinyfft.Complex[int32]) tinyfft.RangeInfo {
	return FFTPairs(data)
}

// RFFTPairsTwice packs two real-valued Q31 sequences into data (data[n].Re
// = x[n], data[n].Im = y[n]) and transforms them with a single length-N
// complex FFT, de-interleaving the result into two real spectra in place.
// See internal/kernel.RFFTPairsTwice for the exact output layout.
func RFFTPairsTwice(data []tinyfft.Complex[int32]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	return tinyfft.RangeInfo(kernel.RFFTPairsTwice[int32](kernel.I32{}, data))
}
