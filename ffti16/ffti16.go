// Package ffti16 is the Q15 fixed-point scalar FFT entry point. See the
// root package tinyfft for the shared contract every scalar package
// implements.
package ffti16

import (
	"github.com/llehouerou/go-tinyfft"
	"github.com/llehouerou/go-tinyfft/internal/kernel"
)

// FFTArrays computes the forward FFT of the split-layout buffer (re, im) in
// place. len(re) must equal len(im) and be a power of two in
// [kernel.MinN, kernel.MaxN]; violating this panics.
//
// Input and output are Q15 fixed point: integer x represents the real
// value x/32768. The returned RangeInfo is the exponent a caller multiplies
// the raw output by (value = float64(raw) * 2^RangeInfo) to recover the
// true complex value; see internal/kernel.I16 for the per-stage rescale
// that makes this exact.
func FFTArrays(re, im []int16) tinyfft.RangeInfo {
	if len(re) != len(im) {
		panic("tinyfft/ffti16: re and im must have equal length")
	}
	kernel.CheckLength(len(re))
	kernel.BitReverse(re, im)
	return tinyfft.RangeInfo(kernel.Run[int16](kernel.I16{}, re, im))
}

// FFTPairs computes the forward FFT of the interleaved-layout buffer data
// in place. len(data) must be a power of two in [kernel.MinN, kernel.MaxN].
func FFTPairs(data []tinyfft.Complex[int16]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	kernel.PermuteOne(data)
	return tinyfft.RangeInfo(kernel.RunPairs[int16](kernel.I16{}, data))
}

// FFTPairsDyn is FFTPairs with the length discovered from the buffer rather
// than known at the call site; see fft32.FFTPairsDyn for why the two
// collapse to one implementation here.
func FFTPairsDyn(data []tinyfft.Complex[int16]) tinyfft.RangeInfo {
	return FFTPairs(data)
}

// RFFTPairsTwice packs two real-valued Q15 sequences into data (data[n].Re
// = x[n], data[n].Im = y[n]) and transforms them with a single length-N
// complex FFT, de-interleaving the result into two real spectra in place.
// See internal/kernel.RFFTPairsTwice for the exact output layout.
func RFFTPairsTwice(data []tinyfft.Complex[int16]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	return tinyfft.RangeInfo(kernel.RFFTPairsTwice[int16](kernel.I16{}, data))
}
