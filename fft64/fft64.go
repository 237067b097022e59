// Package fft64 is the double-precision floating-point scalar FFT entry
// point. See the root package tinyfft for the shared contract every scalar
// package implements.
package fft64

import (
	"github.com/llehouerou/go-tinyfft"
	"github.com/llehouerou/go-tinyfft/internal/kernel"
)

// FFTArrays computes the forward FFT of the split-layout buffer (re, im) in
// place. len(re) must equal len(im) and be a power of two in
// [kernel.MinN, kernel.MaxN]; violating this panics.
//
// RangeInfo is always zero for float64.
func FFTArrays(re, im []float64) tinyfft.RangeInfo {
	if len(re) != len(im) {
		panic("tinyfft/fft64: re and im must have equal length")
	}
	kernel.CheckLength(len(re))
	kernel.BitReverse(re, im)
	return tinyfft.RangeInfo(kernel.Run[float64](kernel.F64{}, re, im))
}

// FFTPairs computes the forward FFT of the interleaved-layout buffer data
// in place. len(data) must be a power of two in [kernel.MinN, kernel.MaxN].
func FFTPairs(data []tinyfft.Complex[float64]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	kernel.PermuteOne(data)
	return tinyfft.RangeInfo(kernel.RunPairs[float64](kernel.F64{}, data))
}

// FFTPairsDyn is FFTPairs with the length discovered from the buffer rather
// than known at the call site; see fft32.FFTPairsDyn for why the two
// collapse to one implementation here.
func FFTPairsDyn(data []tinyfft.Complex[float64]) tinyfft.RangeInfo {
	return FFTPairs(data)
}

// RFFTPairsTwice packs two real-valued sequences into data (data[n].Re =
// x[n], data[n].Im = y[n]) and transforms them with a single length-N
// complex FFT, de-interleaving the result into two real spectra in place.
// See internal/kernel.RFFTPairsTwice for the exact output layout.
func RFFTPairsTwice(data []tinyfft.Complex[float64]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	return tinyfft.RangeInfo(kernel.RFFTPairsTwice[float64](kernel.F64{}, data))
}
