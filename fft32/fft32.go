// Package fft32 is the single-precision floating-point scalar FFT entry
// point. See the root package tinyfft for the shared contract every scalar
// package implements.
package fft32

import (
	"github.com/llehouerou/go-tinyfft"
	"github.com/llehouerou/go-tinyfft/internal/kernel"
)

// FFTArrays computes the forward FFT of the split-layout buffer (re, im) in
// place. len(re) must equal len(im) and be a power of two in
// [kernel.MinN, kernel.MaxN]; violating this panics.
//
// RangeInfo is always zero for float32: floating point already tracks its
// own magnitude, so there is nothing for the caller to reconstruct.
func FFTArrays(re, im []float32) tinyfft.RangeInfo {
	if len(re) != len(im) {
		panic("tinyfft/fft32: re and im must have equal length")
	}
	kernel.CheckLength(len(re))
	kernel.BitReverse(re, im)
	return tinyfft.RangeInfo(kernel.Run[float32](kernel.F32{}, re, im))
}

// FFTPairs computes the forward FFT of the interleaved-layout buffer data
// in place. len(data) must be a power of two in [kernel.MinN, kernel.MaxN].
func FFTPairs(data []tinyfft.Complex[float32]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	kernel.PermuteOne(data)
	return tinyfft.RangeInfo(kernel.RunPairs[float32](kernel.F32{}, data))
}

// FFTPairsDyn is FFTPairs with the length discovered from the buffer rather
// than known at the call site. On this scalar-slice-based implementation
// the two variants share one code path (Go has no const-generic array
// length to specialise against); FFTPairsDyn is kept as a distinct exported
// name to preserve the static/dynamic API split the kernel design calls
// for, for callers who want to document their intent at the call site.
func FFTPairsDyn(data []tinyfft.Complex[float32]) tinyfft.RangeInfo {
	return FFTPairs(data)
}

// RFFTPairsTwice packs two real-valued sequences into data (data[n].Re =
// x[n], data[n].Im = y[n]) and transforms them with a single length-N
// complex FFT, de-interleaving the result into two real spectra in place.
// See internal/kernel.RFFTPairsTwice for the exact output layout.
func RFFTPairsTwice(data []tinyfft.Complex[float32]) tinyfft.RangeInfo {
	kernel.CheckLength(len(data))
	return tinyfft.RangeInfo(kernel.RFFTPairsTwice[float32](kernel.F32{}, data))
}
