// Package tinyfft provides an allocation-free, in-place radix-2 fast Fourier
// transform kernel for memory-constrained targets.
//
// The transform is exposed through four scalar-specific packages rather than
// a single generic entry point a caller has to parameterize themselves:
//
//	fft32   float32
//	fft64   float64
//	ffti16  int16 Q15 fixed point
//	ffti32  int32 Q31 fixed point
//
// Each package exports the same three functions operating on caller-owned
// buffers of power-of-two length:
//
//	FFTArrays(re, im []T) RangeInfo
//	FFTPairs(data []Complex) RangeInfo
//	FFTPairsDyn(data []Complex) RangeInfo
//
// Each package additionally exports RFFTPairsTwice, which packs two
// independent real-valued sequences into one interleaved buffer (Re of one
// sequence, Im of the other) and recovers both real spectra from a single
// length-N complex transform, using the Hermitian symmetry of a real
// signal's DFT to do in one pass what would otherwise take two.
//
// None of them allocate, none of them call a trigonometric function at
// runtime (twiddle factors are pulled from a quarter-period lookup table in
// internal/trig), and none of them return an error: a caller that violates a
// precondition (non-power-of-two length, too-short buffer) gets a panic from
// a debug assertion, exactly as a release build on a microcontroller would
// treat the same violation as undefined behaviour rather than pay for a
// runtime check in the hot path.
//
// Integer callers get back a RangeInfo, a signed exponent that turns the raw
// fixed-point output back into a real value: value = raw * 2^RangeInfo (see
// the RangeInfo doc comment for the exact convention used here). Floating
// point callers always get back a RangeInfo of zero; it carries no
// information for them.
//
// This package has no inverse transform, no non-power-of-two lengths, no
// mixed radix, no SIMD, and does not spawn goroutines: a single transform is
// a blocking, single-threaded, CPU-bound call over a buffer the caller
// already owns. Independent buffers may be transformed concurrently from
// different goroutines; nothing here is shared mutable state except the
// read-only twiddle table.
package tinyfft

// Complex is a two-component complex sample in the caller's scalar
// representation T, used by the interleaved-layout entry points
// (FFTPairs, FFTPairsDyn, RFFTPairsTwice).
type Complex[T any] struct {
	Re T
	Im T
}
