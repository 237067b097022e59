package tinyfft

import "math"

// RangeInfo is the per-call exponent a scalar FFT entry point returns
// alongside the transformed buffer.
//
// For the floating-point packages (fft32, fft64) it is always zero and
// carries no information: floating point arithmetic already tracks its own
// magnitude.
//
// For the fixed-point packages (ffti16, ffti32) every stage of the butterfly
// network right-shifts its operands by one bit before combining them, to
// guarantee that stage's wrapping add/sub cannot overflow (see
// internal/kernel.Run's doc comment).
// RangeInfo accumulates those shifts, biased so that reconstructing the real
// value a raw output represents is a single exponent multiply:
//
//	value = float64(raw) * 2^RangeInfo
//
// equivalently, per the Q-format convention, raw*2^RangeInfo = raw*2^e/MAX(S)
// with e the literal count of right shifts applied during the transform;
// RangeInfo folds the division by MAX(S) into its starting bias so callers
// never need to know MAX(S) themselves.
type RangeInfo int16

// Scale returns 2^r as a float64, the factor a raw fixed-point sample must
// be multiplied by to recover its real value.
func (r RangeInfo) Scale() float64 {
	return math.Ldexp(1, int(r))
}
