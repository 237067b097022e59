// Package kernel implements the scalar-abstracted butterfly engine shared by
// every public façade package: bit-reversal permutation plus the iterative
// radix-2 decimation-in-time butterfly sweep, generalised over four scalar
// representations via the Ops[T] interface.
//
// Nothing here allocates and nothing here calls a trigonometric function;
// twiddle factors are pulled from internal/trig's precomputed table through
// Ops[T].SinCos.
package kernel

import "github.com/llehouerou/go-tinyfft/internal/trig"

// Ops is the scalar contract the butterfly engine (Run) is parameterised
// over. There is one implementation per supported scalar type (F32, F64,
// I16, I32). Run and RunPairs receive the implementation as an Ops[T]
// interface value and call its methods through that interface; the calls
// are not specialised per scalar type at compile time.
type Ops[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T

	// Mul is the scaled multiply used inside a butterfly. For floating
	// scalars this is ordinary multiplication. For fixed-point scalars it
	// widens both operands, multiplies, and shifts back down to the
	// scalar's Q-format width.
	Mul(a, b T) T

	// SinCos returns the (twiddleIm, twiddleRe) pair for angle, converted
	// to T's own representation. See internal/trig.Lookup for the exact
	// fold and sign convention; Ops implementations simply rescale the
	// table's int32 output to T.
	SinCos(angle trig.Angle) (twIm, twRe T)

	// Rescale is applied to every butterfly operand immediately before it
	// is combined, once per stage. It is the identity for floating
	// scalars. For fixed-point scalars it is an arithmetic right shift by
	// one bit, the "static" rescale policy: unconditional, data
	// independent, and exactly enough headroom for a butterfly's worst
	// case 2x magnitude growth (see internal/kernel's Run doc comment).
	Rescale(x T) T

	// RescaleShift is how many bits of RangeInfo one application of
	// Rescale costs: 0 for floating scalars (Rescale is a no-op and
	// carries no information), 1 for fixed-point scalars.
	RescaleShift() int16

	// InitialRangeInfo is the RangeInfo bias before any stage has run,
	// folding in the scalar's Q-format scale (1-BITS(S)) so that the
	// final accumulated RangeInfo directly satisfies
	// value = raw * 2^RangeInfo with no separate MAX(S) division left for
	// the caller to apply. Zero for floating scalars.
	InitialRangeInfo() int16

	// FromF64 converts a float64 in [-1, 1) into T. The identity for
	// floating scalars; for fixed-point scalars it scales by the Q-format
	// denominator 2^(BITS-1) and truncates toward zero.
	FromF64(x float64) T

	// ToF64 is the inverse of FromF64 given the RangeInfo accumulated by a
	// transform: value = float64(x) * 2^rangeInfo. InitialRangeInfo
	// already folds in the Q-format MAX division, so this formula is the
	// same arithmetic for every scalar, floating or fixed-point; only the
	// float64(x) conversion itself is type-specific, which is why this
	// stays a per-Ops method instead of one shared generic helper.
	ToF64(x T, rangeInfo int16) float64

	// Half divides x by two: ordinary floating multiply by 0.5 for F32/
	// F64, an arithmetic right shift by one bit for I16/I32. Used by the
	// RFFTPairsTwice post-process (see rfft.go) to split one
	// complex spectrum into two real ones; not used by Run/RunPairs.
	Half(x T) T
}
