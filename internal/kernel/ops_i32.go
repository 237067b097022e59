package kernel

import (
	"math"

	"github.com/llehouerou/go-tinyfft/internal/trig"
)

// I32 implements Ops[int32], Q31 fixed point: integer x represents the real
// value x/2147483648, range [-1, 1).
type I32 struct{}

func (I32) Zero() int32 { return 0 }
func (I32) One() int32  { return math.MaxInt32 }

func (I32) Add(a, b int32) int32 { return a + b }
func (I32) Sub(a, b int32) int32 { return a - b }

// Mul multiplies two Q31 operands by widening to int64 and shifting back
// down by BITS-1 (31). See I16.Mul for the same static-policy rationale.
func (I32) Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 31)
}

func (I32) SinCos(angle trig.Angle) (twIm, twRe int32) {
	return trig.Int32(angle)
}

// Rescale arithmetic-right-shifts by one bit, the unconditional per-stage
// headroom reclaim described in internal/kernel.Ops.
func (I32) Rescale(x int32) int32 { return x >> 1 }

func (I32) RescaleShift() int16 { return 1 }

// InitialRangeInfo is 1-BITS(S) = 1-32 = -31, the Q31 scale folded into the
// RangeInfo bias.
func (I32) InitialRangeInfo() int16 { return 1 - 32 }

// FromF64 scales x (expected in [-1, 1)) by the Q31 denominator 2147483648
// and truncates toward zero, clamping to int32's range so a caller passing
// exactly 1.0 does not wrap.
func (I32) FromF64(x float64) int32 {
	v := math.Trunc(x * 2147483648)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// ToF64 applies value = float64(x) * 2^rangeInfo; InitialRangeInfo already
// folds in the Q31 MAX division so no further scaling is needed here.
func (I32) ToF64(x int32, rangeInfo int16) float64 {
	return float64(x) * math.Ldexp(1, int(rangeInfo))
}

func (I32) Half(x int32) int32 { return x >> 1 }
