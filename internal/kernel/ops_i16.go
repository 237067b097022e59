package kernel

import (
	"math"

	"github.com/llehouerou/go-tinyfft/internal/trig"
)

// I16 implements Ops[int16], Q15 fixed point: integer x represents the real
// value x/32768, range [-1, 1).
type I16 struct{}

func (I16) Zero() int16 { return 0 }
func (I16) One() int16  { return math.MaxInt16 }

func (I16) Add(a, b int16) int16 { return a + b }
func (I16) Sub(a, b int16) int16 { return a - b }

// Mul multiplies two Q15 operands by widening to int32 and shifting back
// down by BITS-1 (15). Every stage schedules exactly one Rescale, so the
// multiply itself never has to vary its shift by accumulated magnitude.
func (I16) Mul(a, b int16) int16 {
	return int16((int32(a) * int32(b)) >> 15)
}

func (I16) SinCos(angle trig.Angle) (twIm, twRe int16) {
	return trig.Int16(angle)
}

// Rescale arithmetic-right-shifts by one bit, the unconditional per-stage
// headroom reclaim described in internal/kernel.Ops.
func (I16) Rescale(x int16) int16 { return x >> 1 }

func (I16) RescaleShift() int16 { return 1 }

// InitialRangeInfo is 1-BITS(S) = 1-16 = -15, the Q15 scale folded into the
// RangeInfo bias (see RangeInfo.Scale in the root package).
func (I16) InitialRangeInfo() int16 { return 1 - 16 }

// FromF64 scales x (expected in [-1, 1)) by the Q15 denominator 32768 and
// truncates toward zero, clamping to int16's range so a caller passing
// exactly 1.0 does not wrap.
func (I16) FromF64(x float64) int16 {
	v := math.Trunc(x * 32768)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// ToF64 applies value = float64(x) * 2^rangeInfo; InitialRangeInfo already
// folds in the Q15 MAX division so no further scaling is needed here.
func (I16) ToF64(x int16, rangeInfo int16) float64 {
	return float64(x) * math.Ldexp(1, int(rangeInfo))
}

func (I16) Half(x int16) int16 { return x >> 1 }
