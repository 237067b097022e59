package kernel

import "github.com/llehouerou/go-tinyfft/internal/trig"

// F32 implements Ops[float32]. Every operation is ordinary IEEE-754
// single-precision arithmetic; range accounting is entirely absent, matching
// the original source's `()` ScaleInfo/RangeInfo for floating scalars.
type F32 struct{}

func (F32) Zero() float32 { return 0 }
func (F32) One() float32  { return 1 }

func (F32) Add(a, b float32) float32 { return a + b }
func (F32) Sub(a, b float32) float32 { return a - b }
func (F32) Mul(a, b float32) float32 { return a * b }

func (F32) SinCos(angle trig.Angle) (twIm, twRe float32) {
	return trig.Float32(angle)
}

func (F32) Rescale(x float32) float32 { return x }
func (F32) RescaleShift() int16       { return 0 }
func (F32) InitialRangeInfo() int16   { return 0 }

func (F32) FromF64(x float64) float32               { return float32(x) }
func (F32) ToF64(x float32, rangeInfo int16) float64 { return float64(x) }
func (F32) Half(x float32) float32                   { return x * 0.5 }
