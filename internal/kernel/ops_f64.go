package kernel

import "github.com/llehouerou/go-tinyfft/internal/trig"

// F64 implements Ops[float64], the double-precision twin of F32.
type F64 struct{}

func (F64) Zero() float64 { return 0 }
func (F64) One() float64  { return 1 }

func (F64) Add(a, b float64) float64 { return a + b }
func (F64) Sub(a, b float64) float64 { return a - b }
func (F64) Mul(a, b float64) float64 { return a * b }

func (F64) SinCos(angle trig.Angle) (twIm, twRe float64) {
	return trig.Float64(angle)
}

func (F64) Rescale(x float64) float64 { return x }
func (F64) RescaleShift() int16       { return 0 }
func (F64) InitialRangeInfo() int16   { return 0 }

func (F64) FromF64(x float64) float64               { return x }
func (F64) ToF64(x float64, rangeInfo int16) float64 { return x }
func (F64) Half(x float64) float64                   { return x * 0.5 }
