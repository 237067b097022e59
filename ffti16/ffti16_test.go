package ffti16

import (
	"math"
	"testing"

	"github.com/llehouerou/go-tinyfft"
)

// toF64 mirrors internal/kernel.I16.ToF64 without importing the internal
// package: value = raw * 2^rangeInfo (the Q15 1/32768 scale is already
// folded into rangeInfo).
func toF64(raw int16, rangeInfo tinyfft.RangeInfo) float64 {
	return float64(raw) * rangeInfo.Scale()
}

func q15(x float64) int16 {
	v := math.Round(x * 32768)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

const tol = 3e-3

func approx(got, want float64) bool {
	return math.Abs(got-want) < tol
}

func TestImpulse(t *testing.T) {
	re := make([]int16, 8)
	im := make([]int16, 8)
	re[0] = math.MaxInt16

	ri := FFTArrays(re, im)

	for k := 0; k < 8; k++ {
		if !approx(toF64(re[k], ri), 1) || !approx(toF64(im[k], ri), 0) {
			t.Errorf("X[%d] = (%v, %v), want (1, 0)", k, toF64(re[k], ri), toF64(im[k], ri))
		}
	}
}

func TestDC(t *testing.T) {
	re := make([]int16, 8)
	im := make([]int16, 8)
	for n := range re {
		re[n] = math.MaxInt16
	}

	ri := FFTArrays(re, im)

	if !approx(toF64(re[0], ri), 8) || !approx(toF64(im[0], ri), 0) {
		t.Fatalf("X[0] = (%v, %v), want (8, 0)", toF64(re[0], ri), toF64(im[0], ri))
	}
	for k := 1; k < 8; k++ {
		if !approx(toF64(re[k], ri), 0) || !approx(toF64(im[k], ri), 0) {
			t.Errorf("X[%d] = (%v, %v), want (0, 0)", k, toF64(re[k], ri), toF64(im[k], ri))
		}
	}
}

// TestRescaling checks the i16 rescaling behavior: x[n] = MAX_i16 for all
// n, N=8 (3 stages). Each stage contributes exactly one bit of headroom via
// RescaleShift, so RangeInfo must grow by exactly +3 over the Q15 baseline
// while X[0] still represents 8.0 once descaled.
func TestRescaling(t *testing.T) {
	const n = 8
	re := make([]int16, n)
	im := make([]int16, n)
	for i := range re {
		re[i] = math.MaxInt16
	}

	const baseline = 1 - 16 // kernel.I16{}.InitialRangeInfo()
	ri := FFTArrays(re, im)

	if got, want := int16(ri), int16(baseline+3); got != want {
		t.Fatalf("RangeInfo = %d, want %d (baseline %d + 3 stages)", got, want, baseline)
	}
	if !approx(toF64(re[0], ri), 8) {
		t.Errorf("X[0] = %v, want ~8", toF64(re[0], ri))
	}
}

func TestSingleTone(t *testing.T) {
	const n = 16
	re := make([]int16, n)
	im := make([]int16, n)
	for i := 0; i < n; i++ {
		re[i] = q15(0.5 * math.Cos(2*math.Pi*3*float64(i)/n))
	}

	ri := FFTArrays(re, im)

	if !approx(toF64(re[3], ri), 4) || !approx(toF64(im[3], ri), 0) {
		t.Errorf("X[3] = (%v, %v), want (4, 0)", toF64(re[3], ri), toF64(im[3], ri))
	}
	if !approx(toF64(re[13], ri), 4) || !approx(toF64(im[13], ri), 0) {
		t.Errorf("X[13] = (%v, %v), want (4, 0)", toF64(re[13], ri), toF64(im[13], ri))
	}
}

func TestSplitVsInterleavedEquivalence(t *testing.T) {
	const n = 256
	re := make([]int16, n)
	im := make([]int16, n)
	pairs := make([]tinyfft.Complex[int16], n)
	for i := 0; i < n; i++ {
		v := q15(0.3 * math.Sin(float64(i)*0.05))
		re[i] = v
		im[i] = v / 2
		pairs[i] = tinyfft.Complex[int16]{Re: v, Im: v / 2}
	}

	riArr := FFTArrays(re, im)
	riPairs := FFTPairsDyn(pairs)

	if riArr != riPairs {
		t.Fatalf("RangeInfo mismatch: FFTArrays=%v FFTPairsDyn=%v", riArr, riPairs)
	}
	for i := 0; i < n; i++ {
		if pairs[i].Re != re[i] || pairs[i].Im != im[i] {
			t.Fatalf("index %d: FFTPairsDyn = (%v, %v), FFTArrays = (%v, %v)",
				i, pairs[i].Re, pairs[i].Im, re[i], im[i])
		}
	}
}

func TestFFTArraysLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched re/im length")
		}
	}()
	FFTArrays(make([]int16, 8), make([]int16, 4))
}

func TestRFFTPairsTwiceRoundTrip(t *testing.T) {
	const n = 32
	x := make([]int16, n)
	y := make([]int16, n)
	data := make([]tinyfft.Complex[int16], n)
	for i := 0; i < n; i++ {
		x[i] = q15(0.4 * math.Cos(2*math.Pi*2*float64(i)/n))
		y[i] = q15(0.4 * math.Sin(2*math.Pi*5*float64(i)/n))
		data[i] = tinyfft.Complex[int16]{Re: x[i], Im: y[i]}
	}

	riData := RFFTPairsTwice(data)

	xRe := append([]int16(nil), x...)
	xIm := make([]int16, n)
	riX := FFTArrays(xRe, xIm)

	yRe := append([]int16(nil), y...)
	yIm := make([]int16, n)
	riY := FFTArrays(yRe, yIm)

	check := func(k int, wantRe, wantIm float64, gotRe, gotIm int16, ri tinyfft.RangeInfo) {
		if !approx(toF64(gotRe, ri), wantRe) || !approx(toF64(gotIm, ri), wantIm) {
			t.Errorf("bin %d: got (%v, %v), want (%v, %v)",
				k, toF64(gotRe, ri), toF64(gotIm, ri), wantRe, wantIm)
		}
	}

	check(0, toF64(xRe[0], riX), toF64(yRe[0], riY), data[0].Re, data[0].Im, riData)
	check(n/2, toF64(xRe[n/2], riX), toF64(yRe[n/2], riY), data[n/2].Re, data[n/2].Im, riData)
	for k := 1; k < n/2; k++ {
		check(k, toF64(xRe[k], riX), toF64(xIm[k], riX), data[k].Re, data[k].Im, riData)
		check(n-k, toF64(yRe[k], riY), toF64(yIm[k], riY), data[n-k].Re, data[n-k].Im, riData)
	}
}
