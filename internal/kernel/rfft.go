package kernel

import "github.com/llehouerou/go-tinyfft"

// RFFTPairsTwice packs two real-valued sequences x, y (passed pre-packed as
// data[n].Re = x[n], data[n].Im = y[n]) into one length-N complex transform
// and de-interleaves the result into the two real spectra X, Y, returned
// in the same buffer:
//
//	data[0]         = (X[0],       Y[0])       -- both purely real (DC)
//	data[1..N/2-1]  = X[k]                     -- full complex
//	data[N/2]       = (X[N/2],     Y[N/2])     -- both purely real (Nyquist)
//	data[N/2+1..N-1]= Y[N-k]                   -- full complex, mirror slots
//
// This is the classic "two real FFTs for the price of one complex FFT"
// trick, built on the standard even/odd Hermitian-symmetry decomposition of
// a real sequence's DFT.
//
// Derivation: let Z be the transform of z = x+iy. For k in [1, N/2), with
// m = N-k:
//
//	X[k] = (Z[k] + conj(Z[m])) / 2       Y[k] = -i*(Z[k] - conj(Z[m])) / 2
//	X[m] = conj(X[k])                    Y[m] = conj(Y[k])
//
// X[0] = Re(Z[0]), Y[0] = Im(Z[0]), and symmetrically for the Nyquist bin
// N/2 (Z[N/2] is its own mirror) — both identities, so those two bins are
// left as the complex transform produced them, without the /2 a general
// bin needs. Every bin then sits at the complex transform's own scale, and
// the RangeInfo RunPairs returns describes all of them.
func RFFTPairsTwice[T any](ops Ops[T], data []tinyfft.Complex[T]) int16 {
	n := len(data)
	PermuteOne(data)
	rangeInfo := RunPairs(ops, data)

	h := n / 2
	for k := 1; k < h; k++ {
		m := n - k
		a, b := data[k], data[m]

		xRe := ops.Half(ops.Add(a.Re, b.Re))
		xIm := ops.Half(ops.Sub(a.Im, b.Im))
		yRe := ops.Half(ops.Add(a.Im, b.Im))
		yIm := ops.Half(ops.Sub(b.Re, a.Re))

		data[k] = tinyfft.Complex[T]{Re: xRe, Im: xIm}
		data[m] = tinyfft.Complex[T]{Re: yRe, Im: yIm}
	}

	return rangeInfo
}
