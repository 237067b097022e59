package kernel

import "github.com/llehouerou/go-tinyfft"

// RunPairs is the interleaved-layout twin of Run: identical algorithm,
// indexing the Re/Im fields of a tinyfft.Complex[T] slice directly instead
// of two parallel slices. Kept as a separate loop nest (rather than
// splitting data into temporary re/im slices first) because that split
// would require an allocation, which this library never performs.
func RunPairs[T any](ops Ops[T], data []tinyfft.Complex[T]) int16 {
	n := len(data)
	rangeInfo := ops.InitialRangeInfo()

	for step := 1; step < n; step <<= 1 {
		jump := step << 1
		twIm := ops.Zero()
		twRe := ops.One()

		for group := 0; group < step; group++ {
			for pair := group; pair < n; pair += jump {
				match := pair + step

				rp := ops.Rescale(data[pair].Re)
				ip := ops.Rescale(data[pair].Im)
				rq := ops.Rescale(data[match].Re)
				iq := ops.Rescale(data[match].Im)

				prodRe := ops.Sub(ops.Mul(twRe, rq), ops.Mul(twIm, iq))
				prodIm := ops.Add(ops.Mul(twRe, iq), ops.Mul(twIm, rq))

				data[match].Re = ops.Sub(rp, prodRe)
				data[match].Im = ops.Sub(ip, prodIm)
				data[pair].Re = ops.Add(rp, prodRe)
				data[pair].Im = ops.Add(ip, prodIm)
			}

			if group+1 == step {
				continue
			}
			angle := stageAngle(group+1, step)
			twIm, twRe = ops.SinCos(angle)
		}

		rangeInfo += ops.RescaleShift()
	}

	return rangeInfo
}
