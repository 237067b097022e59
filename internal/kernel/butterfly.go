package kernel

import "github.com/llehouerou/go-tinyfft/internal/trig"

// Run executes the iterative radix-2 decimation-in-time butterfly sweep
// over an already bit-reversed re/im buffer pair and returns the
// accumulated RangeInfo exponent (raw int16 form; the public façade
// packages wrap this into tinyfft.RangeInfo).
//
// The step/jump/group/pair loop nest is parameterised over the Ops[T]
// contract so the same loop body serves all four scalar types, with
// per-stage Rescale/RescaleShift calls giving fixed-point scalars their
// overflow-free dynamic range accounting: each butterfly can grow a
// magnitude by at most a factor of two, so shifting every operand right by
// one bit before combining keeps the wrapping add/sub below it safe.
//
// re and im must be equal length, a power of two, length >= 2. Run does not
// validate this; callers (the façade packages) are responsible for
// rejecting malformed buffers before calling in.
func Run[T any](ops Ops[T], re, im []T) int16 {
	n := len(re)
	rangeInfo := ops.InitialRangeInfo()

	for step := 1; step < n; step <<= 1 {
		jump := step << 1
		twIm := ops.Zero()
		twRe := ops.One()

		for group := 0; group < step; group++ {
			for pair := group; pair < n; pair += jump {
				match := pair + step

				rp := ops.Rescale(re[pair])
				ip := ops.Rescale(im[pair])
				rq := ops.Rescale(re[match])
				iq := ops.Rescale(im[match])

				prodRe := ops.Sub(ops.Mul(twRe, rq), ops.Mul(twIm, iq))
				prodIm := ops.Add(ops.Mul(twRe, iq), ops.Mul(twIm, rq))

				re[match] = ops.Sub(rp, prodRe)
				im[match] = ops.Sub(ip, prodIm)
				re[pair] = ops.Add(rp, prodRe)
				im[pair] = ops.Add(ip, prodIm)
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

// stageAngle maps the fractional position k/step (k in [1, step)) onto the
// trig.Angle encoding of theta = pi*angle/Max, i.e. angle = Max * k/step.
func stageAngle(k, step int) trig.Angle {
	return trig.Angle((uint64(k) << 32) / uint64(step))
}
