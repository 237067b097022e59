// Package trig holds the compile-time quarter-period sine table and the
// quadrant-folded sin_cos lookup shared by every scalar kernel in
// internal/kernel.
package trig

// Angle is a fixed-width unsigned integer encoding a normalised angle
// theta = pi * angle / Max in the half-open range [0, pi). The butterfly
// engine never needs angles outside that range: a forward transform using
// W = exp(-i*theta) only ever evaluates theta in [0, pi) across every stage
// (see internal/kernel.Run's doc comment), so Lookup only implements the
// two quadrants that cover it, folded around the midpoint HalfPi.
//
// uint32 gives twiddle resolution far beyond what any microcontroller-sized
// transform needs; Table is generated at a fixed 1024-entry quarter-period
// resolution regardless of Angle's width, so widening or narrowing this type
// only changes how finely a given stage's true angle is rounded onto Table,
// never the table itself.
type Angle = uint32

// Max is the largest representable Angle, corresponding to theta
// approaching pi.
const Max Angle = ^Angle(0)

// HalfPi is the Angle value representing theta = pi/2, the boundary SinCos
// folds its two quadrants against.
const HalfPi Angle = 1 << 31
