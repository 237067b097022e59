package kernel

import "fmt"

// MinN and MaxN bound the buffer lengths every façade package accepts:
// 4 <= N <= 2^20, comfortably inside a 32-bit index.
const (
	MinN = 4
	MaxN = 1 << 20
)

// CheckLength panics if n is not a power of two in [MinN, MaxN]. The kernel
// has no runtime error surface (see tinyfft's doc comment): a violated
// precondition is a programming mistake, not a recoverable condition, so
// façade entry points call this and let it panic rather than threading an
// error return through the hot path.
func CheckLength(n int) {
	if n < MinN || n > MaxN {
		panic(fmt.Sprintf("tinyfft: buffer length %d out of range [%d, %d]", n, MinN, MaxN))
	}
	if n&(n-1) != 0 {
		panic(fmt.Sprintf("tinyfft: buffer length %d is not a power of two", n))
	}
}
