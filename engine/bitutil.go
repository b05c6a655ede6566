// bitutil.go has the handful of bit-twiddling primitives the rest of the
// package builds on: population count, trailing-zero count and the
// square/file/rank arithmetic used by move generation and evaluation.

package engine

import "math/bits"

func popcount(bb uint64) int {
	return bits.OnesCount64(bb)
}

func trailingZeros(bb uint64) int {
	return bits.TrailingZeros64(bb)
}

// chebyshev returns the Chebyshev distance between two squares, used to
// reject file wraparound on sliding and step moves.
func chebyshev(a, b Square) int {
	df := a.File() - b.File()
	if df < 0 {
		df = -df
	}
	dr := a.Rank() - b.Rank()
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
