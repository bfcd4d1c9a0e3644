// SPDX-License-Identifier: MIT

package quadform

import "math"

// maxExactInt is the largest magnitude at which every integer is representable
// as float64; intervals beyond it cannot be enumerated.
const maxExactInt = 1 << 53

// Interval is a closed real interval [Lo, Hi] of one coordinate. An empty
// interval is reported as Lo == Hi at the parabola vertex; Unbounded marks a
// level that places no constraint on the coordinate.
type Interval struct {
	Lo, Hi    float64
	Unbounded bool
}

// Unconstrained returns the interval of a level that does not bound its coordinate.
func Unconstrained() Interval { return Interval{Lo: math.Inf(-1), Hi: math.Inf(1), Unbounded: true} }

// SolveInterval returns the roots of x² − 2bx + c = 0 as an interval.
// The larger-magnitude root is computed first and the other one as c/root,
// which avoids cancellation when |b| ≫ √(b²−c).
// A non-positive discriminant b²−c yields the empty sentinel [b, b].
//
// Complexity: O(1).
func SolveInterval(b, c float64) Interval {
	disc := b*b - c
	if !(disc > 0) {
		return Interval{Lo: b, Hi: b}
	}
	sign := 1.0
	if b < 0 {
		sign = -1
	}
	root1 := b + sign*math.Sqrt(disc)
	root2 := c / root1
	if root1 > root2 {
		root1, root2 = root2, root1
	}

	return Interval{Lo: root1, Hi: root2}
}

// Intersect combines the intervals of several constraints:
// lo = max(lo_k), hi = max(min(hi_k), lo). Unbounded intervals are ignored;
// if every input is unbounded the result is unbounded.
func Intersect(ivs ...Interval) Interval {
	out := Unconstrained()
	first := true
	for _, iv := range ivs {
		if iv.Unbounded {
			continue
		}
		if first {
			out = Interval{Lo: iv.Lo, Hi: iv.Hi}
			first = false
			continue
		}
		out.Lo = math.Max(out.Lo, iv.Lo)
		out.Hi = math.Min(out.Hi, iv.Hi)
	}
	if !first {
		out.Hi = math.Max(out.Hi, out.Lo)
	}

	return out
}

// IntRange returns the integers strictly inside the interval:
// min = floor(Lo)+1, max = ceil(Hi)−1. max < min means the branch is empty.
// ok is false when the interval is unbounded or too wide to enumerate.
func (iv Interval) IntRange() (minX, maxX int, ok bool) {
	if iv.Unbounded || !(math.Abs(iv.Lo) < maxExactInt) || !(math.Abs(iv.Hi) < maxExactInt) {
		return 0, -1, false
	}

	return int(math.Floor(iv.Lo)) + 1, int(math.Ceil(iv.Hi)) - 1, true
}

// Empty reports whether the interval holds no integer.
func (iv Interval) Empty() bool {
	lo, hi, ok := iv.IntRange()

	return ok && hi < lo
}
