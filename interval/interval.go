// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interval provides the small set of interval and geometry value
// types that the sampler and SVG emitter build on: a non-decreasing pair
// of reals, its closed and open refinements, an axis-aligned bounding
// rectangle, and a 2-D vector.
//
// Every constructor here validates its arguments and panics on violation.
// These are programmer errors, not recoverable conditions — plotfn.Sample
// follows the same convention for negative tolerances.
package interval

import (
	"fmt"
	"math"
)

// NonDecreasing is a pair of reals (begin, end) with begin <= end. Neither
// bound may be NaN, but either may be infinite.
type NonDecreasing struct {
	begin, end float64
}

// New constructs a NonDecreasing interval from begin to end. It panics if
// either argument is NaN or if begin is greater than end.
func New(begin, end float64) NonDecreasing {
	if math.IsNaN(begin) || math.IsNaN(end) {
		panic(fmt.Sprintf("interval: cannot construct NonDecreasing out of (%v, %v): NaN bound", begin, end))
	}
	if begin > end {
		panic(fmt.Sprintf("interval: cannot construct NonDecreasing out of (%v, %v): begin > end", begin, end))
	}
	return NonDecreasing{begin, end}
}

// MinMax constructs a NonDecreasing interval beginning at min(a, b) and
// ending at max(a, b). It panics if either argument is NaN.
func MinMax(a, b float64) NonDecreasing {
	if math.IsNaN(a) || math.IsNaN(b) {
		panic(fmt.Sprintf("interval: cannot construct NonDecreasing out of (%v, %v): NaN bound", a, b))
	}
	return NonDecreasing{math.Min(a, b), math.Max(a, b)}
}

// Begin returns the interval's minimum, which is never NaN.
func (nd NonDecreasing) Begin() float64 { return nd.begin }

// End returns the interval's maximum, which is never NaN.
func (nd NonDecreasing) End() float64 { return nd.end }

// ClosedInterval is a NonDecreasing interval that additionally guarantees
// neither endpoint is infinite. It includes both of its endpoints.
type ClosedInterval struct {
	bounds NonDecreasing
}

// NewClosed wraps bounds as a ClosedInterval. It panics if either endpoint
// of bounds is infinite.
func NewClosed(bounds NonDecreasing) ClosedInterval {
	if math.IsInf(bounds.begin, 0) || math.IsInf(bounds.end, 0) {
		panic(fmt.Sprintf("interval: cannot construct ClosedInterval out of (%v, %v): infinite bound", bounds.begin, bounds.end))
	}
	return ClosedInterval{bounds}
}

// Bounds discards the closed-ness of ci and returns the underlying
// NonDecreasing interval with the same endpoints.
func (ci ClosedInterval) Bounds() NonDecreasing { return ci.bounds }

// Begin returns ci's minimum; it is never NaN or infinite.
func (ci ClosedInterval) Begin() float64 { return ci.bounds.begin }

// End returns ci's maximum; it is never NaN or infinite.
func (ci ClosedInterval) End() float64 { return ci.bounds.end }

// Len returns the (non-negative, finite) length of ci.
func (ci ClosedInterval) Len() float64 { return ci.End() - ci.Begin() }

// Includes reports whether value lies in [ci.Begin(), ci.End()].
func (ci ClosedInterval) Includes(value float64) bool {
	return value >= ci.Begin() && value <= ci.End()
}

// Covers reports whether other is equal to or contained within ci.
func (ci ClosedInterval) Covers(other NonDecreasing) bool {
	return ci.Includes(other.Begin()) && ci.Includes(other.End())
}

// Open returns the OpenInterval with the same endpoints as ci.
func (ci ClosedInterval) Open() OpenInterval { return OpenInterval{ci.bounds} }

// OpenInterval is the interior of a NonDecreasing interval: it excludes
// both of its endpoints. Unlike ClosedInterval, its bounds may be
// infinite.
type OpenInterval struct {
	Bounds NonDecreasing
}

// NewOpen wraps bounds as an OpenInterval.
func NewOpen(bounds NonDecreasing) OpenInterval { return OpenInterval{bounds} }

// Lowerbound returns oi's infimum.
func (oi OpenInterval) Lowerbound() float64 { return oi.Bounds.begin }

// Upperbound returns oi's supremum.
func (oi OpenInterval) Upperbound() float64 { return oi.Bounds.end }

// IsEmpty reports whether oi contains no points. (x, x) is considered
// empty for every x, including ±Inf.
func (oi OpenInterval) IsEmpty() bool { return oi.Lowerbound() == oi.Upperbound() }

// Overlaps reports whether there exists some k present in both oi and
// other. Overlaps is commutative.
func (oi OpenInterval) Overlaps(other OpenInterval) bool {
	if oi.IsEmpty() || other.IsEmpty() {
		return false
	}
	return oi.Lowerbound() < other.Upperbound() && oi.Upperbound() > other.Lowerbound()
}

// IsDisjointWith reports whether no k is present in both oi and other.
// It is the negation of Overlaps and is commutative.
func (oi OpenInterval) IsDisjointWith(other OpenInterval) bool { return !oi.Overlaps(other) }

// Includes reports whether oi.Lowerbound() < value < oi.Upperbound().
func (oi OpenInterval) Includes(value float64) bool {
	return oi.Lowerbound() < value && value < oi.Upperbound()
}

// Excludes is the negation of Includes.
func (oi OpenInterval) Excludes(value float64) bool { return !oi.Includes(value) }
