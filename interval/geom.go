// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interval

import "fmt"

// Vec2D is a point or displacement in the plane.
type Vec2D struct {
	X, Y float64
}

// BoundingRect is an axis-aligned rectangle. It may be degenerate (zero
// area) in either or both dimensions.
type BoundingRect struct {
	X, Y ClosedInterval
}

// Area returns the rectangle's area, which is zero for a degenerate
// rectangle.
func (br BoundingRect) Area() float64 { return br.X.Len() * br.Y.Len() }

// NormalizeCoordinate transforms coord from an absolute position to a
// position relative to the interior of container, scaled by the larger of
// container's two side lengths. The lower-left corner of container maps
// to (0, 0); if container is square, the upper-right corner maps to
// (1, 1).
//
// NormalizeCoordinate panics if container's area is zero: a degenerate
// rectangle has no well-defined interior, so there is no coordinate
// system to normalize into.
func NormalizeCoordinate(container BoundingRect, coord Vec2D) Vec2D {
	if container.Area() == 0 {
		panic(fmt.Sprintf("interval: cannot normalize %v against a degenerate container %v", coord, container))
	}
	deltaX := coord.X - container.X.Begin()
	deltaY := coord.Y - container.Y.Begin()
	maxDim := container.X.Len()
	if container.Y.Len() > maxDim {
		maxDim = container.Y.Len()
	}
	return Vec2D{deltaX / maxDim, deltaY / maxDim}
}
