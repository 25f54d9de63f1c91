// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "github.com/duncpro/yapl/interval"

// Extent is the viewport: the visible rectangle in math coordinates, plus
// the stretch factor applied to each axis when mapping into SVG space
// (spec.md §3, §4.5).
type Extent struct {
	Brect  interval.BoundingRect
	XScale float64
	YScale float64
}

// Width returns XScale * Brect.X.Len(). svgout renders the extent this
// wide divided by max(Brect.X.Len(), Brect.Y.Len()).
func (e Extent) Width() float64 { return e.XScale * e.Brect.X.Len() }

// Height returns YScale * Brect.Y.Len(). svgout renders the extent this
// high divided by max(Brect.X.Len(), Brect.Y.Len()).
func (e Extent) Height() float64 { return e.YScale * e.Brect.Y.Len() }

// Area returns Width() * Height().
func (e Extent) Area() float64 { return e.Width() * e.Height() }

// CoordinatePlane ties a viewport to zero or more axes and an ordered list
// of functions. The CoordinatePlane owns its axes and function list
// exclusively; functions render in list order (spec.md §3).
type CoordinatePlane struct {
	Extent Extent

	// HorizontalAxis and VerticalAxis are nil to omit that axis
	// entirely.
	HorizontalAxis *Axis
	VerticalAxis   *Axis

	Fns []Function
}

// NewElementaryPlane returns a CoordinatePlane over [-5, 5] x [-5, 5] with
// both axes present at their default appearance and no functions, mirror-
// ing original_source/src/elements/cplane.rs's CoordinatePlane::new_elementary.
func NewElementaryPlane() *CoordinatePlane {
	horiz := NewAxis(0, 1, 0)
	vert := NewAxis(0, 1, 0)
	return &CoordinatePlane{
		Extent: Extent{
			Brect: interval.BoundingRect{
				X: interval.NewClosed(interval.New(-5, 5)),
				Y: interval.NewClosed(interval.New(-5, 5)),
			},
			XScale: 1,
			YScale: 1,
		},
		HorizontalAxis: &horiz,
		VerticalAxis:   &vert,
	}
}

// NewMinimalPlane is NewElementaryPlane without axes, mirroring
// CoordinatePlane::new_minimal.
func NewMinimalPlane() *CoordinatePlane {
	p := NewElementaryPlane()
	p.HorizontalAxis = nil
	p.VerticalAxis = nil
	return p
}
