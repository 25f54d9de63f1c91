// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "math"

// DefaultTickLength is the tick mark's appearance length, per spec.md §6.
const DefaultTickLength = 1.0 / 100.0

// DefaultLabelHeight is the height reserved for a tick label's nested SVG
// viewport, per spec.md §6.
const DefaultLabelHeight = 2.0 / 100.0

// Axis describes one axis of a CoordinatePlane: where it sits (Pos, on the
// perpendicular coordinate), and where its ticks fall (Offset + k*Stride
// for every integer k whose product lies in the visible interval — spec.md
// §4.3). A Stride of zero disables ticks entirely.
type Axis struct {
	Offset, Stride, Pos float64

	Tick Tick

	// TickLabel is nil to omit tick labels altogether.
	TickLabel *TickLabel

	// ApplyDefaultStyleClass includes the "yapl-def-axis" class in the
	// emitted axis <line>'s class attribute.
	ApplyDefaultStyleClass bool

	// StyleClass is a space-delimited list of additional custom CSS
	// class names for the emitted axis <line>.
	StyleClass string
}

// NewAxis returns an Axis at the given offset/stride/pos with every other
// field set to its spec.md §6 default (a decimal tick label, default tick
// appearance, default style class enabled).
func NewAxis(offset, stride, pos float64) Axis {
	return Axis{
		Offset:                 offset,
		Stride:                 stride,
		Pos:                    pos,
		Tick:                   NewTick(),
		TickLabel:              &TickLabel{Kind: TickLabelDecimal{}, Height: DefaultLabelHeight},
		ApplyDefaultStyleClass: true,
	}
}

// Tick is the appearance of one tick mark on an Axis.
type Tick struct {
	// Len is the tick mark's total length, centered on the axis line.
	Len float64

	// ApplyDefaultStyleClass includes the "yapl-def-tick" class in each
	// emitted tick <line>'s class attribute.
	ApplyDefaultStyleClass bool

	// StyleClass is a space-delimited list of additional custom CSS
	// class names for each emitted tick <line>.
	StyleClass string
}

// NewTick returns a Tick with the spec.md §6 default length and the
// default style class enabled.
func NewTick() Tick {
	return Tick{Len: DefaultTickLength, ApplyDefaultStyleClass: true}
}

// TickLabel configures how an Axis's ticks are labeled.
type TickLabel struct {
	Kind TickLabelKind

	// Height is the height of the nested SVG viewport the label is
	// rendered into.
	Height float64
}

// TickLabelKind selects how a tick's value is rendered as TeX.
//
// TickLabelDecimal renders the tick's numeric value directly.
// TickLabelSymbolic renders an expression in terms of an offset symbol and
// a stride symbol, per original_source/src/elements/axis.rs's
// SymbolicTickLabel — useful for axes whose natural unit is symbolic
// (e.g. multiples of pi).
type TickLabelKind interface {
	isTickLabelKind()
}

type TickLabelDecimal struct{}

func (TickLabelDecimal) isTickLabelKind() {}

type TickLabelSymbolic struct {
	// OffsetSymbolTex is the TeX for the axis's Offset, or "" if Offset
	// is zero (in which case it is omitted from every label).
	OffsetSymbolTex string

	// StrideSymbolTex is the TeX for one Stride (e.g. "\pi").
	StrideSymbolTex string
}

func (TickLabelSymbolic) isTickLabelKind() {}

// FirstTickMultiple returns the smallest integer k such that
// offset + k*stride lies at or after interval.Begin(), i.e.
// ceil((interval.Begin() - offset) / stride), per spec.md §4.3's tie-break
// rule. stride must be positive.
func FirstTickMultiple(intervalBegin, offset, stride float64) int {
	return int(math.Ceil((intervalBegin - offset) / stride))
}
