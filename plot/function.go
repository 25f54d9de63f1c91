// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot holds the plotting data model: a Function's opaque
// evaluator and sampling tolerances, an Axis and its ticks, a
// CoordinatePlane that ties a viewport Extent to an ordered list of
// Functions. These are pure value types, constructed by the caller and
// discarded at the end of one render — see spec.md §3's "Lifecycle" and
// "Ownership" notes.
//
// Adapted from original_source/src/elements.rs and its later split into
// src/elements/{function,axis,cplane}.rs.
package plot

// FunctionKind selects which coordinate of a Function is the independent
// variable (the "domain"). OfX plots {(t, f(t)) : t in extent.X}; OfY
// plots {(f(t), t) : t in extent.Y}.
type FunctionKind int

const (
	OfX FunctionKind = iota
	OfY
)

// Default numeric parameters, per spec.md §6.
const (
	DefaultMinDepth             = 4
	DefaultErrorToleranceFactor = 2000.0
	DefaultZeroToleranceFactor  = 2000.0
)

// Function is an opaque real-valued evaluator plus the parameters that
// control how densely plotfn.Sample resolves its graph.
type Function struct {
	// Eval may return NaN or ±Inf at any input and must not panic. It
	// must be a pure function of its argument: plotfn.Sample assumes
	// repeated calls with the same input return the same value.
	Eval func(float64) float64

	// MinDepth is the minimum number of times the domain must be
	// bisected before acceptance is considered. See plotfn's package
	// doc for why this dominates ErrorToleranceFactor.
	MinDepth int

	// ErrorToleranceFactor derives the sampler's error tolerance as
	// codomain.Len() / ErrorToleranceFactor.
	ErrorToleranceFactor float64

	// ZeroToleranceFactor derives the sampler's zero tolerance as
	// domain.Len() / ZeroToleranceFactor.
	ZeroToleranceFactor float64

	Kind FunctionKind

	// ApplyDefaultStyleClass includes the "yapl-def-fn" class in the
	// emitted <path>'s class attribute.
	ApplyDefaultStyleClass bool

	// StyleClass is a space-delimited list of additional custom CSS
	// class names for the emitted <path>, alongside the default class
	// unless it was disabled above.
	StyleClass string
}

// NewFunction returns a Function wrapping eval with every parameter set to
// its spec.md §6 default.
func NewFunction(eval func(float64) float64) Function {
	return Function{
		Eval:                   eval,
		MinDepth:               DefaultMinDepth,
		ErrorToleranceFactor:   DefaultErrorToleranceFactor,
		ZeroToleranceFactor:    DefaultZeroToleranceFactor,
		Kind:                   OfX,
		ApplyDefaultStyleClass: true,
	}
}
