// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotfn implements the adaptive sampling algorithm that turns an
// opaque real-valued function into a polyline approximation suitable for
// rendering: Sample. This is the hard part of yapl and its sole
// responsibility — everything else in the repository exists to feed it
// inputs or consume its output.
//
// Sample must, in order of precedence:
//  1. never accept before MinDepth bisections of the domain ("the depth
//     gate" — a function whose graph oscillates on a scale larger than
//     domain.Len()/2^MinDepth can look perfectly straight on a single
//     chord, since the chord's midpoint value equals the function's
//     actual value there; MinDepth forces enough subdivision to notice
//     macroscopic structure before error-based termination ever runs);
//  2. cull any interval whose chord lies entirely outside the viewport,
//     without evaluating it further ("the viewport cull" — exact for
//     monotone chords, a safe over-approximation otherwise: a thin spike
//     between a state's endpoints can be missed at depths below
//     MinDepth, and this is an accepted trade-off, not a bug);
//  3. accept an interval once its chord is framed within the viewport
//     (the codomain covers the range between its endpoint values) and
//     either its midpoint error is within tolerance or further
//     bisection would make it invisible at this resolution anyway;
//  4. otherwise prune once the domain has shrunk below ZeroTolerance,
//     guaranteeing termination on pathological functions (e.g.
//     sin(1/x) near zero) regardless of how "interesting" the function
//     remains there.
//
// Adapted from original_source/src/plotfn.rs, translating its recursive
// description into the explicit LIFO stack the Rust source already uses
// (so call depth never exceeds the stack's resident size, independent of
// MinDepth) and its RefCell-based SegVec into segvec.SegVec.
package plotfn

import (
	"math"
	"time"

	"github.com/duncpro/yapl/interval"
	"github.com/duncpro/yapl/segvec"
)

// Params configures one call to Sample.
type Params struct {
	// Domain is the independent interval to plot.
	Domain interval.ClosedInterval

	// Codomain is the visible dependent interval: the viewport's
	// clipping band along the codomain axis.
	Codomain interval.ClosedInterval

	// MinDepth is the minimum number of times Domain must be bisected
	// before acceptance is considered.
	MinDepth int

	// ErrorTolerance is the greatest tolerable absolute difference
	// between a chord's midpoint approximation and the function's
	// actual value there, once MinDepth has been reached. Must be >= 0.
	ErrorTolerance float64

	// ZeroTolerance is the domain width below which bisection stops
	// unconditionally. Must be >= 0; in practice must be > 0 to
	// guarantee termination (spec.md §8 property 4).
	ZeroTolerance float64
}

// NodeKind distinguishes the two variants of Node.
type NodeKind int

const (
	// Break terminates the current polyline; the next Anchor starts a
	// new one.
	Break NodeKind = iota

	// Anchor is a polyline vertex, carrying the independent-coordinate
	// of the vertex. The dependent coordinate is recomputed by the
	// consumer as f(Input).
	Anchor
)

// Node is one element of Sample's output sequence: either a Break or an
// Anchor carrying an independent-coordinate Input. Input is meaningless
// (and ignored) when Kind is Break.
type Node struct {
	Kind  NodeKind
	Input float64
}

// Stats records per-call counters and wall-clock duration. Stats are
// advisory only and must never influence Sample's behavior.
type Stats struct {
	Accept                      int
	PruneOutsideViewportFinite  int
	PruneOutsideViewportInfinite int
	PruneZeroTolerance          int
	Breaks                      int
	Duration                    time.Duration
}

// state is one entry of the explicit bisection stack.
type state struct {
	domain interval.ClosedInterval
	depth  int
}

// Sample runs the adaptive sampling algorithm described in the package
// doc, writing the resulting Node sequence into nodes, and returns
// statistics about the run. f may return NaN or ±Inf for any input and
// must not panic; it is assumed to be a pure function of its argument.
//
// Sample panics if params.ErrorTolerance or params.ZeroTolerance is
// negative — these are programmer errors, not data the sampler can
// recover from.
func Sample(f func(float64) float64, nodes *segvec.SegVec[Node], params Params) Stats {
	if params.ErrorTolerance < 0 {
		panic("plotfn: ErrorTolerance must be >= 0")
	}
	if params.ZeroTolerance < 0 {
		panic("plotfn: ZeroTolerance must be >= 0")
	}
	return bisect(f, params, nodes)
}

func bisect(f func(float64) float64, params Params, nodes *segvec.SegVec[Node]) Stats {
	stack := []state{{domain: params.Domain, depth: 0}}
	var stats Stats
	begin := time.Now()

	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		splitpoint := (st.domain.Begin() + st.domain.End()) / 2

		accepted := false
		var leftY, rightY float64

		if st.depth >= params.MinDepth {
			leftY = f(st.domain.Begin())
			rightY = f(st.domain.End())

			if !math.IsNaN(leftY) && !math.IsNaN(rightY) {
				chord := interval.NewOpen(interval.MinMax(leftY, rightY))

				if params.Codomain.Open().IsDisjointWith(chord) {
					stats.PruneOutsideViewportFinite++
					continue
				}

				approx := (leftY + rightY) / 2
				actual := f(splitpoint)

				if !math.IsNaN(actual) && !math.IsNaN(approx) {
					errAbs := math.Abs(approx - actual)
					isWithinTolerance := errAbs <= params.ErrorTolerance
					isFramed := params.Codomain.Covers(chord.Bounds)
					willDisappear := st.domain.Len() <= 2*params.ZeroTolerance

					if isFramed && (isWithinTolerance || willDisappear) {
						leftAnchor := Node{Kind: Anchor, Input: st.domain.Begin()}
						if last, ok := lastNode(nodes); !ok || last != leftAnchor {
							nodes.Push(Node{Kind: Break})
							nodes.Push(leftAnchor)
							stats.Breaks++
						}
						nodes.Push(Node{Kind: Anchor, Input: st.domain.End()})
						stats.Accept++
						accepted = true
					}
				}
			}

			if !accepted {
				if math.IsInf(leftY, 0) && !math.IsInf(rightY, 0) && !math.IsNaN(rightY) {
					if params.Codomain.Open().Excludes(rightY) {
						stats.PruneOutsideViewportInfinite++
						continue
					}
				}
				if !math.IsInf(leftY, 0) && !math.IsNaN(leftY) && math.IsInf(rightY, 0) {
					if params.Codomain.Open().Excludes(leftY) {
						stats.PruneOutsideViewportInfinite++
						continue
					}
				}
			}
		}

		if accepted {
			continue
		}

		if st.domain.Len() < params.ZeroTolerance {
			stats.PruneZeroTolerance++
			continue
		}

		stack = append(stack, state{
			domain: interval.NewClosed(interval.New(splitpoint, st.domain.End())),
			depth:  st.depth + 1,
		})
		stack = append(stack, state{
			domain: interval.NewClosed(interval.New(st.domain.Begin(), splitpoint)),
			depth:  st.depth + 1,
		})
	}

	stats.Duration = time.Since(begin)
	return stats
}

// lastNode returns the last node currently in nodes' scope, if any.
func lastNode(nodes *segvec.SegVec[Node]) (Node, bool) {
	s := nodes.AsSlice()
	if len(s) == 0 {
		return Node{}, false
	}
	return s[len(s)-1], true
}
