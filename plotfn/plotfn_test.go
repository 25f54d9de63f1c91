// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotfn

import (
	"math"
	"testing"
	"time"

	"github.com/aclements/go-moremath/vec"
	"github.com/duncpro/yapl/interval"
	"github.com/duncpro/yapl/segvec"
)

func closed(a, b float64) interval.ClosedInterval {
	return interval.NewClosed(interval.New(a, b))
}

func defaultParams(domain, codomain interval.ClosedInterval) Params {
	return Params{
		Domain:         domain,
		Codomain:       codomain,
		MinDepth:       4,
		ErrorTolerance: codomain.Len() / 2000,
		ZeroTolerance:  domain.Len() / 2000,
	}
}

// TestAcceptRequiresMinDepth checks property 1 of spec.md §8: a linear
// function, which has zero midpoint error at every depth, must still be
// bisected at least MinDepth times before any node is emitted.
func TestAcceptRequiresMinDepth(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	params := defaultParams(closed(-1, 1), closed(-10, 10))
	params.MinDepth = 4

	stats := Sample(func(x float64) float64 { return 2 * x }, nodes, params)

	if stats.Accept == 0 {
		t.Fatal("expected at least one accepted interval")
	}
	// Every accepted interval's width must be at most domain.Len()/2^MinDepth,
	// since acceptance cannot occur before depth reaches MinDepth.
	maxWidth := params.Domain.Len() / math.Pow(2, float64(params.MinDepth))
	anchors := collectAnchors(nodes.AsSlice())
	for i := 1; i < len(anchors); i++ {
		width := anchors[i] - anchors[i-1]
		if width > maxWidth+1e-9 {
			t.Errorf("adjacent anchors %v, %v span width %v, exceeds %v implied by MinDepth",
				anchors[i-1], anchors[i], width, maxWidth)
		}
	}
}

// TestNeverEmitsAdjacentBreaks checks property 2: Break must never
// immediately follow another Break, and the sequence must never end with
// a Break (acceptance always ends on an Anchor). A leading Break is
// expected and correct: per spec.md §4.4, the first accepted interval of
// an empty sequence contributes Break, Anchor{a}, Anchor{b}.
func TestNeverEmitsAdjacentBreaks(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	params := defaultParams(closed(-10, 10), closed(-1, 1))
	Sample(func(x float64) float64 { return 1 / x }, nodes, params)

	seq := nodes.AsSlice()
	if len(seq) == 0 {
		return
	}
	if seq[len(seq)-1].Kind == Break {
		t.Error("sequence must not end with a Break")
	}
	for i := 1; i < len(seq); i++ {
		if seq[i-1].Kind == Break && seq[i].Kind == Break {
			t.Errorf("adjacent Breaks at index %d", i)
		}
	}
}

// TestNoDuplicateAdjacentAnchor checks property 3: the same anchor value
// must never be emitted twice back-to-back across a Break (that would be
// a zero-length visible segment).
func TestNoDuplicateAdjacentAnchor(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	params := defaultParams(closed(-5, 5), closed(-5, 5))
	Sample(math.Sin, nodes, params)

	seq := nodes.AsSlice()
	for i := 0; i+2 < len(seq); i++ {
		if seq[i].Kind == Anchor && seq[i+1].Kind == Break && seq[i+2].Kind == Anchor {
			if seq[i].Input == seq[i+2].Input {
				t.Errorf("duplicate anchor %v straddling Break at index %d", seq[i].Input, i)
			}
		}
	}
}

// TestAnchorsWithinDomain checks that every emitted Anchor lies within the
// requested domain.
func TestAnchorsWithinDomain(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	domain := closed(0, 10)
	params := defaultParams(domain, closed(-2, 2))
	Sample(math.Sin, nodes, params)

	for _, n := range nodes.AsSlice() {
		if n.Kind != Anchor {
			continue
		}
		if !domain.Includes(n.Input) {
			t.Errorf("anchor %v lies outside domain %v", n.Input, domain)
		}
	}
}

// TestTerminatesOnPathologicalFunction checks property 4: sin(1/x) near
// zero must not cause nonterminating bisection; ZeroTolerance bounds the
// total amount of work.
func TestTerminatesOnPathologicalFunction(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	params := defaultParams(closed(-1, 1), closed(-1, 1))
	f := func(x float64) float64 {
		if x == 0 {
			return math.NaN()
		}
		return math.Sin(1 / x)
	}

	done := make(chan Stats, 1)
	go func() {
		done <- Sample(f, nodes, params)
	}()
	select {
	case stats := <-done:
		if stats.PruneZeroTolerance == 0 {
			t.Error("expected at least one zero-tolerance prune near the singularity")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Sample did not terminate on sin(1/x)")
	}
}

// TestOutOfViewportCulled checks property 5: a constant function entirely
// outside the codomain band must be culled without being accepted anywhere.
func TestOutOfViewportCulled(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	params := defaultParams(closed(-10, 10), closed(-1, 1))
	stats := Sample(func(x float64) float64 { return 100 }, nodes, params)

	if stats.Accept != 0 {
		t.Errorf("expected zero accepts for an out-of-viewport constant function, got %d", stats.Accept)
	}
	if !nodes.IsEmpty() {
		t.Error("expected no nodes emitted for a fully culled function")
	}
}

// TestIdentityMatchesLinspaceGrid checks, for the identity function whose
// domain matches its codomain, that every emitted anchor lies within the
// span of a uniform reference grid over the domain, generated with
// go-moremath's vec.Linspace (two points: the domain's endpoints). It does
// not compare anchor counts or positions against the grid.
func TestIdentityMatchesLinspaceGrid(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	domain := closed(-5, 5)
	params := defaultParams(domain, closed(-5, 5))
	Sample(func(x float64) float64 { return x }, nodes, params)

	reference := vec.Linspace(domain.Begin(), domain.End(), 2)
	lo, hi := reference[0], reference[len(reference)-1]

	for _, n := range nodes.AsSlice() {
		if n.Kind != Anchor {
			continue
		}
		if n.Input < lo-1e-9 || n.Input > hi+1e-9 {
			t.Errorf("anchor %v outside reference span [%v, %v]", n.Input, lo, hi)
		}
	}
}

// TestZeroErrorToleranceStillTerminates checks that an ErrorTolerance of
// zero (every chord must be exact) still terminates, relying solely on
// ZeroTolerance and the "will disappear" escape hatch.
func TestZeroErrorToleranceStillTerminates(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	params := Params{
		Domain:         closed(-1, 1),
		Codomain:       closed(-1, 1),
		MinDepth:       2,
		ErrorTolerance: 0,
		ZeroTolerance:  (2.0) / 2000,
	}
	stats := Sample(math.Sin, nodes, params)
	if stats.Accept == 0 {
		t.Fatal("expected the will-disappear rule to accept intervals under zero error tolerance")
	}
	// With no error slack, sin is accepted only once an interval is at
	// most 2*ZeroTolerance wide, before the width guard is ever reached.
	anchors := collectAnchors(nodes.AsSlice())
	for i := 1; i < len(anchors); i++ {
		if width := anchors[i] - anchors[i-1]; width > 2*params.ZeroTolerance {
			t.Errorf("adjacent anchors %v, %v span width %v, exceeds 2*ZeroTolerance %v",
				anchors[i-1], anchors[i], width, 2*params.ZeroTolerance)
		}
	}
}

// TestNegativeToleranceParamsPanic checks the documented panic contract.
func TestNegativeToleranceParamsPanic(t *testing.T) {
	var root segvec.SegVecRoot[Node]
	nodes := root.Extend()
	defer nodes.Close()

	shouldPanic(t, func() {
		Sample(math.Sin, nodes, Params{
			Domain: closed(-1, 1), Codomain: closed(-1, 1),
			ErrorTolerance: -1, ZeroTolerance: 0.01,
		})
	})
	shouldPanic(t, func() {
		Sample(math.Sin, nodes, Params{
			Domain: closed(-1, 1), Codomain: closed(-1, 1),
			ErrorTolerance: 0.01, ZeroTolerance: -1,
		})
	})
}

func shouldPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic, got none")
		}
	}()
	f()
}

func collectAnchors(seq []Node) []float64 {
	var out []float64
	for _, n := range seq {
		if n.Kind == Anchor {
			out = append(out, n.Input)
		}
	}
	return out
}
