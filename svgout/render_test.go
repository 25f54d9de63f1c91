// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgout

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/duncpro/yapl/plot"
	"github.com/duncpro/yapl/tex"
)

func TestRenderPlaneElementaryPlaneWithSine(t *testing.T) {
	cplane := plot.NewElementaryPlane()
	fn := plot.NewFunction(math.Sin)
	cplane.Fns = append(cplane.Fns, fn)

	var out bytes.Buffer
	if err := RenderPlane(&out, cplane, plot.NewDefaultStylesheet(), tex.NullRenderer{}); err != nil {
		t.Fatal(err)
	}

	svg := out.String()
	if !strings.Contains(svg, "<svg") {
		t.Error("expected output to contain an <svg> root element")
	}
	if !strings.Contains(svg, "<path") {
		t.Error("expected output to contain at least one <path> for the plotted function")
	}
	if !strings.Contains(svg, "yapl-def-axis") {
		t.Error("expected default axis style class to be applied")
	}
}

func TestRenderPlaneMinimalPlaneOmitsAxes(t *testing.T) {
	cplane := plot.NewMinimalPlane()
	cplane.Fns = append(cplane.Fns, plot.NewFunction(func(x float64) float64 { return x * x }))

	var out bytes.Buffer
	if err := RenderPlane(&out, cplane, plot.Stylesheet{Defaults: plot.DefaultStyleClassesDisabled}, tex.NullRenderer{}); err != nil {
		t.Fatal(err)
	}

	svg := out.String()
	if strings.Contains(svg, "yapl-def-axis") {
		t.Error("expected no axis style class when the plane has no axes and defaults are disabled")
	}
	if strings.Contains(svg, "<style") {
		t.Error("expected no <style> element when every style class is disabled and there is no custom CSS")
	}
}

func TestRenderPlaneEmptyStylesheetOmitsStyleElement(t *testing.T) {
	cplane := plot.NewMinimalPlane()

	var out bytes.Buffer
	style := plot.Stylesheet{Defaults: plot.DefaultStyleClassesDisabled}
	if err := RenderPlane(&out, cplane, style, tex.NullRenderer{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "<style") {
		t.Error("expected no <style> element for an entirely empty stylesheet")
	}
}
