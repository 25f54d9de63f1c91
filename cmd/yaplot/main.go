// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command yaplot renders a single named function over a rectangular
// viewport to an SVG file, using the adaptive sampler in the plotfn
// package.
//
// Adapted from original_source/src/main.rs, generalized from its one
// hardcoded function and output path into flags, following
// aclements-go-misc/benchplot/main.go's flag + log.SetPrefix/SetFlags(0)
// idiom.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/duncpro/yapl/interval"
	"github.com/duncpro/yapl/plot"
	"github.com/duncpro/yapl/svgout"
	"github.com/duncpro/yapl/tex"
)

var builtinFunctions = map[string]func(float64) float64{
	"identity":   func(x float64) float64 { return x },
	"reciprocal": func(x float64) float64 { return 1 / x },
	"sin1overx":  func(x float64) float64 { return math.Sin(1 / x) },
	"ln":         math.Log,
	"sin":        math.Sin,
}

func main() {
	log.SetPrefix("yaplot: ")
	log.SetFlags(0)

	var (
		flagFn                   = flag.String("fn", "reciprocal", "named built-in `function` to plot")
		flagXMin                 = flag.Float64("xmin", -5, "minimum visible x value")
		flagXMax                 = flag.Float64("xmax", 5, "maximum visible x value")
		flagYMin                 = flag.Float64("ymin", -5, "minimum visible y value")
		flagYMax                 = flag.Float64("ymax", 5, "maximum visible y value")
		flagMinDepth             = flag.Int("min-depth", plot.DefaultMinDepth, "minimum bisection depth before acceptance")
		flagErrorToleranceFactor = flag.Float64("error-tolerance-factor", plot.DefaultErrorToleranceFactor, "codomain.Len() / this = error tolerance")
		flagZeroToleranceFactor  = flag.Float64("zero-tolerance-factor", plot.DefaultZeroToleranceFactor, "domain.Len() / this = zero tolerance")
		flagWidth                = flag.Float64("width", 500, "rendered SVG width, in pixels")
		flagHeight               = flag.Float64("height", 500, "rendered SVG height, in pixels")
		flagTex                  = flag.String("tex", "", "`path` to a TeX renderer executable (absent: no TeX typesetting)")
		flagOut                  = flag.String("o", "out.svg", "write rendered SVG to `file`")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	eval, ok := builtinFunctions[*flagFn]
	if !ok {
		log.Fatalf("unknown function %q (known: %s)", *flagFn, knownFunctionNames())
	}

	cplane := plot.NewElementaryPlane()
	cplane.Extent.Brect = interval.BoundingRect{
		X: interval.NewClosed(interval.New(*flagXMin, *flagXMax)),
		Y: interval.NewClosed(interval.New(*flagYMin, *flagYMax)),
	}
	// svgout renders each axis at Scale * Len / max(X.Len, Y.Len) pixels.
	maxDim := math.Max(cplane.Extent.Brect.X.Len(), cplane.Extent.Brect.Y.Len())
	cplane.Extent.XScale = *flagWidth * maxDim / cplane.Extent.Brect.X.Len()
	cplane.Extent.YScale = *flagHeight * maxDim / cplane.Extent.Brect.Y.Len()

	fn := plot.NewFunction(eval)
	fn.MinDepth = *flagMinDepth
	fn.ErrorToleranceFactor = *flagErrorToleranceFactor
	fn.ZeroToleranceFactor = *flagZeroToleranceFactor
	cplane.Fns = append(cplane.Fns, fn)

	var texr tex.Renderer = tex.NullRenderer{}
	if *flagTex != "" {
		proc, err := tex.NewProcessRenderer(*flagTex)
		if err != nil {
			log.Fatalf("starting tex renderer: %v", err)
		}
		defer proc.Close()
		texr = proc
	}

	out, err := os.Create(*flagOut)
	if err != nil {
		log.Fatalf("creating output file: %v", err)
	}
	defer out.Close()

	if err := svgout.RenderPlane(out, cplane, plot.NewDefaultStylesheet(), texr); err != nil {
		log.Fatalf("rendering plane: %v", err)
	}

	log.Printf("wrote %s", *flagOut)
}

func knownFunctionNames() string {
	names := make([]string, 0, len(builtinFunctions))
	for name := range builtinFunctions {
		names = append(names, name)
	}
	return fmt.Sprint(names)
}
