// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"io"
)

// Default style constants, per spec.md §6.
const (
	DefaultFunctionStrokeWidth = 1.0 / 400.0
	DefaultFunctionLinecap     = "round"
	DefaultFunctionLinejoin    = "round"
	DefaultFunctionFill        = "none"
	DefaultFunctionStroke      = "black"

	DefaultAxisStrokeWidth = 1.0 / 1000.0
	DefaultAxisStroke      = "black"

	DefaultTickStrokeWidth = DefaultAxisStrokeWidth
	DefaultTickStroke      = "black"

	FunctionDefaultStyleClassName = "yapl-def-fn"
	AxisDefaultStyleClassName     = "yapl-def-axis"
	TickDefaultStyleClassName     = "yapl-def-tick"
)

// FunctionDefaultStyleClass is a set of independently-toggleable CSS
// properties for the "yapl-def-fn" class. Disabling every field omits the
// class from the stylesheet entirely (see WriteFunctionDefaultStyleClass).
type FunctionDefaultStyleClass struct {
	ApplyStrokeWidth, ApplyLinecap, ApplyLinejoin, ApplyFill, ApplyStroke bool
}

// FunctionStyleClassEnabled and FunctionStyleClassDisabled are the two
// presets from original_source/src/elements/function.rs's
// FunctionDefaultStyleClass::ENABLED / DISABLED.
var (
	FunctionStyleClassEnabled  = FunctionDefaultStyleClass{true, true, true, true, true}
	FunctionStyleClassDisabled = FunctionDefaultStyleClass{}
)

// WriteFunctionDefaultStyleClass writes the "yapl-def-fn" CSS rule, or
// nothing if class is entirely disabled.
func WriteFunctionDefaultStyleClass(w io.Writer, class FunctionDefaultStyleClass) error {
	if class == FunctionStyleClassDisabled {
		return nil
	}
	if _, err := fmt.Fprintf(w, ".%s{", FunctionDefaultStyleClassName); err != nil {
		return err
	}
	if class.ApplyStrokeWidth {
		if _, err := fmt.Fprintf(w, "stroke-width:%v;", DefaultFunctionStrokeWidth); err != nil {
			return err
		}
	}
	if class.ApplyLinecap {
		if _, err := fmt.Fprintf(w, "stroke-linecap:%s;", DefaultFunctionLinecap); err != nil {
			return err
		}
	}
	if class.ApplyLinejoin {
		if _, err := fmt.Fprintf(w, "stroke-linejoin:%s;", DefaultFunctionLinejoin); err != nil {
			return err
		}
	}
	if class.ApplyFill {
		if _, err := fmt.Fprintf(w, "fill:%s;", DefaultFunctionFill); err != nil {
			return err
		}
	}
	if class.ApplyStroke {
		if _, err := fmt.Fprintf(w, "stroke:%s;", DefaultFunctionStroke); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "}")
	return err
}

// AxisDefaultStyleClass is the "yapl-def-axis" analogue of
// FunctionDefaultStyleClass.
type AxisDefaultStyleClass struct {
	ApplyStrokeWidth, ApplyStroke bool
}

var (
	AxisStyleClassEnabled  = AxisDefaultStyleClass{true, true}
	AxisStyleClassDisabled = AxisDefaultStyleClass{}
)

// WriteAxisDefaultStyleClass writes the "yapl-def-axis" CSS rule, or
// nothing if class is entirely disabled.
func WriteAxisDefaultStyleClass(w io.Writer, class AxisDefaultStyleClass) error {
	if class == AxisStyleClassDisabled {
		return nil
	}
	if _, err := fmt.Fprintf(w, ".%s{", AxisDefaultStyleClassName); err != nil {
		return err
	}
	if class.ApplyStrokeWidth {
		if _, err := fmt.Fprintf(w, "stroke-width:%v;", DefaultAxisStrokeWidth); err != nil {
			return err
		}
	}
	if class.ApplyStroke {
		if _, err := fmt.Fprintf(w, "stroke:%s;", DefaultAxisStroke); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "}")
	return err
}

// TickDefaultStyleClass is the "yapl-def-tick" analogue of
// FunctionDefaultStyleClass.
type TickDefaultStyleClass struct {
	ApplyStrokeWidth, ApplyStroke bool
}

var (
	TickStyleClassEnabled  = TickDefaultStyleClass{true, true}
	TickStyleClassDisabled = TickDefaultStyleClass{}
)

// WriteTickDefaultStyleClass writes the "yapl-def-tick" CSS rule, or
// nothing if class is entirely disabled.
func WriteTickDefaultStyleClass(w io.Writer, class TickDefaultStyleClass) error {
	if class == TickStyleClassDisabled {
		return nil
	}
	if _, err := fmt.Fprintf(w, ".%s{", TickDefaultStyleClassName); err != nil {
		return err
	}
	if class.ApplyStrokeWidth {
		if _, err := fmt.Fprintf(w, "stroke-width:%v;", DefaultTickStrokeWidth); err != nil {
			return err
		}
	}
	if class.ApplyStroke {
		if _, err := fmt.Fprintf(w, "stroke:%s;", DefaultTickStroke); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "}")
	return err
}

// DefaultGlobalStyleClasses bundles the three default style classes so
// they can be enabled/disabled together or rule-by-rule. See
// original_source/src/style.rs.
type DefaultGlobalStyleClasses struct {
	Function FunctionDefaultStyleClass
	Axis     AxisDefaultStyleClass
	Tick     TickDefaultStyleClass
}

var (
	DefaultStyleClassesEnabled = DefaultGlobalStyleClasses{
		Function: FunctionStyleClassEnabled,
		Axis:     AxisStyleClassEnabled,
		Tick:     TickStyleClassEnabled,
	}
	DefaultStyleClassesDisabled = DefaultGlobalStyleClasses{}
)

// Stylesheet is the CSS included within a rendered SVG's <style> element.
// svgout appends the TeX renderer's own CSS to it; the <style> element is
// omitted entirely only if Defaults is DefaultStyleClassesDisabled, Custom
// is "", and the TeX renderer contributes no CSS.
type Stylesheet struct {
	Defaults DefaultGlobalStyleClasses
	Custom   string
}

// NewDefaultStylesheet returns a Stylesheet with every default class
// enabled and no custom CSS.
func NewDefaultStylesheet() Stylesheet {
	return Stylesheet{Defaults: DefaultStyleClassesEnabled}
}

// IsEmpty reports whether ss contributes no CSS at all.
func (ss Stylesheet) IsEmpty() bool {
	return ss.Defaults == DefaultStyleClassesDisabled && ss.Custom == ""
}
