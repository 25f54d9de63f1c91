// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"strings"
	"testing"
)

func TestWriteFunctionDefaultStyleClassDisabledWritesNothing(t *testing.T) {
	var buf strings.Builder
	if err := WriteFunctionDefaultStyleClass(&buf, FunctionStyleClassDisabled); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q, want empty", buf.String())
	}
}

func TestWriteFunctionDefaultStyleClassEnabledWritesEveryProperty(t *testing.T) {
	var buf strings.Builder
	if err := WriteFunctionDefaultStyleClass(&buf, FunctionStyleClassEnabled); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"stroke-width", "stroke-linecap", "stroke-linejoin", "fill", "stroke"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestWriteFunctionDefaultStyleClassPartialToggle(t *testing.T) {
	var buf strings.Builder
	class := FunctionDefaultStyleClass{ApplyStroke: true}
	if err := WriteFunctionDefaultStyleClass(&buf, class); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "stroke:") {
		t.Errorf("expected stroke property in %q", out)
	}
	if strings.Contains(out, "stroke-width") {
		t.Errorf("did not expect stroke-width property in %q", out)
	}
}

func TestStylesheetIsEmpty(t *testing.T) {
	empty := Stylesheet{Defaults: DefaultStyleClassesDisabled}
	if !empty.IsEmpty() {
		t.Error("expected an all-disabled, no-custom-CSS stylesheet to be empty")
	}
	if NewDefaultStylesheet().IsEmpty() {
		t.Error("expected the default stylesheet to not be empty")
	}
	withCustom := Stylesheet{Defaults: DefaultStyleClassesDisabled, Custom: ".x{}"}
	if withCustom.IsEmpty() {
		t.Error("expected a stylesheet with custom CSS to not be empty")
	}
}

func TestFirstTickMultiple(t *testing.T) {
	cases := []struct {
		begin, offset, stride float64
		want                  int
	}{
		{0, 0, 1, 0},
		{0.1, 0, 1, 1},
		{-0.1, 0, 1, 0},
		{-1.5, 0, 1, -1},
		{-2, 0, 1, -2},
		{3, 1, 2, 1},
	}
	for _, c := range cases {
		got := FirstTickMultiple(c.begin, c.offset, c.stride)
		if got != c.want {
			t.Errorf("FirstTickMultiple(%v, %v, %v) = %d, want %d", c.begin, c.offset, c.stride, got, c.want)
		}
	}
}
