// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/curve"
	"github.com/tonescale/tonescale/palette"
)

var testBases = []palette.BaseColor{
	{ID: "b1c2d3e4", Name: "Brand Red"},
	{ID: "f00dcafe"},
}

func step(id, hex string, contrast float64, closest bool) palette.StepResult {
	return palette.StepResult{StepID: id, Color: colorimetry.MustParseHex(hex), Hex: hex, ContrastWhite: contrast, Closest: closest}
}

var testResults = []palette.Result{
	{BaseColorID: "b1c2d3e4", Steps: []palette.StepResult{step("100", "#ffc5c0", 1.5, false), step("50", "#740016", 11.97, true)}},
	{BaseColorID: "f00dcafe", Steps: []palette.StepResult{step("100", "#3366ff80", 2.08, false)}},
}

func asciiOutput(b *bytes.Buffer) *termenv.Output {
	return termenv.NewOutput(b, termenv.WithProfile(termenv.Ascii))
}

func TestRender(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Render(asciiOutput(&b), testBases, testResults, Options{}))
	want := "" +
		"       Brand Red   color-f00d \n" +
		"100    #ffc5c0     #3366ff80  \n" +
		"50     #740016*               \n"
	assert.Equal(t, want, b.String())
}

func TestRenderContrast(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Render(asciiOutput(&b), testBases, testResults[:1], Options{LabelWidth: 4, Contrast: true}))
	want := "" +
		"     Brand Red        \n" +
		"100  #ffc5c0  1.50    \n" +
		"50   #740016*11.97    \n"
	assert.Equal(t, want, b.String())
}

func TestRenderColor(t *testing.T) {
	var b bytes.Buffer
	out := termenv.NewOutput(&b, termenv.WithProfile(termenv.TrueColor))
	require.NoError(t, Render(out, testBases, testResults, Options{}))
	s := b.String()
	assert.Contains(t, s, "\x1b[")
	assert.Contains(t, s, "38;2;255;255;255")
	assert.Contains(t, s, "38;2;0;0;0")
	assert.Equal(t, 3, strings.Count(s, "\n"))
}

func TestRenderEmpty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Render(asciiOutput(&b), nil, nil, Options{}))
	assert.Equal(t, "      \n", b.String())
}

func TestFit(t *testing.T) {
	type data struct {
		in    string
		width int
		want  string
	}
	tests := []data{
		{"abc", 5, "abc  "},
		{"abcdef", 4, "abcd"},
		{"", 2, "  "},
		{"日本語", 5, "日本 "},
		{"héllo", 3, "hél"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, fit(test.in, test.width), test.in)
	}
}

func TestPlot(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Plot(asciiOutput(&b), curve.EasingPoints(curve.EasingLinear, 3), 4, 4))
	want := "" +
		"|   *\n" +
		"|  * \n" +
		"| *  \n" +
		"|*   \n" +
		"+----\n"
	assert.Equal(t, want, b.String())

	b.Reset()
	require.NoError(t, Plot(asciiOutput(&b), []curve.Point{{X: -1, Y: 2}, {X: 2, Y: -1}}, 1, 1))
	assert.Equal(t, "|* \n| *\n+--\n", b.String())
}
