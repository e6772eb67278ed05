// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview renders generated palettes and curve previews
// on a terminal, using true color swatches where the terminal
// supports them and plain text otherwise.
package termview

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/export"
	"github.com/tonescale/tonescale/palette"
)

// Options are the options of [Render].
type Options struct {

	// LabelWidth is the width of the column of step ids, in cells.
	LabelWidth int

	// CellWidth is the width of each swatch, in cells.
	// Zero fits the hex, and the contrast if shown.
	CellWidth int

	// Contrast shows the measured contrast against
	// white next to each hex.
	Contrast bool
}

// NewOutput returns a terminal output for w with its color profile
// detected from the environment.
func NewOutput(w io.Writer) *termenv.Output {
	return termenv.NewOutput(w)
}

// Render writes the palette to out as a table with one row per step
// and one column per base color. Each cell is filled with its shade,
// composited over white if translucent, and labeled with its hex in
// the text color of the shade. The step closest to the base color
// is marked with a '*'.
func Render(out *termenv.Output, bases []palette.BaseColor, results []palette.Result, opts Options) error {
	lw := opts.LabelWidth
	if lw <= 0 {
		lw = 6
	}
	cw := opts.CellWidth
	if cw <= 0 {
		cw = 12
		if opts.Contrast {
			cw = 18
		}
	}

	var rows []string
	for _, r := range results {
		if len(r.Steps) > len(rows) {
			rows = rows[:0]
			for _, s := range r.Steps {
				rows = append(rows, s.StepID)
			}
		}
	}

	var b strings.Builder
	b.WriteString(fit("", lw))
	for _, r := range results {
		b.WriteString(out.String(fit(" "+export.Name(bases, r.BaseColorID), cw)).Bold().String())
	}
	b.WriteString("\n")
	for i, id := range rows {
		b.WriteString(fit(id, lw))
		for _, r := range results {
			if i >= len(r.Steps) {
				b.WriteString(fit("", cw))
				continue
			}
			b.WriteString(cell(out, r.Steps[i], cw, opts.Contrast))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func cell(out *termenv.Output, s palette.StepResult, width int, contrast bool) string {
	marker := " "
	if s.Closest {
		marker = "*"
	}
	txt := " " + s.Hex + marker
	if contrast {
		txt += fmt.Sprintf("%5.2f", s.ContrastWhite)
	}
	fill := colorimetry.Flatten(s.Color, colorimetry.White)
	return out.String(fit(txt, width)).
		Foreground(out.FromColor(s.TextColor())).
		Background(out.FromColor(fill)).
		String()
}

// fit cuts or pads s with spaces to exactly the given
// display width, in terminal cells.
func fit(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w <= width {
		return s + strings.Repeat(" ", width-w)
	}
	var b strings.Builder
	w = 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if w+g.Width() > width {
			break
		}
		w += g.Width()
		b.WriteString(g.Str())
	}
	b.WriteString(strings.Repeat(" ", width-w))
	return b.String()
}
