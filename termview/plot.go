// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"io"
	"math"
	"strings"

	"github.com/muesli/termenv"
	"github.com/tonescale/tonescale/curve"
)

// Plot writes a plot of the given curve points to out, width cells
// wide and height rows tall, with x and y both from 0 to 1 and y
// increasing upward. Points outside of the unit square are clamped.
func Plot(out *termenv.Output, points []curve.Point, width, height int) error {
	width, height = max(width, 2), max(height, 2)
	grid := make([][]bool, height)
	for i := range grid {
		grid[i] = make([]bool, width)
	}
	for _, p := range points {
		col := int(math.Round(clamp01(p.X) * float64(width-1)))
		row := int(math.Round((1 - clamp01(p.Y)) * float64(height-1)))
		grid[row][col] = true
	}

	dot := out.String("*").Foreground(out.Color("6")).String()
	var b strings.Builder
	for _, row := range grid {
		b.WriteString("|")
		for _, on := range row {
			if on {
				b.WriteString(dot)
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("+" + strings.Repeat("-", width) + "\n")
	_, err := io.WriteString(out, b.String())
	return err
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, 1))
}
