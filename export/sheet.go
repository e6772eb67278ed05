// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/palette"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SheetOptions are the layout options of [Sheet].
// Non-positive sizes use the values of [DefaultSheetOptions].
type SheetOptions struct {

	// CellWidth and CellHeight are the size of each swatch,
	// and of the header cells above them.
	CellWidth, CellHeight int

	// LabelWidth is the width of the column of step labels.
	LabelWidth int

	// MarkerWidth is the width of the bar marking the
	// step closest to each base color.
	MarkerWidth int

	// Scale enlarges the whole sheet by an integer
	// factor using nearest neighbor sampling.
	Scale int

	// Background is the color behind the swatches,
	// which translucent shades are shown over.
	Background colorimetry.Color
}

// DefaultSheetOptions returns the default [SheetOptions].
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		CellWidth:   96,
		CellHeight:  28,
		LabelWidth:  48,
		MarkerWidth: 4,
		Scale:       1,
		Background:  colorimetry.White,
	}
}

func (o SheetOptions) withDefaults() SheetOptions {
	def := DefaultSheetOptions()
	fix := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}
	fix(&o.CellWidth, def.CellWidth)
	fix(&o.CellHeight, def.CellHeight)
	fix(&o.LabelWidth, def.LabelWidth)
	fix(&o.MarkerWidth, def.MarkerWidth)
	fix(&o.Scale, def.Scale)
	if o.Background == (colorimetry.Color{}) {
		o.Background = def.Background
	}
	o.Background = o.Background.WithAlpha(1)
	return o
}

// Sheet renders the palette as a swatch sheet: one column per base
// color headed by its name, and one row per step labeled with its id.
// Each swatch is labeled with its hex, and the step closest to the
// base color is marked with a bar on its left edge.
func Sheet(bases []palette.BaseColor, results []palette.Result, opts SheetOptions) *image.RGBA {
	opts = opts.withDefaults()
	cw, ch := opts.CellWidth, opts.CellHeight

	var rows []string
	for _, r := range results {
		if len(r.Steps) > len(rows) {
			rows = rows[:0]
			for _, s := range r.Steps {
				rows = append(rows, s.StepID)
			}
		}
	}

	w := opts.LabelWidth + len(results)*cw
	h := (1 + len(rows)) * ch
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	ink := textColor(opts.Background)
	for i, id := range rows {
		drawLabel(img, id, 4, (i+1)*ch, opts.LabelWidth-4, ch, ink)
	}
	for j, r := range results {
		x := opts.LabelWidth + j*cw
		drawLabel(img, Name(bases, r.BaseColorID), x+4, 0, cw-4, ch, ink)
		for i, s := range r.Steps {
			y := (i + 1) * ch
			fill := colorimetry.Flatten(s.Color, opts.Background)
			draw.Draw(img, image.Rect(x, y, x+cw, y+ch), image.NewUniform(fill), image.Point{}, draw.Src)
			txt := textColor(fill)
			if s.Closest {
				draw.Draw(img, image.Rect(x, y, x+opts.MarkerWidth, y+ch), image.NewUniform(txt), image.Point{}, draw.Src)
			}
			drawLabel(img, s.Hex, x+opts.MarkerWidth+4, y, cw-opts.MarkerWidth-8, ch, txt)
		}
	}

	if opts.Scale > 1 {
		return transform.Resize(img, w*opts.Scale, h*opts.Scale, transform.NearestNeighbor)
	}
	return img
}

// textColor returns white or black, whichever reads on c the way
// [palette.StepResult.TextColor] decides it.
func textColor(c colorimetry.Color) colorimetry.Color {
	if colorimetry.Contrast(c, colorimetry.White) > 4.5 {
		return colorimetry.White
	}
	return colorimetry.Black
}

// drawLabel draws s vertically centered in the cell of height h
// whose left edge is at x and top at y, cut to fit in width w.
func drawLabel(dst draw.Image, s string, x, y, w, h int, clr colorimetry.Color) {
	face := basicfont.Face7x13
	rs := []rune(s)
	if n := max(w/face.Advance, 0); len(rs) > n {
		rs = rs[:n]
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(x, y+(h+face.Ascent-face.Descent)/2),
	}
	d.DrawString(string(rs))
}

// PNG encodes the given image as PNG.
func PNG(w io.Writer, img image.Image) error {
	return imgio.PNGEncoder()(w, img)
}

// SavePNG saves the given image to the given file as PNG.
func SavePNG(filename string, img image.Image) error {
	return imgio.Save(filename, img, imgio.PNGEncoder())
}
