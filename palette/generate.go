// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"context"
	"math"
	"runtime"

	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/curve"
	"github.com/tonescale/tonescale/solver"
	"golang.org/x/sync/errgroup"
)

// Generate returns one [Result] per base color, in order, each with one
// [StepResult] per step, in order.
//
// The hue and chroma of each shade come from the base color in the given
// space; in OKLCH mode, chroma instead follows settings.Chroma and the hue
// is shifted by settings.Hue. Zero settings use [FallbackChannelSettings].
// Steps with a target contrast are solved against white; other steps get
// a lightness spread evenly from light to dark. Base colors with
// [BaseColor.UseOpacity] vary opacity instead of lightness.
//
// Generate never fails and never modifies its inputs: unreachable
// targets resolve to the closest reachable shade.
func Generate(bases []BaseColor, steps []ScaleStep, space colorimetry.Space, settings ChannelSettings) []Result {
	settings = settingsOrFallback(settings)
	res := make([]Result, len(bases))
	for i, b := range bases {
		res[i] = generateOne(b, steps, space, settings)
	}
	return res
}

// GenerateParallel is like [Generate], but it generates the base colors
// concurrently. The results are identical to those of [Generate]. It
// only fails if the context is canceled before all base colors are done.
func GenerateParallel(ctx context.Context, bases []BaseColor, steps []ScaleStep, space colorimetry.Space, settings ChannelSettings) ([]Result, error) {
	settings = settingsOrFallback(settings)
	res := make([]Result, len(bases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, b := range bases {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res[i] = generateOne(b, steps, space, settings)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func settingsOrFallback(settings ChannelSettings) ChannelSettings {
	if settings.IsZero() {
		return FallbackChannelSettings()
	}
	return settings
}

// generateOne generates the column for a single base color.
func generateOne(base BaseColor, steps []ScaleStep, space colorimetry.Space, settings ChannelSettings) Result {
	_, baseC, baseH := space.ToLCh(base.Color)
	alpha := base.Color.A
	res := Result{BaseColorID: base.ID, Steps: make([]StepResult, len(steps))}

	for i, step := range steps {
		t := curve.Position(i, len(steps))
		c, h := baseC, baseH
		if space == colorimetry.OKLCh {
			c = curve.Interpolate(t, settings.Chroma)
			h = colorimetry.NormalizeHue(baseH + curve.Interpolate(t, settings.Hue))
		}

		target, hasTarget := step.Target()
		var col colorimetry.Color
		switch {
		case base.UseOpacity:
			a := 0.1 + 0.9*t
			if hasTarget {
				a = solver.ForAlpha(base.Color, target)
			}
			col = base.Color.WithAlpha(a)
		case hasTarget:
			col = solver.ForContrast(colorimetry.White, target, h, c, space, alpha)
		default:
			l := (0.95 - 0.85*t) * space.MaxLightness()
			col = space.FromLCh(l, c, h).Clamped().WithAlpha(alpha)
		}
		res.Steps[i] = measure(step.ID, col)
	}

	l, c, h := colorimetry.ToLCh(base.Color)
	if i := closestIndex([3]float64{l, c, h}, res.Steps); i >= 0 {
		res.Steps[i].Closest = true
	}
	return res
}

// measure returns the result for the given produced color,
// measured at the precision it is displayed at.
func measure(stepID string, col colorimetry.Color) StepResult {
	q := col.Quantized()
	l, c, h := colorimetry.ToLCh(q)
	return StepResult{
		StepID:        stepID,
		Color:         q,
		Hex:           q.Hex(),
		LCh:           [3]float64{l, c, h},
		ContrastWhite: colorimetry.Contrast(colorimetry.Flatten(q, colorimetry.White), colorimetry.White),
		ContrastBlack: colorimetry.Contrast(colorimetry.Flatten(q, colorimetry.Black), colorimetry.Black),
	}
}

// FindClosestStep returns the id of the step whose CIE L*C*h° is
// closest to originalLCh by CIE76 distance. Ties keep the first such
// step, and an empty list returns "".
func FindClosestStep(originalLCh [3]float64, steps []StepResult) string {
	i := closestIndex(originalLCh, steps)
	if i < 0 {
		return ""
	}
	return steps[i].StepID
}

func closestIndex(lch [3]float64, steps []StepResult) int {
	closest := -1
	minDist := math.Inf(1)
	for i, s := range steps {
		if d := colorimetry.DistanceLCh(lch, s.LCh); d < minDist {
			minDist = d
			closest = i
		}
	}
	return closest
}
