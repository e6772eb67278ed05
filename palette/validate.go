// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/tonescale/tonescale/colorimetry"
)

// ErrInvalid is wrapped by all of the errors returned by [Validate].
var ErrInvalid = errors.New("invalid palette input")

// Validate returns all of the problems with the given inputs joined
// into one error, or nil if there are none. It reports empty or
// duplicate ids, non-finite colors, and targets outside of 0-21.
// [Generate] does not require valid inputs, but its results for
// invalid ones are rarely useful.
func Validate(bases []BaseColor, steps []ScaleStep) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	ids := map[string]bool{}
	for i, b := range bases {
		switch {
		case b.ID == "":
			bad("base color %d has no id", i)
		case ids[b.ID]:
			bad("duplicate base color id %q", b.ID)
		}
		ids[b.ID] = true
		c := b.Color
		for _, v := range []float64{c.R, c.G, c.B, c.A} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				bad("base color %q is not finite", b.ID)
				break
			}
		}
	}

	ids = map[string]bool{}
	for i, s := range steps {
		switch {
		case s.ID == "":
			bad("step %d has no id", i)
		case ids[s.ID]:
			bad("duplicate step id %q", s.ID)
		}
		ids[s.ID] = true
		if s.TargetContrast == nil {
			continue
		}
		if t := *s.TargetContrast; math.IsNaN(t) || t < 0 || t > colorimetry.MaxContrast {
			bad("step %q has target contrast %g outside of 0-%d", s.ID, t, colorimetry.MaxContrast)
		}
	}
	return errors.Join(errs...)
}
