// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"slices"

	"github.com/tonescale/tonescale/curve"
	"github.com/tonescale/tonescale/palette"
)

func findStep(st *State, id string) (int, error) {
	i := slices.IndexFunc(st.ScaleSteps, func(s palette.ScaleStep) bool { return s.ID == id })
	if i < 0 {
		return -1, ErrNotFound
	}
	return i, nil
}

// AddScaleStep appends a new step with no target contrast,
// a new id and the name [NewStepName], and returns it.
// It returns [ErrStepLimit] if there are already [MaxSteps] steps.
func (s *Session) AddScaleStep() (palette.ScaleStep, error) {
	step := palette.ScaleStep{ID: newID(), Name: NewStepName}
	err := s.update(true, func(st *State) error {
		if len(st.ScaleSteps) >= MaxSteps {
			return ErrStepLimit
		}
		st.ScaleSteps = append(st.ScaleSteps, step)
		return nil
	})
	if err != nil {
		return palette.ScaleStep{}, err
	}
	return step, nil
}

// RemoveScaleStep removes the step with the given id.
// The last remaining step can not be removed.
func (s *Session) RemoveScaleStep(id string) error {
	return s.update(true, func(st *State) error {
		i, err := findStep(st, id)
		if err != nil {
			return err
		}
		if len(st.ScaleSteps) <= 1 {
			return ErrLastStep
		}
		st.ScaleSteps = slices.Delete(st.ScaleSteps, i, i+1)
		return nil
	})
}

// UpdateScaleStep calls fn to modify the step with the given id.
func (s *Session) UpdateScaleStep(id string, fn func(step *palette.ScaleStep)) error {
	return s.update(true, func(st *State) error {
		i, err := findStep(st, id)
		if err != nil {
			return err
		}
		fn(&st.ScaleSteps[i])
		return nil
	})
}

// SetStepTarget sets the target contrast of the step with the
// given id; a nil target derives the step from its position instead.
func (s *Session) SetStepTarget(id string, target *float64) error {
	return s.UpdateScaleStep(id, func(step *palette.ScaleStep) {
		step.TargetContrast = nil
		if target != nil {
			step.TargetContrast = palette.Contrast(*target)
		}
	})
}

// RenameScaleStep sets the name of the step with the given id.
func (s *Session) RenameScaleStep(id, name string) error {
	return s.UpdateScaleStep(id, func(step *palette.ScaleStep) {
		step.Name = name
	})
}

// MoveScaleStep moves the step with the given id to the given index,
// which is clamped to the valid range.
func (s *Session) MoveScaleStep(id string, index int) error {
	return s.update(true, func(st *State) error {
		i, err := findStep(st, id)
		if err != nil {
			return err
		}
		step := st.ScaleSteps[i]
		st.ScaleSteps = slices.Delete(st.ScaleSteps, i, i+1)
		index = min(max(index, 0), len(st.ScaleSteps))
		st.ScaleSteps = slices.Insert(st.ScaleSteps, index, step)
		return nil
	})
}

// ResetScales restores [palette.DefaultScales].
func (s *Session) ResetScales() {
	s.update(true, func(st *State) error {
		st.ScaleSteps = palette.DefaultScales()
		return nil
	})
}

// SetScaleSteps replaces all of the steps, for example to reorder them.
// Steps without an id are given a new one.
func (s *Session) SetScaleSteps(steps []palette.ScaleStep) {
	s.update(true, func(st *State) error {
		st.ScaleSteps = withStepIDs(steps)
		return nil
	})
}

// SetEasing sets the easing used by [Session.ApplyContrastCurve].
// It does not change any targets by itself.
func (s *Session) SetEasing(easing curve.Easings) {
	s.update(false, func(st *State) error {
		st.Easing = easing
		return nil
	})
}

// SetContrastRange sets the range used by [Session.ApplyContrastCurve].
// It does not change any targets by itself.
func (s *Session) SetContrastRange(r curve.Range) {
	s.update(false, func(st *State) error {
		st.ContrastRange = r
		return nil
	})
}

// ApplyContrastCurve overwrites the target contrast of every step
// with values distributed over the contrast range by the easing.
func (s *Session) ApplyContrastCurve() {
	s.update(true, func(st *State) error {
		targets := curve.Distribute(len(st.ScaleSteps), st.ContrastRange, st.Easing)
		for i := range st.ScaleSteps {
			st.ScaleSteps[i].TargetContrast = palette.Contrast(targets[i])
		}
		return nil
	})
}
