// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"slices"

	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/palette"
)

// findColor returns the index of the base color with the given id.
func findColor(st *State, id string) (int, error) {
	i := slices.IndexFunc(st.BaseColors, func(b palette.BaseColor) bool { return b.ID == id })
	if i < 0 {
		return -1, ErrNotFound
	}
	return i, nil
}

// AddBaseColor appends a new base color with the given color,
// a new id and the name [NewColorName], and returns it.
func (s *Session) AddBaseColor(c colorimetry.Color) palette.BaseColor {
	b := palette.BaseColor{ID: newID(), Name: NewColorName, Color: c}
	s.update(true, func(st *State) error {
		st.BaseColors = append(st.BaseColors, b)
		return nil
	})
	return b
}

// RemoveBaseColor removes the base color with the given id.
func (s *Session) RemoveBaseColor(id string) error {
	return s.update(true, func(st *State) error {
		i, err := findColor(st, id)
		if err != nil {
			return err
		}
		if st.BaseColors[i].Locked {
			return ErrLocked
		}
		st.BaseColors = slices.Delete(st.BaseColors, i, i+1)
		return nil
	})
}

// UpdateBaseColor sets the color of the base color with the given id.
func (s *Session) UpdateBaseColor(id string, c colorimetry.Color) error {
	return s.update(true, func(st *State) error {
		i, err := findColor(st, id)
		if err != nil {
			return err
		}
		if st.BaseColors[i].Locked {
			return ErrLocked
		}
		st.BaseColors[i].Color = c
		return nil
	})
}

// RenameBaseColor sets the name of the base color with the given id.
func (s *Session) RenameBaseColor(id, name string) error {
	return s.update(true, func(st *State) error {
		i, err := findColor(st, id)
		if err != nil {
			return err
		}
		st.BaseColors[i].Name = name
		return nil
	})
}

// ToggleBaseOpacity switches the base color with the given id
// between varying lightness and varying opacity.
func (s *Session) ToggleBaseOpacity(id string) error {
	return s.update(true, func(st *State) error {
		i, err := findColor(st, id)
		if err != nil {
			return err
		}
		st.BaseColors[i].UseOpacity = !st.BaseColors[i].UseOpacity
		return nil
	})
}

// ToggleLock locks or unlocks the base color with the given id.
func (s *Session) ToggleLock(id string) error {
	return s.update(true, func(st *State) error {
		i, err := findColor(st, id)
		if err != nil {
			return err
		}
		st.BaseColors[i].Locked = !st.BaseColors[i].Locked
		return nil
	})
}

// SetBaseColors replaces all of the base colors.
// Colors without an id are given a new one.
func (s *Session) SetBaseColors(colors []palette.BaseColor) {
	s.update(true, func(st *State) error {
		st.BaseColors = withIDs(colors)
		return nil
	})
}
