// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/curve"
)

// SetColorSpace sets the space that shades are constructed in.
func (s *Session) SetColorSpace(space colorimetry.Space) {
	s.update(true, func(st *State) error {
		st.Space = space
		return nil
	})
}

// SetChromaCurve sets the OKLCH chroma curve.
func (s *Session) SetChromaCurve(c curve.Channel) {
	s.update(true, func(st *State) error {
		st.Channels.Chroma = c
		return nil
	})
}

// SetHueCurve sets the OKLCH hue shift curve.
func (s *Session) SetHueCurve(c curve.Channel) {
	s.update(true, func(st *State) error {
		st.Channels.Hue = c
		return nil
	})
}
