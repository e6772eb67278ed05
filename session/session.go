// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session holds the editable state of a palette: its base
// colors, scale steps and generation settings, along with the palette
// generated from them. Every mutation that affects the palette
// regenerates it before returning, and then notifies the registered
// change listeners. A [Session] is safe for concurrent use.
package session

import (
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/curve"
	"github.com/tonescale/tonescale/palette"
)

const (
	// MaxSteps is the maximum number of scale steps.
	MaxSteps = 20

	// NewColorName is the name given to added base colors.
	NewColorName = "New Color"

	// NewStepName is the name given to added scale steps.
	NewStepName = "New"
)

var (
	// ErrNotFound is returned when no base color or
	// scale step has the given id.
	ErrNotFound = errors.New("session: not found")

	// ErrLocked is returned when editing or removing a locked base color.
	ErrLocked = errors.New("session: base color is locked")

	// ErrStepLimit is returned when adding a step beyond [MaxSteps].
	ErrStepLimit = errors.New("session: too many scale steps")

	// ErrLastStep is returned when removing the only remaining step.
	ErrLastStep = errors.New("session: can not remove the last scale step")
)

// DefaultContrastRange is the default range that
// [Session.ApplyContrastCurve] distributes targets over.
var DefaultContrastRange = curve.Range{Min: 1.1, Max: 15}

// State is the full state of a [Session].
type State struct {
	BaseColors []palette.BaseColor
	ScaleSteps []palette.ScaleStep

	// Palette is the palette generated from the other fields.
	Palette []palette.Result

	Space colorimetry.Space

	// Easing and ContrastRange are the curve used by
	// [Session.ApplyContrastCurve] to distribute step targets.
	Easing        curve.Easings
	ContrastRange curve.Range

	// Channels are the chroma and hue curves used in OKLCH mode.
	Channels palette.ChannelSettings
}

// Session owns a palette [State].
type Session struct {
	mu        sync.Mutex
	state     State
	listeners []func(State)
	logger    *slog.Logger
}

// Option configures a new [Session].
type Option func(s *Session)

// WithBaseColors sets the initial base colors. Colors without an id
// are given a new one.
func WithBaseColors(colors ...palette.BaseColor) Option {
	return func(s *Session) {
		s.state.BaseColors = withIDs(colors)
	}
}

// WithScaleSteps sets the initial scale steps instead of
// [palette.DefaultScales]. Steps without an id are given a new one.
func WithScaleSteps(steps ...palette.ScaleStep) Option {
	return func(s *Session) {
		s.state.ScaleSteps = withStepIDs(steps)
	}
}

// WithSpace sets the initial color space.
func WithSpace(space colorimetry.Space) Option {
	return func(s *Session) {
		s.state.Space = space
	}
}

// WithEasing sets the initial contrast distribution easing and range.
func WithEasing(easing curve.Easings, r curve.Range) Option {
	return func(s *Session) {
		s.state.Easing = easing
		s.state.ContrastRange = r
	}
}

// WithChannels sets the initial OKLCH channel curves.
func WithChannels(cs palette.ChannelSettings) Option {
	return func(s *Session) {
		s.state.Channels = cs
	}
}

// WithLogger sets the logger that recomputations are logged to.
// The default is [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New returns a new session with no base colors, the default steps,
// the CIE LCh space, a linear easing over [DefaultContrastRange], and
// the default channel curves, as modified by the given options.
// The palette is generated before New returns.
func New(opts ...Option) *Session {
	s := &Session{
		state: State{
			BaseColors:    []palette.BaseColor{},
			ScaleSteps:    palette.DefaultScales(),
			Space:         colorimetry.LCh,
			Easing:        curve.EasingLinear,
			ContrastRange: DefaultContrastRange,
			Channels:      palette.DefaultChannelSettings(),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

// OnChange registers a function that is called with a snapshot of the
// state after every mutation. Listeners are called in order of
// registration, after the session lock is released, so they may
// call back into the session.
func (s *Session) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Palette returns the most recently generated palette.
func (s *Session) Palette() []palette.Result {
	return s.Snapshot().Palette
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() State {
	var st State
	if err := copier.CopyWithOption(&st, &s.state, copier.Option{DeepCopy: true}); err != nil {
		// only possible for unsupported field types
		s.logger.Error("session: snapshot", "err", err)
	}
	return st
}

// recompute regenerates the palette. It must be called with the lock held.
func (s *Session) recompute() {
	start := time.Now()
	st := &s.state
	st.Palette = palette.Generate(st.BaseColors, st.ScaleSteps, st.Space, st.Channels)
	s.logger.Debug("recomputed palette", "bases", len(st.BaseColors), "steps", len(st.ScaleSteps),
		"space", st.Space, "took", time.Since(start))
}

// update runs fn with the lock held and, if it succeeds, regenerates
// the palette when regen is set and notifies the listeners.
func (s *Session) update(regen bool, fn func(st *State) error) error {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	if regen {
		s.recompute()
	}
	var st State
	listeners := slices.Clone(s.listeners)
	if len(listeners) > 0 {
		st = s.snapshot()
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

func withIDs(colors []palette.BaseColor) []palette.BaseColor {
	res := slices.Clone(colors)
	for i := range res {
		if res[i].ID == "" {
			res[i].ID = newID()
		}
	}
	if res == nil {
		res = []palette.BaseColor{}
	}
	return res
}

// withStepIDs returns a copy of steps that shares no targets with it.
func withStepIDs(steps []palette.ScaleStep) []palette.ScaleStep {
	res := slices.Clone(steps)
	for i := range res {
		if res[i].ID == "" {
			res[i].ID = newID()
		}
		if t := res[i].TargetContrast; t != nil {
			res[i].TargetContrast = palette.Contrast(*t)
		}
	}
	if res == nil {
		res = []palette.ScaleStep{}
	}
	return res
}
