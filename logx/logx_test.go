// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	type data struct {
		vv, v, q bool
		want     slog.Level
	}
	tests := []data{
		{true, false, false, slog.LevelDebug},
		{true, false, true, slog.LevelDebug},
		{false, true, true, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{false, false, false, slog.LevelWarn},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, LevelFromFlags(test.vv, test.v, test.q), "%v", test)
	}
}

func TestNewLogger(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	UserLevel = slog.LevelInfo

	var b bytes.Buffer
	l := NewLogger(&b)
	l.Debug("hidden")
	l.Info("shown", "steps", 16)
	l.Warn("also shown")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "level=INFO msg=shown steps=16")
	assert.Contains(t, b.String(), "level=WARN msg=\"also shown\"")
}

func TestSetDefaultLogger(t *testing.T) {
	defer func(l *slog.Logger, lv slog.Level) {
		slog.SetDefault(l)
		UserLevel = lv
	}(slog.Default(), UserLevel)
	UserLevel = slog.LevelError

	var b bytes.Buffer
	SetDefaultLogger(&b)
	slog.Warn("quiet")
	slog.Error("loud")
	assert.NotContains(t, b.String(), "quiet")
	assert.Contains(t, b.String(), "msg=loud")
}
