// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonescale/tonescale/base/tolassert"
	"github.com/tonescale/tonescale/colorimetry"
	"github.com/tonescale/tonescale/curve"
	"github.com/tonescale/tonescale/palette"
)

const exampleTOML = `space = "oklch"
easing = "ease-in-out"
apply_easing = false
[range]
min = 1.1
max = 15
[chroma]
min = 0.01
max = 0.2
shape = "exponential"
direction = "ease-out"
[hue]
min = 0
max = 0
shape = "linear"
direction = "ease-in-out"
[[colors]]
name = "brand"
hex = "#e63946"
opacity = false
[[steps]]
name = "100"
contrast = 3.08
`

const exampleYAML = `space: oklch
easing: ease-in-out
range:
  min: 1.1
  max: 15
colors:
  - name: brand
    hex: "#e63946"
steps:
  - name: "100"
    contrast: 3.08
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func exampleConfig() *Config {
	return &Config{
		Space:  colorimetry.OKLCh,
		Easing: curve.EasingInOut,
		Range:  Range{Min: 1.1, Max: 15},
		Chroma: Channel{Min: 0.01, Max: 0.2, Shape: curve.ShapeExponential, Direction: curve.EaseOut},
		Hue:    Channel{Min: 0, Max: 0, Shape: curve.ShapeLinear, Direction: curve.EaseInOut},
		Colors: []Color{{Name: "brand", Hex: "#e63946"}},
		Steps:  []Step{{Name: "100", Contrast: 3.08}},
	}
}

func TestNew(t *testing.T) {
	cfg := New()
	assert.Equal(t, colorimetry.LCh, cfg.Space)
	assert.Equal(t, curve.EasingLinear, cfg.Easing)
	assert.False(t, cfg.ApplyEasing)
	assert.Equal(t, Range{Min: 1.1, Max: 15}, cfg.Range)
	assert.Equal(t, palette.DefaultChannelSettings(), cfg.Channels())
	assert.Empty(t, cfg.Colors)
	assert.Empty(t, cfg.Steps)
}

type defaultsTest struct {
	Name    string        `default:"tonescale"`
	Enabled bool          `default:"true"`
	Count   int           `default:"12"`
	Ratio   float32       `default:"4.5"`
	Easing  curve.Easings `default:"ease-out"`
	None    string
	Inner   struct {
		Level uint8 `default:"3"`
	}
}

func TestSetFromDefaults(t *testing.T) {
	v := &defaultsTest{None: "kept"}
	require.NoError(t, SetFromDefaults(v))
	assert.Equal(t, "tonescale", v.Name)
	assert.True(t, v.Enabled)
	assert.Equal(t, 12, v.Count)
	assert.Equal(t, float32(4.5), v.Ratio)
	assert.Equal(t, curve.EasingOut, v.Easing)
	assert.Equal(t, "kept", v.None)
	assert.Equal(t, uint8(3), v.Inner.Level)

	bad := &struct {
		Count int          `default:"many"`
		Shape curve.Shapes `default:"wobbly"`
	}{}
	err := SetFromDefaults(bad)
	assert.ErrorContains(t, err, "Count")
	assert.ErrorContains(t, err, "Shape")

	assert.Error(t, SetFromDefaults(defaultsTest{}))
}

func TestOpen(t *testing.T) {
	type data struct {
		name    string
		content string
	}
	tests := []data{
		{"palette.toml", exampleTOML},
		{"palette.yaml", exampleYAML},
		{"palette.yml", exampleYAML},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := Open(writeFile(t, test.name, test.content))
			require.NoError(t, err)
			assert.Equal(t, exampleConfig(), cfg)
		})
	}
}

func TestOpenPartial(t *testing.T) {
	cfg, err := Open(writeFile(t, "p.toml", "space = \"oklch\"\n[chroma]\nmax = 0.3\n"))
	require.NoError(t, err)
	assert.Equal(t, colorimetry.OKLCh, cfg.Space)
	assert.Equal(t, 0.3, cfg.Chroma.Max)
	assert.Equal(t, 0.01, cfg.Chroma.Min)
	assert.Equal(t, curve.ShapeExponential, cfg.Chroma.Shape)
	assert.Equal(t, Range{Min: 1.1, Max: 15}, cfg.Range)

	cfg, err = Open(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(writeFile(t, "p.json", "{}"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Open(writeFile(t, "p.toml", "colour = \"red\"\n"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "p.yaml", "colour: red\n"))
	assert.Error(t, err)

	_, err = Open(writeFile(t, "p.toml", "space = \"hsv\"\n"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	for _, name := range []string{"out.toml", "sub/out.yaml"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(t.TempDir(), name)
			cfg := exampleConfig()
			cfg.Colors = append(cfg.Colors, Color{Name: "glass", Hex: "#3366ff80", Opacity: true, Locked: true})
			cfg.Steps = append(cfg.Steps, Step{ID: "x", Name: "Untargeted"})
			require.NoError(t, Save(fn, cfg))
			got, err := Open(fn)
			require.NoError(t, err)
			want := *cfg
			want.Version = FormatVersion
			assert.Equal(t, &want, got)
			assert.Empty(t, cfg.Version)
		})
	}
	assert.ErrorIs(t, Save(filepath.Join(t.TempDir(), "out.ini"), New()), ErrFormat)
}

func TestVersion(t *testing.T) {
	for _, v := range []string{"", "1.0.0", "1.4.2", "0.9", "v1"} {
		assert.NoError(t, CheckVersion(v), v)
	}
	for _, v := range []string{"2.0.0", "banana"} {
		assert.ErrorIs(t, CheckVersion(v), ErrVersion, v)
	}
	_, err := Open(writeFile(t, "p.toml", "version = \"3.1.0\"\n"))
	assert.ErrorIs(t, err, ErrVersion)
	cfg, err := Open(writeFile(t, "p.yaml", "version: \"1.2.0\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", cfg.Version)
}

func TestExpand(t *testing.T) {
	fn, err := Expand(DefaultPath)
	require.NoError(t, err)
	assert.NotContains(t, fn, "~")
	assert.Equal(t, filepath.Join("tonescale", "config.toml"), filepath.Join(filepath.Base(filepath.Dir(fn)), filepath.Base(fn)))

	fn, err = Expand("/tmp/p.toml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/p.toml", fn)
}

func TestSession(t *testing.T) {
	s, err := exampleConfig().Session()
	require.NoError(t, err)
	st := s.Snapshot()
	assert.Equal(t, colorimetry.OKLCh, st.Space)
	require.Len(t, st.BaseColors, 1)
	assert.Equal(t, "brand", st.BaseColors[0].Name)
	assert.NotEmpty(t, st.BaseColors[0].ID)
	require.Len(t, st.ScaleSteps, 1)
	assert.Equal(t, "100", st.ScaleSteps[0].ID)

	require.Len(t, st.Palette, 1)
	require.Len(t, st.Palette[0].Steps, 1)
	tolassert.EqualTol(t, 3.08, st.Palette[0].Steps[0].ContrastWhite, 0.1)

	assert.Equal(t, exampleConfig(), FromState(st))
}

func TestSessionDefaults(t *testing.T) {
	cfg := New()
	cfg.Colors = []Color{{Name: "navy", Hex: "#1d3557"}}
	s, err := cfg.Session()
	require.NoError(t, err)
	assert.Equal(t, palette.DefaultScales(), s.Snapshot().ScaleSteps)

	cfg.ApplyEasing = true
	cfg.Range = Range{Min: 1, Max: 9}
	cfg.Steps = []Step{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}
	s, err = cfg.Session()
	require.NoError(t, err)
	var targets []float64
	for _, step := range s.Snapshot().ScaleSteps {
		target, ok := step.Target()
		require.True(t, ok)
		targets = append(targets, target)
	}
	assert.Equal(t, []float64{1, 3, 5, 7, 9}, targets)
}

func TestSessionErrors(t *testing.T) {
	cfg := New()
	cfg.Colors = []Color{{Name: "bad", Hex: "#12345"}}
	_, err := cfg.Session()
	assert.ErrorContains(t, err, "bad")

	cfg = New()
	cfg.Steps = []Step{{Name: "100"}, {ID: "100", Name: "Other"}}
	_, err = cfg.Session()
	assert.ErrorIs(t, err, palette.ErrInvalid)

	cfg.Steps = []Step{{Name: "100", Contrast: 30}}
	_, err = cfg.Session()
	assert.ErrorIs(t, err, palette.ErrInvalid)
}

func TestScaleStepIDs(t *testing.T) {
	cfg := New()
	cfg.Steps = []Step{{ID: "a", Name: "Alpha"}, {Name: "Beta"}, {}}
	steps, err := cfg.ScaleSteps()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "Beta", "2"}, []string{steps[0].ID, steps[1].ID, steps[2].ID})
	assert.Nil(t, steps[0].TargetContrast)
}
