// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tonescale/tonescale/config"
	"github.com/tonescale/tonescale/logx"
)

// verbosity holds the global verbosity flags.
type verbosity struct {
	vv, v, q bool
}

func newRootCmd() *cobra.Command {
	var verb verbosity
	root := &cobra.Command{
		Use:          "tonescale",
		Short:        "Generate color palettes that meet target contrast ratios",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(verb.vv, verb.v, verb.q)
			logx.SetDefaultLogger(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&verb.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&verb.v, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&verb.q, "quiet", "q", false, "only show errors")

	root.AddCommand(generateCmd(), exportCmd(), distributeCmd(), curveCmd(), watchCmd())
	return root
}

// enumValue is implemented by pointers to the enum types.
type enumValue interface {
	String() string
	SetString(s string) error
}

// enumFlag makes an enum usable as a command line flag.
type enumFlag struct {
	enumValue
	typ string
}

func (f enumFlag) Set(s string) error { return f.SetString(s) }
func (f enumFlag) Type() string       { return f.typ }

// paletteFlags are the flags of the commands that generate a palette.
type paletteFlags struct {
	colors []string
}

func (pf *paletteFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&pf.colors, "color", "c", nil, "add a base color, as name=#hex or #hex (repeatable)")
}

// load opens the config named by args, or the default config if there
// is none, and adds the base colors given by the flags. A missing
// default config is not an error.
func (pf *paletteFlags) load(args []string) (*config.Config, error) {
	path := config.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := config.Open(path)
	switch {
	case err == nil:
	case len(args) == 0 && errors.Is(err, fs.ErrNotExist):
		slog.Info("no config file, using defaults", "path", path)
		cfg = config.New()
	default:
		return nil, err
	}
	for _, c := range pf.colors {
		cfg.Colors = append(cfg.Colors, parseColorFlag(c))
	}
	return cfg, nil
}

// parseColorFlag parses name=#hex or #hex; the hex
// itself is validated when the palette is generated.
func parseColorFlag(s string) config.Color {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '=' {
			return config.Color{Name: s[:i], Hex: s[i+1:]}
		}
	}
	return config.Color{Hex: s}
}
