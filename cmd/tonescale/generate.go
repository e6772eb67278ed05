// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/tonescale/tonescale/config"
	"github.com/tonescale/tonescale/termview"
)

func generateCmd() *cobra.Command {
	var pf paletteFlags
	var opts termview.Options
	cmd := &cobra.Command{
		Use:   "generate [config]",
		Short: "Print the palette described by a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pf.load(args)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg, opts)
		},
	}
	pf.add(cmd)
	cmd.Flags().BoolVar(&opts.Contrast, "contrast", false, "show the contrast of each shade against white")
	return cmd
}

// render generates the palette of cfg and renders it to w.
func render(w io.Writer, cfg *config.Config, opts termview.Options) error {
	s, err := cfg.Session()
	if err != nil {
		return err
	}
	st := s.Snapshot()
	return termview.Render(termview.NewOutput(w), st.BaseColors, st.Palette, opts)
}
