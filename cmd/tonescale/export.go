// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tonescale/tonescale/export"
)

func exportCmd() *cobra.Command {
	var pf paletteFlags
	var output string
	var scale int
	format := export.FormatJSON
	cmd := &cobra.Command{
		Use:   "export [config]",
		Short: "Export the palette described by a config file as JSON, CSS or PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pf.load(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") && output != "" {
				if f, err := export.FormatOf(output); err == nil {
					format = f
				}
			}
			s, err := cfg.Session()
			if err != nil {
				return err
			}
			st := s.Snapshot()

			if format == export.FormatPNG {
				opts := export.DefaultSheetOptions()
				opts.Scale = scale
				img := export.Sheet(st.BaseColors, st.Palette, opts)
				if output == "" {
					return export.PNG(cmd.OutOrStdout(), img)
				}
				slog.Info("saving swatch sheet", "file", output, "size", img.Bounds().Size())
				return export.SavePNG(output, img)
			}
			if output == "" {
				return export.Write(cmd.OutOrStdout(), format, st.BaseColors, st.Palette)
			}
			fp, err := os.Create(output)
			if err != nil {
				return err
			}
			bw := bufio.NewWriter(fp)
			err = export.Write(bw, format, st.BaseColors, st.Palette)
			if err == nil {
				err = bw.Flush()
			}
			slog.Info("exported palette", "file", output, "format", format)
			return errors.Join(err, fp.Close())
		},
	}
	pf.add(cmd)
	cmd.Flags().VarP(enumFlag{&format, "json|css|png"}, "format", "f", "export format; defaults to the extension of the output file, then json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&scale, "scale", 1, "enlarge the png swatch sheet by this factor")
	return cmd
}
