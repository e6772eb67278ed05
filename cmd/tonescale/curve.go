// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonescale/tonescale/curve"
	"github.com/tonescale/tonescale/termview"
)

func curveCmd() *cobra.Command {
	var count, width, height int
	var values bool
	shape := curve.ShapeLinear
	dir := curve.EaseInOut
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Plot a channel curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ch := curve.Channel{Range: curve.Range{Min: 0, Max: 1}, Shape: shape, Direction: dir}
			points := curve.Points(ch, count)
			out := termview.NewOutput(cmd.OutOrStdout())
			fmt.Fprintf(out, "%s %s\n", shape.Label(), dir.Label())
			if err := termview.Plot(out, points, width, height); err != nil {
				return err
			}
			if !values {
				return nil
			}
			for _, p := range points {
				fmt.Fprintf(out, "%.3f %.3f\n", p.X, p.Y)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Var(enumFlag{&shape, "shape"}, "shape", "shape: linear, quadratic, cubic, sine or exponential")
	f.Var(enumFlag{&dir, "direction"}, "direction", "direction: ease-in, ease-out or ease-in-out")
	f.IntVarP(&count, "count", "n", 20, "number of segments to sample")
	f.IntVar(&width, "width", 41, "plot width")
	f.IntVar(&height, "height", 12, "plot height")
	f.BoolVar(&values, "values", false, "also print the sampled points")
	return cmd
}
