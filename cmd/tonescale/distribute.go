// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tonescale/tonescale/curve"
)

func distributeCmd() *cobra.Command {
	var n int
	r := curve.Range{Min: 1.1, Max: 15}
	easing := curve.EasingLinear
	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Print contrast targets distributed over a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 0 {
				return fmt.Errorf("the number of steps must not be negative, not %d", n)
			}
			vals := curve.Distribute(n, r, easing)
			strs := make([]string, len(vals))
			for i, v := range vals {
				strs[i] = strconv.FormatFloat(v, 'f', -1, 64)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(strs, " "))
			return err
		},
	}
	f := cmd.Flags()
	f.IntVarP(&n, "steps", "n", 16, "number of steps")
	f.Float64Var(&r.Min, "min", r.Min, "contrast of the first step")
	f.Float64Var(&r.Max, "max", r.Max, "contrast of the last step")
	f.VarP(enumFlag{&easing, "easing"}, "easing", "e", "easing: linear, ease-in, ease-out or ease-in-out")
	return cmd
}
