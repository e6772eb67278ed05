// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tonescale/tonescale/config"
	"github.com/tonescale/tonescale/termview"
)

func watchCmd() *cobra.Command {
	var opts termview.Options
	cmd := &cobra.Command{
		Use:   "watch [config]",
		Short: "Print the palette of a config file again whenever it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) > 0 {
				path = args[0]
			}
			fn, err := config.Expand(path)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			return watch(cmd.Context(), fn, func(cfg *config.Config) error {
				fmt.Fprintf(w, "\n%s\n", fn)
				return render(w, cfg, opts)
			})
		},
	}
	cmd.Flags().BoolVar(&opts.Contrast, "contrast", false, "show the contrast of each shade against white")
	return cmd
}

// watch calls update with the config in the given file, and again
// every time the file is written, until ctx is done. The directory of
// the file is watched rather than the file, so that editors that save
// by replacing the file are followed. Errors opening the config or
// returned by update are logged, and the file keeps being watched.
func watch(ctx context.Context, filename string, update func(cfg *config.Config) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return err
	}

	reload := func() {
		cfg, err := config.Open(filename)
		if err == nil {
			err = update(cfg)
		}
		if err != nil {
			slog.Error(err.Error())
		}
	}
	reload()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(filename) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				slog.Debug("config changed", "file", event.Name, "op", event.Op)
				reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching config", "err", err)
		}
	}
}
