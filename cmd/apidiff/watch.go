// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <old.go> <new.go>",
		Short: "Re-run compare whenever either file changes on disk",
		Long: "Watches both input files and re-runs the comparison each time one\n" +
			"of them is written, printing a fresh report.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], args[1])
		},
	}
}

func runWatch(oldPath, newPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return xerrors.Errorf("starting file watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range []string{oldPath, newPath} {
		if err := watcher.Add(p); err != nil {
			return xerrors.Errorf("watching %s: %w", p, err)
		}
	}

	fmt.Fprintf(os.Stderr, "watching %s and %s for changes (ctrl-c to stop)\n", oldPath, newPath)
	if err := runCompare(oldPath, newPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			fmt.Fprintf(os.Stderr, "\n--- %s changed, re-comparing ---\n", event.Name)
			if err := runCompare(oldPath, newPath); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}
