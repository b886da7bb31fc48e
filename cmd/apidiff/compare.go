// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/go-apidiff/apidiff"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <old.go> <new.go>",
		Short: "Compare two declaration files and print a report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1])
		},
	}
}

func runCompare(oldPath, newPath string) error {
	oldSrc, err := readFile(oldPath)
	if err != nil {
		return err
	}
	newSrc, err := readFile(newPath)
	if err != nil {
		return err
	}
	pol, err := resolvePolicy()
	if err != nil {
		return err
	}

	report := apidiff.Compare(apidiff.CompareOptions{
		OldSource:           oldSrc,
		NewSource:           newSrc,
		OldFilename:         oldPath,
		NewFilename:         newPath,
		Policy:              pol,
		LibraryFileResolver: apidiff.DirResolver("."),
	})

	// Each run gets a UUIDv4 so a release-gating pipeline can correlate a
	// specific comparison run across logs without relying on timestamps.
	// Only the JSON format writes it out; text and markdown omit it.
	return writeReport(report, uuid.NewString())
}
