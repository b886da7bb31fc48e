// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/go-apidiff/apidiff"
)

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <old.go> <new.go> <current-version>",
		Short: "Compare two files and print the smallest correct next semantic version",
		Long: "Computes the overall release type the way `compare` does, then\n" +
			"applies it to <current-version>, answering the question the whole\n" +
			"tool exists for: what is the smallest version bump that is still\n" +
			"correct.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(args[0], args[1], args[2])
		},
	}
}

func runSuggest(oldPath, newPath, current string) error {
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

	next, err := nextVersion(current, report.ReleaseType)
	if err != nil {
		return err
	}
	fmt.Printf("release type: %s\n", report.ReleaseType)
	fmt.Printf("next version: %s\n", next)
	return nil
}

// nextVersion applies rt to current, a semver string (with or without a
// leading "v"; x/mod/semver requires the "v" form, so one is added and
// stripped back off to keep the CLI's own vocabulary bare-numeric).
// ReleaseForbidden has no valid next version: a custom policy vetoed
// the change outright, so no bump makes the release correct.
func nextVersion(current string, rt apidiff.ReleaseType) (string, error) {
	v := current
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%q is not a valid semantic version", current)
	}
	if rt == apidiff.ReleaseForbidden {
		return "", fmt.Errorf("change is forbidden: no next version can be suggested")
	}

	major, minor, patch, err := parseTriple(semver.Canonical(v))
	if err != nil {
		return "", err
	}

	switch rt {
	case apidiff.ReleaseMajor:
		if major == 0 {
			// A pre-1.0 major-impact change conventionally bumps minor,
			// not major: the public API is still understood to be
			// unstable (the same convention golang.org/x/mod/semver's
			// own callers in the module-graph-minimal-version-selection
			// algorithm rely on for v0 modules).
			minor++
			patch = 0
		} else {
			major++
			minor, patch = 0, 0
		}
	case apidiff.ReleaseMinor:
		minor++
		patch = 0
	case apidiff.ReleasePatch:
		patch++
	case apidiff.ReleaseNone:
		// no change required; return current unchanged
	}

	next := fmt.Sprintf("v%d.%d.%d", major, minor, patch)
	if !semver.IsValid(next) {
		return "", fmt.Errorf("computed invalid version %q", next)
	}
	return strings.TrimPrefix(next, "v"), nil
}

func parseTriple(canonical string) (major, minor, patch int, err error) {
	// canonical is "vMAJOR.MINOR.PATCH" as semver.Canonical returns it:
	// build metadata is already gone, but a "-prerelease" suffix is kept
	// and is cut off here.
	core := strings.TrimPrefix(canonical, "v")
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("unexpected version shape %q", canonical)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parsing version component %q: %w", p, err)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
