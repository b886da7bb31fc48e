// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/go-apidiff/apidiff"
)

// pair is one old/new file pair read from a compare-all manifest.
type pair struct {
	old, new string
}

func newCompareAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare-all <manifest>",
		Short: "Compare multiple old/new file pairs concurrently",
		Long: "Reads a manifest file, one \"old.go new.go\" pair per line, and runs\n" +
			"an independent comparison per pair in parallel. Each pair gets its own\n" +
			"report; a summary line carries the worst release type across all pairs.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompareAll(args[0])
		},
	}
}

func readManifest(path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	var pairs []pair
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("manifest %s: malformed line %q (want \"old new\")", path, line)
		}
		pairs = append(pairs, pair{old: fields[0], new: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// runCompareAll compares every pair in the manifest concurrently with
// errgroup. Each Compare call owns its own type-checker state, so the
// comparisons share nothing; reports print in manifest order once every
// comparison has finished.
func runCompareAll(manifestPath string) error {
	pairs, err := readManifest(manifestPath)
	if err != nil {
		return err
	}
	pol, err := resolvePolicy()
	if err != nil {
		return err
	}

	reports := make([]*apidiff.Report, len(pairs))
	var g errgroup.Group
	for i, p := range pairs {
		i, p := i, p
		g.Go(func() error {
			oldSrc, err := readFile(p.old)
			if err != nil {
				return err
			}
			newSrc, err := readFile(p.new)
			if err != nil {
				return err
			}
			reports[i] = apidiff.Compare(apidiff.CompareOptions{
				OldSource:           oldSrc,
				NewSource:           newSrc,
				OldFilename:         p.old,
				NewFilename:         p.new,
				Policy:              pol,
				LibraryFileResolver: apidiff.DirResolver("."),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	worst := apidiff.ReleaseNone
	for i, r := range reports {
		fmt.Printf("=== %s -> %s ===\n", pairs[i].old, pairs[i].new)
		if err := writeReport(r, uuid.NewString()); err != nil {
			return err
		}
		if r.ReleaseType > worst {
			worst = r.ReleaseType
		}
	}
	fmt.Printf("\noverall (worst of %d pairs): %s\n", len(pairs), worst)
	return nil
}
