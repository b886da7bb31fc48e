// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/go-apidiff/apidiff"
)

// textColorFor maps a release type to the terminal color the text
// reporter uses for it: red for forbidden/major, yellow for minor,
// green for patch/none.
func textColorFor(rt apidiff.ReleaseType) *color.Color {
	switch rt {
	case apidiff.ReleaseForbidden, apidiff.ReleaseMajor:
		return color.New(color.FgRed)
	case apidiff.ReleaseMinor:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// Text writes a human-readable rendering of r to w. When colorize is
// false (e.g. output is redirected to a file), every line is written
// uncolored regardless of the terminal's capabilities.
func Text(w io.Writer, r *apidiff.Report, colorize bool) {
	fmt.Fprintf(w, "apidiff: %s -> %s\n", r.OldFile, r.NewFile)
	fmt.Fprintf(w, "overall release type: %s\n\n", strings.ToUpper(r.ReleaseType.String()))

	for _, b := range []apidiff.Bucket{apidiff.BucketForbidden, apidiff.BucketBreaking, apidiff.BucketNonBreaking, apidiff.BucketUnchanged} {
		changes := r.ChangesByImpact[b]
		if len(changes) == 0 {
			continue
		}
		fmt.Fprintf(w, "[%s]\n", b)
		for _, c := range changes {
			line := fmt.Sprintf("  %-8s %-22s %s: %s", c.ReleaseType, c.Category, c.SymbolName, c.Explanation)
			if colorize {
				textColorFor(c.ReleaseType).Fprintln(w, line)
			} else {
				fmt.Fprintln(w, line)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "stats: %d old, %d new, +%d -%d ~%d =%d\n",
		r.Stats.TotalOld, r.Stats.TotalNew, r.Stats.Added, r.Stats.Removed, r.Stats.Modified, r.Stats.Unchanged)

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}
