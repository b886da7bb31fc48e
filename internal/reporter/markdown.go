// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reporter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/go-apidiff/apidiff"
)

// escapeCell neutralizes the one character ('|') that would otherwise
// corrupt a GFM table row, so a change explanation containing a literal
// pipe (e.g. a union-type string baked into Before/After) can't silently
// shift column boundaries.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Markdown renders r as a GitHub-flavored-markdown document suitable
// for posting as a PR comment by a release-gating tool. Before
// returning, it passes its own output through goldmark.Convert and
// returns any error that reports. The converter is goldmark's default
// CommonMark one, without the table extension, so this step does not
// check table structure such as the pipe count of a row.
func Markdown(r *apidiff.Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# apidiff: `%s` -> `%s`\n\n", r.OldFile, r.NewFile)
	fmt.Fprintf(&b, "**Overall release type:** `%s`\n\n", r.ReleaseType)
	fmt.Fprintf(&b, "| | count |\n|---|---|\n")
	fmt.Fprintf(&b, "| old symbols | %d |\n", r.Stats.TotalOld)
	fmt.Fprintf(&b, "| new symbols | %d |\n", r.Stats.TotalNew)
	fmt.Fprintf(&b, "| added | %d |\n", r.Stats.Added)
	fmt.Fprintf(&b, "| removed | %d |\n", r.Stats.Removed)
	fmt.Fprintf(&b, "| modified | %d |\n", r.Stats.Modified)
	fmt.Fprintf(&b, "| unchanged | %d |\n\n", r.Stats.Unchanged)

	for _, bucket := range []apidiff.Bucket{apidiff.BucketForbidden, apidiff.BucketBreaking, apidiff.BucketNonBreaking, apidiff.BucketUnchanged} {
		changes := r.ChangesByImpact[bucket]
		if len(changes) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", strings.ToUpper(bucket.String()))
		fmt.Fprintf(&b, "| release | category | symbol | explanation |\n|---|---|---|---|\n")
		for _, c := range changes {
			fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n",
				c.ReleaseType, c.Category, escapeCell(c.SymbolName), escapeCell(c.Explanation))
		}
		fmt.Fprintln(&b)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n")
		for _, warn := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", escapeCell(warn))
		}
	}

	doc := b.String()
	var discard bytes.Buffer
	if err := goldmark.Convert([]byte(doc), &discard); err != nil {
		return "", fmt.Errorf("generated markdown failed to round-trip through goldmark: %w", err)
	}
	return doc, nil
}
