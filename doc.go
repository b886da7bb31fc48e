// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package apidiff compares two versions of a Go package's exported API and
classifies every observed difference by its semantic-versioning impact:
forbidden, major, minor, patch, or none.

Given the source text of an old and a new declaration file, Compare parses
both into a snapshot of exported symbols, diffs the two snapshots down to a
closed taxonomy of change categories, and applies a Policy that maps each
category to a ReleaseType. The result is a Report: the overall release type
required to publish new without breaking old, alongside every change
grouped by impact and summary statistics.

The three built-in policies (default, read-only, and write-only) differ
only in how they weigh changes whose impact
depends on whether the symbol is consumed (read) or implemented (written) by
callers, such as a widened parameter type or a newly required parameter.

Compare is a pure function: it performs no I/O beyond what the caller
supplies via CompareOptions, and it never fails for source that parses,
preferring to record soft errors in the returned Report's Warnings instead.
*/
package apidiff
