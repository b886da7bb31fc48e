// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

// PolicyContext is passed to Policy.Classify alongside the change it
// should classify. It carries the full sequence of analyzed changes, the
// index of the one being classified, and the old/new metadata for the
// named symbol, so a policy that needs cross-change context (e.g. "has
// this symbol also changed category elsewhere") isn't forced to recompute
// it. Policies that don't need context are free to ignore it.
type PolicyContext struct {
	AllChanges  []AnalyzedChange
	Index       int
	OldMetadata SymbolMetadata
	NewMetadata SymbolMetadata
}

// Policy is a pure function from a categorized change to a release type.
// Implementations must be total over ChangeCategory: see builtin_test.go's
// table-driven exhaustiveness test, which ranges over AllCategories and
// fails if any built-in policy's table is missing an entry.
type Policy interface {
	Name() string
	Classify(change AnalyzedChange, ctx PolicyContext) ReleaseType
}
