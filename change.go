// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

// ParamMove describes one parameter's relocation as part of a detected
// param-order-changed category; see ParamReorder.
type ParamMove struct {
	OldName  string // the parameter's declared name in the old source
	OldIndex int
	NewIndex int
}

// ParamReorder is the structured detail the differ stashes on an
// AnalyzedChange whose category is CategoryParamOrderChanged, so reporters
// can render the permutation without recomputing it.
type ParamReorder struct {
	Moves []ParamMove
}

// AnalyzedChange is one differ-produced observation about a single
// symbol. Before/After are optional normalized signatures; Details is
// optional structured auxiliary data (currently only *ParamReorder).
type AnalyzedChange struct {
	SymbolName  string
	SymbolKind  SymbolKind
	Category    ChangeCategory
	Explanation string
	Before      string
	HasBefore   bool
	After       string
	HasAfter    bool
	Details     any
}

// Change is an AnalyzedChange with the release type a Policy assigned it.
type Change struct {
	AnalyzedChange
	ReleaseType ReleaseType
}
