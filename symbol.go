// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

import "sort"

// SourceLocation is a diagnostic-only position within a declaration source
// string. Line is 1-based and Column is 0-based; go/token.Position reports
// a 1-based column, so the parser subtracts one when filling this struct.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int // 0 if unknown
	EndColumn int // 0 if unknown
}

// EnumType records whether an enum declared open or closed extensibility
// via its @enumType doc tag.
type EnumType int

const (
	EnumTypeUnspecified EnumType = iota
	EnumTypeOpen
	EnumTypeClosed
)

// SymbolMetadata carries the optional facts a Doc-Comment Extractor can
// recover from a symbol's leading documentation comment. IsZero reports
// whether every field is at its zero value; whether metadata was found at
// all is recorded separately, in ExportedSymbol.HasMetadata.
type SymbolMetadata struct {
	IsDeprecated       bool
	DeprecationMessage string
	HasDefaultValue    bool
	DefaultValue       string
	EnumType           EnumType
}

// IsZero reports whether m carries no information at all.
func (m SymbolMetadata) IsZero() bool {
	return !m.IsDeprecated && m.DeprecationMessage == "" && !m.HasDefaultValue &&
		m.DefaultValue == "" && m.EnumType == EnumTypeUnspecified
}

// TypeHandle is an opaque reference into the type-checker state owned by
// the ModuleSnapshot that produced it. Handles are weak: they are valid
// only for the snapshot's lifetime, and AnalyzedChange records never
// retain one; every string a Change needs is copied out before the
// snapshot backing its handles can be dropped.
//
// The concrete type behind a handle belongs to internal/typecap; callers
// can only pass handles back to the packages that minted them.
type TypeHandle interface{}

// ExportedSymbol is the unit of comparison the parser produces for each
// exported name in a snapshot.
type ExportedSymbol struct {
	Name           string
	Kind           SymbolKind
	Signature      string
	Metadata       SymbolMetadata
	HasMetadata    bool
	SourceLocation SourceLocation
	HasLocation    bool
}

// ModuleSnapshot is the parser's output: every exported symbol of one
// declaration source, the opaque type-checker handles backing them, and
// any soft parse errors encountered along the way.
type ModuleSnapshot struct {
	Symbols     map[string]ExportedSymbol
	TypeHandles map[string]TypeHandle
	ParseErrors []string
}

// SortedNames returns the snapshot's symbol names in lexicographic
// order, so callers iterating a snapshot get the same order every run.
func (s *ModuleSnapshot) SortedNames() []string {
	names := make([]string, 0, len(s.Symbols))
	for n := range s.Symbols {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LibraryFileResolver supplies the text of a library file (e.g. a shared
// package that declaration source imports) on demand. It returns ok=false
// when it has nothing for name; the failed import is then recorded as a
// soft parse error instead of failing the whole comparison, and symbols
// whose types go through it are still reported, with the unresolved types
// rendered as "invalid type" in their signatures.
type LibraryFileResolver func(name string) (content string, ok bool)
