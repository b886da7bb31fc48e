// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser turns a declaration source string into a mapping from
// exported name to apidiff.ExportedSymbol plus the opaque type-checker
// handles backing them.
package parser

import (
	"go/types"
	"sort"
	"strings"

	"github.com/go-apidiff/apidiff"
	"github.com/go-apidiff/apidiff/internal/docmeta"
	"github.com/go-apidiff/apidiff/internal/signature"
	"github.com/go-apidiff/apidiff/internal/typecap"
)

// Parse parses source (named filename) into a ModuleSnapshot. Empty or
// whitespace-only input, and source with no exported declarations, both
// yield an empty snapshot with no errors.
func Parse(source, filename string, resolver apidiff.LibraryFileResolver) *apidiff.ModuleSnapshot {
	if strings.TrimSpace(source) == "" {
		return &apidiff.ModuleSnapshot{
			Symbols:     map[string]apidiff.ExportedSymbol{},
			TypeHandles: map[string]apidiff.TypeHandle{},
		}
	}
	snap := typecap.Parse(filename, source, resolver)

	out := &apidiff.ModuleSnapshot{
		Symbols:     map[string]apidiff.ExportedSymbol{},
		TypeHandles: map[string]apidiff.TypeHandle{},
		ParseErrors: append([]string(nil), snap.Errors...),
	}
	if snap.Pkg == nil {
		return out
	}

	exports := snap.Exports()

	// Locally-declared named types, and the const members that belong to
	// each one's enum. A const group typed to a local named basic type is
	// treated as that type's enum members, folded into the enum's own
	// signature rather than surfaced as standalone top-level symbols.
	localTypes := map[string]*types.Named{}
	for _, obj := range exports {
		if tn, ok := obj.(*types.TypeName); ok {
			if named, ok := tn.Type().(*types.Named); ok {
				localTypes[tn.Name()] = named
			}
		}
	}
	enumMembers := map[string][]*types.Const{}
	for _, obj := range exports {
		c, ok := obj.(*types.Const)
		if !ok {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}
		if !enumBacking(named) {
			continue
		}
		if localTypes[named.Obj().Name()] != named {
			continue // typed to an imported/foreign named type, not a local enum
		}
		enumMembers[named.Obj().Name()] = append(enumMembers[named.Obj().Name()], c)
	}

	for _, obj := range exports {
		if c, ok := obj.(*types.Const); ok {
			if named, ok := c.Type().(*types.Named); ok {
				if _, isEnum := enumMembers[named.Obj().Name()]; isEnum && localTypes[named.Obj().Name()] == named {
					continue // folded into the enum symbol below
				}
			}
		}

		kind, sig, ok := classify(obj, enumMembers)
		if !ok {
			out.ParseErrors = append(out.ParseErrors, "could not classify exported symbol "+obj.Name())
			continue
		}

		sym := apidiff.ExportedSymbol{Name: obj.Name(), Kind: kind, Signature: sig}

		if doc := snap.LeadingComment(obj); doc != nil {
			if meta, hasMeta := docmeta.Extract(doc); hasMeta {
				sym.Metadata = meta
				sym.HasMetadata = true
			}
		}
		if loc, ok := snap.SourceLocation(obj); ok {
			sym.SourceLocation = loc
			sym.HasLocation = true
		}

		out.Symbols[obj.Name()] = sym
		out.TypeHandles[obj.Name()] = snap.NewHandle(obj)
	}

	return out
}

// enumBacking reports whether named can anchor an enum: only integer-
// and string-backed types qualify, so a const group typed to, say, a
// float64-backed type stays in the type-alias bucket.
func enumBacking(named *types.Named) bool {
	b, ok := named.Underlying().(*types.Basic)
	return ok && b.Info()&(types.IsInteger|types.IsString) != 0
}

func classify(obj types.Object, enumMembers map[string][]*types.Const) (apidiff.SymbolKind, string, bool) {
	switch o := obj.(type) {
	case *types.Func:
		sig := o.Type().(*types.Signature)
		return apidiff.KindFunction, "func" + signature.Func(sig, nil), true

	case *types.Var:
		if sig, ok := o.Type().Underlying().(*types.Signature); ok {
			return apidiff.KindFunction, "func" + signature.Func(sig, nil), true
		}
		if st, ok := o.Type().(*types.Struct); ok {
			return apidiff.KindNamespace, signature.Namespace(st), true
		}
		return apidiff.KindVariable, signature.Variable(o), true

	case *types.Const:
		return apidiff.KindVariable, signature.Variable(o), true

	case *types.TypeName:
		if o.IsAlias() {
			return apidiff.KindTypeAlias, signature.TypeAlias(o), true
		}
		named, ok := o.Type().(*types.Named)
		if !ok {
			return apidiff.KindTypeAlias, signature.TypeAlias(o), true
		}
		switch u := named.Underlying().(type) {
		case *types.Interface:
			return apidiff.KindInterface, signature.Interface(named, u), true
		case *types.Struct:
			if named.NumMethods() > 0 {
				ms := types.NewMethodSet(types.NewPointer(named))
				return apidiff.KindClass, signature.Class(named, ms), true
			}
			return apidiff.KindTypeAlias, signature.TypeAlias(o), true
		case *types.Basic:
			if members, ok := enumMembers[named.Obj().Name()]; ok && len(members) > 0 {
				return apidiff.KindEnum, signature.Enum(named, members), true
			}
			return apidiff.KindTypeAlias, signature.TypeAlias(o), true
		default:
			return apidiff.KindTypeAlias, signature.TypeAlias(o), true
		}

	default:
		return 0, "", false
	}
}

// SortedExportedNames is a small helper re-exported for callers that want
// deterministic iteration without reaching into ModuleSnapshot directly.
func SortedExportedNames(s *apidiff.ModuleSnapshot) []string {
	names := make([]string, 0, len(s.Symbols))
	for n := range s.Symbols {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
