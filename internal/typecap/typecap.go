// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typecap wraps go/types and go/ast behind the narrow capability
// set the rest of the module consumes the type-checker through: parse,
// exports, alias resolution, declaration lookup, type rendering, the
// subtype oracle, and the comment/position queries the doc-comment
// extractor and signature normalizer need.
//
// Source text is parsed and type-checked only here; the parser, differ,
// signature normalizer, and doc-comment extractor work on the go/types
// and go/ast values a *Snapshot produces.
package typecap

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sort"

	"github.com/go-apidiff/apidiff"
)

// Snapshot owns the type-checker state for one side of a comparison: the
// parsed file, its resolved package, and every soft error produced along
// the way. Handles it mints (see handle, below) stay valid only while
// the Snapshot itself is alive.
type Snapshot struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info

	Errors []string

	importCache map[string]*types.Package
	resolver    apidiff.LibraryFileResolver
}

// handle is the concrete apidiff.TypeHandle implementation: a (snapshot,
// object) pair. It is a weak reference: nothing prevents the owning
// Snapshot from being garbage collected once the caller drops it, and
// Object is only meaningful while it is alive.
type handle struct {
	snap *Snapshot
	obj  types.Object
}

// NewHandle wraps obj as an apidiff.TypeHandle scoped to s.
func (s *Snapshot) NewHandle(obj types.Object) apidiff.TypeHandle {
	return handle{snap: s, obj: obj}
}

// Object unwraps an apidiff.TypeHandle produced by this package back into
// its types.Object, or (nil, false) if h isn't one of ours.
func Object(h apidiff.TypeHandle) (types.Object, bool) {
	hh, ok := h.(handle)
	if !ok {
		return nil, false
	}
	return hh.obj, true
}

// Parse type-checks a single declaration source file. It never returns a
// nil *Snapshot for parseable-as-tokens input: outright syntax errors
// still yield an (empty) snapshot plus a recorded parse error.
func Parse(filename, src string, resolver apidiff.LibraryFileResolver) *Snapshot {
	fset := token.NewFileSet()
	s := &Snapshot{
		Fset:        fset,
		importCache: map[string]*types.Package{},
		resolver:    resolver,
	}

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		s.Errors = append(s.Errors, fmt.Sprintf("parse %s: %v", filename, err))
		if file == nil {
			return s
		}
	}
	s.File = file

	info := &types.Info{
		Types:      map[ast.Expr]types.TypeAndValue{},
		Defs:       map[*ast.Ident]types.Object{},
		Uses:       map[*ast.Ident]types.Object{},
		Implicits:  map[ast.Node]types.Object{},
		Scopes:     map[ast.Node]*types.Scope{},
		Selections: map[*ast.SelectorExpr]*types.Selection{},
	}
	s.Info = info

	cfg := &types.Config{
		Importer: s,
		Error: func(err error) {
			s.Errors = append(s.Errors, err.Error())
		},
		IgnoreFuncBodies: true,
	}
	pkgName := "main"
	if file != nil && file.Name != nil {
		pkgName = file.Name.Name
	}
	pkg, _ := cfg.Check(pkgName, fset, []*ast.File{file}, info)
	// cfg.Check returns a non-nil error exactly when Error was invoked;
	// those messages are already captured, and pkg is still usable on a
	// best-effort basis.
	s.Pkg = pkg
	return s
}

// Import implements types.Importer by delegating to the configured
// LibraryFileResolver. When the resolver is nil or has nothing for path,
// Import returns an error; go/types reports it through Config.Error (so it
// lands in Errors) and marks every reference through that import as
// invalid. The symbols using those references are not dropped.
func (s *Snapshot) Import(path string) (*types.Package, error) {
	if pkg, ok := s.importCache[path]; ok {
		return pkg, nil
	}
	if s.resolver == nil {
		return nil, fmt.Errorf("no library-file resolver configured, cannot import %q", path)
	}
	content, ok := s.resolver(path)
	if !ok {
		return nil, fmt.Errorf("library-file resolver has no content for %q", path)
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, content, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing library file %q: %w", path, err)
	}
	info := &types.Info{Defs: map[*ast.Ident]types.Object{}, Uses: map[*ast.Ident]types.Object{}}
	cfg := &types.Config{Importer: s, IgnoreFuncBodies: true}
	pkg, err := cfg.Check(path, fset, []*ast.File{file}, info)
	if err != nil {
		// Best-effort: a library file with errors of its own still
		// gets cached so we don't retry and re-fail on every use.
		s.Errors = append(s.Errors, fmt.Sprintf("library file %q: %v", path, err))
	}
	s.importCache[path] = pkg
	return pkg, nil
}

// Exports returns the snapshot's exported package-scope objects, sorted
// by name.
func (s *Snapshot) Exports() []types.Object {
	if s.Pkg == nil {
		return nil
	}
	scope := s.Pkg.Scope()
	names := scope.Names()
	sort.Strings(names)
	var out []types.Object
	for _, n := range names {
		obj := scope.Lookup(n)
		if obj != nil && obj.Exported() {
			out = append(out, obj)
		}
	}
	return out
}

// ResolveAlias resolves a type alias one level to its backing
// declaration. For a non-alias object it returns obj unchanged.
func ResolveAlias(obj types.Object) types.Object {
	tn, ok := obj.(*types.TypeName)
	if !ok || !tn.IsAlias() {
		return obj
	}
	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return obj
	}
	return named.Obj()
}

// DeclOf finds the ast.Decl introducing obj within file, or nil if it
// can't be found (e.g. obj belongs to an imported library file).
func (s *Snapshot) DeclOf(obj types.Object) ast.Decl {
	if s.File == nil {
		return nil
	}
	pos := obj.Pos()
	for _, decl := range s.File.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch sp := spec.(type) {
				case *ast.TypeSpec:
					if sp.Name.Pos() == pos {
						return d
					}
				case *ast.ValueSpec:
					for _, n := range sp.Names {
						if n.Pos() == pos {
							return d
						}
					}
				}
			}
		case *ast.FuncDecl:
			if d.Name.Pos() == pos {
				return d
			}
		}
	}
	return nil
}

// SpecOf finds the individual ast.Spec (TypeSpec or ValueSpec) introducing
// obj, which may differ from DeclOf's *ast.GenDecl when several specs
// share one `var (...)`/`const (...)` block.
func (s *Snapshot) SpecOf(obj types.Object) ast.Spec {
	decl := s.DeclOf(obj)
	gd, ok := decl.(*ast.GenDecl)
	if !ok {
		return nil
	}
	pos := obj.Pos()
	for _, spec := range gd.Specs {
		switch sp := spec.(type) {
		case *ast.TypeSpec:
			if sp.Name.Pos() == pos {
				return sp
			}
		case *ast.ValueSpec:
			for _, n := range sp.Names {
				if n.Pos() == pos {
					return sp
				}
			}
		}
	}
	return nil
}

// LeadingComment returns the doc comment immediately above obj's
// declaration, preferring a per-spec comment (e.g. one const line within
// a group) over the enclosing GenDecl's, matching how godoc itself
// resolves per-identifier documentation.
func (s *Snapshot) LeadingComment(obj types.Object) *ast.CommentGroup {
	if spec := s.SpecOf(obj); spec != nil {
		switch sp := spec.(type) {
		case *ast.TypeSpec:
			if sp.Doc != nil {
				return sp.Doc
			}
		case *ast.ValueSpec:
			if sp.Doc != nil {
				return sp.Doc
			}
		}
	}
	switch d := s.DeclOf(obj).(type) {
	case *ast.GenDecl:
		return d.Doc
	case *ast.FuncDecl:
		return d.Doc
	}
	return nil
}

// SourceLocation returns obj's position as an apidiff.SourceLocation.
func (s *Snapshot) SourceLocation(obj types.Object) (apidiff.SourceLocation, bool) {
	if obj.Pos() == token.NoPos {
		return apidiff.SourceLocation{}, false
	}
	p := s.Fset.Position(obj.Pos())
	return apidiff.SourceLocation{Line: p.Line, Column: p.Column - 1}, true
}

// TypeToString renders t relative to the snapshot's package, for
// widening/narrowing diagnostics.
func (s *Snapshot) TypeToString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(s.Pkg))
}
