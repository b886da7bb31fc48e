// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typecap

import (
	"go/types"
	"testing"

	"github.com/go-apidiff/apidiff"
)

func TestParseExportsSortedAndExportedOnly(t *testing.T) {
	src := `package p

func Zeta() {}
func alpha() {}
func Beta() {}
`
	s := Parse("p.go", src, nil)
	if len(s.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", s.Errors)
	}
	var names []string
	for _, obj := range s.Exports() {
		names = append(names, obj.Name())
	}
	want := []string{"Beta", "Zeta"}
	if len(names) != len(want) {
		t.Fatalf("Exports() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Exports()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseSyntaxErrorYieldsNonNilSnapshotWithErrors(t *testing.T) {
	s := Parse("p.go", `package p; func F( {`, nil)
	if s == nil {
		t.Fatal("Parse returned nil on syntax error; want a best-effort snapshot")
	}
	if len(s.Errors) == 0 {
		t.Error("expected at least one parse error to be recorded")
	}
}

func TestParseEmptySourceNoExports(t *testing.T) {
	s := Parse("p.go", `package p`, nil)
	if got := s.Exports(); len(got) != 0 {
		t.Errorf("Exports() = %v, want empty", got)
	}
}

func TestImportUsesResolver(t *testing.T) {
	resolver := apidiff.MapResolver(map[string]string{
		"example.com/dep": `package dep

func Helper() int { return 1 }
`,
	})
	src := `package p

import "example.com/dep"

func F() int { return dep.Helper() }
`
	s := Parse("p.go", src, resolver)
	if len(s.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", s.Errors)
	}
	exports := s.Exports()
	if len(exports) != 1 || exports[0].Name() != "F" {
		t.Fatalf("Exports() = %v, want just F", exports)
	}
}

func TestImportWithoutResolverIsSoftError(t *testing.T) {
	src := `package p

import "example.com/dep"

func F() int { return dep.Helper() }
`
	s := Parse("p.go", src, nil)
	if len(s.Errors) == 0 {
		t.Error("expected a soft error when no resolver can satisfy the import")
	}
}

func TestResolveAliasFollowsOneLevel(t *testing.T) {
	src := `package p

type Real struct{ X int }
type Alias = Real
`
	s := Parse("p.go", src, nil)
	scope := s.Pkg.Scope()
	aliasObj := scope.Lookup("Alias")
	if aliasObj == nil {
		t.Fatal("Alias not found in package scope")
	}
	resolved := ResolveAlias(aliasObj)
	if resolved.Name() != "Real" {
		t.Errorf("ResolveAlias(Alias) = %s, want Real", resolved.Name())
	}

	realObj := scope.Lookup("Real")
	if ResolveAlias(realObj) != realObj {
		t.Error("ResolveAlias on a non-alias should return it unchanged")
	}
}

func TestDeclOfFindsFuncAndGroupedVar(t *testing.T) {
	src := `package p

func F() {}

var (
	A int
	B string
)
`
	s := Parse("p.go", src, nil)
	scope := s.Pkg.Scope()

	fObj := scope.Lookup("F")
	if decl := s.DeclOf(fObj); decl == nil {
		t.Error("DeclOf(F) = nil, want its FuncDecl")
	}

	bObj := scope.Lookup("B")
	decl := s.DeclOf(bObj)
	if decl == nil {
		t.Fatal("DeclOf(B) = nil, want the grouped var GenDecl")
	}
	spec := s.SpecOf(bObj)
	if spec == nil {
		t.Fatal("SpecOf(B) = nil, want B's own ValueSpec")
	}
}

func TestSourceLocationReportsLineAndColumn(t *testing.T) {
	src := "package p\n\nfunc F() {}\n"
	s := Parse("p.go", src, nil)
	obj := s.Pkg.Scope().Lookup("F")
	loc, ok := s.SourceLocation(obj)
	if !ok {
		t.Fatal("SourceLocation ok = false, want true")
	}
	if loc.Line != 3 {
		t.Errorf("Line = %d, want 3", loc.Line)
	}
}

func TestLeadingCommentPrefersSpecDocOverGroupDoc(t *testing.T) {
	src := `package p

// group doc
var (
	// A's own doc
	A int
	B int
)
`
	s := Parse("p.go", src, nil)
	scope := s.Pkg.Scope()

	aDoc := s.LeadingComment(scope.Lookup("A"))
	if aDoc == nil || aDoc.Text() != "A's own doc\n" {
		t.Errorf("LeadingComment(A) = %v, want A's own doc", aDoc)
	}

	bDoc := s.LeadingComment(scope.Lookup("B"))
	if bDoc == nil || bDoc.Text() != "group doc\n" {
		t.Errorf("LeadingComment(B) = %v, want group doc (fallback to GenDecl)", bDoc)
	}
}

func TestTypeToStringIsRelativeToPackage(t *testing.T) {
	s := Parse("p.go", `package p

type T struct{ X int }
`, nil)
	obj := s.Pkg.Scope().Lookup("T")
	tn, ok := obj.(*types.TypeName)
	if !ok {
		t.Fatal("T is not a TypeName")
	}
	got := s.TypeToString(tn.Type())
	if got != "T" {
		t.Errorf("TypeToString(T) = %q, want %q (package-relative, no qualifier)", got, "T")
	}
}

func TestNewHandleAndObjectRoundTrip(t *testing.T) {
	s := Parse("p.go", `package p; func F() {}`, nil)
	obj := s.Pkg.Scope().Lookup("F")
	h := s.NewHandle(obj)
	got, ok := Object(h)
	if !ok || got != obj {
		t.Errorf("Object(NewHandle(obj)) = (%v, %v), want (%v, true)", got, ok, obj)
	}

	if _, ok := Object(struct{ apidiff.TypeHandle }{}); ok {
		t.Error("Object on a foreign TypeHandle should report ok=false")
	}
}
