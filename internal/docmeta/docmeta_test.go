// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package docmeta_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/go-apidiff/apidiff"
	"github.com/go-apidiff/apidiff/internal/docmeta"
)

func doc(t *testing.T, src string) *ast.CommentGroup {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "t.go", "package p\n"+src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	fn := file.Decls[0].(*ast.FuncDecl)
	return fn.Doc
}

func TestExtractNil(t *testing.T) {
	meta, ok := docmeta.Extract(nil)
	if ok {
		t.Fatalf("nil doc should yield ok=false, got %+v", meta)
	}
}

func TestExtractDeprecated(t *testing.T) {
	meta, ok := docmeta.Extract(doc(t, "// @deprecated use G instead\nfunc F() {}"))
	if !ok {
		t.Fatal("expected metadata to be found")
	}
	if !meta.IsDeprecated {
		t.Error("IsDeprecated should be true")
	}
	if meta.DeprecationMessage != "use G instead" {
		t.Errorf("DeprecationMessage = %q", meta.DeprecationMessage)
	}
}

func TestExtractDefaultValue(t *testing.T) {
	meta, ok := docmeta.Extract(doc(t, "// @default 42\nfunc F() {}"))
	if !ok {
		t.Fatal("expected metadata to be found")
	}
	if !meta.HasDefaultValue || meta.DefaultValue != "42" {
		t.Errorf("got %+v", meta)
	}
}

func TestExtractDefaultValueAlias(t *testing.T) {
	meta, ok := docmeta.Extract(doc(t, "// @defaultValue true\nfunc F() {}"))
	if !ok || !meta.HasDefaultValue || meta.DefaultValue != "true" {
		t.Errorf("got %+v, ok=%v", meta, ok)
	}
}

func TestExtractEnumType(t *testing.T) {
	open, ok := docmeta.Extract(doc(t, "// @enumType open\nfunc F() {}"))
	if !ok || open.EnumType != apidiff.EnumTypeOpen {
		t.Errorf("open: got %+v, ok=%v", open, ok)
	}
	closed, ok := docmeta.Extract(doc(t, "// @enumType closed\nfunc F() {}"))
	if !ok || closed.EnumType != apidiff.EnumTypeClosed {
		t.Errorf("closed: got %+v, ok=%v", closed, ok)
	}
}

func TestExtractNoTagsYieldsNotFound(t *testing.T) {
	_, ok := docmeta.Extract(doc(t, "// just a regular doc comment\nfunc F() {}"))
	if ok {
		t.Error("a comment with no recognized tags should report ok=false")
	}
}

func TestExtractMultipleTags(t *testing.T) {
	meta, ok := docmeta.Extract(doc(t, "// F does something.\n// @deprecated\n// @default 0\nfunc F() {}"))
	if !ok {
		t.Fatal("expected metadata")
	}
	if !meta.IsDeprecated || !meta.HasDefaultValue || meta.DefaultValue != "0" {
		t.Errorf("got %+v", meta)
	}
}
