// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package differ_test

import (
	"testing"

	"github.com/go-apidiff/apidiff"
	"github.com/go-apidiff/apidiff/internal/differ"
	"github.com/go-apidiff/apidiff/internal/parser"
)

func categoriesFor(changes []apidiff.AnalyzedChange, name string) []apidiff.ChangeCategory {
	var out []apidiff.ChangeCategory
	for _, c := range changes {
		if c.SymbolName == name {
			out = append(out, c.Category)
		}
	}
	return out
}

func contains(cats []apidiff.ChangeCategory, want apidiff.ChangeCategory) bool {
	for _, c := range cats {
		if c == want {
			return true
		}
	}
	return false
}

func TestDiffParamOrderChanged(t *testing.T) {
	old := parser.Parse(`package p; func F(x string, y int) {}`, "old.go", nil)
	new := parser.Parse(`package p; func F(y int, x string) {}`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	cats := categoriesFor(changes, "F")
	if !contains(cats, apidiff.CategoryParamOrderChanged) {
		t.Fatalf("want param-order-changed, got %v", cats)
	}
	for _, c := range changes {
		if c.Category == apidiff.CategoryParamOrderChanged {
			reorder, ok := c.Details.(*apidiff.ParamReorder)
			if !ok || len(reorder.Moves) == 0 {
				t.Errorf("expected non-empty ParamReorder details, got %+v", c.Details)
			}
		}
	}
}

func TestDiffParamOrderMovesFollowNames(t *testing.T) {
	// limit and count share a type; the reconstructed permutation must
	// assign each old parameter to the new position carrying its own
	// name, not the first position of the right type.
	old := parser.Parse(`package p; func F(limit int, count int, s string) {}`, "old.go", nil)
	new := parser.Parse(`package p; func F(s string, count int, limit int) {}`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	var reorder *apidiff.ParamReorder
	for _, c := range changes {
		if c.Category == apidiff.CategoryParamOrderChanged {
			reorder, _ = c.Details.(*apidiff.ParamReorder)
		}
	}
	if reorder == nil {
		t.Fatalf("want param-order-changed with details, got %v", categoriesFor(changes, "F"))
	}
	found := false
	for _, m := range reorder.Moves {
		if m.OldName == "limit" && m.OldIndex == 0 && m.NewIndex == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("want limit to move 0 -> 2, got moves %+v", reorder.Moves)
	}
}

func TestDiffParamRemoved(t *testing.T) {
	old := parser.Parse(`package p; func F(x string, y int) {}`, "old.go", nil)
	new := parser.Parse(`package p; func F(x string) {}`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "F"), apidiff.CategoryParamRemoved) {
		t.Fatalf("want param-removed, got %v", categoriesFor(changes, "F"))
	}
}

func TestDiffFieldAddedAndRemoved(t *testing.T) {
	old := parser.Parse(`package p; type T struct { A int; B string }`, "old.go", nil)
	new := parser.Parse(`package p; type T struct { A int; C bool }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	// B is removed and C is added; the removal dominates, so the whole
	// struct is reported as narrowed rather than as two member records.
	if !contains(categoriesFor(changes, "T"), apidiff.CategoryTypeNarrowed) {
		t.Errorf("want T narrowed, got %v", categoriesFor(changes, "T"))
	}
}

func TestDiffFieldAdded(t *testing.T) {
	old := parser.Parse(`package p; type T struct { A int }`, "old.go", nil)
	new := parser.Parse(`package p; type T struct { A int; B string }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "T"), apidiff.CategoryTypeWidened) {
		t.Errorf("want T widened, got %v", categoriesFor(changes, "T"))
	}
}

func TestDiffFieldOptionalityTightened(t *testing.T) {
	old := parser.Parse(`package p; type T struct { A *int }`, "old.go", nil)
	new := parser.Parse(`package p; type T struct { A int }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "T"), apidiff.CategoryOptionalityTightened) {
		t.Fatalf("want optionality-tightened, got %v", categoriesFor(changes, "T"))
	}
}

func TestDiffFieldOptionalityLoosened(t *testing.T) {
	old := parser.Parse(`package p; type T struct { A int }`, "old.go", nil)
	new := parser.Parse(`package p; type T struct { A *int }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "T"), apidiff.CategoryOptionalityLoosened) {
		t.Fatalf("want optionality-loosened, got %v", categoriesFor(changes, "T"))
	}
}

func TestDiffFieldTypeChangedIncomparableIsNarrowed(t *testing.T) {
	old := parser.Parse(`package p; type T struct { A string }`, "old.go", nil)
	new := parser.Parse(`package p; type T struct { A int }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "T"), apidiff.CategoryTypeNarrowed) {
		t.Fatalf("want type-narrowed for an incomparable field type change, got %v", categoriesFor(changes, "T"))
	}
}

func TestDiffInterfaceMethodRenameIsRemovalPlusAddition(t *testing.T) {
	old := parser.Parse(`package p; type I interface { OldM(x int) string }`, "old.go", nil)
	new := parser.Parse(`package p; type I interface { NewM(x int) string }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	// No member-rename category exists; OldM's removal and NewM's addition
	// collapse onto I as a single narrowed judgment, removal dominating.
	if !contains(categoriesFor(changes, "I"), apidiff.CategoryTypeNarrowed) {
		t.Fatalf("want I narrowed, got %v", categoriesFor(changes, "I"))
	}
}

func TestDiffInterfaceMethodTypeChangedIncomparableIsNarrowed(t *testing.T) {
	old := parser.Parse(`package p; type I interface { M(x int) string }`, "old.go", nil)
	new := parser.Parse(`package p; type I interface { M(x string) int }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "I"), apidiff.CategoryTypeNarrowed) {
		t.Fatalf("want type-narrowed for an incomparable method signature change, got %v", categoriesFor(changes, "I"))
	}
}

func TestDiffKindChangeIsRemovePlusAdd(t *testing.T) {
	// No modification category can describe a cross-kind transition, so
	// a name whose declaration form changes reports as the old entity
	// removed and a new one added under the same name.
	old := parser.Parse(`package p; func F() {}`, "old.go", nil)
	new := parser.Parse(`package p; type F struct{ X int }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	cats := categoriesFor(changes, "F")
	if !contains(cats, apidiff.CategorySymbolRemoved) || !contains(cats, apidiff.CategorySymbolAdded) {
		t.Fatalf("want symbol-removed plus symbol-added for a kind change, got %v", cats)
	}
}

func TestDiffAmbiguousRenameIsNotPaired(t *testing.T) {
	// Two removed functions share a signature with two added functions:
	// the differ must not guess a pairing.
	old := parser.Parse(`package p
func A(x int) {}
func B(x int) {}
`, "old.go", nil)
	new := parser.Parse(`package p
func C(x int) {}
func D(x int) {}
`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	for _, name := range []string{"A", "B"} {
		if !contains(categoriesFor(changes, name), apidiff.CategorySymbolRemoved) {
			t.Errorf("%s: want symbol-removed (no rename pairing), got %v", name, categoriesFor(changes, name))
		}
	}
	for _, name := range []string{"C", "D"} {
		if !contains(categoriesFor(changes, name), apidiff.CategorySymbolAdded) {
			t.Errorf("%s: want symbol-added (no rename pairing), got %v", name, categoriesFor(changes, name))
		}
	}
}

func TestDiffParamTypeWidened(t *testing.T) {
	old := parser.Parse(`package p; func F(x int32) {}`, "old.go", nil)
	new := parser.Parse(`package p; func F(x int64) {}`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "F"), apidiff.CategoryTypeWidened) {
		t.Fatalf("want type-widened for an in-place widening retype, got %v", categoriesFor(changes, "F"))
	}
}

func TestDiffParamTypeIncomparableIsNarrowed(t *testing.T) {
	old := parser.Parse(`package p; func F(x string) {}`, "old.go", nil)
	new := parser.Parse(`package p; func F(x bool) {}`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "F"), apidiff.CategoryTypeNarrowed) {
		t.Fatalf("want type-narrowed for an incomparable retype, got %v", categoriesFor(changes, "F"))
	}
}

func TestDiffNamedParamStableAcrossSnapshots(t *testing.T) {
	// T is declared identically on both sides but lives in two separate
	// type-checker universes; the unchanged T parameter must not drag the
	// classification away from the int->string change on y.
	old := parser.Parse(`package p
type T struct{ A int }
func (T) M() {}
func F(x T, y int) {}
`, "old.go", nil)
	new := parser.Parse(`package p
type T struct{ A int }
func (T) M() {}
func F(x T, y string) {}
`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "F"), apidiff.CategoryTypeNarrowed) {
		t.Fatalf("want type-narrowed on F, got %v", categoriesFor(changes, "F"))
	}
	if !contains(categoriesFor(changes, "T"), apidiff.CategorySignatureIdentical) {
		t.Fatalf("want signature-identical on T, got %v", categoriesFor(changes, "T"))
	}
}

func TestDiffEnumMemberAddedIsWidened(t *testing.T) {
	old := parser.Parse(`package p
type Size int
const (
	Small Size = iota
	Large
)
`, "old.go", nil)
	new := parser.Parse(`package p
type Size int
const (
	Small Size = iota
	Large
	Huge
)
`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "Size"), apidiff.CategoryTypeWidened) {
		t.Fatalf("want type-widened for an enum member addition, got %v", categoriesFor(changes, "Size"))
	}
}

func TestDiffEnumMemberRemovedIsNarrowed(t *testing.T) {
	old := parser.Parse(`package p
type Size int
const (
	Small Size = iota
	Large
)
`, "old.go", nil)
	new := parser.Parse(`package p
type Size int
const (
	Small Size = iota
)
`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "Size"), apidiff.CategoryTypeNarrowed) {
		t.Fatalf("want type-narrowed for an enum member removal, got %v", categoriesFor(changes, "Size"))
	}
}

func TestDiffReturnTypeWidened(t *testing.T) {
	old := parser.Parse(`package p; func F() int32 { return 0 }`, "old.go", nil)
	new := parser.Parse(`package p; func F() int64 { return 0 }`, "new.go", nil)
	changes, _ := differ.Compare(old, new)
	if !contains(categoriesFor(changes, "F"), apidiff.CategoryTypeWidened) {
		t.Fatalf("want type-widened, got %v", categoriesFor(changes, "F"))
	}
}
