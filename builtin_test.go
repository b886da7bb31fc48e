// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

import "testing"

// TestBuiltinPoliciesAreExhaustive ranges over every declared category
// and fails (via tablePolicy.Classify's panic) if a built-in's table is
// missing an entry. Go has no sum-type exhaustiveness check, so a table
// that silently drops a category would otherwise go unnoticed until a
// diff hits it.
func TestBuiltinPoliciesAreExhaustive(t *testing.T) {
	for _, pol := range []Policy{DefaultPolicy, ReadOnlyPolicy, WriteOnlyPolicy} {
		for _, cat := range AllCategories() {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("policy %s: category %s: %v", pol.Name(), cat, r)
					}
				}()
				_ = pol.Classify(AnalyzedChange{Category: cat}, PolicyContext{})
			}()
		}
	}
}

func TestBuiltinPoliciesNeverReturnForbidden(t *testing.T) {
	// Only custom policies may veto a change with forbidden.
	for _, pol := range []Policy{DefaultPolicy, ReadOnlyPolicy, WriteOnlyPolicy} {
		for _, cat := range AllCategories() {
			if rt := pol.Classify(AnalyzedChange{Category: cat}, PolicyContext{}); rt == ReleaseForbidden {
				t.Errorf("policy %s: category %s classified as forbidden", pol.Name(), cat)
			}
		}
	}
}

func TestPolicyByName(t *testing.T) {
	cases := []struct {
		name string
		want Policy
		ok   bool
	}{
		{"default", DefaultPolicy, true},
		{"", DefaultPolicy, true},
		{"read-only", ReadOnlyPolicy, true},
		{"write-only", WriteOnlyPolicy, true},
		{"bogus", nil, false},
	}
	for _, c := range cases {
		got, ok := PolicyByName(c.name)
		if ok != c.ok || (ok && got.Name() != c.want.Name()) {
			t.Errorf("PolicyByName(%q) = %v, %v; want %v, %v", c.name, got, ok, c.want, c.ok)
		}
	}
}

// TestBuiltinMatrixNormative spot-checks the rows of the category
// matrix where the three built-in policies diverge.
func TestBuiltinMatrixNormative(t *testing.T) {
	cases := []struct {
		cat         ChangeCategory
		def, ro, wo ReleaseType
	}{
		{CategoryTypeNarrowed, ReleaseMajor, ReleaseMajor, ReleaseMinor},
		{CategoryTypeWidened, ReleaseMinor, ReleaseMinor, ReleaseMajor},
		{CategoryParamAddedRequired, ReleaseMajor, ReleaseMinor, ReleaseMajor},
		{CategoryParamRemoved, ReleaseMajor, ReleaseMajor, ReleaseMinor},
		{CategoryOptionalityLoosened, ReleaseMajor, ReleaseMajor, ReleaseMinor},
		{CategoryOptionalityTightened, ReleaseMajor, ReleaseMinor, ReleaseMajor},
		{CategoryDefaultRemoved, ReleaseMinor, ReleaseMinor, ReleaseMajor},
	}
	for _, c := range cases {
		ac := AnalyzedChange{Category: c.cat}
		if got := DefaultPolicy.Classify(ac, PolicyContext{}); got != c.def {
			t.Errorf("default policy %s = %s, want %s", c.cat, got, c.def)
		}
		if got := ReadOnlyPolicy.Classify(ac, PolicyContext{}); got != c.ro {
			t.Errorf("read-only policy %s = %s, want %s", c.cat, got, c.ro)
		}
		if got := WriteOnlyPolicy.Classify(ac, PolicyContext{}); got != c.wo {
			t.Errorf("write-only policy %s = %s, want %s", c.cat, got, c.wo)
		}
	}
}
