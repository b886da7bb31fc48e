// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

// ChangeCategory is one of the eighteen closed tags a Differ assigns to a
// pair of old/new symbols. The taxonomy is exhaustive: a Policy that fails
// to account for a category is a programming error, not a silent default
// (see AllCategories and Policy).
type ChangeCategory int

const (
	CategorySymbolAdded ChangeCategory = iota
	CategorySymbolRemoved
	CategorySignatureIdentical
	CategoryFieldRenamed

	CategoryTypeWidened
	CategoryTypeNarrowed
	CategoryReturnTypeChanged

	CategoryParamAddedRequired
	CategoryParamAddedOptional
	CategoryParamRemoved
	CategoryParamOrderChanged

	CategoryFieldDeprecated
	CategoryFieldUndeprecated
	CategoryDefaultAdded
	CategoryDefaultRemoved
	CategoryDefaultChanged

	CategoryOptionalityLoosened
	CategoryOptionalityTightened
)

var categoryNames = [...]string{
	CategorySymbolAdded:          "symbol-added",
	CategorySymbolRemoved:        "symbol-removed",
	CategorySignatureIdentical:   "signature-identical",
	CategoryFieldRenamed:         "field-renamed",
	CategoryTypeWidened:          "type-widened",
	CategoryTypeNarrowed:         "type-narrowed",
	CategoryReturnTypeChanged:    "return-type-changed",
	CategoryParamAddedRequired:   "param-added-required",
	CategoryParamAddedOptional:   "param-added-optional",
	CategoryParamRemoved:         "param-removed",
	CategoryParamOrderChanged:    "param-order-changed",
	CategoryFieldDeprecated:      "field-deprecated",
	CategoryFieldUndeprecated:    "field-undeprecated",
	CategoryDefaultAdded:         "default-added",
	CategoryDefaultRemoved:       "default-removed",
	CategoryDefaultChanged:       "default-changed",
	CategoryOptionalityLoosened:  "optionality-loosened",
	CategoryOptionalityTightened: "optionality-tightened",
}

func (c ChangeCategory) String() string {
	if int(c) < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// AllCategories returns the eighteen categories in declaration order. Code
// that builds a total mapping (a Policy) should range over this to get a
// compile-time-adjacent exhaustiveness check via table-driven tests; see
// builtin_test.go.
func AllCategories() []ChangeCategory {
	out := make([]ChangeCategory, len(categoryNames))
	for i := range out {
		out[i] = ChangeCategory(i)
	}
	return out
}
