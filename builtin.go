// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

import "fmt"

// policyTable is a total mapping from ChangeCategory to ReleaseType. Each
// built-in policy is exactly one of these, wrapped with a name.
type policyTable map[ChangeCategory]ReleaseType

type tablePolicy struct {
	name string
	t    policyTable
}

func (p tablePolicy) Name() string { return p.name }

func (p tablePolicy) Classify(change AnalyzedChange, _ PolicyContext) ReleaseType {
	rt, ok := p.t[change.Category]
	if !ok {
		panic(fmt.Sprintf("policy %s: no mapping for category %s", p.name, change.Category))
	}
	return rt
}

// defaultTable, readOnlyTable, writeOnlyTable differ only where the
// read- vs. write-side effect of a change diverges: type widening and
// narrowing, parameter addition and removal, optionality transitions,
// and default-value removal.
var defaultTable = policyTable{
	CategorySymbolRemoved:        ReleaseMajor,
	CategorySymbolAdded:          ReleaseMinor,
	CategoryTypeNarrowed:         ReleaseMajor,
	CategoryTypeWidened:          ReleaseMinor,
	CategoryParamAddedRequired:   ReleaseMajor,
	CategoryParamAddedOptional:   ReleaseMinor,
	CategoryParamRemoved:         ReleaseMajor,
	CategoryParamOrderChanged:    ReleaseMajor,
	CategoryReturnTypeChanged:    ReleaseMajor,
	CategorySignatureIdentical:   ReleaseNone,
	CategoryFieldDeprecated:      ReleasePatch,
	CategoryFieldUndeprecated:    ReleaseMinor,
	CategoryFieldRenamed:         ReleaseMajor,
	CategoryDefaultAdded:         ReleasePatch,
	CategoryDefaultRemoved:       ReleaseMinor,
	CategoryDefaultChanged:       ReleasePatch,
	CategoryOptionalityLoosened:  ReleaseMajor,
	CategoryOptionalityTightened: ReleaseMajor,
}

var readOnlyTable = policyTable{
	CategorySymbolRemoved:        ReleaseMajor,
	CategorySymbolAdded:          ReleaseMinor,
	CategoryTypeNarrowed:         ReleaseMajor,
	CategoryTypeWidened:          ReleaseMinor,
	CategoryParamAddedRequired:   ReleaseMinor,
	CategoryParamAddedOptional:   ReleaseMinor,
	CategoryParamRemoved:         ReleaseMajor,
	CategoryParamOrderChanged:    ReleaseMajor,
	CategoryReturnTypeChanged:    ReleaseMajor,
	CategorySignatureIdentical:   ReleaseNone,
	CategoryFieldDeprecated:      ReleasePatch,
	CategoryFieldUndeprecated:    ReleaseMinor,
	CategoryFieldRenamed:         ReleaseMajor,
	CategoryDefaultAdded:         ReleasePatch,
	CategoryDefaultRemoved:       ReleaseMinor,
	CategoryDefaultChanged:       ReleasePatch,
	CategoryOptionalityLoosened:  ReleaseMajor,
	CategoryOptionalityTightened: ReleaseMinor,
}

var writeOnlyTable = policyTable{
	CategorySymbolRemoved:        ReleaseMajor,
	CategorySymbolAdded:          ReleaseMinor,
	CategoryTypeNarrowed:         ReleaseMinor,
	CategoryTypeWidened:          ReleaseMajor,
	CategoryParamAddedRequired:   ReleaseMajor,
	CategoryParamAddedOptional:   ReleaseMinor,
	CategoryParamRemoved:         ReleaseMinor,
	CategoryParamOrderChanged:    ReleaseMajor,
	CategoryReturnTypeChanged:    ReleaseMajor,
	CategorySignatureIdentical:   ReleaseNone,
	CategoryFieldDeprecated:      ReleasePatch,
	CategoryFieldUndeprecated:    ReleaseMinor,
	CategoryFieldRenamed:         ReleaseMajor,
	CategoryDefaultAdded:         ReleasePatch,
	CategoryDefaultRemoved:       ReleaseMajor,
	CategoryDefaultChanged:       ReleasePatch,
	CategoryOptionalityLoosened:  ReleaseMinor,
	CategoryOptionalityTightened: ReleaseMajor,
}

// DefaultPolicy takes the more severe of the read-only and write-only
// classifications for most categories; type-widened and default-removed
// are the exceptions, where it follows the read-only (minor) side.
// It is the policy Compare uses when CompareOptions.Policy is nil.
var DefaultPolicy Policy = tablePolicy{name: "default", t: defaultTable}

// ReadOnlyPolicy weighs changes from the perspective of a consumer that
// only calls into the API (never implements an interface or constructs a
// value of the changed type), so e.g. a widened parameter type is minor,
// not major: existing call sites still compile.
var ReadOnlyPolicy Policy = tablePolicy{name: "read-only", t: readOnlyTable}

// WriteOnlyPolicy weighs changes from the perspective of a consumer that
// implements or constructs values of the API's types, inverting several
// of ReadOnlyPolicy's calls.
var WriteOnlyPolicy Policy = tablePolicy{name: "write-only", t: writeOnlyTable}

// PolicyByName resolves one of the three built-ins by its Name(), for CLI
// flag parsing and policy-override-file bases. It returns (nil, false)
// for an unrecognized name.
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case "default", "":
		return DefaultPolicy, true
	case "read-only":
		return ReadOnlyPolicy, true
	case "write-only":
		return WriteOnlyPolicy, true
	default:
		return nil, false
	}
}

func defaultPolicy() Policy { return DefaultPolicy }
