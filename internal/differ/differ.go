// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package differ produces the full set of AnalyzedChanges between two
// ModuleSnapshots: a per-name scan of the old scope against the new one,
// additions found by the inverse scan, a fast path for symbols whose
// normalized signature hasn't moved at all, and rename detection over
// the leftovers. Symbols present on both sides with differing signatures
// are classified down to parameter- and member-level categories.
package differ

import (
	"fmt"
	"go/types"
	"sort"
	"strings"

	"github.com/go-apidiff/apidiff"
	"github.com/go-apidiff/apidiff/internal/signature"
	"github.com/go-apidiff/apidiff/internal/typecap"
)

// Compare produces every AnalyzedChange between oldSnap and newSnap, in a
// deterministic order (sorted by SymbolName; changes for the same symbol
// keep the order in which they were produced). The returned error slice collects oracle
// failures; the current subtype oracle (internal/typecap.IsSubtype) is a
// total function over go/types values and cannot itself fail, so in
// practice it is always empty; it exists so a future oracle has
// somewhere to report into without changing this signature.
func Compare(oldSnap, newSnap *apidiff.ModuleSnapshot) ([]apidiff.AnalyzedChange, []string) {
	var changes []apidiff.AnalyzedChange
	var errs []string

	var removedCandidates, addedCandidates []string
	for _, n := range oldSnap.SortedNames() {
		if _, ok := newSnap.Symbols[n]; !ok {
			removedCandidates = append(removedCandidates, n)
			continue
		}
		compareSymbol(oldSnap, newSnap, n, &changes)
	}
	for _, n := range newSnap.SortedNames() {
		if _, ok := oldSnap.Symbols[n]; !ok {
			addedCandidates = append(addedCandidates, n)
		}
	}

	// Rename detection: an old name that vanished and a new name that
	// appeared, sharing both kind and normalized signature, are reported
	// as one rename rather than a removal paired with an unrelated
	// addition. A secondary (kind, signature) index over both leftover
	// sets makes ambiguity explicit: a pairing is made only when the key
	// is unique on both sides, since guessing across multiple candidates
	// would be unsound.
	oldBySig := map[sigKey][]string{}
	for _, on := range removedCandidates {
		k := keyOf(oldSnap.Symbols[on])
		oldBySig[k] = append(oldBySig[k], on)
	}
	newBySig := map[sigKey][]string{}
	for _, nn := range addedCandidates {
		k := keyOf(newSnap.Symbols[nn])
		newBySig[k] = append(newBySig[k], nn)
	}

	renamedOld := map[string]bool{}
	renamedNew := map[string]bool{}
	for _, on := range removedCandidates {
		k := keyOf(oldSnap.Symbols[on])
		if len(oldBySig[k]) != 1 || len(newBySig[k]) != 1 {
			continue
		}
		nn := newBySig[k][0]
		oldSym := oldSnap.Symbols[on]
		newSym := newSnap.Symbols[nn]
		changes = append(changes, apidiff.AnalyzedChange{
			SymbolName:  nn,
			SymbolKind:  newSym.Kind,
			Category:    apidiff.CategoryFieldRenamed,
			Explanation: fmt.Sprintf("%s renamed to %s with an identical signature", on, nn),
			Before:      oldSym.Signature,
			HasBefore:   true,
			After:       newSym.Signature,
			HasAfter:    true,
		})
		renamedOld[on] = true
		renamedNew[nn] = true
	}

	for _, on := range removedCandidates {
		if renamedOld[on] {
			continue
		}
		oldSym := oldSnap.Symbols[on]
		changes = append(changes, apidiff.AnalyzedChange{
			SymbolName: on, SymbolKind: oldSym.Kind,
			Category: apidiff.CategorySymbolRemoved, Explanation: "removed",
			Before: oldSym.Signature, HasBefore: true,
		})
	}
	for _, nn := range addedCandidates {
		if renamedNew[nn] {
			continue
		}
		newSym := newSnap.Symbols[nn]
		changes = append(changes, apidiff.AnalyzedChange{
			SymbolName: nn, SymbolKind: newSym.Kind,
			Category: apidiff.CategorySymbolAdded, Explanation: "added",
			After: newSym.Signature, HasAfter: true,
		})
	}

	sort.SliceStable(changes, func(i, j int) bool { return changes[i].SymbolName < changes[j].SymbolName })
	return changes, errs
}

// sigKey indexes leftover symbols for rename detection.
type sigKey struct {
	kind apidiff.SymbolKind
	sig  string
}

func keyOf(sym apidiff.ExportedSymbol) sigKey {
	return sigKey{kind: sym.Kind, sig: sym.Signature}
}

func compareSymbol(oldSnap, newSnap *apidiff.ModuleSnapshot, name string, out *[]apidiff.AnalyzedChange) {
	oldSym := oldSnap.Symbols[name]
	newSym := newSnap.Symbols[name]

	metadataChanges(name, oldSym, newSym, out)

	if oldSym.Kind != newSym.Kind {
		*out = append(*out, apidiff.AnalyzedChange{
			SymbolName: name, SymbolKind: oldSym.Kind,
			Category:    apidiff.CategorySymbolRemoved,
			Explanation: fmt.Sprintf("kind changed from %s to %s", oldSym.Kind, newSym.Kind),
			Before:      oldSym.Signature, HasBefore: true,
		})
		*out = append(*out, apidiff.AnalyzedChange{
			SymbolName: name, SymbolKind: newSym.Kind,
			Category:    apidiff.CategorySymbolAdded,
			Explanation: fmt.Sprintf("kind changed from %s to %s", oldSym.Kind, newSym.Kind),
			After:       newSym.Signature, HasAfter: true,
		})
		return
	}

	if oldSym.Signature == newSym.Signature {
		*out = append(*out, apidiff.AnalyzedChange{
			SymbolName: name, SymbolKind: oldSym.Kind,
			Category: apidiff.CategorySignatureIdentical, Explanation: "signature unchanged",
			Before: oldSym.Signature, HasBefore: true, After: newSym.Signature, HasAfter: true,
		})
		return
	}

	oldObj, _ := typecap.Object(oldSnap.TypeHandles[name])
	newObj, _ := typecap.Object(newSnap.TypeHandles[name])
	if oldObj == nil || newObj == nil {
		*out = append(*out, genericSigChange(name, oldSym, newSym))
		return
	}

	switch oldSym.Kind {
	case apidiff.KindFunction:
		diffFunc(name, oldSym, newSym, oldObj, newObj, out)
	case apidiff.KindClass, apidiff.KindInterface, apidiff.KindTypeAlias:
		// A method-less struct type carries the type-alias kind but
		// still has a field set worth diffing member by member.
		diffMembers(name, oldSym, newSym, oldObj, newObj, out)
	case apidiff.KindEnum:
		*out = append(*out, diffEnum(name, oldSym, newSym))
	default:
		*out = append(*out, diffGeneric(name, oldSym, newSym, oldObj, newObj))
	}
}

// diffEnum compares two enum signatures by member set: a pure member
// addition widens the type (every old value is still a value), while a
// removal or a changed constant value narrows it.
func diffEnum(name string, oldSym, newSym apidiff.ExportedSymbol) apidiff.AnalyzedChange {
	change := genericSigChange(name, oldSym, newSym)
	change.Category = apidiff.CategoryTypeNarrowed
	oldMembers := enumMemberValues(oldSym.Signature)
	newMembers := enumMemberValues(newSym.Signature)
	widened := len(newMembers) > len(oldMembers)
	for n, v := range oldMembers {
		if nv, ok := newMembers[n]; !ok || nv != v {
			widened = false
			break
		}
	}
	if widened {
		change.Category = apidiff.CategoryTypeWidened
	}
	return change
}

// enumMemberValues parses a normalized "const enum{A=1, B="x"}" signature
// back into its name->value pairs.
func enumMemberValues(sig string) map[string]string {
	start := strings.Index(sig, "{")
	end := strings.LastIndex(sig, "}")
	if start < 0 || end <= start {
		return nil
	}
	body := sig[start+1 : end]
	out := map[string]string{}
	if body == "" {
		return out
	}
	for _, part := range strings.Split(body, ", ") {
		n, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		out[n] = v
	}
	return out
}

func metadataChanges(name string, oldSym, newSym apidiff.ExportedSymbol, out *[]apidiff.AnalyzedChange) {
	om, nm := apidiff.SymbolMetadata{}, apidiff.SymbolMetadata{}
	if oldSym.HasMetadata {
		om = oldSym.Metadata
	}
	if newSym.HasMetadata {
		nm = newSym.Metadata
	}

	switch {
	case !om.IsDeprecated && nm.IsDeprecated:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryFieldDeprecated, "marked deprecated: "+nm.DeprecationMessage))
	case om.IsDeprecated && !nm.IsDeprecated:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryFieldUndeprecated, "deprecation notice removed"))
	}

	switch {
	case !om.HasDefaultValue && nm.HasDefaultValue:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryDefaultAdded, "default value added: "+nm.DefaultValue))
	case om.HasDefaultValue && !nm.HasDefaultValue:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryDefaultRemoved, "default value removed: "+om.DefaultValue))
	case om.HasDefaultValue && nm.HasDefaultValue && om.DefaultValue != nm.DefaultValue:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryDefaultChanged,
			fmt.Sprintf("default value changed from %s to %s", om.DefaultValue, nm.DefaultValue)))
	}
}

func mkChange(name string, kind apidiff.SymbolKind, cat apidiff.ChangeCategory, explanation string) apidiff.AnalyzedChange {
	return apidiff.AnalyzedChange{SymbolName: name, SymbolKind: kind, Category: cat, Explanation: explanation}
}

func genericSigChange(name string, oldSym, newSym apidiff.ExportedSymbol) apidiff.AnalyzedChange {
	return apidiff.AnalyzedChange{
		SymbolName: name, SymbolKind: oldSym.Kind,
		Category: apidiff.CategoryReturnTypeChanged, Explanation: "signature changed",
		Before: oldSym.Signature, HasBefore: true, After: newSym.Signature, HasAfter: true,
	}
}

// diffGeneric handles the symbol kinds with no further internal
// structure this package inspects (namespace, plain variable/constant,
// and a type alias diffMembers cannot split into fields or methods;
// enums go through diffEnum instead): classify by widening vs. narrowing of the whole
// declared type, and fall back to type-narrowed (not
// return-type-changed, which is reserved for function-like symbols)
// when the oracle can't relate the two.
func diffGeneric(name string, oldSym, newSym apidiff.ExportedSymbol, oldObj, newObj types.Object) apidiff.AnalyzedChange {
	change := genericSigChange(name, oldSym, newSym)
	change.Category = apidiff.CategoryTypeNarrowed
	if typecap.IsSubtype(oldObj.Type(), newObj.Type()) {
		change.Category = apidiff.CategoryTypeWidened
	}
	return change
}

func asSignature(obj types.Object) (*types.Signature, bool) {
	switch o := obj.(type) {
	case *types.Func:
		return o.Type().(*types.Signature), true
	case *types.Var:
		if sig, ok := o.Type().Underlying().(*types.Signature); ok {
			return sig, true
		}
	}
	return nil, false
}

func tupleTypes(t *types.Tuple) []types.Type {
	if t == nil {
		return nil
	}
	out := make([]types.Type, t.Len())
	for i := range out {
		out[i] = t.At(i).Type()
	}
	return out
}

// sameType compares a type from the old snapshot with one from the new
// snapshot. The two live in independent type-checker universes, so
// go/types.Identical alone reports false for a named type even when
// both sides declare it identically; the normalized rendering breaks
// that tie.
func sameType(a, b types.Type) bool {
	return types.Identical(a, b) || signature.Type(a) == signature.Type(b)
}

func sameOrder(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameType(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameMultiset(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, at := range a {
		found := false
		for j, bt := range b {
			if !used[j] && sameType(at, bt) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func prefixIdentical(short, long []types.Type) bool {
	if len(short) > len(long) {
		return false
	}
	for i := range short {
		if !sameType(short[i], long[i]) {
			return false
		}
	}
	return true
}

// computeMoves reconstructs the permutation behind a detected reorder.
// Candidate positions must carry the same type; among those, the old
// parameter goes to the new position whose name it most resembles,
// judged by edit distance over lowercased names so a case-only rename
// counts as the same identifier.
func computeMoves(oldSig, newSig *types.Signature) []apidiff.ParamMove {
	op, np := oldSig.Params(), newSig.Params()
	used := make([]bool, np.Len())
	var moves []apidiff.ParamMove
	for i := 0; i < op.Len(); i++ {
		ov := op.At(i)
		best := -1
		bestDist := 0
		for j := 0; j < np.Len(); j++ {
			if used[j] || !sameType(ov.Type(), np.At(j).Type()) {
				continue
			}
			d := nameDistance(ov.Name(), np.At(j).Name())
			if best < 0 || d < bestDist {
				best, bestDist = j, d
			}
		}
		if best < 0 {
			continue
		}
		used[best] = true
		if i != best {
			moves = append(moves, apidiff.ParamMove{
				OldName: ov.Name(), OldIndex: i, NewIndex: best,
			})
		}
	}
	return moves
}

func nameDistance(a, b string) int {
	return editDistance(strings.ToLower(a), strings.ToLower(b))
}

// editDistance is the Levenshtein distance between a and b, computed
// over bytes with a single rolling row; parameter names are short
// ASCII identifiers in practice.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur := prev[0]
		prev[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			min := prev[j] + 1
			if prev[j-1]+1 < min {
				min = prev[j-1] + 1
			}
			if cur+cost < min {
				min = cur + cost
			}
			cur, prev[j] = prev[j], min
		}
	}
	return prev[len(b)]
}

// diffFunc classifies a structural change to a function-kind symbol by
// comparing its parameter list positionally: a clean prefix extension is
// a parameter addition, a clean prefix truncation is a removal, an exact
// permutation of the same types is a reorder, a per-position type change
// is judged by the subtype oracle, and an unchanged parameter list with
// a different result goes to diffReturn, which reports a single result
// the oracle can relate as type-widened or type-narrowed and anything
// else as a return-type change.
func diffFunc(name string, oldSym, newSym apidiff.ExportedSymbol, oldObj, newObj types.Object, out *[]apidiff.AnalyzedChange) {
	oldSig, ok1 := asSignature(oldObj)
	newSig, ok2 := asSignature(newObj)
	if !ok1 || !ok2 {
		*out = append(*out, genericSigChange(name, oldSym, newSym))
		return
	}

	oldParams := tupleTypes(oldSig.Params())
	newParams := tupleTypes(newSig.Params())

	if len(oldParams) == len(newParams) {
		if sameOrder(oldParams, newParams) {
			diffReturn(name, oldSym, newSym, oldSig, newSig, out)
			return
		}
		if sameMultiset(oldParams, newParams) {
			*out = append(*out, apidiff.AnalyzedChange{
				SymbolName: name, SymbolKind: oldSym.Kind,
				Category: apidiff.CategoryParamOrderChanged, Explanation: "parameter order changed",
				Before: oldSym.Signature, HasBefore: true, After: newSym.Signature, HasAfter: true,
				Details: &apidiff.ParamReorder{Moves: computeMoves(oldSig, newSig)},
			})
			return
		}
		// Same arity, at least one parameter retyped in place. The whole
		// change narrows if any position narrows; it widens only when
		// every retyped position widens.
		category := apidiff.CategoryTypeWidened
		for i := range oldParams {
			if sameType(oldParams[i], newParams[i]) {
				continue
			}
			if !typecap.IsSubtype(oldParams[i], newParams[i]) {
				category = apidiff.CategoryTypeNarrowed
				break
			}
		}
		*out = append(*out, apidiff.AnalyzedChange{
			SymbolName: name, SymbolKind: oldSym.Kind,
			Category: category, Explanation: "parameter type changed",
			Before: oldSym.Signature, HasBefore: true, After: newSym.Signature, HasAfter: true,
		})
		return
	}

	if len(newParams) > len(oldParams) && prefixIdentical(oldParams, newParams) {
		added := len(newParams) - len(oldParams)
		category := apidiff.CategoryParamAddedRequired
		if addedParamsOptional(newSig, newParams, len(oldParams)) {
			category = apidiff.CategoryParamAddedOptional
		}
		*out = append(*out, apidiff.AnalyzedChange{
			SymbolName: name, SymbolKind: oldSym.Kind,
			Category: category, Explanation: fmt.Sprintf("%d parameter(s) added", added),
			Before: oldSym.Signature, HasBefore: true, After: newSym.Signature, HasAfter: true,
		})
		return
	}

	if len(oldParams) > len(newParams) && prefixIdentical(newParams, oldParams) {
		*out = append(*out, apidiff.AnalyzedChange{
			SymbolName: name, SymbolKind: oldSym.Kind,
			Category: apidiff.CategoryParamRemoved, Explanation: fmt.Sprintf("%d parameter(s) removed", len(oldParams)-len(newParams)),
			Before: oldSym.Signature, HasBefore: true, After: newSym.Signature, HasAfter: true,
		})
		return
	}

	*out = append(*out, genericSigChange(name, oldSym, newSym))
}

// addedParamsOptional reports whether every parameter appended past
// index from can be omitted by existing callers. Only the trailing
// variadic slot qualifies: unlike an optional struct field, a pointer
// parameter still has to appear at the call site.
func addedParamsOptional(newSig *types.Signature, newParams []types.Type, from int) bool {
	return newSig.Variadic() && from == len(newParams)-1
}

func diffReturn(name string, oldSym, newSym apidiff.ExportedSymbol, oldSig, newSig *types.Signature, out *[]apidiff.AnalyzedChange) {
	if oldSig.Results().Len() == 1 && newSig.Results().Len() == 1 {
		ot := oldSig.Results().At(0).Type()
		nt := newSig.Results().At(0).Type()
		if sameType(ot, nt) {
			*out = append(*out, genericSigChange(name, oldSym, newSym))
			return
		}
		category := apidiff.CategoryReturnTypeChanged
		if typecap.IsSubtype(ot, nt) {
			category = apidiff.CategoryTypeWidened
		} else if typecap.IsSubtype(nt, ot) {
			category = apidiff.CategoryTypeNarrowed
		}
		*out = append(*out, apidiff.AnalyzedChange{
			SymbolName: name, SymbolKind: oldSym.Kind,
			Category: category, Explanation: "return type changed",
			Before: oldSym.Signature, HasBefore: true, After: newSym.Signature, HasAfter: true,
		})
		return
	}
	*out = append(*out, genericSigChange(name, oldSym, newSym))
}

// diffMembers handles class, interface, and struct-backed alias symbols
// by comparing their exported field or method sets by name. Anything it
// can't explain structurally (e.g. a change to an unexported member, or
// a type-parameter-only edit) falls back to one whole-type widen/narrow
// judgment so the information is never silently dropped.
func diffMembers(name string, oldSym, newSym apidiff.ExportedSymbol, oldObj, newObj types.Object, out *[]apidiff.AnalyzedChange) {
	oldTN, ok1 := oldObj.(*types.TypeName)
	newTN, ok2 := newObj.(*types.TypeName)
	if !ok1 || !ok2 {
		*out = append(*out, diffGeneric(name, oldSym, newSym, oldObj, newObj))
		return
	}
	oldNamed, ok1 := oldTN.Type().(*types.Named)
	newNamed, ok2 := newTN.Type().(*types.Named)
	if !ok1 || !ok2 {
		*out = append(*out, diffGeneric(name, oldSym, newSym, oldObj, newObj))
		return
	}

	switch oldU := oldNamed.Underlying().(type) {
	case *types.Struct:
		newU, ok := newNamed.Underlying().(*types.Struct)
		if ok && diffFields(name, oldSym, newSym, oldU, newU, out) {
			return
		}
	case *types.Interface:
		newU, ok := newNamed.Underlying().(*types.Interface)
		if ok && diffMethods(name, oldSym, newSym, oldU, newU, out) {
			return
		}
	}
	*out = append(*out, diffGeneric(name, oldSym, newSym, oldObj, newObj))
}

// diffFields classifies a struct's field-set change. The taxonomy has no
// member-added/member-removed tag, so a field gained or lost collapses
// onto the parent type itself as a whole-type widen/narrow judgment: a
// new field widens, a lost field narrows. A removal anywhere dominates
// an addition elsewhere, keeping the conservative direction.
func diffFields(name string, oldSym, newSym apidiff.ExportedSymbol, oldSt, newSt *types.Struct, out *[]apidiff.AnalyzedChange) bool {
	oldFields := map[string]*types.Var{}
	for i := 0; i < oldSt.NumFields(); i++ {
		if f := oldSt.Field(i); f.Exported() {
			oldFields[f.Name()] = f
		}
	}
	newFields := map[string]*types.Var{}
	for i := 0; i < newSt.NumFields(); i++ {
		if f := newSt.Field(i); f.Exported() {
			newFields[f.Name()] = f
		}
	}

	emitted := false
	var added, removed bool
	for _, fn := range unionSortedKeys(oldFields, newFields) {
		of, oOK := oldFields[fn]
		nf, nOK := newFields[fn]
		switch {
		case oOK && nOK:
			if changed := fieldDelta(name, oldSym.Kind, of.Type(), nf.Type()); changed != nil {
				*out = append(*out, *changed)
				emitted = true
			}
		case oOK && !nOK:
			removed = true
		case !oOK && nOK:
			added = true
		}
	}

	switch {
	case removed:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryTypeNarrowed, "one or more fields removed"))
		emitted = true
	case added:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryTypeWidened, "one or more fields added"))
		emitted = true
	}
	return emitted
}

// fieldDelta classifies a field present on both sides whose type changed.
// An optionality change is reported distinctly; otherwise the
// field-type delta is folded into T's own type-widened/type-narrowed
// judgment, falling back to type-narrowed (not return-type-changed,
// which is reserved for function-like symbols) when the oracle can't
// relate the two types.
func fieldDelta(name string, kind apidiff.SymbolKind, oldType, newType types.Type) *apidiff.AnalyzedChange {
	oOpt := signature.FieldOptional(oldType)
	nOpt := signature.FieldOptional(newType)
	if oOpt != nOpt {
		cat := apidiff.CategoryOptionalityTightened
		if nOpt {
			cat = apidiff.CategoryOptionalityLoosened
		}
		c := mkChange(name, kind, cat, "a field's optionality changed")
		return &c
	}
	if sameType(oldType, newType) {
		return nil
	}
	cat := apidiff.CategoryTypeNarrowed
	if typecap.IsSubtype(oldType, newType) {
		cat = apidiff.CategoryTypeWidened
	}
	c := mkChange(name, kind, cat, "a field's type changed")
	return &c
}

// diffMethods mirrors diffFields for an interface's method set: a method
// gained or lost collapses onto the interface itself as a whole-type
// widen/narrow judgment, removal dominating addition, since the taxonomy
// has no member-level add/remove tag.
func diffMethods(name string, oldSym, newSym apidiff.ExportedSymbol, oldIface, newIface *types.Interface, out *[]apidiff.AnalyzedChange) bool {
	oldMethods := map[string]*types.Func{}
	for i := 0; i < oldIface.NumMethods(); i++ {
		if m := oldIface.Method(i); m.Exported() {
			oldMethods[m.Name()] = m
		}
	}
	newMethods := map[string]*types.Func{}
	for i := 0; i < newIface.NumMethods(); i++ {
		if m := newIface.Method(i); m.Exported() {
			newMethods[m.Name()] = m
		}
	}

	emitted := false
	var added, removed bool
	for _, mn := range unionSortedKeysFunc(oldMethods, newMethods) {
		om, oOK := oldMethods[mn]
		nm, nOK := newMethods[mn]
		switch {
		case oOK && nOK:
			if !sameType(om.Type(), nm.Type()) {
				cat := apidiff.CategoryTypeNarrowed
				if typecap.IsSubtype(om.Type(), nm.Type()) {
					cat = apidiff.CategoryTypeWidened
				}
				*out = append(*out, mkChange(name, oldSym.Kind, cat, "a method's signature changed"))
				emitted = true
			}
		case oOK && !nOK:
			removed = true
		case !oOK && nOK:
			added = true
		}
	}

	switch {
	case removed:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryTypeNarrowed, "one or more methods removed"))
		emitted = true
	case added:
		*out = append(*out, mkChange(name, oldSym.Kind, apidiff.CategoryTypeWidened, "one or more methods added"))
		emitted = true
	}
	return emitted
}

func unionSortedKeys(a, b map[string]*types.Var) []string {
	set := map[string]bool{}
	for k := range a {
		set[k] = true
	}
	for k := range b {
		set[k] = true
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func unionSortedKeysFunc(a, b map[string]*types.Func) []string {
	set := map[string]bool{}
	for k := range a {
		set[k] = true
	}
	for k := range b {
		set[k] = true
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
