// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typecap

import "go/types"

// numericRank orders the basic numeric kinds by representable range,
// within the four families Go's untyped-constant rules already group
// them into (signed integer, unsigned integer, float, complex). A lower
// rank is representable in a higher rank without loss, which is what
// the differ's "type-widened"/"type-narrowed" vocabulary means here: a
// parameter retyped
// from int32 to int64 doesn't reject anything an old caller could have
// passed via an untyped constant, so treating int32 as a strict subtype
// of int64 matches the spirit of widening even though Go itself requires
// an explicit conversion between them.
var numericRank = map[types.BasicKind]int{
	types.Int8: 1, types.Int16: 2, types.Int32: 3, types.Int64: 4, types.Int: 5,
	types.Uint8: 1, types.Uint16: 2, types.Uint32: 3, types.Uint64: 4, types.Uint: 5, types.Uintptr: 5,
	types.Float32: 1, types.Float64: 2,
	types.Complex64: 1, types.Complex128: 2,
}

func numericFamily(k types.BasicKind) int {
	switch {
	case k >= types.Int && k <= types.Int64, k == types.UntypedInt:
		return 1
	case k >= types.Uint && k <= types.Uintptr:
		return 2
	case k == types.Float32 || k == types.Float64, k == types.UntypedFloat:
		return 3
	case k == types.Complex64 || k == types.Complex128, k == types.UntypedComplex:
		return 4
	default:
		return 0
	}
}

// IsSubtype reports whether sub is a strict subtype of super: every value
// describable by sub is also describable by super, and the two types are
// not identical. It is the sole structural-question capability the
// differ delegates to the type-checker.
//
// The oracle answers in four ways, tried in order:
//  1. Basic numeric types in the same family: narrower range is a
//     subtype of wider range (see numericRank).
//  2. Interfaces: an interface requiring a superset of another's method
//     set is a subtype of it (fewer concrete types satisfy "more
//     methods", so it describes a narrower set of values), computed
//     with types.Implements.
//  3. Otherwise, types.AssignableTo(sub, super): a legal implicit
//     assignment from sub to super is treated as "sub's values are a
//     subset of super's".
//  4. Slices, equal-length arrays, pointers, and maps with identical
//     keys: sub is a subtype when its element type is identical to or a
//     subtype of super's.
//
// When none of these can answer (opaque/invalid types on either side),
// IsSubtype returns false, and the differ's documented fallback is to
// treat the pair as structurally unequal and classify conservatively.
func IsSubtype(sub, super types.Type) bool {
	if sub == nil || super == nil {
		return false
	}
	if types.Identical(sub, super) {
		return false
	}
	if isInvalid(sub) || isInvalid(super) {
		return false
	}

	if subBasic, ok := sub.Underlying().(*types.Basic); ok {
		if superBasic, ok := super.Underlying().(*types.Basic); ok {
			sf, ssf := numericFamily(subBasic.Kind()), numericFamily(superBasic.Kind())
			if sf != 0 && sf == ssf {
				return numericRank[subBasic.Kind()] < numericRank[superBasic.Kind()]
			}
		}
	}

	if superIface, ok := super.Underlying().(*types.Interface); ok {
		if _, ok := sub.Underlying().(*types.Interface); ok {
			// sub is a strict subtype of super when sub's method set is a
			// proper superset of super's: every super-conforming type
			// would also conform to sub's requirements would be false in
			// general, but the inverse (sub requires everything super
			// does, plus more) is exactly "narrower set of satisfying
			// types", which is the subtype direction this oracle reports.
			return types.Implements(sub, superIface)
		}
	}

	if types.AssignableTo(sub, super) {
		return true
	}

	// Recurse structurally on the common composite shapes so that, e.g.,
	// []int32 is reported as narrower than []int64 even though slice
	// types are never AssignableTo one another in Go.
	switch s := sub.Underlying().(type) {
	case *types.Slice:
		if sp, ok := super.Underlying().(*types.Slice); ok {
			return elemSubtypeOrIdentical(s.Elem(), sp.Elem())
		}
	case *types.Array:
		if sp, ok := super.Underlying().(*types.Array); ok && s.Len() == sp.Len() {
			return elemSubtypeOrIdentical(s.Elem(), sp.Elem())
		}
	case *types.Pointer:
		if sp, ok := super.Underlying().(*types.Pointer); ok {
			return elemSubtypeOrIdentical(s.Elem(), sp.Elem())
		}
	case *types.Map:
		if sp, ok := super.Underlying().(*types.Map); ok {
			return types.Identical(s.Key(), sp.Key()) && elemSubtypeOrIdentical(s.Elem(), sp.Elem())
		}
	}

	return false
}

func elemSubtypeOrIdentical(a, b types.Type) bool {
	return types.Identical(a, b) || IsSubtype(a, b)
}

func isInvalid(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.Invalid
}
