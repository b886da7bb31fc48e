// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signature turns a resolved declaration into a deterministic,
// comparison-stable string: members sorted, generic parameters
// alpha-renamed, parameter names erased, structural types expanded.
// Two declarations differing only in formatting, parameter names, type
// parameter names, or member order render to the same string.
package signature

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// memberCollator sorts interface/class/namespace members and union
// constituents with a Unicode-aware deterministic order rather than a
// byte-wise comparison, so a signature stays stable across identifier
// sets that mix scripts. A single language-neutral collator is shared
// across calls; a Collator keeps internal sort buffers, so memberMu
// serializes its use when comparisons run concurrently.
var (
	memberCollator = collate.New(language.Und)
	memberMu       sync.Mutex
)

func sortMembers(ss []string) {
	memberMu.Lock()
	defer memberMu.Unlock()
	memberCollator.SortStrings(ss)
}

// renamer maps a declaration's own *types.TypeParam objects to their
// alpha-normalized T0, T1, ... names, in declaration order.
type renamer struct {
	names map[*types.TypeParam]string
}

func newRenamer(tparams *types.TypeParamList) *renamer {
	r := &renamer{names: map[*types.TypeParam]string{}}
	if tparams == nil {
		return r
	}
	for i := 0; i < tparams.Len(); i++ {
		r.names[tparams.At(i)] = fmt.Sprintf("T%d", i)
	}
	return r
}

func (r *renamer) nameOf(tp *types.TypeParam) (string, bool) {
	n, ok := r.names[tp]
	return n, ok
}

// Func renders a package-level function's normalized signature, whether
// backed by a *types.Func or a function-typed *types.Var.
func Func(sig *types.Signature, typeParams *ast.FieldList) string {
	_ = typeParams // reserved for callers that want to cross-check arity against the AST form.
	return funcSig(sig, nil)
}

// methodSig renders a method's signature in the context of its receiver's
// type parameters: Go methods never declare type parameters of their own,
// so every T-name a method signature refers to resolves through the
// receiver's renamer, outer, not a fresh one.
func methodSig(sig *types.Signature, outer *renamer) string {
	return funcSig(sig, outer)
}

func funcSig(sig *types.Signature, outer *renamer) string {
	r := outer
	if tp := sig.TypeParams(); r == nil || (tp != nil && tp.Len() > 0) {
		r = newRenamer(sig.TypeParams())
	}

	var b strings.Builder
	if tp := sig.TypeParams(); tp != nil && tp.Len() > 0 {
		b.WriteString("[")
		for i := 0; i < tp.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			name, _ := r.nameOf(tp.At(i))
			b.WriteString(name)
			b.WriteString(" ")
			b.WriteString(typeString(tp.At(i).Constraint(), r))
		}
		b.WriteString("]")
	}
	b.WriteString("(")
	b.WriteString(paramList(sig.Params(), sig.Variadic(), r))
	b.WriteString(")")
	b.WriteString(resultList(sig.Results(), r))
	return b.String()
}

// paramList erases parameter names to arg0, arg1, ... while preserving
// the variadic marker on the final parameter.
func paramList(params *types.Tuple, variadic bool, r *renamer) string {
	var parts []string
	n := params.Len()
	for i := 0; i < n; i++ {
		t := params.At(i).Type()
		prefix := ""
		if variadic && i == n-1 {
			if sl, ok := t.(*types.Slice); ok {
				prefix = "..."
				t = sl.Elem()
			}
		}
		parts = append(parts, fmt.Sprintf("arg%d %s%s", i, prefix, typeString(t, r)))
	}
	return strings.Join(parts, ", ")
}

func resultList(results *types.Tuple, r *renamer) string {
	n := results.Len()
	if n == 0 {
		return ""
	}
	if n == 1 {
		return " " + typeString(results.At(0).Type(), r)
	}
	var parts []string
	for i := 0; i < n; i++ {
		parts = append(parts, typeString(results.At(i).Type(), r))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// Interface renders an interface's full, flattened method set (including
// methods contributed by embedding) plus any non-method type-set terms,
// sorted.
func Interface(named *types.Named, iface *types.Interface) string {
	r := newRenamer(namedTypeParams(named))
	var parts []string

	n := iface.NumMethods()
	for i := 0; i < n; i++ {
		m := iface.Method(i)
		if !m.Exported() {
			continue
		}
		sig := m.Type().(*types.Signature)
		parts = append(parts, m.Name()+methodSig(sig, r))
	}
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		et := iface.EmbeddedType(i)
		if _, ok := et.(*types.Interface); ok {
			continue // already flattened into the method set above
		}
		parts = append(parts, typeString(et, r))
	}
	sortMembers(parts)
	return prefixGenerics(named, r) + "interface{" + strings.Join(parts, "; ") + "}"
}

// Class renders a struct's full exported member list (fields, with
// embedding and pointer-optionality preserved) plus its full promoted
// method set, sorted independently. Pointer-receiver methods carry a
// leading * so a receiver change shows up as a signature change.
func Class(named *types.Named, methodSet *types.MethodSet) string {
	r := newRenamer(namedTypeParams(named))
	st := named.Underlying().(*types.Struct)

	var fields []string
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		fields = append(fields, fmt.Sprintf("%s %s", f.Name(), typeString(f.Type(), r)))
	}
	sortMembers(fields)

	var methods []string
	for i := 0; i < methodSet.Len(); i++ {
		sel := methodSet.At(i)
		fn := sel.Obj().(*types.Func)
		if !fn.Exported() {
			continue
		}
		sig := fn.Type().(*types.Signature)
		recvPrefix := ""
		if _, isPtr := sig.Recv().Type().(*types.Pointer); isPtr {
			recvPrefix = "*"
		}
		methods = append(methods, fmt.Sprintf("(%s)%s%s", recvPrefix, fn.Name(), methodSig(sig, r)))
	}
	sortMembers(methods)

	return prefixGenerics(named, r) +
		"struct{" + strings.Join(fields, "; ") + "}" +
		" methods{" + strings.Join(methods, "; ") + "}"
}

// Enum renders a named basic type's const group: the const modifier,
// every member name, and every constant value. String values are
// quoted, others bare.
func Enum(named *types.Named, members []*types.Const) string {
	names := make([]string, len(members))
	byName := map[string]*types.Const{}
	for i, c := range members {
		names[i] = c.Name()
		byName[c.Name()] = c
	}
	sortMembers(names)

	var parts []string
	for _, n := range names {
		c := byName[n]
		parts = append(parts, n+"="+constValueString(c))
	}
	return "const enum{" + strings.Join(parts, ", ") + "}"
}

func constValueString(c *types.Const) string {
	v := c.Val()
	if v.Kind() == constant.String {
		s, _ := strconv.Unquote(v.ExactString())
		return strconv.Quote(s)
	}
	return v.ExactString()
}

// TypeAlias renders a type-alias-kind symbol: a true alias to a named
// type is kept as a name reference; a defined type backed by a struct
// is expanded field-by-field like a lightweight object shape; anything
// else (basic, slice, array, map, union, ...) is printed via its full
// underlying shape.
func TypeAlias(tn *types.TypeName) string {
	r := newRenamer(nil)
	if named, ok := tn.Type().(*types.Named); ok {
		r = newRenamer(named.TypeParams())
	}

	if tn.IsAlias() {
		rhs := types.Unalias(tn.Type())
		if named, ok := rhs.(*types.Named); ok {
			return "= " + qualifiedName(named.Obj())
		}
		return "= " + typeString(rhs, r)
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return typeString(tn.Type(), r)
	}
	u := named.Underlying()
	if st, ok := u.(*types.Struct); ok {
		var fields []string
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if !f.Exported() {
				continue
			}
			fields = append(fields, fmt.Sprintf("%s %s", f.Name(), typeString(f.Type(), r)))
		}
		sortMembers(fields)
		return prefixGenerics(named, r) + "struct{" + strings.Join(fields, "; ") + "}"
	}
	return prefixGenerics(named, r) + typeString(u, r)
}

// Namespace renders a package-level var of anonymous struct type,
// recursively: nested anonymous-struct fields recurse as nested
// namespaces, everything else renders as "name: <member-signature>".
func Namespace(st *types.Struct) string {
	r := newRenamer(nil)
	var parts []string
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Exported() {
			continue
		}
		var member string
		switch ft := f.Type().(type) {
		case *types.Struct:
			member = Namespace(ft)
		case *types.Signature:
			member = "func" + Func(ft, nil)
		default:
			member = typeString(f.Type(), r)
		}
		parts = append(parts, f.Name()+": "+member)
	}
	sortMembers(parts)
	return "namespace{" + strings.Join(parts, "; ") + "}"
}

// Variable renders a plain variable or non-enum constant: its type, plus
// its value for constants, so a changed constant value never collapses
// to signature-identical.
func Variable(obj types.Object) string {
	r := newRenamer(nil)
	switch o := obj.(type) {
	case *types.Const:
		return typeString(o.Type(), r) + " = " + o.Val().ExactString()
	default:
		return typeString(obj.Type(), r)
	}
}

func namedTypeParams(named *types.Named) *types.TypeParamList {
	return named.TypeParams()
}

func prefixGenerics(named *types.Named, r *renamer) string {
	tp := named.TypeParams()
	if tp == nil || tp.Len() == 0 {
		return ""
	}
	var parts []string
	for i := 0; i < tp.Len(); i++ {
		name, _ := r.nameOf(tp.At(i))
		parts = append(parts, name+" "+typeString(tp.At(i).Constraint(), r))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func qualifiedName(obj types.Object) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Name() + "." + obj.Name()
}

// typeString is the recursive engine behind every exported renderer
// above: it prints a *reference* to a type as it occurs in a parameter,
// field, or return position: expanding anonymous composite shapes
// inline, but printing named types (other than the symbol's own, already
// being rendered) as name references rather than re-expanding their
// bodies, matching how a declaration file prints types it merely uses.
func typeString(t types.Type, r *renamer) string {
	switch tt := t.(type) {
	case *types.Basic:
		return tt.Name()
	case *types.TypeParam:
		if name, ok := r.nameOf(tt); ok {
			return name
		}
		// A method's receiver type parameters are distinct objects from
		// the named type's own list and never reach the renamer; their
		// position still gives them a stable normalized name.
		return fmt.Sprintf("T%d", tt.Index())
	case *types.Named:
		return namedRef(tt, r)
	case *types.Alias:
		return typeString(types.Unalias(tt), r)
	case *types.Pointer:
		return "*" + typeString(tt.Elem(), r)
	case *types.Slice:
		return "[]" + typeString(tt.Elem(), r)
	case *types.Array:
		return fmt.Sprintf("[%d]%s", tt.Len(), typeString(tt.Elem(), r))
	case *types.Map:
		return "map[" + typeString(tt.Key(), r) + "]" + typeString(tt.Elem(), r)
	case *types.Chan:
		switch tt.Dir() {
		case types.SendOnly:
			return "chan<- " + typeString(tt.Elem(), r)
		case types.RecvOnly:
			return "<-chan " + typeString(tt.Elem(), r)
		default:
			return "chan " + typeString(tt.Elem(), r)
		}
	case *types.Signature:
		return "func" + funcSig(tt, r)
	case *types.Struct:
		var fields []string
		for i := 0; i < tt.NumFields(); i++ {
			f := tt.Field(i)
			fields = append(fields, f.Name()+" "+typeString(f.Type(), r))
		}
		sortMembers(fields)
		return "struct{" + strings.Join(fields, "; ") + "}"
	case *types.Interface:
		var parts []string
		for i := 0; i < tt.NumExplicitMethods(); i++ {
			m := tt.ExplicitMethod(i)
			parts = append(parts, m.Name()+methodSig(m.Type().(*types.Signature), r))
		}
		for i := 0; i < tt.NumEmbeddeds(); i++ {
			parts = append(parts, typeString(tt.EmbeddedType(i), r))
		}
		sortMembers(parts)
		return "interface{" + strings.Join(parts, "; ") + "}"
	case *types.Union:
		var terms []string
		for i := 0; i < tt.Len(); i++ {
			term := tt.Term(i)
			s := typeString(term.Type(), r)
			if term.Tilde() {
				s = "~" + s
			}
			terms = append(terms, s)
		}
		sortMembers(terms)
		return strings.Join(terms, "|")
	default:
		return t.String()
	}
}

func namedRef(named *types.Named, r *renamer) string {
	obj := named.Obj()
	name := qualifiedName(obj)
	if targs := named.TypeArgs(); targs != nil && targs.Len() > 0 {
		var parts []string
		for i := 0; i < targs.Len(); i++ {
			parts = append(parts, typeString(targs.At(i), r))
		}
		name += "[" + strings.Join(parts, ", ") + "]"
	}
	return name
}

// Type renders a single type reference in normalized form, outside any
// declaration's own type-parameter scope. The differ uses it to compare
// types that live in two independent type-checker universes, where
// go/types.Identical reports false for a named type even when both
// sides declare it identically.
func Type(t types.Type) string {
	return typeString(t, newRenamer(nil))
}

// FieldOptional reports whether a struct/interface field of type t is
// treated as optional for optionality-loosened / optionality-tightened
// classification. A pointer field, where nil means "absent", is the
// optional form this package recognizes.
func FieldOptional(t types.Type) bool {
	_, ok := t.(*types.Pointer)
	return ok
}

// IsExportedIdent reports whether name would be considered exported by
// Go's own visibility rule, used when filtering struct/interface members
// down to the exported surface.
func IsExportedIdent(name string) bool {
	return token.IsExported(name)
}
