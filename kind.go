// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

// SymbolKind classifies the declaration form of an ExportedSymbol.
//
// Function covers funcs and function-typed vars, class covers structs
// with at least one method, enum covers named types backed by a const
// group, namespace covers vars of anonymous struct type, and type-alias
// is the catch-all for everything else named.
type SymbolKind int

const (
	KindFunction SymbolKind = iota
	KindClass
	KindInterface
	KindTypeAlias
	KindEnum
	KindNamespace
	KindVariable
)

func (k SymbolKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindTypeAlias:
		return "type-alias"
	case KindEnum:
		return "enum"
	case KindNamespace:
		return "namespace"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}
