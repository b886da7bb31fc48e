// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docmeta parses a symbol's leading documentation comment for
// @deprecated, @default / @defaultValue, and @enumType tags.
package docmeta

import (
	"go/ast"
	"strings"

	"github.com/go-apidiff/apidiff"
)

// Extract parses doc for the three recognized tags. A nil or empty doc
// comment yields a zero SymbolMetadata and ok=false; callers use ok to
// distinguish "no metadata" from metadata that happens to be all zero
// values. Unrecognized or malformed tags are ignored, never an error.
func Extract(doc *ast.CommentGroup) (apidiff.SymbolMetadata, bool) {
	if doc == nil {
		return apidiff.SymbolMetadata{}, false
	}
	var meta apidiff.SymbolMetadata
	found := false

	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "@") {
			continue
		}
		tag, rest, _ := strings.Cut(line[1:], " ")
		rest = strings.TrimSpace(rest)
		switch tag {
		case "deprecated":
			meta.IsDeprecated = true
			meta.DeprecationMessage = rest
			found = true
		case "default", "defaultValue":
			meta.HasDefaultValue = true
			meta.DefaultValue = rest
			found = true
		case "enumType":
			switch rest {
			case "open":
				meta.EnumType = apidiff.EnumTypeOpen
				found = true
			case "closed":
				meta.EnumType = apidiff.EnumTypeClosed
				found = true
			}
		}
	}
	return meta, found
}
