// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

import (
	"github.com/go-apidiff/apidiff/internal/classifier"
	"github.com/go-apidiff/apidiff/internal/differ"
	"github.com/go-apidiff/apidiff/internal/parser"
)

// CompareOptions is Compare's argument struct. OldSource and NewSource
// are required; every other field has a documented default applied by
// Compare.
type CompareOptions struct {
	OldSource string
	NewSource string

	// OldFilename, NewFilename default to "old.go" and "new.go". They
	// only affect diagnostics and the report header.
	OldFilename string
	NewFilename string

	// Policy defaults to the built-in default policy when nil.
	Policy Policy

	// LibraryFileResolver is optional; when nil, imports in OldSource or
	// NewSource fail to resolve, each failure is reported as a parse-error
	// warning rather than aborting, and the symbols that reference them
	// are still compared with the unresolved types left invalid.
	LibraryFileResolver LibraryFileResolver
}

// Compare is the core's sole public entry point: a pure function from two
// declaration-source strings (plus options) to a Report. It performs no
// I/O beyond what LibraryFileResolver, if supplied, chooses to do, and it
// never fails for source that can be tokenized.
func Compare(opts CompareOptions) *Report {
	oldFilename := opts.OldFilename
	if oldFilename == "" {
		oldFilename = "old.go"
	}
	newFilename := opts.NewFilename
	if newFilename == "" {
		newFilename = "new.go"
	}
	pol := opts.Policy
	if pol == nil {
		pol = defaultPolicy()
	}

	oldSnap := parser.Parse(opts.OldSource, oldFilename, opts.LibraryFileResolver)
	newSnap := parser.Parse(opts.NewSource, newFilename, opts.LibraryFileResolver)

	changes, diffErrs := differ.Compare(oldSnap, newSnap)

	report := classifier.Classify(changes, pol, oldSnap, newSnap, oldFilename, newFilename)
	report.Warnings = append(report.Warnings, diffErrs...)
	return report
}
