// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classifier applies a Policy to every AnalyzedChange the
// differ produced, groups the results by impact bucket, and folds them
// into one overall ReleaseType and a set of summary statistics.
package classifier

import "github.com/go-apidiff/apidiff"

// Classify turns changes into a Report by applying policy to each one
// in order, passing a PolicyContext that carries the full change
// sequence and the named symbol's old/new metadata.
func Classify(changes []apidiff.AnalyzedChange, pol apidiff.Policy, oldSnap, newSnap *apidiff.ModuleSnapshot, oldFile, newFile string) *apidiff.Report {
	report := &apidiff.Report{
		ReleaseType:     apidiff.ReleaseNone,
		ChangesByImpact: map[apidiff.Bucket][]apidiff.Change{},
		OldFile:         oldFile,
		NewFile:         newFile,
	}
	if oldSnap != nil {
		report.Stats.TotalOld = len(oldSnap.Symbols)
	}
	if newSnap != nil {
		report.Stats.TotalNew = len(newSnap.Symbols)
	}

	for i, ac := range changes {
		ctx := apidiff.PolicyContext{
			AllChanges: changes,
			Index:      i,
		}
		if oldSnap != nil {
			if sym, ok := oldSnap.Symbols[ac.SymbolName]; ok && sym.HasMetadata {
				ctx.OldMetadata = sym.Metadata
			}
		}
		if newSnap != nil {
			if sym, ok := newSnap.Symbols[ac.SymbolName]; ok && sym.HasMetadata {
				ctx.NewMetadata = sym.Metadata
			}
		}

		rt := pol.Classify(ac, ctx)
		change := apidiff.Change{AnalyzedChange: ac, ReleaseType: rt}

		bucket := apidiff.BucketOf(rt)
		report.ChangesByImpact[bucket] = append(report.ChangesByImpact[bucket], change)

		if rt > report.ReleaseType {
			report.ReleaseType = rt
		}

		switch ac.Category {
		case apidiff.CategorySymbolAdded:
			report.Stats.Added++
		case apidiff.CategorySymbolRemoved:
			report.Stats.Removed++
		case apidiff.CategorySignatureIdentical:
			report.Stats.Unchanged++
		default:
			report.Stats.Modified++
		}
	}

	if oldSnap != nil {
		report.Warnings = append(report.Warnings, oldSnap.ParseErrors...)
	}
	if newSnap != nil {
		report.Warnings = append(report.Warnings, newSnap.ParseErrors...)
	}

	return report
}
