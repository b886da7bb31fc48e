// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reporter renders a *apidiff.Report as text, markdown, or
// JSON. None of these formats feed back into the core's data model;
// they are pure presentation over Report, Change, and Stats.
package reporter

import (
	"encoding/json"

	"github.com/go-apidiff/apidiff"
)

// jsonChange and jsonReport give the JSON reporter stable, lower-case
// field names independent of the core's exported Go field names, so the
// wire shape doesn't change if Report's internal naming does.
type jsonChange struct {
	Symbol      string `json:"symbol"`
	Kind        string `json:"kind"`
	Category    string `json:"category"`
	ReleaseType string `json:"releaseType"`
	Explanation string `json:"explanation"`
	Before      string `json:"before,omitempty"`
	After       string `json:"after,omitempty"`
}

type jsonReport struct {
	ReportID    string                  `json:"reportId,omitempty"`
	ReleaseType string                  `json:"releaseType"`
	OldFile     string                  `json:"oldFile"`
	NewFile     string                  `json:"newFile"`
	Stats       apidiff.Stats           `json:"stats"`
	Changes     map[string][]jsonChange `json:"changesByImpact"`
	Warnings    []string                `json:"warnings,omitempty"`
}

func toJSONChange(c apidiff.Change) jsonChange {
	jc := jsonChange{
		Symbol:      c.SymbolName,
		Kind:        c.SymbolKind.String(),
		Category:    c.Category.String(),
		ReleaseType: c.ReleaseType.String(),
		Explanation: c.Explanation,
	}
	if c.HasBefore {
		jc.Before = c.Before
	}
	if c.HasAfter {
		jc.After = c.After
	}
	return jc
}

// JSON renders r as an indented JSON document. reportID is optional;
// pass "" to omit it.
func JSON(r *apidiff.Report, reportID string) ([]byte, error) {
	out := jsonReport{
		ReportID:    reportID,
		ReleaseType: r.ReleaseType.String(),
		OldFile:     r.OldFile,
		NewFile:     r.NewFile,
		Stats:       r.Stats,
		Changes:     map[string][]jsonChange{},
		Warnings:    r.Warnings,
	}
	for _, b := range []apidiff.Bucket{apidiff.BucketForbidden, apidiff.BucketBreaking, apidiff.BucketNonBreaking, apidiff.BucketUnchanged} {
		var bucket []jsonChange
		for _, c := range r.ChangesByImpact[b] {
			bucket = append(bucket, toJSONChange(c))
		}
		out.Changes[b.String()] = bucket
	}
	return json.MarshalIndent(out, "", "  ")
}
