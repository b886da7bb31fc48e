// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/go-apidiff/apidiff"
)

func TestNextVersion(t *testing.T) {
	cases := []struct {
		name    string
		current string
		rt      apidiff.ReleaseType
		want    string
		wantErr bool
	}{
		{name: "major bump", current: "1.2.3", rt: apidiff.ReleaseMajor, want: "2.0.0"},
		{name: "minor bump", current: "1.2.3", rt: apidiff.ReleaseMinor, want: "1.3.0"},
		{name: "patch bump", current: "1.2.3", rt: apidiff.ReleasePatch, want: "1.2.4"},
		{name: "none keeps current", current: "1.2.3", rt: apidiff.ReleaseNone, want: "1.2.3"},
		{name: "v prefix accepted", current: "v1.2.3", rt: apidiff.ReleaseMinor, want: "1.3.0"},
		{name: "pre-1.0 major bumps minor", current: "0.4.7", rt: apidiff.ReleaseMajor, want: "0.5.0"},
		{name: "pre-1.0 minor", current: "0.4.7", rt: apidiff.ReleaseMinor, want: "0.5.0"},
		{name: "pre-1.0 patch", current: "0.4.7", rt: apidiff.ReleasePatch, want: "0.4.8"},
		{name: "prerelease suffix dropped", current: "1.2.3-rc.1", rt: apidiff.ReleasePatch, want: "1.2.4"},
		{name: "forbidden has no next version", current: "1.2.3", rt: apidiff.ReleaseForbidden, wantErr: true},
		{name: "not a version", current: "banana", rt: apidiff.ReleasePatch, wantErr: true},
		{name: "two-component shorthand", current: "1.2", rt: apidiff.ReleasePatch, want: "1.2.1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := nextVersion(c.current, c.rt)
			if c.wantErr {
				if err == nil {
					t.Fatalf("nextVersion(%q, %s) = %q, want error", c.current, c.rt, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("nextVersion(%q, %s): %v", c.current, c.rt, err)
			}
			if got != c.want {
				t.Errorf("nextVersion(%q, %s) = %q, want %q", c.current, c.rt, got, c.want)
			}
		})
	}
}

func TestParseTriple(t *testing.T) {
	major, minor, patch, err := parseTriple("v1.22.333")
	if err != nil {
		t.Fatalf("parseTriple: %v", err)
	}
	if major != 1 || minor != 22 || patch != 333 {
		t.Errorf("parseTriple(v1.22.333) = %d.%d.%d", major, minor, patch)
	}

	if _, _, _, err := parseTriple("v1.2"); err == nil {
		t.Error("parseTriple should reject a non-canonical two-component version")
	}
}
