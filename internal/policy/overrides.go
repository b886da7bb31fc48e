// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package policy

import (
	"os"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/go-apidiff/apidiff"
)

// OverrideFile is the on-disk shape of a --policy-file document: a base
// built-in policy name plus a sparse remap of individual categories,
// letting a caller tune classifications without writing Go code.
type OverrideFile struct {
	Base      string            `yaml:"base"`
	Overrides map[string]string `yaml:"overrides"`
}

// categoryByName and releaseByName invert apidiff's String() methods so
// the YAML document can use the same lowercase, hyphenated vocabulary the
// rest of the system prints in reports.
func categoryByName(name string) (apidiff.ChangeCategory, bool) {
	for _, c := range apidiff.AllCategories() {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

func releaseByName(name string) (apidiff.ReleaseType, bool) {
	for _, r := range []apidiff.ReleaseType{
		apidiff.ReleaseForbidden, apidiff.ReleaseMajor, apidiff.ReleaseMinor,
		apidiff.ReleasePatch, apidiff.ReleaseNone,
	} {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}

// overridePolicy wraps a base Policy, consulting a sparse remap table
// before falling back to the base's own classification. An override may
// map a category to forbidden, vetoing any release that contains it,
// which none of the built-ins ever do on their own.
type overridePolicy struct {
	name  string
	base  apidiff.Policy
	extra map[apidiff.ChangeCategory]apidiff.ReleaseType
}

func (p *overridePolicy) Name() string { return p.name }

func (p *overridePolicy) Classify(change apidiff.AnalyzedChange, ctx apidiff.PolicyContext) apidiff.ReleaseType {
	if rt, ok := p.extra[change.Category]; ok {
		return rt
	}
	return p.base.Classify(change, ctx)
}

// LoadOverrides reads path as a YAML OverrideFile and returns a Policy
// that layers it on top of one of the three built-ins.
func LoadOverrides(path string) (apidiff.Policy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading policy file %q: %w", path, err)
	}
	var f OverrideFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, xerrors.Errorf("parsing policy file %q: %w", path, err)
	}
	base, ok := apidiff.PolicyByName(f.Base)
	if !ok {
		return nil, xerrors.Errorf("policy file %q: unknown base policy %q", path, f.Base)
	}
	extra := map[apidiff.ChangeCategory]apidiff.ReleaseType{}
	for catName, relName := range f.Overrides {
		cat, ok := categoryByName(catName)
		if !ok {
			return nil, xerrors.Errorf("policy file %q: unknown category %q", path, catName)
		}
		rel, ok := releaseByName(relName)
		if !ok {
			return nil, xerrors.Errorf("policy file %q: unknown release type %q", path, relName)
		}
		extra[cat] = rel
	}
	return &overridePolicy{
		name:  base.Name() + "+overrides(" + path + ")",
		base:  base,
		extra: extra,
	}, nil
}
