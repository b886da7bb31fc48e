// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

import (
	"os"
	"path/filepath"
)

// DirResolver returns a LibraryFileResolver that reads library files from
// files named name (and name+".go") under dir.
func DirResolver(dir string) LibraryFileResolver {
	return func(name string) (string, bool) {
		for _, candidate := range []string{name, name + ".go"} {
			b, err := os.ReadFile(filepath.Join(dir, candidate))
			if err == nil {
				return string(b), true
			}
		}
		return "", false
	}
}

// MapResolver returns a LibraryFileResolver backed by a pre-bundled
// mapping from library file name to its source text, typically used to
// ship a frozen snapshot of a handful of commonly-imported packages
// alongside a release-gating tool so comparisons are reproducible
// without reading the host's GOROOT or module cache.
func MapResolver(files map[string]string) LibraryFileResolver {
	return func(name string) (string, bool) {
		if content, ok := files[name]; ok {
			return content, true
		}
		content, ok := files[name+".go"]
		return content, ok
	}
}
