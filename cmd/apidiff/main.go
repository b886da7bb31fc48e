// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command apidiff compares two Go declaration files and reports the
// smallest semantic-version bump that would still be correct.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetPrefix("apidiff: ")
	log.SetFlags(0)

	if err := Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
