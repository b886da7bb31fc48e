// Copyright 2026 The apidiff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package apidiff

// ReleaseType is the semantic-versioning impact of a change. The
// constants are declared least severe first, so a larger value is more
// severe. The zero value is ReleaseNone.
type ReleaseType int

const (
	ReleaseNone ReleaseType = iota
	ReleasePatch
	ReleaseMinor
	ReleaseMajor
	ReleaseForbidden
)

func (r ReleaseType) String() string {
	switch r {
	case ReleaseForbidden:
		return "forbidden"
	case ReleaseMajor:
		return "major"
	case ReleaseMinor:
		return "minor"
	case ReleasePatch:
		return "patch"
	case ReleaseNone:
		return "none"
	default:
		return "unknown"
	}
}

// Severity returns r's position in the total order forbidden > major >
// minor > patch > none, as an integer usable for max-fold comparisons.
// It is intentionally the same integer as the iota above: the enumeration
// is declared in severity order so the ordinary Go comparison operators
// already implement the fold.
func (r ReleaseType) Severity() int { return int(r) }

// maxRelease returns the more severe of a and b.
func maxRelease(a, b ReleaseType) ReleaseType {
	if b > a {
		return b
	}
	return a
}

// Bucket is the grouping a Change falls into within a Report:
// forbidden->forbidden, major->breaking, minor->non-breaking,
// {patch,none}->unchanged.
type Bucket int

const (
	BucketForbidden Bucket = iota
	BucketBreaking
	BucketNonBreaking
	BucketUnchanged
)

func (b Bucket) String() string {
	switch b {
	case BucketForbidden:
		return "forbidden"
	case BucketBreaking:
		return "breaking"
	case BucketNonBreaking:
		return "non-breaking"
	case BucketUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// BucketOf maps a ReleaseType to its Report bucket.
func BucketOf(r ReleaseType) Bucket {
	switch r {
	case ReleaseForbidden:
		return BucketForbidden
	case ReleaseMajor:
		return BucketBreaking
	case ReleaseMinor:
		return BucketNonBreaking
	default: // ReleasePatch, ReleaseNone
		return BucketUnchanged
	}
}
