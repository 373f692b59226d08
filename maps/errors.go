// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import "fmt"

// A ParseErrorReason identifies why a line of a maps snapshot was rejected.
type ParseErrorReason int

const (
	// MalformedLine means the line did not match the kernel's maps grammar.
	MalformedLine ParseErrorReason = iota
	// InvalidRange means start >= end for the parsed address range.
	InvalidRange
	// InvalidPermissions means the 4-character permission field used
	// characters outside the grammar, or had the wrong length.
	InvalidPermissions
	// OutOfOrder means a region's start address fell below the previous
	// region's start address. An equal start address is reported as
	// OverlapsPrevious.
	OutOfOrder
	// OverlapsPrevious means a region's start address fell before the end
	// of the previous region.
	OverlapsPrevious
)

func (r ParseErrorReason) String() string {
	switch r {
	case MalformedLine:
		return "malformed line"
	case InvalidRange:
		return "invalid range"
	case InvalidPermissions:
		return "invalid permissions"
	case OutOfOrder:
		return "regions out of order"
	case OverlapsPrevious:
		return "region overlaps previous"
	default:
		return "unknown parse error"
	}
}

// A ParseError reports why a maps snapshot could not be parsed, and which
// 1-based input line was responsible. A ParseError is always fatal to the
// whole parse: the core never returns a partial AddressSpace alongside one.
type ParseError struct {
	LineNumber int
	Reason     ParseErrorReason
	Detail     string // optional extra context, e.g. the offending field
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("line %d: %s: %s", e.LineNumber, e.Reason, e.Detail)
	}
	return fmt.Sprintf("line %d: %s", e.LineNumber, e.Reason)
}
