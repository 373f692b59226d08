// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import "path/filepath"

// ProcessMetadata summarizes the process-level facts inferable from one
// AddressSpace, plus the pid if the caller supplied one (never inferred
// from the map text itself; see spec.md §3).
type ProcessMetadata struct {
	ProcessName string
	PID         *int
	RegionCount int
	TotalSize   uint64
	LowAddress  Address
	HighAddress Address
}

// ExtractMetadata builds a ProcessMetadata for space. pid is nil when the
// caller has no pid to attach (e.g. a file captured from another host).
func ExtractMetadata(space *AddressSpace, pid *int) ProcessMetadata {
	return ProcessMetadata{
		ProcessName: inferProcessName(space),
		PID:         pid,
		RegionCount: space.Len(),
		TotalSize:   space.TotalSize(),
		LowAddress:  space.LowAddress(),
		HighAddress: space.HighAddress(),
	}
}

// inferProcessName finds the first Code region whose pathname is
// file-backed and not itself a bracketed pseudo-label, and returns the
// file-name component of its path. Falls back to "Unknown".
func inferProcessName(space *AddressSpace) string {
	for _, r := range space.regions {
		if r.classification != Code {
			continue
		}
		if !r.pathname.IsFileBacked() {
			continue
		}
		name := r.pathname.Name
		if len(name) > 0 && name[0] == '[' {
			continue
		}
		return filepath.Base(name)
	}
	return "Unknown"
}
