// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

// A SecurityFinding flags one region matching the Security Auditor's
// fixed policy: writable and executable at once, regardless of sharing
// or backing. See spec.md §4.7.
type SecurityFinding struct {
	Region     *Region
	Start, End Address
	Perm       string
	Pathname   string
}

// Audit returns one SecurityFinding per writable+executable region, in
// address order. An empty result means no findings; it is not an error,
// and the renderer decides how to present that case.
func Audit(space *AddressSpace) []SecurityFinding {
	var out []SecurityFinding
	for _, r := range space.regions {
		if !(r.IsWritable() && r.IsExecutable()) {
			continue
		}
		out = append(out, SecurityFinding{
			Region:   r,
			Start:    r.start,
			End:      r.end,
			Perm:     r.perm.String(),
			Pathname: r.pathname.String(),
		})
	}
	return out
}
