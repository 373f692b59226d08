// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

// An AddressSpace is the validated, ordered collection of Regions parsed
// from one maps snapshot. It is immutable after construction: the only
// way to build one is through Parse (parser.go), which enforces the
// ordering and non-overlap invariants before handing the value back.
type AddressSpace struct {
	regions []*Region
}

// Regions returns the region list, ordered strictly by Start() ascending.
// The caller must not mutate the returned slice's contents.
func (a *AddressSpace) Regions() []*Region {
	return a.regions
}

// Len returns the number of regions in the address space.
func (a *AddressSpace) Len() int { return len(a.regions) }

// newAddressSpace validates the invariants of spec.md §3 over an
// already-ordered region slice built by the parser, runs the Bss
// refinement pass, and freezes the result.
func newAddressSpace(regions []*Region, lineOf func(int) int) (*AddressSpace, error) {
	for i, r := range regions {
		if i == 0 {
			continue
		}
		prev := regions[i-1]
		if r.start < prev.start {
			return nil, &ParseError{LineNumber: lineOf(i), Reason: OutOfOrder}
		}
		if r.start < prev.end {
			return nil, &ParseError{LineNumber: lineOf(i), Reason: OverlapsPrevious}
		}
	}
	refineBss(regions)
	return &AddressSpace{regions: regions}, nil
}

// refineBss reclassifies an Anon writable, non-executable region as Bss
// when it directly abuts (by start==prev.end) a file-backed Data region,
// taking it to be that binary's BSS. This
// is the one documented exception to "classification is a pure per-region
// function": it depends on the sorted order established by the parser, so
// it runs as a distinct pass after every region has its initial
// classification, never inside classify() itself. See SPEC_FULL.md §9.1
// for why this refinement was chosen over always classifying as Anon.
func refineBss(regions []*Region) {
	for i := 1; i < len(regions); i++ {
		cur := regions[i]
		prev := regions[i-1]
		if cur.classification != Anon || !cur.perm.Write || cur.perm.Exec {
			continue
		}
		if !cur.IsAnonymous() {
			continue
		}
		if prev.classification != Data {
			continue
		}
		if cur.start != prev.end {
			continue
		}
		// The anonymous region itself carries no pathname; adjacency to a
		// file-backed Data region is the only signal available that it is
		// that binary's BSS rather than an unrelated anonymous mapping.
		if !prev.pathname.IsFileBacked() {
			continue
		}
		cur.classification = Bss
	}
}

// Lookup returns the region containing address a, or (nil, false) if a
// falls in no region. Runs in O(log N) via binary search over the
// start-sorted region list built once at construction time.
func (a *AddressSpace) Lookup(addr Address) (*Region, bool) {
	regions := a.regions
	lo, hi := 0, len(regions)
	for lo < hi {
		mid := (lo + hi) / 2
		if regions[mid].start <= addr {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return nil, false
	}
	candidate := regions[lo-1]
	if addr < candidate.end {
		return candidate, true
	}
	return nil, false
}

// LowAddress returns the lowest Start() in the space, or 0 if empty.
func (a *AddressSpace) LowAddress() Address {
	if len(a.regions) == 0 {
		return 0
	}
	return a.regions[0].start
}

// HighAddress returns the highest End() in the space, or 0 if empty.
func (a *AddressSpace) HighAddress() Address {
	if len(a.regions) == 0 {
		return 0
	}
	return a.regions[len(a.regions)-1].end
}

// TotalSize returns the sum of every region's Size().
func (a *AddressSpace) TotalSize() uint64 {
	var total uint64
	for _, r := range a.regions {
		total += r.Size()
	}
	return total
}
