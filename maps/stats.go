// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import "sort"

// ClassStats is the per-SegmentClass row of the statistics table.
type ClassStats struct {
	Class       SegmentClass
	Count       int
	TotalBytes  uint64
	// Fraction is TotalBytes/Σ(all region sizes), in [0,1]. The renderer,
	// not the core, decides display precision (spec.md §4.6).
	Fraction float64
}

// BinaryGroup is every region sharing one pathname (or the Anonymous
// bucket), ordered by Start() ascending.
type BinaryGroup struct {
	Pathname   Pathname
	Regions    []*Region
	TotalBytes uint64
}

// Statistics computes the per-class totals table for an address space.
// With zero regions every row is zero-valued; this is not an error.
func Statistics(space *AddressSpace) []ClassStats {
	var total uint64
	counts := map[SegmentClass]*ClassStats{}
	order := []SegmentClass{Code, Rodata, Data, Bss, Heap, Stack, Vdso, Anon, Unknown}
	for _, c := range order {
		counts[c] = &ClassStats{Class: c}
	}
	for _, r := range space.regions {
		cs := counts[r.classification]
		cs.Count++
		cs.TotalBytes += r.Size()
		total += r.Size()
	}
	out := make([]ClassStats, 0, len(order))
	for _, c := range order {
		cs := *counts[c]
		if total > 0 {
			cs.Fraction = float64(cs.TotalBytes) / float64(total)
		}
		out = append(out, cs)
	}
	return out
}

// GroupByBinary computes the per-pathname grouping table. Groups are
// ordered by the Start() of the first region encountered for that group;
// regions within a group are ordered by Start() ascending (already
// guaranteed by the AddressSpace's own invariant, since groups are built
// by a single forward pass over space.Regions()).
func GroupByBinary(space *AddressSpace) []BinaryGroup {
	type entry struct {
		group     *BinaryGroup
		firstSeen Address
	}
	index := map[Pathname]*entry{}
	var order []*entry

	for _, r := range space.regions {
		k := r.pathname
		e, ok := index[k]
		if !ok {
			e = &entry{group: &BinaryGroup{Pathname: r.pathname}, firstSeen: r.start}
			index[k] = e
			order = append(order, e)
		}
		e.group.Regions = append(e.group.Regions, r)
		e.group.TotalBytes += r.Size()
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].firstSeen < order[j].firstSeen
	})

	out := make([]BinaryGroup, 0, len(order))
	for _, e := range order {
		out = append(out, *e.group)
	}
	return out
}
