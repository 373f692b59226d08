// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"math"

	"github.com/vmaps/procmaps/maps"
)

const diagramWidth = 60

// ASCII prints an address-ordered diagram: one bar per region, its length
// proportional to log2(size) so that a 4KiB vdso page and a multi-GiB
// heap both render as visible, comparably-scaled bars. Any resolved
// crash register landing in a region is annotated on that region's line.
func ASCII(w io.Writer, data maps.ReportData) {
	regions := data.Space.Regions()
	if len(regions) == 0 {
		fmt.Fprintln(w, "(empty address space)")
		return
	}

	maxLog := 0.0
	for _, r := range regions {
		if l := math.Log2(float64(r.Size()) + 1); l > maxLog {
			maxLog = l
		}
	}
	if maxLog == 0 {
		maxLog = 1
	}

	landings := landingsByRegion(data)

	for _, r := range regions {
		barLen := int(math.Log2(float64(r.Size())+1) / maxLog * diagramWidth)
		if barLen < 1 {
			barLen = 1
		}
		bar := make([]byte, barLen)
		for i := range bar {
			bar[i] = '#'
		}
		fmt.Fprintf(w, "%s %s  %-6s %s", r.Start(), r.End(), r.Class(), string(bar))
		if marks := landings[r]; len(marks) > 0 {
			fmt.Fprintf(w, "  <- %v", marks)
		}
		fmt.Fprintln(w)
	}
}

func landingsByRegion(data maps.ReportData) map[*maps.Region][]string {
	out := map[*maps.Region][]string{}
	for _, c := range data.Crash {
		if !c.Resolved {
			continue
		}
		out[c.Region] = append(out[c.Region], c.Role.String())
	}
	return out
}
