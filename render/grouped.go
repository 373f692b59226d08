// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/vmaps/procmaps/maps"
)

// Grouped prints one section per BinaryGroup, ascending addresses
// within each section (BinaryGrouping is already start-ordered).
func Grouped(w io.Writer, data maps.ReportData) {
	for _, g := range data.Groups {
		label := g.Pathname.String()
		if g.Pathname.IsAnonymous() {
			label = "[anonymous]"
		}
		fmt.Fprintf(w, "%s  (%d region(s), %d bytes)\n", label, len(g.Regions), g.TotalBytes)
		tw := newTabWriter(w)
		for _, r := range g.Regions {
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\t%s\n", r.Start(), r.End(), r.Size(), r.Perm(), r.Class())
		}
		tw.Flush()
	}
}
