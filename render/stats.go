// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/vmaps/procmaps/maps"
)

// Stats prints the per-class statistics table; percentage precision is
// this renderer's own choice (two decimals), per spec.md §4.6.
func Stats(w io.Writer, data maps.ReportData) {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "CLASS\tCOUNT\tBYTES\tPERCENT")
	for _, cs := range data.Stats {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f%%\n", cs.Class, cs.Count, cs.TotalBytes, cs.Fraction*100)
	}
	tw.Flush()
}
