// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/vmaps/procmaps/maps"
)

// Security prints one line per finding, or an explicit "no findings" line
// (the core leaves that presentation choice to the renderer; spec.md §4.7).
func Security(w io.Writer, data maps.ReportData) {
	if len(data.Security) == 0 {
		fmt.Fprintln(w, "no writable+executable regions found")
		return
	}
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "START\tEND\tPERM\tPATHNAME")
	for _, f := range data.Security {
		path := f.Pathname
		if path == "" {
			path = "[anonymous]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Start, f.End, f.Perm, path)
	}
	tw.Flush()
}
