// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render formats maps.ReportData as plain text. Every function
// here is a pure formatter: it reads the report data it is given and
// writes text, never triggering further computation over the core model
// (spec.md §1).
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vmaps/procmaps/maps"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// Table prints one row per region: start, end, size, permissions, file
// offset, device, inode, class, and pathname.
func Table(w io.Writer, data maps.ReportData) {
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "START\tEND\tSIZE\tPERM\tOFFSET\tDEV\tINODE\tCLASS\tPATHNAME")
	for _, r := range data.Space.Regions() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t0x%x\t%s\t%d\t%s\t%s\n",
			r.Start(), r.End(), r.Size(), r.Perm(), r.FileOffset(),
			r.Device(), r.Inode(), r.Class(), pathnameOrAnon(r))
	}
	tw.Flush()
}

func pathnameOrAnon(r *maps.Region) string {
	if r.IsAnonymous() {
		return "[anonymous]"
	}
	return r.Pathname().String()
}
