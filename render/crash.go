// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/vmaps/procmaps/maps"
)

// Crash prints the resolved crash registers, one row each, or nothing if
// data carries no CrashContext.
func Crash(w io.Writer, data maps.ReportData) {
	if !data.HasCrash {
		return
	}
	tw := newTabWriter(w)
	fmt.Fprintln(tw, "REG\tADDR\tOUTCOME\tOFFSET\tBINARY\tDIAGNOSTICS")
	for _, c := range data.Crash {
		if !c.Resolved {
			fmt.Fprintf(tw, "%s\t%s\tunmapped\t\t\t\n", c.Role, c.Address)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\tresolved\t0x%x\t%s\t%v\n",
			c.Role, c.Address, c.OffsetInRegion, c.ContainingBinary, c.Diagnostics)
	}
	tw.Flush()
}
