// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command procmaps is the command-line front end for the procmaps core:
// it parses a captured or live /proc/<pid>/maps snapshot, optionally
// resolves crash-time registers against it, and prints or exports the
// result. See SPEC_FULL.md §4.11 for the command tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "procmaps",
		Short: "Inspect a Linux process's virtual memory layout",
	}
	root.AddCommand(newReportCmd())
	root.AddCommand(newLiveCmd())
	root.AddCommand(newHTMLCmd())
	root.AddCommand(newExploreCmd())
	return root
}
