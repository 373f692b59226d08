// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmaps/procmaps/maps"
	"github.com/vmaps/procmaps/render"
)

func newReportCmd() *cobra.Command {
	var regs registerFlags
	cmd := &cobra.Command{
		Use:   "report <maps-file>",
		Short: "Parse a captured /proc/<pid>/maps snapshot and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()
			return runReport(cmd, f, nil, regs)
		},
	}
	regs.register(cmd)
	return cmd
}

func runReport(cmd *cobra.Command, src *os.File, pid *int, regs registerFlags) error {
	space, err := maps.Parse(src)
	if err != nil {
		return err
	}
	ctx, err := regs.toContext()
	if err != nil {
		return err
	}
	data := maps.Assemble(space, pid, &ctx)

	out := cmd.OutOrStdout()
	render.Table(out, data)
	fmt.Fprintln(out)
	render.Grouped(out, data)
	fmt.Fprintln(out)
	render.Stats(out, data)
	fmt.Fprintln(out)
	render.Security(out, data)
	if data.HasCrash {
		fmt.Fprintln(out)
		render.Crash(out, data)
	}
	return nil
}
