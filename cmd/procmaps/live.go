// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/vmaps/procmaps/procfs"
)

func newLiveCmd() *cobra.Command {
	var regs registerFlags
	var pid int
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Read /proc/<pid>/maps live and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := procfs.Open(pid)
			if err != nil {
				return err
			}
			defer f.Close()
			p := pid
			return runReport(cmd, f, &p, regs)
		},
	}
	cmd.Flags().IntVar(&pid, "pid", 0, "pid to read /proc/<pid>/maps from")
	cmd.MarkFlagRequired("pid")
	regs.register(cmd)
	return cmd
}
