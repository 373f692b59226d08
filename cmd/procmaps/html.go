// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmaps/procmaps/htmlreport"
	"github.com/vmaps/procmaps/maps"
)

func newHTMLCmd() *cobra.Command {
	var regs registerFlags
	var out string
	cmd := &cobra.Command{
		Use:   "html <maps-file>",
		Short: "Render a self-contained HTML report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer in.Close()

			space, err := maps.Parse(in)
			if err != nil {
				return err
			}
			ctx, err := regs.toContext()
			if err != nil {
				return err
			}
			data := maps.Assemble(space, nil, &ctx)

			outFile, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer outFile.Close()

			if err := htmlreport.Write(outFile, data); err != nil {
				return fmt.Errorf("rendering html report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "procmaps-report.html", "output HTML file path")
	regs.register(cmd)
	return cmd
}
