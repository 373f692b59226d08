// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/logex"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/vmaps/procmaps/maps"
)

// newExploreCmd builds the interactive address-lookup REPL: each line of
// input is a hex address, resolved against the parsed AddressSpace and
// printed with its region's pathname, the offset into it, and the
// region's class and permissions; no crash diagnostics are computed
// (an address typed here has no register role). This reuses the
// teacher repository's own REPL stack (chzyer/readline for input,
// chzyer/logex to trace errors raised inside the loop) rather than
// inventing a new one.
func newExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore <maps-file>",
		Short: "Interactively look up addresses against a parsed maps snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			space, err := maps.Parse(f)
			if err != nil {
				return err
			}
			return runExplore(space, cmd.OutOrStdout())
		},
	}
	return cmd
}

func runExplore(space *maps.AddressSpace, out io.Writer) error {
	rl, err := readline.New("procmaps> ")
	if err != nil {
		return logex.Trace(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return logex.Trace(err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		if err := lookupAndPrint(out, space, line); err != nil {
			fmt.Fprintln(out, logex.Trace(err))
		}
	}
	return nil
}

func lookupAndPrint(out io.Writer, space *maps.AddressSpace, input string) error {
	s := strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fmt.Errorf("%q is not a hex address: %w", input, err)
	}
	addr := maps.Address(v)

	region, ok := space.Lookup(addr)
	if !ok {
		fmt.Fprintf(out, "%s: unmapped\n", addr)
		return nil
	}
	offset := addr.Sub(region.Start())
	fmt.Fprintf(out, "%s: %s+0x%x  [%s %s]\n", addr, region.Pathname(), offset, region.Class(), region.Perm())
	return nil
}
