// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmaps/procmaps/maps"
)

// registerFlags holds the four optional crash-register flags shared by
// every subcommand that can resolve a CrashContext.
type registerFlags struct {
	pc, lr, sp, fp string
}

func (f *registerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pc, "pc", "", "program counter at crash time (hex, optional 0x prefix)")
	cmd.Flags().StringVar(&f.lr, "lr", "", "link register at crash time (hex, optional 0x prefix)")
	cmd.Flags().StringVar(&f.sp, "sp", "", "stack pointer at crash time (hex, optional 0x prefix)")
	cmd.Flags().StringVar(&f.fp, "fp", "", "frame pointer at crash time (hex, optional 0x prefix)")
}

// toContext parses the provided flags into a CrashContext. A flag left
// at its zero value ("") is treated as "not provided", matching
// spec.md's distinction between absent and zero: pass "0" explicitly to
// resolve register value zero.
func (f *registerFlags) toContext() (maps.CrashContext, error) {
	var ctx maps.CrashContext
	var err error
	if ctx.PC, err = parseOptionalHex(f.pc); err != nil {
		return ctx, fmt.Errorf("--pc: %w", err)
	}
	if ctx.LR, err = parseOptionalHex(f.lr); err != nil {
		return ctx, fmt.Errorf("--lr: %w", err)
	}
	if ctx.SP, err = parseOptionalHex(f.sp); err != nil {
		return ctx, fmt.Errorf("--sp: %w", err)
	}
	if ctx.FP, err = parseOptionalHex(f.fp); err != nil {
		return ctx, fmt.Errorf("--fp: %w", err)
	}
	return ctx, nil
}

func parseOptionalHex(s string) (*maps.Address, error) {
	if s == "" {
		return nil, nil
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return nil, err
	}
	a := maps.Address(v)
	return &a, nil
}
