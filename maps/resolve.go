// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import "fmt"

// A RegisterRole names one of the four crash-time CPU registers the
// resolver accepts.
type RegisterRole uint8

const (
	Pc RegisterRole = iota
	Lr
	Sp
	Fp
)

func (r RegisterRole) String() string {
	switch r {
	case Pc:
		return "pc"
	case Lr:
		return "lr"
	case Sp:
		return "sp"
	case Fp:
		return "fp"
	default:
		return "?"
	}
}

// registerOrder is the fixed output order for CrashResolutions.
var registerOrder = [...]RegisterRole{Pc, Lr, Sp, Fp}

// A CrashContext carries the crash-time register values the caller has
// available. Each field is an *Address rather than a bare Address so that
// "not provided" is distinguishable from "provided and zero" — relevant
// because Pc==0 is itself an unmapped address, not an absent register.
type CrashContext struct {
	PC, LR, SP, FP *Address
}

func (c CrashContext) value(role RegisterRole) (Address, bool) {
	var p *Address
	switch role {
	case Pc:
		p = c.PC
	case Lr:
		p = c.LR
	case Sp:
		p = c.SP
	case Fp:
		p = c.FP
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// HasAny reports whether at least one register was provided.
func (c CrashContext) HasAny() bool {
	return c.PC != nil || c.LR != nil || c.SP != nil || c.FP != nil
}

// A Diagnostic is an advisory flag attached to a CrashResolution. These
// are never errors: they describe conditions worth a human's attention,
// not failures of the resolver.
type Diagnostic uint8

const (
	// PcNotInExecutable: role is Pc but the containing region lacks
	// execute permission.
	PcNotInExecutable Diagnostic = iota
	// SpOutsideStackRegion: role is Sp or Fp but the containing region's
	// class is not Stack.
	SpOutsideStackRegion
	// InWritableExecutable: the containing region is both writable and
	// executable.
	InWritableExecutable
)

func (d Diagnostic) String() string {
	switch d {
	case PcNotInExecutable:
		return "pc not in executable region"
	case SpOutsideStackRegion:
		return "stack pointer outside stack region"
	case InWritableExecutable:
		return "region is writable and executable"
	default:
		return "?"
	}
}

// A CrashResolution is the outcome of resolving one crash-time register
// against an AddressSpace.
type CrashResolution struct {
	Role    RegisterRole
	Address Address

	// Resolved is false when Address fell in no region; in that case
	// none of the fields below are meaningful and Diagnostics is empty.
	Resolved bool

	Region               *Region
	OffsetInRegion       uint64
	ContainingBinary     string
	SymbolizationCommand string // empty when not file-backed code/rodata

	Diagnostics []Diagnostic
}

// Resolve produces one CrashResolution per register present in ctx,
// in the fixed order [Pc, Lr, Sp, Fp], against the given address space.
// Resolve is a pure function: it performs no I/O and never fails — an
// address outside every region simply yields an unresolved outcome.
func Resolve(space *AddressSpace, ctx CrashContext) []CrashResolution {
	var out []CrashResolution
	for _, role := range registerOrder {
		addr, ok := ctx.value(role)
		if !ok {
			continue
		}
		out = append(out, resolveOne(space, role, addr))
	}
	return out
}

func resolveOne(space *AddressSpace, role RegisterRole, addr Address) CrashResolution {
	res := CrashResolution{Role: role, Address: addr}

	region, ok := space.Lookup(addr)
	if !ok {
		return res
	}

	res.Resolved = true
	res.Region = region
	res.OffsetInRegion = uint64(addr.Sub(region.start))
	if region.IsFileBacked() {
		res.ContainingBinary = region.pathname.Name
	} else {
		res.ContainingBinary = region.pathname.String()
	}

	if region.IsFileBacked() && (region.classification == Code || region.classification == Rodata) {
		res.SymbolizationCommand = fmt.Sprintf("addr2line -e %s 0x%x", region.pathname.Name, res.OffsetInRegion)
	}

	if role == Pc && !region.IsExecutable() {
		res.Diagnostics = append(res.Diagnostics, PcNotInExecutable)
	}
	if (role == Sp || role == Fp) && region.classification != Stack {
		res.Diagnostics = append(res.Diagnostics, SpOutsideStackRegion)
	}
	if region.IsWritable() && region.IsExecutable() {
		res.Diagnostics = append(res.Diagnostics, InWritableExecutable)
	}

	return res
}
