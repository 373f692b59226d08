// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

// ReportData bundles everything the formatters need into one immutable
// value: the address space, its derived metadata and statistics, the
// security audit, and — if a CrashContext was supplied — the resolved
// crash registers. Every field is fully computed before Assemble returns;
// formatters never trigger further computation over the core model.
type ReportData struct {
	Space    *AddressSpace
	Metadata ProcessMetadata
	Stats    []ClassStats
	Groups   []BinaryGroup
	Security []SecurityFinding
	Crash    []CrashResolution // nil if no CrashContext was supplied
	HasCrash bool
}

// Assemble runs every core subsystem over space and packages the results.
// pid and ctx are both optional: pass nil/a zero CrashContext when not
// available. Assemble never fails — the inputs have already survived
// parsing by the time a ReportData is built.
func Assemble(space *AddressSpace, pid *int, ctx *CrashContext) ReportData {
	data := ReportData{
		Space:    space,
		Metadata: ExtractMetadata(space, pid),
		Stats:    Statistics(space),
		Groups:   GroupByBinary(space),
		Security: Audit(space),
	}
	if ctx != nil && ctx.HasAny() {
		data.Crash = Resolve(space, *ctx)
		data.HasCrash = true
	}
	return data
}
