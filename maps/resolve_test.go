// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"strings"
	"testing"
)

func addrPtr(a Address) *Address { return &a }

func TestResolvePcIntoSharedLibrary(t *testing.T) {
	input := "f79e0000-f79e6000 r-xp 00000000 b3:04 4096 /lib/libubus.so.20230605\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := CrashContext{PC: addrPtr(0xf79e245c)}
	results := Resolve(space, ctx)
	if len(results) != 1 {
		t.Fatalf("got %d resolutions, want 1", len(results))
	}
	res := results[0]
	if !res.Resolved {
		t.Fatalf("expected resolved outcome")
	}
	if res.OffsetInRegion != 0x245c {
		t.Fatalf("got offset 0x%x, want 0x245c", res.OffsetInRegion)
	}
	if res.ContainingBinary != "/lib/libubus.so.20230605" {
		t.Fatalf("got binary %q", res.ContainingBinary)
	}
	want := "addr2line -e /lib/libubus.so.20230605 0x245c"
	if res.SymbolizationCommand != want {
		t.Fatalf("got command %q, want %q", res.SymbolizationCommand, want)
	}
	if len(res.Diagnostics) != 0 {
		t.Fatalf("got diagnostics %v, want none", res.Diagnostics)
	}
}

func TestResolveSpOutsideStack(t *testing.T) {
	input := "0214f000-0218a000 rw-p 00000000 00:00 0 [heap]\n" +
		"ff8a0000-ff8c1000 rw-p 00000000 00:00 0 [stack]\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := CrashContext{SP: addrPtr(0x02160000)}
	results := Resolve(space, ctx)
	if len(results) != 1 || !results[0].Resolved {
		t.Fatalf("expected one resolved resolution, got %+v", results)
	}
	if results[0].Region.Class() != Heap {
		t.Fatalf("expected sp to resolve into heap region")
	}
	if !hasDiagnostic(results[0].Diagnostics, SpOutsideStackRegion) {
		t.Fatalf("expected SpOutsideStackRegion diagnostic, got %v", results[0].Diagnostics)
	}
}

func TestResolveWritableExecutable(t *testing.T) {
	input := "00400000-00401000 rwxp 00000000 08:01 100 /usr/bin/myapp\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	findings := Audit(space)
	if len(findings) != 1 {
		t.Fatalf("got %d security findings, want 1", len(findings))
	}

	ctx := CrashContext{PC: addrPtr(0x00400100)}
	results := Resolve(space, ctx)
	if !hasDiagnostic(results[0].Diagnostics, InWritableExecutable) {
		t.Fatalf("expected InWritableExecutable diagnostic, got %v", results[0].Diagnostics)
	}
}

func TestResolveOrderFixed(t *testing.T) {
	input := "00400000-00401000 rwxp 00000000 08:01 100 /usr/bin/myapp\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := CrashContext{
		FP: addrPtr(0x00400100),
		SP: addrPtr(0x00400100),
		PC: addrPtr(0x00400100),
		LR: addrPtr(0x00400100),
	}
	results := Resolve(space, ctx)
	want := []RegisterRole{Pc, Lr, Sp, Fp}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, r := range want {
		if results[i].Role != r {
			t.Fatalf("result %d: got role %s, want %s", i, results[i].Role, r)
		}
	}
}

func TestResolveUnmappedAddress(t *testing.T) {
	input := "00400000-00401000 r-xp 00000000 08:01 100 /bin/x\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := CrashContext{PC: addrPtr(0x12345678)}
	results := Resolve(space, ctx)
	if len(results) != 1 || results[0].Resolved {
		t.Fatalf("expected unmapped outcome, got %+v", results)
	}
	if len(results[0].Diagnostics) != 0 {
		t.Fatalf("unmapped address should carry no diagnostics")
	}
}

func TestResolvePcZeroIsNotAbsent(t *testing.T) {
	ctx := CrashContext{PC: addrPtr(0)}
	if !ctx.HasAny() {
		t.Fatalf("PC=0 should count as provided")
	}
	var empty CrashContext
	if empty.HasAny() {
		t.Fatalf("no registers set should report HasAny()==false")
	}
}

func TestResolvePcNotInExecutable(t *testing.T) {
	input := "00400000-00401000 rw-p 00000000 08:01 100 /bin/x\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := CrashContext{PC: addrPtr(0x00400000)}
	results := Resolve(space, ctx)
	if !hasDiagnostic(results[0].Diagnostics, PcNotInExecutable) {
		t.Fatalf("expected PcNotInExecutable, got %v", results[0].Diagnostics)
	}
}

func hasDiagnostic(ds []Diagnostic, want Diagnostic) bool {
	for _, d := range ds {
		if d == want {
			return true
		}
	}
	return false
}
