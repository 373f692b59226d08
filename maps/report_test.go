// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"strings"
	"testing"
)

func TestAssembleWithoutCrashContext(t *testing.T) {
	input := "00400000-00401000 r-xp 00000000 08:01 100 /bin/x\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data := Assemble(space, nil, nil)
	if data.HasCrash {
		t.Fatalf("expected no crash data")
	}
	if data.Crash != nil {
		t.Fatalf("expected nil Crash slice")
	}
	if data.Metadata.ProcessName != "x" {
		t.Fatalf("got process name %q", data.Metadata.ProcessName)
	}
}

func TestAssembleWithEmptyCrashContext(t *testing.T) {
	input := "00400000-00401000 r-xp 00000000 08:01 100 /bin/x\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data := Assemble(space, nil, &CrashContext{})
	if data.HasCrash {
		t.Fatalf("an all-absent CrashContext should not produce crash data")
	}
}

func TestAssembleWithCrashContext(t *testing.T) {
	input := "00400000-00401000 r-xp 00000000 08:01 100 /bin/x\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pc := Address(0x00400010)
	data := Assemble(space, nil, &CrashContext{PC: &pc})
	if !data.HasCrash || len(data.Crash) != 1 {
		t.Fatalf("expected one crash resolution, got %+v", data.Crash)
	}
}

func TestAssembleOnEmptyAddressSpace(t *testing.T) {
	space, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pc := Address(0x1234)
	data := Assemble(space, nil, &CrashContext{PC: &pc})
	if len(data.Crash) != 1 || data.Crash[0].Resolved {
		t.Fatalf("expected a single unmapped resolution on empty space")
	}
	if len(data.Security) != 0 {
		t.Fatalf("expected no security findings on empty space")
	}
}
