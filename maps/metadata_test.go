// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"strings"
	"testing"
)

func TestExtractMetadataProcessName(t *testing.T) {
	input := "00400000-00401000 r--p 00000000 08:01 100 /usr/bin/amxrt\n" +
		"00401000-00402000 r-xp 00001000 08:01 100 /usr/bin/amxrt\n" +
		"7f0000000000-7f0000010000 rw-p 00000000 00:00 0 [heap]\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	md := ExtractMetadata(space, nil)
	if md.ProcessName != "amxrt" {
		t.Fatalf("got process name %q, want amxrt", md.ProcessName)
	}
	if md.PID != nil {
		t.Fatalf("expected nil pid")
	}
	if md.RegionCount != 3 {
		t.Fatalf("got region count %d, want 3", md.RegionCount)
	}
}

func TestExtractMetadataUnknownWhenNoCode(t *testing.T) {
	input := "7f0000000000-7f0000010000 rw-p 00000000 00:00 0 [heap]\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	md := ExtractMetadata(space, nil)
	if md.ProcessName != "Unknown" {
		t.Fatalf("got process name %q, want Unknown", md.ProcessName)
	}
}

func TestExtractMetadataIgnoresPseudoCode(t *testing.T) {
	// A bracketed pseudo-name region can never be classified Code (only
	// file-backed + exec reaches that rule), but a file path that begins
	// with "[" without ending in "]" is file-backed and can be; guard the
	// "does not begin with [" requirement in inferProcessName with one.
	input := "00300000-00301000 r-xp 00000000 08:01 99 [jit\n" +
		"00400000-00401000 r-xp 00000000 08:01 100 /usr/bin/real\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	md := ExtractMetadata(space, nil)
	if md.ProcessName != "real" {
		t.Fatalf("got %q, want real", md.ProcessName)
	}
}

func TestExtractMetadataCarriesPID(t *testing.T) {
	input := "7f0000000000-7f0000010000 rw-p 00000000 00:00 0 [heap]\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pid := 4242
	md := ExtractMetadata(space, &pid)
	if md.PID == nil || *md.PID != 4242 {
		t.Fatalf("got pid %v, want 4242", md.PID)
	}
}
