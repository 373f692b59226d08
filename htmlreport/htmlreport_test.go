// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlreport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vmaps/procmaps/maps"
)

func TestWriteEscapesPathname(t *testing.T) {
	space, err := maps.Parse(strings.NewReader(
		"00400000-00401000 r-xp 00000000 08:01 100 /bin/<script>\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data := maps.Assemble(space, nil, nil)

	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("pathname was not escaped: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped pathname in output: %s", out)
	}
}

func TestWriteHighlightsCrashRegion(t *testing.T) {
	space, err := maps.Parse(strings.NewReader(
		"00400000-00401000 r-xp 00000000 08:01 100 /bin/x\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	pc := maps.Address(0x00400010)
	data := maps.Assemble(space, nil, &maps.CrashContext{PC: &pc})

	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "highlight") {
		t.Fatalf("expected highlighted row for crash region")
	}
}

func TestWriteEmptyAddressSpace(t *testing.T) {
	space, err := maps.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data := maps.Assemble(space, nil, nil)
	var buf bytes.Buffer
	if err := Write(&buf, data); err != nil {
		t.Fatalf("Write on empty space: %v", err)
	}
}
