// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"strings"
	"testing"
)

func TestAuditFindsWritableExecutable(t *testing.T) {
	input := "00400000-00401000 rwxp 00000000 08:01 100 /usr/bin/myapp\n" +
		"00500000-00501000 r-xp 00000000 08:01 200 /usr/bin/myapp\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	findings := Audit(space)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Start != 0x00400000 {
		t.Fatalf("got start %s, want 0x400000", findings[0].Start)
	}
	if findings[0].Perm != "rwxp" {
		t.Fatalf("got perm %q, want rwxp", findings[0].Perm)
	}
}

func TestAuditEmptyWhenNoFindings(t *testing.T) {
	input := "00400000-00401000 r-xp 00000000 08:01 100 /usr/bin/myapp\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if findings := Audit(space); len(findings) != 0 {
		t.Fatalf("got %d findings, want 0", len(findings))
	}
}

func TestAuditIgnoresSharing(t *testing.T) {
	input := "00400000-00401000 rwxs 00000000 08:01 100 /dev/shm/x\n"
	space, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if findings := Audit(space); len(findings) != 1 {
		t.Fatalf("got %d findings, want 1 (sharing should not matter)", len(findings))
	}
}
