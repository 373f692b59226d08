// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package procfs supplies the one blocking I/O operation the core needs
// but does not perform itself: opening a live process's maps pseudo-file.
// It never parses maps syntax — that stays entirely inside package maps.
package procfs

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open verifies that pid names a process reachable by this process, then
// opens its /proc/<pid>/maps for reading. A pid that does not exist and a
// pid that exists but is not ours to introspect are reported as distinct
// errors, which a bare os.Open on the pseudo-file would not distinguish
// (both fail, but for different underlying reasons).
func Open(pid int) (*os.File, error) {
	if err := unix.Kill(pid, 0); err != nil {
		switch err {
		case unix.ESRCH:
			return nil, fmt.Errorf("no process with pid %d: %w", pid, err)
		case unix.EPERM:
			return nil, fmt.Errorf("pid %d exists but is not accessible: %w", pid, err)
		default:
			return nil, fmt.Errorf("checking pid %d: %w", pid, err)
		}
	}

	path := fmt.Sprintf("/proc/%d/maps", pid)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}
