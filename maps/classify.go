// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import "strings"

// vdsoNames is the full set of pseudo-names the kernel uses across
// architectures for the vDSO and related kernel-mapped helper pages.
var vdsoNames = map[string]bool{
	"[vdso]":     true,
	"[vvar]":     true,
	"[vsyscall]": true,
	"[sigpage]":  true,
	"[vectors]":  true,
}

// classify is the Classifier: a pure, deterministic function of a region's
// permissions and pathname. It is evaluated as a first-match-wins policy;
// see spec.md §4.2 for the ordering rationale. It never looks at sibling
// regions — the one exception, the Bss refinement, is a distinct pass
// (see refineBss in address_space.go) that runs after every region has
// first been classified by this function.
func classify(r *Region) SegmentClass {
	path := r.pathname
	switch {
	case path.Kind == PseudoPath && path.Name == "[heap]":
		return Heap
	case path.Kind == PseudoPath && isStackName(path.Name):
		return Stack
	case path.Kind == PseudoPath && vdsoNames[path.Name]:
		return Vdso
	case path.IsFileBacked() && r.perm.Exec:
		return Code
	case path.IsFileBacked() && !r.perm.Write && !r.perm.Exec:
		return Rodata
	case path.IsFileBacked() && r.perm.Write && !r.perm.Exec:
		return Data
	case path.IsAnonymous() && r.perm.Write && !r.perm.Exec:
		return Anon
	case path.IsAnonymous():
		return Anon
	default:
		return Unknown
	}
}

// isStackName reports whether name is "[stack]" (the main thread) or
// "[stack:<tid>]" (a non-main thread, emitted by some kernels).
func isStackName(name string) bool {
	if name == "[stack]" {
		return true
	}
	const prefix = "[stack:"
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, "]") {
		return false
	}
	digits := name[len(prefix) : len(name)-1]
	if digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
