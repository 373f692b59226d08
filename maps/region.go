// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import "fmt"

// Sharing records whether a mapping is private (copy-on-write) or shared
// with other processes.
type Sharing uint8

const (
	Private Sharing = iota
	Shared
)

func (s Sharing) String() string {
	if s == Shared {
		return "shared"
	}
	return "private"
}

// Perm is the 4-slot permission record the kernel reports for a mapping:
// read, write, execute, and sharing.
type Perm struct {
	Read, Write, Exec bool
	Sharing           Sharing
}

// String renders the permission record in the kernel's exact 4-character
// form, e.g. "r-xp".
func (p Perm) String() string {
	b := [4]byte{'-', '-', '-', 'p'}
	if p.Read {
		b[0] = 'r'
	}
	if p.Write {
		b[1] = 'w'
	}
	if p.Exec {
		b[2] = 'x'
	}
	if p.Sharing == Shared {
		b[3] = 's'
	}
	return string(b[:])
}

// parsePerm parses the exact 4-character permission field from a maps line.
func parsePerm(s string) (Perm, bool) {
	if len(s) != 4 {
		return Perm{}, false
	}
	var p Perm
	switch s[0] {
	case 'r':
		p.Read = true
	case '-':
	default:
		return Perm{}, false
	}
	switch s[1] {
	case 'w':
		p.Write = true
	case '-':
	default:
		return Perm{}, false
	}
	switch s[2] {
	case 'x':
		p.Exec = true
	case '-':
	default:
		return Perm{}, false
	}
	switch s[3] {
	case 'p':
		p.Sharing = Private
	case 's':
		p.Sharing = Shared
	default:
		return Perm{}, false
	}
	return p, true
}

// A PathKind distinguishes the three forms a mapping's backing can take.
type PathKind uint8

const (
	// AnonymousPath is an unnamed anonymous mapping.
	AnonymousPath PathKind = iota
	// FileBackedPath is a mapping backed by a file on disk.
	FileBackedPath
	// PseudoPath is one of the kernel's bracketed pseudo-names, e.g. [heap].
	PseudoPath
)

// Pathname is the backing identity of a Region: either empty (Anonymous),
// a bracketed kernel pseudo-name (Pseudo), or a filesystem path
// (FileBacked). Paths are preserved verbatim, never truncated.
type Pathname struct {
	Kind PathKind
	Name string // empty for AnonymousPath
}

func (p Pathname) String() string {
	if p.Kind == AnonymousPath {
		return ""
	}
	return p.Name
}

// IsFileBacked reports whether p names a file on disk.
func (p Pathname) IsFileBacked() bool { return p.Kind == FileBackedPath }

// IsPseudo reports whether p is one of the kernel's bracketed labels.
func (p Pathname) IsPseudo() bool { return p.Kind == PseudoPath }

// IsAnonymous reports whether p names nothing at all.
func (p Pathname) IsAnonymous() bool { return p.Kind == AnonymousPath }

// classifyPathname decides whether a trimmed pathname field is anonymous,
// a pseudo-name, or a file path. Lines whose pathname is entirely
// whitespace are also anonymous (handled by the caller trimming first).
func classifyPathname(raw string) Pathname {
	if raw == "" {
		return Pathname{Kind: AnonymousPath}
	}
	if len(raw) >= 2 && raw[0] == '[' && raw[len(raw)-1] == ']' {
		return Pathname{Kind: PseudoPath, Name: raw}
	}
	return Pathname{Kind: FileBackedPath, Name: raw}
}

// Device is the (major, minor) device pair backing a file-mapped region,
// or (0, 0) for an anonymous one.
type Device struct {
	Major, Minor uint32
}

func (d Device) String() string {
	return fmt.Sprintf("%02x:%02x", d.Major, d.Minor)
}

// A SegmentClass is the semantic role the Classifier assigns to a Region.
// It is a closed set; Unknown is the catch-all for anything the policy in
// classify.go does not otherwise recognize.
type SegmentClass uint8

const (
	Unknown SegmentClass = iota
	Code
	Rodata
	Data
	Bss
	Heap
	Stack
	Vdso
	Anon
)

func (c SegmentClass) String() string {
	switch c {
	case Code:
		return "code"
	case Rodata:
		return "rodata"
	case Data:
		return "data"
	case Bss:
		return "bss"
	case Heap:
		return "heap"
	case Stack:
		return "stack"
	case Vdso:
		return "vdso"
	case Anon:
		return "anon"
	default:
		return "unknown"
	}
}

// A Region is one contiguous virtual-memory mapping, as reported by a
// single line of /proc/<pid>/maps.
type Region struct {
	start, end     Address
	perm           Perm
	fileOffset     uint64
	device         Device
	inode          uint64
	pathname       Pathname
	classification SegmentClass
}

// Start returns the lowest virtual address of the region.
func (r *Region) Start() Address { return r.start }

// End returns the virtual address just beyond the region (exclusive).
func (r *Region) End() Address { return r.end }

// Size returns End()-Start(), always > 0 for a valid Region.
func (r *Region) Size() uint64 { return uint64(r.end.Sub(r.start)) }

// Perm returns the region's permission record.
func (r *Region) Perm() Perm { return r.perm }

// FileOffset returns the offset into the backing file at which this
// mapping begins; 0 for anonymous regions.
func (r *Region) FileOffset() uint64 { return r.fileOffset }

// Device returns the backing device pair; (0,0) for anonymous regions.
func (r *Region) Device() Device { return r.device }

// Inode returns the backing inode number; 0 for anonymous regions.
func (r *Region) Inode() uint64 { return r.inode }

// Pathname returns the region's backing identity.
func (r *Region) Pathname() Pathname { return r.pathname }

// Class returns the region's assigned SegmentClass.
func (r *Region) Class() SegmentClass { return r.classification }

// IsReadable, IsWritable, and IsExecutable expose the permission bits.
func (r *Region) IsReadable() bool   { return r.perm.Read }
func (r *Region) IsWritable() bool   { return r.perm.Write }
func (r *Region) IsExecutable() bool { return r.perm.Exec }

// IsPrivate and IsShared expose the sharing bit.
func (r *Region) IsPrivate() bool { return r.perm.Sharing == Private }
func (r *Region) IsShared() bool  { return r.perm.Sharing == Shared }

// IsAnonymous, IsFileBacked, and IsPseudo expose the pathname kind.
func (r *Region) IsAnonymous() bool  { return r.pathname.IsAnonymous() }
func (r *Region) IsFileBacked() bool { return r.pathname.IsFileBacked() }
func (r *Region) IsPseudo() bool     { return r.pathname.IsPseudo() }

// newRegion is the sole factory for Region values. It validates the raw
// fields and returns a ParseError naming the offending line on failure;
// it never produces a Region with contradictory state.
func newRegion(lineNumber int, start, end Address, permStr string, fileOffset uint64, dev Device, inode uint64, path Pathname) (*Region, error) {
	if start >= end {
		return nil, &ParseError{LineNumber: lineNumber, Reason: InvalidRange,
			Detail: fmt.Sprintf("%s >= %s", start, end)}
	}
	perm, ok := parsePerm(permStr)
	if !ok {
		return nil, &ParseError{LineNumber: lineNumber, Reason: InvalidPermissions,
			Detail: permStr}
	}
	r := &Region{
		start:      start,
		end:        end,
		perm:       perm,
		fileOffset: fileOffset,
		device:     dev,
		inode:      inode,
		pathname:   path,
	}
	r.classification = classify(r)
	return r, nil
}
