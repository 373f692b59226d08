// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Parse reads a /proc/<pid>/maps-formatted snapshot from r, line by line,
// and returns a validated, classified AddressSpace. Parsing is fatal on
// the first malformed or out-of-invariant line: there is no partial
// result on error. See spec.md §4.3 for the full grammar.
func Parse(r io.Reader) (*AddressSpace, error) {
	scanner := bufio.NewScanner(r)
	// /proc/<pid>/maps lines are short, but a pathname can in principle be
	// long; grow the buffer rather than truncate it.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var regions []*Region
	var lineNumbers []int // lineNumbers[i] is the 1-based source line for regions[i]

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := parseLine(lineNo, line)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
		lineNumbers = append(lineNumbers, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return newAddressSpace(regions, func(i int) int { return lineNumbers[i] })
}

// parseLine parses one non-empty maps line into a Region.
//
// Grammar (spec.md §4.3):
//
//	<hex>-<hex> <perm4> <hex-offset> <major>:<minor> <inode> [<pathname>]
//
// Fields are separated by runs of whitespace; the pathname is everything
// after the fifth whitespace run, trimmed, and may itself contain spaces.
func parseLine(lineNo int, line string) (*Region, error) {
	fields, rest, ok := splitFields(line, 5)
	if !ok {
		return nil, &ParseError{LineNumber: lineNo, Reason: MalformedLine}
	}

	start, end, ok := splitRange(fields[0])
	if !ok {
		return nil, &ParseError{LineNumber: lineNo, Reason: MalformedLine, Detail: "address range " + fields[0]}
	}
	startAddr, err := parseHexAddress(start)
	if err != nil {
		return nil, &ParseError{LineNumber: lineNo, Reason: MalformedLine, Detail: "start address " + start}
	}
	endAddr, err := parseHexAddress(end)
	if err != nil {
		return nil, &ParseError{LineNumber: lineNo, Reason: MalformedLine, Detail: "end address " + end}
	}

	permStr := fields[1]

	offset, err := strconv.ParseUint(fields[2], 16, 64)
	if err != nil {
		return nil, &ParseError{LineNumber: lineNo, Reason: MalformedLine, Detail: "offset " + fields[2]}
	}

	major, minor, ok := splitDevice(fields[3])
	if !ok {
		return nil, &ParseError{LineNumber: lineNo, Reason: MalformedLine, Detail: "device " + fields[3]}
	}

	inode, err := strconv.ParseUint(fields[4], 10, 64)
	if err != nil {
		return nil, &ParseError{LineNumber: lineNo, Reason: MalformedLine, Detail: "inode " + fields[4]}
	}

	path := classifyPathname(strings.TrimSpace(rest))

	return newRegion(lineNo, Address(startAddr), Address(endAddr), permStr, offset,
		Device{Major: major, Minor: minor}, inode, path)
}

// splitFields splits line on whitespace into exactly n fields, returning
// whatever text remains after the nth field (not yet trimmed) as rest.
// It reports ok=false if fewer than n whitespace-separated fields exist.
func splitFields(line string, n int) (fields []string, rest string, ok bool) {
	s := line
	for i := 0; i < n; i++ {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			return nil, "", false
		}
		j := strings.IndexAny(s, " \t")
		if j < 0 {
			if i == n-1 {
				fields = append(fields, s)
				return fields, "", true
			}
			return nil, "", false
		}
		fields = append(fields, s[:j])
		s = s[j:]
	}
	return fields, s, true
}

// splitRange splits "start-end" into its two hex components.
func splitRange(s string) (start, end string, ok bool) {
	i := strings.IndexByte(s, '-')
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// splitDevice splits "major:minor" (both hex) into its two components.
func splitDevice(s string) (major, minor uint32, ok bool) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return 0, 0, false
	}
	maj, err := strconv.ParseUint(s[:i], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	min, err := strconv.ParseUint(s[i+1:], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return uint32(maj), uint32(min), true
}

// parseHexAddress parses a bare (no "0x" prefix) hex address, accepting
// both upper and lower case digits, into a 64-bit value. Addresses that
// do not fit in 64 bits are rejected.
func parseHexAddress(s string) (uint64, error) {
	return strconv.ParseUint(s, 16, 64)
}
