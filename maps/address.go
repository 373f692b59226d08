// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maps

import "fmt"

// An Address is a virtual address in the inspected process's address space.
type Address uint64

// Add returns a+d.
func (a Address) Add(d int64) Address {
	return Address(int64(a) + d)
}

// Sub returns a-b.
func (a Address) Sub(b Address) int64 {
	return int64(a) - int64(b)
}

func (a Address) String() string {
	return fmt.Sprintf("0x%x", uint64(a))
}
