// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// magia is an unsigned multi-precision magnitude: a little-endian slice of
// 32-bit limbs, index 0 holding the least significant. It is the building
// block for both the immutable Int and the mutable Acc, exactly as the
// teacher's unexported nat []Word underlies both Int and Float. A magia is
// normalized when it has no leading (high-index) zero limb; the normalized
// representation of zero is the nil or zero-length slice.
//
// maxLimbs bounds capacity so that the bit length (limbs * 32) remains a
// valid signed 32-bit quantity.
const maxLimbs = 1<<26 - 1

type magia []word

// norm trims trailing (high-order) zero limbs and returns the normalized
// slice sharing z's backing array. Grounded on nat.norm/nat.cnorm.
func (z magia) norm() magia {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// normalized reports whether z has no high-order zero limb.
func (z magia) normalized() bool {
	i := len(z)
	return i == 0 || z[i-1] != 0
}

// make returns a magia of length n, reusing z's backing array when it has
// enough capacity. Grounded on nat.make/nat.cmake.
func (z magia) make(n int) magia {
	if n > maxLimbs {
		throw(BitLenOutOfRange, "magnitude of %d limbs exceeds maximum capacity", n)
	}
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 4
	grown := ((n+extra)/4 + 1) * 4
	return make(magia, n, grown)
}

func (z magia) clear() {
	for i := range z {
		z[i] = 0
	}
}

func (z magia) set(x magia) magia {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z magia) setWord(x word) magia {
	if x == 0 {
		return z[:0]
	}
	z = z.make(1)
	z[0] = x
	return z
}

func (z magia) setUint64(x uint64) magia {
	if x == 0 {
		return z[:0]
	}
	if hi := word(x >> wordBits); hi != 0 {
		z = z.make(2)
		z[0] = word(x)
		z[1] = hi
		return z
	}
	z = z.make(1)
	z[0] = word(x)
	return z
}

// cmp returns -1, 0, +1 as x is less than, equal to, or greater than y,
// comparing lengths first (both are assumed normalized) and then scanning
// from the top limb down. Grounded on nat.cmp.
func cmp(x, y magia) int {
	m, n := len(x), len(y)
	if m != n {
		if m < n {
			return -1
		}
		return 1
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// isZero reports whether x is the canonical zero magnitude.
func (x magia) isZero() bool {
	return len(x) == 0
}

// alias reports whether x and y share a backing array, the condition under
// which in-place multiply/divide routines must route through scratch
// instead of writing directly into a destination. Grounded on nat.alias.
func alias(x, y magia) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
