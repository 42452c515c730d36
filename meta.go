// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// meta packs a value's sign and normalized limb length into a single
// 32-bit word (sign in the top bit, length in the remaining bits). The
// canonical zero has sign 0 (never negative) and length 0; no other
// representation of zero exists.
type meta uint32

const metaSignBit = uint32(1) << 31

func newMeta(neg bool, length int) meta {
	if length == 0 {
		return 0
	}
	m := uint32(length)
	if neg {
		m |= metaSignBit
	}
	return meta(m)
}

func (m meta) length() int {
	return int(uint32(m) &^ metaSignBit)
}

func (m meta) isNegSign() bool {
	return uint32(m)&metaSignBit != 0
}

// isZero reports whether the described value is zero.
func (m meta) isZero() bool {
	return m.length() == 0
}

// isPositive reports whether the described value is strictly positive.
func (m meta) isPositive() bool {
	return !m.isZero() && !m.isNegSign()
}

// isNegative reports whether the described value is strictly negative.
func (m meta) isNegative() bool {
	return !m.isZero() && m.isNegSign()
}

// signum returns -1, 0, or +1, computed branchlessly from the sign bit and
// a zero test.
func (m meta) signum() int {
	l := uint32(m.length())
	nz := int(-l >> 31) // 1 when the length is non-zero
	neg := int(uint32(m) >> 31)
	return nz - 2*(neg&nz)
}

// abs clears the sign bit, leaving the length unchanged.
func (m meta) abs() meta {
	return meta(uint32(m) &^ metaSignBit)
}

// negate flips the sign bit unless the value is zero (no negative zero).
func (m meta) negate() meta {
	if m.isZero() {
		return m
	}
	return meta(uint32(m) ^ metaSignBit)
}

func (m meta) withSign(neg bool) meta {
	if m.isZero() {
		return m
	}
	if neg {
		return meta(uint32(m) | metaSignBit)
	}
	return meta(uint32(m) &^ metaSignBit)
}
