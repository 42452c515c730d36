// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// shl sets z = x << s (s counted in bits) and returns the normalized
// result. Splits s into a whole-limb shift and a sub-limb shift; when the
// sub-limb shift is zero this is a pure limb copy, otherwise each
// destination limb fuses bits from two source limbs. Grounded on
// nat.shl/shlVU, generalized to arbitrary shift amounts (shlVU only
// handles 0 <= s < 32).
func (z magia) shl(x magia, s uint) magia {
	m := len(x)
	if m == 0 {
		return z[:0]
	}
	wordShift := int(s / wordBits)
	inner := s % wordBits
	n := m + wordShift
	z = z.make(n + 1)
	if inner == 0 {
		copy(z[wordShift:n], x)
		z[n] = 0
	} else {
		z[n] = x[m-1] >> (wordBits - inner)
		for i := m - 1; i > 0; i-- {
			z[wordShift+i] = x[i]<<inner | x[i-1]>>(wordBits-inner)
		}
		z[wordShift] = x[0] << inner
	}
	for i := 0; i < wordShift; i++ {
		z[i] = 0
	}
	return z.norm()
}

// shr sets z = x >> s (bits) and returns the normalized result (floor
// division by 2^s). Grounded on nat.shr/shrVU, generalized the same way
// as shl.
func (z magia) shr(x magia, s uint) magia {
	m := len(x)
	wordShift := int(s / wordBits)
	inner := s % wordBits
	n := m - wordShift
	if n <= 0 {
		return z[:0]
	}
	z = z.make(n)
	src := x[wordShift:]
	if inner == 0 {
		copy(z, src)
	} else {
		for i := 0; i < n-1; i++ {
			z[i] = src[i]>>inner | src[i+1]<<(wordBits-inner)
		}
		z[n-1] = src[n-1] >> inner
	}
	return z.norm()
}

// shrSticky behaves like shr but additionally reports whether any bit
// shifted out was set, which Int.Shr needs for its "round toward -infinity"
// fixup on negative operands.
func (z magia) shrSticky(x magia, s uint) (magia, bool) {
	sticky := stickyBits(x, s)
	return z.shr(x, s), sticky
}

// stickyBits reports whether any of the low s bits of x are set.
func stickyBits(x magia, s uint) bool {
	wordShift := s / wordBits
	inner := s % wordBits
	if wordShift >= uint(len(x)) {
		return x.nonzero()
	}
	for i := uint(0); i < wordShift; i++ {
		if x[i] != 0 {
			return true
		}
	}
	if inner == 0 {
		return false
	}
	return x[wordShift]&(1<<inner-1) != 0
}

func (x magia) nonzero() bool {
	for _, w := range x {
		if w != 0 {
			return true
		}
	}
	return false
}
