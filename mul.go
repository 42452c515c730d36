// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// karatsubaThreshold is the operand length (in limbs) from which
// multiply switches from a single schoolbook pass to karatsubaMul's
// split. Policy, tunable without affecting correctness. Grounded on
// nat.karatsubaThreshold.
var karatsubaThreshold = 40

// squareSpecializedMax and squareCrossDiagonalMin implement the squaring
// dispatch table: 1-4 limbs go to sqrSmall (which has no unrolled path of
// its own and calls mul), 5-18 use schoolbook self-multiply, 19-83 use
// cross-diagonal squaring, 84+ fall through to mul (and so to
// karatsubaMul's split).
const (
	squareSpecializedMax   = 4
	squareCrossDiagonalMin = 19
	squareKaratsubaMin     = 84
)

// addMulVWW computes z += x*y (a single-limb multiply-accumulate over a
// vector), returning the outgoing carry. Grounded on nat's addMulVVW
// (named addMulVWW here since y is a single limb, not a vector).
func addMulVWW(z, x magia, y word) word {
	var c word
	for i := range x {
		hi, lo := mulAddWWW(x[i], y, c)
		c2, sum := addWW(z[i], lo, 0)
		z[i] = sum
		c = hi + c2
	}
	return c
}

// mulAddVWW computes z = x*y + r, returning the outgoing carry; z and x
// may be the same length, distinct from addMulVWW which accumulates onto
// an existing z.
func mulAddVWW(z, x magia, y, r word) word {
	c := r
	for i := range x {
		hi, lo := mulAddWWW(x[i], y, c)
		z[i] = lo
		c = hi
	}
	return c
}

// mulAddWW sets z = x*y + r for a single-limb multiplier y via schoolbook
// fused multiply-accumulate. Grounded on nat.cmulAddWW/nat.mulAddWW.
func (z magia) mulAddWW(x magia, y, r word) magia {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setWord(r)
	}
	z = z.make(m + 1)
	z[m] = mulAddVWW(z[:m], x, y, r)
	return z.norm()
}

// basicMul multiplies x and y via schoolbook outer-product accumulation
// into z[0:len(x)+len(y)] (not normalized). The shorter operand drives the
// outer loop for cache behavior. Grounded on nat.basicMul.
func basicMul(z, x, y magia) {
	if len(x) > len(y) {
		x, y = y, x
	}
	z[:len(x)+len(y)].clear()
	for i, xi := range x {
		if xi != 0 {
			z[i+len(y)] = addMulVWW(z[i:i+len(y)], y, xi)
		}
	}
}

// mul sets z = x * y using schoolbook multiplication for small operands
// and karatsubaMul once the shorter operand reaches karatsubaThreshold.
// Grounded on nat.cmul/nat.mul, simplified for operands in the
// tens-to-low-thousands digit range: partial products are folded in with
// addAt, and split lengths need not be powers of two.
func (z magia) mul(x, y magia) magia {
	if len(x) < len(y) {
		x, y = y, x
	}
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return z[:0]
	}
	if n == 1 {
		return z.mulAddWW(x, y[0], 0)
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	if n < karatsubaThreshold {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}
	return z.karatsubaMul(x, y)
}

// karatsubaMul multiplies x (length m) by y (length n <= m), splitting x
// at k = n/2 limbs and y into k-limb chunks, and summing the recursively
// computed partial products at their limb offsets. It does not use
// Karatsuba's three-product identity, so the limb-operation count stays
// quadratic. Grounded on nat.cmul's non-power-of-
// two generalization (k < n || m != n branch): a from-scratch
// simplification of nat.cmul's single large scratch buffer into
// independent recursive calls, which costs more allocations but is far
// more legible and is appropriate at the tens-to-low-thousands-of-digits
// operand sizes this library targets.
func (z magia) karatsubaMul(x, y magia) magia {
	m, n := len(x), len(y)
	k := karatsubaSplit(n)
	if k >= n {
		z = z.make(m + n)
		basicMul(z, x, y)
		return z.norm()
	}

	x0, x1 := x[:k], x[k:]
	result := magia(nil).make(m + n)
	result.clear()

	for lo := 0; lo < n; lo += k {
		hi := minInt(lo+k, n)
		yi := y[lo:hi]
		var part magia
		part = part.karatsubaPart(x0, x1, yi)
		addAt(result, part, lo)
	}
	return result.norm()
}

// karatsubaSplit picks the split point n/2 (at least 1), so repeated
// halving reaches the schoolbook base case below karatsubaThreshold.
func karatsubaSplit(n int) int {
	k := n / 2
	if k < 1 {
		k = 1
	}
	return k
}

// karatsubaPart multiplies the two-chunk value (x1*B + x0) by a single
// chunk y with two products:
//
//	z1 = x1*y, z0 = x0*y, result = z1*B + z0
//
// where B = 2^(32*len(x0)). When x1 is empty this degenerates to a single
// product x0*y.
func (z magia) karatsubaPart(x0, x1, y magia) magia {
	lowLen := len(x0)
	var z0, z1 magia
	z0 = z0.mul(x0, y)
	if len(x1) == 0 {
		return z0
	}
	z1 = z1.mul(x1, y)
	z = z.make(lowLen + len(z1))
	z.clear()
	copy(z, z0)
	addAt(z, z1, lowLen)
	return z.norm()
}

// addAt implements z += x << (32*i) in place, growing no further than
// len(z) (the caller must have sized z generously enough). Grounded on
// nat.addAt.
func addAt(z, x magia, i int) {
	n := len(x)
	if n == 0 {
		return
	}
	c := addVV(z[i:i+n], z[i:i+n], x)
	j := i + n
	for c != 0 && j < len(z) {
		nc, sum := addWW(z[j], c, 0)
		z[j] = sum
		c = nc
		j++
	}
}

// sqr sets z = x*x, dispatching by operand length per the squaring
// policy table above.
func (z magia) sqr(x magia) magia {
	n := len(x)
	switch {
	case n == 0:
		return z[:0]
	case n <= squareSpecializedMax:
		return z.sqrSmall(x)
	case n < squareCrossDiagonalMin:
		return z.mul(x, x)
	case n < squareKaratsubaMin:
		return z.sqrCrossDiagonal(x)
	default:
		return z.mul(x, x)
	}
}

// sqrSmall handles the 1-4 limb cases, small enough that the general
// schoolbook multiply already runs in a handful of word operations; no
// further specialization pays for itself at this size.
func (z magia) sqrSmall(x magia) magia {
	return z.mul(x, x)
}

// sqrCrossDiagonal computes x*x via cross-diagonal decomposition: add each
// off-diagonal product x[i]*x[j] (i<j) twice into column i+j without ever
// forming a 65-bit intermediate, then add each diagonal term x[i]^2 once.
// Grounded on the shape of nat.basicMul's column-major accumulation; no
// literal squaring routine exists in nat.go to generalize from (it always
// calls mul(x, x)), so the two-phase off-diagonal/diagonal split here is
// built directly from that accumulation shape.
func (z magia) sqrCrossDiagonal(x magia) magia {
	n := len(x)
	z = z.make(2 * n)
	z.clear()

	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		var c word
		for j := i + 1; j < n; j++ {
			hi, lo := mulAddWWW(x[i], x[j], 0)
			// add once
			c1, s1 := addWW(z[i+j], lo, 0)
			z[i+j] = s1
			// add the same low limb a second time instead of left-
			// shifting it, to avoid a 65-bit intermediate
			c2, s2 := addWW(z[i+j], lo, 0)
			z[i+j] = s2
			carrySum := uint64(hi)*2 + uint64(c1) + uint64(c2) + uint64(c)
			z[i+j+1], carrySum = addColumn(z[i+j+1], carrySum)
			c = propagateCarry(z, i+j+2, carrySum)
		}
	}

	// diagonal terms, added once each into columns 2i and 2i+1
	var c word
	for i := 0; i < n; i++ {
		hi, lo := mulWW(x[i], x[i])
		c1, s := addWW(z[2*i], lo, 0)
		z[2*i] = s
		sum := uint64(hi) + uint64(c1) + uint64(c)
		z[2*i+1], sum = addColumn(z[2*i+1], sum)
		c = propagateCarry(z, 2*i+2, sum)
	}

	return z.norm()
}

// addColumn adds a possibly-multi-limb sum into a single destination limb,
// returning the updated limb and the remaining carry to propagate upward.
func addColumn(dst word, sum uint64) (word, uint64) {
	total := uint64(dst) + sum
	return word(total), total >> wordBits
}

// propagateCarry ripples a carry upward starting at index i, growing no
// further than len(z).
func propagateCarry(z magia, i int, carry uint64) word {
	for carry != 0 && i < len(z) {
		total := uint64(z[i]) + carry
		z[i] = word(total)
		carry = total >> wordBits
		i++
	}
	if carry != 0 {
		throw(MulOverflow, "square result exceeded destination capacity")
	}
	return 0
}

// mulW multiplies x by the single 32-bit limb y.
func (z magia) mulW(x magia, y word) magia {
	return z.mulAddWW(x, y, 0)
}

// mulW64 multiplies x by a 64-bit multiplier split into two limbs; result
// has at most len(x)+2 limbs.
func (z magia) mulW64(x magia, y uint64) magia {
	lo := word(y)
	hi := word(y >> wordBits)
	var t1, t2 magia
	t1 = t1.mulAddWW(x, lo, 0)
	if hi == 0 {
		return z.set(t1)
	}
	t2 = t2.mulAddWW(x, hi, 0)
	shifted := magia(nil).make(len(t2) + 1)
	shifted.clear()
	copy(shifted[1:], t2)
	return z.add(t1, shifted.norm())
}
