// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// divWVW divides x (length m, top-down) by the single word y, writing the
// quotient into z and returning the remainder:
// carry:limb = (carry<<32)|x[i];
// q[i] = carry/w; carry = carry mod w.
func divWVW(z magia, carryIn word, x magia, y word) word {
	r := carryIn
	for i := len(x) - 1; i >= 0; i-- {
		var q word
		q, r = divWW(r, x[i], y)
		z[i] = q
	}
	return r
}

// divW sets z = floor(x / y) and returns (q, r) with 0 <= r < y.
// Grounded on nat.divW.
func (z magia) divW(x magia, y word) (q magia, r word) {
	if y == 0 {
		throw(DivByZero, "division by zero")
	}
	if y == 1 {
		return z.set(x), 0
	}
	if len(x) == 0 {
		return z[:0], 0
	}
	z = z.make(len(x))
	r = divWVW(z, 0, x, y)
	return z.norm(), r
}

// div computes q, r such that u = q*v + r, 0 <= r < v, dispatching to the
// single-limb path, a direct comparison when u < v, or Knuth Algorithm D.
// Grounded on nat.div.
func (z magia) div(rem magia, u, v magia) (q, r magia) {
	if len(v) == 0 {
		throw(DivByZero, "division by zero")
	}
	if cmp(u, v) < 0 {
		return z[:0], rem.set(u)
	}
	if len(v) == 1 {
		var r0 word
		q, r0 = z.divW(u, v[0])
		return q, rem.setWord(r0)
	}
	return z.divLarge(rem, u, v)
}

// divLarge implements Knuth's Algorithm D (TAOCP Vol. 2, §4.3.1) for
// divisors of two or more limbs. Grounded closely on nat.divLarge:
// normalize so the divisor's top limb has its high bit set, then for each
// output digit from the top down, estimate q̂ from the top two-limb window
// of the (shifted) remainder divided by the divisor's top limb, correct it
// against the divisor's second limb, multiply-subtract, and add back if
// the subtraction underflowed.
func (z magia) divLarge(rem magia, uIn, v magia) (q, r magia) {
	n := len(v)
	m := len(uIn) - n

	shift := nlz(v[n-1])
	vn := v
	if shift > 0 {
		vn = make(magia, n)
		shlVU(vn, v, shift)
	}

	u := make(magia, len(uIn)+1)
	top := shlVU(u[:len(uIn)], uIn, shift)
	u[len(uIn)] = top

	q = z.make(m + 1)
	qhatv := make(magia, n+1)

	vTop := vn[n-1]
	vSecond := vn[n-2]

	for j := m; j >= 0; j-- {
		qhat := word(wordMask)
		ujn := u[j+n]
		if ujn != vTop {
			var rhat word
			qhat, rhat = divWW(ujn, u[j+n-1], vTop)

			for {
				hi, lo := mulWW(qhat, vSecond)
				if hi < rhat || (hi == rhat && lo <= u[j+n-2]) {
					break
				}
				qhat--
				prevRhat := rhat
				rhat += vTop
				if rhat < prevRhat {
					break
				}
			}
		}

		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		borrow := subVV(u[j:j+n+1], u[j:j+n+1], qhatv)
		if borrow != 0 {
			c := addVV(u[j:j+n], u[j:j+n], vn)
			u[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	q = q.norm()
	shrVU(u, u, shift)
	r = rem.set(u).norm()
	return q, r
}

// shlVU shifts x left by s bits (0 <= s < 32) into z, returning the
// spilled top bits as a new word. z and x may be the same slice.
func shlVU(z, x magia, s uint) word {
	n := len(x)
	if n == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	var spill word
	spill = x[n-1] >> (wordBits - s)
	for i := n - 1; i > 0; i-- {
		z[i] = x[i]<<s | x[i-1]>>(wordBits-s)
	}
	z[0] = x[0] << s
	return spill
}

// shrVU shifts x right by s bits (0 <= s < 32) into z. z and x may be the
// same slice.
func shrVU(z, x magia, s uint) {
	n := len(x)
	if n == 0 {
		return
	}
	if s == 0 {
		copy(z, x)
		return
	}
	for i := 0; i < n-1; i++ {
		z[i] = x[i]>>s | x[i+1]<<(wordBits-s)
	}
	z[n-1] = x[n-1] >> s
}
