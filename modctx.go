// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// ModContext is a reusable modular-arithmetic context for a fixed modulus
// m >= 1: it precomputes a Barrett reducer unconditionally, and a
// Montgomery reducer additionally when m is odd, so that repeated
// modPow/modMul/modInverse calls against the same modulus pay the setup
// cost once. ModContext is not safe for concurrent use; a caller needing
// concurrent access to the same modulus constructs one context per
// goroutine.
type ModContext struct {
	m      magia
	modInt *Int
	k      int
	mu     magia // Barrett reciprocal: floor(b^(2k) / m), b = 2^32

	odd    bool
	nprime word  // N' with m[0]*N' === -1 (mod 2^32)
	r1     magia // R mod m, the Montgomery representation of 1
	r2     magia // R^2 mod m
}

// NewModContext precomputes the reducers for modulus.
func NewModContext(modulus *Int) *ModContext {
	if modulus.m.isNegSign() || modulus.m.isZero() {
		throw(OutOfRange, "ModContext requires a modulus >= 1")
	}
	m := append(magia(nil), modulus.mag...)
	k := len(m)
	c := &ModContext{m: m, modInt: modulus, k: k}
	c.mu = computeBarrettMu(m, k)
	if m[0]&1 == 1 {
		c.odd = true
		c.nprime = computeNPrime(m[0])
		var r magia
		r = r.divBelow(singleBit(uint(wordBits*k)), m)
		c.r1 = r
		var sq magia
		sq = sq.sqr(c.r1)
		c.r2 = c.reduce(sq)
	}
	return c
}

// divBelow computes singleBit-style dividend mod divisor using the full
// limb-engine divider, used only during ModContext setup.
func (z magia) divBelow(dividend, divisor magia) magia {
	var q, r magia
	q, r = q.div(r, dividend, divisor)
	_ = q
	return r
}

// computeBarrettMu computes floor(b^(2k) / m), b = 2^32.
func computeBarrettMu(m magia, k int) magia {
	dividend := singleBit(uint(wordBits * 2 * k))
	var q, r magia
	q, r = q.div(r, dividend, m)
	_ = r
	return q
}

// computeNPrime solves n*x === 1 (mod 2^32) via four Newton iterations
// starting from x0 = (n*3) xor 2, then negates to get N' with
// n*N' === -1 (mod 2^32). All arithmetic wraps mod 2^32 automatically
// since word is a 32-bit unsigned type.
func computeNPrime(n word) word {
	x := n*3 ^ 2
	for i := 0; i < 4; i++ {
		x = x * (2 - n*x)
	}
	return -x
}

// reduce implements Barrett reduction for 0 <= x < m^2:
// xh = x >> (32(k-1)); q = (xh*mu) >> (32(k+1));
// r = (x mod b^(k+1)) - (q*m mod b^(k+1)), normalized into [0, m).
func (c *ModContext) reduce(x magia) magia {
	k := c.k
	var xh, qFull magia
	xh = xh.shr(x, uint(wordBits*(k-1)))
	qFull = qFull.mul(xh, c.mu)
	var q magia
	q = q.shr(qFull, uint(wordBits*(k+1)))

	r1 := truncateLimbs(x, k+1)
	var qm magia
	qm = qm.mul(q, c.m)
	r2 := truncateLimbs(qm, k+1)

	var r magia
	if cmp(r1, r2) < 0 {
		var diff, full magia
		diff = diff.sub(r2, r1)
		full = full.shl(magia{1}, uint(wordBits*(k+1)))
		r = r.sub(full, diff)
	} else {
		r = r.sub(r1, r2)
	}
	for cmp(r, c.m) >= 0 {
		var next magia
		r = next.sub(r, c.m)
	}
	return r
}

// truncateLimbs returns x mod 2^(32n) as a fresh, normalized magnitude.
func truncateLimbs(x magia, n int) magia {
	if len(x) > n {
		x = x[:n]
	}
	return append(magia(nil), x...).norm()
}

// Reduce returns x mod m for 0 <= x < m^2, via Barrett reduction.
func (c *ModContext) Reduce(x *Int) *Int {
	if x.m.isNegSign() {
		throw(OutOfRange, "Reduce requires a non-negative input")
	}
	return newInt(false, c.reduce(x.mag))
}

// addMulAt implements buf[i:] += x*y in place, propagating the outgoing
// carry no further than len(buf). Used by montReduce's CIOS passes.
func addMulAt(buf magia, i int, x magia, y word) {
	n := len(x)
	c := addMulVWW(buf[i:i+n], x, y)
	j := i + n
	for c != 0 {
		nc, sum := addWW(buf[j], c, 0)
		buf[j] = sum
		c = nc
		j++
	}
}

// montReduce implements Montgomery's CIOS reduction: k outer passes, each
// eliminating one low limb of t by adding a multiple of m chosen so that
// limb becomes zero, followed by a shift of k limbs and at most one
// conditional subtraction of m.
func (c *ModContext) montReduce(t magia) magia {
	n := c.k
	buf := make(magia, 2*n+2)
	copy(buf, t)
	for i := 0; i < n; i++ {
		mi := buf[i] * c.nprime
		addMulAt(buf, i, c.m, mi)
	}
	result := append(magia(nil), buf[n:2*n+1]...).norm()
	if cmp(result, c.m) >= 0 {
		var r magia
		result = r.sub(result, c.m)
	}
	return result
}

// toMontgomeryMag converts a plain reduced value (0 <= x < m) into the
// Montgomery domain: montReduce(x * R^2).
func (c *ModContext) toMontgomeryMag(x magia) magia {
	var p magia
	p = p.mul(x, c.r2)
	return c.montReduce(p)
}

// fromMontgomeryMag converts a Montgomery-domain value back to plain
// form: montReduce(xR).
func (c *ModContext) fromMontgomeryMag(xR magia) magia {
	return c.montReduce(xR)
}

// montMul multiplies two Montgomery-domain operands and reduces the
// product back into the Montgomery domain.
func (c *ModContext) montMul(a, b magia) magia {
	var p magia
	p = p.mul(a, b)
	return c.montReduce(p)
}

// windowWidth picks the sliding-window width for Montgomery modular
// exponentiation from the exponent's bit length.
func windowWidth(expBitLen int) int {
	switch {
	case expBitLen < 128:
		return 3
	case expBitLen < 512:
		return 4
	case expBitLen < 2048:
		return 5
	default:
		return 6
	}
}

// modPowMontgomery computes base^exp mod m via left-to-right sliding-
// window exponentiation entirely in the Montgomery domain: precompute
// the odd powers base^1, base^3, ..., base^(2^w-1); scan the exponent
// from the top, squaring through each zero bit, and on a one bit, extend
// the window up to w bits (shrinking it so the window ends on a set
// bit), square through its length, then multiply by the matching
// precomputed odd power.
func (c *ModContext) modPowMontgomery(baseMag, expMag magia) magia {
	w := windowWidth(expMag.bitLen())
	baseM := c.toMontgomeryMag(baseMag)

	numOdd := 1 << (w - 1)
	oddPowers := make([]magia, numOdd)
	oddPowers[0] = baseM
	sq := c.montMul(baseM, baseM)
	for i := 1; i < numOdd; i++ {
		oddPowers[i] = c.montMul(oddPowers[i-1], sq)
	}

	result := append(magia(nil), c.r1...) // Montgomery 1
	i := expMag.bitLen() - 1
	for i >= 0 {
		if expMag.bit(uint(i)) == 0 {
			result = c.montMul(result, result)
			i--
			continue
		}
		l := w
		if i+1 < l {
			l = i + 1
		}
		val := expMag.window(uint(i-l+1), uint(l))
		for val&1 == 0 && l > 1 {
			l--
			val >>= 1
		}
		for t := 0; t < l; t++ {
			result = c.montMul(result, result)
		}
		result = c.montMul(result, oddPowers[val>>1])
		i -= l
	}
	return c.fromMontgomeryMag(result)
}

// modPowBarrett computes base^exp mod m via left-to-right binary
// square-and-multiply, reducing after every product. baseMag must
// already be reduced modulo m.
func (c *ModContext) modPowBarrett(baseMag, expMag magia) magia {
	bl := expMag.bitLen()
	result := append(magia(nil), baseMag...)
	for i := bl - 2; i >= 0; i-- {
		var sq magia
		sq = sq.sqr(result)
		result = c.reduce(sq)
		if expMag.bit(uint(i)) == 1 {
			var p magia
			p = p.mul(result, baseMag)
			result = c.reduce(p)
		}
	}
	return result
}

// ModPow computes base^exp mod m, dispatching to the Montgomery path
// when m is odd and to Barrett otherwise. A negative exponent is handled
// via modular inversion (base^-e = (base^-1)^e), mirroring Go-zh-go.old's
// Int.Exp negative-exponent special case.
func (c *ModContext) ModPow(base, exp *Int) *Int {
	if c.modInt.Cmp(One) == 0 {
		return Zero
	}
	b := base
	e := exp
	if exp.m.isNegSign() {
		b = c.ModInverse(base)
		e = exp.Neg()
	} else {
		b = base.Mod(c.modInt)
	}
	if e.IsZero() {
		return One
	}

	var result magia
	if c.odd {
		result = c.modPowMontgomery(b.mag, e.mag)
	} else {
		result = c.modPowBarrett(b.mag, e.mag)
	}
	return newInt(false, result)
}

// ModInverse returns a^-1 mod m via the extended Euclidean algorithm,
// rotating three running remainders and three running coefficients,
// raising NotInvertible when gcd(a, m) != 1. Grounded loosely on
// Go-zh-go.old's Int.ModInverse/GCD, generalized onto the signed Int
// surface already built atop the limb engine.
func (c *ModContext) ModInverse(a *Int) *Int {
	r0, r1 := c.modInt, a.Mod(c.modInt)
	t0, t1 := Zero, One
	for !r1.IsZero() {
		q := r0.Div(r1)
		r2 := r0.Sub(q.Mul(r1))
		t2 := t0.Sub(q.Mul(t1))
		r0, r1 = r1, r2
		t0, t1 = t1, t2
	}
	if r0.Cmp(One) != 0 {
		throw(NotInvertible, "gcd(a, m) != 1, no modular inverse exists")
	}
	if t0.IsNegative() {
		t0 = t0.Add(c.modInt)
	}
	if t0.Cmp(c.modInt) >= 0 {
		t0 = t0.Sub(c.modInt)
	}
	return t0
}

// ModAdd returns a + b assuming both operands already lie in [0, m),
// applying at most one correcting subtraction.
func (c *ModContext) ModAdd(a, b *Int) *Int {
	var z magia
	z = z.add(a.mag, b.mag)
	if cmp(z, c.m) >= 0 {
		var r magia
		z = r.sub(z, c.m)
	}
	return newInt(false, z)
}

// ModSub returns a - b assuming both operands already lie in [0, m),
// applying at most one correcting addition.
func (c *ModContext) ModSub(a, b *Int) *Int {
	if cmp(a.mag, b.mag) >= 0 {
		var z magia
		z = z.sub(a.mag, b.mag)
		return newInt(false, z)
	}
	var d, z magia
	d = d.sub(b.mag, a.mag)
	z = z.sub(c.m, d)
	return newInt(false, z)
}

// ModMul returns a*b mod m via Barrett reduction.
func (c *ModContext) ModMul(a, b *Int) *Int {
	var p magia
	p = p.mul(a.mag, b.mag)
	return newInt(false, c.reduce(p))
}

// ModSqr returns a*a mod m via Barrett reduction.
func (c *ModContext) ModSqr(a *Int) *Int {
	var p magia
	p = p.sqr(a.mag)
	return newInt(false, c.reduce(p))
}

// ModHalfLucas returns a/2 under an odd modulus: if a is odd, add m first
// (making the sum even) before shifting right by one bit. Valid
// only when m is odd; raises OutOfRange otherwise.
func (c *ModContext) ModHalfLucas(a *Int) *Int {
	if !c.odd {
		throw(OutOfRange, "ModHalfLucas requires an odd modulus")
	}
	mag := a.mag
	if mag.bit(0) == 1 {
		var z magia
		z = z.add(mag, c.m)
		mag = z
	}
	var r magia
	r = r.shr(mag, 1)
	return newInt(false, r)
}

// Modulus returns the modulus this context was constructed with.
func (c *ModContext) Modulus() *Int { return c.modInt }
