// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// Acc is a mutable arbitrary-precision accumulator. Where Int allocates a
// fresh magnitude on every operation, Acc reuses its own backing storage
// (and a second, owned scratch buffer, tmp1) across a chain of calls, so a
// long-running computation need not allocate per step. Grounded on
// nat.go's getNat/putNat scratch-pool pattern, generalized from a
// package-level shared pool (which would require locking for concurrent
// use) to a buffer owned outright by each Acc, so concurrent accumulators
// never contend on a shared mutable resource.
//
// Acc is not safe for concurrent use, and is not hashable — call ToInt
// first if a stable, hashable snapshot is needed.
type Acc struct {
	m    meta
	mag  magia
	tmp1 magia
}

// NewAcc returns a new accumulator initialized to zero.
func NewAcc() *Acc {
	return &Acc{}
}

// apply installs result as a's new magnitude (tracking the requested sign,
// collapsed to the canonical unsigned zero when result is empty) and
// recycles freed as the new scratch buffer.
func (a *Acc) apply(neg bool, result, freed magia) *Acc {
	result = result.norm()
	a.tmp1 = freed
	a.mag = result
	a.m = newMeta(neg, len(result))
	return a
}

// Set copies x's value into a.
func (a *Acc) Set(x *Int) *Acc {
	mag := a.tmp1.set(x.mag)
	return a.apply(x.m.isNegSign(), mag, a.mag)
}

// SetI64 sets a to an int64 value.
func (a *Acc) SetI64(x int64) *Acc { return a.Set(FromInt64(x)) }

// SetU64 sets a to a uint64 value.
func (a *Acc) SetU64(x uint64) *Acc { return a.Set(FromUint64(x)) }

// SetZero sets a to zero.
func (a *Acc) SetZero() *Acc {
	a.mag = a.mag[:0]
	a.m = 0
	return a
}

// SetOne sets a to one.
func (a *Acc) SetOne() *Acc { return a.Set(One) }

// SetAdd sets a = x + y.
func (a *Acc) SetAdd(x, y *Int) *Acc { return a.Set(x).Add(y) }

// SetSub sets a = x - y.
func (a *Acc) SetSub(x, y *Int) *Acc { return a.Set(x).Sub(y) }

// SetMul sets a = x * y.
func (a *Acc) SetMul(x, y *Int) *Acc { return a.Set(x).Mul(y) }

// SetDiv sets a = x / y.
func (a *Acc) SetDiv(x, y *Int) *Acc { return a.Set(x).Div(y) }

// SetRem sets a = x % y.
func (a *Acc) SetRem(x, y *Int) *Acc { return a.Set(x).Rem(y) }

// SetMod sets a to the Euclidean remainder of x with respect to positive
// divisor y.
func (a *Acc) SetMod(x, y *Int) *Acc { return a.Set(x).Mod(y) }

// SetSqr sets a = x * x.
func (a *Acc) SetSqr(x *Int) *Acc { return a.Set(x).Sqr() }

// SetShl sets a = x << k.
func (a *Acc) SetShl(x *Int, k int) *Acc { return a.Set(x).Shl(k) }

// SetShr sets a = x >> k (arithmetic, rounding toward negative infinity).
func (a *Acc) SetShr(x *Int, k int) *Acc { return a.Set(x).Shr(k) }

// SetUshr sets a = |x| >> k, unsigned.
func (a *Acc) SetUshr(x *Int, k int) *Acc { return a.Set(x).Ushr(k) }

// Add accumulates a += y in place.
func (a *Acc) Add(y *Int) *Acc {
	if y.m.isZero() {
		return a
	}
	if a.m.isNegSign() == y.m.isNegSign() {
		result := a.tmp1.add(a.mag, y.mag)
		return a.apply(a.m.isNegSign(), result, a.mag)
	}
	switch cmp(a.mag, y.mag) {
	case 0:
		return a.SetZero()
	case 1:
		result := a.tmp1.sub(a.mag, y.mag)
		return a.apply(a.m.isNegSign(), result, a.mag)
	default:
		result := a.tmp1.sub(y.mag, a.mag)
		return a.apply(y.m.isNegSign(), result, a.mag)
	}
}

// Sub accumulates a -= y in place.
func (a *Acc) Sub(y *Int) *Acc { return a.Add(y.Neg()) }

// Mul accumulates a *= y in place.
func (a *Acc) Mul(y *Int) *Acc {
	result := a.tmp1.mul(a.mag, y.mag)
	return a.apply(a.m.isNegSign() != y.m.isNegSign(), result, a.mag)
}

// Div accumulates a /= y in place (truncating). Division by zero raises
// DivByZero.
func (a *Acc) Div(y *Int) *Acc {
	if y.m.isZero() {
		throw(DivByZero, "division by zero")
	}
	var rem magia
	q, _ := a.tmp1.div(rem, a.mag, y.mag)
	return a.apply(a.m.isNegSign() != y.m.isNegSign(), q, a.mag)
}

// Rem accumulates a %= y in place, taking the sign of the prior value of
// a. Division by zero raises DivByZero.
func (a *Acc) Rem(y *Int) *Acc {
	if y.m.isZero() {
		throw(DivByZero, "division by zero")
	}
	var quo magia
	_, r := quo.div(a.tmp1, a.mag, y.mag)
	return a.apply(a.m.isNegSign(), r, a.mag)
}

// Mod reduces a to the Euclidean remainder with respect to positive
// divisor y (0 <= a < y). A negative divisor raises ModNegDivisor; a zero
// divisor raises DivByZero.
func (a *Acc) Mod(y *Int) *Acc {
	if y.m.isZero() {
		throw(DivByZero, "division by zero")
	}
	if y.m.isNegSign() {
		throw(ModNegDivisor, "mod with a negative divisor")
	}
	a.Rem(y)
	if a.m.isNegSign() {
		a.Add(y)
	}
	return a
}

// Sqr squares a in place.
func (a *Acc) Sqr() *Acc {
	result := a.tmp1.sqr(a.mag)
	return a.apply(false, result, a.mag)
}

// Shl shifts a left by k bits in place. Raises ShlOverflow on overflow
// rather than truncating, since silent truncation would lose bits a
// caller relied on.
func (a *Acc) Shl(k int) *Acc {
	if k < 0 {
		throw(NegBitCount, "negative shift count %d", k)
	}
	if a.m.isZero() {
		return a
	}
	if a.mag.bitLen()+k > maxBitLength {
		throw(ShlOverflow, "left shift would exceed maximum representable bit length")
	}
	result := a.tmp1.shl(a.mag, uint(k))
	return a.apply(a.m.isNegSign(), result, a.mag)
}

// Shr shifts a right by k bits in place (arithmetic, rounding toward
// negative infinity for negative values).
func (a *Acc) Shr(k int) *Acc {
	if k < 0 {
		throw(NegBitCount, "negative shift count %d", k)
	}
	if a.m.isZero() {
		return a
	}
	if !a.m.isNegSign() {
		result := a.tmp1.shr(a.mag, uint(k))
		return a.apply(false, result, a.mag)
	}
	shifted, sticky := a.tmp1.shrSticky(a.mag, uint(k))
	if sticky {
		var inc magia
		shifted = inc.add(shifted, magia{1})
	}
	return a.apply(true, shifted, a.mag)
}

// Ushr shifts |a| right by k bits in place, unsigned.
func (a *Acc) Ushr(k int) *Acc {
	if k < 0 {
		throw(NegBitCount, "negative shift count %d", k)
	}
	result := a.tmp1.shr(a.mag, uint(k))
	return a.apply(false, result, a.mag)
}

// And, Or, Xor apply the magnitude-only bitwise operator against y,
// always producing a non-negative result in place.
func (a *Acc) And(y *Int) *Acc {
	result := a.tmp1.and(a.mag, y.mag)
	return a.apply(false, result, a.mag)
}

func (a *Acc) Or(y *Int) *Acc {
	result := a.tmp1.or(a.mag, y.mag)
	return a.apply(false, result, a.mag)
}

func (a *Acc) Xor(y *Int) *Acc {
	result := a.tmp1.xor(a.mag, y.mag)
	return a.apply(false, result, a.mag)
}

// SetBit sets bit i of |a| in place.
func (a *Acc) SetBit(i int) *Acc {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	result := a.tmp1.withSetBit(a.mag, uint(i))
	return a.apply(a.m.isNegSign(), result, a.mag)
}

// ClearBit clears bit i of |a| in place.
func (a *Acc) ClearBit(i int) *Acc {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	result := a.tmp1.withClearBit(a.mag, uint(i))
	return a.apply(a.m.isNegSign(), result, a.mag)
}

// Negate flips a's sign in place (no-op on zero).
func (a *Acc) Negate() *Acc {
	a.m = a.m.negate()
	return a
}

// AddSquareOf accumulates a += x*x in place, useful for sum-of-squares
// loops without materializing an intermediate Int per term.
func (a *Acc) AddSquareOf(x *Int) *Acc {
	var sq magia
	sq = sq.sqr(x.mag)
	return a.Add(newInt(false, sq))
}

// AddAbsValueOf accumulates a += |x| in place.
func (a *Acc) AddAbsValueOf(x *Int) *Acc {
	return a.Add(x.Abs())
}

// Sign, IsZero, IsNegative, IsPositive mirror Int's queries against a's
// current value.
func (a *Acc) Sign() int         { return a.m.signum() }
func (a *Acc) IsZero() bool      { return a.m.isZero() }
func (a *Acc) IsNegative() bool  { return a.m.isNegative() }
func (a *Acc) IsPositive() bool  { return a.m.isPositive() }
func (a *Acc) MagnitudeBitLen() int { return a.mag.bitLen() }

// String renders a's current value in decimal.
func (a *Acc) String() string {
	if a.m.isNegSign() {
		return "-" + decimalDigits(a.mag)
	}
	return decimalDigits(a.mag)
}

// ToInt takes an immutable snapshot of a's current value. The snapshot
// copies the magnitude, since Acc continues to mutate its own buffers
// after this call.
func (a *Acc) ToInt() *Int {
	mag := append(magia(nil), a.mag...)
	return newInt(a.m.isNegSign(), mag)
}

// Hash always raises HashCodeUnsupported: Acc is mutable and must never
// be used as a map key or otherwise hashed. Use ToInt().Hash() for a
// stable hash of the current value.
func (a *Acc) Hash() uint64 {
	throw(HashCodeUnsupported, "Acc is mutable and has no stable hash; call ToInt().Hash() instead")
	return 0
}

// EnsureCapacityDiscard grows a's backing storage to hold at least
// bitCapacity bits, discarding the current value (setting it to zero).
// Useful before a known-size accumulation loop to avoid incremental
// reallocation.
func (a *Acc) EnsureCapacityDiscard(bitCapacity int) *Acc {
	limbs := (bitCapacity + wordBits - 1) / wordBits
	if cap(a.mag) < limbs {
		a.mag = make(magia, 0, limbs)
	} else {
		a.mag = a.mag[:0]
	}
	if cap(a.tmp1) < limbs {
		a.tmp1 = make(magia, 0, limbs)
	}
	a.m = 0
	return a
}

// EnsureCapacityCopy grows a's backing storage to hold at least
// bitCapacity bits, preserving the current value.
func (a *Acc) EnsureCapacityCopy(bitCapacity int) *Acc {
	limbs := (bitCapacity + wordBits - 1) / wordBits
	if cap(a.mag) < limbs {
		grown := make(magia, len(a.mag), limbs)
		copy(grown, a.mag)
		a.mag = grown
	}
	if cap(a.tmp1) < limbs {
		a.tmp1 = make(magia, 0, limbs)
	}
	return a
}

// HintBitCapacity is an alias for EnsureCapacityCopy, named for call sites
// that want to express "this accumulator will likely grow to roughly this
// size" without implying anything is discarded.
func (a *Acc) HintBitCapacity(bitCapacity int) *Acc {
	return a.EnsureCapacityCopy(bitCapacity)
}
