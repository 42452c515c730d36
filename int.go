// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigint implements an arbitrary-precision signed integer library
// for values in the tens-to-low-thousands-of-decimal-digits regime, where
// schoolbook/Knuth-class algorithms dominate over sub-quadratic methods.
//
// Int is an immutable snapshot value; Acc is a mutable accumulator built
// from the same sign-magnitude data model and the same limb engine.
// Bitwise operations (And, Or, Xor, Ushr, WithSetBit, WithClearBit,
// WithBitMask) operate on the magnitude only and always return a
// non-negative result — this library does not emulate platform
// two's-complement semantics across the sign, unlike some predecessor
// libraries.
package bigint

import "fmt"

// Int is an immutable arbitrary-precision signed integer. The zero value
// of Int represents 0, the same value as Zero.
type Int struct {
	m   meta
	mag magia
}

// Canonical singletons: zero, one, negative one, and ten share their
// magnitude across every reference, since Int is never mutated in place.
var (
	Zero   = &Int{}
	One    = &Int{m: newMeta(false, 1), mag: magia{1}}
	NegOne = &Int{m: newMeta(true, 1), mag: magia{1}}
	Ten    = &Int{m: newMeta(false, 1), mag: magia{10}}
)

func newInt(neg bool, mag magia) *Int {
	mag = mag.norm()
	if mag.isZero() {
		return Zero
	}
	return &Int{m: newMeta(neg, len(mag)), mag: mag}
}

// FromInt64 constructs an Int from a signed 64-bit primitive.
func FromInt64(x int64) *Int {
	if x == 0 {
		return Zero
	}
	neg := x < 0
	u := uint64(x)
	if neg {
		u = uint64(-x)
	}
	return newInt(neg, magia(nil).setUint64(u))
}

// FromUint64 constructs an Int from an unsigned 64-bit primitive.
func FromUint64(x uint64) *Int {
	if x == 0 {
		return Zero
	}
	return newInt(false, magia(nil).setUint64(x))
}

// FromString parses s per the decimal/hex grammar:
//
//	[ '+' | '-' ]? ( '0x' | '0X' )? digit (digit | '_')*
//
// returning ParseError on invalid syntax.
func FromString(s string) (*Int, error) {
	mag, neg, err := parseSigned(s)
	if err != nil {
		return nil, err
	}
	return newInt(neg, mag), nil
}

// FromBytes decodes buf per the requested encoding/endianness variant.
func FromBytes(buf []byte, enc Encoding, end Endianness) *Int {
	mag, neg := decodeBytes(buf, enc, end)
	return newInt(neg, mag)
}

// FromLittleEndianLimbs constructs a non-negative Int directly from
// little-endian 32-bit limbs.
func FromLittleEndianLimbs(limbs []uint32) *Int {
	mag := append(magia(nil), limbs...)
	return newInt(false, mag)
}

// FromTwosComplementBigEndian decodes buf as a big-endian two's-complement
// byte sequence.
func FromTwosComplementBigEndian(buf []byte) *Int {
	return FromBytes(buf, TwosComplement, BigEndian)
}

// WithSetBit constructs the non-negative Int with exactly bit i set.
func WithSetBit(i int) *Int {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	return newInt(false, singleBit(uint(i)))
}

// WithBitMask constructs the non-negative Int (2^width - 1) << i.
func WithBitMask(width, i int) *Int {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	if width < 0 {
		throw(NegBitCount, "negative bit width %d", width)
	}
	return newInt(false, bitMask(uint(width), uint(i)))
}

// RandomWithBitLen returns a random value whose magnitude has a bit length
// of exactly bitLen (top bit guaranteed set), optionally with a random sign.
func RandomWithBitLen(bitLen int, rng RandSource, withSign bool) *Int {
	mag, neg := randomWithBitLen(bitLen, rng, withSign)
	return newInt(neg, mag)
}

// RandomWithMaxBitLen returns a random value with at most maxBitLen bits,
// optionally with a random sign (never applied to a zero result).
func RandomWithMaxBitLen(maxBitLen int, rng RandSource, withSign bool) *Int {
	mag, neg := randomWithMaxBitLen(maxBitLen, rng, withSign)
	return newInt(neg, mag)
}

// RandomBelow returns a uniformly random non-negative value strictly less
// than max, via rejection sampling.
func RandomBelow(max *Int, rng RandSource) *Int {
	return newInt(false, randomBelow(max.mag, rng))
}

// Factorial returns n!.
func Factorial(n uint64) *Int {
	return newInt(false, factorialMag(n))
}

// GCD returns the greatest common divisor of a and b (always
// non-negative); GCD(a, 0) = |a|.
func GCD(a, b *Int) *Int {
	if a.IsZero() {
		return b.Abs()
	}
	if b.IsZero() {
		return a.Abs()
	}
	return newInt(false, gcdMag(a.mag, b.mag))
}

// LCM returns the least common multiple of a and b; zero if either is
// zero.
func LCM(a, b *Int) *Int {
	return newInt(false, lcmMag(a.mag, b.mag))
}

// Pow returns base^exp for exp >= 0.
func Pow(base *Int, exp uint64) *Int {
	if exp == 0 {
		return One
	}
	return newInt(base.m.isNegSign() && exp%2 == 1, powMag(base.mag, exp))
}

// Isqrt returns floor(sqrt(value)) for value >= 0.
func Isqrt(value *Int) *Int {
	if value.m.isNegSign() {
		throw(OutOfRange, "isqrt of a negative value")
	}
	return newInt(false, isqrtMag(value.mag))
}

// Sign returns -1, 0, or +1.
func (x *Int) Sign() int { return x.m.signum() }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.m.isZero() }

// IsNegative reports whether x is strictly negative.
func (x *Int) IsNegative() bool { return x.m.isNegative() }

// IsPositive reports whether x is strictly positive.
func (x *Int) IsPositive() bool { return x.m.isPositive() }

// IsMagnitudePowerOfTwo reports whether |x| is an exact power of two.
func (x *Int) IsMagnitudePowerOfTwo() bool { return x.mag.isMagnitudePowerOfTwo() }

// Abs returns |x|, sharing x's magnitude (safe: Int magnitudes are never
// mutated).
func (x *Int) Abs() *Int {
	if !x.m.isNegSign() {
		return x
	}
	return &Int{m: x.m.abs(), mag: x.mag}
}

// Neg returns -x, sharing x's magnitude when x is non-zero.
func (x *Int) Neg() *Int {
	if x.m.isZero() {
		return x
	}
	return &Int{m: x.m.negate(), mag: x.mag}
}

// Cmp returns -1, 0, +1 as x is less than, equal to, or greater than y.
func (x *Int) Cmp(y *Int) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	c := cmp(x.mag, y.mag)
	if sx < 0 {
		c = -c
	}
	return c
}

func (x *Int) Lt(y *Int) bool  { return x.Cmp(y) < 0 }
func (x *Int) Gt(y *Int) bool  { return x.Cmp(y) > 0 }
func (x *Int) Lte(y *Int) bool { return x.Cmp(y) <= 0 }
func (x *Int) Gte(y *Int) bool { return x.Cmp(y) >= 0 }

// Equal reports value equality.
func (x *Int) Equal(y *Int) bool {
	return x.m.isNegSign() == y.m.isNegSign() && cmp(x.mag, y.mag) == 0
}

// Hash combines the sign with a polynomial hash (multiplier 31) of the
// normalized limbs.
func (x *Int) Hash() uint64 {
	var h uint64 = 1
	if x.m.isNegSign() {
		h = 2
	}
	for _, w := range x.mag {
		h = h*31 + uint64(w)
	}
	return h
}

// Add returns x + y.
func (x *Int) Add(y *Int) *Int {
	if x.m.isNegSign() == y.m.isNegSign() {
		var z magia
		return newInt(x.m.isNegSign(), z.add(x.mag, y.mag))
	}
	return subSigned(x.mag, x.m.isNegSign(), y.mag, y.m.isNegSign())
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// subSigned computes xm (sign xneg) - ym (sign yneg) where xneg != yneg,
// i.e. xm + ym with differing signs, via magnitude comparison.
func subSigned(xm magia, xneg bool, ym magia, yneg bool) *Int {
	switch cmp(xm, ym) {
	case 0:
		return Zero
	case 1:
		var z magia
		return newInt(xneg, z.sub(xm, ym))
	default:
		var z magia
		return newInt(yneg, z.sub(ym, xm))
	}
}

// Mul returns x * y.
func (x *Int) Mul(y *Int) *Int {
	var z magia
	return newInt(x.m.isNegSign() != y.m.isNegSign(), z.mul(x.mag, y.mag))
}

// Sqr returns x * x.
func (x *Int) Sqr() *Int {
	var z magia
	return newInt(false, z.sqr(x.mag))
}

// Div returns the truncating quotient x / y. Division by zero raises
// DivByZero.
func (x *Int) Div(y *Int) *Int {
	q, _ := x.quoRem(y)
	return q
}

// Rem returns the truncating remainder of x / y, taking the sign of the
// dividend x. Division by zero raises DivByZero.
func (x *Int) Rem(y *Int) *Int {
	_, r := x.quoRem(y)
	return r
}

func (x *Int) quoRem(y *Int) (q, r *Int) {
	if y.m.isZero() {
		throw(DivByZero, "division by zero")
	}
	var qm, rm magia
	qm, rm = qm.div(rm, x.mag, y.mag)
	q = newInt(x.m.isNegSign() != y.m.isNegSign(), qm)
	r = newInt(x.m.isNegSign(), rm)
	return q, r
}

// Mod returns the Euclidean-style remainder of x with respect to a
// positive divisor y: the result takes the sign of the divisor (always
// non-negative for positive y) and satisfies 0 <= Mod(x,y) < y. A
// negative divisor raises ModNegDivisor; a zero divisor raises DivByZero
// (checked ahead of the negative-divisor case, so a zero divisor always
// reports as DivByZero rather than ModNegDivisor).
func (x *Int) Mod(y *Int) *Int {
	if y.m.isZero() {
		throw(DivByZero, "division by zero")
	}
	if y.m.isNegSign() {
		throw(ModNegDivisor, "mod with a negative divisor")
	}
	r := x.Rem(y)
	if r.m.isNegSign() {
		r = r.Add(y)
	}
	return r
}

// DivInverse returns lhs / x (primitive-on-the-left symmetry for Div).
func (x *Int) DivInverse(lhs int64) *Int {
	return FromInt64(lhs).Div(x)
}

// RemInverse returns lhs % x (primitive-on-the-left symmetry for Rem).
func (x *Int) RemInverse(lhs int64) *Int {
	return FromInt64(lhs).Rem(x)
}

// AddI64/SubI64/MulI64/DivI64/RemI64 combine x with an int64 primitive,
// converting the primitive with FromInt64 first.
func (x *Int) AddI64(y int64) *Int { return x.Add(FromInt64(y)) }
func (x *Int) SubI64(y int64) *Int { return x.Sub(FromInt64(y)) }
func (x *Int) MulI64(y int64) *Int { return x.Mul(FromInt64(y)) }
func (x *Int) DivI64(y int64) *Int { return x.Div(FromInt64(y)) }
func (x *Int) RemI64(y int64) *Int { return x.Rem(FromInt64(y)) }
func (x *Int) ModI64(y int64) *Int { return x.Mod(FromInt64(y)) }

// AddU64/SubU64/MulU64/DivU64/RemU64 are the uint64 counterparts.
func (x *Int) AddU64(y uint64) *Int { return x.Add(FromUint64(y)) }
func (x *Int) SubU64(y uint64) *Int { return x.Sub(FromUint64(y)) }
func (x *Int) MulU64(y uint64) *Int { return x.Mul(FromUint64(y)) }
func (x *Int) DivU64(y uint64) *Int { return x.Div(FromUint64(y)) }
func (x *Int) RemU64(y uint64) *Int { return x.Rem(FromUint64(y)) }
func (x *Int) ModU64(y uint64) *Int { return x.Mod(FromUint64(y)) }

// And returns |x| & |y| (magnitude-only, non-negative).
func (x *Int) And(y *Int) *Int {
	var z magia
	return newInt(false, z.and(x.mag, y.mag))
}

// Or returns |x| | |y| (magnitude-only, non-negative).
func (x *Int) Or(y *Int) *Int {
	var z magia
	return newInt(false, z.or(x.mag, y.mag))
}

// Xor returns |x| ^ |y| (magnitude-only, non-negative).
func (x *Int) Xor(y *Int) *Int {
	var z magia
	return newInt(false, z.xor(x.mag, y.mag))
}

// Shl returns x << k, preserving sign. Raises ShlOverflow if the result
// would exceed the library's maximum representable bit length, rather
// than silently saturating or wrapping.
func (x *Int) Shl(k int) *Int {
	if k < 0 {
		throw(NegBitCount, "negative shift count %d", k)
	}
	if x.m.isZero() {
		return x
	}
	if x.mag.bitLen()+k > maxBitLength {
		throw(ShlOverflow, "left shift would exceed maximum representable bit length")
	}
	var z magia
	return newInt(x.m.isNegSign(), z.shl(x.mag, uint(k)))
}

// Shr returns x >> k (arithmetic, rounding toward negative infinity for
// negative x): the magnitude shift is incremented before the sign is
// reapplied whenever a shifted-out bit was set.
func (x *Int) Shr(k int) *Int {
	if k < 0 {
		throw(NegBitCount, "negative shift count %d", k)
	}
	if x.m.isZero() {
		return x
	}
	if !x.m.isNegSign() {
		var z magia
		return newInt(false, z.shr(x.mag, uint(k)))
	}
	var z magia
	shifted, sticky := z.shrSticky(x.mag, uint(k))
	if sticky {
		var inc magia
		shifted = inc.add(shifted, magia{1})
	}
	return newInt(true, shifted)
}

// Ushr returns |x| >> k, unsigned (magnitude-only, non-negative, no
// round-toward-negative-infinity fixup).
func (x *Int) Ushr(k int) *Int {
	if k < 0 {
		throw(NegBitCount, "negative shift count %d", k)
	}
	var z magia
	return newInt(false, z.shr(x.mag, uint(k)))
}

// WithSetBit returns |x| with bit i set (magnitude-only, non-negative).
func (x *Int) WithSetBit(i int) *Int {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	var z magia
	return newInt(false, z.withSetBit(x.mag, uint(i)))
}

// WithClearBit returns |x| with bit i cleared (magnitude-only,
// non-negative).
func (x *Int) WithClearBit(i int) *Int {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	var z magia
	return newInt(false, z.withClearBit(x.mag, uint(i)))
}

// WithBitMask returns |x| & ((2^width - 1) << i), non-negative.
func (x *Int) WithBitMask(width, i int) *Int {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	if width < 0 {
		throw(NegBitCount, "negative bit width %d", width)
	}
	var z magia
	return newInt(false, z.and(x.mag, bitMask(uint(width), uint(i))))
}

// Bit returns the i'th bit of |x|.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		throw(NegBitIndex, "negative bit index %d", i)
	}
	return x.mag.bit(uint(i))
}

// MagnitudeBitLen returns the bit length of |x|; 0 for zero.
func (x *Int) MagnitudeBitLen() int {
	return x.mag.bitLen()
}

// BitLen returns the bit length in the convention where an exact negative
// power of two reports one less than its magnitude's bit length (so that
// the two's-complement minimal representation's bit length matches). Use
// MagnitudeBitLen for the plain bit length of |x|.
func (x *Int) BitLen() int {
	bl := x.mag.bitLen()
	if x.m.isNegSign() && x.mag.isMagnitudePowerOfTwo() {
		return bl - 1
	}
	return bl
}

// String renders x in decimal.
func (x *Int) String() string {
	if x.m.isNegSign() {
		return "-" + decimalDigits(x.mag)
	}
	return decimalDigits(x.mag)
}

// AppendDecimal appends x's decimal representation to buf and returns the
// extended slice (mirrors intconv.go's buffer-writing split from String()).
// It formats through String, so an intermediate string is still built.
func (x *Int) AppendDecimal(buf []byte) []byte {
	return append(buf, x.String()...)
}

// ToHexString renders x in hexadecimal with an optional format.
func (x *Int) ToHexString(format HexFormat) string {
	sign := ""
	if x.m.isNegSign() {
		sign = "-"
	}
	return sign + "0x" + hexDigits(x.mag, format)
}

// AppendHex appends x's hexadecimal representation to buf.
func (x *Int) AppendHex(buf []byte, format HexFormat) []byte {
	return append(buf, x.ToHexString(format)...)
}

// Bytes encodes x per the requested encoding/endianness.
func (x *Int) Bytes(enc Encoding, end Endianness) []byte {
	return encodeBytes(x.mag, x.m.isNegSign(), enc, end, 1)
}

// BytesWithLen encodes x, sign-extending to at least minLen bytes.
func (x *Int) BytesWithLen(enc Encoding, end Endianness, minLen int) []byte {
	return encodeBytes(x.mag, x.m.isNegSign(), enc, end, minLen)
}

// FitsInt64 reports whether x is representable as an int64.
func (x *Int) FitsInt64() bool {
	if x.mag.bitLen() > 64 {
		return false
	}
	u := magToUint64(x.mag)
	if x.m.isNegSign() {
		return u <= 1<<63
	}
	return u <= 1<<63-1
}

// FitsUint64 reports whether x is representable as a uint64.
func (x *Int) FitsUint64() bool {
	return !x.m.isNegSign() && x.mag.bitLen() <= 64
}

// FitsInt32 reports whether x is representable as an int32.
func (x *Int) FitsInt32() bool {
	return x.FitsInt64() && x.ToInt64() >= -(1<<31) && x.ToInt64() <= 1<<31-1
}

// FitsUint32 reports whether x is representable as a uint32.
func (x *Int) FitsUint32() bool {
	return !x.m.isNegSign() && x.mag.bitLen() <= 32
}

// ToInt64 returns the low 64 bits of |x| with x's sign applied, wrapping
// around on overflow (no error raised).
func (x *Int) ToInt64() int64 {
	u := magToUint64(x.mag)
	if x.m.isNegSign() {
		return -int64(u)
	}
	return int64(u)
}

// ToUint64 returns the low 64 bits of |x|, wrapping around on overflow and
// ignoring sign.
func (x *Int) ToUint64() uint64 {
	return magToUint64(x.mag)
}

// ToInt32 returns the low 32 bits of x (sign-applied, wraparound).
func (x *Int) ToInt32() int32 { return int32(x.ToInt64()) }

// ToUint32 returns the low 32 bits of |x| (wraparound).
func (x *Int) ToUint32() uint32 { return uint32(x.ToUint64()) }

// Int64Exact returns x as an int64, raising OutOfRange if it does not fit.
func (x *Int) Int64Exact() int64 {
	if !x.FitsInt64() {
		throw(OutOfRange, "%s does not fit in an int64", x.String())
	}
	return x.ToInt64()
}

// Uint64Exact returns x as a uint64, raising OutOfRange if it does not
// fit.
func (x *Int) Uint64Exact() uint64 {
	if !x.FitsUint64() {
		throw(OutOfRange, "%s does not fit in a uint64", x.String())
	}
	return x.ToUint64()
}

// Int32Exact returns x as an int32, raising OutOfRange if it does not fit.
func (x *Int) Int32Exact() int32 {
	if !x.FitsInt32() {
		throw(OutOfRange, "%s does not fit in an int32", x.String())
	}
	return x.ToInt32()
}

// Uint32Exact returns x as a uint32, raising OutOfRange if it does not
// fit.
func (x *Int) Uint32Exact() uint32 {
	if !x.FitsUint32() {
		throw(OutOfRange, "%s does not fit in a uint32", x.String())
	}
	return x.ToUint32()
}

// Int64Clamped returns x saturated to the int64 range.
func (x *Int) Int64Clamped() int64 {
	if x.FitsInt64() {
		return x.ToInt64()
	}
	if x.m.isNegSign() {
		return minInt64
	}
	return maxInt64
}

// Uint64Clamped returns x saturated to [0, math.MaxUint64].
func (x *Int) Uint64Clamped() uint64 {
	if x.m.isNegSign() {
		return 0
	}
	if x.FitsUint64() {
		return x.ToUint64()
	}
	return maxUint64
}

// Int32Clamped returns x saturated to the int32 range.
func (x *Int) Int32Clamped() int32 {
	if x.FitsInt32() {
		return x.ToInt32()
	}
	if x.m.isNegSign() {
		return minInt32
	}
	return maxInt32
}

// Uint32Clamped returns x saturated to [0, math.MaxUint32].
func (x *Int) Uint32Clamped() uint32 {
	if x.m.isNegSign() {
		return 0
	}
	if x.FitsUint32() {
		return x.ToUint32()
	}
	return maxUint32
}

const (
	minInt64  = -1 << 63
	maxInt64  = 1<<63 - 1
	maxUint64 = 1<<64 - 1
	minInt32  = -1 << 31
	maxInt32  = 1<<31 - 1
	maxUint32 = 1<<32 - 1
)

// GoString supports the %#v fmt verb with a representation useful for
// debugging large values without dumping every digit.
func (x *Int) GoString() string {
	return fmt.Sprintf("bigint.Int{%d digits, sign=%d}", len(x.String()), x.Sign())
}
