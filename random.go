// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "math/rand"

// RandSource is an abstract uniform-bit oracle: 32 uniform bits per call,
// plus a uniform boolean for random-sign selection. The library never
// imports math/rand directly outside of MathRandSource, so any source of
// uniform bits (a CSPRNG, a seeded PRNG for reproducible tests) can drive
// the random constructors. Grounded on nat.random's use of *rand.Rand,
// generalized to an interface.
type RandSource interface {
	NextUint32() uint32
	NextBool() bool
}

// MathRandSource adapts *rand.Rand to RandSource.
type MathRandSource struct {
	R *rand.Rand
}

func (s MathRandSource) NextUint32() uint32 {
	return s.R.Uint32()
}

func (s MathRandSource) NextBool() bool {
	return s.R.Uint32()&1 == 1
}

// maxBitLength bounds random/allocation bit lengths: maxLimbs*32, which
// stays within a signed 32-bit range.
const maxBitLength = maxLimbs * wordBits

func checkBitLen(bitLen int) {
	if bitLen < 0 || bitLen > maxBitLength {
		throw(BitLenOutOfRange, "bit length %d out of range [0, %d]", bitLen, maxBitLength)
	}
}

// randomWithMaxBitLen fills ceil(maxBitLen/32) limbs with uniform bits,
// masks the top limb to maxBitLen mod 32 bits, and reports whether the
// result should be treated as negative (always false if zero, since
// zero is never negative; otherwise a uniform coin flip when withSign
// is requested).
func randomWithMaxBitLen(maxBitLen int, rng RandSource, withSign bool) (magia, bool) {
	checkBitLen(maxBitLen)
	if maxBitLen == 0 {
		return nil, false
	}
	n := (maxBitLen + wordBits - 1) / wordBits
	z := make(magia, n)
	for i := range z {
		z[i] = rng.NextUint32()
	}
	topBits := uint(maxBitLen % wordBits)
	if topBits != 0 {
		z[n-1] &= 1<<topBits - 1
	}
	z = z.norm()
	if z.isZero() {
		return nil, false
	}
	neg := withSign && rng.NextBool()
	return z, neg
}

// randomWithBitLen behaves like randomWithMaxBitLen but additionally sets
// the top bit so the result has exactly bitLen bits.
func randomWithBitLen(bitLen int, rng RandSource, withSign bool) (magia, bool) {
	checkBitLen(bitLen)
	if bitLen == 0 {
		return nil, false
	}
	z, _ := randomWithMaxBitLen(bitLen, rng, false)
	z = z.withSetBit(z, uint(bitLen-1))
	neg := withSign && rng.NextBool()
	return z, neg
}

// randomBelow rejection-samples randomWithMaxBitLen(bitLen(max)) until the
// draw is strictly less than max.
func randomBelow(max magia, rng RandSource) magia {
	if max.isZero() {
		throw(DivByZero, "randomBelow requires a positive bound")
	}
	bl := max.bitLen()
	for {
		z, _ := randomWithMaxBitLen(bl, rng, false)
		if cmp(z, max) < 0 {
			return z
		}
	}
}
