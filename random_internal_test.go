// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomWithMaxBitLen_RespectsBound(t *testing.T) {
	src := MathRandSource{R: rand.New(rand.NewSource(1))}
	for i := 0; i < 200; i++ {
		mag, _ := randomWithMaxBitLen(37, src, false)
		assert.LessOrEqual(t, mag.bitLen(), 37)
	}
}

func TestRandomWithBitLen_ExactLength(t *testing.T) {
	src := MathRandSource{R: rand.New(rand.NewSource(2))}
	for i := 0; i < 200; i++ {
		mag, _ := randomWithBitLen(64, src, false)
		assert.Equal(t, 64, mag.bitLen())
	}
}

func TestRandomWithBitLen_Zero(t *testing.T) {
	src := MathRandSource{R: rand.New(rand.NewSource(3))}
	mag, neg := randomWithBitLen(0, src, true)
	assert.True(t, mag.isZero())
	assert.False(t, neg)
}

func TestRandomBelow_StrictlyLessThanMax(t *testing.T) {
	max, _, _ := parseSigned("1000")
	src := MathRandSource{R: rand.New(rand.NewSource(4))}
	for i := 0; i < 500; i++ {
		got := randomBelow(max, src)
		assert.Less(t, cmp(got, max), 0)
	}
}

func TestRandomBelow_PanicsOnZeroBound(t *testing.T) {
	var zero magia
	src := MathRandSource{R: rand.New(rand.NewSource(5))}
	assert.Panics(t, func() { randomBelow(zero, src) })
}

func TestCheckBitLen_RejectsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { checkBitLen(-1) })
	assert.Panics(t, func() { checkBitLen(maxBitLength + 1) })
	assert.NotPanics(t, func() { checkBitLen(maxBitLength) })
}
