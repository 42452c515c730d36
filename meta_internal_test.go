// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeta_ZeroIsCanonical(t *testing.T) {
	z := newMeta(true, 0)
	assert.True(t, z.isZero())
	assert.False(t, z.isNegSign())
	assert.Equal(t, 0, z.signum())
}

func TestMeta_SignAndLength(t *testing.T) {
	m := newMeta(true, 3)
	assert.Equal(t, 3, m.length())
	assert.True(t, m.isNegSign())
	assert.True(t, m.isNegative())
	assert.False(t, m.isPositive())
	assert.Equal(t, -1, m.signum())

	p := newMeta(false, 3)
	assert.True(t, p.isPositive())
	assert.Equal(t, 1, p.signum())
}

func TestMeta_AbsAndNegate(t *testing.T) {
	m := newMeta(true, 5)
	assert.False(t, m.abs().isNegSign())
	assert.Equal(t, 5, m.abs().length())

	flipped := m.negate()
	assert.False(t, flipped.isNegSign())
	flippedBack := flipped.negate()
	assert.True(t, flippedBack.isNegSign())

	z := newMeta(false, 0)
	assert.Equal(t, z, z.negate()) // negating zero is a no-op
}

func TestMeta_WithSign(t *testing.T) {
	m := newMeta(false, 4)
	assert.True(t, m.withSign(true).isNegSign())
	assert.False(t, m.withSign(true).withSign(false).isNegSign())

	z := newMeta(false, 0)
	assert.False(t, z.withSign(true).isNegSign()) // zero has no sign
}
