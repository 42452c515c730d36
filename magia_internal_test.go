// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMag(t *testing.T, s string) magia {
	t.Helper()
	mag, _, err := parseSigned(s)
	require.NoError(t, err)
	return mag
}

func TestMagia_AddSub(t *testing.T) {
	tests := []struct {
		x, y, sum string
	}{
		{"0", "0", "0"},
		{"1", "1", "2"},
		{"4294967295", "1", "4294967296"}, // word carry
		{"123456789012345678901234", "1", "123456789012345678901235"},
	}
	for _, tt := range tests {
		t.Run(tt.x+"+"+tt.y, func(t *testing.T) {
			x, y := mustMag(t, tt.x), mustMag(t, tt.y)
			var z magia
			got := decimalDigits(z.add(x, y))
			assert.Equal(t, tt.sum, got)

			var z2 magia
			back := decimalDigits(z2.sub(z.add(x, y), y))
			assert.Equal(t, tt.x, back)
		})
	}
}

func TestMagia_SubUnderflowPanics(t *testing.T) {
	x := mustMag(t, "1")
	y := mustMag(t, "2")
	var z magia
	assert.Panics(t, func() { z.sub(x, y) })
}

func TestMagia_MulBasicAndKaratsuba(t *testing.T) {
	tests := []struct {
		x, y, product string
	}{
		{"0", "12345", "0"},
		{"2", "3", "6"},
		{"123456789", "987654321", "121932631112635269"},
	}
	for _, tt := range tests {
		t.Run(tt.x+"*"+tt.y, func(t *testing.T) {
			x, y := mustMag(t, tt.x), mustMag(t, tt.y)
			var z magia
			got := decimalDigits(z.mul(x, y))
			assert.Equal(t, tt.product, got)
		})
	}

	t.Run("large operands use karatsuba", func(t *testing.T) {
		// construct two operands above karatsubaThreshold limbs and cross-check
		// against schoolbook basicMul directly.
		x := make(magia, karatsubaThreshold+5)
		y := make(magia, karatsubaThreshold+5)
		for i := range x {
			x[i] = word(i*7 + 1)
			y[i] = word(i*13 + 3)
		}
		x = x.norm()
		y = y.norm()

		var viaKaratsuba magia
		viaKaratsuba = viaKaratsuba.karatsubaMul(x, y)

		schoolbook := make(magia, len(x)+len(y))
		basicMul(schoolbook, x, y)
		schoolbook = schoolbook.norm()

		assert.Equal(t, decimalDigits(schoolbook), decimalDigits(viaKaratsuba))
	})
}

func TestMagia_SqrMatchesMulSelf(t *testing.T) {
	inputs := []string{"0", "1", "12345", "123456789012345678901234567890"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			x := mustMag(t, in)
			var sq, mulSelf magia
			sq = sq.sqr(x)
			mulSelf = mulSelf.mul(x, x)
			assert.Equal(t, decimalDigits(mulSelf), decimalDigits(sq))
		})
	}
}

func TestMagia_DivLarge(t *testing.T) {
	tests := []struct {
		u, v, q, r string
	}{
		{"100", "7", "14", "2"},
		{"123456789012345678901234", "987654321", "124999998873437", "493729957"},
		{"123456789012345678901234", "98765432109876543210", "1249", "98764307109876431944"},
		{"0", "5", "0", "0"},
		{"5", "5", "1", "0"},
		{"4", "5", "0", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.u+"/"+tt.v, func(t *testing.T) {
			u, v := mustMag(t, tt.u), mustMag(t, tt.v)
			var q, r magia
			q, r = q.div(r, u, v)
			assert.Equal(t, tt.q, decimalDigits(q))
			assert.Equal(t, tt.r, decimalDigits(r))

			// u == q*v + r
			var prod, sum magia
			prod = prod.mul(q, v)
			sum = sum.add(prod, r)
			assert.Equal(t, decimalDigits(u), decimalDigits(sum))
		})
	}
}

func TestMagia_DivByZeroPanics(t *testing.T) {
	u := mustMag(t, "5")
	var q, r magia
	assert.Panics(t, func() { q.div(r, u, nil) })
}

func TestMagia_ShiftRoundTrip(t *testing.T) {
	x := mustMag(t, "123456789012345678901234567890")
	for _, s := range []uint{0, 1, 17, 32, 33, 64, 100} {
		var shifted, back magia
		shifted = shifted.shl(x, s)
		back = back.shr(shifted, s)
		assert.Equal(t, decimalDigits(x), decimalDigits(back), "shift %d", s)
	}
}

func TestMagia_BitOps(t *testing.T) {
	x := mustMag(t, "10") // 1010
	y := mustMag(t, "12") // 1100
	var and, or, xor magia
	assert.Equal(t, "8", decimalDigits(and.and(x, y)))  // 1000
	assert.Equal(t, "14", decimalDigits(or.or(x, y)))   // 1110
	assert.Equal(t, "6", decimalDigits(xor.xor(x, y)))  // 0110
}

func TestMagia_BitLenAndTrailingZeros(t *testing.T) {
	tests := []struct {
		in          string
		bitLen      int
		trailingZ   uint
	}{
		{"0", 0, 0},
		{"1", 1, 0},
		{"8", 4, 3},
		{"255", 8, 0},
		{"256", 9, 8},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			x := mustMag(t, tt.in)
			assert.Equal(t, tt.bitLen, x.bitLen())
			assert.Equal(t, tt.trailingZ, x.trailingZeroBits())
		})
	}
}

func TestMagia_WindowExtractsAcrossLimbs(t *testing.T) {
	// bit 30 through bit 40 spans the boundary between limb 0 and limb 1.
	x := singleBit(40)
	var combined magia
	combined = combined.withSetBit(x, 30)
	got := combined.window(30, 11) // bits [30,40], both endpoints set
	assert.Equal(t, uint64(1|1<<10), got)
}
