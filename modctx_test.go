// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint_test

import (
	"testing"

	"github.com/migueldecimal128/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModContext_ModPow_Scenario6(t *testing.T) {
	modulus := mustFrom(t, "1000000007")
	ctx := bigint.NewModContext(modulus)
	got := ctx.ModPow(mustFrom(t, "2"), mustFrom(t, "1000"))
	assert.Equal(t, "688423210", got.String())
}

func TestModContext_ModPowZeroExponent(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "97"))
	got := ctx.ModPow(mustFrom(t, "5"), bigint.Zero)
	assert.Equal(t, "1", got.String())
}

func TestModContext_EvenModulusUsesBarrett(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "100"))
	got := ctx.ModPow(mustFrom(t, "3"), mustFrom(t, "4"))
	assert.Equal(t, "81", got.String())
}

func TestModContext_ModInverse(t *testing.T) {
	tests := []struct {
		a, m string
	}{
		{"3", "11"},
		{"7", "97"},
		{"123456789", "1000000007"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.m, func(t *testing.T) {
			ctx := bigint.NewModContext(mustFrom(t, tt.m))
			a := mustFrom(t, tt.a)
			inv := ctx.ModInverse(a)
			product := ctx.ModMul(a, inv)
			assert.Equal(t, "1", product.String())
		})
	}
}

func TestModContext_ModInverse_NotInvertible(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "10"))
	assert.Panics(t, func() { ctx.ModInverse(mustFrom(t, "4")) })
}

func TestModContext_ModAddModSub(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "13"))
	a := mustFrom(t, "10")
	b := mustFrom(t, "7")
	assert.Equal(t, "4", ctx.ModAdd(a, b).String()) // (10+7) mod 13 = 4
	assert.Equal(t, "3", ctx.ModSub(a, b).String()) // (10-7) mod 13 = 3
	assert.Equal(t, "10", ctx.ModSub(b, a).String()) // (7-10) mod 13 = 10
}

func TestModContext_ModMulModSqr(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "1000000007"))
	a := mustFrom(t, "123456789")
	b := mustFrom(t, "987654321")
	want := a.Mul(b).Mod(mustFrom(t, "1000000007"))
	assert.Equal(t, want.String(), ctx.ModMul(a, b).String())

	wantSqr := a.Mul(a).Mod(mustFrom(t, "1000000007"))
	assert.Equal(t, wantSqr.String(), ctx.ModSqr(a).String())
}

func TestModContext_ModHalfLucas(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "97"))
	got := ctx.ModHalfLucas(mustFrom(t, "5")) // (5+97)/2 = 51
	assert.Equal(t, "51", got.String())

	got2 := ctx.ModHalfLucas(mustFrom(t, "10")) // 10/2 = 5
	assert.Equal(t, "5", got2.String())
}

func TestModContext_ModHalfLucas_RequiresOddModulus(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "100"))
	assert.Panics(t, func() { ctx.ModHalfLucas(mustFrom(t, "5")) })
}

func TestModContext_NegativeExponentUsesInverse(t *testing.T) {
	ctx := bigint.NewModContext(mustFrom(t, "97"))
	base := mustFrom(t, "5")
	positive := ctx.ModPow(base, mustFrom(t, "3"))
	negative := ctx.ModPow(base, mustFrom(t, "-3"))
	product := ctx.ModMul(positive, negative)
	assert.Equal(t, "1", product.String())
}

func TestModContext_RejectsNonPositiveModulus(t *testing.T) {
	_, err := bigint.FromString("0")
	require.NoError(t, err)
	assert.Panics(t, func() { bigint.NewModContext(bigint.Zero) })
}

func TestModContext_ModPowAgreesWithRepeatedMultiplication(t *testing.T) {
	modulus := mustFrom(t, "1000000007")
	ctx := bigint.NewModContext(modulus)
	base := mustFrom(t, "123456789")
	exp := mustFrom(t, "37")

	got := ctx.ModPow(base, exp)

	acc := bigint.NewAcc().SetOne()
	one := bigint.One
	e := exp
	for !e.IsZero() {
		acc.Mul(base)
		acc.SetMod(acc.ToInt(), modulus)
		e = e.Sub(one)
	}
	assert.Equal(t, acc.String(), got.String())
}
