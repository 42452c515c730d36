// Copyright (c) 2026 The BigInt Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSigned_DecimalAndHex(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantNeg bool
	}{
		{"0", "0", false},
		{"42", "42", false},
		{"-42", "42", true},
		{"+42", "42", false},
		{"-0", "0", false}, // no negative zero
		{"1_000_000", "1000000", false},
		{"0xFF", "255", false},
		{"0xff", "255", false},
		{"-0x10", "16", true},
		{"0x", "", false}, // handled by error test below; not reached
	}
	for _, tt := range tests[:len(tests)-1] {
		t.Run(tt.in, func(t *testing.T) {
			mag, neg, err := parseSigned(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, decimalDigits(mag))
			assert.Equal(t, tt.wantNeg, neg)
		})
	}
}

func TestParseSigned_Errors(t *testing.T) {
	for _, in := range []string{"", "12_", "_12", "1__2", "12a", "0x", "0xg", "+", "-", "1x"} {
		t.Run(in, func(t *testing.T) {
			_, _, err := parseSigned(in)
			require.Error(t, err)
		})
	}
}

func TestDecimalDigits_MultiChunkBoundary(t *testing.T) {
	// exactly 10^9, the chunk size, exercises the padded-chunk path.
	mag, _, err := parseSigned("1000000000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000", decimalDigits(mag))

	mag2, _, err := parseSigned("999999999000000001")
	require.NoError(t, err)
	assert.Equal(t, "999999999000000001", decimalDigits(mag2))
}

func TestHexDigits_GroupingAndCase(t *testing.T) {
	mag, _, err := parseSigned("0xDEADBEEF")
	require.NoError(t, err)

	assert.Equal(t, "deadbeef", hexDigits(mag, HexFormat{}))
	assert.Equal(t, "DEADBEEF", hexDigits(mag, HexFormat{Uppercase: true}))
	assert.Equal(t, "DEAD_BEEF", hexDigits(mag, HexFormat{Uppercase: true, GroupSize: 4}))
}

func TestHexDigits_Zero(t *testing.T) {
	var mag magia
	assert.Equal(t, "0", hexDigits(mag, HexFormat{}))
}
