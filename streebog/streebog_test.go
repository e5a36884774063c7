// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package streebog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.cypherpunks.ru/gogost/v5/gost34112012256"

	"github.com/gostmac/gostmac"
	"github.com/gostmac/gostmac/internal/wordenc"
)

func TestHash256_Arities(t *testing.T) {
	h := New()

	require.Equal(t, 16, h.BlockWords())
	require.Equal(t, 8, h.DigestWords())
}

func TestHash256_InputArity(t *testing.T) {
	h := New()

	for _, n := range []int{0, 8, 15, 17, 32} {
		_, err := h.Hash(make([]gostmac.Word, n))
		require.ErrorIs(t, err, errInputArity)
	}
}

func TestHash256_Determinism(t *testing.T) {
	h := New()

	in := []gostmac.Word{
		0x36363634, 0x36363636, 0x36363636, 0x36363636,
		0x36363636, 0x36363636, 0x36363635, 0x36363634,
		0, 0, 0, 0, 0, 0, 5, 5,
	}

	first, err := h.Hash(in)
	require.NoError(t, err)
	require.Len(t, first, 8)

	second, err := h.Hash(in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestHash256_WordLayout pins the word adaptation against the underlying
// byte-oriented digest: the primitive must hash exactly the big-endian
// serialization of its input block.
func TestHash256_WordLayout(t *testing.T) {
	in := make([]gostmac.Word, 16)
	for i := range in {
		in[i] = gostmac.Word(i) * 0x01010101
	}

	fromWords, err := New().Hash(in)
	require.NoError(t, err)

	d := gost34112012256.New()
	_, err = d.Write(wordenc.Serialize(in))
	require.NoError(t, err)

	fromBytes, err := wordenc.Deserialize(d.Sum(nil))
	require.NoError(t, err)
	require.Equal(t, fromBytes, fromWords)
}

func TestHash256_Avalanche(t *testing.T) {
	in := make([]gostmac.Word, 16)
	in[15] = 5

	baseline, err := New().Hash(in)
	require.NoError(t, err)

	in[0] ^= 1

	flipped, err := New().Hash(in)
	require.NoError(t, err)
	require.NotEqual(t, baseline, flipped)
}
