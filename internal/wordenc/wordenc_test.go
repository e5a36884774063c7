// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package wordenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, Serialize([]uint32{0x01020304}))
	require.Equal(t,
		[]byte{0x00, 0x00, 0x00, 0x05, 0xde, 0xad, 0xbe, 0xef},
		Serialize([]uint32{5, 0xdeadbeef}))
	require.Empty(t, Serialize(nil))
}

func TestDeserialize(t *testing.T) {
	words, err := Deserialize([]byte{0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x05})
	require.NoError(t, err)
	require.Equal(t, []uint32{0x01020304, 5}, words)

	_, err = Deserialize([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, errByteLength)
}

func TestRoundTrip(t *testing.T) {
	in := []uint32{0, 1, 0xffffffff, 0x36363636, 0x5c5c5c5c}

	out, err := Deserialize(Serialize(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestHex(t *testing.T) {
	require.Equal(t, "0000000100000002", HexString([]uint32{1, 2}))

	words, err := ParseHex("0x0000000100000002")
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2}, words)

	words, err = ParseHex("deadbeef")
	require.NoError(t, err)
	require.Equal(t, []uint32{0xdeadbeef}, words)

	_, err = ParseHex("xyz")
	require.Error(t, err)

	// Partial words are rejected.
	_, err = ParseHex("beef")
	require.ErrorIs(t, err, errByteLength)
}

func TestDecimalList(t *testing.T) {
	require.Equal(t, "0,0,5,4294967295", DecimalList([]uint32{0, 0, 5, 0xffffffff}))

	words, err := ParseDecimalList("0, 0, 5, 4294967295")
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 0, 5, 0xffffffff}, words)

	words, err = ParseDecimalList("[2111023067, 3863572868]")
	require.NoError(t, err)
	require.Equal(t, []uint32{2111023067, 3863572868}, words)

	_, err = ParseDecimalList("1,2,three")
	require.Error(t, err)

	_, err = ParseDecimalList("4294967296")
	require.Error(t, err)

	words, err = ParseDecimalList("")
	require.NoError(t, err)
	require.Empty(t, words)
}
