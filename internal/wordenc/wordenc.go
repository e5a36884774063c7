// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package wordenc converts between 32-bit word sequences and their byte and
// textual representations. Word material is serialized big-endian.
package wordenc

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WordSize is the byte width of a single word.
const WordSize = 4

var errByteLength = errors.New("byte length is not a multiple of the word size")

// Serialize returns the big-endian byte representation of in.
func Serialize(in []uint32) []byte {
	out := make([]byte, len(in)*WordSize)
	for i, w := range in {
		binary.BigEndian.PutUint32(out[i*WordSize:], w)
	}

	return out
}

// Deserialize decodes big-endian bytes into words. The input length must be a
// multiple of WordSize.
func Deserialize(in []byte) ([]uint32, error) {
	if len(in)%WordSize != 0 {
		return nil, errByteLength
	}

	out := make([]uint32, len(in)/WordSize)
	for i := range out {
		out[i] = binary.BigEndian.Uint32(in[i*WordSize:])
	}

	return out, nil
}

// HexString returns the big-endian hex representation of in.
func HexString(in []uint32) string {
	return hex.EncodeToString(Serialize(in))
}

// ParseHex decodes a big-endian hex string, with or without a 0x prefix, into
// words.
func ParseHex(s string) ([]uint32, error) {
	s = strings.TrimPrefix(s, "0x")

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex word sequence: %w", err)
	}

	return Deserialize(b)
}

// DecimalList formats words as a comma-separated decimal list, the notation
// used by witness-generation harnesses.
func DecimalList(in []uint32) string {
	parts := make([]string, len(in))
	for i, w := range in {
		parts[i] = strconv.FormatUint(uint64(w), 10)
	}

	return strings.Join(parts, ",")
}

// ParseDecimalList parses a comma-separated decimal list into words.
// Surrounding whitespace and brackets are tolerated.
func ParseDecimalList(s string) ([]uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]uint32, len(parts))

	for i, p := range parts {
		w, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid word %q: %w", strings.TrimSpace(p), err)
		}

		out[i] = uint32(w)
	}

	return out, nil
}
