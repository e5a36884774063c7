// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package gostmac

import (
	"crypto"
	"errors"
	"fmt"

	"github.com/bytemare/hash"

	"github.com/gostmac/gostmac/internal/wordenc"
)

var errUnsupportedHash = errors.New("unsupported or unregistered hash identifier")

// FromCrypto adapts a registered byte-oriented hash function to the word
// primitive contract, with a block of twice the digest width, matching the
// reference Streebog layout. It allows exercising the construction against
// standard hashes (e.g. crypto.SHA256, crypto.SHA3_256) independently of the
// GOST primitive.
func FromCrypto(id crypto.Hash) (Primitive, error) {
	h := hash.FromCrypto(id)
	if h == 0 || !h.Available() {
		return nil, ErrConfiguration.Join(fmt.Errorf("%w: %v", errUnsupportedHash, id))
	}

	size := h.GetHashFunction().Size()
	if size%wordenc.WordSize != 0 {
		return nil, ErrConfiguration.Join(
			fmt.Errorf("digest size %d is not a multiple of the word size", size))
	}

	return &cryptoPrimitive{id: h, digestWords: size / wordenc.WordSize}, nil
}

// cryptoPrimitive hashes the big-endian serialization of its input block with
// a byte-oriented hash. Each call runs on a fresh hash state.
type cryptoPrimitive struct {
	id          hash.Hash
	digestWords int
}

func (c *cryptoPrimitive) BlockWords() int {
	return 2 * c.digestWords
}

func (c *cryptoPrimitive) DigestWords() int {
	return c.digestWords
}

func (c *cryptoPrimitive) Hash(in []Word) ([]Word, error) {
	if len(in) != c.BlockWords() {
		return nil, fmt.Errorf("input is %d words, want %d", len(in), c.BlockWords())
	}

	h := c.id.GetHashFunction()
	_, _ = h.Write(wordenc.Serialize(in))

	return wordenc.Deserialize(h.Sum(nil))
}
