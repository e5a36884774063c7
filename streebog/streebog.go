// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package streebog adapts the Streebog-256 hash (GOST R 34.11-2012) to the
// word-oriented primitive contract: 16 input words, 8 digest words. The hash
// internals are delegated entirely to gogost; this package only fixes the
// arities and the big-endian word layout.
package streebog

import (
	"errors"
	"fmt"

	"go.cypherpunks.ru/gogost/v5/gost34112012256"

	"github.com/gostmac/gostmac"
	"github.com/gostmac/gostmac/internal/wordenc"
)

const (
	blockWords  = 16
	digestWords = 8
)

var errInputArity = errors.New("streebog: input is not 16 words")

// Hash256 is the Streebog-256 word primitive. The zero value is ready to use,
// and values are safe for concurrent use: each Hash call runs on a fresh
// digest state.
type Hash256 struct{}

// New returns the Streebog-256 word primitive.
func New() *Hash256 {
	return &Hash256{}
}

// BlockWords returns the input arity, in words.
func (*Hash256) BlockWords() int {
	return blockWords
}

// DigestWords returns the output arity, in words.
func (*Hash256) DigestWords() int {
	return digestWords
}

// Hash consumes exactly 16 words and returns the 8-word Streebog-256 digest
// of their big-endian serialization.
func (*Hash256) Hash(in []gostmac.Word) ([]gostmac.Word, error) {
	if len(in) != blockWords {
		return nil, fmt.Errorf("%w, got %d", errInputArity, len(in))
	}

	d := gost34112012256.New()
	_, _ = d.Write(wordenc.Serialize(in)) // never errors

	return wordenc.Deserialize(d.Sum(nil))
}

// String returns the primitive's name.
func (*Hash256) String() string {
	return "Streebog-256"
}
