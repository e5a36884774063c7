// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package keys produces and parses fixed-arity word keys for the MAC engine.
//
// The engine itself never derives key material (a key is supplied once per
// computation); this package covers the callers that have to produce one,
// either from a textual word representation or by stretching a passphrase.
package keys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytemare/ksf"

	"github.com/gostmac/gostmac"
	"github.com/gostmac/gostmac/internal/wordenc"
)

var (
	errWordCount  = errors.New("word count must be positive")
	errEmptyInput = errors.New("empty key input")
)

// FromPassphrase stretches a passphrase into exactly words key words using
// the given key stretching function, Argon2id if unset. The salt is the
// caller's responsibility; a fixed salt yields a deterministic key.
func FromPassphrase(passphrase, salt []byte, words int, id ksf.Identifier) ([]gostmac.Word, error) {
	if words <= 0 {
		return nil, errWordCount
	}

	if id == 0 {
		id = ksf.Argon2id
	}

	stretched := id.Get().Harden(passphrase, salt, words*wordenc.WordSize)

	return wordenc.Deserialize(stretched)
}

// Parse decodes a key from its textual form: either a comma-separated
// decimal word list ("0,0,0,0,0,0,3,2") or a big-endian hex string. Decimal
// wins ties: an input consisting only of decimal digits is always read as a
// single decimal word, so hex strings that carry no letter must be
// 0x-prefixed to disambiguate. The expected word count is enforced.
func Parse(s string, words int) ([]gostmac.Word, error) {
	if words <= 0 {
		return nil, errWordCount
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyInput
	}

	var (
		key []gostmac.Word
		err error
	)

	if strings.Contains(s, ",") || isDecimal(s) {
		key, err = wordenc.ParseDecimalList(s)
	} else {
		key, err = wordenc.ParseHex(s)
	}

	if err != nil {
		return nil, err
	}

	if len(key) != words {
		return nil, fmt.Errorf("key is %d words, want %d", len(key), words)
	}

	return key, nil
}

func isDecimal(s string) bool {
	s = strings.Trim(s, "[] ")
	for _, r := range s {
		if (r < '0' || r > '9') && r != ',' && r != ' ' {
			return false
		}
	}

	return s != ""
}
