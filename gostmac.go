// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package gostmac

import (
	"crypto/subtle"
	"fmt"
)

// Word is the atomic unit of key, message, and digest material.
type Word = uint32

// Default pad constants, broadcast word-wise over the key. They repeat the
// classic HMAC pad bytes across a full 32-bit word.
const (
	// InnerPad is the pad combined with the key for the inner hash pass.
	InnerPad Word = 0x36363636

	// OuterPad is the pad combined with the key for the outer hash pass.
	OuterPad Word = 0x5c5c5c5c
)

// Primitive is the hash capability the MAC construction is built on. It is
// treated as an opaque, deterministic, pure function over words with fixed
// input and output arities: same input, same output, every time.
type Primitive interface {
	// BlockWords returns the primitive's input arity, in 32-bit words.
	BlockWords() int

	// DigestWords returns the primitive's output arity, in 32-bit words.
	DigestWords() int

	// Hash consumes exactly BlockWords() words and produces exactly
	// DigestWords() words.
	Hash(in []Word) ([]Word, error)
}

// Engine computes word-oriented MACs over an injected hash primitive.
//
// The construction derives its shape from the primitive: for a block arity of
// B words and a digest arity of D words, keys are B-D words and messages are
// D words, so that both the inner block (key || message) and the outer block
// (key || inner digest) fill the primitive's input exactly. The reference
// configuration (B=16, D=8) yields an 8-word key and an 8-word message.
//
// An Engine holds no mutable state: MAC and Verify are safe for concurrent
// use from multiple goroutines.
type Engine struct {
	prim     Primitive
	innerPad Word
	outerPad Word
}

// New returns an Engine over the given primitive, or an error with code
// ErrCodeConfiguration if the primitive's arities leave no room for key
// material, or if the options carry an invalid pad override.
func New(prim Primitive, options ...*Options) (*Engine, error) {
	if prim == nil {
		return nil, ErrConfiguration.Join(errNilPrimitive)
	}

	block, digest := prim.BlockWords(), prim.DigestWords()
	if digest <= 0 || block <= digest {
		return nil, ErrConfiguration.Join(
			fmt.Errorf("primitive arities must satisfy block > digest > 0, got block=%d digest=%d", block, digest))
	}

	e := &Engine{
		prim:     prim,
		innerPad: InnerPad,
		outerPad: OuterPad,
	}

	if err := e.parseOptions(options); err != nil {
		return nil, err
	}

	return e, nil
}

// KeyWords returns the key arity, in words.
func (e *Engine) KeyWords() int {
	return e.prim.BlockWords() - e.prim.DigestWords()
}

// MessageWords returns the message arity, in words.
func (e *Engine) MessageWords() int {
	return e.prim.DigestWords()
}

// Size returns the MAC's output length, in words.
func (e *Engine) Size() int {
	return e.prim.DigestWords()
}

// MAC computes the keyed digest H(opad ^ key || H(ipad ^ key || message)).
//
// The key must be exactly KeyWords() words and the message exactly
// MessageWords() words; violations return errors with codes ErrCodeKeyLength
// and ErrCodeMessageLength. A failure of the underlying primitive propagates
// unchanged under ErrCodePrimitive: the computation is deterministic, so
// retrying with the same inputs can never help.
func (e *Engine) MAC(key, message []Word) ([]Word, error) {
	if len(key) != e.KeyWords() {
		return nil, ErrKeyLength.Join(fmt.Errorf("got %d words, want %d", len(key), e.KeyWords()))
	}

	if len(message) != e.MessageWords() {
		return nil, ErrMessageLength.Join(fmt.Errorf("got %d words, want %d", len(message), e.MessageWords()))
	}

	inner, err := e.pass(e.innerPad, key, message)
	if err != nil {
		return nil, err
	}

	return e.pass(e.outerPad, key, inner)
}

// Verify recomputes the MAC for key and message and compares it to mac in
// constant time. A mismatch is an outcome, not an error: the error return is
// reserved for the same failures MAC can produce.
func (e *Engine) Verify(key, message, mac []Word) (bool, error) {
	computed, err := e.MAC(key, message)
	if err != nil {
		return false, err
	}

	return equalWords(computed, mac), nil
}

// pass runs one hash invocation over (pad ^ key || payload). The pad is
// applied to every key word, never as a single scalar operation.
func (e *Engine) pass(pad Word, key, payload []Word) ([]Word, error) {
	block := make([]Word, e.prim.BlockWords())
	for i, k := range key {
		block[i] = pad ^ k
	}

	copy(block[len(key):], payload)

	digest, err := e.prim.Hash(block)
	if err != nil {
		return nil, ErrPrimitive.Join(err)
	}

	if len(digest) != e.prim.DigestWords() {
		return nil, ErrPrimitive.Join(
			fmt.Errorf("primitive returned %d words, want %d", len(digest), e.prim.DigestWords()))
	}

	return digest, nil
}

func equalWords(a, b []Word) bool {
	if len(a) != len(b) {
		return false
	}

	eq := 1
	for i := range a {
		eq &= subtle.ConstantTimeEq(int32(a[i]), int32(b[i]))
	}

	return eq == 1
}
