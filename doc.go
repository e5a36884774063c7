// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package gostmac implements a word-oriented HMAC construction over a
// Streebog/GOST-family compression primitive.
//
// The construction operates on 32-bit words rather than byte streams: the
// underlying hash primitive consumes a fixed number of words per call and
// returns a fixed-width word digest. The key occupies the leading portion of
// the primitive's input block and the message (or the inner digest, on the
// outer pass) fills the remainder, so that
//
//	MAC = H(opad ^ K || H(ipad ^ K || M))
//
// with the pad constants broadcast word-wise over the key.
//
// The hash primitive is an injected capability (see Primitive); the
// reference Streebog-256 backend lives in the streebog subpackage.
package gostmac
