// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package gostmac

import "errors"

var (
	errNilPrimitive = errors.New("nil primitive")
	errPadsEqual    = errors.New("inner and outer pads must differ")
	errPadsPartial  = errors.New("pad override must set both inner and outer pads")
)

// Options override the default pad constants. Only use this if you know what
// you're doing: non-standard pads produce MACs incompatible with every other
// implementation of the construction.
type Options struct {
	// InnerPad replaces InnerPad for the inner hash pass.
	InnerPad Word

	// OuterPad replaces OuterPad for the outer hash pass.
	OuterPad Word
}

// parseOptions applies the optional pad override. Both pads must be set
// together, and they must differ: equal pads would collapse the two hash
// passes into indistinguishable inputs.
func (e *Engine) parseOptions(options []*Options) error {
	if len(options) == 0 || options[0] == nil {
		return nil
	}

	inner, outer := options[0].InnerPad, options[0].OuterPad
	if inner == 0 && outer == 0 {
		return nil
	}

	if inner == 0 || outer == 0 {
		return ErrConfiguration.Join(errPadsPartial)
	}

	if inner == outer {
		return ErrConfiguration.Join(errPadsEqual)
	}

	e.innerPad = inner
	e.outerPad = outer

	return nil
}
