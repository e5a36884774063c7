// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package gostmac_test

import (
	"fmt"

	"github.com/gostmac/gostmac"
	"github.com/gostmac/gostmac/streebog"
)

// ExampleEngine computes and verifies a MAC over the reference Streebog-256
// primitive: an 8-word key, an 8-word message, an 8-word tag.
func ExampleEngine() {
	engine, err := gostmac.New(streebog.New())
	if err != nil {
		panic(err)
	}

	key := []gostmac.Word{0, 0, 0, 0, 0, 0, 3, 2}
	message := []gostmac.Word{0, 0, 0, 0, 0, 0, 5, 5}

	mac, err := engine.MAC(key, message)
	if err != nil {
		panic(err)
	}

	ok, err := engine.Verify(key, message, mac)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(mac))
	fmt.Println(ok)
	// Output:
	// 8
	// true
}
