// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gostmac"),
		kong.Description("Word-oriented HMAC over a Streebog/GOST-family hash"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	cli.Compute.CLI = &cli
	cli.Verify.CLI = &cli

	if err := ctx.Run(); err != nil {
		os.Exit(1)
	}
}
