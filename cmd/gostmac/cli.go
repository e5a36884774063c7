// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024-2026 The gostmac authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package main provides the gostmac harness: it computes a MAC over a fixed
// word key and message, and optionally checks the result against an expected
// vector. Matching is a harness outcome, not an engine error, so a mismatch
// is reported and mapped to the exit code.
package main

import (
	"crypto"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gostmac/gostmac"
	"github.com/gostmac/gostmac/internal/wordenc"
	"github.com/gostmac/gostmac/keys"
	"github.com/gostmac/gostmac/streebog"
)

var errMismatch = errors.New("MAC does not match the expected vector")

// CLI represents the root CLI structure.
type CLI struct {
	Backend  string `flag:"backend" enum:"streebog,sha256,sha3-256" default:"streebog" help:"Hash primitive backend"`
	LogLevel string `flag:"log-level" env:"GOSTMAC_LOG_LEVEL" default:"info" help:"Log level"`

	Compute ComputeCmd `cmd:"" help:"Compute the MAC for a key and message"`
	Verify  VerifyCmd  `cmd:"" help:"Compute the MAC and compare it to an expected vector"`
}

// primitive returns the selected hash backend.
func (c *CLI) primitive() (gostmac.Primitive, error) {
	switch c.Backend {
	case "sha256":
		return gostmac.FromCrypto(crypto.SHA256)
	case "sha3-256":
		return gostmac.FromCrypto(crypto.SHA3_256)
	default:
		return streebog.New(), nil
	}
}

// logger builds a console zap logger at the configured level.
func (c *CLI) logger() *zap.Logger {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// macInputs holds the flags shared by the compute and verify commands.
type macInputs struct {
	Key        string `flag:"key" help:"Key as decimal word list or hex"`
	Passphrase string `flag:"passphrase" env:"GOSTMAC_PASSPHRASE" help:"Derive the key from a passphrase instead of --key"`
	Salt       string `flag:"salt" help:"Salt for passphrase derivation, hex"`
	Message    string `flag:"message" required:"" help:"Message as decimal word list or hex"`
}

// resolve parses the inputs against the engine's arities.
func (in *macInputs) resolve(e *gostmac.Engine) (key, message []gostmac.Word, err error) {
	switch {
	case in.Passphrase != "":
		var salt []byte
		if in.Salt != "" {
			if salt, err = hex.DecodeString(strings.TrimPrefix(in.Salt, "0x")); err != nil {
				return nil, nil, fmt.Errorf("invalid salt: %w", err)
			}
		}

		key, err = keys.FromPassphrase([]byte(in.Passphrase), salt, e.KeyWords(), 0)
	case in.Key != "":
		key, err = keys.Parse(in.Key, e.KeyWords())
	default:
		return nil, nil, errors.New("one of --key or --passphrase is required")
	}

	if err != nil {
		return nil, nil, fmt.Errorf("invalid key: %w", err)
	}

	message, err = keys.Parse(in.Message, e.MessageWords())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid message: %w", err)
	}

	return key, message, nil
}

// ComputeCmd computes and prints the MAC.
type ComputeCmd struct {
	macInputs

	CLI *CLI `kong:"-"`
}

// Run executes the compute command.
func (cmd *ComputeCmd) Run() error {
	logger := cmd.CLI.logger()
	defer func() { _ = logger.Sync() }()

	mac, err := computeMAC(cmd.CLI, &cmd.macInputs, logger)
	if err != nil {
		logger.Error("MAC computation failed", zap.Error(err))
		return err
	}

	fmt.Println(wordenc.DecimalList(mac))
	fmt.Println(wordenc.HexString(mac))

	return nil
}

// VerifyCmd computes the MAC and compares it to an expected vector.
type VerifyCmd struct {
	macInputs

	Expected string `flag:"expected" required:"" help:"Expected MAC as decimal word list or hex"`

	CLI *CLI `kong:"-"`
}

// Run executes the verify command.
func (cmd *VerifyCmd) Run() error {
	logger := cmd.CLI.logger()
	defer func() { _ = logger.Sync() }()

	engine, key, message, err := setup(cmd.CLI, &cmd.macInputs, logger)
	if err != nil {
		logger.Error("MAC computation failed", zap.Error(err))
		return err
	}

	expected, err := keys.Parse(cmd.Expected, engine.Size())
	if err != nil {
		logger.Error("Invalid expected vector", zap.Error(err))
		return err
	}

	ok, err := engine.Verify(key, message, expected)
	if err != nil {
		logger.Error("MAC computation failed", zap.Error(err))
		return err
	}

	if !ok {
		logger.Warn("Verification failed", zap.String("expected", wordenc.DecimalList(expected)))
		return errMismatch
	}

	logger.Info("Verification succeeded", zap.String("mac", wordenc.DecimalList(expected)))
	fmt.Println("OK")

	return nil
}

// setup builds the engine for the selected backend and resolves the key and
// message inputs against its arities.
func setup(cli *CLI, in *macInputs, logger *zap.Logger) (*gostmac.Engine, []gostmac.Word, []gostmac.Word, error) {
	prim, err := cli.primitive()
	if err != nil {
		return nil, nil, nil, err
	}

	engine, err := gostmac.New(prim)
	if err != nil {
		return nil, nil, nil, err
	}

	key, message, err := in.resolve(engine)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Debug("Computing MAC",
		zap.String("backend", cli.Backend),
		zap.Int("key_words", engine.KeyWords()),
		zap.Int("message_words", engine.MessageWords()),
	)

	return engine, key, message, nil
}

func computeMAC(cli *CLI, in *macInputs, logger *zap.Logger) ([]gostmac.Word, error) {
	engine, key, message, err := setup(cli, in, logger)
	if err != nil {
		return nil, err
	}

	return engine.MAC(key, message)
}
