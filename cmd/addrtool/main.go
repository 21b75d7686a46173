// Copyright (c) 2020-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/coinaddr/coinaddr/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const appName = "addrtool"

// run executes the tool with the provided command line arguments and returns
// the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, e.Message)
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		if errors.Is(err, errNoCommand) {
			parser := newConfigParser(&config{})
			parser.WriteHelp(stderr)
		}
		return 1
	}

	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s\n", appName, version.Full())
		return 0
	}

	logMgr := newLogManager(stderr)
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(stdout, "Supported subsystems",
			logMgr.SupportedSubsystems())
		return 0
	}
	if err := logMgr.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}

	log.Debugf("Running %s for %s on %s", cfg.command, cfg.coin, cfg.net)
	if err := execute(stdout, cfg); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// execute runs the command selected by the config.
func execute(w io.Writer, cfg *config) error {
	switch cfg.command {
	case "decode":
		return decodeAddresses(w, cfg, cfg.Decode.Args.Addresses)
	case "script":
		return addressFromScript(w, cfg, cfg.Script.Args.Script)
	case "pubkey":
		return addressFromPubKey(w, cfg, cfg.PubKey.Type, cfg.PubKey.Args.PubKey)
	case "taproot":
		return taprootAddress(w, cfg, cfg.Taproot.Args.InternalKey,
			cfg.Taproot.MerkleRoot)
	case "types":
		return listTypes(w)
	}
	return fmt.Errorf("unknown command %q", cfg.command)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
