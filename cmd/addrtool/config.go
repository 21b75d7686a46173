// Copyright (c) 2020-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/coinaddr/coinaddr/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCoin       = "bitcoin"
	defaultNet        = "mainnet"
	defaultDebugLevel = "info"
)

// errNoCommand is returned by loadConfig when neither a command nor an option
// that exits early was provided.
var errNoCommand = errors.New("a command must be specified")

// decodeCmd describes the options of the decode command.
type decodeCmd struct {
	Args struct {
		Addresses []string `positional-arg-name:"address" required:"1"`
	} `positional-args:"yes"`
}

// scriptCmd describes the options of the script command.
type scriptCmd struct {
	Args struct {
		Script string `positional-arg-name:"script-hex"`
	} `positional-args:"yes" required:"yes"`
}

// pubKeyCmd describes the options of the pubkey command.
type pubKeyCmd struct {
	Type string `short:"t" long:"type" description:"address type to derive" default:"p2pkh" choice:"p2pkh" choice:"p2wpkh" choice:"p2shwpkh"`
	Args struct {
		PubKey string `positional-arg-name:"pubkey-hex"`
	} `positional-args:"yes" required:"yes"`
}

// taprootCmd describes the options of the taproot command.
type taprootCmd struct {
	MerkleRoot string `short:"m" long:"merkleroot" description:"hex-encoded merkle root of the script tree to commit to"`
	Args       struct {
		InternalKey string `positional-arg-name:"xonly-pubkey-hex"`
	} `positional-args:"yes" required:"yes"`
}

// typesCmd describes the options of the types command.
type typesCmd struct{}

// config defines the configuration options for addrtool.
type config struct {
	Coin        string `short:"c" long:"coin" description:"coin to derive addresses for {bitcoin, dogecoin, litecoin, stratis}"`
	Net         string `short:"n" long:"net" description:"network to derive addresses for {mainnet, testnet, signet, regtest}"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	Upper       bool   `short:"u" long:"upper" description:"print segwit addresses in uppercase"`
	Dump        bool   `long:"dump" description:"dump the decoded payload of each address"`
	ShowVersion bool   `short:"V" long:"version" description:"display version information and exit"`

	Decode  decodeCmd  `command:"decode" description:"describe one or more addresses"`
	Script  scriptCmd  `command:"script" description:"print the address an output script pays to"`
	PubKey  pubKeyCmd  `command:"pubkey" description:"derive an address from a public key"`
	Taproot taprootCmd `command:"taproot" description:"derive a taproot address from an internal key"`
	Types   typesCmd   `command:"types" description:"list the standard address types"`

	coin    chaincfg.Coin
	net     chaincfg.Network
	command string
}

// newConfigParser returns a new command line parser for the provided config.
func newConfigParser(cfg *config) *flags.Parser {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = appName
	parser.SubcommandsOptional = true
	return parser
}

// loadConfig parses the provided command line arguments into a config and
// validates it.
//
// Errors of type *flags.Error with type flags.ErrHelp are returned along with
// the help message when help was requested.  The returned config is still
// usable when only the version or the supported subsystems were requested.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Coin:       defaultCoin,
		Net:        defaultNet,
		DebugLevel: defaultDebugLevel,
	}
	parser := newConfigParser(&cfg)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if cfg.ShowVersion || cfg.DebugLevel == "show" {
		return &cfg, nil
	}
	if parser.Active == nil {
		return nil, errNoCommand
	}
	cfg.command = parser.Active.Name

	coin, err := chaincfg.ParseCoin(cfg.Coin)
	if err != nil {
		return nil, fmt.Errorf("invalid --coin: %w", err)
	}
	net, err := chaincfg.ParseNetwork(cfg.Net)
	if err != nil {
		return nil, fmt.Errorf("invalid --net: %w", err)
	}
	cfg.coin, cfg.net = coin, net
	return &cfg, nil
}
