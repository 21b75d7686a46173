// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownNetwork describes an error where the provided network name
	// or identifier does not refer to a known network.
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrUnknownCoin describes an error where the provided coin name or
	// identifier does not refer to a known coin.
	ErrUnknownCoin = errors.New("unknown coin")
)

// Network identifies one of the standard networks a coin may operate on.
type Network uint8

// These constants define the standard networks.
const (
	// MainNet is the main network which is intended for the transfer of
	// monetary value.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// SigNet is the public signet test network.
	SigNet

	// RegNet is the regression test network.
	RegNet
)

// networkNames maps each network to its canonical name.
var networkNames = [...]string{
	MainNet: "mainnet",
	TestNet: "testnet",
	SigNet:  "signet",
	RegNet:  "regtest",
}

// String returns the canonical name of the network.
func (n Network) String() string {
	if int(n) < len(networkNames) {
		return networkNames[n]
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// IsMainNet returns whether or not the network is the main network.
func (n Network) IsMainNet() bool {
	return n == MainNet
}

// ParseNetwork returns the network associated with the provided name.  The
// comparison is case insensitive and a few common aliases are accepted.
func ParseNetwork(name string) (Network, error) {
	switch strings.ToLower(name) {
	case "mainnet", "main", "bitcoin":
		return MainNet, nil
	case "testnet", "test", "testnet3":
		return TestNet, nil
	case "signet":
		return SigNet, nil
	case "regtest", "regnet":
		return RegNet, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}

// Networks returns all of the standard networks.
func Networks() []Network {
	return []Network{MainNet, TestNet, SigNet, RegNet}
}

// Coin identifies a Bitcoin-derived chain.  Coins share script semantics but
// use distinct address prefixes.
type Coin uint8

// These constants define the supported coins.
const (
	Bitcoin Coin = iota
	Dogecoin
	Litecoin
	Stratis
)

// coinNames maps each coin to its canonical name.
var coinNames = [...]string{
	Bitcoin:  "Bitcoin",
	Dogecoin: "Dogecoin",
	Litecoin: "Litecoin",
	Stratis:  "Stratis",
}

// String returns the canonical name of the coin.
func (c Coin) String() string {
	if int(c) < len(coinNames) {
		return coinNames[c]
	}
	return fmt.Sprintf("Unknown Coin (%d)", uint8(c))
}

// ParseCoin returns the coin associated with the provided name or ticker.  The
// comparison is case insensitive.
func ParseCoin(name string) (Coin, error) {
	switch strings.ToLower(name) {
	case "bitcoin", "btc":
		return Bitcoin, nil
	case "dogecoin", "doge":
		return Dogecoin, nil
	case "litecoin", "ltc":
		return Litecoin, nil
	case "stratis", "strax":
		return Stratis, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCoin, name)
}

// Coins returns all of the supported coins.
func Coins() []Coin {
	return []Coin{Bitcoin, Dogecoin, Litecoin, Stratis}
}
