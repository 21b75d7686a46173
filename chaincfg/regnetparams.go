// Copyright (c) 2018-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegNetParams returns the regression test network address parameters for the
// provided coin or nil when the coin is not known.  The purpose of this network
// is primarily for unit tests and local development.
//
// The legacy address bytes are shared with the public test network.  Only
// Bitcoin defines a distinct segwit human-readable part for the network.
func RegNetParams(coin Coin) *Params {
	params := TestNetParams(coin)
	if params == nil {
		return nil
	}

	params.Name = "regtest"
	params.Net = RegNet
	params.Bech32HRPSegwit = ""
	if coin == Bitcoin {
		params.Bech32HRPSegwit = "bcrt"
	}
	return params
}
