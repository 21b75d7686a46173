// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// SigNetParams returns the signet test network address parameters for the
// provided coin or nil when the coin is not known.
//
// Signet shares the legacy address bytes and the segwit human-readable part
// of the public test network, so addresses for the two networks can not be
// told apart once encoded.  Only Bitcoin defines segwit addresses on signet.
func SigNetParams(coin Coin) *Params {
	params := TestNetParams(coin)
	if params == nil {
		return nil
	}

	params.Name = "signet"
	params.Net = SigNet
	if coin != Bitcoin {
		params.Bech32HRPSegwit = ""
	}
	return params
}
