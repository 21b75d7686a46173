// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
)

// Params defines the address encoding parameters for a coin operating on a
// specific network.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// Coin is the coin the parameters apply to.
	Coin Coin

	// Net is the network the parameters apply to.
	Net Network

	// Address encoding magics.
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address

	// Bech32HRPSegwit is the human-readable part for Bech32 encoded segwit
	// addresses, as defined in BIP 173.  It is empty when the coin does not
	// support segwit on the network.
	Bech32HRPSegwit string

	// URIScheme is the scheme used when an address is rendered as a payment
	// URI.
	URIScheme string
}

// AddrIDPubKeyHash returns the magic prefix byte for pay-to-pubkey-hash
// addresses.
func (p *Params) AddrIDPubKeyHash() byte {
	return p.PubKeyHashAddrID
}

// AddrIDScriptHash returns the magic prefix byte for pay-to-script-hash
// addresses.
func (p *Params) AddrIDScriptHash() byte {
	return p.ScriptHashAddrID
}

// SegwitHRP returns the human-readable part for segwit addresses along with
// whether or not the coin supports segwit addresses on the network.
func (p *Params) SegwitHRP() (string, bool) {
	return p.Bech32HRPSegwit, p.Bech32HRPSegwit != ""
}

// paramsFuncs maps each network to the function that produces the parameters
// for a given coin on that network.
var paramsFuncs = [...]func(Coin) *Params{
	MainNet: MainNetParams,
	TestNet: TestNetParams,
	SigNet:  SigNetParams,
	RegNet:  RegNetParams,
}

// ParamsFor returns the address parameters for the provided coin operating on
// the provided network.
func ParamsFor(coin Coin, net Network) (*Params, error) {
	if int(net) >= len(paramsFuncs) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, net)
	}
	params := paramsFuncs[net](coin)
	if params == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCoin, coin)
	}
	return params, nil
}

// AllParams returns the parameters for every supported coin on every standard
// network.
func AllParams() []*Params {
	all := make([]*Params, 0, len(coinNames)*len(networkNames))
	for _, net := range Networks() {
		for _, coin := range Coins() {
			all = append(all, paramsFuncs[net](coin))
		}
	}
	return all
}
