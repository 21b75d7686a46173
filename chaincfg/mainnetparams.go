// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams returns the main network address parameters for the provided
// coin or nil when the coin is not known.
func MainNetParams(coin Coin) *Params {
	switch coin {
	case Bitcoin:
		return &Params{
			Name:             "mainnet",
			Coin:             Bitcoin,
			Net:              MainNet,
			PubKeyHashAddrID: 0x00, // starts with 1
			ScriptHashAddrID: 0x05, // starts with 3
			Bech32HRPSegwit:  "bc",
			URIScheme:        "bitcoin",
		}

	case Dogecoin:
		return &Params{
			Name:             "mainnet",
			Coin:             Dogecoin,
			Net:              MainNet,
			PubKeyHashAddrID: 0x1e, // starts with D
			ScriptHashAddrID: 0x16, // starts with 9 or A
			URIScheme:        "dogecoin",
		}

	case Litecoin:
		return &Params{
			Name:             "mainnet",
			Coin:             Litecoin,
			Net:              MainNet,
			PubKeyHashAddrID: 0x30, // starts with L
			ScriptHashAddrID: 0x32, // starts with M
			Bech32HRPSegwit:  "ltc",
			URIScheme:        "litecoin",
		}

	case Stratis:
		return &Params{
			Name:             "mainnet",
			Coin:             Stratis,
			Net:              MainNet,
			PubKeyHashAddrID: 0x4b, // starts with X
			ScriptHashAddrID: 0x8c, // starts with y
			Bech32HRPSegwit:  "strax",
			URIScheme:        "stratis",
		}
	}

	return nil
}
