// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams returns the public test network address parameters for the
// provided coin or nil when the coin is not known.
func TestNetParams(coin Coin) *Params {
	switch coin {
	case Bitcoin:
		return &Params{
			Name:             "testnet3",
			Coin:             Bitcoin,
			Net:              TestNet,
			PubKeyHashAddrID: 0x6f, // starts with m or n
			ScriptHashAddrID: 0xc4, // starts with 2
			Bech32HRPSegwit:  "tb",
			URIScheme:        "bitcoin",
		}

	case Dogecoin:
		return &Params{
			Name:             "testnet3",
			Coin:             Dogecoin,
			Net:              TestNet,
			PubKeyHashAddrID: 0x71, // starts with n
			ScriptHashAddrID: 0xc4, // starts with 2
			URIScheme:        "dogecoin",
		}

	case Litecoin:
		return &Params{
			Name:             "testnet4",
			Coin:             Litecoin,
			Net:              TestNet,
			PubKeyHashAddrID: 0x6f, // starts with m or n
			ScriptHashAddrID: 0x3a, // starts with Q
			Bech32HRPSegwit:  "tltc",
			URIScheme:        "litecoin",
		}

	case Stratis:
		return &Params{
			Name:             "testnet",
			Coin:             Stratis,
			Net:              TestNet,
			PubKeyHashAddrID: 0x78, // starts with q
			ScriptHashAddrID: 0x7f, // starts with t
			Bech32HRPSegwit:  "tstrax",
			URIScheme:        "stratis",
		}
	}

	return nil
}
