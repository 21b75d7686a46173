// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the address encoding parameters of the supported
// Bitcoin-derived coins.
//
// Each supported coin (Bitcoin, Dogecoin, Litecoin, and Stratis) operates on
// up to four standard networks: the main network, the public test network,
// signet, and the regression test network.  The parameters for a coin on a
// network consist of the Base58 version bytes used for pay-to-pubkey-hash and
// pay-to-script-hash addresses along with the human-readable part used for
// Bech32 encoded segwit addresses when the coin supports them.
//
// The parameters are plain data, so adding a coin only requires adding its
// entries to the per-network parameter functions.  The package validates at
// init time that no Base58 version byte or human-readable part is claimed by
// two different networks.
//
// For main packages, the parameters are typically selected from command line
// flags:
//
//	package main
//
//	import (
//		"flag"
//		"fmt"
//		"log"
//
//		"github.com/coinaddr/coinaddr/chaincfg"
//	)
//
//	func main() {
//		coinName := flag.String("coin", "bitcoin", "coin to use")
//		netName := flag.String("net", "mainnet", "network to use")
//		flag.Parse()
//
//		coin, err := chaincfg.ParseCoin(*coinName)
//		if err != nil {
//			log.Fatal(err)
//		}
//		net, err := chaincfg.ParseNetwork(*netName)
//		if err != nil {
//			log.Fatal(err)
//		}
//		params, err := chaincfg.ParamsFor(coin, net)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("p2pkh version byte: 0x%02x\n", params.PubKeyHashAddrID)
//	}
package chaincfg
