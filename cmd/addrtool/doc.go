// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Addrtool describes, converts, and derives payment addresses for Bitcoin,
Dogecoin, Litecoin, and Stratis.

Usage:

	addrtool [OPTIONS] <command> [command options] [args]

Application Options:

	-c, --coin=        coin to derive addresses for {bitcoin, dogecoin,
	                   litecoin, stratis} (default: bitcoin)
	-n, --net=         network to derive addresses for {mainnet, testnet,
	                   signet, regtest} (default: mainnet)
	-d, --debuglevel=  logging level for all subsystems {trace, debug, info,
	                   warn, error, critical} -- You may also specify
	                   <subsystem>=<level>,<subsystem2>=<level>,... to set
	                   the log level for individual subsystems -- Use show to
	                   list available subsystems (default: info)
	-u, --upper        print segwit addresses in uppercase
	    --dump         dump the decoded payload of each address
	-V, --version      display version information and exit

Commands:

	decode ADDRESS...                 describe one or more addresses
	script SCRIPTHEX                  print the address an output script pays to
	pubkey [-t TYPE] PUBKEYHEX        derive a p2pkh, p2wpkh, or p2shwpkh address
	taproot [-m ROOTHEX] XONLYHEX     derive a taproot address
	types                             list the standard address types

Decoding does not depend on --coin since every supported prefix identifies its
network.  The --net option is reported against instead, so decoding a regtest
segwit address with --net=testnet shows it is not valid there.

The exit status is 1 when any argument fails to parse or any address cannot be
created.
*/
package main
