// Copyright (c) 2017-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"strings"
)

// AddrKind identifies which kind of hash a Base58 address version byte
// commits to.
type AddrKind uint8

// These constants define the kinds of hashes a Base58 address may carry.
const (
	// PubKeyHashAddr is a pay-to-pubkey-hash address.
	PubKeyHashAddr AddrKind = iota

	// ScriptHashAddr is a pay-to-script-hash address.
	ScriptHashAddr
)

// String returns the address kind as a human-readable string.
func (k AddrKind) String() string {
	switch k {
	case PubKeyHashAddr:
		return "pubkeyhash"
	case ScriptHashAddr:
		return "scripthash"
	}
	return fmt.Sprintf("Unknown AddrKind (%d)", uint8(k))
}

// addrIDEntry is the network class and hash kind a Base58 version byte
// resolves to.
type addrIDEntry struct {
	net  Network
	kind AddrKind
}

var (
	// addrIDs maps every known Base58 version byte of every coin to the
	// network class and hash kind it identifies.
	addrIDs = make(map[byte]addrIDEntry)

	// segwitHRPs maps every known segwit human-readable part of every coin
	// to the network class it identifies.
	segwitHRPs = make(map[string]Network)
)

// legacyNetClass returns the network that represents the class of networks
// sharing Base58 version bytes with the provided network.
func legacyNetClass(net Network) Network {
	if net.IsMainNet() {
		return MainNet
	}
	return TestNet
}

// registerAddrID adds the version byte to the lookup table, ensuring it does
// not collide with a different network class or hash kind.
func registerAddrID(params *Params, id byte, kind AddrKind) error {
	entry := addrIDEntry{net: legacyNetClass(params.Net), kind: kind}
	if existing, ok := addrIDs[id]; ok && existing != entry {
		return fmt.Errorf("%s %s address id 0x%02x conflicts with %s %s",
			params.Coin, params.Name, id, existing.net, existing.kind)
	}
	addrIDs[id] = entry
	return nil
}

// registerSegwitHRP adds the human-readable part to the lookup table.  Signet
// is allowed to share the human-readable part of the public test network
// since the two are indistinguishable once encoded.  Any other overlap is a
// conflict.
func registerSegwitHRP(params *Params) error {
	hrp, ok := params.SegwitHRP()
	if !ok {
		return nil
	}
	if hrp != strings.ToLower(hrp) {
		return fmt.Errorf("%s %s segwit hrp %q is not lowercase",
			params.Coin, params.Name, hrp)
	}
	existing, ok := segwitHRPs[hrp]
	switch {
	case !ok:
		segwitHRPs[hrp] = params.Net
	case existing == params.Net:
	case existing == TestNet && params.Net == SigNet:
	default:
		return fmt.Errorf("%s %s segwit hrp %q conflicts with %s", params.Coin,
			params.Name, hrp, existing)
	}
	return nil
}

// registerParams builds the lookup tables for all supported coins and
// networks.  Networks are visited in order so that the public test network
// claims any human-readable part it shares with signet.
func registerParams(all []*Params) error {
	for _, params := range all {
		err := registerAddrID(params, params.PubKeyHashAddrID, PubKeyHashAddr)
		if err != nil {
			return err
		}
		err = registerAddrID(params, params.ScriptHashAddrID, ScriptHashAddr)
		if err != nil {
			return err
		}
		if err := registerSegwitHRP(params); err != nil {
			return err
		}
	}
	return nil
}

// LookupAddrID returns the network class and hash kind identified by the
// provided Base58 version byte along with whether or not the byte is known.
//
// The public test, signet, and regression test networks share version bytes,
// so the returned network for any of them is TestNet.
func LookupAddrID(id byte) (Network, AddrKind, bool) {
	entry, ok := addrIDs[id]
	if !ok {
		log.Tracef("Unknown address version byte 0x%02x", id)
	}
	return entry.net, entry.kind, ok
}

// LookupBech32HRP returns the network identified by the provided segwit
// human-readable part along with whether or not it is known.  The comparison
// is case insensitive.
//
// Signet shares human-readable parts with the public test network, so the
// returned network for either of them is TestNet.
func LookupBech32HRP(hrp string) (Network, bool) {
	net, ok := segwitHRPs[strings.ToLower(hrp)]
	if !ok {
		log.Tracef("Unknown segwit human-readable part %q", hrp)
	}
	return net, ok
}

func init() {
	if err := registerParams(AllParams()); err != nil {
		panic(fmt.Sprintf("invalid address parameters: %v", err))
	}
}
