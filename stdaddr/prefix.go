// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"
	"strings"

	"github.com/coinaddr/coinaddr/chaincfg"
)

// PrefixKind identifies which serialization parameter a prefix carries.
type PrefixKind uint8

// These constants define the kinds of prefixes.  The zero value identifies a
// prefix that has not been set.
const (
	// PubKeyPrefix is the Base58 version byte of a pubkey hash address.
	PubKeyPrefix PrefixKind = iota + 1

	// ScriptPrefix is the Base58 version byte of a script hash address.
	ScriptPrefix

	// SegwitPrefix is the human-readable part of a Bech32 segwit address.
	SegwitPrefix
)

// Prefix is the serialization parameter an address is encoded with.  It is a
// Base58 version byte for pubkey hash and script hash payloads and a Bech32
// human-readable part for witness programs.
//
// A prefix is only meaningful together with the payload, network, and coin it
// was selected for.  Addresses only ever hold prefixes selected by
// PrefixFromPayload or decoded alongside their payload.
type Prefix struct {
	kind PrefixKind
	id   byte
	hrp  string
}

// NewPubKeyPrefix returns a prefix for pubkey hash addresses with the provided
// version byte.
func NewPubKeyPrefix(id byte) Prefix {
	return Prefix{kind: PubKeyPrefix, id: id}
}

// NewScriptPrefix returns a prefix for script hash addresses with the provided
// version byte.
func NewScriptPrefix(id byte) Prefix {
	return Prefix{kind: ScriptPrefix, id: id}
}

// NewSegwitPrefix returns a prefix for segwit addresses with the provided
// human-readable part.  The human-readable part is stored in lowercase.
func NewSegwitPrefix(hrp string) Prefix {
	return Prefix{kind: SegwitPrefix, hrp: strings.ToLower(hrp)}
}

// PrefixFromPayload selects the prefix the provided payload is encoded with
// for the given network and coin.
//
// Pubkey hash and script hash payloads use the coin's Base58 version byte for
// the network.  Witness programs use the coin's human-readable part for the
// network and an error of kind ErrUnsupportedSegwitNetwork is returned when
// the coin does not define one.
func PrefixFromPayload(payload Payload, net chaincfg.Network, coin chaincfg.Coin) (Prefix, error) {
	params, err := chaincfg.ParamsFor(coin, net)
	if err != nil {
		str := fmt.Sprintf("no address parameters for %v on %v: %v", coin,
			net, err)
		return Prefix{}, wrapError(ErrUnsupportedNetwork, err, str)
	}

	switch payload.Kind() {
	case PubKeyHashPayload:
		return NewPubKeyPrefix(params.AddrIDPubKeyHash()), nil

	case ScriptHashPayload:
		return NewScriptPrefix(params.AddrIDScriptHash()), nil
	}

	hrp, ok := params.SegwitHRP()
	if !ok {
		str := fmt.Sprintf("segwit addresses are not supported for %v on %v",
			coin, net)
		return Prefix{}, makeError(ErrUnsupportedSegwitNetwork, str)
	}
	return NewSegwitPrefix(hrp), nil
}

// Kind returns which serialization parameter the prefix carries.
func (p Prefix) Kind() PrefixKind {
	return p.kind
}

// AddrID returns the Base58 version byte of pubkey hash and script hash
// prefixes.  The final return value is false for segwit prefixes.
func (p Prefix) AddrID() (byte, bool) {
	return p.id, p.kind == PubKeyPrefix || p.kind == ScriptPrefix
}

// HRP returns the human-readable part of segwit prefixes.  The final return
// value is false for all other prefixes.
func (p Prefix) HRP() (string, bool) {
	return p.hrp, p.kind == SegwitPrefix
}

// matches returns whether or not the prefix is the kind of prefix used to
// encode the provided payload kind.
func (p Prefix) matches(kind PayloadKind) bool {
	switch kind {
	case PubKeyHashPayload:
		return p.kind == PubKeyPrefix
	case ScriptHashPayload:
		return p.kind == ScriptPrefix
	case WitnessProgramPayload:
		return p.kind == SegwitPrefix
	}
	return false
}

// compare returns an integer comparing two prefixes by kind and then by value.
func (p Prefix) compare(other Prefix) int {
	switch {
	case p.kind < other.kind:
		return -1
	case p.kind > other.kind:
		return 1
	case p.id < other.id:
		return -1
	case p.id > other.id:
		return 1
	}
	return strings.Compare(p.hrp, other.hrp)
}

// String returns the prefix in a human-readable form.
func (p Prefix) String() string {
	switch p.kind {
	case PubKeyPrefix:
		return fmt.Sprintf("pubkey(0x%02x)", p.id)
	case ScriptPrefix:
		return fmt.Sprintf("script(0x%02x)", p.id)
	case SegwitPrefix:
		return fmt.Sprintf("segwit(%s)", p.hrp)
	}
	return "unset"
}
