// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/coinaddr/coinaddr/chaincfg"
	"github.com/coinaddr/coinaddr/stdaddr"
	"github.com/davecgh/go-spew/spew"
)

// decodeHex decodes the provided hex string and names the argument it came
// from on failure.
func decodeHex(what, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("malformed %s: %w", what, err)
	}
	return b, nil
}

// printAddress writes a description of the address to w.
func printAddress(w io.Writer, cfg *config, addr *stdaddr.Address) {
	encoded := addr.String()
	if cfg.Upper {
		encoded = addr.UpperString()
	}
	addrType := "nonstandard"
	if t, ok := addr.Type(); ok {
		addrType = t.String()
	}
	payload := addr.Payload()
	scheme := "bitcoin"
	if params, err := chaincfg.ParamsFor(cfg.coin, cfg.net); err == nil {
		scheme = params.URIScheme
	}

	fmt.Fprintf(w, "address:  %s\n", encoded)
	fmt.Fprintf(w, "type:     %s\n", addrType)
	fmt.Fprintf(w, "network:  %s\n", addr.Network())
	fmt.Fprintf(w, "prefix:   %s\n", addr.Prefix())
	fmt.Fprintf(w, "payload:  %s %x\n", payload.Kind(), payload.Bytes())
	if v, _, ok := payload.WitnessProgram(); ok {
		fmt.Fprintf(w, "version:  %s\n", v)
	}
	fmt.Fprintf(w, "script:   %x\n", addr.ScriptPubKey())
	fmt.Fprintf(w, "qr uri:   %s\n", addr.QRURIScheme(scheme))
	fmt.Fprintf(w, "valid on %s: %v\n", cfg.net, addr.IsValidForNetwork(cfg.net))
	if cfg.Dump {
		fmt.Fprint(w, spew.Sdump(payload))
	}
}

// decodeAddresses describes each of the provided addresses.
func decodeAddresses(w io.Writer, cfg *config, addrs []string) error {
	for i, s := range addrs {
		addr, err := stdaddr.DecodeAddress(s)
		if err != nil {
			return fmt.Errorf("unable to decode %q: %w", s, err)
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		printAddress(w, cfg, addr)
	}
	return nil
}

// addressFromScript describes the address the provided hex-encoded output
// script pays to.
func addressFromScript(w io.Writer, cfg *config, scriptHex string) error {
	script, err := decodeHex("script", scriptHex)
	if err != nil {
		return err
	}
	addr, err := stdaddr.NewAddressFromScript(script, cfg.net, cfg.coin)
	if err != nil {
		return err
	}
	printAddress(w, cfg, addr)
	return nil
}

// addressFromPubKey describes the address of the requested type for the
// provided hex-encoded public key.
func addressFromPubKey(w io.Writer, cfg *config, addrType, pubKeyHex string) error {
	serialized, err := decodeHex("public key", pubKeyHex)
	if err != nil {
		return err
	}
	pubKey, err := stdaddr.ParsePublicKey(serialized)
	if err != nil {
		return err
	}

	var addr *stdaddr.Address
	switch addrType {
	case "p2pkh":
		addr, err = stdaddr.NewAddressP2PKH(pubKey, cfg.net, cfg.coin)
	case "p2wpkh":
		addr, err = stdaddr.NewAddressP2WPKH(pubKey, cfg.net, cfg.coin)
	case "p2shwpkh":
		addr, err = stdaddr.NewAddressP2SHWPKH(pubKey, cfg.net, cfg.coin)
	default:
		return fmt.Errorf("unsupported public key address type %q", addrType)
	}
	if err != nil {
		return err
	}
	printAddress(w, cfg, addr)
	return nil
}

// taprootAddress describes the taproot address for the provided hex-encoded
// x-only internal key and optional merkle root.
func taprootAddress(w io.Writer, cfg *config, keyHex, rootHex string) error {
	serialized, err := decodeHex("internal key", keyHex)
	if err != nil {
		return err
	}
	internalKey, err := stdaddr.ParseXOnlyPublicKey(serialized)
	if err != nil {
		return err
	}

	var merkleRoot *chainhash.Hash
	if rootHex != "" {
		rootBytes, err := decodeHex("merkle root", rootHex)
		if err != nil {
			return err
		}
		merkleRoot, err = chainhash.NewHash(rootBytes)
		if err != nil {
			return fmt.Errorf("invalid merkle root: %w", err)
		}
	}

	addr, err := stdaddr.NewAddressP2TR(internalKey, merkleRoot, cfg.net,
		cfg.coin)
	if err != nil {
		return err
	}
	printAddress(w, cfg, addr)
	return nil
}

// listTypes writes the text form of every standard address type.
func listTypes(w io.Writer) error {
	for _, t := range stdaddr.AddressTypes() {
		fmt.Fprintln(w, t)
	}
	return nil
}
