// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// AddressEncoding renders a payload as text given the serialization
// parameters of every payload kind.  Pubkey hash and script hash payloads are
// encoded with Base58Check using the respective version byte while witness
// programs are encoded with Bech32 or Bech32m, as required by their witness
// version, using the human-readable part.
type AddressEncoding struct {
	Payload     Payload
	P2PKHPrefix byte
	P2SHPrefix  byte
	Bech32HRP   string
}

// Encode returns the text form of the payload.  When upper is true, Bech32
// output is converted to uppercase which allows QR codes to use the more
// compact alphanumeric mode.  Base58 output is never case converted.
func (e *AddressEncoding) Encode(upper bool) (string, error) {
	switch e.Payload.Kind() {
	case PubKeyHashPayload:
		return base58.CheckEncode(e.Payload.hash[:], e.P2PKHPrefix), nil

	case ScriptHashPayload:
		return base58.CheckEncode(e.Payload.hash[:], e.P2SHPrefix), nil
	}

	if e.Bech32HRP == "" {
		return "", makeError(ErrUnsupportedSegwitNetwork, "no human-readable "+
			"part to encode the segwit address with")
	}

	// The data part of a segwit address is the witness version as a single
	// 5-bit symbol followed by the program regrouped into 5-bit symbols.
	converted, err := bech32.ConvertBits(e.Payload.program, 8, 5, true)
	if err != nil {
		str := fmt.Sprintf("failed to convert witness program: %v", err)
		return "", wrapError(ErrBech32, err, str)
	}
	data := make([]byte, 0, 1+len(converted))
	data = append(data, e.Payload.version.Symbol())
	data = append(data, converted...)

	var encoded string
	switch e.Payload.version.Bech32Version() {
	case bech32.Version0:
		encoded, err = bech32.Encode(e.Bech32HRP, data)
	default:
		encoded, err = bech32.EncodeM(e.Bech32HRP, data)
	}
	if err != nil {
		str := fmt.Sprintf("failed to encode segwit address with hrp %q: %v",
			e.Bech32HRP, err)
		return "", wrapError(ErrBech32, err, str)
	}

	if upper {
		encoded = strings.ToUpper(encoded)
	}
	return encoded, nil
}
