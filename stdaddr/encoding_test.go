// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"errors"
	"testing"
)

// TestAddressEncoding ensures payloads are encoded with the parameter that
// applies to their kind and that only Bech32 output is case converted.
func TestAddressEncoding(t *testing.T) {
	t.Parallel()

	hash := hexToBytes("162c5ea71c0b23f5b9022ef047c4a86470a5b070")
	pkh, _ := NewPubKeyHashPayload(hash)
	sh, _ := NewScriptHashPayload(hash)
	wpkh, _ := NewWitnessProgramPayload(WitnessV0,
		hexToBytes("751e76e8199196d454941c45d1b3a323f1433bd6"))
	tr, _ := NewWitnessProgramPayload(WitnessV1,
		hexToBytes("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"))

	tests := []struct {
		name  string          // test description
		enc   AddressEncoding // encoding parameters
		upper bool            // whether to request uppercase
		err   error           // expected error
		want  string          // expected encoding
	}{{
		name: "pkh ignores other parameters",
		enc:  AddressEncoding{Payload: pkh, P2PKHPrefix: 0x30, P2SHPrefix: 0x05, Bech32HRP: "bc"},
		want: "LMFCHJAHxaRh4x19WUAaf6qgUkTNoP8yRG",
	}, {
		name:  "pkh never uppercased",
		enc:   AddressEncoding{Payload: pkh, P2PKHPrefix: 0x00},
		upper: true,
		want:  "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM",
	}, {
		name: "sh",
		enc:  AddressEncoding{Payload: sh, P2PKHPrefix: 0x00, P2SHPrefix: 0x05},
		want: "33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k",
	}, {
		name: "v0 uses bech32",
		enc:  AddressEncoding{Payload: wpkh, Bech32HRP: "bc"},
		want: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
	}, {
		name:  "v0 uppercase",
		enc:   AddressEncoding{Payload: wpkh, Bech32HRP: "bc"},
		upper: true,
		want:  "BC1QW508D6QEJXTDG4Y5R3ZARVARY0C5XW7KV8F3T4",
	}, {
		name: "v1 uses bech32m",
		enc:  AddressEncoding{Payload: tr, Bech32HRP: "bc"},
		want: "bc1p0xlxvlhemja6c4dqv22uapctqupfhlxm9h8z3k2e72q4k9hcz7vqzk5jj0",
	}, {
		name: "empty hrp",
		enc:  AddressEncoding{Payload: wpkh},
		err:  ErrUnsupportedSegwitNetwork,
	}}

	for _, test := range tests {
		got, err := test.enc.Encode(test.upper)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: mismatched encoding -- got %s, want %s", test.name,
				got, test.want)
		}
	}
}
