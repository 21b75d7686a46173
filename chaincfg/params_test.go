// Copyright (c) 2019-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"
)

// TestParamsFor ensures the parameters returned for each coin and network
// combination carry the expected address encoding magics.
func TestParamsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string  // test description
		coin    Coin    // coin to look up
		net     Network // network to look up
		pkhID   byte    // expected p2pkh version byte
		shID    byte    // expected p2sh version byte
		hrp     string  // expected segwit hrp
		wantErr error   // expected error
	}{{
		name:  "bitcoin mainnet",
		coin:  Bitcoin,
		net:   MainNet,
		pkhID: 0x00,
		shID:  0x05,
		hrp:   "bc",
	}, {
		name:  "bitcoin testnet",
		coin:  Bitcoin,
		net:   TestNet,
		pkhID: 0x6f,
		shID:  0xc4,
		hrp:   "tb",
	}, {
		name:  "bitcoin signet shares testnet encoding",
		coin:  Bitcoin,
		net:   SigNet,
		pkhID: 0x6f,
		shID:  0xc4,
		hrp:   "tb",
	}, {
		name:  "bitcoin regtest",
		coin:  Bitcoin,
		net:   RegNet,
		pkhID: 0x6f,
		shID:  0xc4,
		hrp:   "bcrt",
	}, {
		name:  "dogecoin mainnet without segwit",
		coin:  Dogecoin,
		net:   MainNet,
		pkhID: 0x1e,
		shID:  0x16,
	}, {
		name:  "dogecoin testnet without segwit",
		coin:  Dogecoin,
		net:   TestNet,
		pkhID: 0x71,
		shID:  0xc4,
	}, {
		name:  "litecoin mainnet",
		coin:  Litecoin,
		net:   MainNet,
		pkhID: 0x30,
		shID:  0x32,
		hrp:   "ltc",
	}, {
		name:  "litecoin testnet",
		coin:  Litecoin,
		net:   TestNet,
		pkhID: 0x6f,
		shID:  0x3a,
		hrp:   "tltc",
	}, {
		name:  "litecoin regtest without segwit",
		coin:  Litecoin,
		net:   RegNet,
		pkhID: 0x6f,
		shID:  0x3a,
	}, {
		name:  "stratis mainnet",
		coin:  Stratis,
		net:   MainNet,
		pkhID: 0x4b,
		shID:  0x8c,
		hrp:   "strax",
	}, {
		name:  "stratis signet without segwit",
		coin:  Stratis,
		net:   SigNet,
		pkhID: 0x78,
		shID:  0x7f,
	}, {
		name:    "unknown coin",
		coin:    Coin(200),
		net:     MainNet,
		wantErr: ErrUnknownCoin,
	}, {
		name:    "unknown network",
		coin:    Bitcoin,
		net:     Network(200),
		wantErr: ErrUnknownNetwork,
	}}

	for _, test := range tests {
		params, err := ParamsFor(test.coin, test.net)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.wantErr)
			continue
		}
		if err != nil {
			continue
		}

		if params.Coin != test.coin || params.Net != test.net {
			t.Errorf("%s: mismatched coin/net -- got %v/%v, want %v/%v",
				test.name, params.Coin, params.Net, test.coin, test.net)
			continue
		}
		if got := params.AddrIDPubKeyHash(); got != test.pkhID {
			t.Errorf("%s: mismatched p2pkh id -- got 0x%02x, want 0x%02x",
				test.name, got, test.pkhID)
			continue
		}
		if got := params.AddrIDScriptHash(); got != test.shID {
			t.Errorf("%s: mismatched p2sh id -- got 0x%02x, want 0x%02x",
				test.name, got, test.shID)
			continue
		}
		hrp, ok := params.SegwitHRP()
		if hrp != test.hrp || ok != (test.hrp != "") {
			t.Errorf("%s: mismatched hrp -- got %q (%v), want %q", test.name,
				hrp, ok, test.hrp)
			continue
		}
	}
}

// TestLookupAddrID ensures every registered Base58 version byte resolves to
// the expected network class and hash kind.
func TestLookupAddrID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id      byte
		net     Network
		kind    AddrKind
		unknown bool
	}{
		{id: 0x00, net: MainNet, kind: PubKeyHashAddr},
		{id: 0x05, net: MainNet, kind: ScriptHashAddr},
		{id: 0x1e, net: MainNet, kind: PubKeyHashAddr},
		{id: 0x16, net: MainNet, kind: ScriptHashAddr},
		{id: 0x30, net: MainNet, kind: PubKeyHashAddr},
		{id: 0x32, net: MainNet, kind: ScriptHashAddr},
		{id: 0x4b, net: MainNet, kind: PubKeyHashAddr},
		{id: 0x8c, net: MainNet, kind: ScriptHashAddr},
		{id: 0x6f, net: TestNet, kind: PubKeyHashAddr},
		{id: 0xc4, net: TestNet, kind: ScriptHashAddr},
		{id: 0x71, net: TestNet, kind: PubKeyHashAddr},
		{id: 0x3a, net: TestNet, kind: ScriptHashAddr},
		{id: 0x78, net: TestNet, kind: PubKeyHashAddr},
		{id: 0x7f, net: TestNet, kind: ScriptHashAddr},
		{id: 0x01, unknown: true},
		{id: 0xff, unknown: true},
	}

	for _, test := range tests {
		net, kind, ok := LookupAddrID(test.id)
		if ok == test.unknown {
			t.Errorf("0x%02x: mismatched known flag -- got %v, want %v",
				test.id, ok, !test.unknown)
			continue
		}
		if test.unknown {
			continue
		}
		if net != test.net || kind != test.kind {
			t.Errorf("0x%02x: mismatched lookup -- got %v/%v, want %v/%v",
				test.id, net, kind, test.net, test.kind)
			continue
		}
	}
}

// TestLookupBech32HRP ensures the segwit human-readable parts resolve to the
// expected networks regardless of case.
func TestLookupBech32HRP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hrp     string
		net     Network
		unknown bool
	}{
		{hrp: "bc", net: MainNet},
		{hrp: "BC", net: MainNet},
		{hrp: "tb", net: TestNet},
		{hrp: "TB", net: TestNet},
		{hrp: "bcrt", net: RegNet},
		{hrp: "ltc", net: MainNet},
		{hrp: "tltc", net: TestNet},
		{hrp: "strax", net: MainNet},
		{hrp: "tstrax", net: TestNet},
		{hrp: "tc", unknown: true},
		{hrp: "", unknown: true},
		{hrp: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7k", unknown: true},
	}

	for _, test := range tests {
		net, ok := LookupBech32HRP(test.hrp)
		if ok == test.unknown {
			t.Errorf("%q: mismatched known flag -- got %v, want %v", test.hrp,
				ok, !test.unknown)
			continue
		}
		if !test.unknown && net != test.net {
			t.Errorf("%q: mismatched network -- got %v, want %v", test.hrp,
				net, test.net)
			continue
		}
	}
}

// TestRegisterParamsConflicts ensures the registration logic detects
// parameters that would make decoding ambiguous.
func TestRegisterParamsConflicts(t *testing.T) {
	// Restore the real tables once done since the registration logic operates
	// on the package level maps.
	origIDs, origHRPs := addrIDs, segwitHRPs
	defer func() {
		addrIDs, segwitHRPs = origIDs, origHRPs
	}()

	tests := []struct {
		name    string
		params  []*Params
		wantErr bool
	}{{
		name:   "real params",
		params: AllParams(),
	}, {
		name: "version byte reused for a different kind",
		params: []*Params{
			{Name: "a", Net: MainNet, PubKeyHashAddrID: 0x00, ScriptHashAddrID: 0x05},
			{Name: "b", Net: MainNet, PubKeyHashAddrID: 0x05, ScriptHashAddrID: 0x06},
		},
		wantErr: true,
	}, {
		name: "version byte reused across network classes",
		params: []*Params{
			{Name: "a", Net: MainNet, PubKeyHashAddrID: 0x00, ScriptHashAddrID: 0x05},
			{Name: "b", Net: RegNet, PubKeyHashAddrID: 0x00, ScriptHashAddrID: 0x07},
		},
		wantErr: true,
	}, {
		name: "hrp reused across networks",
		params: []*Params{
			{Name: "a", Net: MainNet, PubKeyHashAddrID: 0x00, ScriptHashAddrID: 0x05, Bech32HRPSegwit: "bc"},
			{Name: "b", Net: RegNet, PubKeyHashAddrID: 0x6f, ScriptHashAddrID: 0xc4, Bech32HRPSegwit: "bc"},
		},
		wantErr: true,
	}, {
		name: "uppercase hrp",
		params: []*Params{
			{Name: "a", Net: MainNet, ScriptHashAddrID: 0x05, Bech32HRPSegwit: "BC"},
		},
		wantErr: true,
	}}

	for _, test := range tests {
		addrIDs = make(map[byte]addrIDEntry)
		segwitHRPs = make(map[string]Network)
		err := registerParams(test.params)
		if (err != nil) != test.wantErr {
			t.Errorf("%s: mismatched err -- got %v, want err %v", test.name,
				err, test.wantErr)
			continue
		}
	}
}

// TestParseNetworkAndCoin ensures names and aliases of networks and coins
// parse as expected.
func TestParseNetworkAndCoin(t *testing.T) {
	t.Parallel()

	netTests := []struct {
		in      string
		want    Network
		wantErr error
	}{
		{in: "mainnet", want: MainNet},
		{in: "Bitcoin", want: MainNet},
		{in: "testnet", want: TestNet},
		{in: "signet", want: SigNet},
		{in: "REGTEST", want: RegNet},
		{in: "moonnet", wantErr: ErrUnknownNetwork},
	}
	for _, test := range netTests {
		got, err := ParseNetwork(test.in)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%q: mismatched err -- got %v, want %v", test.in, err,
				test.wantErr)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("%q: mismatched network -- got %v, want %v", test.in,
				got, test.want)
			continue
		}
		if err == nil && got.String() == "" {
			t.Errorf("%q: empty network name", test.in)
		}
	}

	coinTests := []struct {
		in      string
		want    Coin
		wantErr error
	}{
		{in: "bitcoin", want: Bitcoin},
		{in: "DOGE", want: Dogecoin},
		{in: "ltc", want: Litecoin},
		{in: "Stratis", want: Stratis},
		{in: "monero", wantErr: ErrUnknownCoin},
	}
	for _, test := range coinTests {
		got, err := ParseCoin(test.in)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%q: mismatched err -- got %v, want %v", test.in, err,
				test.wantErr)
			continue
		}
		if err == nil && got != test.want {
			t.Errorf("%q: mismatched coin -- got %v, want %v", test.in, got,
				test.want)
			continue
		}
	}
}

// TestStringers ensures the stringers for the enumerated types produce the
// expected output including for unknown values.
func TestStringers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   interface{ String() string }
		want string
	}{
		{MainNet, "mainnet"},
		{TestNet, "testnet"},
		{SigNet, "signet"},
		{RegNet, "regtest"},
		{Network(9), "Unknown Network (9)"},
		{Bitcoin, "Bitcoin"},
		{Dogecoin, "Dogecoin"},
		{Litecoin, "Litecoin"},
		{Stratis, "Stratis"},
		{Coin(9), "Unknown Coin (9)"},
		{PubKeyHashAddr, "pubkeyhash"},
		{ScriptHashAddr, "scripthash"},
		{AddrKind(9), "Unknown AddrKind (9)"},
	}

	for i, test := range tests {
		if got := test.in.String(); got != test.want {
			t.Errorf("#%d: got: %s want: %s", i, got, test.want)
			continue
		}
	}
}
