// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stdaddr provides facilities for working with human-readable payment
// addresses of Bitcoin-derived coins.
package stdaddr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/coinaddr/coinaddr/chaincfg"
	"github.com/decred/dcrd/crypto/ripemd160"
)

const (
	// maxBase58AddrLen is the maximum length of the text form of a Base58
	// address that is considered for decoding.  It comfortably exceeds the
	// 34 characters of the longest 21-byte encoding.
	maxBase58AddrLen = 50

	// defaultURIScheme is the scheme used by QRURI.
	defaultURIScheme = "bitcoin"
)

// Address is a payment destination made up of a payload, the network it is
// intended for, and the prefix it is encoded with.
//
// Addresses are immutable.  They are only created by the constructors and
// DecodeAddress, which ensures the prefix always matches the payload and
// network.
type Address struct {
	payload Payload
	net     chaincfg.Network
	prefix  Prefix
}

// NewAddress returns an address for the provided payload on the given network
// and coin.  An error of kind ErrUnsupportedSegwitNetwork is returned for
// witness programs when the coin does not support segwit on the network.
func NewAddress(payload Payload, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	prefix, err := PrefixFromPayload(payload, net, coin)
	if err != nil {
		return nil, err
	}
	return &Address{payload: payload, net: net, prefix: prefix}, nil
}

// NewAddressP2PKH returns a pay-to-pubkey-hash address for the provided public
// key.
func NewAddressP2PKH(pubKey PublicKey, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	return NewAddress(NewP2PKHPayload(pubKey), net, coin)
}

// NewAddressP2SH returns a pay-to-script-hash address for the provided redeem
// script.  An error of kind ErrExcessiveScriptSize is returned when the script
// is larger than the maximum script element size.
func NewAddressP2SH(redeemScript []byte, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	payload, err := NewP2SHPayload(redeemScript)
	if err != nil {
		return nil, err
	}
	return NewAddress(payload, net, coin)
}

// NewAddressP2WPKH returns a pay-to-witness-pubkey-hash address for the
// provided public key.  An error of kind ErrUncompressedPubKey is returned when
// the key is not in the compressed format.
func NewAddressP2WPKH(pubKey PublicKey, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	payload, err := NewP2WPKHPayload(pubKey)
	if err != nil {
		return nil, err
	}
	return NewAddress(payload, net, coin)
}

// NewAddressP2SHWPKH returns a pay-to-script-hash address that nests a
// pay-to-witness-pubkey-hash program for the provided public key.  An error of
// kind ErrUncompressedPubKey is returned when the key is not in the compressed
// format.
func NewAddressP2SHWPKH(pubKey PublicKey, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	payload, err := NewP2SHWPKHPayload(pubKey)
	if err != nil {
		return nil, err
	}
	return NewAddress(payload, net, coin)
}

// NewAddressP2WSH returns a pay-to-witness-script-hash address for the
// provided witness script.
func NewAddressP2WSH(witnessScript []byte, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	return NewAddress(NewP2WSHPayload(witnessScript), net, coin)
}

// NewAddressP2SHWSH returns a pay-to-script-hash address that nests a
// pay-to-witness-script-hash program for the provided witness script.
func NewAddressP2SHWSH(witnessScript []byte, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	return NewAddress(NewP2SHWSHPayload(witnessScript), net, coin)
}

// NewAddressP2TR returns a pay-to-taproot address for the provided internal
// key tweaked with the optional script tree merkle root.
func NewAddressP2TR(internalKey XOnlyPublicKey, merkleRoot *chainhash.Hash,
	net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {

	payload, err := NewP2TRPayload(internalKey, merkleRoot)
	if err != nil {
		return nil, err
	}
	return NewAddress(payload, net, coin)
}

// NewAddressP2TRTweaked returns a pay-to-taproot address for an output key
// that is already tweaked.
//
// Prefer NewAddressP2TR unless the output key is all that is known.
func NewAddressP2TRTweaked(outputKey TweakedPublicKey, net chaincfg.Network,
	coin chaincfg.Coin) (*Address, error) {

	return NewAddress(NewP2TRTweakedPayload(outputKey), net, coin)
}

// NewAddressFromScript returns the address the provided output script pays
// to.  See PayloadFromScript for the recognized scripts.
func NewAddressFromScript(script []byte, net chaincfg.Network, coin chaincfg.Coin) (*Address, error) {
	payload, err := PayloadFromScript(script)
	if err != nil {
		return nil, err
	}
	return NewAddress(payload, net, coin)
}

// bech32HRPCandidate returns the portion of the provided string before the
// last Bech32 separator character or the entire string when there is none.
func bech32HRPCandidate(addr string) string {
	if i := strings.LastIndexByte(addr, '1'); i >= 0 {
		return addr[:i]
	}
	return addr
}

// decodeSegwitAddress decodes a Bech32 or Bech32m encoded segwit address for
// the provided network.
func decodeSegwitAddress(addr string, net chaincfg.Network) (*Address, error) {
	hrp, data, variant, err := bech32.DecodeGeneric(addr)
	if err != nil {
		str := fmt.Sprintf("failed to decode segwit address %q: %v", addr, err)
		return nil, wrapError(ErrBech32, err, str)
	}
	if len(data) == 0 {
		str := fmt.Sprintf("segwit address %q has no data", addr)
		return nil, makeError(ErrEmptyBech32Payload, str)
	}

	// The first symbol is the witness version and the remaining symbols are
	// the witness program regrouped into 5-bit symbols.
	version, err := WitnessVersionFromSymbol(data[0])
	if err != nil {
		return nil, err
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		str := fmt.Sprintf("failed to convert witness program of %q: %v",
			addr, err)
		return nil, wrapError(ErrBech32, err, str)
	}
	if err := checkWitnessProgram(version, len(program)); err != nil {
		return nil, err
	}

	// BIP 350 requires version 0 programs to use Bech32 and all later
	// versions to use Bech32m.
	if expected := version.Bech32Version(); variant != expected {
		str := fmt.Sprintf("witness version %v requires checksum variant %v, "+
			"found %v", version, expected, variant)
		return nil, makeError(ErrInvalidBech32Variant, str)
	}

	log.Tracef("Decoded segwit address %q (version %v, %d byte program, %v)",
		addr, version, len(program), net)
	return &Address{
		payload: Payload{
			kind:    WitnessProgramPayload,
			version: version,
			program: program,
		},
		net:    net,
		prefix: NewSegwitPrefix(hrp),
	}, nil
}

// decodeBase58Address decodes a Base58Check encoded pubkey hash or script hash
// address of any supported coin.
//
// The public test, signet, and regression test networks share version bytes,
// so addresses for any of them decode as TestNet addresses.
func decodeBase58Address(addr string) (*Address, error) {
	if len(addr) > maxBase58AddrLen {
		str := fmt.Sprintf("address is %d characters which exceeds the "+
			"maximum of %d characters", len(addr), maxBase58AddrLen)
		return nil, makeError(ErrInvalidLength, str)
	}

	decoded, addrID, err := base58.CheckDecode(addr)
	if err != nil {
		str := fmt.Sprintf("failed to decode address %q: %v", addr, err)
		return nil, wrapError(ErrBase58, err, str)
	}
	if len(decoded) != ripemd160.Size {
		str := fmt.Sprintf("address %q decodes to %d bytes vs required %d "+
			"bytes", addr, len(decoded)+1, ripemd160.Size+1)
		return nil, makeError(ErrInvalidLength, str)
	}

	net, kind, ok := chaincfg.LookupAddrID(addrID)
	if !ok {
		str := fmt.Sprintf("address %q has unknown version byte 0x%02x", addr,
			addrID)
		return nil, makeError(ErrInvalidAddressVersion, str)
	}

	a := &Address{net: net}
	switch kind {
	case chaincfg.PubKeyHashAddr:
		a.payload = Payload{kind: PubKeyHashPayload}
		a.prefix = NewPubKeyPrefix(addrID)
	default:
		a.payload = Payload{kind: ScriptHashPayload}
		a.prefix = NewScriptPrefix(addrID)
	}
	copy(a.payload.hash[:], decoded)

	log.Tracef("Decoded base58 address %q (%v, version byte 0x%02x, %v)",
		addr, kind, addrID, net)
	return a, nil
}

// DecodeAddress decodes the text form of an address of any supported coin and
// network.
//
// Strings whose human-readable part, the portion before the final '1', is a
// known segwit human-readable part are decoded as Bech32 or Bech32m segwit
// addresses.  All other strings are decoded as Base58Check addresses.
//
// Legacy addresses for the public test, signet, and regression test networks
// are indistinguishable, so they all decode with a network of TestNet.  The
// same holds for segwit addresses on the public test network and signet.  Use
// IsValidForNetwork to check whether an address may be used on a network.
func DecodeAddress(addr string) (*Address, error) {
	if net, ok := chaincfg.LookupBech32HRP(bech32HRPCandidate(addr)); ok {
		return decodeSegwitAddress(addr, net)
	}
	return decodeBase58Address(addr)
}

// Payload returns the payload of the address.
func (a *Address) Payload() Payload {
	return a.payload
}

// Network returns the network of the address.
func (a *Address) Network() chaincfg.Network {
	return a.net
}

// Prefix returns the prefix the address is encoded with.
func (a *Address) Prefix() Prefix {
	return a.prefix
}

// encoding returns the encoding parameters of the address.  Parameters not
// provided by the prefix fall back to the Bitcoin parameters for the network.
func (a *Address) encoding() AddressEncoding {
	defaults, err := chaincfg.ParamsFor(chaincfg.Bitcoin, a.net)
	if err != nil {
		defaults = chaincfg.MainNetParams(chaincfg.Bitcoin)
	}

	enc := AddressEncoding{
		Payload:     a.payload,
		P2PKHPrefix: defaults.PubKeyHashAddrID,
		P2SHPrefix:  defaults.ScriptHashAddrID,
		Bech32HRP:   defaults.Bech32HRPSegwit,
	}
	if a.prefix.matches(a.payload.kind) {
		switch a.prefix.kind {
		case PubKeyPrefix:
			enc.P2PKHPrefix = a.prefix.id
		case ScriptPrefix:
			enc.P2SHPrefix = a.prefix.id
		case SegwitPrefix:
			enc.Bech32HRP = a.prefix.hrp
		}
	}
	return enc
}

// encode returns the text form of the address in the requested case.
func (a *Address) encode(upper bool) string {
	enc := a.encoding()
	encoded, err := enc.Encode(upper)
	if err != nil {
		log.Errorf("Failed to encode address with prefix %v: %v", a.prefix,
			err)
		return ""
	}
	return encoded
}

// String returns the text form of the address.
func (a *Address) String() string {
	return a.encode(false)
}

// UpperString returns the text form of the address with segwit addresses
// converted to uppercase.  Base58 addresses are returned unchanged.
func (a *Address) UpperString() string {
	return a.encode(true)
}

// QRURIScheme returns a URI for the address with the provided scheme that is
// optimized for QR codes.  As recommended by BIP 173, segwit addresses and the
// scheme are converted to uppercase so the QR code can use the alphanumeric
// mode.  Legacy addresses are case sensitive and are returned with the scheme
// in lowercase.
func (a *Address) QRURIScheme(scheme string) string {
	if a.payload.kind == WitnessProgramPayload {
		return strings.ToUpper(scheme) + ":" + a.UpperString()
	}
	return strings.ToLower(scheme) + ":" + a.String()
}

// QRURI returns a bitcoin URI for the address that is optimized for QR codes.
// See QRURIScheme for details.
func (a *Address) QRURI() string {
	return a.QRURIScheme(defaultURIScheme)
}

// ScriptPubKey returns the output script that pays to the address.
func (a *Address) ScriptPubKey() []byte {
	return a.payload.ScriptPubKey()
}

// Type returns the standard type of the address.  The final return value is
// false for witness programs that are valid but not standard, such as those
// with a witness version that is not yet defined.
func (a *Address) Type() (AddressType, bool) {
	switch a.payload.kind {
	case PubKeyHashPayload:
		return P2PKH, true

	case ScriptHashPayload:
		return P2SH, true
	}

	switch {
	case a.payload.version == WitnessV0 &&
		len(a.payload.program) == witnessV0PubKeyHashLen:
		return P2WPKH, true

	case a.payload.version == WitnessV0 &&
		len(a.payload.program) == witnessV0ScriptHashLen:
		return P2WSH, true

	case a.payload.version == WitnessV1 && len(a.payload.program) == 32:
		return P2TR, true
	}
	return 0, false
}

// IsStandard returns whether or not the address is of a standard type.
func (a *Address) IsStandard() bool {
	_, ok := a.Type()
	return ok
}

// IsValidForNetwork returns whether or not the address may be used on the
// provided network.
//
// The main network is only compatible with itself.  Legacy addresses are
// shared by the public test, signet, and regression test networks while
// segwit addresses of the regression test network are distinct from those of
// the public test network and signet.
func (a *Address) IsValidForNetwork(net chaincfg.Network) bool {
	if a.net == net {
		return true
	}
	if a.net.IsMainNet() || net.IsMainNet() {
		return false
	}

	addrType, ok := a.Type()
	isLegacy := ok && (addrType == P2PKH || addrType == P2SH)
	if !isLegacy && (a.net == chaincfg.RegNet || net == chaincfg.RegNet) {
		return false
	}
	return true
}

// IsRelatedToPubKey returns whether or not the address pays to the provided
// public key.  That is the case when the payload is the hash of the key, the
// x-only form of the key, or the hash of the nested segwit redeem script for
// the key.  The key is assumed to be tweaked already for taproot addresses.
func (a *Address) IsRelatedToPubKey(pubKey PublicKey) bool {
	payload := a.payload.bytesView()
	pkHash := pubKey.Hash160()
	xonly := pubKey.XOnly()
	redeemHash := hash160(witnessV0RedeemScript(pkHash[:]))

	return bytes.Equal(pkHash[:], payload) ||
		bytes.Equal(xonly[:], payload) ||
		bytes.Equal(redeemHash[:], payload)
}

// IsRelatedToXOnlyPubKey returns whether or not the address pays to the
// provided x-only public key.  This is only ever the case for taproot
// addresses and the key is assumed to be tweaked already.
func (a *Address) IsRelatedToXOnlyPubKey(xonly XOnlyPublicKey) bool {
	return bytes.Equal(a.payload.bytesView(), xonly[:])
}

// Equal returns whether or not the two addresses have the same payload,
// network, and prefix.
func (a *Address) Equal(other *Address) bool {
	return a.Compare(other) == 0
}

// Compare returns an integer comparing two addresses by payload, network, and
// then prefix.  The result is 0 if a == other, -1 if a < other, and +1 if
// a > other.
func (a *Address) Compare(other *Address) int {
	if c := a.payload.Compare(other.payload); c != 0 {
		return c
	}
	switch {
	case a.net < other.net:
		return -1
	case a.net > other.net:
		return 1
	}
	return a.prefix.compare(other.prefix)
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (a *Address) MarshalText() ([]byte, error) {
	enc := a.encoding()
	encoded, err := enc.Encode(false)
	if err != nil {
		return nil, err
	}
	return []byte(encoded), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.  The address
// is replaced as a whole by the decoded address.
func (a *Address) UnmarshalText(text []byte) error {
	decoded, err := DecodeAddress(string(text))
	if err != nil {
		return err
	}
	*a = *decoded
	return nil
}
