// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/decred/dcrd/crypto/ripemd160"
)

const (
	// p2pkhScriptLen is the length of a standard pay-to-pubkey-hash script.
	p2pkhScriptLen = 25

	// p2shScriptLen is the length of a standard pay-to-script-hash script.
	p2shScriptLen = 23

	// minWitnessProgramLen and maxWitnessProgramLen are the bounds on the
	// length of a witness program as defined by BIP 141.
	minWitnessProgramLen = 2
	maxWitnessProgramLen = 40

	// witnessV0PubKeyHashLen and witnessV0ScriptHashLen are the only lengths
	// allowed for version 0 witness programs.
	witnessV0PubKeyHashLen = 20
	witnessV0ScriptHashLen = 32
)

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	hash := hash160(buf)
	return hash[:]
}

// hash160 is the array returning variant of Hash160.
func hash160(buf []byte) [ripemd160.Size]byte {
	hasher := ripemd160.New()
	hasher.Write(chainhash.HashB(buf))
	var hash [ripemd160.Size]byte
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// PayloadKind identifies what a payload commits to.
type PayloadKind uint8

// These constants define the kinds of payloads.
const (
	// PubKeyHashPayload commits to the hash160 of a public key.
	PubKeyHashPayload PayloadKind = iota

	// ScriptHashPayload commits to the hash160 of a redeem script.
	ScriptHashPayload

	// WitnessProgramPayload is a versioned segwit program.
	WitnessProgramPayload
)

// String returns the payload kind as a human-readable string.
func (k PayloadKind) String() string {
	switch k {
	case PubKeyHashPayload:
		return "pubkeyhash"
	case ScriptHashPayload:
		return "scripthash"
	case WitnessProgramPayload:
		return "witnessprogram"
	}
	return fmt.Sprintf("Unknown PayloadKind (%d)", uint8(k))
}

// Payload is the script independent content of an address.  It is a public
// key hash, a script hash, or a witness program consisting of a witness
// version along with 2 to 40 program bytes.  Version 0 programs are always
// either 20 or 32 bytes.
//
// A Payload is immutable once created.
type Payload struct {
	kind    PayloadKind
	hash    [ripemd160.Size]byte
	version WitnessVersion
	program []byte
}

// NewPubKeyHashPayload returns a payload that commits to the provided 20-byte
// public key hash.
func NewPubKeyHashPayload(pkHash []byte) (Payload, error) {
	if len(pkHash) != ripemd160.Size {
		str := fmt.Sprintf("public key hash is %d bytes vs required %d bytes",
			len(pkHash), ripemd160.Size)
		return Payload{}, makeError(ErrInvalidHashLen, str)
	}
	p := Payload{kind: PubKeyHashPayload}
	copy(p.hash[:], pkHash)
	return p, nil
}

// NewScriptHashPayload returns a payload that commits to the provided 20-byte
// script hash.
func NewScriptHashPayload(scriptHash []byte) (Payload, error) {
	if len(scriptHash) != ripemd160.Size {
		str := fmt.Sprintf("script hash is %d bytes vs required %d bytes",
			len(scriptHash), ripemd160.Size)
		return Payload{}, makeError(ErrInvalidHashLen, str)
	}
	p := Payload{kind: ScriptHashPayload}
	copy(p.hash[:], scriptHash)
	return p, nil
}

// checkWitnessProgram ensures the witness version and program length are
// allowed together.
func checkWitnessProgram(version WitnessVersion, programLen int) error {
	if !version.IsValid() {
		str := fmt.Sprintf("invalid witness version %d", version.Num())
		return makeError(ErrInvalidWitnessVersion, str)
	}
	if programLen < minWitnessProgramLen || programLen > maxWitnessProgramLen {
		str := fmt.Sprintf("witness program is %d bytes vs allowed %d to %d "+
			"bytes", programLen, minWitnessProgramLen, maxWitnessProgramLen)
		return makeError(ErrInvalidWitnessProgramLength, str)
	}
	if version == WitnessV0 && programLen != witnessV0PubKeyHashLen &&
		programLen != witnessV0ScriptHashLen {

		str := fmt.Sprintf("version 0 witness program is %d bytes vs "+
			"required %d or %d bytes", programLen, witnessV0PubKeyHashLen,
			witnessV0ScriptHashLen)
		return makeError(ErrInvalidSegwitV0ProgramLength, str)
	}
	return nil
}

// NewWitnessProgramPayload returns a payload for the provided witness version
// and program.  The program must be between 2 and 40 bytes and version 0
// programs must be either 20 or 32 bytes.
func NewWitnessProgramPayload(version WitnessVersion, program []byte) (Payload, error) {
	if err := checkWitnessProgram(version, len(program)); err != nil {
		return Payload{}, err
	}
	return Payload{
		kind:    WitnessProgramPayload,
		version: version,
		program: append([]byte(nil), program...),
	}, nil
}

// PayloadFromScript returns the payload of the provided output script.  The
// script must be a standard pay-to-pubkey-hash script, a standard
// pay-to-script-hash script, or a witness program.  Version 0 witness
// programs must additionally be a pay-to-witness-pubkey-hash or
// pay-to-witness-script-hash script.
//
// This is the inverse of ScriptPubKey.
func PayloadFromScript(script []byte) (Payload, error) {
	switch {
	case txscript.IsPayToPubKeyHash(script):
		// DUP HASH160 <20-byte hash> EQUALVERIFY CHECKSIG
		return NewPubKeyHashPayload(script[3:23])

	case txscript.IsPayToScriptHash(script):
		// HASH160 <20-byte hash> EQUAL
		return NewScriptHashPayload(script[2:22])

	case txscript.IsWitnessProgram(script):
		// <version> <2 to 40 byte program>
		const scriptVersion = 0
		tokenizer := txscript.MakeScriptTokenizer(scriptVersion, script)
		tokenizer.Next()
		version, err := WitnessVersionFromInstruction(tokenizer.Opcode(),
			tokenizer.Data())
		if err != nil {
			return Payload{}, err
		}
		tokenizer.Next()
		program := tokenizer.Data()

		if version == WitnessV0 &&
			!txscript.IsPayToWitnessPubKeyHash(script) &&
			!txscript.IsPayToWitnessScriptHash(script) {

			str := fmt.Sprintf("version 0 witness program is %d bytes vs "+
				"required %d or %d bytes", len(program),
				witnessV0PubKeyHashLen, witnessV0ScriptHashLen)
			return Payload{}, makeError(ErrInvalidSegwitV0ProgramLength, str)
		}
		return NewWitnessProgramPayload(version, program)
	}

	str := fmt.Sprintf("script %x is not a recognized payment script", script)
	return Payload{}, makeError(ErrUnrecognizedScript, str)
}

// NewP2PKHPayload returns a pay-to-pubkey-hash payload for the provided public
// key.  The key is hashed in the serialization format it carries.
func NewP2PKHPayload(pubKey PublicKey) Payload {
	return Payload{kind: PubKeyHashPayload, hash: pubKey.Hash160()}
}

// NewP2SHPayload returns a pay-to-script-hash payload for the provided redeem
// script.  An error of kind ErrExcessiveScriptSize is returned when the script
// is larger than the maximum script element size.
func NewP2SHPayload(redeemScript []byte) (Payload, error) {
	if len(redeemScript) > txscript.MaxScriptElementSize {
		str := fmt.Sprintf("redeem script is %d bytes which exceeds the "+
			"maximum of %d bytes", len(redeemScript),
			txscript.MaxScriptElementSize)
		return Payload{}, makeError(ErrExcessiveScriptSize, str)
	}
	return Payload{kind: ScriptHashPayload, hash: hash160(redeemScript)}, nil
}

// requireCompressed returns an error of kind ErrUncompressedPubKey when the
// provided key is not in the compressed format.
func requireCompressed(pubKey PublicKey) error {
	if !pubKey.IsCompressed() {
		return makeError(ErrUncompressedPubKey, "segwit addresses require "+
			"a public key in the compressed format")
	}
	return nil
}

// NewP2WPKHPayload returns a pay-to-witness-pubkey-hash payload for the
// provided public key which must be in the compressed format.
func NewP2WPKHPayload(pubKey PublicKey) (Payload, error) {
	if err := requireCompressed(pubKey); err != nil {
		return Payload{}, err
	}
	hash := pubKey.Hash160()
	return Payload{
		kind:    WitnessProgramPayload,
		version: WitnessV0,
		program: hash[:],
	}, nil
}

// witnessV0RedeemScript returns the version 0 witness program script for the
// provided program.  It is the redeem script of the nested segwit forms.
func witnessV0RedeemScript(program []byte) []byte {
	script := make([]byte, 0, 2+len(program))
	script = append(script, txscript.OP_0, byte(len(program)))
	return append(script, program...)
}

// NewP2SHWPKHPayload returns a pay-to-script-hash payload that nests a
// pay-to-witness-pubkey-hash program for the provided public key which must be
// in the compressed format.
func NewP2SHWPKHPayload(pubKey PublicKey) (Payload, error) {
	if err := requireCompressed(pubKey); err != nil {
		return Payload{}, err
	}
	pkHash := pubKey.Hash160()
	redeemScript := witnessV0RedeemScript(pkHash[:])
	return Payload{kind: ScriptHashPayload, hash: hash160(redeemScript)}, nil
}

// NewP2WSHPayload returns a pay-to-witness-script-hash payload for the provided
// witness script.
func NewP2WSHPayload(witnessScript []byte) Payload {
	return Payload{
		kind:    WitnessProgramPayload,
		version: WitnessV0,
		program: chainhash.HashB(witnessScript),
	}
}

// NewP2SHWSHPayload returns a pay-to-script-hash payload that nests a
// pay-to-witness-script-hash program for the provided witness script.
func NewP2SHWSHPayload(witnessScript []byte) Payload {
	redeemScript := witnessV0RedeemScript(chainhash.HashB(witnessScript))
	return Payload{kind: ScriptHashPayload, hash: hash160(redeemScript)}
}

// NewP2TRPayload returns a pay-to-taproot payload for the output key that
// results from tweaking the provided internal key with the optional script
// tree merkle root as defined by BIP 341.  A nil merkle root commits to the
// key alone.
func NewP2TRPayload(internalKey XOnlyPublicKey, merkleRoot *chainhash.Hash) (Payload, error) {
	key, err := internalKey.PublicKey()
	if err != nil {
		return Payload{}, err
	}
	var scriptRoot []byte
	if merkleRoot != nil {
		scriptRoot = merkleRoot[:]
	}
	outputKey := txscript.ComputeTaprootOutputKey(key, scriptRoot)
	return Payload{
		kind:    WitnessProgramPayload,
		version: WitnessV1,
		program: schnorr.SerializePubKey(outputKey),
	}, nil
}

// NewP2TRTweakedPayload returns a pay-to-taproot payload for an output key
// that is already tweaked.
//
// Prefer NewP2TRPayload unless the output key is all that is known.
func NewP2TRTweakedPayload(outputKey TweakedPublicKey) Payload {
	return Payload{
		kind:    WitnessProgramPayload,
		version: WitnessV1,
		program: append([]byte(nil), outputKey[:]...),
	}
}

// Kind returns what the payload commits to.
func (p Payload) Kind() PayloadKind {
	return p.kind
}

// Hash160 returns the hash committed to by pubkey hash and script hash
// payloads.  It returns nil for witness programs.
func (p Payload) Hash160() *[ripemd160.Size]byte {
	if p.kind == WitnessProgramPayload {
		return nil
	}
	hash := p.hash
	return &hash
}

// WitnessProgram returns the witness version and a copy of the program of a
// witness program payload.  The final return value is false for all other
// payload kinds.
func (p Payload) WitnessProgram() (WitnessVersion, []byte, bool) {
	if p.kind != WitnessProgramPayload {
		return 0, nil, false
	}
	return p.version, append([]byte(nil), p.program...), true
}

// Bytes returns a copy of the hash or witness program the payload commits to.
func (p Payload) Bytes() []byte {
	if p.kind == WitnessProgramPayload {
		return append([]byte(nil), p.program...)
	}
	return append([]byte(nil), p.hash[:]...)
}

// bytesView returns the hash or witness program without copying it.
func (p *Payload) bytesView() []byte {
	if p.kind == WitnessProgramPayload {
		return p.program
	}
	return p.hash[:]
}

// putP2PKHScript serializes a pay-to-pubkey-hash script for the provided hash
// directly into the passed byte slice which must be at least p2pkhScriptLen
// bytes in length or it will panic.
func putP2PKHScript(script []byte, hash *[ripemd160.Size]byte) {
	// A pay-to-pubkey-hash script is of the form:
	//  DUP HASH160 <20-byte hash> EQUALVERIFY CHECKSIG
	script[0] = txscript.OP_DUP
	script[1] = txscript.OP_HASH160
	script[2] = txscript.OP_DATA_20
	copy(script[3:23], hash[:])
	script[23] = txscript.OP_EQUALVERIFY
	script[24] = txscript.OP_CHECKSIG
}

// putP2SHScript serializes a pay-to-script-hash script for the provided hash
// directly into the passed byte slice which must be at least p2shScriptLen
// bytes in length or it will panic.
func putP2SHScript(script []byte, hash *[ripemd160.Size]byte) {
	// A pay-to-script-hash script is of the form:
	//  HASH160 <20-byte hash> EQUAL
	script[0] = txscript.OP_HASH160
	script[1] = txscript.OP_DATA_20
	copy(script[2:22], hash[:])
	script[22] = txscript.OP_EQUAL
}

// ScriptPubKey returns the output script that pays to the payload.
//
// This is the inverse of PayloadFromScript.
func (p Payload) ScriptPubKey() []byte {
	switch p.kind {
	case PubKeyHashPayload:
		var script [p2pkhScriptLen]byte
		putP2PKHScript(script[:], &p.hash)
		return script[:]

	case ScriptHashPayload:
		var script [p2shScriptLen]byte
		putP2SHScript(script[:], &p.hash)
		return script[:]
	}

	// A witness program script is of the form:
	//  <version opcode> <push of 2 to 40 byte program>
	script := make([]byte, 0, 2+len(p.program))
	script = append(script, p.version.Opcode(), byte(len(p.program)))
	return append(script, p.program...)
}

// Equal returns whether or not the two payloads are the same.
func (p Payload) Equal(other Payload) bool {
	return p.Compare(other) == 0
}

// Compare returns an integer comparing two payloads.  Payloads order first by
// kind, then by witness version, and finally by the bytes they commit to.  The
// result is 0 if p == other, -1 if p < other, and +1 if p > other.
func (p Payload) Compare(other Payload) int {
	switch {
	case p.kind < other.kind:
		return -1
	case p.kind > other.kind:
		return 1
	}
	if p.kind == WitnessProgramPayload {
		switch {
		case p.version < other.version:
			return -1
		case p.version > other.version:
			return 1
		}
	}
	return bytes.Compare(p.bytesView(), other.bytesView())
}
