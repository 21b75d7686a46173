// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/txscript"
)

// WitnessVersion is the version of a segregated witness output.  Valid
// versions are 0 through 16.  Every function in this package that produces a
// WitnessVersion guarantees it is in range and every function that accepts one
// rejects values outside of it.
type WitnessVersion uint8

// These constants define the valid witness versions.
const (
	WitnessV0 WitnessVersion = iota
	WitnessV1
	WitnessV2
	WitnessV3
	WitnessV4
	WitnessV5
	WitnessV6
	WitnessV7
	WitnessV8
	WitnessV9
	WitnessV10
	WitnessV11
	WitnessV12
	WitnessV13
	WitnessV14
	WitnessV15
	WitnessV16
)

// maxWitnessVersion is the highest witness version.
const maxWitnessVersion = WitnessV16

// NewWitnessVersion returns the witness version for the provided number.  An
// error of kind ErrInvalidWitnessVersion is returned when it is greater than
// 16.
func NewWitnessVersion(num uint8) (WitnessVersion, error) {
	if num > uint8(maxWitnessVersion) {
		str := fmt.Sprintf("invalid witness version %d", num)
		return 0, makeError(ErrInvalidWitnessVersion, str)
	}
	return WitnessVersion(num), nil
}

// WitnessVersionFromSymbol returns the witness version encoded by the
// provided 5-bit Bech32 data symbol.
func WitnessVersionFromSymbol(symbol byte) (WitnessVersion, error) {
	return NewWitnessVersion(symbol)
}

// WitnessVersionFromOpcode returns the witness version pushed by the provided
// script opcode.  OP_0 is version 0 and OP_1 through OP_16 are versions 1
// through 16.  Any other opcode results in an error of kind
// ErrMalformedWitnessVersion.
func WitnessVersionFromOpcode(opcode byte) (WitnessVersion, error) {
	switch {
	case opcode == txscript.OP_0:
		return WitnessV0, nil
	case opcode >= txscript.OP_1 && opcode <= txscript.OP_16:
		return WitnessVersion(opcode - (txscript.OP_1 - 1)), nil
	}

	str := fmt.Sprintf("opcode 0x%02x is not a witness version", opcode)
	return 0, makeError(ErrMalformedWitnessVersion, str)
}

// WitnessVersionFromInstruction returns the witness version represented by a
// parsed script instruction given as its opcode and pushed data.  A push of
// empty data is version 0, a push of any other data is an error of kind
// ErrMalformedWitnessVersion, and every other opcode is converted as in
// WitnessVersionFromOpcode.
func WitnessVersionFromInstruction(opcode byte, data []byte) (WitnessVersion, error) {
	if opcode > txscript.OP_PUSHDATA4 {
		return WitnessVersionFromOpcode(opcode)
	}
	if len(data) != 0 {
		str := fmt.Sprintf("push of %d bytes is not a witness version",
			len(data))
		return 0, makeError(ErrMalformedWitnessVersion, str)
	}
	return WitnessV0, nil
}

// ParseWitnessVersion returns the witness version represented by the provided
// decimal text.  An error of kind ErrUnparsableWitnessVersion is returned when
// the text is not an unsigned 8-bit integer and ErrInvalidWitnessVersion when
// the integer is out of range.
func ParseWitnessVersion(s string) (WitnessVersion, error) {
	num, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		str := fmt.Sprintf("unparsable witness version %q", s)
		return 0, wrapError(ErrUnparsableWitnessVersion, err, str)
	}
	return NewWitnessVersion(uint8(num))
}

// IsValid returns whether or not the witness version is in range.
func (v WitnessVersion) IsValid() bool {
	return v <= maxWitnessVersion
}

// Num returns the witness version as a number.
func (v WitnessVersion) Num() uint8 {
	return uint8(v)
}

// Symbol returns the witness version as a 5-bit Bech32 data symbol.
func (v WitnessVersion) Symbol() byte {
	return byte(v)
}

// Opcode returns the script opcode that pushes the witness version.
func (v WitnessVersion) Opcode() byte {
	if v == WitnessV0 {
		return txscript.OP_0
	}
	return byte(v) + (txscript.OP_1 - 1)
}

// Bech32Version returns the checksum variant that addresses for the witness
// version must be encoded with.  Version 0 uses Bech32 and all later versions
// use Bech32m as specified by BIP 350.
func (v WitnessVersion) Bech32Version() bech32.Version {
	if v == WitnessV0 {
		return bech32.Version0
	}
	return bech32.VersionM
}

// String returns the witness version as decimal text.
func (v WitnessVersion) String() string {
	return strconv.FormatUint(uint64(v), 10)
}
