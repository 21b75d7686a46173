// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"
)

// AddressType classifies the standard address forms.
type AddressType uint8

// These constants define the standard address types.
const (
	// P2PKH is a pay-to-pubkey-hash address.
	P2PKH AddressType = iota

	// P2SH is a pay-to-script-hash address.
	P2SH

	// P2WPKH is a pay-to-witness-pubkey-hash address.
	P2WPKH

	// P2WSH is a pay-to-witness-script-hash address.
	P2WSH

	// P2TR is a pay-to-taproot address.
	P2TR

	// numAddressTypes is the number of standard address types.  It must be
	// the final entry.
	numAddressTypes
)

// addressTypeStrings maps each address type to its text form.
var addressTypeStrings = [numAddressTypes]string{
	P2PKH:  "p2pkh",
	P2SH:   "p2sh",
	P2WPKH: "p2wpkh",
	P2WSH:  "p2wsh",
	P2TR:   "p2tr",
}

// AddressTypes returns all of the standard address types.
func AddressTypes() []AddressType {
	types := make([]AddressType, 0, numAddressTypes)
	for t := AddressType(0); t < numAddressTypes; t++ {
		types = append(types, t)
	}
	return types
}

// String returns the text form of the address type.
func (t AddressType) String() string {
	if t < numAddressTypes {
		return addressTypeStrings[t]
	}
	return fmt.Sprintf("Unknown AddressType (%d)", uint8(t))
}

// ParseAddressType returns the address type for the provided text form.  An
// error of kind ErrUnknownAddressType is returned when it is not known.
func ParseAddressType(s string) (AddressType, error) {
	for t, str := range addressTypeStrings {
		if s == str {
			return AddressType(t), nil
		}
	}
	str := fmt.Sprintf("unknown address type %q", s)
	return 0, makeError(ErrUnknownAddressType, str)
}

// MarshalText satisfies the encoding.TextMarshaler interface.
func (t AddressType) MarshalText() ([]byte, error) {
	if t >= numAddressTypes {
		str := fmt.Sprintf("unknown address type %d", uint8(t))
		return nil, makeError(ErrUnknownAddressType, str)
	}
	return []byte(t.String()), nil
}

// UnmarshalText satisfies the encoding.TextUnmarshaler interface.
func (t *AddressType) UnmarshalText(text []byte) error {
	parsed, err := ParseAddressType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
