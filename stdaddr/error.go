// Copyright (c) 2021-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

// ErrorKind identifies a kind of error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrBase58 indicates that the Base58Check decoding of an address failed,
	// for example due to an invalid character or a checksum mismatch.
	ErrBase58 = ErrorKind("ErrBase58")

	// ErrBech32 indicates that the Bech32 or Bech32m decoding or encoding of
	// an address failed.
	ErrBech32 = ErrorKind("ErrBech32")

	// ErrEmptyBech32Payload indicates that a Bech32 address decoded to an
	// empty data section.
	ErrEmptyBech32Payload = ErrorKind("ErrEmptyBech32Payload")

	// ErrInvalidBech32Variant indicates that a segwit address was checksummed
	// with a variant that does not match the variant required by its witness
	// version.
	ErrInvalidBech32Variant = ErrorKind("ErrInvalidBech32Variant")

	// ErrInvalidWitnessVersion indicates that a witness version is outside of
	// the range 0 through 16.
	ErrInvalidWitnessVersion = ErrorKind("ErrInvalidWitnessVersion")

	// ErrUnparsableWitnessVersion indicates that the text form of a witness
	// version is not an integer.
	ErrUnparsableWitnessVersion = ErrorKind("ErrUnparsableWitnessVersion")

	// ErrMalformedWitnessVersion indicates that a script opcode or instruction
	// does not represent a witness version.
	ErrMalformedWitnessVersion = ErrorKind("ErrMalformedWitnessVersion")

	// ErrInvalidWitnessProgramLength indicates that a witness program is not
	// between 2 and 40 bytes.
	ErrInvalidWitnessProgramLength = ErrorKind("ErrInvalidWitnessProgramLength")

	// ErrInvalidSegwitV0ProgramLength indicates that a version 0 witness
	// program is neither 20 nor 32 bytes.
	ErrInvalidSegwitV0ProgramLength = ErrorKind("ErrInvalidSegwitV0ProgramLength")

	// ErrUncompressedPubKey indicates that a public key in the uncompressed
	// format was provided where only compressed keys are allowed.
	ErrUncompressedPubKey = ErrorKind("ErrUncompressedPubKey")

	// ErrExcessiveScriptSize indicates that a redeem script exceeds the
	// maximum allowed size of a script element.
	ErrExcessiveScriptSize = ErrorKind("ErrExcessiveScriptSize")

	// ErrUnrecognizedScript indicates that a script does not match any of the
	// recognized payment script forms.
	ErrUnrecognizedScript = ErrorKind("ErrUnrecognizedScript")

	// ErrUnknownAddressType indicates that the text form of an address type
	// is not known.
	ErrUnknownAddressType = ErrorKind("ErrUnknownAddressType")

	// ErrInvalidLength indicates that a Base58 address is too long or does not
	// decode to exactly 21 bytes.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidAddressVersion indicates that the version byte of a Base58
	// address is not known for any supported coin.
	ErrInvalidAddressVersion = ErrorKind("ErrInvalidAddressVersion")

	// ErrInvalidPubKey indicates that a public key is not a valid secp256k1
	// point in a supported serialization format.
	ErrInvalidPubKey = ErrorKind("ErrInvalidPubKey")

	// ErrInvalidHashLen indicates that a hash has a length other than the
	// length required by its payload kind.
	ErrInvalidHashLen = ErrorKind("ErrInvalidHashLen")

	// ErrUnsupportedSegwitNetwork indicates that a segwit address was
	// requested for a coin that does not define segwit addresses on the
	// requested network.
	ErrUnsupportedSegwitNetwork = ErrorKind("ErrUnsupportedSegwitNetwork")

	// ErrUnsupportedNetwork indicates that a coin or network is not known.
	ErrUnsupportedNetwork = ErrorKind("ErrUnsupportedNetwork")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an address-related error.
//
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.  When the
// error originated in one of the underlying encoding primitives, that error is
// available through Cause and is also matched by errors.Is and errors.As.
type Error struct {
	Err         error
	Cause       error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped errors.
func (e Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// wrapError creates an Error given a set of arguments that also carries the
// error returned by an underlying primitive.
func wrapError(kind ErrorKind, cause error, desc string) Error {
	return Error{Err: kind, Cause: cause, Description: desc}
}
