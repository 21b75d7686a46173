// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdaddr

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PublicKey is a secp256k1 public key along with the serialization format it
// is committed to in address payloads.
type PublicKey struct {
	key        *secp256k1.PublicKey
	compressed bool
}

// NewPublicKey returns a public key that serializes in the compressed format
// when compressed is true and in the uncompressed format otherwise.
func NewPublicKey(key *secp256k1.PublicKey, compressed bool) PublicKey {
	return PublicKey{key: key, compressed: compressed}
}

// ParsePublicKey parses a secp256k1 public key serialized in either the
// compressed or uncompressed format and remembers the format for later
// serialization.
func ParsePublicKey(serialized []byte) (PublicKey, error) {
	key, err := secp256k1.ParsePubKey(serialized)
	if err != nil {
		str := fmt.Sprintf("failed to parse public key: %v", err)
		return PublicKey{}, wrapError(ErrInvalidPubKey, err, str)
	}
	compressed := len(serialized) == secp256k1.PubKeyBytesLenCompressed
	return PublicKey{key: key, compressed: compressed}, nil
}

// Key returns the underlying secp256k1 public key.
func (k PublicKey) Key() *secp256k1.PublicKey {
	return k.key
}

// IsCompressed returns whether or not the key serializes in the compressed
// format.
func (k PublicKey) IsCompressed() bool {
	return k.compressed
}

// Serialize returns the key in the format it was created with.
func (k PublicKey) Serialize() []byte {
	if k.compressed {
		return k.key.SerializeCompressed()
	}
	return k.key.SerializeUncompressed()
}

// Hash160 returns the hash160 of the serialized key.
func (k PublicKey) Hash160() [ripemd160.Size]byte {
	return hash160(k.Serialize())
}

// XOnly returns the x-only form of the key as defined by BIP 340.
func (k PublicKey) XOnly() XOnlyPublicKey {
	var xonly XOnlyPublicKey
	copy(xonly[:], schnorr.SerializePubKey(k.key))
	return xonly
}

// XOnlyPublicKey is a secp256k1 public key serialized as only its 32-byte x
// coordinate as defined by BIP 340.
type XOnlyPublicKey [schnorr.PubKeyBytesLen]byte

// ParseXOnlyPublicKey parses a 32-byte x-only public key and ensures it is a
// valid point on the curve.
func ParseXOnlyPublicKey(serialized []byte) (XOnlyPublicKey, error) {
	var xonly XOnlyPublicKey
	if _, err := schnorr.ParsePubKey(serialized); err != nil {
		str := fmt.Sprintf("failed to parse x-only public key: %v", err)
		return xonly, wrapError(ErrInvalidPubKey, err, str)
	}
	copy(xonly[:], serialized)
	return xonly, nil
}

// PublicKey returns the full public key for the x-only key with the even y
// coordinate.
func (k XOnlyPublicKey) PublicKey() (*btcec.PublicKey, error) {
	key, err := schnorr.ParsePubKey(k[:])
	if err != nil {
		str := fmt.Sprintf("invalid x-only public key %x: %v", k[:], err)
		return nil, wrapError(ErrInvalidPubKey, err, str)
	}
	return key, nil
}

// TweakedPublicKey is an x-only public key that is already the output key of
// a taproot commitment.
type TweakedPublicKey XOnlyPublicKey

// AssumeTweaked marks the provided x-only key as already tweaked.  No check is
// performed, so the caller must ensure the key really is a taproot output key.
func AssumeTweaked(key XOnlyPublicKey) TweakedPublicKey {
	return TweakedPublicKey(key)
}

// XOnly returns the tweaked key as an x-only public key.
func (k TweakedPublicKey) XOnly() XOnlyPublicKey {
	return XOnlyPublicKey(k)
}
