// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the fixed-size digest types used throughout the
// wire protocol, block index, and transaction model: a 32-byte Hash (the
// double-SHA256 digest used for block and transaction identifiers) and a
// 20-byte Hash160 (the ripemd160(sha256(x)) digest used for addresses).
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/ripemd160"
)

// HashSize is the size, in bytes, of a Hash.
const HashSize = 32

// Hash160Size is the size, in bytes, of a Hash160.
const Hash160Size = 20

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize describes an error that indicates the caller specified a
// hash string that has too many characters.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

// Hash is a double sha256 digest, stored and compared internally in the
// little-endian order it appears on the wire, but rendered as a reversed
// (big-endian) hex string for human display, matching block-explorer
// convention.
type Hash [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash.
func (h Hash) String() string {
	var reversed Hash
	for i, b := range h[:HashSize/2] {
		reversed[i], reversed[HashSize-1-i] = h[HashSize-1-i], b
	}
	return hex.EncodeToString(reversed[:])
}

// CloneBytes returns a copy of the bytes which represent the hash as a byte
// slice in little-endian wire order.
func (h Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, h[:])
	return newHash
}

// SetBytes sets the bytes which represent the hash. An error is returned if
// the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as the hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHash returns a new Hash from a byte slice in little-endian wire order.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewHashFromStr creates a Hash from a hash string. The string should be the
// canonical hex-reversed (big-endian, human-display) notation.
func NewHashFromStr(hash string) (*Hash, error) {
	var h Hash
	if err := Decode(&h, hash); err != nil {
		return nil, err
	}
	return &h, nil
}

// Decode decodes the byte-reversed hexadecimal string encoding of a Hash into
// dst.
func Decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+len(src))
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}
	var reversed Hash
	_, err := hex.Decode(reversed[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}
	for i, b := range reversed[:HashSize/2] {
		dst[i], dst[HashSize-1-i] = reversed[HashSize-1-i], b
	}
	return nil
}

// Hash160 is a ripemd160(sha256(x)) digest, used for P2PKH/P2SH/P2WPKH
// payloads.
type Hash160 [Hash160Size]byte

// String returns the hexadecimal (non-reversed) string of the digest.
func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// IsEqual reports whether target is the same as h.
func (h Hash160) IsEqual(target Hash160) bool {
	return h == target
}

// HashB calculates SHA256(b) and returns the resulting bytes.
func HashB(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// HashH calculates SHA256(b) and returns the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates SHA256(SHA256(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates SHA256(SHA256(b)) and returns the resulting bytes
// as a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// HashToHash160 calculates ripemd160(sha256(b)) and returns the resulting
// bytes as a Hash160.
func HashToHash160(b []byte) Hash160 {
	sum := sha256.Sum256(b)
	r := ripemd160.New()
	r.Write(sum[:])
	var out Hash160
	copy(out[:], r.Sum(nil))
	return out
}

// ErrHash160Size is returned by NewHash160 when given the wrong slice length.
var ErrHash160Size = errors.New("invalid hash160 length")

// NewHash160 constructs a Hash160 from a byte slice in-place.
func NewHash160(b []byte) (Hash160, error) {
	var h Hash160
	if len(b) != Hash160Size {
		return h, ErrHash160Size
	}
	copy(h[:], b)
	return h, nil
}
