// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"errors"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// ErrChecksum indicates that the checksum of a Base58Check-encoded payload
// does not match the expected value.
var ErrChecksum = errors.New("base58check: checksum mismatch")

// ErrInvalidFormat indicates that a decoded Base58Check string does not fit
// the expected format (too short to contain a checksum).
var ErrInvalidFormat = errors.New("base58check: invalid format")

const checksumLen = 4

// checksum returns the first four bytes of SHA256(SHA256(payload)).
func checksum(payload []byte) [checksumLen]byte {
	var out [checksumLen]byte
	copy(out[:], chainhash.DoubleHashB(payload))
	return out
}

// CheckEncode prepends a version byte to the payload, appends a 4-byte
// checksum, and base58-encodes the result. This is the WIF/P2PKH/xpub
// encoding scheme used throughout .
func CheckEncode(payload []byte, version byte) string {
	buf := make([]byte, 0, 1+len(payload)+checksumLen)
	buf = append(buf, version)
	buf = append(buf, payload...)
	cksum := checksum(buf)
	buf = append(buf, cksum[:]...)
	return Encode(buf)
}

// CheckEncodeMulti is CheckEncode with a multi-byte (already concatenated)
// version prefix, used by xpub/xprv serialization where the "version" is a
// 4-byte magic rather than a single byte.
func CheckEncodeMulti(payload []byte) string {
	cksum := checksum(payload)
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, cksum[:]...)
	return Encode(buf)
}

// CheckDecode decodes a Base58Check string, verifying the checksum, and
// returns the version byte and payload separately.
func CheckDecode(s string) (payload []byte, version byte, err error) {
	decoded := Decode(s)
	if len(decoded) < 1+checksumLen {
		return nil, 0, ErrInvalidFormat
	}
	body := decoded[:len(decoded)-checksumLen]
	want := decoded[len(decoded)-checksumLen:]
	got := checksum(body)
	if !bytes.Equal(got[:], want) {
		return nil, 0, ErrChecksum
	}
	return body[1:], body[0], nil
}

// CheckDecodeMulti decodes a Base58Check string without splitting off a
// single version byte, verifying the checksum and returning the full
// version+payload body. Used for xpub/xprv decoding where the version is a
// 4-byte magic handled by the caller.
func CheckDecodeMulti(s string) (body []byte, err error) {
	decoded := Decode(s)
	if len(decoded) < checksumLen {
		return nil, ErrInvalidFormat
	}
	body = decoded[:len(decoded)-checksumLen]
	want := decoded[len(decoded)-checksumLen:]
	got := checksum(body)
	if !bytes.Equal(got[:], want) {
		return nil, ErrChecksum
	}
	return body, nil
}
