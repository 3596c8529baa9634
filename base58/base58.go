// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements the Base58 and Base58Check encodings used by
// WIF-encoded private keys and P2PKH/P2SH addresses.
package base58

import "github.com/decred/base58"

// Alphabet is the 58-character alphabet used by the encoding, listed here
// for documentation purposes; the actual codec is delegated to
// decred/base58, which uses the identical alphabet.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Encode encodes a byte slice to a modified base58 string, preserving
// leading zero bytes as leading '1' characters.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode decodes a modified base58 string to a byte slice. It returns nil
// if the input contains characters outside of the base58 alphabet.
func Decode(s string) []byte {
	return base58.Decode(s)
}
