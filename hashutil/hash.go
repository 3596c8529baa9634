// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashutil collects the primitive digest and MAC functions used
// throughout the key, address, and transaction subsystems: SHA-256/512,
// HMAC, PBKDF2, RIPEMD-160, and the two composite digests
// (DoubleSha256/Hash160) legacy Bitcoin/Dogecoin consensus code uses
// throughout.
package hashutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns the SHA-256 digest of b.
func Sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// Sha512 returns the SHA-512 digest of b.
func Sha512(b []byte) []byte {
	sum := sha512.Sum512(b)
	return sum[:]
}

// DoubleSha256 computes dogecoin_hash(x) = SHA256(SHA256(x)).
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 computes hash160(x) = RIPEMD160(SHA256(x)), the digest used for
// P2PKH/P2SH payloads.
func Hash160(b []byte) []byte {
	return calcHash(Sha256(b), ripemd160.New())
}

func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// HMACSha512 computes HMAC-SHA512(key, msg), used by BIP32 child key
// derivation.
func HMACSha512(key, msg []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// Pbkdf2HmacSha512 computes PBKDF2-HMAC-SHA512(password, salt, iter, dklen),
// used to derive a BIP39 seed from a mnemonic and passphrase.
func Pbkdf2HmacSha512(password, salt []byte, iter, dklen int) []byte {
	return pbkdf2.Key(password, salt, iter, dklen, sha512.New)
}
