// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mnemonic implements BIP-0039 mnemonic sentence generation,
// validation, and seed derivation. Entropy is encoded as
// 11-bit word indices with an appended SHA-256 checksum; seeds are
// derived from the mnemonic string directly via PBKDF2-HMAC-SHA512 and do
// not depend on which wordlist (if any) produced the sentence.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dogecoinfoundation/libdogecoin-sub000/hashutil"
)

// Errors returned by this package.
var (
	ErrInvalidEntropyLen  = errors.New("mnemonic: entropy length must be one of 128,160,192,224,256 bits")
	ErrInvalidMnemonicLen = errors.New("mnemonic: word count must be one of 12,15,18,21,24")
	ErrUnknownWord        = errors.New("mnemonic: word not present in wordlist")
	ErrChecksumMismatch   = errors.New("mnemonic: checksum does not match entropy")
)

const (
	seedPBKDF2Iterations = 2048
	seedLength           = 64
	seedSalt             = "mnemonic"
)

// validEntropyBits are the five entropy lengths BIP-0039 permits.
var validEntropyBits = map[int]bool{128: true, 160: true, 192: true, 224: true, 256: true}

// NewEntropy returns bitSize bits (16 to 32 bytes, a multiple of 32) of
// cryptographically secure random entropy suitable for NewMnemonic.
func NewEntropy(bitSize int) ([]byte, error) {
	if !validEntropyBits[bitSize] {
		return nil, ErrInvalidEntropyLen
	}
	entropy := make([]byte, bitSize/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, err
	}
	return entropy, nil
}

// NewMnemonic encodes entropy (16, 20, 24, 28, or 32 bytes) as a mnemonic
// sentence using wl: append the first ENT/32 bits of SHA256(entropy) as
// checksum, split ENT+CS into 11-bit chunks, and index into wl.
func NewMnemonic(entropy []byte, wl *Wordlist) (string, error) {
	bitSize := len(entropy) * 8
	if !validEntropyBits[bitSize] {
		return "", ErrInvalidEntropyLen
	}

	checksumBits := bitSize / 32
	checksum := sha256.Sum256(entropy)

	totalBits := bitSize + checksumBits
	stream := make([]byte, (totalBits+7)/8)
	copy(stream, entropy)
	for i := 0; i < checksumBits; i++ {
		setBit(stream, bitSize+i, getBit(checksum[:], i))
	}

	wordCount := totalBits / 11
	words := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		idx := bitsToUint(stream, i*11, 11)
		words[i] = wl.Words[idx]
	}
	return strings.Join(words, wl.Separator), nil
}

// MnemonicToEntropy recovers the original entropy from a mnemonic sentence
// produced by NewMnemonic, verifying its embedded checksum.
func MnemonicToEntropy(mnemonic string, wl *Wordlist) ([]byte, error) {
	words := splitMnemonic(mnemonic, wl.Separator)
	wordCount := len(words)
	validWordCounts := map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}
	if !validWordCounts[wordCount] {
		return nil, ErrInvalidMnemonicLen
	}

	totalBits := wordCount * 11
	checksumBits := totalBits / 33
	entropyBits := totalBits - checksumBits

	stream := make([]byte, (totalBits+7)/8)
	for i, w := range words {
		idx := wl.indexOf(w)
		if idx < 0 {
			return nil, ErrUnknownWord
		}
		uintToBits(stream, i*11, 11, idx)
	}

	entropy := append([]byte(nil), stream[:entropyBits/8]...)
	checksum := sha256.Sum256(entropy)
	gotChecksum := bitsToUint(stream, entropyBits, checksumBits)
	wantChecksum := bitsToUint(checksum[:], 0, checksumBits)
	if gotChecksum != wantChecksum {
		return nil, ErrChecksumMismatch
	}
	return entropy, nil
}

// IsMnemonicValid reports whether mnemonic is a well-formed sentence over
// wl with a correct checksum.
func IsMnemonicValid(mnemonic string, wl *Wordlist) bool {
	_, err := MnemonicToEntropy(mnemonic, wl)
	return err == nil
}

// NewSeed derives the 64-byte wallet seed from a mnemonic sentence and
// optional passphrase:
// PBKDF2-HMAC-SHA512(mnemonic_NFKD, "mnemonic" || passphrase_NFKD, 2048, 64).
// It operates on the mnemonic string directly and does not require or
// validate any particular wordlist.
func NewSeed(mnemonic, passphrase string) []byte {
	normMnemonic := norm.NFKD.String(mnemonic)
	normPass := norm.NFKD.String(passphrase)
	salt := seedSalt + normPass
	return hashutil.Pbkdf2HmacSha512([]byte(normMnemonic), []byte(salt), seedPBKDF2Iterations, seedLength)
}

// splitMnemonic splits a mnemonic sentence on sep, falling back to
// whitespace-splitting so sentences typed with ordinary spaces still parse
// against an ideographic-space wordlist such as Japanese.
func splitMnemonic(mnemonic, sep string) []string {
	if sep != "" && sep != " " {
		if parts := strings.Split(mnemonic, sep); len(parts) > 1 {
			return parts
		}
	}
	return strings.Fields(mnemonic)
}
