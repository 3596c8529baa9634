// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keyaddr implements the WIF codec, P2PKH address codec, and BIP44
// path builder, grounded on the same Base58Check/secp256k1 plumbing
// dcrutil/wif.go and exccutil/wif.go use, simplified to the single
// secp256k1 scheme Dogecoin requires (no Ed25519/Schnorr EC-type byte;
// those are Decred-only).
package keyaddr

import (
	"bytes"
	"errors"

	"github.com/dogecoinfoundation/libdogecoin-sub000/base58"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/ecc"
)

// Errors returned by the WIF codec, matching 's InvalidEncoding /
// ChecksumMismatch / InvalidKey taxonomy.
var (
	ErrMalformedWIF    = errors.New("keyaddr: malformed WIF, expected compression byte after 32-byte privkey")
	ErrWrongWIFNetwork = errors.New("keyaddr: WIF secret-key prefix does not match the requested network")
	ErrInvalidWIFLen   = errors.New("keyaddr: decoded WIF payload has the wrong length")
)

// WIF is a decoded Wallet Import Format private key: the 32-byte scalar,
// whether it should be paired with a compressed public key, and the network
// it was encoded for.
type WIF struct {
	PrivKey    []byte
	Compressed bool
	Net        *chaincfg.Params
}

// EncodeWIF encodes priv (a valid secp256k1 scalar) as the chain's WIF
// string: secret_byte || priv32 || [0x01 if compressed] → Base58Check.
func EncodeWIF(priv []byte, compressed bool, net *chaincfg.Params) (string, error) {
	if !ecc.DefaultContext.VerifyPrivateKey(priv) {
		return "", errors.New("keyaddr: invalid private key")
	}
	payload := make([]byte, 0, 33)
	payload = append(payload, priv...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58.CheckEncode(payload, net.PrivateKeyID), nil
}

// DecodeWIF decodes a WIF string, rejecting a wrong network prefix or a
// failed Base58Check checksum.
func DecodeWIF(s string, net *chaincfg.Params) (*WIF, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return nil, err
	}
	if version != net.PrivateKeyID {
		return nil, ErrWrongWIFNetwork
	}
	switch len(payload) {
	case 32:
		return &WIF{PrivKey: payload, Compressed: false, Net: net}, nil
	case 33:
		if payload[32] != 0x01 {
			return nil, ErrMalformedWIF
		}
		return &WIF{PrivKey: payload[:32], Compressed: true, Net: net}, nil
	default:
		return nil, ErrInvalidWIFLen
	}
}

// String re-encodes the WIF back to its Base58Check string form.
func (w *WIF) String() string {
	s, _ := EncodeWIF(w.PrivKey, w.Compressed, w.Net)
	return s
}

// PubKey returns the public key paired with this WIF's private key,
// compressed or uncompressed per w.Compressed.
func (w *WIF) PubKey() ([]byte, error) {
	return ecc.DefaultContext.GetPubKey(w.PrivKey, w.Compressed)
}

// Equal reports whether two WIF payloads decode to the same private key
// material and compression flag.
func (w *WIF) Equal(other *WIF) bool {
	return w.Compressed == other.Compressed && bytes.Equal(w.PrivKey, other.PrivKey)
}
