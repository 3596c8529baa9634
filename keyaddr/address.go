// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyaddr

import (
	"errors"

	"github.com/dogecoinfoundation/libdogecoin-sub000/base58"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/hashutil"
	"github.com/dogecoinfoundation/libdogecoin-sub000/txscript"
)

// AddressType distinguishes the two Base58Check address kinds this package
// encodes/decodes, matching the wallet's address-book record type byte.
type AddressType byte

const (
	PubKeyHashAddr AddressType = iota
	ScriptHashAddr
)

// ErrUnknownAddressNetwork indicates a decoded address's version byte
// matched neither the chain's P2PKH nor P2SH prefix.
var ErrUnknownAddressNetwork = errors.New("keyaddr: address version byte matches neither P2PKH nor P2SH prefix for this network")

// EncodeAddress Base58Check-encodes a 20-byte hash160 as a P2PKH address
// using the chain's pubkey-hash version byte.
func EncodeAddress(hash160 []byte, net *chaincfg.Params) string {
	return base58.CheckEncode(hash160, net.PubKeyHashAddrID)
}

// EncodeScriptAddress Base58Check-encodes a 20-byte script hash160 as a P2SH
// address using the chain's script-hash version byte.
func EncodeScriptAddress(hash160 []byte, net *chaincfg.Params) string {
	return base58.CheckEncode(hash160, net.ScriptHashAddrID)
}

// DecodeAddress decodes a Base58Check address string, returning its 20-byte
// hash160 payload and whether it is a P2PKH or P2SH address. It fails if the
// checksum is wrong or the version byte matches neither prefix for net.
func DecodeAddress(addr string, net *chaincfg.Params) ([]byte, AddressType, error) {
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, 0, err
	}
	if len(payload) != 20 {
		return nil, 0, errors.New("keyaddr: decoded address payload is not 20 bytes")
	}
	switch version {
	case net.PubKeyHashAddrID:
		return payload, PubKeyHashAddr, nil
	case net.ScriptHashAddrID:
		return payload, ScriptHashAddr, nil
	default:
		return nil, 0, ErrUnknownAddressNetwork
	}
}

// PubKeyToP2PKHAddress derives the P2PKH address for a (compressed or
// uncompressed) public key: Base58Check(net.PubKeyHashAddrID ||
// hash160(pubkey)).
func PubKeyToP2PKHAddress(pubKey []byte, net *chaincfg.Params) string {
	return EncodeAddress(hashutil.Hash160(pubKey), net)
}

// PayToAddrScript builds the standard output script (P2PKH or P2SH) paying
// to the decoded address, used by the transaction builder.
func PayToAddrScript(addr string, net *chaincfg.Params) ([]byte, error) {
	hash, kind, err := DecodeAddress(addr, net)
	if err != nil {
		return nil, err
	}
	switch kind {
	case PubKeyHashAddr:
		return txscript.NewPubKeyHashScript(hash)
	case ScriptHashAddr:
		return txscript.NewScriptHashScript(hash)
	default:
		return nil, ErrUnknownAddressNetwork
	}
}
