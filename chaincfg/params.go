// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	Host string

	// HasFiltering indicates whether the seed supports filtering by
	// service flag.
	HasFiltering bool
}

// Checkpoint identifies a known-good point in the block chain that header
// sync may anchor to, skipping verification of everything before it.
type Checkpoint struct {
	Height    int32
	Hash      chainhash.Hash
	Timestamp time.Time
}

// Params defines a Dogecoin network by its immutable, process-lifetime
// parameters: human name, wire magic, Base58 version bytes, BIP32 extended
// key magics, default port, genesis block, DNS seeds and checkpoints.
//
// Exactly three instances exist: MainNetParams, TestNetParams and
// RegressionNetParams. Params values are never mutated after construction.
type Params struct {
	// Name is the human-readable identifier for the network.
	Name string

	// Net is the magic number identifying the network on the wire.
	Net uint32

	// DefaultPort is the default TCP port new peers listen on.
	DefaultPort string

	// DNSSeeds is the list of DNS seeds used to discover peers when no
	// explicit peer list is provided.
	DNSSeeds []DNSSeed

	// GenesisHash is the hash of the genesis block header.
	GenesisHash chainhash.Hash

	// GenesisHeader is the 80-byte genesis block header.
	GenesisHeader [80]byte

	// Checkpoints is an ordered (ascending height) list of known-good
	// header checkpoints.
	Checkpoints []Checkpoint

	// Base58 address/WIF version bytes.
	PubKeyHashAddrID byte // P2PKH address prefix
	ScriptHashAddrID byte // P2SH address prefix
	PrivateKeyID     byte // WIF secret-key prefix

	// BIP32 hierarchical deterministic extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// HDCoinType is the BIP44 coin type used when deriving the default
	// account path (m/44'/<coin>'/...).
	HDCoinType uint32
}

// mustHashFromStr parses a reverse-order (display) hex hash string into a
// Hash, panicking on malformed input. It is used only for compile-time
// constant table construction in this package.
func mustHashFromStr(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: invalid hash literal %q: %v", s, err))
	}
	return *h
}

func mustHexDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("chaincfg: invalid hex literal %q: %v", s, err))
	}
	return b
}

func mustHeader80(s string) [80]byte {
	b := mustHexDecode(s)
	var out [80]byte
	if len(b) != len(out) {
		panic(fmt.Sprintf("chaincfg: header literal is %d bytes, want 80", len(b)))
	}
	copy(out[:], b)
	return out
}

// registry allows looking up Params by name or by wire magic, following
// btcd/dcrd's pattern of a single "active" chain selected at process
// startup from an otherwise-immutable set (see chaincfg/doc.go). The
// registry here is read-only data built once at init time.
var registry = map[string]*Params{}
var registryByMagic = map[uint32]*Params{}

func register(p *Params) *Params {
	registry[p.Name] = p
	registryByMagic[p.Net] = p
	return p
}

// ChainFromName looks up a registered Params by its Name field (e.g.
// "mainnet", "testnet", "regtest"), the same named-chain lookup
// libdogecoin's chain.h registry provides alongside its three constructors.
func ChainFromName(name string) (*Params, bool) {
	p, ok := registry[name]
	return p, ok
}

// ChainFromMagic looks up a registered Params by its wire network magic.
func ChainFromMagic(magic uint32) (*Params, bool) {
	p, ok := registryByMagic[magic]
	return p, ok
}
