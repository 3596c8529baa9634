// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"testing"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// TestMainNetGenesisHash checks the well-known mainnet genesis hash
// is exactly the literal the rest of the codebase
// anchors checkpoints and wallet-file validation to, and that the bundled
// genesis header is a well-formed 80-byte value.
func TestMainNetGenesisHash(t *testing.T) {
	params := MainNetParams()

	const want = "1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691"
	if got := params.GenesisHash.String(); got != want {
		t.Errorf("genesis hash = %s, want %s", got, want)
	}
	if len(params.GenesisHeader) != 80 {
		t.Fatalf("genesis header length = %d, want 80", len(params.GenesisHeader))
	}
	if len(params.Checkpoints) == 0 || params.Checkpoints[0].Hash != params.GenesisHash {
		t.Errorf("first checkpoint must anchor the genesis hash")
	}
}

// TestDoubleHashRoundTrip exercises the universal double-SHA256 invariant:
// header_hash(header) == SHA256(SHA256(serialize(header))), independent of
// which bytes are hashed.
func TestDoubleHashRoundTrip(t *testing.T) {
	raw := make([]byte, 80)
	for i := range raw {
		raw[i] = byte(i)
	}
	got := chainhash.DoubleHashH(raw)
	want := chainhash.HashH(chainhash.HashB(raw))
	if got != want {
		t.Errorf("DoubleHashH = %s, want %s", got, want)
	}
}

func TestChainLookup(t *testing.T) {
	if p, ok := ChainFromName("mainnet"); !ok || p != MainNetParams() {
		t.Errorf("ChainFromName(mainnet) = %v, %v", p, ok)
	}
	if p, ok := ChainFromMagic(0xc0c0c0c0); !ok || p != MainNetParams() {
		t.Errorf("ChainFromMagic(mainnet) = %v, %v", p, ok)
	}
	if _, ok := ChainFromName("nonexistent"); ok {
		t.Errorf("ChainFromName(nonexistent) unexpectedly found")
	}
}

func TestGenesisHashHexRoundTrip(t *testing.T) {
	params := MainNetParams()
	if hex.EncodeToString(params.GenesisHeader[:4]) != "01000000" {
		t.Errorf("genesis header version bytes = %x, want 01000000",
			params.GenesisHeader[:4])
	}
}
