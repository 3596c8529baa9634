// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package headersdb

import (
	"os"
	"testing"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// chainOf builds n headers, each extending the previous one's hash, so
// tests can exercise ConnectHeader/FillBlockLocator without real
// proof-of-work.
func chainOf(n int) []*wire.BlockHeader {
	headers := make([]*wire.BlockHeader, n)
	var prev chainhash.Hash
	for i := 0; i < n; i++ {
		headers[i] = &wire.BlockHeader{
			Version:    1,
			PrevBlock:  prev,
			MerkleRoot: chainhash.Hash{byte(i), byte(i >> 8)},
			Timestamp:  uint32(1400000000 + i*60),
			Bits:       0x1e0ffff0,
			Nonce:      uint32(i),
		}
		prev = headers[i].BlockHash()
	}
	return headers
}

func connectAll(t *testing.T, db DB, headers []*wire.BlockHeader) {
	t.Helper()
	for i, h := range headers {
		if _, err := db.ConnectHeader(h); err != nil {
			t.Fatalf("ConnectHeader(%d): %v", i, err)
		}
	}
}

func TestMemDBConnectAndTip(t *testing.T) {
	db := NewMemDB(chaincfg.TestNetParams())
	headers := chainOf(20)
	connectAll(t, db, headers)

	tip, err := db.ChainTip()
	if err != nil {
		t.Fatalf("ChainTip: %v", err)
	}
	if tip.Height != 19 {
		t.Fatalf("tip height = %d, want 19", tip.Height)
	}
	if tip.Hash != headers[19].BlockHash() {
		t.Fatalf("tip hash mismatch")
	}
}

func TestMemDBRejectsUnconnected(t *testing.T) {
	db := NewMemDB(chaincfg.TestNetParams())
	headers := chainOf(3)
	connectAll(t, db, headers)

	orphan := &wire.BlockHeader{Version: 1, MerkleRoot: chainhash.Hash{0xff}}
	if _, err := db.ConnectHeader(orphan); err != ErrHeaderNotConnected {
		t.Fatalf("ConnectHeader(orphan) = %v, want ErrHeaderNotConnected", err)
	}
}

func TestMemDBDisconnectTip(t *testing.T) {
	db := NewMemDB(chaincfg.TestNetParams())
	headers := chainOf(5)
	connectAll(t, db, headers)

	if err := db.DisconnectTip(); err != nil {
		t.Fatalf("DisconnectTip: %v", err)
	}
	tip, err := db.ChainTip()
	if err != nil {
		t.Fatalf("ChainTip: %v", err)
	}
	if tip.Height != 3 {
		t.Fatalf("tip height after disconnect = %d, want 3", tip.Height)
	}
	if tip.Hash != headers[3].BlockHash() {
		t.Fatalf("tip hash after disconnect mismatch")
	}
}

func TestMemDBEmptyChainErrors(t *testing.T) {
	db := NewMemDB(chaincfg.TestNetParams())
	if _, err := db.ChainTip(); err != ErrEmptyChain {
		t.Fatalf("ChainTip on empty db = %v, want ErrEmptyChain", err)
	}
	if err := db.DisconnectTip(); err != ErrEmptyChain {
		t.Fatalf("DisconnectTip on empty db = %v, want ErrEmptyChain", err)
	}
	if _, err := db.FillBlockLocator(); err != ErrEmptyChain {
		t.Fatalf("FillBlockLocator on empty db = %v, want ErrEmptyChain", err)
	}
}

func TestMemDBFillBlockLocatorSpacing(t *testing.T) {
	db := NewMemDB(chaincfg.TestNetParams())
	headers := chainOf(40)
	connectAll(t, db, headers)

	locator, err := db.FillBlockLocator()
	if err != nil {
		t.Fatalf("FillBlockLocator: %v", err)
	}
	if len(locator) == 0 {
		t.Fatal("empty locator")
	}
	if locator[0] != headers[39].BlockHash() {
		t.Fatalf("locator[0] should be chain tip")
	}
	if locator[len(locator)-1] != headers[0].BlockHash() {
		t.Fatalf("last locator entry should be the root/genesis header")
	}
	// First 10 entries step back one height at a time from the tip.
	for i := 0; i < 10 && i < len(locator)-1; i++ {
		want := headers[39-i].BlockHash()
		if locator[i] != want {
			t.Fatalf("locator[%d] mismatch", i)
		}
	}
}

func TestMemDBCheckpointStart(t *testing.T) {
	db := NewMemDB(chaincfg.TestNetParams())
	if db.HasCheckpointStart() {
		t.Fatal("fresh db reports a checkpoint start")
	}
	cp := chaincfg.Checkpoint{Height: 100, Hash: chainhash.Hash{0x42}}
	if err := db.SetCheckpointStart(cp); err != nil {
		t.Fatalf("SetCheckpointStart: %v", err)
	}
	if !db.HasCheckpointStart() {
		t.Fatal("checkpoint start not recorded")
	}

	headers := chainOf(1)
	connectAll(t, db, headers)
	root, err := db.ChainTip()
	if err != nil {
		t.Fatalf("ChainTip: %v", err)
	}
	if root.Height != 100 {
		t.Fatalf("root height = %d, want 100 (checkpoint height)", root.Height)
	}

	if err := db.SetCheckpointStart(cp); err != errAlreadyStarted {
		t.Fatalf("SetCheckpointStart after headers connected = %v, want errAlreadyStarted", err)
	}
}

func TestLevelDBRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "headersdb-leveldb-*")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	defer os.RemoveAll(dir)

	db, err := OpenLevelDB(chaincfg.TestNetParams(), dir)
	if err != nil {
		t.Fatalf("OpenLevelDB: %v", err)
	}

	headers := chainOf(15)
	connectAll(t, db, headers)

	tip, err := db.ChainTip()
	if err != nil {
		t.Fatalf("ChainTip: %v", err)
	}
	if tip.Height != 14 || tip.Hash != headers[14].BlockHash() {
		t.Fatalf("unexpected tip %+v", tip)
	}

	locator, err := db.FillBlockLocator()
	if err != nil {
		t.Fatalf("FillBlockLocator: %v", err)
	}
	if locator[0] != headers[14].BlockHash() {
		t.Fatalf("locator[0] should be chain tip")
	}

	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening must recover the persisted tip.
	db2, err := OpenLevelDB(chaincfg.TestNetParams(), dir)
	if err != nil {
		t.Fatalf("reopen OpenLevelDB: %v", err)
	}
	defer db2.Close()
	tip2, err := db2.ChainTip()
	if err != nil {
		t.Fatalf("ChainTip after reopen: %v", err)
	}
	if tip2.Height != tip.Height || tip2.Hash != tip.Hash {
		t.Fatalf("tip did not survive reopen: got %+v, want %+v", tip2, tip)
	}
}
