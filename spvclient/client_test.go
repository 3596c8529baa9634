// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package spvclient

import (
	"testing"
	"time"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/headersdb"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

func TestBuildLocatorEmptyChainNoCheckpoints(t *testing.T) {
	params := &chaincfg.Params{Name: "test"}
	c := &Client{cfg: Config{
		ChainParams: params,
		HeadersDB:   headersdb.NewMemDB(params),
	}}
	locator, err := c.buildLocatorLocked()
	if err != nil {
		t.Fatalf("buildLocatorLocked: %v", err)
	}
	if len(locator) != 0 {
		t.Fatalf("locator = %v, want empty (full genesis sync)", locator)
	}
}

func TestBuildLocatorUsesCheckpoint(t *testing.T) {
	oldest := time.Unix(1700000000, 0)
	qualifying := chaincfg.Checkpoint{
		Height:    1000,
		Hash:      chainhash.Hash{0xaa},
		Timestamp: oldest.Add(-2 * syncWindow),
	}
	tooRecent := chaincfg.Checkpoint{
		Height:    2000,
		Hash:      chainhash.Hash{0xbb},
		Timestamp: oldest.Add(-1 * time.Second),
	}
	params := &chaincfg.Params{
		Name:        "test",
		Checkpoints: []chaincfg.Checkpoint{qualifying, tooRecent},
	}
	db := headersdb.NewMemDB(params)
	c := &Client{cfg: Config{
		ChainParams:          params,
		HeadersDB:            db,
		OldestItemOfInterest: oldest,
		UseCheckpoints:       true,
	}}

	locator, err := c.buildLocatorLocked()
	if err != nil {
		t.Fatalf("buildLocatorLocked: %v", err)
	}
	if len(locator) != 1 || locator[0] != qualifying.Hash {
		t.Fatalf("locator = %v, want [%v]", locator, qualifying.Hash)
	}
	if !db.HasCheckpointStart() {
		t.Fatal("checkpoint start was not recorded")
	}
}

func TestBuildLocatorPrefersChainTip(t *testing.T) {
	params := &chaincfg.Params{Name: "test"}
	db := headersdb.NewMemDB(params)
	header := &wire.BlockHeader{Version: 1, Timestamp: 1700000000}
	if _, err := db.ConnectHeader(header); err != nil {
		t.Fatalf("ConnectHeader: %v", err)
	}

	c := &Client{cfg: Config{
		ChainParams:    params,
		HeadersDB:      db,
		UseCheckpoints: true,
		OldestItemOfInterest: time.Now(),
	}}
	locator, err := c.buildLocatorLocked()
	if err != nil {
		t.Fatalf("buildLocatorLocked: %v", err)
	}
	if len(locator) != 1 || locator[0] != header.BlockHash() {
		t.Fatalf("locator = %v, want the connected header's hash", locator)
	}
}

func TestCheckSyncCompletedNotFiredWithoutPeers(t *testing.T) {
	params := &chaincfg.Params{Name: "test"}
	db := headersdb.NewMemDB(params)
	header := &wire.BlockHeader{Version: 1}
	if _, err := db.ConnectHeader(header); err != nil {
		t.Fatalf("ConnectHeader: %v", err)
	}

	called := 0
	c := &Client{cfg: Config{
		ChainParams: params,
		HeadersDB:   db,
		SyncCompleted: func() {
			called++
		},
	}}

	c.mu.Lock()
	c.checkSyncCompletedLocked()
	c.mu.Unlock()
	if called != 0 {
		t.Fatalf("SyncCompleted fired with no peers")
	}
	if c.SyncCompletedDone() {
		t.Fatal("syncCompleted set with no agreeing peers")
	}
}
