// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"bytes"
	"math"
	"testing"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/hdkeychain"
	"github.com/dogecoinfoundation/libdogecoin-sub000/keyaddr"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

func testMasterXpub(t *testing.T, net *chaincfg.Params) string {
	t.Helper()
	seed := bytes.Repeat([]byte{0x07}, 32)
	master, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		t.Fatalf("NewMaster: %v", err)
	}
	account, err := keyaddr.Derive(master, "m/44'/3'/0'")
	if err != nil {
		t.Fatalf("Derive account key: %v", err)
	}
	pub, err := account.Neuter(net)
	if err != nil {
		t.Fatalf("Neuter: %v", err)
	}
	return pub.String()
}

func TestNextAddrRequiresMasterKey(t *testing.T) {
	w := New(chaincfg.TestNetParams(), chainhash.Hash{})
	if _, err := w.NextAddr(); err != ErrMasterKeyNotSet {
		t.Fatalf("NextAddr before SetMasterKey = %v, want ErrMasterKeyNotSet", err)
	}
}

func TestSetMasterKeyOnce(t *testing.T) {
	net := chaincfg.TestNetParams()
	w := New(net, chainhash.Hash{})
	xpub := testMasterXpub(t, net)
	if err := w.SetMasterKey(xpub); err != nil {
		t.Fatalf("SetMasterKey: %v", err)
	}
	if err := w.SetMasterKey(xpub); err != ErrMasterKeyAlreadySet {
		t.Fatalf("second SetMasterKey = %v, want ErrMasterKeyAlreadySet", err)
	}
}

func TestNextAddrSequenceIsDistinctAndOrdered(t *testing.T) {
	net := chaincfg.TestNetParams()
	w := New(net, chainhash.Hash{})
	xpub := testMasterXpub(t, net)
	if err := w.SetMasterKey(xpub); err != nil {
		t.Fatalf("SetMasterKey: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 4; i++ {
		addr, err := w.NextAddr()
		if err != nil {
			t.Fatalf("NextAddr(%d): %v", i, err)
		}
		if seen[addr] {
			t.Fatalf("NextAddr returned duplicate address %q", addr)
		}
		seen[addr] = true
		if _, _, err := keyaddr.DecodeAddress(addr, net); err != nil {
			t.Fatalf("NextAddr returned invalid address %q: %v", addr, err)
		}
	}
	if w.nextChildIndex != 4 {
		t.Fatalf("nextChildIndex = %d, want 4", w.nextChildIndex)
	}
	if len(w.addrOrder) != 4 {
		t.Fatalf("addrOrder has %d entries, want 4", len(w.addrOrder))
	}
	for i, addr := range w.addrOrder {
		if addr.ChildIndex != uint32(i) {
			t.Fatalf("addrOrder[%d].ChildIndex = %d, want %d (insertion order preserved)", i, addr.ChildIndex, i)
		}
	}
}

func TestCoinbaseMaturity(t *testing.T) {
	net := chaincfg.TestNetParams()
	w := New(net, chainhash.Hash{})
	xpub := testMasterXpub(t, net)
	if err := w.SetMasterKey(xpub); err != nil {
		t.Fatalf("SetMasterKey: %v", err)
	}
	addr, err := w.NextAddr()
	if err != nil {
		t.Fatalf("NextAddr: %v", err)
	}
	script, err := keyaddr.PayToAddrScript(addr, net)
	if err != nil {
		t.Fatalf("PayToAddrScript: %v", err)
	}

	coinbase := wire.NewMsgTx(1)
	coinbase.TxIn = []*wire.TxIn{{
		PreviousOutPoint: wire.OutPoint{Index: math.MaxUint32},
		SignatureScript:  []byte{0x00},
	}}
	coinbase.TxOut = []*wire.TxOut{{Value: 5000000000, PkScript: script}}
	if !coinbase.IsCoinBase() {
		t.Fatal("constructed transaction is not recognized as coinbase")
	}

	if err := w.AddWTX(coinbase, 0, chainhash.Hash{}); err != nil {
		t.Fatalf("AddWTX: %v", err)
	}
	w.SetBestBlockHeight(99)
	if got := w.GetBalance(); got != 0 {
		t.Fatalf("GetBalance with immature coinbase = %d, want 0", got)
	}

	w.SetBestBlockHeight(100)
	if got := w.GetBalance(); got != 5000000000 {
		t.Fatalf("GetBalance with matured coinbase = %d, want 5000000000", got)
	}
}

func TestAddWTxTombstonesPriorEntry(t *testing.T) {
	net := chaincfg.TestNetParams()
	w := New(net, chainhash.Hash{})
	xpub := testMasterXpub(t, net)
	if err := w.SetMasterKey(xpub); err != nil {
		t.Fatalf("SetMasterKey: %v", err)
	}
	addr, err := w.NextAddr()
	if err != nil {
		t.Fatalf("NextAddr: %v", err)
	}
	script, err := keyaddr.PayToAddrScript(addr, net)
	if err != nil {
		t.Fatalf("PayToAddrScript: %v", err)
	}

	tx := wire.NewMsgTx(1)
	tx.TxIn = []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Index: 0}}}
	tx.TxOut = []*wire.TxOut{{Value: 100, PkScript: script}}

	if err := w.AddWTX(tx, 10, chainhash.Hash{}); err != nil {
		t.Fatalf("AddWTX: %v", err)
	}
	w.SetBestBlockHeight(10)
	if got := w.GetBalance(); got != 100 {
		t.Fatalf("GetBalance after first AddWTX = %d, want 100", got)
	}

	// Re-adding the same transaction (e.g. a reorg re-confirming it at a
	// different height) must tombstone the old entry rather than double
	// count it.
	if err := w.AddWTX(tx, 11, chainhash.Hash{0x01}); err != nil {
		t.Fatalf("second AddWTX: %v", err)
	}
	if got := w.GetBalance(); got != 100 {
		t.Fatalf("GetBalance after re-add = %d, want 100 (no double count)", got)
	}
	if len(w.wtxes) != 1 {
		t.Fatalf("wtxes has %d entries, want 1 (same hash replaces)", len(w.wtxes))
	}
}

func TestFileRoundTrip(t *testing.T) {
	net := chaincfg.TestNetParams()
	genesis := chainhash.Hash{0x42}
	xpub := testMasterXpub(t, net)

	var buf bytes.Buffer
	w, err := Create(&buf, net, genesis)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.SetMasterKey(xpub); err != nil {
		t.Fatalf("SetMasterKey: %v", err)
	}
	addrs := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		addr, err := w.NextAddr()
		if err != nil {
			t.Fatalf("NextAddr: %v", err)
		}
		addrs = append(addrs, addr)
	}

	script, err := keyaddr.PayToAddrScript(addrs[0], net)
	if err != nil {
		t.Fatalf("PayToAddrScript: %v", err)
	}
	tx := wire.NewMsgTx(1)
	tx.TxIn = []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Index: 0}}}
	tx.TxOut = []*wire.TxOut{{Value: 42, PkScript: script}}
	if err := w.AddWTX(tx, 5, chainhash.Hash{}); err != nil {
		t.Fatalf("AddWTX: %v", err)
	}

	data := append([]byte(nil), buf.Bytes()...)
	reloadBuf := bytes.NewBuffer(data)
	reloaded, err := Load(bytes.NewReader(data), reloadBuf, net, genesis)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if reloaded.nextChildIndex != 3 {
		t.Fatalf("reloaded nextChildIndex = %d, want 3", reloaded.nextChildIndex)
	}
	reloaded.SetBestBlockHeight(5)
	if got := reloaded.GetBalance(); got != 42 {
		t.Fatalf("reloaded GetBalance = %d, want 42", got)
	}
	for _, addr := range addrs {
		script, err := keyaddr.PayToAddrScript(addr, net)
		if err != nil {
			t.Fatalf("PayToAddrScript: %v", err)
		}
		if !reloaded.IsMine(script) {
			t.Fatalf("reloaded wallet does not recognize address %q as its own", addr)
		}
	}
}

func TestLoadRejectsWrongGenesis(t *testing.T) {
	net := chaincfg.TestNetParams()
	var buf bytes.Buffer
	if _, err := Create(&buf, net, chainhash.Hash{0x01}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	data := buf.Bytes()
	if _, err := Load(bytes.NewReader(data), &bytes.Buffer{}, net, chainhash.Hash{0x02}); err != ErrBadGenesis {
		t.Fatalf("Load with mismatched genesis = %v, want ErrBadGenesis", err)
	}
}

func TestPruneRemovesOnlyOldTombstones(t *testing.T) {
	net := chaincfg.TestNetParams()
	w := New(net, chainhash.Hash{})
	xpub := testMasterXpub(t, net)
	if err := w.SetMasterKey(xpub); err != nil {
		t.Fatalf("SetMasterKey: %v", err)
	}
	addr, err := w.NextAddr()
	if err != nil {
		t.Fatalf("NextAddr: %v", err)
	}
	script, err := keyaddr.PayToAddrScript(addr, net)
	if err != nil {
		t.Fatalf("PayToAddrScript: %v", err)
	}
	tx := wire.NewMsgTx(1)
	tx.TxIn = []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Index: 0}}}
	tx.TxOut = []*wire.TxOut{{Value: 1, PkScript: script}}

	if err := w.AddWTX(tx, 10, chainhash.Hash{}); err != nil {
		t.Fatalf("AddWTX: %v", err)
	}
	// Re-adding the same tx hash tombstones the height-10 entry and inserts
	// a new live entry at height 20.
	if err := w.AddWTX(tx, 20, chainhash.Hash{0x01}); err != nil {
		t.Fatalf("AddWTX: %v", err)
	}
	if removed := w.Prune(5); removed != 0 {
		t.Fatalf("Prune(5) removed %d, want 0 (tombstone is at height 10, not below 5)", removed)
	}
	if removed := w.Prune(15); removed != 1 {
		t.Fatalf("Prune(15) removed %d, want 1 (the height-10 tombstone)", removed)
	}
	if len(w.wtxes) != 1 {
		t.Fatalf("wtxes has %d entries after prune, want 1 (the live height-20 entry)", len(w.wtxes))
	}
}
