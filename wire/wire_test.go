// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// TestGenesisHeaderHash is .
func TestGenesisHeaderHash(t *testing.T) {
	const headerHex = "0100000000000000000000000000000000000000000000000000000000000000000000005b2a3f53f605d62c53e65533dac6925e3d74afa5a4b459745c36d42d0ed26a96e4ee0552f0ff0f1ea6a4e263"
	raw, err := hex.DecodeString(headerHex)
	if err != nil {
		t.Fatalf("invalid hex: %v", err)
	}
	if len(raw) != BlockHeaderLen {
		t.Fatalf("genesis header literal is %d bytes, want %d", len(raw), BlockHeaderLen)
	}
	header, err := NewBlockHeaderFromBytes(raw)
	if err != nil {
		t.Fatalf("NewBlockHeaderFromBytes: %v", err)
	}
	const want = "1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691"
	if got := header.BlockHash().String(); got != want {
		t.Fatalf("BlockHash() = %s, want %s", got, want)
	}
}

func TestMsgTxSerializeRoundTrip(t *testing.T) {
	tx := NewMsgTx(1)
	tx.TxIn = []*TxIn{
		{
			PreviousOutPoint: OutPoint{Index: 1},
			SignatureScript:  []byte{0x01, 0x02, 0x03},
			Sequence:         0xffffffff,
		},
	}
	tx.TxOut = []*TxOut{
		{Value: 500000000, PkScript: []byte{0x76, 0xa9, 0x14}},
	}
	tx.LockTime = 0

	raw, err := tx.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := NewMsgTxFromBytes(raw)
	if err != nil {
		t.Fatalf("NewMsgTxFromBytes: %v", err)
	}
	roundTrip, err := got.Serialize()
	if err != nil {
		t.Fatalf("Serialize (round trip): %v", err)
	}
	if !bytes.Equal(raw, roundTrip) {
		t.Fatalf("round trip mismatch: %x != %x", raw, roundTrip)
	}
}

func TestIsCoinBase(t *testing.T) {
	tx := NewMsgTx(1)
	tx.TxIn = []*TxIn{
		{PreviousOutPoint: OutPoint{Index: 0xFFFFFFFF}, Sequence: 0xffffffff},
	}
	tx.TxOut = []*TxOut{{Value: 0, PkScript: nil}}
	if !tx.IsCoinBase() {
		t.Fatal("expected IsCoinBase() to be true")
	}

	tx.TxIn[0].PreviousOutPoint.Index = 0
	if tx.IsCoinBase() {
		t.Fatal("expected IsCoinBase() to be false once index != 0xFFFFFFFF")
	}
}

func TestWriteReadMessageRoundTrip(t *testing.T) {
	const magic = uint32(0xc0c0c0c0)
	ping := &MsgPing{Nonce: 0xdeadbeef}
	var buf bytes.Buffer
	if err := WriteMessage(&buf, ping, magic); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}
	msg, command, _, err := ReadMessage(&buf, magic, MakeEmptyMessage)
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if command != CmdPing {
		t.Fatalf("command = %s, want %s", command, CmdPing)
	}
	got, ok := msg.(*MsgPing)
	if !ok {
		t.Fatalf("message type = %T, want *MsgPing", msg)
	}
	if got.Nonce != ping.Nonce {
		t.Fatalf("Nonce = %d, want %d", got.Nonce, ping.Nonce)
	}
}
