// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// MaxBlockTxCount bounds the declared transaction count of a decoded block,
// guarding against a hostile peer's var_int lying about an enormous
// collection.
const MaxBlockTxCount = MaxMessagePayload / 60

// MsgBlock is a full block: an 80-byte header prefix followed by its
// transactions.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// Command returns "block".
func (m *MsgBlock) Command() string { return CmdBlock }

// BtcEncode serializes the block.
func (m *MsgBlock) BtcEncode(w io.Writer) error {
	if err := m.Header.BtcEncode(w); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(m.Transactions))); err != nil {
		return err
	}
	for _, tx := range m.Transactions {
		if err := tx.BtcEncode(w); err != nil {
			return err
		}
	}
	return nil
}

// BtcDecode deserializes the block: the 80-byte header, then var_int(nTx)
// transactions.
func (m *MsgBlock) BtcDecode(r io.Reader) error {
	if err := m.Header.BtcDecode(r); err != nil {
		return err
	}
	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > MaxBlockTxCount {
		return ErrProtocolViolation
	}
	m.Transactions = make([]*MsgTx, count)
	for i := range m.Transactions {
		tx := &MsgTx{}
		if err := tx.BtcDecode(r); err != nil {
			return err
		}
		m.Transactions[i] = tx
	}
	return nil
}

// BlockHash returns the double-SHA256 hash of the block's header.
func (m *MsgBlock) BlockHash() chainhash.Hash {
	return m.Header.BlockHash()
}
