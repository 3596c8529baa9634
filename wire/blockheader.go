// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// BlockHeaderLen is the fixed wire size, in bytes, of a BlockHeader
//: 80 bytes.
const BlockHeaderLen = 80

// BlockHeader is the 80-byte Dogecoin block header. It
// contains no proof-of-work validation logic: , difficulty
// adjustment is out of scope; this type only carries the fields a header
// needs to be stored and chained.
type BlockHeader struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

// BtcEncode serializes the header to its 80-byte wire form.
func (h *BlockHeader) BtcEncode(w io.Writer) error {
	if err := writeElement(w, h.Version); err != nil {
		return err
	}
	if err := writeElement(w, h.PrevBlock); err != nil {
		return err
	}
	if err := writeElement(w, h.MerkleRoot); err != nil {
		return err
	}
	if err := writeElement(w, h.Timestamp); err != nil {
		return err
	}
	if err := writeElement(w, h.Bits); err != nil {
		return err
	}
	return writeElement(w, h.Nonce)
}

// BtcDecode deserializes an 80-byte wire header into h.
func (h *BlockHeader) BtcDecode(r io.Reader) error {
	if err := readElement(r, &h.Version); err != nil {
		return err
	}
	if err := readElement(r, &h.PrevBlock); err != nil {
		return err
	}
	if err := readElement(r, &h.MerkleRoot); err != nil {
		return err
	}
	if err := readElement(r, &h.Timestamp); err != nil {
		return err
	}
	if err := readElement(r, &h.Bits); err != nil {
		return err
	}
	return readElement(r, &h.Nonce)
}

// Serialize returns the 80-byte wire encoding of the header.
func (h *BlockHeader) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := h.BtcEncode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BlockHash computes block_hash = SHA256(SHA256(serialize(header))).
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf, err := h.Serialize()
	if err != nil {
		panic(err)
	}
	return chainhash.DoubleHashH(buf)
}

// NewBlockHeaderFromBytes decodes exactly BlockHeaderLen bytes into a new
// BlockHeader.
func NewBlockHeaderFromBytes(b []byte) (*BlockHeader, error) {
	h := &BlockHeader{}
	if err := h.BtcDecode(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return h, nil
}
