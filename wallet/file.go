// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// fileMagic and recordMagic are the four-byte sentinels opening the wallet
// file header and every record within it, guarding against loading a
// truncated or unrelated file.
var (
	fileMagic   = [4]byte{0xA8, 0xF0, 0x11, 0xC5}
	recordMagic = [4]byte{0xC8, 0xF2, 0x69, 0x1E}
)

// currentFileVersion is written to new wallet files and is the highest
// version this implementation will load.
const currentFileVersion = 1

const (
	recMasterPubKey byte = 0x00
	recAddr         byte = 0x01
	recTx           byte = 0x02
)

// writeHeader writes the fixed wallet-file header: magic, version, genesis
// hash.
func writeHeader(w io.Writer, genesis chainhash.Hash) error {
	if _, err := w.Write(fileMagic[:]); err != nil {
		return err
	}
	var versionBuf [4]byte
	binary.LittleEndian.PutUint32(versionBuf[:], currentFileVersion)
	if _, err := w.Write(versionBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(genesis[:])
	return err
}

// readHeader reads and validates the fixed wallet-file header, returning the
// version found.
func readHeader(r io.Reader, wantGenesis chainhash.Hash) (uint32, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, err
	}
	if magic != fileMagic {
		return 0, ErrBadMagic
	}
	var versionBuf [4]byte
	if _, err := io.ReadFull(r, versionBuf[:]); err != nil {
		return 0, err
	}
	version := binary.LittleEndian.Uint32(versionBuf[:])
	if version > currentFileVersion {
		return 0, ErrVersionTooNew
	}
	var genesis chainhash.Hash
	if _, err := io.ReadFull(r, genesis[:]); err != nil {
		return 0, err
	}
	if genesis != wantGenesis {
		return 0, ErrBadGenesis
	}
	return version, nil
}

// writeRecord frames body behind its type byte and the record magic:
// magic || var_int(len(type)+len(body)) || type || body.
func writeRecord(w io.Writer, recType byte, body []byte) error {
	if _, err := w.Write(recordMagic[:]); err != nil {
		return err
	}
	if err := wire.WriteVarInt(w, uint64(len(body)+1)); err != nil {
		return err
	}
	if _, err := w.Write([]byte{recType}); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

// readRecord reads one framed record, returning io.EOF once the stream is
// exhausted cleanly at a record boundary.
func readRecord(r io.Reader) (recType byte, body []byte, err error) {
	var magic [4]byte
	if _, err = io.ReadFull(r, magic[:]); err != nil {
		return 0, nil, err
	}
	if magic != recordMagic {
		return 0, nil, ErrBadRecordMagic
	}
	length, err := wire.ReadVarInt(r)
	if err != nil {
		return 0, nil, err
	}
	if length == 0 {
		return 0, nil, errors.New("wallet: zero-length record")
	}
	buf := make([]byte, length)
	if _, err = io.ReadFull(r, buf); err != nil {
		return 0, nil, err
	}
	return buf[0], buf[1:], nil
}

func encodeMasterPubKeyRecord(xpub string) ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteVarString(&buf, xpub); err != nil {
		return nil, err
	}
	if err := wire.WriteVarString(&buf, xpub); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeMasterPubKeyRecord(body []byte) (string, error) {
	r := bytes.NewReader(body)
	a, err := wire.ReadVarString(r, uint64(len(body)))
	if err != nil {
		return "", err
	}
	b, err := wire.ReadVarString(r, uint64(len(body)))
	if err != nil {
		return "", err
	}
	if a != b {
		return "", ErrCorruptMasterKey
	}
	return a, nil
}

func encodeAddrRecord(addr WalletAddr) []byte {
	buf := make([]byte, 0, 25)
	buf = append(buf, addr.Hash160[:]...)
	buf = append(buf, byte(addr.Type))
	var idx [4]byte
	binary.LittleEndian.PutUint32(idx[:], addr.ChildIndex)
	return append(buf, idx[:]...)
}

func decodeAddrRecord(body []byte) (WalletAddr, error) {
	if len(body) != 25 {
		return WalletAddr{}, errors.New("wallet: malformed ADDR record")
	}
	var addr WalletAddr
	copy(addr.Hash160[:], body[:20])
	addr.Type = addressTypeFromByte(body[20])
	addr.ChildIndex = binary.LittleEndian.Uint32(body[21:25])
	return addr, nil
}

func encodeTxRecord(wtx *WTx) ([]byte, error) {
	txBytes, err := wtx.Tx.Serialize()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, 4+chainhash.HashSize+len(txBytes))
	var height [4]byte
	binary.LittleEndian.PutUint32(height[:], wtx.Height)
	buf = append(buf, height[:]...)
	hash := wtx.Tx.TxHash()
	buf = append(buf, hash[:]...)
	buf = append(buf, txBytes...)
	return buf, nil
}

func decodeTxRecord(body []byte) (*WTx, error) {
	if len(body) < 4+chainhash.HashSize {
		return nil, errors.New("wallet: malformed TX record")
	}
	height := binary.LittleEndian.Uint32(body[:4])
	var txHash chainhash.Hash
	copy(txHash[:], body[4:4+chainhash.HashSize])
	tx, err := wire.NewMsgTxFromBytes(body[4+chainhash.HashSize:])
	if err != nil {
		return nil, err
	}
	if tx.TxHash() != txHash {
		return nil, errors.New("wallet: TX record hash does not match serialized transaction")
	}
	return &WTx{Tx: tx, Height: height}, nil
}
