// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// MaxTxInPerMessage / MaxTxOutPerMessage bound the number of inputs/outputs
// a single decoded transaction may declare, guarding against a hostile
// peer's var_int length lying about an enormous collection.
const (
	MaxTxInPerMessage  = (MaxMessagePayload / 41) + 1
	MaxTxOutPerMessage = (MaxMessagePayload / 9) + 1
)

// ErrTxTooManyInputs / ErrTxTooManyOutputs report a declared vin/vout count
// that exceeds the sanity bound above.
var (
	ErrTxTooManyInputs  = errors.New("wire: transaction declares too many inputs")
	ErrTxTooManyOutputs = errors.New("wire: transaction declares too many outputs")
)

// coinbaseOutpointIndex is the sentinel uint32 used as a coinbase input's
// previous output index.
const coinbaseOutpointIndex = math.MaxUint32

// OutPoint identifies a specific output of a specific previous transaction
//: the 36-byte (hash, index) pair every TxIn spends.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint constructs an OutPoint.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

func (op *OutPoint) encode(w io.Writer) error {
	if err := writeElement(w, op.Hash); err != nil {
		return err
	}
	return writeElement(w, op.Index)
}

func (op *OutPoint) decode(r io.Reader) error {
	if err := readElement(r, &op.Hash); err != nil {
		return err
	}
	return readElement(r, &op.Index)
}

// TxIn is one transaction input: the outpoint it spends, the
// unlocking script, and the sequence number.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

func (ti *TxIn) serializeSize() int {
	return 40 + VarIntSerializeSize(uint64(len(ti.SignatureScript))) + len(ti.SignatureScript)
}

func (ti *TxIn) encode(w io.Writer) error {
	if err := ti.PreviousOutPoint.encode(w); err != nil {
		return err
	}
	if err := WriteVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}
	return writeElement(w, ti.Sequence)
}

func (ti *TxIn) decode(r io.Reader, maxAllowed uint64) error {
	if err := ti.PreviousOutPoint.decode(r); err != nil {
		return err
	}
	script, err := ReadVarBytes(r, maxAllowed)
	if err != nil {
		return err
	}
	ti.SignatureScript = script
	return readElement(r, &ti.Sequence)
}

// TxOut is one transaction output: a koinu value and the
// locking script that must be satisfied to spend it.
type TxOut struct {
	Value    int64
	PkScript []byte
}

func (to *TxOut) serializeSize() int {
	return 8 + VarIntSerializeSize(uint64(len(to.PkScript))) + len(to.PkScript)
}

func (to *TxOut) encode(w io.Writer) error {
	if err := writeElement(w, to.Value); err != nil {
		return err
	}
	return WriteVarBytes(w, to.PkScript)
}

func (to *TxOut) decode(r io.Reader, maxAllowed uint64) error {
	if err := readElement(r, &to.Value); err != nil {
		return err
	}
	script, err := ReadVarBytes(r, maxAllowed)
	if err != nil {
		return err
	}
	to.PkScript = script
	return nil
}

// MsgTx is the canonical Dogecoin/legacy-Bitcoin transaction:
// byte-exact wire (de)serialization, double-SHA256 txid, and the coinbase
// predicate.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns an empty transaction with the given version field.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// Command returns "tx".
func (m *MsgTx) Command() string { return CmdTx }

// BtcEncode serializes the transaction's wire format:
// version | var_int(vin.len) | vin* | var_int(vout.len) | vout* | locktime.
func (m *MsgTx) BtcEncode(w io.Writer) error {
	if err := writeElement(w, m.Version); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(m.TxIn))); err != nil {
		return err
	}
	for _, ti := range m.TxIn {
		if err := ti.encode(w); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, uint64(len(m.TxOut))); err != nil {
		return err
	}
	for _, to := range m.TxOut {
		if err := to.encode(w); err != nil {
			return err
		}
	}
	return writeElement(w, m.LockTime)
}

// BtcDecode deserializes a transaction from r.
func (m *MsgTx) BtcDecode(r io.Reader) error {
	if err := readElement(r, &m.Version); err != nil {
		return err
	}
	inCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if inCount > uint64(MaxTxInPerMessage) {
		return ErrTxTooManyInputs
	}
	m.TxIn = make([]*TxIn, inCount)
	for i := range m.TxIn {
		ti := &TxIn{}
		if err := ti.decode(r, MaxMessagePayload); err != nil {
			return err
		}
		m.TxIn[i] = ti
	}
	outCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if outCount > uint64(MaxTxOutPerMessage) {
		return ErrTxTooManyOutputs
	}
	m.TxOut = make([]*TxOut, outCount)
	for i := range m.TxOut {
		to := &TxOut{}
		if err := to.decode(r, MaxMessagePayload); err != nil {
			return err
		}
		m.TxOut[i] = to
	}
	return readElement(r, &m.LockTime)
}

// Serialize returns the raw wire encoding of the transaction.
func (m *MsgTx) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(m.SerializeSize())
	if err := m.BtcEncode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeSize returns the number of bytes Serialize would produce.
func (m *MsgTx) SerializeSize() int {
	n := 4 + 4 // version + locktime
	n += VarIntSerializeSize(uint64(len(m.TxIn)))
	for _, ti := range m.TxIn {
		n += ti.serializeSize()
	}
	n += VarIntSerializeSize(uint64(len(m.TxOut)))
	for _, to := range m.TxOut {
		n += to.serializeSize()
	}
	return n
}

// NewMsgTxFromBytes deserializes a transaction from raw wire bytes.
func NewMsgTxFromBytes(b []byte) (*MsgTx, error) {
	tx := &MsgTx{}
	if err := tx.BtcDecode(bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return tx, nil
}

// TxHash computes tx.hash = SHA256(SHA256(serialize(tx))).
func (m *MsgTx) TxHash() chainhash.Hash {
	buf, err := m.Serialize()
	if err != nil {
		panic(err)
	}
	return chainhash.DoubleHashH(buf)
}

// Copy returns a deep copy of the transaction, used by the sighash
// algorithm, which mutates a clone rather than the original.
func (m *MsgTx) Copy() *MsgTx {
	clone := &MsgTx{
		Version:  m.Version,
		LockTime: m.LockTime,
		TxIn:     make([]*TxIn, len(m.TxIn)),
		TxOut:    make([]*TxOut, len(m.TxOut)),
	}
	for i, ti := range m.TxIn {
		clone.TxIn[i] = &TxIn{
			PreviousOutPoint: ti.PreviousOutPoint,
			SignatureScript:  append([]byte(nil), ti.SignatureScript...),
			Sequence:         ti.Sequence,
		}
	}
	for i, to := range m.TxOut {
		clone.TxOut[i] = &TxOut{
			Value:    to.Value,
			PkScript: append([]byte(nil), to.PkScript...),
		}
	}
	return clone
}

// IsCoinBase reports whether tx is a coinbase transaction: a
// single input whose previous outpoint is the all-zero hash at index
// 0xFFFFFFFF.
func (m *MsgTx) IsCoinBase() bool {
	if len(m.TxIn) != 1 {
		return false
	}
	prev := &m.TxIn[0].PreviousOutPoint
	return prev.Hash == chainhash.Hash{} && prev.Index == coinbaseOutpointIndex
}
