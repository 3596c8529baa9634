// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// RejectCode represents a reason a peer rejected a message.
type RejectCode uint8

const (
	RejectMalformed       RejectCode = 0x01
	RejectInvalid         RejectCode = 0x10
	RejectObsolete        RejectCode = 0x11
	RejectDuplicate       RejectCode = 0x12
	RejectNonStandard     RejectCode = 0x40
	RejectInsufficientFee RejectCode = 0x42
	RejectCheckpoint      RejectCode = 0x43
)

// MsgReject is sent by a peer to explain why a previous message was
// rejected. This core only decodes it for logging; it never
// originates one, since it does not serve peers.
type MsgReject struct {
	Cmd    string
	Code   RejectCode
	Reason string
	Hash   [32]byte
}

// Command returns "reject".
func (m *MsgReject) Command() string { return CmdReject }

// BtcEncode serializes the message.
func (m *MsgReject) BtcEncode(w io.Writer) error {
	if err := WriteVarString(w, m.Cmd); err != nil {
		return err
	}
	if err := writeElement(w, uint8(m.Code)); err != nil {
		return err
	}
	if err := WriteVarString(w, m.Reason); err != nil {
		return err
	}
	switch m.Cmd {
	case CmdBlock, CmdTx:
		_, err := w.Write(m.Hash[:])
		return err
	default:
		return nil
	}
}

// BtcDecode deserializes the message.
func (m *MsgReject) BtcDecode(r io.Reader) error {
	cmd, err := ReadVarString(r, CommandSize*4)
	if err != nil {
		return err
	}
	m.Cmd = cmd
	var code uint8
	if err := readElement(r, &code); err != nil {
		return err
	}
	m.Code = RejectCode(code)
	reason, err := ReadVarString(r, 256)
	if err != nil {
		return err
	}
	m.Reason = reason
	switch m.Cmd {
	case CmdBlock, CmdTx:
		_, err := io.ReadFull(r, m.Hash[:])
		return err
	default:
		return nil
	}
}
