// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"io"
)

// MaxInvPerMsg is the maximum number of inventory vectors allowed in a
// single inv/getdata message, matching the legacy Bitcoin/Dogecoin limit.
const MaxInvPerMsg = 50000

// ErrTooManyInvVects is returned when decoding an inv/getdata message whose
// declared count exceeds MaxInvPerMsg.
var ErrTooManyInvVects = errors.New("wire: inventory count exceeds MaxInvPerMsg")

func encodeInvList(w io.Writer, list []InvVect) error {
	if err := WriteVarInt(w, uint64(len(list))); err != nil {
		return err
	}
	for _, iv := range list {
		if err := writeElement(w, uint32(iv.Type)); err != nil {
			return err
		}
		if err := writeElement(w, iv.Hash); err != nil {
			return err
		}
	}
	return nil
}

func decodeInvList(r io.Reader) ([]InvVect, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > MaxInvPerMsg {
		return nil, ErrTooManyInvVects
	}
	list := make([]InvVect, count)
	for i := range list {
		var typ uint32
		if err := readElement(r, &typ); err != nil {
			return nil, err
		}
		list[i].Type = InvType(typ)
		if err := readElement(r, &list[i].Hash); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// MsgInv announces the items a peer has available.
type MsgInv struct {
	InvList []InvVect
}

// Command returns "inv".
func (m *MsgInv) Command() string { return CmdInv }

// BtcEncode serializes the inventory list.
func (m *MsgInv) BtcEncode(w io.Writer) error { return encodeInvList(w, m.InvList) }

// BtcDecode deserializes the inventory list.
func (m *MsgInv) BtcDecode(r io.Reader) error {
	list, err := decodeInvList(r)
	if err != nil {
		return err
	}
	m.InvList = list
	return nil
}

// MsgGetData requests the full content of the inventory items listed.
type MsgGetData struct {
	InvList []InvVect
}

// Command returns "getdata".
func (m *MsgGetData) Command() string { return CmdGetData }

// BtcEncode serializes the inventory list.
func (m *MsgGetData) BtcEncode(w io.Writer) error { return encodeInvList(w, m.InvList) }

// BtcDecode deserializes the inventory list.
func (m *MsgGetData) BtcDecode(r io.Reader) error {
	list, err := decodeInvList(r)
	if err != nil {
		return err
	}
	m.InvList = list
	return nil
}
