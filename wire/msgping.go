// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgPing carries a nonce a peer is expected to echo back in a pong.
type MsgPing struct {
	Nonce uint64
}

// Command returns "ping".
func (m *MsgPing) Command() string { return CmdPing }

// BtcEncode serializes the nonce.
func (m *MsgPing) BtcEncode(w io.Writer) error { return writeElement(w, m.Nonce) }

// BtcDecode deserializes the nonce.
func (m *MsgPing) BtcDecode(r io.Reader) error { return readElement(r, &m.Nonce) }

// MsgPong echoes the nonce of a received ping.
type MsgPong struct {
	Nonce uint64
}

// Command returns "pong".
func (m *MsgPong) Command() string { return CmdPong }

// BtcEncode serializes the nonce.
func (m *MsgPong) BtcEncode(w io.Writer) error { return writeElement(w, m.Nonce) }

// BtcDecode deserializes the nonce.
func (m *MsgPong) BtcDecode(r io.Reader) error { return readElement(r, &m.Nonce) }
