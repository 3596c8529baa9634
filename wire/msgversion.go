// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgVersion implements the version handshake message:
// the first message sent by either side of a new connection, advertising
// protocol version, services, and the sender's current chain height.
type MsgVersion struct {
	ProtocolVersion int32
	Services        ServiceFlag
	Timestamp       int64
	AddrRecv        NetAddress
	AddrFrom        NetAddress
	Nonce           uint64
	UserAgent       string
	StartHeight     int32
	Relay           bool
}

// Command returns "version".
func (m *MsgVersion) Command() string { return CmdVersion }

// BtcEncode serializes m using the legacy wire version payload layout.
func (m *MsgVersion) BtcEncode(w io.Writer) error {
	if err := writeElement(w, m.ProtocolVersion); err != nil {
		return err
	}
	if err := writeElement(w, uint64(m.Services)); err != nil {
		return err
	}
	if err := writeElement(w, m.Timestamp); err != nil {
		return err
	}
	if err := m.AddrRecv.encode(w); err != nil {
		return err
	}
	if err := m.AddrFrom.encode(w); err != nil {
		return err
	}
	if err := writeElement(w, m.Nonce); err != nil {
		return err
	}
	if err := WriteVarString(w, m.UserAgent); err != nil {
		return err
	}
	if err := writeElement(w, m.StartHeight); err != nil {
		return err
	}
	return writeElement(w, m.Relay)
}

// BtcDecode deserializes m from r.
func (m *MsgVersion) BtcDecode(r io.Reader) error {
	if err := readElement(r, &m.ProtocolVersion); err != nil {
		return err
	}
	var services uint64
	if err := readElement(r, &services); err != nil {
		return err
	}
	m.Services = ServiceFlag(services)
	if err := readElement(r, &m.Timestamp); err != nil {
		return err
	}
	if err := m.AddrRecv.decode(r); err != nil {
		return err
	}
	if err := m.AddrFrom.decode(r); err != nil {
		return err
	}
	if err := readElement(r, &m.Nonce); err != nil {
		return err
	}
	userAgent, err := ReadVarString(r, 256)
	if err != nil {
		return err
	}
	m.UserAgent = userAgent
	if err := readElement(r, &m.StartHeight); err != nil {
		return err
	}
	// Relay is absent on some legacy peers; tolerate EOF here.
	if err := readElement(r, &m.Relay); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			m.Relay = true
			return nil
		}
		return err
	}
	return nil
}
