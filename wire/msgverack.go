// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "io"

// MsgVerAck acknowledges a version message and has no payload.
type MsgVerAck struct{}

// Command returns "verack".
func (m *MsgVerAck) Command() string { return CmdVerAck }

// BtcEncode writes nothing; MsgVerAck has an empty payload.
func (m *MsgVerAck) BtcEncode(w io.Writer) error { return nil }

// BtcDecode reads nothing.
func (m *MsgVerAck) BtcDecode(r io.Reader) error { return nil }
