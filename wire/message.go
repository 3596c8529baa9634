// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dogecoinfoundation/libdogecoin-sub000/hashutil"
)

// MaxMessagePayload is the maximum allowed length, in bytes, of a message
// payload: 32 MiB.
const MaxMessagePayload = 32 * 1024 * 1024

// CommandSize is the fixed width, in bytes, of the NUL-padded ASCII command
// field in a message header.
const CommandSize = 12

// messageHeaderSize is magic(4) + command(12) + length(4) + checksum(4).
const messageHeaderSize = 4 + CommandSize + 4 + 4

// ErrProtocolViolation reports a misframed message: bad magic, an oversized
// payload, or a checksum mismatch.
var ErrProtocolViolation = errors.New("wire: protocol violation")

// Message is implemented by every concrete message type this core knows how
// to (de)serialize.
type Message interface {
	Command() string
	BtcEncode(w io.Writer) error
	BtcDecode(r io.Reader) error
}

// messageHeader is the 24-byte framing envelope in front of every message:
// magic | command | payload_len | checksum | payload.
type messageHeader struct {
	magic    uint32
	command  string
	length   uint32
	checksum [4]byte
}

// WriteMessage serializes msg with the messageHeader envelope for the
// given network magic.
func WriteMessage(w io.Writer, msg Message, magic uint32) error {
	var payload bytes.Buffer
	if err := msg.BtcEncode(&payload); err != nil {
		return err
	}
	if payload.Len() > MaxMessagePayload {
		return fmt.Errorf("%w: payload of %d bytes exceeds MaxMessagePayload", ErrProtocolViolation, payload.Len())
	}

	var cmdBytes [CommandSize]byte
	cmd := msg.Command()
	if len(cmd) > CommandSize {
		return fmt.Errorf("%w: command %q exceeds %d bytes", ErrProtocolViolation, cmd, CommandSize)
	}
	copy(cmdBytes[:], cmd)

	var header [messageHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:4], magic)
	copy(header[4:16], cmdBytes[:])
	binary.LittleEndian.PutUint32(header[16:20], uint32(payload.Len()))
	checksum := hashutil.DoubleSha256(payload.Bytes())
	copy(header[20:24], checksum[:4])

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(payload.Bytes())
	return err
}

// ReadMessageHeader reads and validates a message envelope (not including
// the payload), checking the network magic.
func ReadMessageHeader(r io.Reader, magic uint32) (command string, length uint32, checksum [4]byte, err error) {
	var buf [messageHeaderSize]byte
	if _, err = io.ReadFull(r, buf[:]); err != nil {
		return "", 0, checksum, err
	}
	gotMagic := binary.LittleEndian.Uint32(buf[0:4])
	if gotMagic != magic {
		return "", 0, checksum, fmt.Errorf("%w: magic %08x does not match expected %08x", ErrProtocolViolation, gotMagic, magic)
	}
	cmdEnd := bytes.IndexByte(buf[4:16], 0)
	if cmdEnd < 0 {
		cmdEnd = CommandSize
	}
	command = string(buf[4 : 4+cmdEnd])
	length = binary.LittleEndian.Uint32(buf[16:20])
	if length > MaxMessagePayload {
		return "", 0, checksum, fmt.Errorf("%w: declared payload length %d exceeds MaxMessagePayload", ErrProtocolViolation, length)
	}
	copy(checksum[:], buf[20:24])
	return command, length, checksum, nil
}

// ReadMessagePayload reads exactly length bytes from r and validates them
// against the header's checksum.
func ReadMessagePayload(r io.Reader, length uint32, checksum [4]byte) ([]byte, error) {
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	got := hashutil.DoubleSha256(payload)
	if !bytes.Equal(got[:4], checksum[:]) {
		return nil, fmt.Errorf("%w: payload checksum mismatch", ErrProtocolViolation)
	}
	return payload, nil
}

// ReadMessage reads one full framed message from r, dispatching to newFn to
// construct an empty Message for the decoded command and then decoding the
// payload into it. newFn should return (nil, false) for an unrecognized
// command, in which case ReadMessage returns the raw command/payload for
// the caller's own handling.
func ReadMessage(r io.Reader, magic uint32, newFn func(command string) (Message, bool)) (Message, string, []byte, error) {
	command, length, checksum, err := ReadMessageHeader(r, magic)
	if err != nil {
		return nil, "", nil, err
	}
	payload, err := ReadMessagePayload(r, length, checksum)
	if err != nil {
		return nil, command, nil, err
	}
	msg, ok := newFn(command)
	if !ok {
		return nil, command, payload, nil
	}
	if err := msg.BtcDecode(bytes.NewReader(payload)); err != nil {
		return nil, command, payload, err
	}
	return msg, command, payload, nil
}

// MakeEmptyMessage constructs a zero-value Message for a known command
// string, or (nil, false) if command is not recognized by this core.
func MakeEmptyMessage(command string) (Message, bool) {
	switch command {
	case CmdVersion:
		return &MsgVersion{}, true
	case CmdVerAck:
		return &MsgVerAck{}, true
	case CmdPing:
		return &MsgPing{}, true
	case CmdPong:
		return &MsgPong{}, true
	case CmdInv:
		return &MsgInv{}, true
	case CmdGetData:
		return &MsgGetData{}, true
	case CmdGetHeaders:
		return &MsgGetHeaders{}, true
	case CmdHeaders:
		return &MsgHeaders{}, true
	case CmdGetBlocks:
		return &MsgGetBlocks{}, true
	case CmdBlock:
		return &MsgBlock{}, true
	case CmdTx:
		return &MsgTx{}, true
	case CmdReject:
		return &MsgReject{}, true
	default:
		return nil, false
	}
}
