// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"io"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// MaxBlockLocatorsPerMsg is the maximum number of block locator hashes
// allowed in a getheaders/getblocks request.
const MaxBlockLocatorsPerMsg = 500

// ErrTooManyLocators is returned when a locator list exceeds
// MaxBlockLocatorsPerMsg.
var ErrTooManyLocators = errors.New("wire: block locator exceeds MaxBlockLocatorsPerMsg")

func encodeLocator(w io.Writer, version uint32, locator []chainhash.Hash, stop chainhash.Hash) error {
	if err := writeElement(w, version); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(locator))); err != nil {
		return err
	}
	for _, h := range locator {
		if err := writeElement(w, h); err != nil {
			return err
		}
	}
	return writeElement(w, stop)
}

func decodeLocator(r io.Reader) (version uint32, locator []chainhash.Hash, stop chainhash.Hash, err error) {
	if err = readElement(r, &version); err != nil {
		return
	}
	count, err := ReadVarInt(r)
	if err != nil {
		return
	}
	if count > MaxBlockLocatorsPerMsg {
		err = ErrTooManyLocators
		return
	}
	locator = make([]chainhash.Hash, count)
	for i := range locator {
		if err = readElement(r, &locator[i]); err != nil {
			return
		}
	}
	err = readElement(r, &stop)
	return
}

// MsgGetHeaders requests a page of headers starting after the first locator
// hash the peer recognizes, up through stop (or MaxBlockHeadersPerMsg of
// them, whichever is fewer).
type MsgGetHeaders struct {
	ProtocolVersion    uint32
	BlockLocatorHashes []chainhash.Hash
	HashStop           chainhash.Hash
}

// Command returns "getheaders".
func (m *MsgGetHeaders) Command() string { return CmdGetHeaders }

// BtcEncode serializes the message.
func (m *MsgGetHeaders) BtcEncode(w io.Writer) error {
	return encodeLocator(w, m.ProtocolVersion, m.BlockLocatorHashes, m.HashStop)
}

// BtcDecode deserializes the message.
func (m *MsgGetHeaders) BtcDecode(r io.Reader) error {
	version, locator, stop, err := decodeLocator(r)
	if err != nil {
		return err
	}
	m.ProtocolVersion = version
	m.BlockLocatorHashes = locator
	m.HashStop = stop
	return nil
}

// MsgGetBlocks requests full blocks rather than headers, using the same
// locator scheme.
type MsgGetBlocks struct {
	ProtocolVersion    uint32
	BlockLocatorHashes []chainhash.Hash
	HashStop           chainhash.Hash
}

// Command returns "getblocks".
func (m *MsgGetBlocks) Command() string { return CmdGetBlocks }

// BtcEncode serializes the message.
func (m *MsgGetBlocks) BtcEncode(w io.Writer) error {
	return encodeLocator(w, m.ProtocolVersion, m.BlockLocatorHashes, m.HashStop)
}

// BtcDecode deserializes the message.
func (m *MsgGetBlocks) BtcDecode(r io.Reader) error {
	version, locator, stop, err := decodeLocator(r)
	if err != nil {
		return err
	}
	m.ProtocolVersion = version
	m.BlockLocatorHashes = locator
	m.HashStop = stop
	return nil
}

// MaxBlockHeadersPerMsg is the protocol-defined page size for a headers
// response.
const MaxBlockHeadersPerMsg = 2000

// MsgHeaders carries a page of block headers in response to getheaders.
// Each header on the wire is followed by a var_int(0) transaction count,
// which this core always expects to be zero and does not otherwise use.
type MsgHeaders struct {
	Headers []*BlockHeader
}

// Command returns "headers".
func (m *MsgHeaders) Command() string { return CmdHeaders }

// BtcEncode serializes the headers list.
func (m *MsgHeaders) BtcEncode(w io.Writer) error {
	if err := WriteVarInt(w, uint64(len(m.Headers))); err != nil {
		return err
	}
	for _, h := range m.Headers {
		if err := h.BtcEncode(w); err != nil {
			return err
		}
		if err := WriteVarInt(w, 0); err != nil {
			return err
		}
	}
	return nil
}

// BtcDecode deserializes the headers list.
func (m *MsgHeaders) BtcDecode(r io.Reader) error {
	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > MaxBlockHeadersPerMsg {
		return errors.New("wire: headers message exceeds MaxBlockHeadersPerMsg")
	}
	headers := make([]*BlockHeader, count)
	for i := range headers {
		h := &BlockHeader{}
		if err := h.BtcDecode(r); err != nil {
			return err
		}
		txCount, err := ReadVarInt(r)
		if err != nil {
			return err
		}
		if txCount != 0 {
			return errors.New("wire: headers message entry has nonzero tx count")
		}
		headers[i] = h
	}
	m.Headers = headers
	return nil
}
