// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire implements the Dogecoin variant of the Bitcoin P2P wire
// protocol: message envelope framing, the
// handshake/inventory/header/block messages the SPV client subsystem needs,
// and the canonical legacy transaction wire format shared with the
// transaction subsystem.
package wire

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
)

// ErrVarIntOverflow indicates a var_int-prefixed length exceeds a sane
// upper bound for the collection being read, guarding against a hostile
// peer requesting an enormous allocation.
var ErrVarIntOverflow = errors.New("wire: var_int length exceeds maximum allowed for this field")

// MaxVarIntPayload is a 32 MiB upper bound for a var_int-declared length.
// No reader in this package checks against it; individual message readers
// apply their own tighter bound.
const MaxVarIntPayload = 1 << 25

func readElement(r io.Reader, v interface{}) error {
	switch p := v.(type) {
	case *int32:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*p = int32(binary.LittleEndian.Uint32(b[:]))
		return nil
	case *uint32:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*p = binary.LittleEndian.Uint32(b[:])
		return nil
	case *int64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*p = int64(binary.LittleEndian.Uint64(b[:]))
		return nil
	case *uint64:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*p = binary.LittleEndian.Uint64(b[:])
		return nil
	case *uint16:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*p = binary.LittleEndian.Uint16(b[:])
		return nil
	case *uint8:
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*p = b[0]
		return nil
	case *bool:
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		*p = b[0] != 0
		return nil
	case *chainhash.Hash:
		_, err := io.ReadFull(r, p[:])
		return err
	default:
		panic("wire: readElement called with unsupported type")
	}
}

func writeElement(w io.Writer, v interface{}) error {
	switch p := v.(type) {
	case int32:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(p))
		_, err := w.Write(b[:])
		return err
	case uint32:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], p)
		_, err := w.Write(b[:])
		return err
	case int64:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(p))
		_, err := w.Write(b[:])
		return err
	case uint64:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], p)
		_, err := w.Write(b[:])
		return err
	case uint16:
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], p)
		_, err := w.Write(b[:])
		return err
	case uint8:
		_, err := w.Write([]byte{p})
		return err
	case bool:
		var b byte
		if p {
			b = 1
		}
		_, err := w.Write([]byte{b})
		return err
	case chainhash.Hash:
		_, err := w.Write(p[:])
		return err
	default:
		panic("wire: writeElement called with unsupported type")
	}
}

// ReadVarInt reads a Bitcoin/Dogecoin-style variable length integer
//: values below 0xfd encode directly in one byte; 0xfd, 0xfe,
// 0xff prefix a 2/4/8-byte little-endian value respectively.
func ReadVarInt(r io.Reader) (uint64, error) {
	var prefix [1]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}
	switch prefix[0] {
	case 0xff:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint64(b[:]), nil
	case 0xfe:
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint32(b[:])), nil
	case 0xfd:
		var b [2]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		return uint64(binary.LittleEndian.Uint16(b[:])), nil
	default:
		return uint64(prefix[0]), nil
	}
}

// WriteVarInt writes val using the minimal var_int encoding.
func WriteVarInt(w io.Writer, val uint64) error {
	if val < 0xfd {
		_, err := w.Write([]byte{byte(val)})
		return err
	}
	if val <= 0xffff {
		if _, err := w.Write([]byte{0xfd}); err != nil {
			return err
		}
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(val))
		_, err := w.Write(b[:])
		return err
	}
	if val <= 0xffffffff {
		if _, err := w.Write([]byte{0xfe}); err != nil {
			return err
		}
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(val))
		_, err := w.Write(b[:])
		return err
	}
	if _, err := w.Write([]byte{0xff}); err != nil {
		return err
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val)
	_, err := w.Write(b[:])
	return err
}

// VarIntSerializeSize returns the number of bytes WriteVarInt would write
// for val.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= 0xffff:
		return 3
	case val <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// ReadVarString reads a var_str: var_int(len) || bytes.
func ReadVarString(r io.Reader, maxLen uint64) (string, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return "", err
	}
	if length > maxLen {
		return "", ErrVarIntOverflow
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteVarString writes s as a var_str.
func WriteVarString(w io.Writer, s string) error {
	if err := WriteVarInt(w, uint64(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

// ReadVarBytes reads a var_int(len)-prefixed byte string, bounded by
// maxAllowed to guard against hostile-peer allocation requests.
func ReadVarBytes(r io.Reader, maxAllowed uint64) ([]byte, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if length > maxAllowed {
		return nil, ErrVarIntOverflow
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteVarBytes writes b as a var_int(len)-prefixed byte string.
func WriteVarBytes(w io.Writer, b []byte) error {
	if err := WriteVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}
