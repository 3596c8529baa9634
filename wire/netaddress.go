// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
	"net"
)

// NetAddress is the 26-byte address form embedded in a version message:
// services(8) | ip(16, v4-mapped) | port(2, big-endian). It omits the
// 4-byte timestamp prefix used by the full addr message, which this core
// does not implement (no peer-serving).
type NetAddress struct {
	Services ServiceFlag
	IP       net.IP
	Port     uint16
}

func (na *NetAddress) encode(w io.Writer) error {
	if err := writeElement(w, uint64(na.Services)); err != nil {
		return err
	}
	var ip [16]byte
	if v4 := na.IP.To4(); v4 != nil {
		copy(ip[10:12], []byte{0xff, 0xff})
		copy(ip[12:16], v4)
	} else if v6 := na.IP.To16(); v6 != nil {
		copy(ip[:], v6)
	}
	if _, err := w.Write(ip[:]); err != nil {
		return err
	}
	var portBytes [2]byte
	portBytes[0] = byte(na.Port >> 8)
	portBytes[1] = byte(na.Port)
	_, err := w.Write(portBytes[:])
	return err
}

func (na *NetAddress) decode(r io.Reader) error {
	var services uint64
	if err := readElement(r, &services); err != nil {
		return err
	}
	na.Services = ServiceFlag(services)
	var ip [16]byte
	if _, err := io.ReadFull(r, ip[:]); err != nil {
		return err
	}
	na.IP = net.IP(append([]byte(nil), ip[:]...))
	var portBytes [2]byte
	if _, err := io.ReadFull(r, portBytes[:]); err != nil {
		return err
	}
	na.Port = uint16(portBytes[0])<<8 | uint16(portBytes[1])
	return nil
}
