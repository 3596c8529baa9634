// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import "github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"

// ProtocolVersion is the version advertised in outbound version messages.
const ProtocolVersion uint32 = 70015

// ServiceFlag identifies services supported by a peer, advertised in the
// version message.
type ServiceFlag uint64

const (
	// SFNodeNetwork indicates the peer is a full node serving the complete
	// block chain.
	SFNodeNetwork ServiceFlag = 1 << iota
	// SFNodeGetUTXO indicates support for the getutxos/utxos commands
	// (BIP0064); unused by this core but recognized on the wire.
	SFNodeGetUTXO
	// SFNodeBloom indicates support for bloom filtering.
	SFNodeBloom
)

// Command strings used by the messages this core implements.
const (
	CmdVersion    = "version"
	CmdVerAck     = "verack"
	CmdPing       = "ping"
	CmdPong       = "pong"
	CmdInv        = "inv"
	CmdGetData    = "getdata"
	CmdGetHeaders = "getheaders"
	CmdHeaders    = "headers"
	CmdGetBlocks  = "getblocks"
	CmdBlock      = "block"
	CmdTx         = "tx"
	CmdReject     = "reject"
)

// InvType identifies the kind of item referenced by an inventory vector.
type InvType uint32

const (
	InvTypeError InvType = iota
	InvTypeTx
	InvTypeBlock
	InvTypeFilteredBlock
)

// InvVect is a single inventory vector: a 4-byte type and a 32-byte hash,
// used by the inv/getdata messages.
type InvVect struct {
	Type InvType
	Hash chainhash.Hash
}
