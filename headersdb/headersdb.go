// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package headersdb implements the persistent header index for SPV chain
// sync: a capability interface (DB) with an in-memory test double and a
// file-backed implementation over goleveldb, both building the same chain
// of BlockIndex entries rooted at genesis or at a checkpoint.
package headersdb

import (
	"errors"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// ErrHeaderNotConnected indicates ConnectHeader's header did not extend the
// current chain tip (its prev_block is not the tip's hash).
var ErrHeaderNotConnected = errors.New("headersdb: header's prev_block not found in index")

// ErrEmptyChain indicates an operation (DisconnectTip, ChainTip) was asked
// to act on a database with no headers loaded yet.
var ErrEmptyChain = errors.New("headersdb: no headers in chain")

// errAlreadyStarted indicates SetCheckpointStart was called after the
// chain already has headers connected; a checkpoint root can only be
// established before the first ConnectHeader call.
var errAlreadyStarted = errors.New("headersdb: chain already has connected headers")

// BlockIndex is one node of the header chain: the header
// itself plus derived height and hash. Prev is resolved through the DB
// rather than stored as a pointer, so BlockIndex values are safe to copy.
type BlockIndex struct {
	Height uint32
	Hash   chainhash.Hash
	Header wire.BlockHeader
}

// DB is the headers-database capability interface: every
// operation a header-sync state machine needs against a persistent or
// in-memory chain index.
type DB interface {
	// ConnectHeader indexes an 80-byte header on top of the current chain
	// tip. The first header of an empty chain is accepted as the root
	// (genesis, or the checkpoint block) without a PrevBlock check; after
	// that, a header is accepted only if its PrevBlock is the current tip's
	// hash. Otherwise it returns ErrHeaderNotConnected without mutating the
	// index; a header that builds on an earlier, non-tip header is rejected
	// the same way, since forks are not tracked.
	ConnectHeader(header *wire.BlockHeader) (*BlockIndex, error)

	// DisconnectTip removes the current tip, exposing its parent as the
	// new tip.
	DisconnectTip() error

	// ChainTip returns the current best (highest) indexed header.
	ChainTip() (*BlockIndex, error)

	// FillBlockLocator appends a standard block locator — exponentially
	// spaced ancestor hashes of the current tip, thinning with distance —
	// used to build getheaders/getblocks requests.
	FillBlockLocator() ([]chainhash.Hash, error)

	// HasCheckpointStart reports whether a synthetic genesis checkpoint
	// has been recorded for fast-start sync.
	HasCheckpointStart() bool

	// SetCheckpointStart records cp as the chain's synthetic genesis,
	// letting header sync skip directly past it.
	SetCheckpointStart(cp chaincfg.Checkpoint) error

	// Close releases any resources (file handles) the implementation
	// holds.
	Close() error
}

// fillLocator implements the exponential-ancestor-spacing algorithm shared
// by MemDB and LevelDB: the first ten entries are the tip and its nine
// nearest ancestors, one height apart, after which the step doubles each
// time. On a chain rooted at genesis the walk ends at height 0, which is
// always included last. On a chain rooted at a checkpoint the walk ends at
// the first height below the root, so the root itself is included only
// when a step lands on it exactly.
func fillLocator(height uint32, hashAt func(uint32) (chainhash.Hash, bool)) []chainhash.Hash {
	var locator []chainhash.Hash
	step := uint32(1)
	h := height
	for {
		hash, ok := hashAt(h)
		if !ok {
			break
		}
		locator = append(locator, hash)
		if h == 0 {
			break
		}
		if len(locator) >= 10 {
			step *= 2
		}
		if step > h {
			h = 0
		} else {
			h -= step
		}
	}
	return locator
}
