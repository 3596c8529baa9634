// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package headersdb

import (
	"sync"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// MemDB is the pure in-memory DB implementation: the test double named by
// 's capability-record redesign flag. Nothing is persisted
// across process restarts.
type MemDB struct {
	net *chaincfg.Params

	mu         sync.Mutex
	byHeight   []BlockIndex // index 0 is genesis or the checkpoint root
	byHash     map[chainhash.Hash]uint32
	checkpoint *chaincfg.Checkpoint
}

// NewMemDB constructs an empty MemDB for the given chain parameters.
func NewMemDB(net *chaincfg.Params) *MemDB {
	return &MemDB{net: net, byHash: make(map[chainhash.Hash]uint32)}
}

func (m *MemDB) ConnectHeader(header *wire.BlockHeader) (*BlockIndex, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hash := header.BlockHash()

	if len(m.byHeight) == 0 {
		// First header: accept it as the root (genesis, or the checkpoint
		// block when fast-start is in effect) without checking PrevBlock.
		idx := BlockIndex{Height: m.rootHeight(), Hash: hash, Header: *header}
		m.byHeight = append(m.byHeight, idx)
		m.byHash[hash] = 0
		return &idx, nil
	}

	tip := m.byHeight[len(m.byHeight)-1]
	if header.PrevBlock != tip.Hash {
		return nil, ErrHeaderNotConnected
	}
	idx := BlockIndex{Height: tip.Height + 1, Hash: hash, Header: *header}
	m.byHeight = append(m.byHeight, idx)
	m.byHash[hash] = uint32(len(m.byHeight) - 1)
	return &idx, nil
}

func (m *MemDB) rootHeight() uint32 {
	if m.checkpoint != nil {
		return uint32(m.checkpoint.Height)
	}
	return 0
}

func (m *MemDB) DisconnectTip() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.byHeight) == 0 {
		return ErrEmptyChain
	}
	tip := m.byHeight[len(m.byHeight)-1]
	delete(m.byHash, tip.Hash)
	m.byHeight = m.byHeight[:len(m.byHeight)-1]
	return nil
}

func (m *MemDB) ChainTip() (*BlockIndex, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.byHeight) == 0 {
		return nil, ErrEmptyChain
	}
	tip := m.byHeight[len(m.byHeight)-1]
	return &tip, nil
}

func (m *MemDB) FillBlockLocator() ([]chainhash.Hash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.byHeight) == 0 {
		return nil, ErrEmptyChain
	}
	tip := m.byHeight[len(m.byHeight)-1]
	root := m.byHeight[0]
	locator := fillLocator(tip.Height, func(h uint32) (chainhash.Hash, bool) {
		if h < root.Height || int(h-root.Height) >= len(m.byHeight) {
			return chainhash.Hash{}, false
		}
		return m.byHeight[h-root.Height].Hash, true
	})
	return locator, nil
}

func (m *MemDB) HasCheckpointStart() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.checkpoint != nil
}

func (m *MemDB) SetCheckpointStart(cp chaincfg.Checkpoint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.byHeight) != 0 {
		return errAlreadyStarted
	}
	m.checkpoint = &cp
	return nil
}

func (m *MemDB) Close() error { return nil }
