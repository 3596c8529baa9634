// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package headersdb

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// Key prefixes for the flat goleveldb keyspace. The on-disk record framing
// is this implementation's own choice: a height-indexed header record plus a
// hash-to-height index, both append-only during sync.
const (
	prefixHeader     = 'h' // prefixHeader || height(4, big-endian) -> 80-byte header
	prefixHashIndex  = 'x' // prefixHashIndex || hash(32) -> height(4, big-endian)
	keyTipHeight     = "tip"
	keyCheckpoint    = "checkpoint"
	keyCheckpointSet = "checkpoint_set"
)

// LevelDB is the file-backed DB implementation, append-only
// during sync: headers are written once and never rewritten except by
// DisconnectTip trimming the tip.
type LevelDB struct {
	net *chaincfg.Params
	db  *leveldb.DB

	mu         sync.Mutex
	rootHeight uint32
	tipHeight  uint32
	hasTip     bool
}

// OpenLevelDB opens (creating if necessary) a LevelDB-backed headers
// database at path.
func OpenLevelDB(net *chaincfg.Params, path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		log.Errorf("headersdb: open %s: %v", path, err)
		return nil, err
	}
	l := &LevelDB{net: net, db: db}
	if err := l.loadTip(); err != nil {
		db.Close()
		log.Errorf("headersdb: load tip at %s: %v", path, err)
		return nil, err
	}
	log.Infof("headersdb: opened %s at tip height %d", path, l.tipHeight)
	return l, nil
}

func (l *LevelDB) loadTip() error {
	val, err := l.db.Get([]byte(keyTipHeight), nil)
	if err == leveldb.ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	l.tipHeight = binary.BigEndian.Uint32(val)
	l.hasTip = true

	cpSet, err := l.db.Get([]byte(keyCheckpointSet), nil)
	if err == nil && len(cpSet) == 1 && cpSet[0] == 1 {
		cpHeight, err := l.db.Get([]byte(keyCheckpoint), nil)
		if err == nil && len(cpHeight) == 4 {
			l.rootHeight = binary.BigEndian.Uint32(cpHeight)
		}
	}
	return nil
}

func headerKey(height uint32) []byte {
	key := make([]byte, 5)
	key[0] = prefixHeader
	binary.BigEndian.PutUint32(key[1:], height)
	return key
}

func hashIndexKey(hash chainhash.Hash) []byte {
	key := make([]byte, 33)
	key[0] = prefixHashIndex
	copy(key[1:], hash[:])
	return key
}

func (l *LevelDB) headerAt(height uint32) (*wire.BlockHeader, error) {
	raw, err := l.db.Get(headerKey(height), nil)
	if err != nil {
		return nil, err
	}
	return wire.NewBlockHeaderFromBytes(raw)
}

func (l *LevelDB) ConnectHeader(header *wire.BlockHeader) (*BlockIndex, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	hash := header.BlockHash()
	raw, err := header.Serialize()
	if err != nil {
		return nil, err
	}

	batch := new(leveldb.Batch)

	var height uint32
	if !l.hasTip {
		height = l.rootHeight
	} else {
		tipHeader, err := l.headerAt(l.tipHeight)
		if err != nil {
			return nil, err
		}
		if header.PrevBlock != tipHeader.BlockHash() {
			log.Debugf("headersdb: reject header %s: does not connect to tip %s", hash, tipHeader.BlockHash())
			return nil, ErrHeaderNotConnected
		}
		height = l.tipHeight + 1
	}

	batch.Put(headerKey(height), raw)
	batch.Put(hashIndexKey(hash), heightBytes(height))
	var tipBuf [4]byte
	binary.BigEndian.PutUint32(tipBuf[:], height)
	batch.Put([]byte(keyTipHeight), tipBuf[:])

	if err := l.db.Write(batch, nil); err != nil {
		return nil, err
	}
	l.tipHeight = height
	l.hasTip = true
	return &BlockIndex{Height: height, Hash: hash, Header: *header}, nil
}

func heightBytes(height uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], height)
	return b[:]
}

func (l *LevelDB) DisconnectTip() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.hasTip {
		return ErrEmptyChain
	}
	tipHeader, err := l.headerAt(l.tipHeight)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	batch.Delete(headerKey(l.tipHeight))
	batch.Delete(hashIndexKey(tipHeader.BlockHash()))
	if l.tipHeight == l.rootHeight {
		batch.Delete([]byte(keyTipHeight))
		if err := l.db.Write(batch, nil); err != nil {
			return err
		}
		l.hasTip = false
		return nil
	}
	l.tipHeight--
	var tipBuf [4]byte
	binary.BigEndian.PutUint32(tipBuf[:], l.tipHeight)
	batch.Put([]byte(keyTipHeight), tipBuf[:])
	return l.db.Write(batch, nil)
}

func (l *LevelDB) ChainTip() (*BlockIndex, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.hasTip {
		return nil, ErrEmptyChain
	}
	header, err := l.headerAt(l.tipHeight)
	if err != nil {
		return nil, err
	}
	return &BlockIndex{Height: l.tipHeight, Hash: header.BlockHash(), Header: *header}, nil
}

func (l *LevelDB) FillBlockLocator() ([]chainhash.Hash, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.hasTip {
		return nil, ErrEmptyChain
	}
	return fillLocator(l.tipHeight, func(h uint32) (chainhash.Hash, bool) {
		if h < l.rootHeight {
			return chainhash.Hash{}, false
		}
		header, err := l.headerAt(h)
		if err != nil {
			return chainhash.Hash{}, false
		}
		return header.BlockHash(), true
	}), nil
}

func (l *LevelDB) HasCheckpointStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	val, err := l.db.Get([]byte(keyCheckpointSet), nil)
	return err == nil && len(val) == 1 && val[0] == 1
}

func (l *LevelDB) SetCheckpointStart(cp chaincfg.Checkpoint) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.hasTip {
		return errAlreadyStarted
	}
	batch := new(leveldb.Batch)
	batch.Put([]byte(keyCheckpoint), heightBytes(uint32(cp.Height)))
	batch.Put([]byte(keyCheckpointSet), []byte{1})
	if err := l.db.Write(batch, nil); err != nil {
		return err
	}
	l.rootHeight = uint32(cp.Height)
	return nil
}

func (l *LevelDB) Close() error {
	return l.db.Close()
}

// heightForHash looks up the height of a previously connected header by
// hash through the 'x' hash-to-height reverse index.
func (l *LevelDB) heightForHash(hash chainhash.Hash) (uint32, bool) {
	val, err := l.db.Get(hashIndexKey(hash), nil)
	if err != nil || len(val) != 4 {
		return 0, false
	}
	return binary.BigEndian.Uint32(val), true
}
