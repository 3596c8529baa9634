// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet implements the HD address book, wtx store, and balance
// computation that consumes the transactions an spvclient.Client delivers
// from the chain: address derivation via hdkeychain/keyaddr, script
// ownership classification via txscript, and a persisted append-only
// record file in the format documented by writeHeader and writeRecord in
// file.go.
package wallet

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/hashutil"
	"github.com/dogecoinfoundation/libdogecoin-sub000/hdkeychain"
	"github.com/dogecoinfoundation/libdogecoin-sub000/keyaddr"
	"github.com/dogecoinfoundation/libdogecoin-sub000/txscript"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// coinbaseMaturity is the number of confirmations a coinbase output needs
// before it contributes to the wallet balance.
const coinbaseMaturity = 100

// noChildIndex marks a WalletAddr that was added via AddWatchAddress rather
// than derived from the HD chain, so it never advances NextAddr's counter.
const noChildIndex = math.MaxUint32

// WalletAddr is one entry of the wallet's address book: either an address
// derived at ChildIndex from the master key, or a watch-only address with
// ChildIndex == noChildIndex.
type WalletAddr struct {
	Hash160    [20]byte
	Type       keyaddr.AddressType
	ChildIndex uint32
}

func addressTypeFromByte(b byte) keyaddr.AddressType {
	return keyaddr.AddressType(b)
}

// WTx is a wallet-relevant transaction as seen in a block: the transaction
// itself plus the position it was confirmed at. Ignore marks a tombstone —
// an entry superseded by a later AddWTX call for the same transaction hash,
// kept only so the outpoint's history is not silently forgotten.
type WTx struct {
	Tx        *wire.MsgTx
	Height    uint32
	BlockHash chainhash.Hash
	Ignore    bool
}

// Wallet is the address book, wtx store, and balance calculator for one HD
// key tree. All methods are safe for concurrent use.
type Wallet struct {
	net     *chaincfg.Params
	genesis chainhash.Hash

	mu   sync.Mutex
	file io.Writer // nil for a purely in-memory wallet

	masterKey *hdkeychain.ExtendedKey

	addrOrder   []WalletAddr
	addrsByHash map[[20]byte]WalletAddr

	nextChildIndex  uint32
	bestBlockHeight uint32

	wtxes  map[chainhash.Hash]*WTx
	spends map[wire.OutPoint]struct{}
}

func newWallet(net *chaincfg.Params, genesis chainhash.Hash, file io.Writer) *Wallet {
	return &Wallet{
		net:         net,
		genesis:     genesis,
		file:        file,
		addrsByHash: make(map[[20]byte]WalletAddr),
		wtxes:       make(map[chainhash.Hash]*WTx),
		spends:      make(map[wire.OutPoint]struct{}),
	}
}

// New constructs a purely in-memory wallet, useful for tests or short-lived
// watch-only scanning that never touches disk.
func New(net *chaincfg.Params, genesis chainhash.Hash) *Wallet {
	return newWallet(net, genesis, nil)
}

// Create writes a fresh wallet-file header to w and returns a Wallet that
// appends every subsequent record to it.
func Create(w io.Writer, net *chaincfg.Params, genesis chainhash.Hash) (*Wallet, error) {
	if err := writeHeader(w, genesis); err != nil {
		return nil, err
	}
	return newWallet(net, genesis, w), nil
}

// Load reads an existing wallet file from r, replaying every record to
// rebuild in-memory state, and returns a Wallet that appends further
// records to w (typically the same *os.File as r, opened read-write and
// already positioned at EOF after the replay).
func Load(r io.Reader, w io.Writer, net *chaincfg.Params, genesis chainhash.Hash) (*Wallet, error) {
	if _, err := readHeader(r, genesis); err != nil {
		return nil, err
	}
	wal := newWallet(net, genesis, w)
	for {
		recType, body, err := readRecord(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch recType {
		case recMasterPubKey:
			xpub, err := decodeMasterPubKeyRecord(body)
			if err != nil {
				return nil, err
			}
			key, err := hdkeychain.NewKeyFromString(xpub, net)
			if err != nil {
				return nil, err
			}
			wal.masterKey = key
		case recAddr:
			addr, err := decodeAddrRecord(body)
			if err != nil {
				return nil, err
			}
			wal.addAddrLocked(addr)
		case recTx:
			wtx, err := decodeTxRecord(body)
			if err != nil {
				return nil, err
			}
			wal.addWTxLocked(wtx, false)
		default:
			return nil, fmt.Errorf("wallet: unknown record type 0x%02x", recType)
		}
	}
	return wal, nil
}

// SetMasterKey installs the wallet's account-level extended public key,
// from which NextAddr derives m/0/<index> addresses. It may be called
// exactly once per wallet lifetime.
func (w *Wallet) SetMasterKey(xpub string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.masterKey != nil {
		return ErrMasterKeyAlreadySet
	}
	key, err := hdkeychain.NewKeyFromString(xpub, w.net)
	if err != nil {
		return err
	}
	if key.IsPrivate() {
		neutered, err := key.Neuter(w.net)
		if err != nil {
			return err
		}
		key = neutered
	}
	w.masterKey = key
	if w.file != nil {
		body, err := encodeMasterPubKeyRecord(key.String())
		if err != nil {
			return err
		}
		if err := writeRecord(w.file, recMasterPubKey, body); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wallet) addAddrLocked(addr WalletAddr) {
	w.addrOrder = append(w.addrOrder, addr)
	w.addrsByHash[addr.Hash160] = addr
	if addr.ChildIndex != noChildIndex && addr.ChildIndex >= w.nextChildIndex {
		w.nextChildIndex = addr.ChildIndex + 1
	}
}

// NextAddr derives the next address on the external chain (m/0/<k> relative
// to the master key, i.e. m/44'/3'/0'/0/<k> absolute), records it in the
// address book in ascending order, and returns its Base58Check encoding.
func (w *Wallet) NextAddr() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.masterKey == nil {
		return "", ErrMasterKeyNotSet
	}
	index := w.nextChildIndex
	path := fmt.Sprintf("m/0/%d", index)
	child, err := keyaddr.Derive(w.masterKey, path)
	if err != nil {
		return "", err
	}
	hash160 := hashutil.Hash160(child.SerializedPubKey())
	var addr WalletAddr
	copy(addr.Hash160[:], hash160)
	addr.Type = keyaddr.PubKeyHashAddr
	addr.ChildIndex = index

	w.addAddrLocked(addr)
	if w.file != nil {
		if err := writeRecord(w.file, recAddr, encodeAddrRecord(addr)); err != nil {
			return "", err
		}
	}
	return keyaddr.EncodeAddress(hash160, w.net), nil
}

// AddWatchAddress adds an externally supplied address to the wallet's
// address book without deriving it from the HD chain; it never advances
// NextAddr's counter.
func (w *Wallet) AddWatchAddress(address string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	hash160, kind, err := keyaddr.DecodeAddress(address, w.net)
	if err != nil {
		return err
	}
	var addr WalletAddr
	copy(addr.Hash160[:], hash160)
	addr.Type = kind
	addr.ChildIndex = noChildIndex

	w.addAddrLocked(addr)
	if w.file != nil {
		return writeRecord(w.file, recAddr, encodeAddrRecord(addr))
	}
	return nil
}

// IsMine reports whether script pays to an address this wallet tracks.
func (w *Wallet) IsMine(script []byte) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isMineScriptLocked(script)
}

func (w *Wallet) isMineScriptLocked(script []byte) bool {
	if hash := txscript.ExtractPubKeyHash(script); hash != nil {
		var h [20]byte
		copy(h[:], hash)
		_, ok := w.addrsByHash[h]
		return ok
	}
	if hash := txscript.ExtractScriptHash(script); hash != nil {
		var h [20]byte
		copy(h[:], hash)
		_, ok := w.addrsByHash[h]
		return ok
	}
	return false
}

// GetDebit sums the value of tx's inputs that spend outputs this wallet
// owns, for every input whose producing transaction is a known wtx.
func (w *Wallet) GetDebit(tx *wire.MsgTx) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	var total int64
	for _, in := range tx.TxIn {
		prior, ok := w.wtxes[in.PreviousOutPoint.Hash]
		if !ok || prior.Ignore {
			continue
		}
		idx := in.PreviousOutPoint.Index
		if int(idx) >= len(prior.Tx.TxOut) {
			continue
		}
		out := prior.Tx.TxOut[idx]
		if w.isMineScriptLocked(out.PkScript) {
			total += out.Value
		}
	}
	return total
}

// AddWTX classifies tx (relevant if it pays to, or spends from, an address
// this wallet tracks) and, if relevant, stores it as the wtx for its hash,
// tombstoning any prior entry under the same hash and recording every
// input it consumes in the spends set.
func (w *Wallet) AddWTX(tx *wire.MsgTx, height uint32, blockHash chainhash.Hash) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.isRelevantLocked(tx) {
		return nil
	}
	wtx := &WTx{Tx: tx, Height: height, BlockHash: blockHash}
	return w.addWTxLocked(wtx, true)
}

func (w *Wallet) isRelevantLocked(tx *wire.MsgTx) bool {
	for _, out := range tx.TxOut {
		if w.isMineScriptLocked(out.PkScript) {
			return true
		}
	}
	for _, in := range tx.TxIn {
		prior, ok := w.wtxes[in.PreviousOutPoint.Hash]
		if !ok || prior.Ignore {
			continue
		}
		idx := in.PreviousOutPoint.Index
		if int(idx) < len(prior.Tx.TxOut) && w.isMineScriptLocked(prior.Tx.TxOut[idx].PkScript) {
			return true
		}
	}
	return false
}

func (w *Wallet) addWTxLocked(wtx *WTx, persist bool) error {
	hash := wtx.Tx.TxHash()
	if prior, ok := w.wtxes[hash]; ok {
		prior.Ignore = true
	}
	for _, in := range wtx.Tx.TxIn {
		w.spends[in.PreviousOutPoint] = struct{}{}
	}
	w.wtxes[hash] = wtx
	if persist && w.file != nil {
		body, err := encodeTxRecord(wtx)
		if err != nil {
			return err
		}
		return writeRecord(w.file, recTx, body)
	}
	return nil
}

// SetBestBlockHeight records the chain height the embedder considers
// confirmed, used by GetBalance's coinbase maturity check.
func (w *Wallet) SetBestBlockHeight(height uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bestBlockHeight = height
}

// GetBalance sums the value of every unspent output this wallet owns,
// excluding immature coinbase outputs: a coinbase wtx contributes only once
// best_block_height >= wtx.height + 100.
func (w *Wallet) GetBalance() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	var total int64
	for _, wtx := range w.wtxes {
		if wtx.Ignore {
			continue
		}
		if wtx.Tx.IsCoinBase() && w.bestBlockHeight < wtx.Height+coinbaseMaturity {
			continue
		}
		hash := wtx.Tx.TxHash()
		for i, out := range wtx.Tx.TxOut {
			if !w.isMineScriptLocked(out.PkScript) {
				continue
			}
			op := wire.OutPoint{Hash: hash, Index: uint32(i)}
			if _, spent := w.spends[op]; spent {
				continue
			}
			total += out.Value
		}
	}
	return total
}

// Prune removes tombstoned wtx records confirmed below height, mirroring
// the original wallet's periodic compaction pass (supplementing the
// distilled core contract, which omits it). It only affects in-memory
// state; call SaveSnapshot afterward to persist the compacted wallet.
func (w *Wallet) Prune(height uint32) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	removed := 0
	for hash, wtx := range w.wtxes {
		if wtx.Ignore && wtx.Height < height {
			delete(w.wtxes, hash)
			removed++
		}
	}
	return removed
}

// SaveSnapshot writes a fresh, compacted wallet file to dst: the header,
// the master key (if set), the full address book, and every non-tombstoned
// wtx — replacing the append-only growth of the original file the wallet
// loaded from or was created with.
func (w *Wallet) SaveSnapshot(dst io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := writeHeader(dst, w.genesis); err != nil {
		return err
	}
	if w.masterKey != nil {
		body, err := encodeMasterPubKeyRecord(w.masterKey.String())
		if err != nil {
			return err
		}
		if err := writeRecord(dst, recMasterPubKey, body); err != nil {
			return err
		}
	}
	for _, addr := range w.addrOrder {
		if err := writeRecord(dst, recAddr, encodeAddrRecord(addr)); err != nil {
			return err
		}
	}
	for _, wtx := range w.wtxes {
		if wtx.Ignore {
			continue
		}
		body, err := encodeTxRecord(wtx)
		if err != nil {
			return err
		}
		if err := writeRecord(dst, recTx, body); err != nil {
			return err
		}
	}
	return nil
}
