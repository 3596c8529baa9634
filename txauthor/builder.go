// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txauthor

import (
	"bytes"
	"encoding/hex"
	"sync"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/keyaddr"
	"github.com/dogecoinfoundation/libdogecoin-sub000/txsign"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// inProgress tracks one in-progress transaction plus the bookkeeping the
// builder needs beyond the tx itself: the output scripts its inputs spend
// (needed by Sign, since wire.MsgTx carries no UTXO provenance) and whether
// Finalize has already run.
type inProgress struct {
	tx          *wire.MsgTx
	spentScript [][]byte // parallel to tx.TxIn
	finalized   bool
}

// Registry is the in-memory handle table driving the transaction-builder
// state machine: Start/AddUTXO/AddOutput/Finalize/Sign plus
// the Save/Get/Store/Clear/RemoveAll management operations. The zero value
// is not usable; construct with NewRegistry.
type Registry struct {
	net *chaincfg.Params

	mu     sync.Mutex
	nextID uint32
	txs    map[uint32]*inProgress
}

// NewRegistry returns an empty Registry for chain parameters net.
func NewRegistry(net *chaincfg.Params) *Registry {
	return &Registry{net: net, txs: make(map[uint32]*inProgress)}
}

// Start allocates Tx{version: 1, locktime: 0} and returns its handle.
func (r *Registry) Start() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.txs[id] = &inProgress{tx: wire.NewMsgTx(1)}
	return id
}

// AddUTXO appends a TxIn spending (prevTxidHex, vout) with an empty
// signature script and sequence 0xFFFFFFFF. prevTxidHex is the usual
// reversed (big-endian display) hex string; it is stored internally in
// wire byte order, matching chainhash.Hash's convention.
func (r *Registry) AddUTXO(id uint32, prevTxidHex string, vout uint32, spentScript []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.txs[id]
	if !ok {
		return ErrUnknownHandle
	}
	if p.finalized {
		return ErrAlreadyFinalized
	}
	prevHash, err := chainhash.NewHashFromStr(prevTxidHex)
	if err != nil {
		return err
	}
	p.tx.TxIn = append(p.tx.TxIn, &wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: *prevHash, Index: vout},
		Sequence:         0xFFFFFFFF,
	})
	p.spentScript = append(p.spentScript, spentScript)
	return nil
}

// AddOutput decodes address to its (type, hash), builds the corresponding
// P2PKH or P2SH script, and appends a TxOut paying amountStr (a decimal
// DOGE string) to it.
func (r *Registry) AddOutput(id uint32, address, amountStr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.txs[id]
	if !ok {
		return ErrUnknownHandle
	}
	if p.finalized {
		return ErrAlreadyFinalized
	}
	script, err := keyaddr.PayToAddrScript(address, r.net)
	if err != nil {
		return err
	}
	value, err := parseKoinu(amountStr)
	if err != nil {
		return err
	}
	p.tx.TxOut = append(p.tx.TxOut, &wire.TxOut{Value: value, PkScript: script})
	return nil
}

// Finalize computes change = total_in - Σ outputs - fee; if change > 0 it
// appends a change TxOut paying changeAddress, then returns the hex of the
// unsigned transaction. It fails with ErrNotEnoughFunds if change is
// negative.
func (r *Registry) Finalize(id uint32, changeAddress, feeStr, totalInStr string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.txs[id]
	if !ok {
		return "", ErrUnknownHandle
	}
	if p.finalized {
		return "", ErrAlreadyFinalized
	}

	fee, err := parseKoinu(feeStr)
	if err != nil {
		return "", err
	}
	totalIn, err := parseKoinu(totalInStr)
	if err != nil {
		return "", err
	}
	var spent int64
	for _, out := range p.tx.TxOut {
		spent += out.Value
	}
	change := totalIn - spent - fee
	if change < 0 {
		return "", ErrNotEnoughFunds
	}
	if change > 0 {
		script, err := keyaddr.PayToAddrScript(changeAddress, r.net)
		if err != nil {
			return "", err
		}
		p.tx.TxOut = append(p.tx.TxOut, &wire.TxOut{Value: change, PkScript: script})
	}
	p.finalized = true

	raw, err := p.tx.Serialize()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// Sign signs every input whose spent script matches scriptPubKeyHex with
// SIGHASH_ALL, using wif's private key. It requires
// Finalize to have already run.
func (r *Registry) Sign(id uint32, scriptPubKeyHex string, wif *keyaddr.WIF) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.txs[id]
	if !ok {
		return ErrUnknownHandle
	}
	if !p.finalized {
		return ErrNotFinalized
	}
	target, err := hex.DecodeString(scriptPubKeyHex)
	if err != nil {
		return err
	}
	pub, err := wif.PubKey()
	if err != nil {
		return err
	}
	keys := []txsign.Key{{Priv: wif.PrivKey, Pub: pub, Compressed: wif.Compressed}}

	for i, script := range p.spentScript {
		if !bytes.Equal(script, target) {
			continue
		}
		if result := txsign.SignInput(p.tx, i, script, txsign.SigHashAll, keys); result != txsign.OK && result != txsign.NoKeyMatch {
			return signResultError(result)
		}
	}
	return nil
}

// signResultError maps a non-OK txsign.Result to an error. NoKeyMatch is
// not an error here: sign-input proceeds anyway when no key matches a
// given input.
func signResultError(result txsign.Result) error {
	return errSignFailed{result}
}

type errSignFailed struct{ result txsign.Result }

func (e errSignFailed) Error() string {
	return "txauthor: sign input failed: " + e.result.String()
}

// Save stores an externally constructed transaction under id, replacing
// whatever handle already used it.
func (r *Registry) Save(id uint32, tx *wire.MsgTx, spentScript [][]byte, finalized bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs[id] = &inProgress{tx: tx, spentScript: spentScript, finalized: finalized}
}

// Get returns the transaction currently held under id.
func (r *Registry) Get(id uint32) (*wire.MsgTx, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.txs[id]
	if !ok {
		return nil, false
	}
	return p.tx, true
}

// Store replaces the handle's transaction wholesale, like Save, provided
// for parity with the source API's separate store/save entry points. Unlike
// Save it records no spent scripts and leaves the handle unfinalized.
func (r *Registry) Store(id uint32, tx *wire.MsgTx) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs[id] = &inProgress{tx: tx}
}

// Clear resets the transaction under id back to an empty Tx{v=1,
// locktime=0}, keeping the handle allocated.
func (r *Registry) Clear(id uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs[id] = &inProgress{tx: wire.NewMsgTx(1)}
}

// RemoveAll empties the registry entirely.
func (r *Registry) RemoveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = make(map[uint32]*inProgress)
}
