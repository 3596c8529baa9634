// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txsign implements the legacy Bitcoin/Dogecoin sighash algorithm
// and the sign-input routine that drives it.
package txsign

import (
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/txscript"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// SigHashType represents the sighash flags appended to a signature, exactly
// as defined by the legacy Bitcoin/Dogecoin consensus rules.
type SigHashType uint32

const (
	SigHashAll          SigHashType = 1
	SigHashNone         SigHashType = 2
	SigHashSingle       SigHashType = 3
	SigHashAnyOneCanPay SigHashType = 0x80

	sigHashMask = 0x1f
)

// oneHash is the historical bug-for-bug constant returned by
// CalcSignatureHash when a SIGHASH_SINGLE input index has no corresponding
// output.
var oneHash = chainhash.Hash{1}

// CalcSignatureHash computes the digest a signature over input inIdx of tx
// binds to, given the subscript and sighash type. OP_CODESEPARATOR opcodes
// are stripped from the subscript here before it enters the preimage.
func CalcSignatureHash(tx *wire.MsgTx, inIdx int, subscript []byte, hashType SigHashType) (chainhash.Hash, error) {
	if inIdx < 0 || inIdx >= len(tx.TxIn) {
		return chainhash.Hash{}, ErrInputIndexOutOfRange
	}

	// SIGHASH_SINGLE bug: if there is no corresponding output for this
	// input, return the constant 1 hash rather than erroring, matching the
	// original consensus-critical off-by-one.
	if hashType&sigHashMask == SigHashSingle && inIdx >= len(tx.TxOut) {
		return oneHash, nil
	}

	subscript = txscript.RemoveOpcodeByData(subscript)

	clone := tx.Copy()
	for i := range clone.TxIn {
		if i == inIdx {
			clone.TxIn[i].SignatureScript = subscript
		} else {
			clone.TxIn[i].SignatureScript = nil
		}
	}

	switch hashType & sigHashMask {
	case SigHashNone:
		clone.TxOut = nil
		for i := range clone.TxIn {
			if i != inIdx {
				clone.TxIn[i].Sequence = 0
			}
		}
	case SigHashSingle:
		clone.TxOut = clone.TxOut[:inIdx+1]
		for i := 0; i < inIdx; i++ {
			clone.TxOut[i] = &wire.TxOut{Value: -1, PkScript: nil}
		}
		for i := range clone.TxIn {
			if i != inIdx {
				clone.TxIn[i].Sequence = 0
			}
		}
	default: // SigHashAll and any unrecognized base type behave as ALL.
	}

	if hashType&SigHashAnyOneCanPay != 0 {
		clone.TxIn = []*wire.TxIn{clone.TxIn[inIdx]}
	}

	serialized, err := clone.Serialize()
	if err != nil {
		return chainhash.Hash{}, err
	}
	serialized = append(serialized, byte(hashType), byte(hashType>>8), byte(hashType>>16), byte(hashType>>24))
	return chainhash.DoubleHashH(serialized), nil
}
