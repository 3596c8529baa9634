// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"bytes"

	"github.com/dogecoinfoundation/libdogecoin-sub000/ecc"
	"github.com/dogecoinfoundation/libdogecoin-sub000/hashutil"
	"github.com/dogecoinfoundation/libdogecoin-sub000/txscript"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// Key pairs a private key with its derived public key, as passed to
// SignInput. Compressed reports the encoding SignInput should use when it
// needs to embed the public key in the signature script.
type Key struct {
	Priv       []byte
	Pub        []byte
	Compressed bool
}

// SignInput signs input inIdx of tx against prevScript, the pkScript of the
// output being spent, using whichever of keys matches the script. It sets tx.TxIn[inIdx].SignatureScript on success.
//
// For a multisig prevScript, each call adds one signature, from the first
// supplied key whose public key is a script member not already signed for,
// after the signatures already present in the input's signature script, and
// rewrites that script as OP_0 followed by the signatures in the order they
// were added. OP_0 placeholders in an existing partial script are not
// filled in place: they are dropped, and signatures are not reordered to
// match the order of the member pubkeys.
func SignInput(tx *wire.MsgTx, inIdx int, prevScript []byte, hashType SigHashType, keys []Key) Result {
	if inIdx < 0 || inIdx >= len(tx.TxIn) {
		return InputIndexOutOfRange
	}
	if len(prevScript) == 0 {
		return InvalidTxOrScript
	}

	switch txscript.Classify(prevScript) {
	case txscript.PubKeyHashTy:
		return signP2PKH(tx, inIdx, prevScript, hashType, keys)
	case txscript.PubKeyTy:
		return signP2PK(tx, inIdx, prevScript, hashType, keys)
	case txscript.MultiSigTy:
		return signMultiSig(tx, inIdx, prevScript, hashType, keys)
	default:
		// Pay-to-script-hash and witness outputs require the redeem script
		// or witness program this core does not implement signing for.
		return UnknownScriptType
	}
}

func signP2PKH(tx *wire.MsgTx, inIdx int, prevScript []byte, hashType SigHashType, keys []Key) Result {
	pkHash := txscript.ExtractPubKeyHash(prevScript)
	if pkHash == nil {
		return InvalidTxOrScript
	}
	for _, k := range keys {
		hash := hashutil.Hash160(k.Pub)
		if !bytes.Equal(hash, pkHash) {
			continue
		}
		sig, err := signatureFor(tx, inIdx, prevScript, hashType, k.Priv)
		if err != nil {
			return SighashFailed
		}
		sigScript, err := txscript.NewScriptBuilder().
			AddData(sig).
			AddData(k.Pub).
			Script()
		if err != nil {
			return InvalidTxOrScript
		}
		tx.TxIn[inIdx].SignatureScript = sigScript
		return OK
	}
	return NoKeyMatch
}

func signP2PK(tx *wire.MsgTx, inIdx int, prevScript []byte, hashType SigHashType, keys []Key) Result {
	pk := txscript.ExtractPubKey(prevScript)
	if pk == nil {
		return InvalidTxOrScript
	}
	for _, k := range keys {
		if !bytes.Equal(k.Pub, pk) {
			continue
		}
		sig, err := signatureFor(tx, inIdx, prevScript, hashType, k.Priv)
		if err != nil {
			return SighashFailed
		}
		sigScript, err := txscript.NewScriptBuilder().AddData(sig).Script()
		if err != nil {
			return InvalidTxOrScript
		}
		tx.TxIn[inIdx].SignatureScript = sigScript
		return OK
	}
	return NoKeyMatch
}

// signMultiSig implements the "first unsigned slot" policy: it parses any
// signature script already present on the input (OP_0 followed by whatever
// signatures have been collected so far), adds one more signature from the
// first matching key not yet represented, and rewrites the signature script.
func signMultiSig(tx *wire.MsgTx, inIdx int, prevScript []byte, hashType SigHashType, keys []Key) Result {
	details := txscript.ExtractMultiSig(prevScript)
	if !details.Valid {
		return InvalidTxOrScript
	}

	existing := parsePushes(tx.TxIn[inIdx].SignatureScript)

	signedPubKeys := make(map[int]bool)
	for _, sig := range existing {
		for i, pk := range details.PubKeys {
			if signedPubKeys[i] {
				continue
			}
			if ecc.DefaultContext.Verify(pk, mustSighash(tx, inIdx, prevScript, hashType), stripHashType(sig)) {
				signedPubKeys[i] = true
				break
			}
		}
	}

	for _, k := range keys {
		for i, pk := range details.PubKeys {
			if signedPubKeys[i] || !bytes.Equal(k.Pub, pk) {
				continue
			}
			sig, err := signatureFor(tx, inIdx, prevScript, hashType, k.Priv)
			if err != nil {
				return SighashFailed
			}
			existing = append(existing, sig)
			signedPubKeys[i] = true

			builder := txscript.NewScriptBuilder().AddOp(txscript.OP_0)
			for _, s := range existing {
				builder.AddData(s)
			}
			sigScript, err := builder.Script()
			if err != nil {
				return InvalidTxOrScript
			}
			tx.TxIn[inIdx].SignatureScript = sigScript
			return OK
		}
	}
	return NoKeyMatch
}

func signatureFor(tx *wire.MsgTx, inIdx int, prevScript []byte, hashType SigHashType, priv []byte) ([]byte, error) {
	if !ecc.DefaultContext.VerifyPrivateKey(priv) {
		return nil, ecc.ErrInvalidPrivateKey
	}
	hash, err := CalcSignatureHash(tx, inIdx, prevScript, hashType)
	if err != nil {
		return nil, err
	}
	der, err := ecc.DefaultContext.Sign(priv, hash[:])
	if err != nil {
		return nil, err
	}
	return append(der, byte(hashType)), nil
}

func mustSighash(tx *wire.MsgTx, inIdx int, prevScript []byte, hashType SigHashType) []byte {
	hash, err := CalcSignatureHash(tx, inIdx, prevScript, hashType)
	if err != nil {
		return nil
	}
	return hash[:]
}

func stripHashType(sig []byte) []byte {
	if len(sig) == 0 {
		return sig
	}
	return sig[:len(sig)-1]
}

// parsePushes splits a signature script consisting only of canonical data
// pushes (as produced by signMultiSig, after the leading OP_0) into its
// individual pushes.
func parsePushes(script []byte) [][]byte {
	var out [][]byte
	i := 0
	for i < len(script) {
		op := script[i]
		if op == txscript.OP_0 {
			i++
			continue
		}
		if op < 1 || op > 75 {
			break
		}
		n := int(op)
		if i+1+n > len(script) {
			break
		}
		out = append(out, script[i+1:i+1+n])
		i += 1 + n
	}
	return out
}
