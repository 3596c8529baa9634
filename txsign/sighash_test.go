// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import (
	"testing"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg/chainhash"
	"github.com/dogecoinfoundation/libdogecoin-sub000/ecc"
	"github.com/dogecoinfoundation/libdogecoin-sub000/keyaddr"
	"github.com/dogecoinfoundation/libdogecoin-sub000/txscript"
	"github.com/dogecoinfoundation/libdogecoin-sub000/wire"
)

// TestSignAndVerifyP2PKH builds a representative two-input transaction
// and checks that SignInput produces a signature script whose embedded
// signature verifies against the spending public key under the exact
// sighash CalcSignatureHash computes.
func TestSignAndVerifyP2PKH(t *testing.T) {
	wif, err := keyaddr.DecodeWIF("ci5prbqz7jXyFPVWKkHhPq4a9N8Dag3TpeRfuqqC2Nfr7gSqx1fy", chaincfg.TestNetParams())
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	pub, err := wif.PubKey()
	if err != nil {
		t.Fatalf("PubKey: %v", err)
	}
	pkHash := chainhash.HashToHash160(pub)
	prevScript, err := txscript.NewPubKeyHashScript(pkHash[:])
	if err != nil {
		t.Fatalf("NewPubKeyHashScript: %v", err)
	}

	prevHash1, _ := chainhash.NewHashFromStr("b4455e00000000000000000000000000000000000000000000000000000000")
	prevHash2, _ := chainhash.NewHashFromStr("42113b00000000000000000000000000000000000000000000000000000000")

	tx := wire.NewMsgTx(1)
	tx.TxIn = []*wire.TxIn{
		{PreviousOutPoint: wire.OutPoint{Hash: *prevHash1, Index: 1}, Sequence: 0xffffffff},
		{PreviousOutPoint: wire.OutPoint{Hash: *prevHash2, Index: 1}, Sequence: 0xffffffff},
	}
	tx.TxOut = []*wire.TxOut{
		{Value: 500000000, PkScript: prevScript},
	}

	keys := []Key{{Priv: wif.PrivKey, Pub: pub, Compressed: wif.Compressed}}

	for idx := range tx.TxIn {
		result := SignInput(tx, idx, prevScript, SigHashAll, keys)
		if result != OK {
			t.Fatalf("SignInput(%d) = %s, want OK", idx, result)
		}
	}

	for idx := range tx.TxIn {
		sigScript := tx.TxIn[idx].SignatureScript
		pushes := parsePushes(sigScript)
		if len(pushes) != 2 {
			t.Fatalf("input %d: signature script has %d pushes, want 2", idx, len(pushes))
		}
		sig, sigPub := pushes[0], pushes[1]
		hashType := SigHashType(sig[len(sig)-1])
		der := sig[:len(sig)-1]
		hash, err := CalcSignatureHash(tx, idx, prevScript, hashType)
		if err != nil {
			t.Fatalf("CalcSignatureHash: %v", err)
		}
		if !ecc.DefaultContext.Verify(sigPub, hash[:], der) {
			t.Fatalf("input %d: signature does not verify", idx)
		}
	}
}

// TestSigHashSingleBug covers the intentionally preserved historical bug:
// SIGHASH_SINGLE against an input index with no matching output must return
// the constant hash of 1, not an error.
func TestSigHashSingleBug(t *testing.T) {
	tx := wire.NewMsgTx(1)
	tx.TxIn = []*wire.TxIn{
		{PreviousOutPoint: wire.OutPoint{Index: 0}, Sequence: 0xffffffff},
		{PreviousOutPoint: wire.OutPoint{Index: 1}, Sequence: 0xffffffff},
	}
	tx.TxOut = []*wire.TxOut{
		{Value: 1, PkScript: []byte{0x76, 0xa9}},
	}

	got, err := CalcSignatureHash(tx, 1, nil, SigHashSingle)
	if err != nil {
		t.Fatalf("CalcSignatureHash: %v", err)
	}
	want := chainhash.Hash{1}
	if got != want {
		t.Fatalf("CalcSignatureHash = %x, want %x", got, want)
	}
}

func TestInputIndexOutOfRange(t *testing.T) {
	tx := wire.NewMsgTx(1)
	if _, err := CalcSignatureHash(tx, 0, nil, SigHashAll); err != ErrInputIndexOutOfRange {
		t.Fatalf("CalcSignatureHash err = %v, want ErrInputIndexOutOfRange", err)
	}
}
