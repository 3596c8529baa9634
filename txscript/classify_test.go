// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex literal %q: %v", s, err)
	}
	return b
}

func TestClassifyPubKeyHash(t *testing.T) {
	pkHash := mustHex(t, "d8c43e6f68ca4ea1e9b93da2d1e3a95118fa4a7c")
	script, err := NewPubKeyHashScript(pkHash)
	if err != nil {
		t.Fatalf("NewPubKeyHashScript: %v", err)
	}
	want := mustHex(t, "76a914d8c43e6f68ca4ea1e9b93da2d1e3a95118fa4a7c88ac")
	if !bytes.Equal(script, want) {
		t.Fatalf("script = %x, want %x", script, want)
	}
	if got := Classify(script); got != PubKeyHashTy {
		t.Fatalf("Classify() = %v, want %v", got, PubKeyHashTy)
	}
	if got := ExtractPubKeyHash(script); !bytes.Equal(got, pkHash) {
		t.Fatalf("ExtractPubKeyHash() = %x, want %x", got, pkHash)
	}
}

func TestClassifyScriptHash(t *testing.T) {
	h := mustHex(t, "0102030405060708090a0b0c0d0e0f1011121314")
	script, err := NewScriptHashScript(h)
	if err != nil {
		t.Fatalf("NewScriptHashScript: %v", err)
	}
	if got := Classify(script); got != ScriptHashTy {
		t.Fatalf("Classify() = %v, want %v", got, ScriptHashTy)
	}
	if got := ExtractScriptHash(script); !bytes.Equal(got, h) {
		t.Fatalf("ExtractScriptHash() = %x, want %x", got, h)
	}
}

func TestClassifyMultisig(t *testing.T) {
	pk1 := mustHex(t, "031dc1e49cfa6ae15edd6fa871a91b1f768e6f6cab06bf7a87ac0d8beb9229075b")
	pk2 := mustHex(t, "02c5a26b5a4e1c1636a3e7d7d5b3e6b7f7a4cf3f0a9f7c0f0f0f0f0f0f0f0f0f0f")
	script, err := MultisigScript(1, [][]byte{pk1, pk2})
	if err != nil {
		t.Fatalf("MultisigScript: %v", err)
	}
	if got := Classify(script); got != MultiSigTy {
		t.Fatalf("Classify() = %v, want %v", got, MultiSigTy)
	}
	details := ExtractMultiSig(script)
	if !details.Valid || details.RequiredSigs != 1 || details.NumPubKeys != 2 {
		t.Fatalf("ExtractMultiSig() = %+v", details)
	}
}

func TestClassifyWitnessV0(t *testing.T) {
	pkHash := mustHex(t, "0102030405060708090a0b0c0d0e0f1011121314")
	script, err := NewScriptBuilder().AddOp(OP_0).AddData(pkHash).Script()
	if err != nil {
		t.Fatalf("build witness script: %v", err)
	}
	if got := Classify(script); got != WitnessV0PubKeyHashTy {
		t.Fatalf("Classify() = %v, want %v", got, WitnessV0PubKeyHashTy)
	}
}

func TestClassifyNonStandard(t *testing.T) {
	script := mustHex(t, "6a0648656c6c6f")
	if got := Classify(script); got != NonStandardTy {
		t.Fatalf("Classify() = %v, want %v", got, NonStandardTy)
	}
}

func TestRemoveOpcodeByData(t *testing.T) {
	script := NewScriptBuilder().AddData([]byte("abc")).AddOp(OP_CODESEPARATOR).AddOp(OP_CHECKSIG)
	built, err := script.Script()
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	stripped := RemoveOpcodeByData(built)
	want := NewScriptBuilder()
	want.AddData([]byte("abc")).AddOp(OP_CHECKSIG)
	wantScript, _ := want.Script()
	if !bytes.Equal(stripped, wantScript) {
		t.Fatalf("RemoveOpcodeByData() = %x, want %x", stripped, wantScript)
	}
}
