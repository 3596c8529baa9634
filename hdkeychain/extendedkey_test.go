// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkeychain

// References:
//   [BIP32]: BIP0032 - Hierarchical Deterministic Wallets
//   https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// TestNewMasterAndStringRoundTrip exercises 's universal
// invariant that an extended key round-trips losslessly through its
// Base58Check serialization.
func TestNewMasterAndStringRoundTrip(t *testing.T) {
	seed := mustHex("000102030405060708090a0b0c0d0e0f")
	net := chaincfg.MainNetParams()

	master, err := NewMaster(seed, net)
	if err != nil {
		t.Fatalf("NewMaster: %v", err)
	}
	if !master.IsPrivate() {
		t.Fatalf("master key should be private")
	}

	xprv := master.String()
	parsed, err := NewKeyFromString(xprv, net)
	if err != nil {
		t.Fatalf("NewKeyFromString: %v", err)
	}
	if !bytes.Equal(parsed.SerializedPrivKey(), master.SerializedPrivKey()) {
		t.Errorf("round-tripped private key mismatch")
	}
	if !bytes.Equal(parsed.SerializedPubKey(), master.SerializedPubKey()) {
		t.Errorf("round-tripped public key mismatch")
	}
}

// TestFingerprintInvariant exercises the BIP32 fingerprint invariant: for
// every derived node, fingerprint(parent) == hash160(parent.pub)[0:4], and
// the child's stored ParentFingerprint must equal that value.
func TestFingerprintInvariant(t *testing.T) {
	seed := mustHex("000102030405060708090a0b0c0d0e0f")
	net := chaincfg.MainNetParams()

	master, err := NewMaster(seed, net)
	if err != nil {
		t.Fatalf("NewMaster: %v", err)
	}

	child, err := master.Child(HardenedKeyStart + 0)
	if err != nil {
		t.Fatalf("Child(0'): %v", err)
	}

	if child.ParentFingerprint() != master.Fingerprint() {
		t.Errorf("child.ParentFingerprint() = %x, want %x",
			child.ParentFingerprint(), master.Fingerprint())
	}
}

// TestCKDPrivPubAgree exercises CKDpriv vs CKDpub agreement for a
// non-hardened child.
func TestCKDPrivPubAgree(t *testing.T) {
	seed := mustHex("fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a2")
	net := chaincfg.MainNetParams()

	master, err := NewMaster(seed, net)
	if err != nil {
		t.Fatalf("NewMaster: %v", err)
	}

	childPriv, err := master.Child(0)
	if err != nil {
		t.Fatalf("Child(0): %v", err)
	}

	neutered, err := master.Neuter(net)
	if err != nil {
		t.Fatalf("Neuter: %v", err)
	}
	childPub, err := neutered.Child(0)
	if err != nil {
		t.Fatalf("Child(0) on neutered key: %v", err)
	}

	if !bytes.Equal(childPriv.SerializedPubKey(), childPub.SerializedPubKey()) {
		t.Errorf("CKDpriv and CKDpub diverged: %x != %x",
			childPriv.SerializedPubKey(), childPub.SerializedPubKey())
	}
}

// TestHardenedChildRequiresPrivateParent exercises the BIP32 HDNode
// invariant: hardened derivation from a neutered node must fail.
func TestHardenedChildRequiresPrivateParent(t *testing.T) {
	seed := mustHex("000102030405060708090a0b0c0d0e0f")
	net := chaincfg.MainNetParams()

	master, err := NewMaster(seed, net)
	if err != nil {
		t.Fatalf("NewMaster: %v", err)
	}
	neutered, err := master.Neuter(net)
	if err != nil {
		t.Fatalf("Neuter: %v", err)
	}
	if _, err := neutered.Child(HardenedKeyStart); err != ErrDeriveHardFromPublic {
		t.Errorf("Child(hardened) on neutered key err = %v, want ErrDeriveHardFromPublic", err)
	}
}

func TestNewMasterRejectsBadSeedLength(t *testing.T) {
	net := chaincfg.MainNetParams()
	if _, err := NewMaster(make([]byte, 4), net); err != ErrInvalidSeedLen {
		t.Errorf("NewMaster(short seed) err = %v, want ErrInvalidSeedLen", err)
	}
}
