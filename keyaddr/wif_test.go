// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyaddr

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/ecc"
)

func TestWIFRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		var priv [32]byte
		for {
			if _, err := rand.Read(priv[:]); err != nil {
				t.Fatalf("rand.Read: %v", err)
			}
			if ecc.DefaultContext.VerifyPrivateKey(priv[:]) {
				break
			}
		}
		encoded, err := EncodeWIF(priv[:], true, chaincfg.MainNetParams())
		if err != nil {
			t.Fatalf("EncodeWIF: %v", err)
		}
		decoded, err := DecodeWIF(encoded, chaincfg.MainNetParams())
		if err != nil {
			t.Fatalf("DecodeWIF: %v", err)
		}
		if hex.EncodeToString(decoded.PrivKey) != hex.EncodeToString(priv[:]) {
			t.Fatalf("round trip mismatch: got %x, want %x", decoded.PrivKey, priv)
		}
	}
}

// TestP2PKHAddressDerivation is .
func TestP2PKHAddressDerivation(t *testing.T) {
	const wif = "ci5prbqz7jXyFPVWKkHhPq4a9N8Dag3TpeRfuqqC2Nfr7gSqx1fy"
	const wantPubKeyHex = "031dc1e49cfa6ae15edd6fa871a91b1f768e6f6cab06bf7a87ac0d8beb9229075b"
	const wantAddr = "noxKJyGPugPRN4wqvrwsrtYXuQCk7yQEsy"
	const wantScript = "76a914d8c43e6f68ca4ea1e9b93da2d1e3a95118fa4a7c88ac"

	net := chaincfg.TestNetParams()
	decoded, err := DecodeWIF(wif, net)
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	pub, err := decoded.PubKey()
	if err != nil {
		t.Fatalf("PubKey: %v", err)
	}
	if got := hex.EncodeToString(pub); got != wantPubKeyHex {
		t.Fatalf("pubkey = %s, want %s", got, wantPubKeyHex)
	}
	addr := PubKeyToP2PKHAddress(pub, net)
	if addr != wantAddr {
		t.Fatalf("address = %s, want %s", addr, wantAddr)
	}
	script, err := PayToAddrScript(addr, net)
	if err != nil {
		t.Fatalf("PayToAddrScript: %v", err)
	}
	if got := hex.EncodeToString(script); got != wantScript {
		t.Fatalf("script = %s, want %s", got, wantScript)
	}
}
