// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txauthor

import (
	"testing"

	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/keyaddr"
)

func TestParseKoinu(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"5", 500000000},
		{"0.00226", 226000},
		{"0", 0},
		{"1.1", 110000000},
	}
	for _, c := range cases {
		got, err := parseKoinu(c.in)
		if err != nil {
			t.Fatalf("parseKoinu(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parseKoinu(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

// TestFinalizeScenario4 builds a representative funding transaction: two
// inputs, one 5 DOGE output and a 0.00226 fee. The inputs total exactly
// the output plus the fee, so Finalize adds no change output.
func TestFinalizeScenario4(t *testing.T) {
	net := chaincfg.TestNetParams()
	reg := NewRegistry(net)
	id := reg.Start()

	wif, err := keyaddr.DecodeWIF("ci5prbqz7jXyFPVWKkHhPq4a9N8Dag3TpeRfuqqC2Nfr7gSqx1fy", net)
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	pub, err := wif.PubKey()
	if err != nil {
		t.Fatalf("PubKey: %v", err)
	}
	spentScript, err := keyaddr.PayToAddrScript(keyaddr.PubKeyToP2PKHAddress(pub, net), net)
	if err != nil {
		t.Fatalf("PayToAddrScript: %v", err)
	}

	if err := reg.AddUTXO(id, "b4455e0000000000000000000000000000000000000000000000000000006074", 1, spentScript); err != nil {
		t.Fatalf("AddUTXO 1: %v", err)
	}
	if err := reg.AddUTXO(id, "42113b000000000000000000000000000000000000000000000000000016e2", 1, spentScript); err != nil {
		t.Fatalf("AddUTXO 2: %v", err)
	}

	if err := reg.AddOutput(id, "noxKJyGPugPRN4wqvrwsrtYXuQCk7yQEsy", "5"); err != nil {
		t.Fatalf("AddOutput: %v", err)
	}

	hexTx, err := reg.Finalize(id, "noxKJyGPugPRN4wqvrwsrtYXuQCk7yQEsy", "0.00226", "5.00226")
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if hexTx == "" {
		t.Fatal("Finalize returned empty hex")
	}

	scriptHex := ""
	for _, b := range spentScript {
		scriptHex += string("0123456789abcdef"[b>>4]) + string("0123456789abcdef"[b&0xf])
	}
	if err := reg.Sign(id, scriptHex, wif); err != nil {
		t.Fatalf("Sign: %v", err)
	}

	tx, ok := reg.Get(id)
	if !ok {
		t.Fatal("Get: handle missing")
	}
	for i, in := range tx.TxIn {
		if len(in.SignatureScript) == 0 {
			t.Fatalf("input %d: not signed", i)
		}
	}
}

func TestFinalizeNotEnoughFunds(t *testing.T) {
	net := chaincfg.TestNetParams()
	reg := NewRegistry(net)
	id := reg.Start()
	if err := reg.AddOutput(id, "noxKJyGPugPRN4wqvrwsrtYXuQCk7yQEsy", "5"); err != nil {
		t.Fatalf("AddOutput: %v", err)
	}
	_, err := reg.Finalize(id, "noxKJyGPugPRN4wqvrwsrtYXuQCk7yQEsy", "0.001", "1")
	if err != ErrNotEnoughFunds {
		t.Fatalf("Finalize err = %v, want ErrNotEnoughFunds", err)
	}
}

func TestUnknownHandle(t *testing.T) {
	net := chaincfg.TestNetParams()
	reg := NewRegistry(net)
	if err := reg.AddOutput(999, "noxKJyGPugPRN4wqvrwsrtYXuQCk7yQEsy", "1"); err != ErrUnknownHandle {
		t.Fatalf("AddOutput err = %v, want ErrUnknownHandle", err)
	}
}
