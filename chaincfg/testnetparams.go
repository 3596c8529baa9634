// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// testNetParams holds the singleton test network parameters.
var testNetParams = register(&Params{
	Name:        "testnet",
	Net:         0xfcc1b7dc,
	DefaultPort: "44556",

	DNSSeeds: []DNSSeed{
		{"testseed.jrn.me.uk", true},
	},

	GenesisHash: mustHashFromStr("bb0a78264637406b6360aad926284d544d7049f45a9775d51d0bb63dd72aed9"),

	// GenesisHeader mirrors the mainnet genesis transaction bytes with the
	// network-specific timestamp/bits/nonce substituted; testnet shares
	// mainnet's coinbase script and therefore its merkle root.
	GenesisHeader: mustHeader80(
		"0100000000000000000000000000000000000000000000000000000000000000000000005b2a3f53f605d62c53e65533dac6925e3d74afa5a4b459745c36d42d0ed26a96dae5494dffff0f1ec549fd00",
	),

	PubKeyHashAddrID: 0x71,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xf1,

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},

	HDCoinType: 1,
})

// TestNetParams returns the network parameters for the Dogecoin test
// network.
func TestNetParams() *Params {
	return testNetParams
}
