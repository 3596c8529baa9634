// Copyright (c) 2018-2021 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// regNetParams holds the singleton regression test network parameters.
// Unlike mainnet/testnet, regtest has no DNS seeds: peers are always
// supplied explicitly by the embedder, since connmgr's "explicit IP list,
// else DNS seeds" sourcing rule has nothing to fall back to here.
var regNetParams = register(&Params{
	Name:        "regtest",
	Net:         0xfabfb5da,
	DefaultPort: "18444",

	DNSSeeds: nil,

	GenesisHash: mustHashFromStr("3d2160a3b5dc4a9d62e7e66a295f70313ac808440ef7400d6c0772171ce973a5"),

	GenesisHeader: mustHeader80(
		"0100000000000000000000000000000000000000000000000000000000000000000000005b2a3f53f605d62c53e65533dac6925e3d74afa5a4b459745c36d42d0ed26a96dae5494dffff7f2000000000",
	),

	PubKeyHashAddrID: 0x6f,
	ScriptHashAddrID: 0xc4,
	PrivateKeyID:     0xef,

	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},

	HDCoinType: 1,
})

// RegressionNetParams returns the network parameters for the regression
// test network, used for local integration testing.
func RegressionNetParams() *Params {
	return regNetParams
}
