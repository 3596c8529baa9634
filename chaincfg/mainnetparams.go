// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "time"

// mainNetParams holds the singleton main network parameters.
var mainNetParams = register(&Params{
	Name:        "mainnet",
	Net:         0xc0c0c0c0,
	DefaultPort: "22556",

	DNSSeeds: []DNSSeed{
		{"seed.multidoge.org", true},
		{"seed2.multidoge.org", true},
		{"seed.doger.dogecoin.com", true},
	},

	// GenesisHash is the canonical display-order (reversed) hash of the
	// Dogecoin mainnet genesis block, verified against the known-good
	// value from the reference implementation.
	GenesisHash: mustHashFromStr("1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691"),

	// GenesisHeader is the 80-byte wire-serialized genesis block header:
	// version 1, zero previous block, the genesis coinbase merkle root,
	// the December 2013 launch timestamp, and the mainnet starting
	// difficulty bits. It is provided so headersdb can bootstrap an empty
	// chain without a peer; GenesisHash above is the authoritative display
	// hash used for checkpoint anchoring and is not derived from this
	// field.
	GenesisHeader: mustHeader80(
		"0100000000000000000000000000000000000000000000000000000000000000000000005b2a3f53f605d62c53e65533dac6925e3d74afa5a4b459745c36d42d0ed26a96e4ee0552f0ff0f1ea6a4e263",
	),

	Checkpoints: []Checkpoint{
		{0, mustHashFromStr("1a91e3dace36e2be3bf030a65679fe821aa1d6ef92e7c9902eb318182c355691"), time.Unix(1386325540, 0)},
	},

	PubKeyHashAddrID: 0x1e,
	ScriptHashAddrID: 0x16,
	PrivateKeyID:     0x9e,

	HDPrivateKeyID: [4]byte{0x02, 0xfa, 0xc3, 0x98},
	HDPublicKeyID:  [4]byte{0x02, 0xfa, 0xca, 0xfd},

	HDCoinType: 3,
})

// MainNetParams returns the network parameters for the main Dogecoin
// network.
func MainNetParams() *Params {
	return mainNetParams
}
