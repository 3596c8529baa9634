// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// ScriptClass identifies one of the standard script patterns recognized by
// Classify. Classification never executes the script; it is
// purely pattern matching over the raw bytes.
type ScriptClass byte

const (
	NonStandardTy ScriptClass = iota
	PubKeyTy
	PubKeyHashTy
	ScriptHashTy
	MultiSigTy
	WitnessV0PubKeyHashTy
	WitnessV0ScriptHashTy
)

var scriptClassNames = [...]string{
	NonStandardTy:         "nonstandard",
	PubKeyTy:              "pubkey",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	MultiSigTy:            "multisig",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
}

// String returns the human-readable name of the script class.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassNames) {
		return "invalid"
	}
	return scriptClassNames[t]
}

// ExtractPubKey extracts a compressed or uncompressed public key from script
// if it is a standard pay-to-pubkey script. It returns nil otherwise.
func ExtractPubKey(script []byte) []byte {
	// OP_DATA_33 <33-byte compressed pubkey> OP_CHECKSIG
	if len(script) == 35 &&
		script[0] == OP_DATA_33 &&
		script[34] == OP_CHECKSIG &&
		(script[1] == 0x02 || script[1] == 0x03) {
		return script[1:34]
	}
	// OP_DATA_65 <65-byte uncompressed pubkey> OP_CHECKSIG
	if len(script) == 67 &&
		script[0] == OP_DATA_65 &&
		script[66] == OP_CHECKSIG &&
		script[1] == 0x04 {
		return script[1:66]
	}
	return nil
}

// ExtractPubKeyHash extracts the 20-byte hash from script if it is a
// standard pay-to-pubkey-hash script:
//
//	OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
func ExtractPubKeyHash(script []byte) []byte {
	if len(script) == 25 &&
		script[0] == OP_DUP &&
		script[1] == OP_HASH160 &&
		script[2] == OP_DATA_20 &&
		script[23] == OP_EQUALVERIFY &&
		script[24] == OP_CHECKSIG {
		return script[3:23]
	}
	return nil
}

// ExtractScriptHash extracts the 20-byte hash from script if it is a
// standard pay-to-script-hash script:
//
//	OP_HASH160 <20-byte hash> OP_EQUAL
func ExtractScriptHash(script []byte) []byte {
	if len(script) == 23 &&
		script[0] == OP_HASH160 &&
		script[1] == OP_DATA_20 &&
		script[22] == OP_EQUAL {
		return script[2:22]
	}
	return nil
}

// MultiSigDetails holds the details extracted from a standard multisig
// script.
type MultiSigDetails struct {
	RequiredSigs int
	NumPubKeys   int
	PubKeys      [][]byte
	Valid        bool
}

// ExtractMultiSig extracts the required-signature count, the member public
// keys, and the total key count from script if it is a standard
// m-of-n multisig script:
//
//	OP_m <pubkey>... OP_n OP_CHECKMULTISIG
//
// with 1 <= m <= n <= 16. Details.Valid is false otherwise.
func ExtractMultiSig(script []byte) MultiSigDetails {
	var d MultiSigDetails
	if len(script) < 1+1+1+1 || script[len(script)-1] != OP_CHECKMULTISIG {
		return d
	}
	if !IsSmallInt(script[0]) {
		return d
	}
	m := AsSmallInt(script[0])

	pos := 1
	var pubKeys [][]byte
	for pos < len(script)-2 {
		pk, next, ok := extractDataPush(script, pos)
		if !ok {
			break
		}
		pubKeys = append(pubKeys, pk)
		pos = next
	}

	if pos != len(script)-2 || !IsSmallInt(script[pos]) {
		return d
	}
	n := AsSmallInt(script[pos])

	if n != len(pubKeys) || m < 1 || n < m || n > 16 {
		return d
	}

	d.RequiredSigs = m
	d.NumPubKeys = n
	d.PubKeys = pubKeys
	d.Valid = true
	return d
}

// extractDataPush returns the data pushed by the canonical push opcode at
// script[pos] and the offset immediately following it, or ok=false if
// script[pos] is not a direct data push (OP_DATA_1..OP_DATA_75).
func extractDataPush(script []byte, pos int) (data []byte, next int, ok bool) {
	if pos >= len(script) {
		return nil, pos, false
	}
	op := script[pos]
	if op < 1 || op > 75 {
		return nil, pos, false
	}
	n := int(op)
	if pos+1+n > len(script) {
		return nil, pos, false
	}
	return script[pos+1 : pos+1+n], pos + 1 + n, true
}

// ExtractWitnessV0PubKeyHash extracts the 20-byte hash from script if it is
// a standard version-0 witness pay-to-pubkey-hash script: OP_0 <20-byte
// push>. Witness scripts are only recognized here, never signed.
func ExtractWitnessV0PubKeyHash(script []byte) []byte {
	if len(script) == 22 && script[0] == OP_0 && script[1] == OP_DATA_20 {
		return script[2:22]
	}
	return nil
}

// ExtractWitnessV0ScriptHash extracts the 32-byte hash from script if it is
// a standard version-0 witness pay-to-script-hash script: OP_0 <32-byte
// push>.
func ExtractWitnessV0ScriptHash(script []byte) []byte {
	if len(script) == 34 && script[0] == OP_0 && script[1] == OP_DATA_32 {
		return script[2:34]
	}
	return nil
}

// Classify returns the ScriptClass that best describes script, checked
// against the pattern list below. It returns NonStandardTy for anything
// that matches none of the recognized patterns.
func Classify(script []byte) ScriptClass {
	switch {
	case ExtractPubKeyHash(script) != nil:
		return PubKeyHashTy
	case ExtractScriptHash(script) != nil:
		return ScriptHashTy
	case ExtractPubKey(script) != nil:
		return PubKeyTy
	case ExtractMultiSig(script).Valid:
		return MultiSigTy
	case ExtractWitnessV0PubKeyHash(script) != nil:
		return WitnessV0PubKeyHashTy
	case ExtractWitnessV0ScriptHash(script) != nil:
		return WitnessV0ScriptHashTy
	default:
		return NonStandardTy
	}
}
