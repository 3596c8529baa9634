// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/binary"
	"errors"
)

// ErrScriptTooLong indicates a built script exceeded MaxScriptSize.
var ErrScriptTooLong = errors.New("txscript: script exceeds MaxScriptSize")

// ErrTooManyPubKeys indicates MultisigScript was asked to build a multisig
// script with more than 16 member keys.
var ErrTooManyPubKeys = errors.New("txscript: too many public keys for multisig script")

// ErrInvalidMultisigThreshold indicates an m-of-n multisig request did not
// satisfy 1 <= m <= n.
var ErrInvalidMultisigThreshold = errors.New("txscript: invalid multisig threshold")

// ScriptBuilder accumulates opcodes and canonically encoded data pushes to
// build a script using btcd/dcrd's incremental builder pattern, without
// script-execution-time validation: this core scopes script execution out
// entirely.
type ScriptBuilder struct {
	script []byte
	err    error
}

// NewScriptBuilder returns a new, empty ScriptBuilder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{script: make([]byte, 0, 32)}
}

// AddOp appends a single opcode.
func (b *ScriptBuilder) AddOp(op byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	b.script = append(b.script, op)
	return b.checkLen()
}

// AddInt64 appends the canonical encoding of a small integer: OP_0 for 0,
// OP_1NEGATE for -1, OP_1..OP_16 for 1..16, or a minimal data push
// otherwise.
func (b *ScriptBuilder) AddInt64(n int64) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	if n == 0 {
		return b.AddOp(OP_0)
	}
	if n == -1 || (n >= 1 && n <= 16) {
		return b.AddOp(smallIntOpcode(int(n)))
	}
	return b.AddData(scriptNum(n))
}

// scriptNum encodes n as a minimal little-endian sign-magnitude byte
// string, the canonical encoding for arbitrary script integers.
func scriptNum(n int64) []byte {
	if n == 0 {
		return nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var result []byte
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}
	if result[len(result)-1]&0x80 != 0 {
		if neg {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if neg {
		result[len(result)-1] |= 0x80
	}
	return result
}

// AddData appends the canonical push encoding of data: a raw
// length byte for 1..75 bytes, OP_PUSHDATA1/2/4 (little-endian length) for
// longer pushes, or OP_0 for an empty push.
func (b *ScriptBuilder) AddData(data []byte) *ScriptBuilder {
	if b.err != nil {
		return b
	}
	n := len(data)
	switch {
	case n == 0:
		b.script = append(b.script, OP_0)
	case n <= 75:
		b.script = append(b.script, byte(n))
		b.script = append(b.script, data...)
	case n <= 0xff:
		b.script = append(b.script, OP_PUSHDATA1, byte(n))
		b.script = append(b.script, data...)
	case n <= 0xffff:
		var lenBuf [2]byte
		binary.LittleEndian.PutUint16(lenBuf[:], uint16(n))
		b.script = append(b.script, OP_PUSHDATA2)
		b.script = append(b.script, lenBuf[:]...)
		b.script = append(b.script, data...)
	default:
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(n))
		b.script = append(b.script, OP_PUSHDATA4)
		b.script = append(b.script, lenBuf[:]...)
		b.script = append(b.script, data...)
	}
	return b.checkLen()
}

func (b *ScriptBuilder) checkLen() *ScriptBuilder {
	if len(b.script) > MaxScriptSize {
		b.err = ErrScriptTooLong
	}
	return b
}

// Script returns the built script, or an error if any step overflowed
// MaxScriptSize.
func (b *ScriptBuilder) Script() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.script, nil
}

// NewPubKeyHashScript builds a standard pay-to-pubkey-hash output script for
// the given 20-byte hash160.
func NewPubKeyHashScript(pkHash []byte) ([]byte, error) {
	return NewScriptBuilder().
		AddOp(OP_DUP).
		AddOp(OP_HASH160).
		AddData(pkHash).
		AddOp(OP_EQUALVERIFY).
		AddOp(OP_CHECKSIG).
		Script()
}

// NewScriptHashScript builds a standard pay-to-script-hash output script for
// the given 20-byte hash160.
func NewScriptHashScript(scriptHash []byte) ([]byte, error) {
	return NewScriptBuilder().
		AddOp(OP_HASH160).
		AddData(scriptHash).
		AddOp(OP_EQUAL).
		Script()
}

// NewPubKeyScript builds a standard pay-to-pubkey output script for the
// given (compressed or uncompressed) public key.
func NewPubKeyScript(pubKey []byte) ([]byte, error) {
	return NewScriptBuilder().AddData(pubKey).AddOp(OP_CHECKSIG).Script()
}

// MultisigScript builds a standard m-of-n CHECKMULTISIG script for the given
// ordered set of member public keys,  (1 <= m <= n <= 16).
func MultisigScript(m int, pubKeys [][]byte) ([]byte, error) {
	n := len(pubKeys)
	if n > 16 {
		return nil, ErrTooManyPubKeys
	}
	if m < 1 || m > n {
		return nil, ErrInvalidMultisigThreshold
	}
	builder := NewScriptBuilder().AddInt64(int64(m))
	for _, pk := range pubKeys {
		builder.AddData(pk)
	}
	builder.AddInt64(int64(n)).AddOp(OP_CHECKMULTISIG)
	return builder.Script()
}

// RemoveOpcodeByData strips OP_CODESEPARATOR and, for backward compatibility
// with the legacy sighash preimage rule, leaves all other opcodes
// untouched. It returns a new slice; script is not modified.
func RemoveOpcodeByData(script []byte) []byte {
	out := make([]byte, 0, len(script))
	i := 0
	for i < len(script) {
		op := script[i]
		switch {
		case op == OP_CODESEPARATOR:
			i++
		case op >= 1 && op <= 75:
			end := i + 1 + int(op)
			if end > len(script) {
				end = len(script)
			}
			out = append(out, script[i:end]...)
			i = end
		case op == OP_PUSHDATA1:
			if i+2 > len(script) {
				out = append(out, script[i:]...)
				i = len(script)
				break
			}
			n := int(script[i+1])
			end := i + 2 + n
			if end > len(script) {
				end = len(script)
			}
			out = append(out, script[i:end]...)
			i = end
		case op == OP_PUSHDATA2:
			if i+3 > len(script) {
				out = append(out, script[i:]...)
				i = len(script)
				break
			}
			n := int(binary.LittleEndian.Uint16(script[i+1 : i+3]))
			end := i + 3 + n
			if end > len(script) {
				end = len(script)
			}
			out = append(out, script[i:end]...)
			i = end
		case op == OP_PUSHDATA4:
			if i+5 > len(script) {
				out = append(out, script[i:]...)
				i = len(script)
				break
			}
			n := int(binary.LittleEndian.Uint32(script[i+1 : i+5]))
			end := i + 5 + n
			if end > len(script) {
				end = len(script)
			}
			out = append(out, script[i:end]...)
			i = end
		default:
			out = append(out, op)
			i++
		}
	}
	return out
}
