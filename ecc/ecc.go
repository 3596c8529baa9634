// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ecc is a thin, stable wrapper over the secp256k1 implementation,
// providing sign/verify, pubkey derivation, DER/compact conversion,
// signature recovery, and the tweak-addition primitives BIP32 child
// derivation needs.
//
// Unlike the C reference implementation's process-wide ecc_start/ecc_stop
// global context, Context here is a small
// stateless value; DefaultContext is offered purely as a convenience for
// callers that don't need an isolated instance.
package ecc

import (
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Errors returned by this package, matching the InvalidKey/SignatureFailed
// error taxonomy.
var (
	ErrInvalidPrivateKey = errors.New("ecc: invalid private key")
	ErrInvalidPublicKey  = errors.New("ecc: invalid public key")
	ErrInvalidSignature  = errors.New("ecc: invalid signature encoding")
	ErrRecoveryFailed    = errors.New("ecc: public key recovery failed")
)

// PrivKeyLen and the two valid PubKey lengths, as used throughout the key
// and script subsystems.
const (
	PrivKeyLen          = 32
	CompressedPubKeyLen = 33
	UncompressedPubKeyLen = 65
)

// Context is a handle for ECC operations. It carries no mutable process-wide
// state; every method is safe for concurrent use by multiple goroutines.
type Context struct{}

// NewContext constructs a Context. Calling it is always safe and cheap;
// it exists mainly so callers have an explicit value to thread through
// signing and derivation APIs instead of relying on hidden global state.
func NewContext() *Context { return &Context{} }

// DefaultContext is a convenience singleton for callers that don't need a
// distinct Context value.
var DefaultContext = NewContext()

// VerifyPrivateKey reports whether priv is a valid secp256k1 scalar
// (0 < k < n).
func (c *Context) VerifyPrivateKey(priv []byte) bool {
	if len(priv) != PrivKeyLen {
		return false
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(priv)
	return !overflow && !scalar.IsZero()
}

// GetPubKey derives the public key for a private key, serialized compressed
// or uncompressed.
func (c *Context) GetPubKey(priv []byte, compressed bool) ([]byte, error) {
	if !c.VerifyPrivateKey(priv) {
		return nil, ErrInvalidPrivateKey
	}
	key := secp256k1.PrivKeyFromBytes(priv)
	defer key.Zero()
	if compressed {
		return key.PubKey().SerializeCompressed(), nil
	}
	return key.PubKey().SerializeUncompressed(), nil
}

// VerifyPubKey reports whether pub is a validly encoded point on the curve.
func (c *Context) VerifyPubKey(pub []byte) bool {
	_, err := secp256k1.ParsePubKey(pub)
	return err == nil
}

// Sign produces a low-S-normalized DER-encoded ECDSA signature over hash
// (which must be a 32-byte digest) using priv.
func (c *Context) Sign(priv, hash []byte) ([]byte, error) {
	if !c.VerifyPrivateKey(priv) {
		return nil, ErrInvalidPrivateKey
	}
	key := secp256k1.PrivKeyFromBytes(priv)
	defer key.Zero()
	sig := ecdsa.Sign(key, hash)
	return sig.Serialize(), nil
}

// SignCompact produces a 65-byte compact signature (recovery id || r || s)
// usable with RecoverPubKey.
func (c *Context) SignCompact(priv, hash []byte, compressedPub bool) ([]byte, error) {
	if !c.VerifyPrivateKey(priv) {
		return nil, ErrInvalidPrivateKey
	}
	key := secp256k1.PrivKeyFromBytes(priv)
	defer key.Zero()
	return ecdsa.SignCompact(key, hash, compressedPub), nil
}

// Verify reports whether derSig is a valid signature over hash by the given
// public key.
func (c *Context) Verify(pub, hash, derSig []byte) bool {
	pk, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(derSig)
	if err != nil {
		return false
	}
	return sig.Verify(hash, pk)
}

// CompactToDER normalizes a 64-byte compact (r||s) or 65-byte
// (recid||r||s) signature to low-S DER form.
func (c *Context) CompactToDER(compact []byte) ([]byte, error) {
	var r, s secp256k1.ModNScalar
	var body []byte
	switch len(compact) {
	case 64:
		body = compact
	case 65:
		body = compact[1:]
	default:
		return nil, ErrInvalidSignature
	}
	if r.SetByteSlice(body[:32]) {
		return nil, ErrInvalidSignature
	}
	if s.SetByteSlice(body[32:64]) {
		return nil, ErrInvalidSignature
	}
	sig := ecdsa.NewSignature(&r, &s)
	return sig.Serialize(), nil
}

// DERToCompact converts a DER signature to its 64-byte compact (r||s) form.
func (c *Context) DERToCompact(der []byte) ([]byte, error) {
	sig, err := ecdsa.ParseDERSignature(der)
	if err != nil {
		return nil, ErrInvalidSignature
	}
	out := make([]byte, 64)
	rBytes := sig.R().Bytes()
	sBytes := sig.S().Bytes()
	copy(out[32-len(rBytes):32], rBytes[:])
	copy(out[64-len(sBytes):64], sBytes[:])
	return out, nil
}

// RecoverPubKey recovers the public key used to produce a compact signature
// over hash, given the recovery id embedded in the signature's first byte
// (as produced by SignCompact).
func (c *Context) RecoverPubKey(compact, hash []byte) ([]byte, bool, error) {
	pub, compressed, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, false, ErrRecoveryFailed
	}
	if compressed {
		return pub.SerializeCompressed(), true, nil
	}
	return pub.SerializeUncompressed(), false, nil
}

// TweakPrivateAdd computes (priv + tweak) mod n, used for BIP32 hardened
// and non-hardened private child key derivation.
func (c *Context) TweakPrivateAdd(priv, tweak []byte) ([]byte, error) {
	var kScalar, tScalar secp256k1.ModNScalar
	if kScalar.SetByteSlice(priv) {
		return nil, ErrInvalidPrivateKey
	}
	if tScalar.SetByteSlice(tweak) {
		return nil, errors.New("ecc: invalid tweak")
	}
	kScalar.Add(&tScalar)
	if kScalar.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	out := kScalar.Bytes()
	return out[:], nil
}

// TweakPublicAdd computes pub + tweak*G, used for BIP32 public child
// derivation (CKDpub).
func (c *Context) TweakPublicAdd(pub, tweak []byte) ([]byte, error) {
	parentKey, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	var tScalar secp256k1.ModNScalar
	if tScalar.SetByteSlice(tweak) {
		return nil, errors.New("ecc: invalid tweak")
	}

	var tweakPoint, parentPoint, sum secp256k1.JacobianPoint
	tweakPub := secp256k1.NewPrivateKey(&tScalar).PubKey()
	tweakPub.AsJacobian(&tweakPoint)
	parentKey.AsJacobian(&parentPoint)
	secp256k1.AddNonConst(&tweakPoint, &parentPoint, &sum)
	sum.ToAffine()
	childKey := secp256k1.NewPublicKey(&sum.X, &sum.Y)
	return childKey.SerializeCompressed(), nil
}
