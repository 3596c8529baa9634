// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hdkeychain implements a BIP0032 hierarchical deterministic
// extended key. An ExtendedKey is serialized to a
// 111-character Base58Check xpub/xprv using the chain-specific magics in
// chaincfg.Params.
package hdkeychain

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/dogecoinfoundation/libdogecoin-sub000/base58"
	"github.com/dogecoinfoundation/libdogecoin-sub000/chaincfg"
	"github.com/dogecoinfoundation/libdogecoin-sub000/ecc"
	"github.com/dogecoinfoundation/libdogecoin-sub000/hashutil"
)

// Errors returned by this package.
var (
	ErrDeriveHardFromPublic = errors.New("hdkeychain: cannot derive a hardened key from a neutered (public-only) extended key")
	ErrInvalidChild         = errors.New("hdkeychain: invalid child (resulting key is zero or off-curve)")
	ErrNotPrivExtKey        = errors.New("hdkeychain: extended key is neutered, no private key available")
	ErrInvalidSeedLen       = errors.New("hdkeychain: invalid seed length")
	ErrBadChecksum          = errors.New("hdkeychain: bad extended key checksum")
	ErrInvalidExtKeyLen     = errors.New("hdkeychain: invalid extended key length")
	ErrUnknownNetwork       = errors.New("hdkeychain: unrecognized extended key network magic")
)

// Minimum and maximum lengths, in bytes, of a BIP39/BIP32 seed, and the
// recommended length.
const (
	MinSeedBytes        = 16
	MaxSeedBytes        = 64
	RecommendedSeedLen  = 32
	serializedKeyLen    = 78
	HardenedKeyStart    = uint32(1 << 31)
	pubKeyCompressedLen = 33
)

// ExtendedKey is a BIP0032-style HDNode: a depth, parent fingerprint, child
// number, chain code, and either a private key (with its derived public
// key) or just a public key if the node has been neutered.
type ExtendedKey struct {
	privKey     []byte // nil if neutered
	pubKey      []byte // always populated, compressed
	chainCode   []byte
	depth       uint8
	parentFP    [4]byte
	childNum    uint32
	version     [4]byte
	isPrivate   bool
	ecdsaCtx    *ecc.Context
}

// GenerateSeed returns a cryptographically random seed suitable for use with
// NewMaster. length must be in [MinSeedBytes, MaxSeedBytes].
func GenerateSeed(length uint8) ([]byte, error) {
	if length < MinSeedBytes || length > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// masterKeyHMACSalt is the fixed HMAC key BIP0032 uses to derive a master
// node from a seed.
var masterKeyHMACSalt = []byte("Bitcoin seed")

// NewMaster creates a new master node (the HD tree root) for the given
// network from a seed, per BIP0032: I = HMAC-SHA512("Bitcoin seed", seed);
// the master private key is IL, the master chain code is IR.
func NewMaster(seed []byte, net *chaincfg.Params) (*ExtendedKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, ErrInvalidSeedLen
	}

	ctx := ecc.DefaultContext
	lr := hashutil.HMACSha512(masterKeyHMACSalt, seed)
	il, ir := lr[:32], lr[32:]

	if !ctx.VerifyPrivateKey(il) {
		return nil, ErrInvalidChild
	}

	pub, err := ctx.GetPubKey(il, true)
	if err != nil {
		return nil, err
	}

	return &ExtendedKey{
		privKey:   append([]byte(nil), il...),
		pubKey:    pub,
		chainCode: append([]byte(nil), ir...),
		depth:     0,
		parentFP:  [4]byte{0, 0, 0, 0},
		childNum:  0,
		version:   net.HDPrivateKeyID,
		isPrivate: true,
		ecdsaCtx:  ctx,
	}, nil
}

// IsPrivate reports whether this node carries a private key.
func (k *ExtendedKey) IsPrivate() bool { return k.isPrivate }

// Depth returns the node's depth in the HD tree; the master node is depth 0.
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// ChildNum returns the child index used to derive this node from its
// parent.
func (k *ExtendedKey) ChildNum() uint32 { return k.childNum }

// ParentFingerprint returns the first four bytes of hash160(parent pubkey).
func (k *ExtendedKey) ParentFingerprint() [4]byte { return k.parentFP }

// SerializedPubKey returns the compressed public key bytes.
func (k *ExtendedKey) SerializedPubKey() []byte {
	return append([]byte(nil), k.pubKey...)
}

// SerializedPrivKey returns the raw 32-byte private key. Returns nil if the
// node is neutered.
func (k *ExtendedKey) SerializedPrivKey() []byte {
	if !k.isPrivate {
		return nil
	}
	return append([]byte(nil), k.privKey...)
}

// fingerprint computes hash160(pub)[0:4], used both as this node's
// identity for children and to validate a parent/child relationship.
func fingerprint(pub []byte) [4]byte {
	var fp [4]byte
	copy(fp[:], hashutil.Hash160(pub))
	return fp
}

// Fingerprint returns this node's own fingerprint, as used as the
// ParentFingerprint of any children derived from it.
func (k *ExtendedKey) Fingerprint() [4]byte {
	return fingerprint(k.pubKey)
}

// Child derives the child extended key at index i. Indices >=
// HardenedKeyStart request a hardened child, which requires a non-neutered
// parent.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	isHardened := i >= HardenedKeyStart
	if isHardened && !k.isPrivate {
		return nil, ErrDeriveHardFromPublic
	}

	var data []byte
	if isHardened {
		data = make([]byte, 0, 37)
		data = append(data, 0x00)
		data = append(data, k.privKey...)
	} else {
		data = append([]byte(nil), k.pubKey...)
	}
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], i)
	data = append(data, idxBytes[:]...)

	lr := hashutil.HMACSha512(k.chainCode, data)
	il, childChainCode := lr[:32], lr[32:]

	ctx := k.ecdsaCtx
	if ctx == nil {
		ctx = ecc.DefaultContext
	}

	child := &ExtendedKey{
		chainCode: append([]byte(nil), childChainCode...),
		depth:     k.depth + 1,
		parentFP:  fingerprint(k.pubKey),
		childNum:  i,
		version:   k.version,
		isPrivate: k.isPrivate,
		ecdsaCtx:  ctx,
	}

	if k.isPrivate {
		childPriv, err := ctx.TweakPrivateAdd(k.privKey, il)
		if err != nil {
			return nil, ErrInvalidChild
		}
		pub, err := ctx.GetPubKey(childPriv, true)
		if err != nil {
			return nil, ErrInvalidChild
		}
		child.privKey = childPriv
		child.pubKey = pub
	} else {
		childPub, err := ctx.TweakPublicAdd(k.pubKey, il)
		if err != nil {
			return nil, ErrInvalidChild
		}
		child.pubKey = childPub
	}

	return child, nil
}

// Neuter returns a public-only (no private key) copy of the extended key.
// Hardened children cannot subsequently be derived from the result.
func (k *ExtendedKey) Neuter(net *chaincfg.Params) (*ExtendedKey, error) {
	n := *k
	n.isPrivate = false
	n.privKey = nil
	n.version = net.HDPublicKeyID
	return &n, nil
}

// String serializes the extended key to its 111-character Base58Check
// xpub/xprv representation.
func (k *ExtendedKey) String() string {
	var buf bytes.Buffer
	buf.Write(k.version[:])
	buf.WriteByte(k.depth)
	buf.Write(k.parentFP[:])
	var childBytes [4]byte
	binary.BigEndian.PutUint32(childBytes[:], k.childNum)
	buf.Write(childBytes[:])
	buf.Write(k.chainCode)
	if k.isPrivate {
		buf.WriteByte(0x00)
		buf.Write(k.privKey)
	} else {
		buf.Write(k.pubKey)
	}
	return base58.CheckEncodeMulti(buf.Bytes())
}

// NewKeyFromString parses a Base58Check-encoded xpub/xprv string, validating
// it against the given network's magics.
func NewKeyFromString(s string, net *chaincfg.Params) (*ExtendedKey, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return nil, ErrBadChecksum
	}
	const checksumLen = 4
	if len(decoded) != serializedKeyLen+checksumLen {
		return nil, ErrInvalidExtKeyLen
	}
	payload := decoded[:serializedKeyLen]
	checksum := decoded[serializedKeyLen:]
	want := hashutil.DoubleSha256(payload)[:checksumLen]
	if !bytes.Equal(checksum, want) {
		return nil, ErrBadChecksum
	}

	var version [4]byte
	copy(version[:], payload[0:4])

	var isPrivate bool
	switch version {
	case net.HDPrivateKeyID:
		isPrivate = true
	case net.HDPublicKeyID:
		isPrivate = false
	default:
		return nil, ErrUnknownNetwork
	}

	depth := payload[4]
	var parentFP [4]byte
	copy(parentFP[:], payload[5:9])
	childNum := binary.BigEndian.Uint32(payload[9:13])
	chainCode := append([]byte(nil), payload[13:45]...)
	keyData := payload[45:78]

	ctx := ecc.DefaultContext
	k := &ExtendedKey{
		chainCode: chainCode,
		depth:     depth,
		parentFP:  parentFP,
		childNum:  childNum,
		version:   version,
		isPrivate: isPrivate,
		ecdsaCtx:  ctx,
	}

	if isPrivate {
		if keyData[0] != 0x00 {
			return nil, ErrInvalidExtKeyLen
		}
		priv := keyData[1:]
		if !ctx.VerifyPrivateKey(priv) {
			return nil, ErrInvalidChild
		}
		pub, err := ctx.GetPubKey(priv, true)
		if err != nil {
			return nil, err
		}
		k.privKey = append([]byte(nil), priv...)
		k.pubKey = pub
	} else {
		if !ctx.VerifyPubKey(keyData) {
			return nil, ErrInvalidChild
		}
		k.pubKey = append([]byte(nil), keyData...)
	}

	return k, nil
}
