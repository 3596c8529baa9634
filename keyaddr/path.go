// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keyaddr

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dogecoinfoundation/libdogecoin-sub000/hdkeychain"
)

// ErrInvalidPath indicates a path string was not of the form
// "m/<index>[']/...". The "m" prefix is the only accepted
// root marker; the CLI-only "m/[a-b]/n" range syntax is not
// part of this core contract.
var ErrInvalidPath = errors.New("keyaddr: invalid BIP32/BIP44 path")

// PathSegment is one "<index>[']" component of a derivation path.
type PathSegment struct {
	Index    uint32
	Hardened bool
}

// ParsePath parses a path string of the form "m/44'/3'/0'/0/7" into its
// ordered segments.
func ParsePath(path string) ([]PathSegment, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, ErrInvalidPath
	}
	segments := make([]PathSegment, 0, len(parts)-1)
	for _, p := range parts[1:] {
		hardened := strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h") || strings.HasSuffix(p, "H")
		numPart := p
		if hardened {
			numPart = p[:len(p)-1]
		}
		n, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			return nil, ErrInvalidPath
		}
		segments = append(segments, PathSegment{Index: uint32(n), Hardened: hardened})
	}
	return segments, nil
}

// DeriveChildIndex combines a segment's plain index with the hardened-child
// offset, ready to pass to (*hdkeychain.ExtendedKey).Child.
func (s PathSegment) DeriveChildIndex() uint32 {
	if s.Hardened {
		return hdkeychain.HardenedKeyStart + s.Index
	}
	return s.Index
}

// Derive walks node through every segment of path in order, returning the
// final descendant.
func Derive(node *hdkeychain.ExtendedKey, path string) (*hdkeychain.ExtendedKey, error) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := node
	for _, seg := range segments {
		cur, err = cur.Child(seg.DeriveChildIndex())
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// DogecoinBIP44CoinType is the registered BIP44 coin type for Dogecoin,
// used by the wallet's default account path m/44'/3'/0'/0/k.
const DogecoinBIP44CoinType = 3

// BIP44AccountPath formats the default Dogecoin external-chain address path
// m/44'/3'/0'/0/<index>.
func BIP44AccountPath(index uint32) string {
	return "m/44'/" + strconv.FormatUint(uint64(DogecoinBIP44CoinType), 10) + "'/0'/0/" + strconv.FormatUint(uint64(index), 10)
}
