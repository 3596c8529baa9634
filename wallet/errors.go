// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import "errors"

var (
	// ErrBadMagic indicates a wallet file did not begin with the expected
	// header magic.
	ErrBadMagic = errors.New("wallet: bad file header magic")

	// ErrBadGenesis indicates a wallet file's recorded genesis hash does
	// not match the chain it is being loaded against.
	ErrBadGenesis = errors.New("wallet: genesis hash does not match chain")

	// ErrVersionTooNew indicates a wallet file's version field is newer
	// than this implementation understands.
	ErrVersionTooNew = errors.New("wallet: file format version is newer than supported")

	// ErrBadRecordMagic indicates a record did not begin with the expected
	// per-record magic, meaning the file is corrupt or truncated.
	ErrBadRecordMagic = errors.New("wallet: bad record magic")

	// ErrCorruptMasterKey indicates a MASTERPUBKEY record's two copies of
	// the xpub did not match.
	ErrCorruptMasterKey = errors.New("wallet: master pubkey record copies disagree")

	// ErrMasterKeyAlreadySet indicates SetMasterKey was called twice.
	ErrMasterKeyAlreadySet = errors.New("wallet: master key is already set")

	// ErrMasterKeyNotSet indicates an operation needing the master key
	// (NextAddr) was called before SetMasterKey.
	ErrMasterKeyNotSet = errors.New("wallet: master key has not been set")
)
