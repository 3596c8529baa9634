// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txauthor implements an in-memory transaction-builder state
// machine: a registry of in-progress transactions keyed by integer
// handle, driven through add-utxo/add-output/finalize/sign steps.
package txauthor

import "errors"

var (
	// ErrUnknownHandle is returned by any operation against a handle the
	// registry does not recognize (already removed, or never allocated).
	ErrUnknownHandle = errors.New("txauthor: unknown transaction handle")

	// ErrNotEnoughFunds is returned by Finalize when total_in - outputs -
	// fee is negative.
	ErrNotEnoughFunds = errors.New("txauthor: not enough funds for outputs and fee")

	// ErrAlreadyFinalized is returned by AddUTXO/AddOutput once Finalize has
	// run for the handle; the builder only mutates an in-progress tx.
	ErrAlreadyFinalized = errors.New("txauthor: transaction already finalized")

	// ErrNotFinalized is returned by Sign before Finalize has produced the
	// unsigned transaction.
	ErrNotFinalized = errors.New("txauthor: transaction not yet finalized")

	// ErrInvalidAmount is returned by parseKoinu for a malformed decimal
	// amount string.
	ErrInvalidAmount = errors.New("txauthor: invalid koinu amount string")
)
