// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package spvclient drives the header-sync and block-download state machine
// on top of a connmgr.Group and a headersdb.DB: it chooses a sync peer,
// pages through getheaders responses, switches to full-block download once
// headers catch up to the wallet's window of interest, and reports
// decoded transactions to a caller-supplied callback.
package spvclient

import "github.com/decred/slog"

// log is this package's logger, disabled by default; callers wire in a
// real backend with UseLogger.
var log = slog.Disabled

// UseLogger sets the package-wide logger used by Client.
func UseLogger(logger slog.Logger) {
	log = logger
}
