// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package peer implements one P2P connection: the version handshake,
// framed message I/O over a bounded accumulator buffer, a ping/pong
// keep-alive, and the orthogonal connection-state bitmask a connmgr.Group
// observes.
package peer

import "github.com/decred/slog"

// log is this package's logger, disabled by default; callers wire in a
// real backend with UseLogger, matching the rest of the ecosystem's
// decred/slog convention.
var log = slog.Disabled

// UseLogger sets the package-wide logger used by Peer.
func UseLogger(logger slog.Logger) {
	log = logger
}
