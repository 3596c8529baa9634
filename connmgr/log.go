// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package connmgr implements the peer-group connection manager: DNS-seed/explicit-IP peer discovery, the desired-connection-
// count policy, and the single event loop that drains every peer's
// messages in submission order.
package connmgr

import "github.com/decred/slog"

var log = slog.Disabled

// UseLogger sets the package-wide logger used by Group.
func UseLogger(logger slog.Logger) {
	log = logger
}
