// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package headersdb

import "github.com/decred/slog"

var log = slog.Disabled

// UseLogger sets the package-wide logger used by LevelDB.
func UseLogger(logger slog.Logger) {
	log = logger
}
