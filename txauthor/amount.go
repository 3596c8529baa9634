// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txauthor

import (
	"strconv"
	"strings"
)

// koinuPerCoin is the number of koinu in one DOGE.
const koinuPerCoin = 100000000

// parseKoinu parses a decimal DOGE amount string (e.g. "5", "0.00226") into
// its koinu integer value, as used by add_output/finalize.
func parseKoinu(s string) (int64, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 8 {
		return 0, ErrInvalidAmount
	}
	if hasFrac {
		frac = frac + strings.Repeat("0", 8-len(frac))
	} else {
		frac = strings.Repeat("0", 8)
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	amount := w*koinuPerCoin + f
	if neg {
		amount = -amount
	}
	return amount, nil
}
