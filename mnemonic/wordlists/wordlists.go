// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wordlists holds the raw word data bundled with the mnemonic
// package. Only English ships, embedded in full; none of the other nine
// BIP-39 lists is bundled in this tree, and a caller loads one at runtime
// from its own file via mnemonic.LoadWordlistFile.
package wordlists

import (
	_ "embed"
	"strings"
)

//go:embed english.txt
var englishRaw string

// English is the standard 2048-entry BIP-0039 English word list, one word
// per line in englishRaw, sorted and unique.
var English = strings.Fields(englishRaw)
