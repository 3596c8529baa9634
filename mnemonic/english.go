// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mnemonic

import "github.com/dogecoinfoundation/libdogecoin-sub000/mnemonic/wordlists"

// EnglishTag is the registry tag for the bundled English word list, the
// default for NewMnemonic and MnemonicToEntropy when no list is given.
const EnglishTag = "english"

// English is the standard BIP-0039 English word list, embedded in full.
var English *Wordlist

func init() {
	wl, err := newWordlist(EnglishTag, wordlists.English, " ")
	if err != nil {
		panic("mnemonic: embedded English word list is malformed: " + err.Error())
	}
	English = wl
	registryMu.Lock()
	registry[EnglishTag] = wl
	registryMu.Unlock()
}
