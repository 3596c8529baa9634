// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashutil

import (
	"encoding/hex"
	"testing"
)

func TestDoubleSha256KnownVector(t *testing.T) {
	// SHA256(SHA256("")) is a widely published constant.
	const want = "5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456"
	got := hex.EncodeToString(DoubleSha256(nil))
	if got != want {
		t.Errorf("DoubleSha256(nil) = %s, want %s", got, want)
	}
}

func TestHash160Deterministic(t *testing.T) {
	a := Hash160([]byte("dogecoin"))
	b := Hash160([]byte("dogecoin"))
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Errorf("Hash160 not deterministic")
	}
	if len(a) != 20 {
		t.Errorf("Hash160 length = %d, want 20", len(a))
	}
}

func TestPbkdf2HmacSha512Length(t *testing.T) {
	out := Pbkdf2HmacSha512([]byte("pw"), []byte("salt"), 2048, 64)
	if len(out) != 64 {
		t.Errorf("Pbkdf2HmacSha512 length = %d, want 64", len(out))
	}
}

func TestHMACSha512Deterministic(t *testing.T) {
	a := HMACSha512([]byte("key"), []byte("msg"))
	b := HMACSha512([]byte("key"), []byte("msg"))
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Errorf("HMACSha512 not deterministic")
	}
	if len(a) != 64 {
		t.Errorf("HMACSha512 length = %d, want 64", len(a))
	}
}
