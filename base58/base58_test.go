// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01},
		[]byte("hello world"),
		{0xff, 0xfe, 0xfd, 0x00, 0x00},
	}
	for _, in := range tests {
		enc := Encode(in)
		out := Decode(enc)
		if !bytes.Equal(in, out) {
			t.Errorf("round trip failed for %x: got %x via %q", in, out, enc)
		}
	}
}

func TestCheckEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	enc := CheckEncode(payload, 0x1e)
	gotPayload, gotVersion, err := CheckDecode(enc)
	if err != nil {
		t.Fatalf("CheckDecode: %v", err)
	}
	if gotVersion != 0x1e {
		t.Errorf("version = %#x, want 0x1e", gotVersion)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Errorf("payload = %x, want %x", gotPayload, payload)
	}
}

func TestCheckDecodeChecksumMismatch(t *testing.T) {
	enc := CheckEncode([]byte("payload"), 0x1e)
	corrupted := enc[:len(enc)-1] + "1"
	if corrupted == enc {
		t.Skip("could not corrupt encoding deterministically")
	}
	if _, _, err := CheckDecode(corrupted); err == nil {
		t.Errorf("expected checksum error decoding corrupted string")
	}
}

func TestCheckDecodeInvalidFormat(t *testing.T) {
	if _, _, err := CheckDecode(""); err != ErrInvalidFormat {
		t.Errorf("CheckDecode(\"\") err = %v, want ErrInvalidFormat", err)
	}
}
