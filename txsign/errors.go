// Copyright (c) 2022 The Dogecoin Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txsign

import "errors"

// Result classifies the outcome of SignInput.
type Result int

const (
	OK Result = iota
	InvalidKey
	NoKeyMatch
	SighashFailed
	UnknownScriptType
	InvalidTxOrScript
	InputIndexOutOfRange
)

// String renders the result the way a caller would log it.
func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case InvalidKey:
		return "InvalidKey"
	case NoKeyMatch:
		return "NoKeyMatch"
	case SighashFailed:
		return "SighashFailed"
	case UnknownScriptType:
		return "UnknownScriptType"
	case InvalidTxOrScript:
		return "InvalidTxOrScript"
	case InputIndexOutOfRange:
		return "InputIndexOutOfRange"
	default:
		return "Unknown"
	}
}

var (
	ErrInputIndexOutOfRange = errors.New("txsign: input index out of range")
	ErrInvalidKey           = errors.New("txsign: invalid private key")
	ErrNoKeyMatch           = errors.New("txsign: no supplied key matches script")
	ErrUnknownScriptType    = errors.New("txsign: unknown or unsupported script type")
	ErrInvalidTxOrScript    = errors.New("txsign: invalid transaction or script")
)
