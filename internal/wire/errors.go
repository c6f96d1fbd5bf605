package wire

import "errors"

var (
	ErrVarintOverflow = errors.New("wire: variable-length integer exceeds 64 bits")
	ErrStringTooLong  = errors.New("wire: string length exceeds limit")
	ErrInvalidUTF8    = errors.New("wire: string is not valid utf-8")
	ErrRLETooLong     = errors.New("wire: string is too large to be stored with run-length encoding")
	ErrOddRLELength   = errors.New("wire: run-length encoded string has odd byte count")
)
