package wire

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"
)

// EncodeRLE collapses runs of identical bytes into (run, byte) pairs.
// A run never exceeds 255, so 256 identical bytes become two pairs.
func EncodeRLE(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}
	pairs := make([]byte, 0, 16)
	last := s[0]
	run := byte(1)
	for i := 1; i < len(s); i++ {
		b := s[i]
		if b == last && run != math.MaxUint8 {
			run++
			continue
		}
		pairs = append(pairs, run, last)
		last = b
		run = 1
	}
	pairs = append(pairs, run, last)
	if len(pairs) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d pair bytes", ErrRLETooLong, len(pairs))
	}
	return pairs, nil
}

// DecodeRLE expands (run, byte) pairs and validates the result as UTF-8.
func DecodeRLE(pairs []byte) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("%w: %d", ErrOddRLELength, len(pairs))
	}
	var out bytes.Buffer
	for i := 0; i < len(pairs); i += 2 {
		for n := pairs[i]; n > 0; n-- {
			out.WriteByte(pairs[i+1])
		}
	}
	if !utf8.Valid(out.Bytes()) {
		return "", ErrInvalidUTF8
	}
	return out.String(), nil
}
