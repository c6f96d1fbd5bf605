package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Reader decodes primitives from a forward-only byte stream.
type Reader struct {
	r       io.Reader
	limits  Limits
	scratch [4]byte
	n       uint64
}

func NewReader(r io.Reader, limits Limits) *Reader {
	return &Reader{r: r, limits: limits.withDefaults()}
}

// Limits reports the limits in effect, with defaults filled in.
func (r *Reader) Limits() Limits {
	return r.limits
}

// Offset reports how many bytes have been consumed so far.
func (r *Reader) Offset() uint64 {
	return r.n
}

func (r *Reader) fill(op string, buf []byte) error {
	n, err := io.ReadFull(r.r, buf)
	r.n += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("wire: read %s at offset %d: %w", op, r.n, err)
	}
	return nil
}

func (r *Reader) ReadByte() (byte, error) {
	if err := r.fill("byte", r.scratch[:1]); err != nil {
		return 0, err
	}
	return r.scratch[0], nil
}

func (r *Reader) ReadU8() (uint8, error) {
	return r.ReadByte()
}

func (r *Reader) ReadU16() (uint16, error) {
	if err := r.fill("u16", r.scratch[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.scratch[:2]), nil
}

func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *Reader) ReadI32() (int32, error) {
	if err := r.fill("i32", r.scratch[:4]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.scratch[:4])), nil
}

func (r *Reader) ReadF32() (float32, error) {
	if err := r.fill("f32", r.scratch[:4]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(r.scratch[:4])), nil
}

// ReadUvarint reads a base-128 integer, least significant group first.
// Values needing more than 64 bits fail with ErrVarintOverflow regardless of host word size.
func (r *Reader) ReadUvarint() (uint64, error) {
	var v uint64
	for shift := uint(0); ; shift += 7 {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if shift == 63 && b > 1 {
			return 0, ErrVarintOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// ReadString reads a varint length followed by that many UTF-8 bytes.
func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadUvarint()
	if err != nil {
		return "", err
	}
	if length > r.limits.MaxStringBytes || length > math.MaxInt {
		return "", fmt.Errorf("%w: %d > %d", ErrStringTooLong, length, r.limits.MaxStringBytes)
	}
	buf := make([]byte, length)
	if length > 0 {
		if err := r.fill("string", buf); err != nil {
			return "", err
		}
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, buf)
	}
	return string(buf), nil
}

// ReadRLE reads a u16 pair-byte count followed by (run, byte) pairs.
func (r *Reader) ReadRLE() (string, error) {
	size, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	if size%2 != 0 {
		return "", fmt.Errorf("%w: %d", ErrOddRLELength, size)
	}
	pairs := make([]byte, size)
	if size > 0 {
		if err := r.fill("rle", pairs); err != nil {
			return "", err
		}
	}
	return DecodeRLE(pairs)
}
