package wire

import (
	"encoding/binary"
	"math"
)

func AppendU8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

func AppendU16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

func AppendI16(dst []byte, v int16) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(v))
}

func AppendI32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

func AppendF32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

func AppendUvarint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// AppendString writes a varint byte length followed by the raw bytes of s.
func AppendString(dst []byte, s string) []byte {
	dst = AppendUvarint(dst, uint64(len(s)))
	return append(dst, s...)
}

// AppendRLE writes s run-length encoded with its u16 pair-byte count prefix.
func AppendRLE(dst []byte, s string) ([]byte, error) {
	pairs, err := EncodeRLE(s)
	if err != nil {
		return dst, err
	}
	dst = AppendU16(dst, uint16(len(pairs)))
	return append(dst, pairs...), nil
}
