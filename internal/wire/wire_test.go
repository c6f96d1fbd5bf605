package wire

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/danmuck/mapbin/internal/testutil/testlog"
)

func TestUvarintRoundTrip(t *testing.T) {
	testlog.Start(t)
	values := []uint64{0, 1, 127, 128, 255, 300, 16383, 16384, math.MaxUint32, math.MaxUint32 + 1, math.MaxInt64, math.MaxUint64}
	for _, v := range values {
		buf := AppendUvarint(nil, v)
		got, err := NewReader(bytes.NewReader(buf), DefaultLimits()).ReadUvarint()
		if err != nil {
			t.Fatalf("read uvarint %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("uvarint mismatch: got=%d want=%d", got, v)
		}
	}
}

func TestUvarintLayout(t *testing.T) {
	testlog.Start(t)
	if got := AppendUvarint(nil, 300); !bytes.Equal(got, []byte{0xac, 0x02}) {
		t.Fatalf("unexpected encoding of 300: %x", got)
	}
	if got := AppendUvarint(nil, 5); !bytes.Equal(got, []byte{0x05}) {
		t.Fatalf("unexpected encoding of 5: %x", got)
	}
}

func TestUvarintOverflowIsDeterministic(t *testing.T) {
	testlog.Start(t)
	buf := bytes.Repeat([]byte{0xff}, 9)
	buf = append(buf, 0x02)
	_, err := NewReader(bytes.NewReader(buf), DefaultLimits()).ReadUvarint()
	if !errors.Is(err, ErrVarintOverflow) {
		t.Fatalf("expected ErrVarintOverflow, got %v", err)
	}
}

func TestUvarintTruncated(t *testing.T) {
	testlog.Start(t)
	_, err := NewReader(bytes.NewReader([]byte{0x80, 0x80}), DefaultLimits()).ReadUvarint()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	testlog.Start(t)
	long := strings.Repeat("abc", 100)
	buf := AppendString(nil, "CELESTE MAP")
	buf = AppendString(buf, long)
	buf = AppendString(buf, "")
	r := NewReader(bytes.NewReader(buf), DefaultLimits())
	for _, want := range []string{"CELESTE MAP", long, ""} {
		got, err := r.ReadString()
		if err != nil {
			t.Fatalf("read string: %v", err)
		}
		if got != want {
			t.Fatalf("string mismatch: got=%q want=%q", got, want)
		}
	}
	if r.Offset() != uint64(len(buf)) {
		t.Fatalf("offset mismatch: got=%d want=%d", r.Offset(), len(buf))
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	testlog.Start(t)
	buf := []byte{2, 0xc3, 0x28}
	_, err := NewReader(bytes.NewReader(buf), DefaultLimits()).ReadString()
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestStringLimit(t *testing.T) {
	testlog.Start(t)
	buf := AppendString(nil, "hello")
	_, err := NewReader(bytes.NewReader(buf), Limits{MaxStringBytes: 4}).ReadString()
	if !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong, got %v", err)
	}
}

func TestRLERoundTrip(t *testing.T) {
	testlog.Start(t)
	inputs := []string{
		"",
		"a",
		"aaab",
		"0000000000\n0011100000\n1111111111",
		strings.Repeat("x", 1000),
		"héllo wörld",
	}
	for _, in := range inputs {
		pairs, err := EncodeRLE(in)
		if err != nil {
			t.Fatalf("encode %q: %v", in, err)
		}
		out, err := DecodeRLE(pairs)
		if err != nil {
			t.Fatalf("decode %q: %v", in, err)
		}
		if out != in {
			t.Fatalf("rle mismatch: got=%q want=%q", out, in)
		}
	}
}

func TestRLERunSplitsAt255(t *testing.T) {
	testlog.Start(t)
	pairs, err := EncodeRLE(strings.Repeat("a", 256))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{255, 'a', 1, 'a'}
	if !bytes.Equal(pairs, want) {
		t.Fatalf("unexpected pairs: got=%v want=%v", pairs, want)
	}
}

func TestRLEWireForm(t *testing.T) {
	testlog.Start(t)
	buf, err := AppendRLE(nil, "aab")
	if err != nil {
		t.Fatalf("append rle: %v", err)
	}
	want := []byte{4, 0, 2, 'a', 1, 'b'}
	if !bytes.Equal(buf, want) {
		t.Fatalf("unexpected wire form: got=%v want=%v", buf, want)
	}
	got, err := NewReader(bytes.NewReader(buf), DefaultLimits()).ReadRLE()
	if err != nil {
		t.Fatalf("read rle: %v", err)
	}
	if got != "aab" {
		t.Fatalf("unexpected string: %q", got)
	}
}

func TestRLETooLong(t *testing.T) {
	testlog.Start(t)
	var sb strings.Builder
	for i := 0; i < 40000; i++ {
		sb.WriteByte(byte('a' + i%2))
	}
	_, err := AppendRLE(nil, sb.String())
	if !errors.Is(err, ErrRLETooLong) {
		t.Fatalf("expected ErrRLETooLong, got %v", err)
	}
}

func TestRLEOddLength(t *testing.T) {
	testlog.Start(t)
	_, err := NewReader(bytes.NewReader([]byte{3, 0, 1, 'a', 1}), DefaultLimits()).ReadRLE()
	if !errors.Is(err, ErrOddRLELength) {
		t.Fatalf("expected ErrOddRLELength, got %v", err)
	}
}

func TestRLEInvalidUTF8(t *testing.T) {
	testlog.Start(t)
	_, err := DecodeRLE([]byte{1, 0xff})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestScalarsLittleEndian(t *testing.T) {
	testlog.Start(t)
	buf := AppendU16(nil, 0x1234)
	buf = AppendI16(buf, -2)
	buf = AppendI32(buf, -70000)
	buf = AppendF32(buf, 1.5)
	buf = AppendU8(buf, 9)
	if buf[0] != 0x34 || buf[1] != 0x12 {
		t.Fatalf("u16 not little-endian: %x", buf[:2])
	}
	r := NewReader(bytes.NewReader(buf), DefaultLimits())
	if v, err := r.ReadU16(); err != nil || v != 0x1234 {
		t.Fatalf("u16: got=%d err=%v", v, err)
	}
	if v, err := r.ReadI16(); err != nil || v != -2 {
		t.Fatalf("i16: got=%d err=%v", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != -70000 {
		t.Fatalf("i32: got=%d err=%v", v, err)
	}
	if v, err := r.ReadF32(); err != nil || v != 1.5 {
		t.Fatalf("f32: got=%v err=%v", v, err)
	}
	if v, err := r.ReadU8(); err != nil || v != 9 {
		t.Fatalf("u8: got=%d err=%v", v, err)
	}
	if _, err := r.ReadU8(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestLimitsDefaultPerField(t *testing.T) {
	testlog.Start(t)
	got := NewReader(bytes.NewReader(nil), Limits{MaxStringBytes: 4}).Limits()
	if got.MaxStringBytes != 4 || got.MaxDepth != DefaultLimits().MaxDepth {
		t.Fatalf("expected string limit 4 with default depth, got %+v", got)
	}
	if got := NewReader(bytes.NewReader(nil), Limits{MaxDepth: 8}).Limits(); got.MaxStringBytes != DefaultLimits().MaxStringBytes || got.MaxDepth != 8 {
		t.Fatalf("expected default string limit with depth 8, got %+v", got)
	}
}
