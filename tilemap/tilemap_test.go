package tilemap

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/danmuck/mapbin/internal/testutil/testlog"
)

func TestNewIsEmpty(t *testing.T) {
	testlog.Start(t)
	ids, err := New[ID](3, 2)
	if err != nil {
		t.Fatalf("new ids: %v", err)
	}
	for _, c := range ids.Cells() {
		if c != EmptyID {
			t.Fatalf("expected empty id, got %d", c)
		}
	}
	chars, err := New[Char](2, 2)
	if err != nil {
		t.Fatalf("new chars: %v", err)
	}
	for _, c := range chars.Cells() {
		if c != EmptyChar {
			t.Fatalf("expected empty char, got %q", c)
		}
	}
	if Empty[ID]() != -1 || Empty[Char]() != '0' {
		t.Fatalf("unexpected sentinels")
	}
}

func TestNewOverflow(t *testing.T) {
	testlog.Start(t)
	_, err := New[ID](math.MaxUint, 2)
	if !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected ErrSizeOverflow, got %v", err)
	}
	_, err = New[ID](4097, 4096)
	if !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected ErrSizeOverflow past MaxCells, got %v", err)
	}
	if _, err := New[Char](MaxCells, 0); err != nil {
		t.Fatalf("zero-height grid: %v", err)
	}
}

func TestBoundsChecked(t *testing.T) {
	testlog.Start(t)
	m, _ := New[ID](2, 2)
	if !m.Set(1, 1, 7) {
		t.Fatalf("in-range set failed")
	}
	if v, ok := m.Get(1, 1); !ok || v != 7 {
		t.Fatalf("get: got=%d ok=%v", v, ok)
	}
	if m.Set(2, 0, 1) || m.Set(0, 2, 1) {
		t.Fatalf("out-of-range set reported success")
	}
	if _, ok := m.Get(2, 0); ok {
		t.Fatalf("out-of-range get reported success")
	}
	if _, ok := m.Get(0, math.MaxUint); ok {
		t.Fatalf("out-of-range get reported success")
	}
}

func TestShrinkGrowRestores(t *testing.T) {
	testlog.Start(t)
	m, _ := New[ID](4, 3)
	for y := uint(0); y < 3; y++ {
		for x := uint(0); x < 4; x++ {
			m.Set(x, y, ID(y*10+x))
		}
	}
	orig := m.Clone()

	if err := m.SetWidth(2); err != nil {
		t.Fatalf("shrink width: %v", err)
	}
	if err := m.SetHeight(1); err != nil {
		t.Fatalf("shrink height: %v", err)
	}
	if err := m.SetWidth(4); err != nil {
		t.Fatalf("grow width: %v", err)
	}
	if err := m.SetHeight(3); err != nil {
		t.Fatalf("grow height: %v", err)
	}

	for y := uint(0); y < 3; y++ {
		for x := uint(0); x < 4; x++ {
			got, _ := m.Get(x, y)
			want, _ := orig.Get(x, y)
			if x < 2 && y < 1 {
				if got != want {
					t.Fatalf("retained cell (%d,%d): got=%d want=%d", x, y, got, want)
				}
				continue
			}
			if got != EmptyID {
				t.Fatalf("new cell (%d,%d) not empty: %d", x, y, got)
			}
		}
	}
}

func TestSetWidthPreservesRowMajor(t *testing.T) {
	testlog.Start(t)
	m, err := ParseChars("ab\ncd", 2, 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := m.SetWidth(3); err != nil {
		t.Fatalf("grow: %v", err)
	}
	want := []Char{'a', 'b', '0', 'c', 'd', '0'}
	if !reflect.DeepEqual(m.Cells(), want) {
		t.Fatalf("unexpected cells: %q", m.Cells())
	}
	if err := m.SetWidth(1); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if !reflect.DeepEqual(m.Cells(), []Char{'a', 'c'}) {
		t.Fatalf("unexpected cells: %q", m.Cells())
	}
}

func TestResizeOverflowLeavesGrid(t *testing.T) {
	testlog.Start(t)
	m, _ := New[ID](2, 2)
	m.Set(1, 1, 5)
	before := m.Clone()
	if err := m.SetWidth(math.MaxUint); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected ErrSizeOverflow, got %v", err)
	}
	if err := m.SetHeight(math.MaxUint / 2); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected ErrSizeOverflow, got %v", err)
	}
	if err := m.Resize(math.MaxUint, 1); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected ErrSizeOverflow, got %v", err)
	}
	if err := m.Resize(MaxCells, 2); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("expected ErrSizeOverflow, got %v", err)
	}
	if !m.Equal(before) {
		t.Fatalf("grid mutated by rejected resize")
	}
}

func TestResizeChoosesSafeOrder(t *testing.T) {
	testlog.Start(t)
	m, _ := New[ID](1, 4)
	if err := m.Resize(math.MaxInt/2, 0); err != nil {
		t.Fatalf("resize: %v", err)
	}
	if m.Width() != math.MaxInt/2 || m.Height() != 0 {
		t.Fatalf("unexpected shape %s", m)
	}
}

func TestCharTextRoundTrip(t *testing.T) {
	testlog.Start(t)
	text := "1110\n0001\n\n0a"
	m, err := ParseChars(text, 4, 4)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := m.Get(1, 3); v != 'a' {
		t.Fatalf("unexpected cell: %q", v)
	}
	got := FormatChars(m)
	want := "111\n0001\n\n0a"
	if got != want {
		t.Fatalf("format: got=%q want=%q", got, want)
	}
	again, _ := ParseChars(got, 4, 4)
	if !again.Equal(m) {
		t.Fatalf("char round trip mismatch")
	}
}

func TestCharParseIgnoresOverflow(t *testing.T) {
	testlog.Start(t)
	m, err := ParseChars("12345\n67890\nabcde", 3, 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Char{'1', '2', '3', '6', '7', '8'}
	if !reflect.DeepEqual(m.Cells(), want) {
		t.Fatalf("unexpected cells: %q", m.Cells())
	}
}

func TestIDTextRoundTrip(t *testing.T) {
	testlog.Start(t)
	m, _ := New[ID](5, 3)
	m.Set(0, 0, 3)
	m.Set(3, 0, 12)
	m.Set(4, 2, -7)
	got := FormatIDs(m)
	want := "3,-1,-1,12\n\n-1,-1,-1,-1,-7"
	if got != want {
		t.Fatalf("format: got=%q want=%q", got, want)
	}
	back, repaired, err := ParseIDs(got, 5, 3)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if repaired != 0 {
		t.Fatalf("unexpected repairs: %d", repaired)
	}
	if !back.Equal(m) {
		t.Fatalf("id round trip mismatch")
	}
}

func TestIDParseIsDefensive(t *testing.T) {
	testlog.Start(t)
	m, repaired, err := ParseIDs(" 4, x ,99999999999,\r\n1,2,3,4,5\n7", 3, 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []ID{4, -1, -1, 1, 2, 3}
	if !reflect.DeepEqual(m.Cells(), want) {
		t.Fatalf("unexpected cells: %v", m.Cells())
	}
	if repaired != 2 {
		t.Fatalf("expected 2 repaired cells, got %d", repaired)
	}
}

func TestRowAndFill(t *testing.T) {
	testlog.Start(t)
	m, _ := New[Char](2, 2)
	m.Fill('1')
	if !reflect.DeepEqual(m.Row(1), []Char{'1', '1'}) {
		t.Fatalf("unexpected row: %q", m.Row(1))
	}
	if m.Row(2) != nil {
		t.Fatalf("expected nil for out-of-range row")
	}
}
