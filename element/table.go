package element

import "math"

// MaxStrings is the number of unique strings one document can reference.
const MaxStrings = math.MaxUint16

// StringTable is the encode-side string pool. Indices are handed out in
// first-use order starting at 0 and never change once assigned.
type StringTable struct {
	index   map[string]int
	strings []string
}

func NewStringTable() *StringTable {
	return &StringTable{index: make(map[string]int)}
}

// Insert returns the index of s, adding it if needed. It reports false when s
// is new and the table is already full.
func (t *StringTable) Insert(s string) (int, bool) {
	if i, ok := t.index[s]; ok {
		return i, true
	}
	if len(t.strings) >= MaxStrings {
		return 0, false
	}
	i := len(t.strings)
	t.index[s] = i
	t.strings = append(t.strings, s)
	return i, true
}

func (t *StringTable) Index(s string) (int, bool) {
	i, ok := t.index[s]
	return i, ok
}

func (t *StringTable) Len() int {
	return len(t.strings)
}

// Strings returns the table contents in index order.
func (t *StringTable) Strings() []string {
	out := make([]string, len(t.strings))
	copy(out, t.strings)
	return out
}
