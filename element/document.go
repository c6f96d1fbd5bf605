package element

import (
	"fmt"
	"io"

	"github.com/danmuck/mapbin/internal/wire"
)

// Header is the literal that optionally opens a document.
const Header = "CELESTE MAP"

// Document is a decoded file: the package name from the preamble and the root element.
type Document struct {
	Package string
	Root    Element
}

// ReadOptions controls document decoding.
type ReadOptions struct {
	CheckHeader bool
	// MaxStringBytes bounds any single length-prefixed string and MaxDepth the
	// element nesting; 0 uses the default.
	MaxStringBytes uint64
	MaxDepth       int
}

// Stats describes an encoded or decoded document.
type Stats struct {
	Strings int
	Bytes   uint64
}

// ReadDocument decodes one document in a single forward pass over r.
func ReadDocument(r io.Reader, opts ReadOptions) (*Document, Stats, error) {
	wr := wire.NewReader(r, wire.Limits{MaxStringBytes: opts.MaxStringBytes, MaxDepth: opts.MaxDepth})
	if opts.CheckHeader {
		header, err := wr.ReadString()
		if err != nil {
			return nil, Stats{}, fmt.Errorf("element: read header: %w", err)
		}
		if header != Header {
			return nil, Stats{}, &HeaderError{Got: header}
		}
	}

	pkg, err := wr.ReadString()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("element: read package: %w", err)
	}

	count, err := wr.ReadU16()
	if err != nil {
		return nil, Stats{}, fmt.Errorf("element: read string table: %w", err)
	}
	lookup := make([]string, 0, count)
	for i := 0; i < int(count); i++ {
		s, err := wr.ReadString()
		if err != nil {
			return nil, Stats{}, fmt.Errorf("element: read string table entry %d: %w", i, err)
		}
		lookup = append(lookup, s)
	}

	root, err := decodeElement(wr, lookup, 1)
	if err != nil {
		return nil, Stats{}, err
	}
	return &Document{Package: pkg, Root: root}, Stats{Strings: len(lookup), Bytes: wr.Offset()}, nil
}

// MarshalTree encodes root into memory and returns the bytes with the string
// table that was filled while encoding.
func MarshalTree(root Element) ([]byte, *StringTable, error) {
	table := NewStringTable()
	buf, err := encodeElement(make([]byte, 0, 4096), root, table)
	if err != nil {
		return nil, nil, err
	}
	return buf, table, nil
}

// WriteDocument encodes doc in two passes: the tree is buffered while the
// string table is collected, then the preamble, table and tree are written.
func WriteDocument(w io.Writer, doc *Document, writeHeader bool) (Stats, error) {
	tree, table, err := MarshalTree(doc.Root)
	if err != nil {
		return Stats{}, err
	}

	pre := make([]byte, 0, 64+table.Len()*8)
	if writeHeader {
		pre = wire.AppendString(pre, Header)
	}
	pre = wire.AppendString(pre, doc.Package)
	pre = wire.AppendU16(pre, uint16(table.Len()))
	for _, s := range table.Strings() {
		pre = wire.AppendString(pre, s)
	}

	if _, err := w.Write(pre); err != nil {
		return Stats{}, fmt.Errorf("element: write preamble: %w", err)
	}
	if _, err := w.Write(tree); err != nil {
		return Stats{}, fmt.Errorf("element: write tree: %w", err)
	}
	return Stats{Strings: table.Len(), Bytes: uint64(len(pre) + len(tree))}, nil
}
