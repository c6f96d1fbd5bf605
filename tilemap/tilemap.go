// Package tilemap provides a dense, bounds-checked 2D grid of tile cells and
// the text forms the map format stores them in.
package tilemap

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrSizeOverflow = errors.New("tilemap: width * height exceeds MaxCells")

// MaxCells bounds the area of a single grid, 4096 x 4096 tiles.
const MaxCells = 1 << 24

// ID is a numeric tile id. The empty cell is -1.
type ID int32

// Char is a character tile. The empty cell is '0'.
type Char rune

const (
	EmptyID   ID   = -1
	EmptyChar Char = '0'
)

// Cell is the closed set of cell types a Tilemap can hold.
type Cell interface {
	ID | Char
}

// Empty returns the empty sentinel for T.
func Empty[T Cell]() T {
	var zero T
	if _, ok := any(zero).(Char); ok {
		return T(EmptyChar)
	}
	return T(EmptyID)
}

// Tilemap is a row-major grid. len(cells) == width*height always holds and
// the product never exceeds MaxCells.
type Tilemap[T Cell] struct {
	width  uint
	height uint
	cells  []T
}

func area(width, height uint) (int, bool) {
	hi, lo := bits.Mul(width, height)
	if hi != 0 || lo > MaxCells {
		return 0, false
	}
	return int(lo), true
}

func filled[T Cell](n int) []T {
	cells := make([]T, n)
	empty := Empty[T]()
	for i := range cells {
		cells[i] = empty
	}
	return cells
}

// New allocates a width x height grid of empty cells.
func New[T Cell](width, height uint) (*Tilemap[T], error) {
	n, ok := area(width, height)
	if !ok {
		return nil, fmt.Errorf("%w: %d x %d", ErrSizeOverflow, width, height)
	}
	return &Tilemap[T]{width: width, height: height, cells: filled[T](n)}, nil
}

func (m *Tilemap[T]) Width() uint {
	return m.width
}

func (m *Tilemap[T]) Height() uint {
	return m.height
}

// Get returns the cell at (x, y), or false when out of range.
func (m *Tilemap[T]) Get(x, y uint) (T, bool) {
	if x >= m.width || y >= m.height {
		var zero T
		return zero, false
	}
	return m.cells[y*m.width+x], true
}

// Set writes the cell at (x, y) and reports whether it was in range.
func (m *Tilemap[T]) Set(x, y uint, v T) bool {
	if x >= m.width || y >= m.height {
		return false
	}
	m.cells[y*m.width+x] = v
	return true
}

// Cells returns a copy of the row-major backing data.
func (m *Tilemap[T]) Cells() []T {
	out := make([]T, len(m.cells))
	copy(out, m.cells)
	return out
}

// Row returns a copy of row y, or nil when out of range.
func (m *Tilemap[T]) Row(y uint) []T {
	if y >= m.height {
		return nil
	}
	out := make([]T, m.width)
	copy(out, m.cells[y*m.width:(y+1)*m.width])
	return out
}

func (m *Tilemap[T]) Clone() *Tilemap[T] {
	return &Tilemap[T]{width: m.width, height: m.height, cells: m.Cells()}
}

// Fill sets every cell to v.
func (m *Tilemap[T]) Fill(v T) {
	for i := range m.cells {
		m.cells[i] = v
	}
}

// SetWidth pads rows on the right with empty cells or truncates them from the
// right. The grid is left untouched when the new area would overflow.
func (m *Tilemap[T]) SetWidth(width uint) error {
	n, ok := area(width, m.height)
	if !ok {
		return fmt.Errorf("%w: %d x %d", ErrSizeOverflow, width, m.height)
	}
	if width == m.width {
		return nil
	}
	cells := filled[T](n)
	keep := min(width, m.width)
	for y := uint(0); y < m.height; y++ {
		copy(cells[y*width:y*width+keep], m.cells[y*m.width:y*m.width+keep])
	}
	m.cells = cells
	m.width = width
	return nil
}

// SetHeight appends empty rows or drops trailing rows. The grid is left
// untouched when the new area would overflow.
func (m *Tilemap[T]) SetHeight(height uint) error {
	n, ok := area(m.width, height)
	if !ok {
		return fmt.Errorf("%w: %d x %d", ErrSizeOverflow, m.width, height)
	}
	if height == m.height {
		return nil
	}
	if n <= len(m.cells) {
		m.cells = m.cells[:n:n]
	} else {
		cells := filled[T](n)
		copy(cells, m.cells)
		m.cells = cells
	}
	m.height = height
	return nil
}

// Resize sets both dimensions, checking the final area before mutating.
func (m *Tilemap[T]) Resize(width, height uint) error {
	if _, ok := area(width, height); !ok {
		return fmt.Errorf("%w: %d x %d", ErrSizeOverflow, width, height)
	}
	if _, ok := area(width, m.height); !ok {
		if err := m.SetHeight(height); err != nil {
			return err
		}
		return m.SetWidth(width)
	}
	if err := m.SetWidth(width); err != nil {
		return err
	}
	return m.SetHeight(height)
}

// Equal reports whether both grids have the same shape and cells.
func (m *Tilemap[T]) Equal(other *Tilemap[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.width != other.width || m.height != other.height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (m *Tilemap[T]) String() string {
	return fmt.Sprintf("Tilemap{width: %d, height: %d}", m.width, m.height)
}
