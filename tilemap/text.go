package tilemap

import (
	"strconv"
	"strings"
)

func splitRows(s string) []string {
	if s == "" {
		return nil
	}
	rows := strings.Split(s, "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}
	return rows
}

// trimmedRow returns row y without its trailing empty cells.
func trimmedRow[T Cell](m *Tilemap[T], y uint) []T {
	row := m.cells[y*m.width : (y+1)*m.width]
	empty := Empty[T]()
	end := len(row)
	for end > 0 && row[end-1] == empty {
		end--
	}
	return row[:end]
}

// FormatChars renders one line of raw characters per row. Trailing empty
// cells of each row are omitted.
func FormatChars(m *Tilemap[Char]) string {
	var b strings.Builder
	b.Grow(int(m.width*m.height + m.height))
	for y := uint(0); y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range trimmedRow(m, y) {
			b.WriteRune(rune(c))
		}
	}
	return b.String()
}

// ParseChars builds a width x height grid from character rows. Characters
// outside the shape are ignored and missing ones stay empty.
func ParseChars(s string, width, height uint) (*Tilemap[Char], error) {
	m, err := New[Char](width, height)
	if err != nil {
		return nil, err
	}
	for y, row := range splitRows(s) {
		if uint(y) >= height {
			break
		}
		x := uint(0)
		for _, r := range row {
			if !m.Set(x, uint(y), Char(r)) {
				break
			}
			x++
		}
	}
	return m, nil
}

// FormatIDs renders one line of comma-separated ids per row. Trailing empty
// cells of each row are omitted; interior runs are written out as -1.
func FormatIDs(m *Tilemap[ID]) string {
	var b strings.Builder
	for y := uint(0); y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, id := range trimmedRow(m, y) {
			if x > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(int64(id), 10))
		}
	}
	return b.String()
}

// ParseIDs builds a width x height grid from comma-separated id rows.
// Third-party maps are often sloppy here, so a cell that does not parse as a
// 32-bit integer becomes empty instead of failing. repaired counts those cells.
func ParseIDs(s string, width, height uint) (m *Tilemap[ID], repaired int, err error) {
	m, err = New[ID](width, height)
	if err != nil {
		return nil, 0, err
	}
	for y, row := range splitRows(s) {
		if uint(y) >= height {
			break
		}
		for x, field := range strings.Split(row, ",") {
			if uint(x) >= width {
				break
			}
			field = strings.TrimSpace(field)
			id, perr := strconv.ParseInt(field, 10, 32)
			if perr != nil {
				if field != "" {
					repaired++
				}
				id = int64(EmptyID)
			}
			m.Set(uint(x), uint(y), ID(id))
		}
	}
	return m, repaired, nil
}
