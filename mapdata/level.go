package mapdata

import (
	"fmt"

	"github.com/danmuck/mapbin/element"
	"github.com/danmuck/mapbin/tilemap"
)

// NewLevel returns an empty level of the given size in pixels with default
// settings and empty tilemaps.
func NewLevel(name string, width, height int32) (*Level, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	l := &Level{
		Name: name,
		Data: LevelData{
			Size:        Point{X: width, Y: height},
			WindPattern: WindPattern{Kind: WindNone},
		},
	}
	w, h := uint(width/8), uint(height/8)
	var err error
	if l.BG, err = tilemap.New[tilemap.Char](w, h); err != nil {
		return nil, err
	}
	l.Solids, _ = tilemap.New[tilemap.Char](w, h)
	l.BGTiles, _ = tilemap.New[tilemap.ID](w, h)
	l.FGTiles, _ = tilemap.New[tilemap.ID](w, h)
	l.ObjTiles, _ = tilemap.New[tilemap.ID](w, h)
	return l, nil
}

// Resize changes the level size in pixels and resizes every tilemap to match,
// keeping overlapping cells. Missing tilemaps are created.
func (l *Level) Resize(width, height int32) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	w, h := uint(width/8), uint(height/8)
	if err := resizeLayer(&l.BG, w, h); err != nil {
		return err
	}
	if err := resizeLayer(&l.Solids, w, h); err != nil {
		return err
	}
	for _, layer := range []**tilemap.Tilemap[tilemap.ID]{&l.BGTiles, &l.FGTiles, &l.ObjTiles} {
		if err := resizeLayer(layer, w, h); err != nil {
			return err
		}
	}
	l.Data.Size = Point{X: width, Y: height}
	return nil
}

func resizeLayer[T tilemap.Cell](layer **tilemap.Tilemap[T], w, h uint) error {
	if *layer == nil {
		m, err := tilemap.New[T](w, h)
		if err != nil {
			return err
		}
		*layer = m
		return nil
	}
	return (*layer).Resize(w, h)
}

// Document wraps the map's root element with its package name.
func (m *Map) Document() *element.Document {
	return &element.Document{Package: m.Package, Root: m.Element()}
}

// DecodeDocument converts a decoded document, taking the package name from
// its preamble.
func DecodeDocument(doc *element.Document) (*Map, error) {
	m, _, err := decodeDocument(doc)
	return m, err
}

func decodeDocument(doc *element.Document) (*Map, int, error) {
	d := &decoder{}
	m, err := decodeAs[Map](d, doc.Root)
	if err != nil {
		return nil, d.repairedTiles, err
	}
	m.Package = doc.Package
	return &m, d.repairedTiles, nil
}
