package mapdata

import (
	"fmt"

	"github.com/danmuck/mapbin/element"
	"github.com/danmuck/mapbin/tilemap"
)

// mapElement is the conversion contract between typed objects and elements.
// The unexported method keeps the set closed to the types in this package.
type mapElement interface {
	Element() element.Element
	fromElement(d *decoder, el element.Element) error
}

var (
	_ mapElement = (*Map)(nil)
	_ mapElement = (*Level)(nil)
	_ mapElement = (*Entity)(nil)
	_ mapElement = (*Decal)(nil)
	_ mapElement = (*Filler)(nil)
)

// decoder carries per-call state through a conversion.
type decoder struct {
	repairedTiles int
}

func decodeAs[T any, P interface {
	*T
	mapElement
}](d *decoder, el element.Element) (T, error) {
	var v T
	err := P(&v).fromElement(d, el)
	return v, err
}

func decodeList[T any, P interface {
	*T
	mapElement
}](d *decoder, children []element.Element) ([]T, error) {
	var out []T
	for i, child := range children {
		v, err := decodeAs[T, P](d, child)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", child.Name, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func encodeList[T any, P interface {
	*T
	mapElement
}](items []T) []element.Element {
	if len(items) == 0 {
		return nil
	}
	out := make([]element.Element, len(items))
	for i := range items {
		out[i] = P(&items[i]).Element()
	}
	return out
}

func container(name string, children []element.Element) element.Element {
	el := element.New(name)
	el.Children = children
	return el
}

// DecodeMap converts a Map root element. Unknown attributes and children are
// kept for passthrough.
func DecodeMap(el element.Element) (*Map, error) {
	m, err := decodeAs[Map](&decoder{}, el)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeLevel converts one level element.
func DecodeLevel(el element.Element) (Level, error) {
	return decodeAs[Level](&decoder{}, el)
}

func DecodeEntity(el element.Element) (Entity, error) {
	return decodeAs[Entity](&decoder{}, el)
}

func DecodeDecal(el element.Element) (Decal, error) {
	return decodeAs[Decal](&decoder{}, el)
}

func DecodeFiller(el element.Element) (Filler, error) {
	return decodeAs[Filler](&decoder{}, el)
}

// Filler

func (f *Filler) fromElement(_ *decoder, el element.Element) error {
	if err := checkName(el, "rect"); err != nil {
		return err
	}
	r := readFields(el)
	f.Position = Point{X: r.integer("x", 0), Y: r.integer("y", 0)}
	f.Size = Point{X: r.integer("w", 0), Y: r.integer("h", 0)}
	return r.err
}

func (f Filler) Element() element.Element {
	el := element.New("rect")
	el.Set("x", element.Int(f.Position.X))
	el.Set("y", element.Int(f.Position.Y))
	el.Set("w", element.Int(f.Size.X))
	el.Set("h", element.Int(f.Size.Y))
	return el
}

// Decal

func (dc *Decal) fromElement(_ *decoder, el element.Element) error {
	if err := checkName(el, "decal"); err != nil {
		return err
	}
	r := readFields(el)
	color := r.text("color", "ffffff")
	dc.Position = Vec2{X: r.float("x", 0), Y: r.float("y", 0)}
	dc.Scale = Vec2{X: r.float("scaleX", 1), Y: r.float("scaleY", 1)}
	dc.Texture = r.text("texture", "")
	dc.Depth = r.integer("depth", 0)
	dc.Rotation = r.float("rotation", 0)
	if r.err != nil {
		return r.err
	}
	c, err := ParseColor(color)
	if err != nil {
		return err
	}
	dc.Color = c
	return nil
}

func (dc Decal) Element() element.Element {
	el := element.New("decal")
	el.Set("x", element.Float(dc.Position.X))
	el.Set("y", element.Float(dc.Position.Y))
	el.Set("scaleX", element.Float(dc.Scale.X))
	el.Set("scaleY", element.Float(dc.Scale.Y))
	el.Set("texture", element.String(dc.Texture))
	if dc.Rotation != 0 {
		el.Set("rotation", element.Float(dc.Rotation))
	}
	if dc.Depth != 0 {
		el.Set("depth", element.Int(dc.Depth))
	}
	if dc.Color != White {
		el.Set("color", element.String(dc.Color.String()))
	}
	return el
}

// Entity

func (e *Entity) fromElement(_ *decoder, el element.Element) error {
	r := readFields(el)
	e.Name = el.Name
	e.ID = r.integer("id", 0)
	e.Position = Vec2{X: r.float("x", 0), Y: r.float("y", 0)}
	e.Width = r.optInteger("width")
	e.Height = r.optInteger("height")
	e.Origin = Vec2{X: r.float("originX", 0), Y: r.float("originY", 0)}
	if r.err != nil {
		return fmt.Errorf("entity %q: %w", el.Name, r.err)
	}
	e.Values = r.rest()

	for _, child := range el.Children {
		if err := checkName(child, "node"); err != nil {
			return fmt.Errorf("entity %q: %w", el.Name, err)
		}
		nr := readFields(child)
		node := Vec2{X: nr.float("x", 0), Y: nr.float("y", 0)}
		if nr.err != nil {
			return fmt.Errorf("entity %q: node: %w", el.Name, nr.err)
		}
		e.Nodes = append(e.Nodes, node)
	}
	return nil
}

func (e Entity) Element() element.Element {
	el := element.Element{Name: e.Name, Attributes: cloneAttrs(e.Values, 7)}
	el.Set("id", element.Int(e.ID))
	el.Set("x", element.Float(e.Position.X))
	el.Set("y", element.Float(e.Position.Y))
	if e.Width != nil {
		el.Set("width", element.Int(*e.Width))
	}
	if e.Height != nil {
		el.Set("height", element.Int(*e.Height))
	}
	el.Set("originX", element.Float(e.Origin.X))
	el.Set("originY", element.Float(e.Origin.Y))
	for _, n := range e.Nodes {
		node := element.New("node")
		node.Set("x", element.Float(n.X))
		node.Set("y", element.Float(n.Y))
		el.Children = append(el.Children, node)
	}
	return el
}

// LevelData

func (ld *LevelData) read(r *fields) {
	ld.MusicProgress = r.decimal("musicProgress")
	ld.AmbienceProgress = r.decimal("ambienceProgress")
	ld.Position = Point{X: r.integer("x", 0), Y: r.integer("y", 0)}
	// Tiles are 8 pixels, so the smallest room is one tile.
	ld.Size = Point{X: r.integer("width", 8), Y: r.integer("height", 8)}
	for i := range ld.MusicLayers {
		ld.MusicLayers[i] = r.boolean(fmt.Sprintf("musicLayer%d", i+1), false)
	}
	ld.Underwater = r.boolean("underwater", false)
	ld.Space = r.boolean("space", false)
	ld.DisableDownTransition = r.boolean("disableDownTransition", false)
	ld.CameraOffset = Point{X: r.integer("cameraOffsetX", 0), Y: r.integer("cameraOffsetY", 0)}
	ld.WindPattern = ParseWindPattern(r.text("windPattern", "None"))
	ld.AltMusic = r.text("alt_music", "")
	ld.Ambience = r.text("ambience", "")
	ld.DelayAltMusicFade = r.boolean("delayAltMusicFade", false)
	ld.Music = r.text("music", "")
	ld.Color = r.integer("c", 0)
	ld.Dark = r.boolean("dark", false)
	ld.EnforceDashNumber = r.optInteger("enforceDashNumber")
	ld.Whisper = r.boolean("whisper", false)
}

func (ld LevelData) write(el *element.Element) {
	el.Set("x", element.Int(ld.Position.X))
	el.Set("y", element.Int(ld.Position.Y))
	el.Set("width", element.Int(ld.Size.X))
	el.Set("height", element.Int(ld.Size.Y))
	for i, on := range ld.MusicLayers {
		el.Set(fmt.Sprintf("musicLayer%d", i+1), element.Bool(on))
	}
	el.Set("underwater", element.Bool(ld.Underwater))
	el.Set("space", element.Bool(ld.Space))
	el.Set("disableDownTransition", element.Bool(ld.DisableDownTransition))
	el.Set("musicProgress", formatDecimal(ld.MusicProgress))
	el.Set("cameraOffsetX", element.Int(ld.CameraOffset.X))
	el.Set("cameraOffsetY", element.Int(ld.CameraOffset.Y))
	el.Set("windPattern", element.String(ld.WindPattern.String()))
	el.Set("ambienceProgress", formatDecimal(ld.AmbienceProgress))
	el.Set("alt_music", element.String(ld.AltMusic))
	el.Set("ambience", element.String(ld.Ambience))
	el.Set("delayAltMusicFade", element.Bool(ld.DelayAltMusicFade))
	el.Set("music", element.String(ld.Music))
	el.Set("c", element.Int(ld.Color))
	el.Set("dark", element.Bool(ld.Dark))
	if ld.EnforceDashNumber != nil {
		el.Set("enforceDashNumber", element.Int(*ld.EnforceDashNumber))
	}
	el.Set("whisper", element.Bool(ld.Whisper))
}

// tileShape converts a level size in pixels to a tilemap shape.
func tileShape(size Point) (uint, uint, error) {
	if size.X < 0 {
		return 0, 0, &FieldDataError{Field: "width", Data: "width cannot be negative"}
	}
	if size.Y < 0 {
		return 0, 0, &FieldDataError{Field: "height", Data: "height cannot be negative"}
	}
	return uint(size.X / 8), uint(size.Y / 8), nil
}

// Level

func (l *Level) fromElement(d *decoder, el element.Element) error {
	if err := checkName(el, "level"); err != nil {
		return err
	}
	r := readFields(el)
	l.Data.read(r)
	l.Name = r.text("name", "<unnamed>")
	if r.err != nil {
		return fmt.Errorf("level %q: %w", l.Name, r.err)
	}
	l.Extra = r.rest()

	width, height, err := tileShape(l.Data.Size)
	if err != nil {
		return fmt.Errorf("level %q: %w", l.Name, err)
	}
	if l.BG, err = tilemap.New[tilemap.Char](width, height); err != nil {
		return fmt.Errorf("level %q: %w", l.Name, &FieldDataError{Field: "bg", Data: err.Error(), Err: err})
	}
	l.Solids, _ = tilemap.New[tilemap.Char](width, height)
	l.BGTiles, _ = tilemap.New[tilemap.ID](width, height)
	l.FGTiles, _ = tilemap.New[tilemap.ID](width, height)
	l.ObjTiles, _ = tilemap.New[tilemap.ID](width, height)

	for _, child := range el.Children {
		var err error
		switch child.Name {
		case "entities":
			l.Entities, err = decodeList[Entity](d, child.Children)
		case "triggers":
			l.Triggers, err = decodeList[Entity](d, child.Children)
		case "bgdecals":
			l.BGDecals, err = decodeList[Decal](d, child.Children)
		case "fgdecals":
			l.FGDecals, err = decodeList[Decal](d, child.Children)
		case "bg":
			l.BG, err = readChars(child, width, height)
		case "solids":
			l.Solids, err = readChars(child, width, height)
		case "bgtiles":
			l.BGTiles, err = d.readIDs(child, width, height)
		case "fgtiles":
			l.FGTiles, err = d.readIDs(child, width, height)
		case "objtiles":
			l.ObjTiles, err = d.readIDs(child, width, height)
		default:
			l.ExtraChildren = append(l.ExtraChildren, child)
		}
		if err != nil {
			return fmt.Errorf("level %q: %s: %w", l.Name, child.Name, err)
		}
	}
	return nil
}

func innerText(el element.Element) (string, error) {
	r := readFields(el)
	s := r.text(element.InnerText, "")
	return s, r.err
}

func readChars(el element.Element, width, height uint) (*tilemap.Tilemap[tilemap.Char], error) {
	s, err := innerText(el)
	if err != nil {
		return nil, err
	}
	return tilemap.ParseChars(s, width, height)
}

func (d *decoder) readIDs(el element.Element, width, height uint) (*tilemap.Tilemap[tilemap.ID], error) {
	s, err := innerText(el)
	if err != nil {
		return nil, err
	}
	m, repaired, err := tilemap.ParseIDs(s, width, height)
	d.repairedTiles += repaired
	return m, err
}

func charLayer(name string, m *tilemap.Tilemap[tilemap.Char]) element.Element {
	el := element.New(name)
	text := ""
	if m != nil {
		text = tilemap.FormatChars(m)
	}
	el.Set(element.InnerText, element.RLEString(text))
	return el
}

func idLayer(name string, m *tilemap.Tilemap[tilemap.ID]) element.Element {
	el := element.New(name)
	text := ""
	if m != nil {
		text = tilemap.FormatIDs(m)
	}
	el.Set(element.InnerText, element.String(text))
	return el
}

func (l *Level) Element() element.Element {
	el := element.Element{Name: "level", Attributes: cloneAttrs(l.Extra, 32)}
	l.Data.write(&el)
	el.Set("name", element.String(l.Name))

	el.Children = make([]element.Element, 0, len(l.ExtraChildren)+9)
	el.Children = append(el.Children, l.ExtraChildren...)
	el.Children = append(el.Children,
		container("entities", encodeList(l.Entities)),
		container("triggers", encodeList(l.Triggers)),
		container("bgdecals", encodeList(l.BGDecals)),
		container("fgdecals", encodeList(l.FGDecals)),
		charLayer("bg", l.BG),
		idLayer("bgtiles", l.BGTiles),
		idLayer("fgtiles", l.FGTiles),
		idLayer("objtiles", l.ObjTiles),
		charLayer("solids", l.Solids),
	)
	return el
}

// Map

func (m *Map) fromElement(d *decoder, el element.Element) error {
	if err := checkName(el, "Map"); err != nil {
		return err
	}
	m.Extra = nil
	if len(el.Attributes) > 0 {
		m.Extra = cloneAttrs(el.Attributes, 0)
	}

	for _, child := range el.Children {
		var err error
		switch child.Name {
		case "Filler":
			m.Fillers, err = decodeList[Filler](d, child.Children)
		case "Style":
			err = m.readStyle(child)
		case "levels":
			m.Levels, err = decodeList[Level](d, child.Children)
		default:
			m.ExtraChildren = append(m.ExtraChildren, child)
		}
		if err != nil {
			return fmt.Errorf("map: %s: %w", child.Name, err)
		}
	}
	return nil
}

func (m *Map) readStyle(el element.Element) error {
	r := readFields(el)
	if v, ok := r.take("color"); ok {
		s, ok := v.Text()
		if !ok {
			return &FieldTypeError{Field: "color", Value: v}
		}
		c, err := ParseColor(s)
		if err != nil {
			return err
		}
		m.BackgroundColor = &c
	}
	m.StyleExtra = r.rest()

	for _, child := range el.Children {
		switch child.Name {
		case "Foregrounds":
			m.Foregrounds = child.Children
		case "Backgrounds":
			m.Backgrounds = child.Children
		default:
			m.StyleExtraChildren = append(m.StyleExtraChildren, child)
		}
	}
	return nil
}

func (m *Map) Element() element.Element {
	el := element.Element{Name: "Map", Attributes: cloneAttrs(m.Extra, 0)}

	style := element.Element{Name: "Style", Attributes: cloneAttrs(m.StyleExtra, 1)}
	if m.BackgroundColor != nil {
		style.Set("color", element.String(m.BackgroundColor.String()))
	}
	style.Children = make([]element.Element, 0, 2+len(m.StyleExtraChildren))
	style.Children = append(style.Children,
		container("Foregrounds", m.Foregrounds),
		container("Backgrounds", m.Backgrounds),
	)
	style.Children = append(style.Children, m.StyleExtraChildren...)

	el.Children = make([]element.Element, 0, len(m.ExtraChildren)+3)
	el.Children = append(el.Children, m.ExtraChildren...)
	el.Children = append(el.Children,
		container("Filler", encodeList(m.Fillers)),
		style,
		container("levels", encodeList(m.Levels)),
	)
	return el
}
