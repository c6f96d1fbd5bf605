package mapdata

import (
	"github.com/danmuck/mapbin/element"
	"github.com/danmuck/mapbin/tilemap"
)

// Point is an integer coordinate pair.
type Point struct {
	X, Y int32
}

// Vec2 is a float coordinate pair.
type Vec2 struct {
	X, Y float32
}

// Map is a whole map file.
type Map struct {
	Package         string
	Fillers         []Filler
	Levels          []Level
	Foregrounds     []element.Element
	Backgrounds     []element.Element
	BackgroundColor *Color

	// Attributes and children of the Style element other than color,
	// Foregrounds and Backgrounds.
	StyleExtra         map[string]element.Value
	StyleExtraChildren []element.Element

	Extra         map[string]element.Value
	ExtraChildren []element.Element
}

// Filler is an axis-aligned rectangle of filler tiles.
type Filler struct {
	Position Point
	Size     Point
}

// Level is one room of a map. Tilemap shapes are the level size divided by 8.
type Level struct {
	Name     string
	Data     LevelData
	Entities []Entity
	Triggers []Entity
	BGDecals []Decal
	FGDecals []Decal

	BG       *tilemap.Tilemap[tilemap.Char]
	BGTiles  *tilemap.Tilemap[tilemap.ID]
	FGTiles  *tilemap.Tilemap[tilemap.ID]
	ObjTiles *tilemap.Tilemap[tilemap.ID]
	Solids   *tilemap.Tilemap[tilemap.Char]

	Extra         map[string]element.Value
	ExtraChildren []element.Element
}

// LevelData holds a level's scalar settings.
type LevelData struct {
	Position              Point
	Size                  Point
	MusicLayers           [4]bool
	Underwater            bool
	Space                 bool
	DisableDownTransition bool
	MusicProgress         *int32
	CameraOffset          Point
	WindPattern           WindPattern
	AmbienceProgress      *int32
	AltMusic              string
	Ambience              string
	DelayAltMusicFade     bool
	Music                 string
	Color                 int32
	Dark                  bool
	EnforceDashNumber     *int32
	Whisper               bool
}

// Entity is an entity or trigger placed in a level.
type Entity struct {
	Name     string
	ID       int32
	Position Vec2
	Width    *int32
	Height   *int32
	Origin   Vec2
	Nodes    []Vec2
	Values   map[string]element.Value
}

// Decal is a decorative texture placed in a level.
type Decal struct {
	Position Vec2
	Scale    Vec2
	Texture  string
	Color    Color
	Depth    int32
	Rotation float32
}
