package mapdata

import (
	"encoding/hex"
)

// Color is an RGBA color.
type Color [4]byte

// White is fully opaque white, the default decal tint.
var White = Color{0xff, 0xff, 0xff, 0xff}

// ParseColor reads 6 (RGB, alpha 0xff) or 8 (RGBA) hex digits.
func ParseColor(s string) (Color, error) {
	if len(s) != 6 && len(s) != 8 {
		return Color{}, &FieldDataError{Field: "color", Data: s}
	}
	c := White
	if _, err := hex.Decode(c[:], []byte(s)); err != nil {
		return Color{}, &FieldDataError{Field: "color", Data: s}
	}
	return c, nil
}

// String renders the color as 8 lowercase hex digits.
func (c Color) String() string {
	return hex.EncodeToString(c[:])
}
