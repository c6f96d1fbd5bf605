package mapdata

// WindKind identifies a wind pattern. WindCustom carries text this package
// does not recognize, as found in third-party maps.
type WindKind uint8

const (
	WindNone WindKind = iota
	WindLeft
	WindRight
	WindLeftStrong
	WindRightStrong
	WindLeftOnOff
	WindRightOnOff
	WindLeftOnOffFast
	WindRightOnOffFast
	WindAlternating
	WindLeftGemsOnly
	WindRightCrazy
	WindDown
	WindUp
	WindSpace
	WindCustom
)

var windNames = [...]string{
	WindNone:           "None",
	WindLeft:           "Left",
	WindRight:          "Right",
	WindLeftStrong:     "LeftStrong",
	WindRightStrong:    "RightStrong",
	WindLeftOnOff:      "LeftOnOff",
	WindRightOnOff:     "RightOnOff",
	WindLeftOnOffFast:  "LeftOnOffFast",
	WindRightOnOffFast: "RightOnOffFast",
	WindAlternating:    "Alternating",
	WindLeftGemsOnly:   "LeftGemsOnly",
	WindRightCrazy:     "RightCrazy",
	WindDown:           "Down",
	WindUp:             "Up",
	WindSpace:          "Space",
}

// WindPattern is a level's wind setting. The zero value is WindNone.
type WindPattern struct {
	Kind   WindKind
	Custom string
}

// ParseWindPattern never fails: unknown names become a WindCustom pattern
// holding the text verbatim.
func ParseWindPattern(s string) WindPattern {
	for kind, name := range windNames {
		if name == s {
			return WindPattern{Kind: WindKind(kind)}
		}
	}
	return WindPattern{Kind: WindCustom, Custom: s}
}

func (w WindPattern) String() string {
	if w.Kind == WindCustom {
		return w.Custom
	}
	if int(w.Kind) < len(windNames) {
		return windNames[w.Kind]
	}
	return windNames[WindNone]
}
