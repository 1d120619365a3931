// Package player holds the per-player data of the game: owner colors and the
// remaining pieces of the acting player.
package player

// Color identifies the owner of a city or knight
type Color int

const (
	Red Color = iota
	Blue
	Green
	Yellow
)

// Colors lists every seat color in turn order
var Colors = [4]Color{Red, Blue, Green, Yellow}

// String returns the color name
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// ParseColor returns the color for a name produced by String
func ParseColor(name string) (Color, bool) {
	for _, c := range Colors {
		if c.String() == name {
			return c, true
		}
	}
	return Red, false
}
