package boardview

import (
	"image/color"

	"golang.org/x/image/colornames"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
)

// Palette colors shared by the window and the PNG snapshot
var (
	Background = colornames.Black
	Border     = colornames.Gray
	TextColor  = colornames.White
	Accepted   = colornames.Lime
	Rejected   = colornames.Red
	Selected   = colornames.Gold
)

// TerrainColor returns the fill for a space type
func TerrainColor(kind board.SpaceType) color.RGBA {
	switch kind {
	case board.Water:
		return colornames.Midnightblue
	case board.Mountain:
		return colornames.Dimgray
	case board.Forest:
		return colornames.Darkgreen
	case board.Plains:
		return colornames.Seagreen
	case board.Field:
		return colornames.Darkgoldenrod
	default:
		return colornames.Black
	}
}

// PlayerColor returns the piece color for an owner
func PlayerColor(c player.Color) color.RGBA {
	switch c {
	case player.Blue:
		return colornames.Blue
	case player.Green:
		return colornames.Limegreen
	case player.Yellow:
		return colornames.Gold
	default:
		return colornames.Firebrick
	}
}
