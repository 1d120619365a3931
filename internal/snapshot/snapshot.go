// Package snapshot renders a board to a PNG without opening a window.
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
	"chosenoffset.com/hexrealm/internal/render"
	"chosenoffset.com/hexrealm/internal/ui/boardview"
)

// Header is the height of the title strip above the board
const Header = 40

// Render draws the board of src into a width x height image
func Render(src boardview.Source, width, height int) image.Image {
	ctx := gg.NewContext(width, height)
	ctx.SetColor(boardview.Background)
	ctx.Clear()

	layout := boardview.FitLayout(8, Header, float32(width)-16, float32(height)-Header-8)

	ctx.SetColor(boardview.TextColor)
	ctx.DrawString(src.Phase().Kind.Title(), 8, 20)

	for _, pos := range board.AllCoordinates() {
		polygon(ctx, layout.Corners(pos))
		if kind := src.Space(pos); kind != board.Void {
			ctx.SetColor(boardview.TerrainColor(kind))
			ctx.FillPreserve()
		}
		ctx.SetColor(boardview.Border)
		ctx.SetLineWidth(1)
		ctx.Stroke()
	}

	side := float64(layout.HexWidth) * 0.4
	for _, city := range src.Cities() {
		c := layout.Center(city.Position)
		ctx.DrawRectangle(float64(c.X)-side/2, float64(c.Y)-side/2, side, side)
		ctx.SetColor(boardview.PlayerColor(city.Owner))
		ctx.Fill()
	}

	drawKnights(ctx, layout, src.Knights())
	return ctx.Image()
}

func drawKnights(ctx *gg.Context, layout boardview.Layout, knights []board.Unit) {
	type stack struct {
		pos   board.Coordinate
		owner player.Color
	}
	counts := map[stack]int{}
	var order []stack
	for _, k := range knights {
		s := stack{k.Position, k.Owner}
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	radius := float64(layout.HexWidth) * 0.12
	seen := map[board.Coordinate]int{}
	for _, s := range order {
		c := layout.Center(s.pos)
		x := float64(c.X) - float64(layout.HexWidth)*0.2 + float64(seen[s.pos])*radius*1.6
		y := float64(c.Y) + float64(layout.HexHeight())*0.22
		seen[s.pos]++

		ctx.DrawCircle(x, y, radius)
		ctx.SetColor(boardview.PlayerColor(s.owner))
		ctx.FillPreserve()
		ctx.SetColor(boardview.TextColor)
		ctx.Stroke()
		if n := counts[s]; n > 1 {
			ctx.DrawStringAnchored(fmt.Sprint(n), x, y, 0.5, 0.5)
		}
	}
}

func polygon(ctx *gg.Context, points []render.Point) {
	ctx.NewSubPath()
	for i, p := range points {
		if i == 0 {
			ctx.MoveTo(float64(p.X), float64(p.Y))
			continue
		}
		ctx.LineTo(float64(p.X), float64(p.Y))
	}
	ctx.ClosePath()
}

// Encode writes the rendered board to w as PNG
func Encode(w io.Writer, src boardview.Source, width, height int) error {
	ctx := gg.NewContextForImage(Render(src, width, height))
	if err := ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Save writes the rendered board to a PNG file
func Save(path string, src boardview.Source, width, height int) error {
	ctx := gg.NewContextForImage(Render(src, width, height))
	if err := ctx.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}
