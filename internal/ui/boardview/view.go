package boardview

import (
	"fmt"
	"strings"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
	"chosenoffset.com/hexrealm/internal/render"
	"chosenoffset.com/hexrealm/internal/turn"
)

// Source is the read-only game state the view draws
type Source interface {
	Space(pos board.Coordinate) board.SpaceType
	Cities() []board.Unit
	Knights() []board.Unit
	Phase() turn.Phase
	Hand() player.Counts
	PointerAccepted(p turn.Pointer) bool
}

// bannerHeight is the strip above the board holding the phase banner
const bannerHeight = 72

// View draws a Source with a Renderer
type View struct {
	Renderer render.Renderer
	Layout   Layout
}

// NewView creates a view sized for a screen
func NewView(r render.Renderer, width, height int) *View {
	v := &View{Renderer: r}
	v.Resize(width, height)
	return v
}

// Resize refits the board into a new screen size
func (v *View) Resize(width, height int) {
	const margin = 16
	v.Layout = FitLayout(margin, bannerHeight, float32(width)-2*margin, float32(height)-bannerHeight-margin)
}

// PointerAt converts a cursor position into the pointer the phase expects:
// a tile slot while laying the board, a single space otherwise.
func (v *View) PointerAt(x, y int, kind turn.Kind) turn.Pointer {
	fx, fy := float32(x), float32(y)
	if kind == turn.SetupBoard {
		if s, ok := v.Layout.SlotAt(fx, fy); ok {
			return turn.PointAtSlot(s)
		}
		return turn.Pointer{}
	}
	if pos, ok := v.Layout.SpaceAt(fx, fy); ok {
		return turn.PointAt(pos)
	}
	return turn.Pointer{}
}

// Draw renders the whole frame: banner, board, pieces and the hover highlight
func (v *View) Draw(dst render.Image, src Source, hover turn.Pointer) {
	dst.Fill(Background)
	phase := src.Phase()

	v.drawBanner(dst, phase, src.Hand())
	v.drawSpaces(dst, src)
	v.drawCities(dst, src.Cities())
	v.drawKnights(dst, src.Knights())
	v.drawSelection(dst, phase)
	v.drawHover(dst, src, hover)
}

func (v *View) drawBanner(dst render.Image, phase turn.Phase, hand player.Counts) {
	r := v.Renderer
	r.DrawText(dst, strings.ToUpper(phase.Kind.Title()), 16, 8, TextColor, 1.5)
	for i, line := range phase.Instructions() {
		r.DrawText(dst, line, 16, 28+i*16, TextColor, 1)
	}

	summary := fmt.Sprintf("Cities %d  Strongholds %d  Villages %d  Knights %d",
		hand.Cities, hand.Strongholds, hand.Villages, hand.Knights)
	w, _ := r.MeasureText(summary, 1)
	width, _ := dst.Size()
	r.DrawText(dst, summary, width-w-16, 8, TextColor, 1)
}

func (v *View) drawSpaces(dst render.Image, src Source) {
	for _, pos := range board.AllCoordinates() {
		corners := v.Layout.Corners(pos)
		if kind := src.Space(pos); kind != board.Void {
			v.Renderer.FillPolygon(dst, corners, TerrainColor(kind))
		}
		v.Renderer.StrokePolygon(dst, corners, 1, Border)
	}
}

func (v *View) drawCities(dst render.Image, cities []board.Unit) {
	side := v.Layout.HexWidth * 0.4
	for _, city := range cities {
		c := v.Layout.Center(city.Position)
		v.Renderer.FillRect(dst, c.X-side/2, c.Y-side/2, side, side, PlayerColor(city.Owner))
	}
}

// stack is the knights one owner keeps on one space
type stack struct {
	pos   board.Coordinate
	owner player.Color
}

func (v *View) drawKnights(dst render.Image, knights []board.Unit) {
	counts := map[stack]int{}
	var order []stack
	for _, k := range knights {
		key := stack{k.Position, k.Owner}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	radius := v.Layout.HexWidth * 0.12
	seen := map[board.Coordinate]int{}
	for _, s := range order {
		c := v.Layout.Center(s.pos)
		// Up to four owners share a space; fan them out under the city
		x := c.X - v.Layout.HexWidth*0.2 + float32(seen[s.pos])*radius*1.6
		y := c.Y + v.Layout.HexHeight()*0.22
		seen[s.pos]++

		v.Renderer.FillCircle(dst, x, y, radius, PlayerColor(s.owner))
		v.Renderer.StrokeCircle(dst, x, y, radius, 1, TextColor)
		if n := counts[s]; n > 1 {
			v.Renderer.DrawText(dst, fmt.Sprint(n), int(x)-3, int(y)-8, TextColor, 1)
		}
	}
}

func (v *View) drawSelection(dst render.Image, phase turn.Phase) {
	for _, pos := range []*board.Coordinate{phase.SelectedCity, phase.SelectedKnight} {
		if pos != nil {
			v.Renderer.StrokePolygon(dst, v.Layout.Corners(*pos), 3, Selected)
		}
	}
	if m := phase.FirstMove; m != nil {
		from, to := v.Layout.Center(m.From), v.Layout.Center(m.To)
		v.Renderer.StrokePolygon(dst, []render.Point{from, to}, 2, Selected)
	}
}

func (v *View) drawHover(dst render.Image, src Source, hover turn.Pointer) {
	clr := Rejected
	if src.PointerAccepted(hover) {
		clr = Accepted
	}
	switch {
	case hover.Tile != nil:
		for _, pos := range hover.Tile {
			v.Renderer.StrokePolygon(dst, v.Layout.Corners(pos), 2, clr)
		}
	case hover.Space != nil:
		v.Renderer.StrokePolygon(dst, v.Layout.Corners(*hover.Space), 2, clr)
	}
}
