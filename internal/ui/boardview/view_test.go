package boardview

import (
	"image/color"
	"strings"
	"testing"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
	"chosenoffset.com/hexrealm/internal/render"
	"chosenoffset.com/hexrealm/internal/turn"
)

type canvas struct {
	w, h  int
	fills []color.Color
}

func (c *canvas) Size() (int, int)     { return c.w, c.h }
func (c *canvas) Fill(clr color.Color) { c.fills = append(c.fills, clr) }

type text struct {
	s    string
	x, y int
}

// recorder counts the shapes a view asks for
type recorder struct {
	filled  int
	rects   int
	circles int
	texts   []text
}

func (r *recorder) FillPolygon(render.Image, []render.Point, color.Color) {
	r.filled++
}

func (r *recorder) StrokePolygon(render.Image, []render.Point, float32, color.Color) {}

func (r *recorder) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.circles++
}

func (r *recorder) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {}

func (r *recorder) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.rects++
}

func (r *recorder) DrawText(_ render.Image, s string, x, y int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text{s, x, y})
}

func (r *recorder) MeasureText(s string, scale float64) (int, int) {
	return int(float64(len(s)) * 6 * scale), int(16 * scale)
}

type fakeSource struct {
	terrain map[board.Coordinate]board.SpaceType
	cities  []board.Unit
	knights []board.Unit
	phase   turn.Phase
	hand    player.Counts
}

func (s fakeSource) Space(pos board.Coordinate) board.SpaceType { return s.terrain[pos] }
func (s fakeSource) Cities() []board.Unit                       { return s.cities }
func (s fakeSource) Knights() []board.Unit                      { return s.knights }
func (s fakeSource) Phase() turn.Phase                          { return s.phase }
func (s fakeSource) Hand() player.Counts                        { return s.hand }
func (s fakeSource) PointerAccepted(turn.Pointer) bool          { return false }

func TestDrawFrame(t *testing.T) {
	r := &recorder{}
	dst := &canvas{w: 1280, h: 720}
	v := NewView(r, dst.w, dst.h)
	pos := board.At(4, 3)
	src := fakeSource{
		terrain: map[board.Coordinate]board.SpaceType{pos: board.Plains, board.At(5, 3): board.Water},
		cities:  []board.Unit{{Position: pos, Owner: player.Red}},
		knights: []board.Unit{{Position: pos, Owner: player.Red}, {Position: pos, Owner: player.Red}, {Position: pos, Owner: player.Blue}},
		phase:   turn.Phase{Kind: turn.ChooseAction},
		hand:    player.DefaultCounts(),
	}

	v.Draw(dst, src, turn.Pointer{})

	if len(dst.fills) != 1 || dst.fills[0] != Background {
		t.Errorf("Expected one background fill, got %v", dst.fills)
	}
	if r.filled != 2 {
		t.Errorf("Expected 2 terrain polygons, got %d", r.filled)
	}
	if r.rects != 1 {
		t.Errorf("Expected 1 city, got %d", r.rects)
	}
	if r.circles != 2 {
		t.Errorf("Expected one knight marker per owner, got %d", r.circles)
	}

	var summary *text
	for i := range r.texts {
		if strings.HasPrefix(r.texts[i].s, "Cities ") {
			summary = &r.texts[i]
		}
	}
	if summary == nil {
		t.Fatal("Expected the hand summary in the banner")
	}
	w, _ := r.MeasureText(summary.s, 1)
	if summary.x+w != dst.w-16 {
		t.Errorf("Expected the summary right-aligned to the image width, ends at %d", summary.x+w)
	}
}
