// Package turn provides the phase state machine that sequences a turn.
// It interprets pointer and key events against the board and the acting
// player's inventory and decides when to move to another phase.
package turn

import "chosenoffset.com/hexrealm/internal/board"

// Kind identifies one phase of the turn state machine
type Kind int

const (
	SetupBoard   Kind = iota // Laying tiles to build the map
	SetupCities              // Placing starting cities
	ChooseAction             // Waiting for an action number
	Recruitment              // Adding knights to a city
	Movement                 // Moving up to two knights
	Construction
	NewCity
	Expedition
	NobleTitle
	End // Game over, ignores all input
)

var kindNames = map[Kind]string{
	SetupBoard:   "SetupBoard",
	SetupCities:  "SetupCities",
	ChooseAction: "ChooseAction",
	Recruitment:  "Recruitment",
	Movement:     "Movement",
	Construction: "Construction",
	NewCity:      "NewCity",
	Expedition:   "Expedition",
	NobleTitle:   "NobleTitle",
	End:          "End",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Title returns the banner headline shown while the phase is active
func (k Kind) Title() string {
	switch k {
	case SetupBoard:
		return "Game Setup"
	case SetupCities:
		return "City Setup"
	case ChooseAction:
		return "Choose Action"
	case Recruitment:
		return "Recruitment"
	case Movement:
		return "Movement"
	case Construction:
		return "Construction"
	case NewCity:
		return "New City"
	case Expedition:
		return "Expedition"
	case NobleTitle:
		return "Noble Title"
	case End:
		return "Game Over"
	default:
		return ""
	}
}

// Move records a knight move made during the movement phase
type Move struct {
	From       board.Coordinate
	To         board.Coordinate
	Casualties []board.Unit // Knights removed by combat on To
}

// Phase is the live phase: its kind plus the state local to it.
// A transition replaces the whole value, so local state never carries over.
type Phase struct {
	Kind Kind

	// Recruitment
	SelectedCity *board.Coordinate

	// Movement
	SelectedKnight *board.Coordinate
	FirstMove      *Move
}

// Instructions returns the hint lines shown under the banner
func (p Phase) Instructions() []string {
	const cancel = "Press Backspace to cancel."
	switch p.Kind {
	case SetupBoard:
		return []string{"Lay board game pieces to build the map."}
	case SetupCities:
		return []string{"Place cities to determine your starting positions."}
	case ChooseAction:
		return []string{"1. Recruitment  2. Movement  3. Construction  4. New City  5. Expedition  6. Noble Title"}
	case Recruitment:
		if p.SelectedCity != nil {
			return []string{"Press 1, 2 or 3 to add knights to " + p.SelectedCity.String() + ".", "Press Backspace to pick another city."}
		}
		return []string{"Pick a city to add knights to.", cancel}
	case Movement:
		switch {
		case p.SelectedKnight != nil:
			return []string{"Select a destination for the knight on " + p.SelectedKnight.String() + ".", "Press Backspace to deselect."}
		case p.FirstMove != nil:
			return []string{"Select a second knight to move, or press Y to finish.", "Press Backspace to undo the first move."}
		default:
			return []string{"Select a knight to move.", cancel}
		}
	case Construction:
		return []string{"Select a knight to build with.", cancel}
	case NewCity:
		return []string{"Select a village to upgrade to a city.", cancel}
	case Expedition:
		return []string{"Select a board space on the edge of the map.", cancel}
	case NobleTitle:
		return []string{"Upgrade your noble title.", cancel}
	default:
		return nil
	}
}

func (p Phase) clone() Phase {
	out := Phase{Kind: p.Kind}
	if p.SelectedCity != nil {
		c := *p.SelectedCity
		out.SelectedCity = &c
	}
	if p.SelectedKnight != nil {
		k := *p.SelectedKnight
		out.SelectedKnight = &k
	}
	if p.FirstMove != nil {
		m := *p.FirstMove
		m.Casualties = append([]board.Unit(nil), p.FirstMove.Casualties...)
		out.FirstMove = &m
	}
	return out
}
