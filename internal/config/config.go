// Package config holds the game rules a session is built from.
// Rules are read from an optional JSON file and then from HEXREALM_*
// environment variables, each layer overriding the one before.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
	"chosenoffset.com/hexrealm/internal/turn"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "HEXREALM_"

// ErrInvalidRules is wrapped by every Validate failure
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds everything needed to start a session
type Rules struct {
	Players        int       `json:"players"          env:"PLAYERS"`
	ActivePlayer   string    `json:"active_player"    env:"ACTIVE_PLAYER"`
	CitiesToPlace  int       `json:"cities_to_place"  env:"CITIES_TO_PLACE"`
	TilesPerPlayer int       `json:"tiles_per_player" env:"TILES_PER_PLAYER"`
	Seed           int64     `json:"seed"             env:"SEED"` // 0 seeds from the clock
	Inventory      Inventory `json:"inventory"        envPrefix:"INVENTORY_"`
	LogLevel       string    `json:"log_level"        env:"LOG_LEVEL"`
	Window         Window    `json:"window"           envPrefix:"WINDOW_"`
}

// Inventory is the starting hand of the acting player
type Inventory struct {
	Cities      int `json:"cities"      env:"CITIES"`
	Strongholds int `json:"strongholds" env:"STRONGHOLDS"`
	Villages    int `json:"villages"    env:"VILLAGES"`
	Knights     int `json:"knights"     env:"KNIGHTS"`
}

// Window sizes the interactive frontend
type Window struct {
	Width  int    `json:"width"  env:"WIDTH"`
	Height int    `json:"height" env:"HEIGHT"`
	Title  string `json:"title"  env:"TITLE"`
}

// Default returns the built-in single-seat rules
func Default() *Rules {
	counts := player.DefaultCounts()
	return &Rules{
		Players:        1,
		ActivePlayer:   player.Red.String(),
		CitiesToPlace:  3,
		TilesPerPlayer: 9,
		Inventory: Inventory{
			Cities:      counts.Cities,
			Strongholds: counts.Strongholds,
			Villages:    counts.Villages,
			Knights:     counts.Knights,
		},
		LogLevel: "info",
		Window: Window{
			Width:  1920,
			Height: 1080,
			Title:  "Hexrealm",
		},
	}
}

// Load reads rules from a JSON file over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	rules := Default()
	if err := json.Unmarshal(data, rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules %s: %w", path, err)
	}
	return rules, nil
}

// ApplyEnv overrides rules from HEXREALM_* environment variables.
// Variables that are not set leave the current value alone.
func ApplyEnv(r *Rules) error {
	if err := env.ParseWithOptions(r, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Validate rejects rules no game can be played with
func (r *Rules) Validate() error {
	if r.Players < 1 || r.Players > len(player.Colors) {
		return fmt.Errorf("%w: players must be between 1 and %d, got %d", ErrInvalidRules, len(player.Colors), r.Players)
	}
	if _, ok := player.ParseColor(r.ActivePlayer); !ok {
		return fmt.Errorf("%w: unknown player color %q", ErrInvalidRules, r.ActivePlayer)
	}
	if r.TilesPerPlayer < 1 {
		return fmt.Errorf("%w: tiles per player must be positive, got %d", ErrInvalidRules, r.TilesPerPlayer)
	}
	if r.Players*r.TilesPerPlayer > board.CatalogSize {
		return fmt.Errorf("%w: %d players need %d tiles, only %d exist",
			ErrInvalidRules, r.Players, r.Players*r.TilesPerPlayer, board.CatalogSize)
	}
	inv := r.Inventory
	if inv.Cities < 0 || inv.Strongholds < 0 || inv.Villages < 0 || inv.Knights < 0 {
		return fmt.Errorf("%w: negative starting inventory %+v", ErrInvalidRules, inv)
	}
	if r.CitiesToPlace < 1 || r.CitiesToPlace > inv.Cities || r.CitiesToPlace > inv.Knights {
		return fmt.Errorf("%w: cannot place %d starting cities with %d cities and %d knights",
			ErrInvalidRules, r.CitiesToPlace, inv.Cities, inv.Knights)
	}
	if _, err := ParseLevel(r.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	if r.Window.Width <= 0 || r.Window.Height <= 0 {
		return fmt.Errorf("%w: window must have a positive size, got %dx%d", ErrInvalidRules, r.Window.Width, r.Window.Height)
	}
	return nil
}

// Color returns the acting player's color, Red if the name is unknown
func (r *Rules) Color() player.Color {
	c, ok := player.ParseColor(r.ActivePlayer)
	if !ok {
		return player.Red
	}
	return c
}

// Counts converts the starting hand for player.New
func (r *Rules) Counts() player.Counts {
	return player.Counts{
		Cities:      r.Inventory.Cities,
		Strongholds: r.Inventory.Strongholds,
		Villages:    r.Inventory.Villages,
		Knights:     r.Inventory.Knights,
	}
}

// TurnRules extracts what the phase state machine needs
func (r *Rules) TurnRules() turn.Rules {
	return turn.Rules{
		Players:        r.Players,
		TilesPerPlayer: r.TilesPerPlayer,
		CitiesToPlace:  r.CitiesToPlace,
		ActivePlayer:   r.Color(),
	}
}
