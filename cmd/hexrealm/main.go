package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/config"
	"chosenoffset.com/hexrealm/internal/game"
	ebitenrender "chosenoffset.com/hexrealm/internal/render/ebiten"
	"chosenoffset.com/hexrealm/internal/turn"
)

func main() {
	rulesPath := flag.String("rules", "rules.json", "path to the game rules file")
	dev := flag.Bool("dev", false, "human readable development logging")
	flag.Parse()

	rules, err := config.Load(*rulesPath)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}
	if err := config.ApplyEnv(rules); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}
	if err := rules.Validate(); err != nil {
		log.Fatalf("Invalid rules: %v", err)
	}

	logger, err := rules.NewLogger(*dev)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	session, err := game.NewSession(rules, logger)
	if err != nil {
		logger.Fatal("failed to start session", zap.Error(err))
	}
	session.OnCombat = func(casualties []board.Unit) {
		logger.Info("combat", zap.Int("casualties", len(casualties)))
	}
	session.OnTransition = func(from, to turn.Kind) {
		if to == turn.ChooseAction && from == turn.SetupCities {
			logger.Info("setup complete", zap.Int("cities", session.NumCities()))
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	width, height := rules.Window.Width, rules.Window.Height
	manager := game.NewManager(session, renderer, inputMgr, logger, width, height)

	// Set up the window
	engine.SetWindowSize(width, height)
	engine.SetWindowTitle(rules.Window.Title)
	engine.SetWindowResizable(true)

	logger.Info("starting game", zap.Stringer("session", session.ID))
	if err := engine.RunGame(manager); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
