package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/config"
	"chosenoffset.com/hexrealm/internal/game"
	"chosenoffset.com/hexrealm/internal/snapshot"
)

func main() {
	rulesPath := flag.String("rules", "rules.json", "path to the game rules file")
	seed := flag.Int64("seed", 1, "random seed, overrides the rules file")
	out := flag.String("out", "board.png", "output PNG path")
	width := flag.Int("width", 1280, "image width")
	height := flag.Int("height", 720, "image height")
	tries := flag.Int("tries", 10, "seeds to try when a map has no room for the starting cities")
	flag.Parse()

	if err := run(*rulesPath, *seed, *tries, *out, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rulesPath string, seed int64, tries int, out string, width, height int) error {
	rules, err := config.Load(rulesPath)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(rules); err != nil {
		return err
	}

	logger, err := rules.NewLogger(true)
	if err != nil {
		return err
	}
	defer logger.Sync()

	for i := 0; i < tries; i++ {
		rules.Seed = seed + int64(i)
		session, err := game.NewSession(rules, logger)
		if err != nil {
			return err
		}

		err = session.AutoSetup()
		if errors.Is(err, game.ErrSetupStuck) {
			logger.Warn("setup did not finish, trying next seed", zap.Int64("seed", rules.Seed), zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}

		if err := snapshot.Save(out, session, width, height); err != nil {
			return err
		}
		logger.Info("snapshot written",
			zap.String("path", out),
			zap.Int64("seed", rules.Seed),
			zap.Int("cities", session.NumCities()),
		)
		return nil
	}
	return fmt.Errorf("no seed in [%d, %d) completed setup", seed, seed+int64(tries))
}
