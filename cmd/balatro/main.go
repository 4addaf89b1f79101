package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadedpez/balatro/internal/config"
	"github.com/fadedpez/balatro/internal/console"
	"github.com/fadedpez/balatro/internal/logging"
	"github.com/fadedpez/balatro/pkg/cards"
	"github.com/fadedpez/balatro/pkg/display"
	"github.com/fadedpez/balatro/pkg/game"
	"github.com/fadedpez/balatro/pkg/repositories/history"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// stderr shares the terminal with the game, so it only gets WARN and above by default
	logOut := os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.NewLoggerWithWriter(logOut, cfg.LogLevel)

	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}
	logger.Debug("Starting %s session with seed %d", cfg.Environment, seed)

	deck := cards.NewShuffledDeck(rand.New(rand.NewSource(seed)))
	repo := history.NewMemoryRepository()
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("Error closing history: %v", err)
		}
	}()

	g := game.NewGame(deck, game.WithHistory(repo), game.WithLogger(logger))
	g.Deal()

	printer := display.NewPrinter(os.Stdout, !cfg.NoColor)
	printer.Banner(game.MaxPlays, game.MaxDiscards)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Ctrl-C ends the game like quit; Run prints the summary and returns nil
	if err := console.New(g, repo, printer, logger, os.Stdin).Run(ctx); err != nil {
		logger.LogError(err)
		stop()
		log.Fatalf("Game aborted: %v", err)
	}
}
