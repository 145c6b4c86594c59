// belsin is a turn-based dungeon crawler for the terminal.
//
// Usage:
//
//	belsin [-config belsin.yaml] [-seed 42] [-log /tmp/belsin.log]
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"belsin/internal/config"
	"belsin/internal/game"
	"belsin/internal/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "YAML file merged over the built-in defaults")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the config seed, or the clock when that is 0 too)")
	logPath := flag.String("log", "", "Diagnostics log file (default $XDG_STATE_HOME/belsin/belsin.log)")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log, closer, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Path: logPath})
	if err != nil {
		return err
	}
	defer closer.Close()
	log.WithFields(logrus.Fields{"seed": seed, "config": configPath}).Info("starting")

	g, err := game.New(cfg, log, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	if err := g.Run(screen); err != nil {
		log.WithError(err).Error("turn failed")
		return err
	}
	log.WithField("turns", g.Turns()).Info("quit")
	return nil
}
