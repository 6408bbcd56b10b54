package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"

	"spinach-snake/ai"
	"spinach-snake/config"
	"spinach-snake/game"
	"spinach-snake/game/manager"
	"spinach-snake/game/types"
	"spinach-snake/logging"
	"spinach-snake/term"
	"spinach-snake/ui"
)

func main() {
	if err := run(); err != nil {
		printErr("snake:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	grid := types.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight}
	ctrl, renderer, closeFrontend, err := openFrontend(cfg, grid)
	if err != nil {
		return err
	}

	clock := game.NewSystemClock()
	g := game.NewGame(grid, manager.NewPlacementService(grid, cfg.Seed), clock, logger)

	var pilot *ai.Autopilot
	if cfg.Autopilot {
		agent := ai.NewQLearning(cfg.Seed)
		if cfg.QTablePath != "" {
			if err := agent.LoadQTable(cfg.QTablePath); err != nil {
				closeFrontend()
				return err
			}
		}
		pilot = ai.NewAutopilot(ctrl, g, agent, logger)
		ctrl = pilot
	}

	stats := game.NewLoop(g, clock, cfg.FrameMs, logger).Run(ctrl, renderer)
	closeFrontend()

	if pilot != nil && cfg.QTablePath != "" {
		if err := pilot.Agent().SaveQTable(cfg.QTablePath); err != nil {
			logger.Error().Err(err).Str("path", cfg.QTablePath).Msg("Saving q-table failed")
			printErr("couldn't save q-table:", err)
		}
	}

	printSummary(g, stats)
	return nil
}

// openFrontend initializes the selected frontend. The returned func tears it
// down and must be called before printing to the terminal.
func openFrontend(cfg config.Config, grid types.Grid) (game.Controller, game.Renderer, func(), error) {
	switch cfg.Frontend {
	case config.FrontendTerminal:
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("create terminal screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return nil, nil, nil, fmt.Errorf("init terminal screen: %w", err)
		}
		return term.NewController(s), term.NewRenderer(s, grid), s.Fini, nil

	default:
		r := ui.NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight, grid)
		return ui.NewController(), r, r.Close, nil
	}
}

func printSummary(g *game.Game, stats *game.FrameStats) {
	state := "{{alive}}::green"
	if !g.Snake.Alive {
		state = "{{dead}}::red"
	}

	cfmt.Printf("{{Game}}::bold %s\n", g.ID)
	cfmt.Printf("  {{score:}}::lightCyan %d  {{size:}}::lightCyan %d  "+state+"\n", g.Score(), g.Size())
	cfmt.Printf("  {{frames:}}::lightCyan %d in %s, %d over budget\n",
		stats.Frames, stats.Elapsed().Round(time.Millisecond), stats.Overruns)
	if len(stats.FPSSamples) > 0 {
		cfmt.Printf("  {{fps:}}::lightCyan avg %.1f, median %.1f, min %d, max %d\n",
			stats.AverageFPS(), stats.MedianFPS(), stats.MinFPS(), stats.MaxFPS())
	}
}

func printErr(header string, err error) {
	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
}
