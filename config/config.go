package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"

	framesPerSecond = 60

	// DefaultTerminalLogFile keeps log lines off the terminal the game draws on.
	DefaultTerminalLogFile = "spinach-snake.log"
)

type Config struct {
	Frontend     string
	GridWidth    int
	GridHeight   int
	ScreenWidth  int
	ScreenHeight int
	FrameMs      uint64 // target frame duration
	Seed         uint64 // 0 picks a seed from the clock
	Autopilot    bool
	QTablePath   string
	LogLevel     string
	LogFile      string
}

func Default() Config {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}

	return Config{
		Frontend:     FrontendRaylib,
		GridWidth:    32,
		GridHeight:   32,
		ScreenWidth:  640,
		ScreenHeight: 640,
		FrameMs:      1000 / framesPerSecond,
		LogLevel:     level,
	}
}

// FromFlags parses args on top of Default and validates the result.
func FromFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "frontend to play in: raylib or terminal")
	fs.IntVar(&cfg.GridWidth, "grid-width", cfg.GridWidth, "grid width in cells")
	fs.IntVar(&cfg.GridHeight, "grid-height", cfg.GridHeight, "grid height in cells")
	fs.IntVar(&cfg.ScreenWidth, "screen-width", cfg.ScreenWidth, "window width in pixels (raylib)")
	fs.IntVar(&cfg.ScreenHeight, "screen-height", cfg.ScreenHeight, "window height in pixels (raylib)")
	fs.Uint64Var(&cfg.FrameMs, "frame-ms", cfg.FrameMs, "target frame duration in milliseconds")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "placement RNG seed, 0 for a random one")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "let the Q-learning agent steer")
	fs.StringVar(&cfg.QTablePath, "qtable", cfg.QTablePath, "Q-table file the autopilot loads and saves")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (also LOG_LEVEL)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write JSON logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Frontend == FrontendTerminal && cfg.LogFile == "" {
		cfg.LogFile = DefaultTerminalLogFile
	}

	return cfg, cfg.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var merr *multierror.Error

	if c.Frontend != FrontendRaylib && c.Frontend != FrontendTerminal {
		merr = multierror.Append(merr, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("grid must be positive, got %dx%d", c.GridWidth, c.GridHeight))
	}
	if c.Frontend == FrontendRaylib && (c.ScreenWidth <= 0 || c.ScreenHeight <= 0) {
		merr = multierror.Append(merr, fmt.Errorf("screen must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.FrameMs == 0 {
		merr = multierror.Append(merr, fmt.Errorf("frame duration must be positive"))
	}
	if c.QTablePath != "" && !c.Autopilot {
		merr = multierror.Append(merr, fmt.Errorf("-qtable needs -autopilot"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log level: %w", err))
	}

	return merr.ErrorOrNil()
}
