// Package main is the entry point for the muniboard display.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/randytsao24/muniboard/internal/board"
	"github.com/randytsao24/muniboard/internal/canvas"
	"github.com/randytsao24/muniboard/internal/config"
	"github.com/randytsao24/muniboard/internal/transit"
)

func main() {
	envFile := flag.String("config", "", "optional key=value config file")
	flag.Parse()

	cfg := config.Load(*envFile)

	level := slog.LevelInfo
	if cfg.DebugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := cfg.Validate(); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	lines, err := config.LoadLines(cfg.LinesFile)
	if err != nil {
		slog.Error("line catalog error", "error", err)
		os.Exit(1)
	}
	line := config.Line(lines, cfg.Line)
	name := cfg.LineName
	if name == "" {
		name = line.Name
	}

	c, err := canvas.New(canvas.Kind(cfg.Display), cfg.Brightness)
	if err != nil {
		slog.Error("canvas error", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting muniboard",
		"mode", cfg.Mode,
		"line", cfg.Line,
		"stop", cfg.StopID,
		"direction", cfg.Direction,
		"display", cfg.Display,
	)

	switch cfg.Mode {
	case config.ModeClock:
		err = board.NewClock(c).Run(ctx)
	default:
		source := newSource(cfg)
		renderer := board.NewRenderer(c, name, line.Color, cfg.Direction)
		err = board.NewLoop(source, c, renderer, cfg.Interval()).Run(ctx)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("display stopped", "error", err)
	}
	if err := c.Close(); err != nil {
		slog.Error("closing canvas", "error", err)
	}
	slog.Info("muniboard stopped")
}

// newSource picks the arrival source: recorded fixtures in test mode,
// canned demo data without an API key, otherwise the configured live
// feed format.
func newSource(cfg *config.Config) transit.Source {
	if cfg.TestMode && cfg.FixtureFile != "" {
		fixture, err := transit.LoadFixture(cfg.FixtureFile, cfg.Line, cfg.Direction)
		if err != nil {
			slog.Warn("fixture unavailable, using demo data", "file", cfg.FixtureFile, "error", err)
			return transit.NewDemo(cfg.Direction)
		}
		slog.Info("replaying fixtures", "file", cfg.FixtureFile, "snapshots", fixture.Len())
		return fixture
	}

	if cfg.Mode == config.ModeDemo || cfg.TestMode || cfg.APIKey == "" {
		if cfg.APIKey == "" && cfg.Mode == config.ModeBoard {
			slog.Warn("no MUNI_API_KEY configured, using demo data; get a free key at https://511.org/open-data/token")
		}
		return transit.NewDemo(cfg.Direction)
	}

	if cfg.FeedFormat == config.FeedGTFSRT {
		return transit.NewGTFSFeed(cfg.APIKey, cfg.Agency, cfg.Line, cfg.StopID, cfg.Direction, cfg.Timeout)
	}
	return transit.NewLiveFeed(cfg.APIKey, cfg.Agency, cfg.Line, cfg.StopID, cfg.Direction, cfg.Timeout)
}
