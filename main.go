package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/dispatcher/pkg/audio"
	"github.com/golangdaddy/dispatcher/pkg/config"
	"github.com/golangdaddy/dispatcher/pkg/game"
	"github.com/golangdaddy/dispatcher/pkg/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a tuning .json file (defaults when empty)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	muted := flag.Bool("mute", false, "disable the siren")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dispatcher",
	})
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatal("bad log level", "level", *logLevel, "err", err)
	}
	logger.SetLevel(level)

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		logger.Fatal("loading tuning", "err", err)
	}

	var opts []sim.Option
	if !*muted {
		opts = append(opts, sim.WithSounds(audio.Open(logger)))
	}

	ebiten.SetTPS(cfg.GetTicksPerSecond())
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Traffic & Emergency Dispatch")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game.NewGame(cfg, logger, opts...)); err != nil {
		logger.Fatal("game loop", "err", err)
	}
}
