// Command dispatchd runs the dispatcher simulation headless and streams it
// to websocket spectators, who may also send dispatch commands.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/golangdaddy/dispatcher/pkg/config"
	"github.com/golangdaddy/dispatcher/pkg/sim"
	"github.com/golangdaddy/dispatcher/pkg/spectate"
)

func main() {
	configPath := flag.String("config", "", "path to a tuning .json file (defaults when empty)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	listen := flag.String("listen", "", "override spectator_addr from the tuning file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dispatchd",
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
	addr := cfg.GetSpectatorAddr()
	if *listen != "" {
		addr = *listen
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	commands := make(chan string, 64)
	hub := spectate.NewHub(logger.WithPrefix("hub"), commands)
	simulation := sim.New(cfg, sim.WithLogger(logger.WithPrefix("sim")))
	runner := spectate.NewRunner(simulation, hub, commands, cfg.GetTickInterval(), logger)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		hub.Run(ctx)
		logger.Info("hub stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("runner failed", "err", err)
		}
		logger.Info("runner stopped")
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		server := &http.Server{
			Addr:              addr,
			Handler:           spectate.NewServer(hub, logger).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			logger.Info("spectator server listening", "addr", addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("spectator server", "err", err)
			}
		}()

		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("spectator server shutdown", "err", err)
			if err := server.Close(); err != nil {
				logger.Error("spectator server force close", "err", err)
			}
		}
		logger.Info("spectator server stopped")
	}()

	wg.Wait()
	logger.Info("graceful shutdown complete")
}
