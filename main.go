package main

import (
	"log/slog"
	"os"

	"os-scheduler/api"
	"os-scheduler/config"
	"os-scheduler/internal/util"
)

func main() {
	cfg := config.GetSchedulerConfig()
	logger := util.BuildLogger(cfg.LogLevel)

	app := api.NewApp(cfg, logger)
	logger.Info("starting scheduler api",
		slog.String("addr", cfg.Addr()),
		slog.Int("quantum", cfg.RoundRobinTimeQuantum),
		slog.Int("aging_rate", cfg.AgingRate),
	)

	if err := app.Listen(cfg.Addr()); err != nil {
		logger.Error("server stopped", util.ErrAttr(err))
		os.Exit(1)
	}
}
