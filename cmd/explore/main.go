package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/expenses/snowy/assets"
	"github.com/expenses/snowy/internal/domain"
	"github.com/expenses/snowy/internal/engine"
	"github.com/expenses/snowy/internal/infrastructure/storage"
	"github.com/expenses/snowy/internal/terminal"
	"github.com/expenses/snowy/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run возвращает код выхода. os.Exit пропускает defer, поэтому он вызывается только в main.
func run() int {
	var mapPath, logPath, recordDir string
	flag.StringVar(&mapPath, "map", "", "Path to a map JSON file (embedded map by default)")
	flag.StringVar(&logPath, "log", "", "Write logs to this file (discarded otherwise)")
	flag.StringVar(&recordDir, "record", "", "Directory to write a replay of this session into")
	flag.Parse()

	logger.Init()
	// Терминал занят отрисовкой: логи либо в файл, либо никуда
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to open log file")
		}
		defer f.Close()
		logger.Redirect(f)
	} else {
		logger.Redirect(io.Discard)
	}

	mapData := assets.WorldMap
	if mapPath != "" {
		data, err := os.ReadFile(mapPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to read map")
		}
		mapData = data
	}

	sim, err := engine.Boot(engine.NewConfig(), mapData)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load world")
	}

	var replay *domain.ReplaySession
	if recordDir != "" {
		replay = &domain.ReplaySession{
			Timestamp:   time.Now().Unix(),
			MapChecksum: engine.MapChecksum(mapData),
		}
	}

	app := terminal.NewApp(sim, replay)
	runErr := app.Run()
	if runErr != nil {
		logger.Log.WithError(runErr).Error("Terminal frontend failed")
	}

	// Реплей сохраняем и после сбоя терминала
	if err := saveReplay(recordDir, replay); err != nil {
		logger.Log.WithError(err).Error("Failed to save replay")
	}

	if runErr != nil {
		return 1
	}
	return 0
}

func saveReplay(dir string, replay *domain.ReplaySession) error {
	if replay == nil || len(replay.Actions) == 0 {
		return nil
	}
	replays, err := storage.NewReplayService(dir)
	if err != nil {
		return fmt.Errorf("prepare replay dir: %w", err)
	}
	path, err := replays.Save(replay)
	if err != nil {
		return err
	}
	logger.Log.WithField("path", path).Info("Replay saved")
	return nil
}
