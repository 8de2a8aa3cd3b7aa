package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/expenses/snowy/assets"
	"github.com/expenses/snowy/internal/engine"
	"github.com/expenses/snowy/internal/infrastructure/storage"
	"github.com/expenses/snowy/internal/server"
	"github.com/expenses/snowy/internal/version"
	"github.com/expenses/snowy/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var replayPath, recordDir, mapPath string
	flag.StringVar(&replayPath, "replay", "", "Path to .snrp replay file to simulate")
	flag.StringVar(&recordDir, "record", "", "Directory to write a replay of this session into")
	flag.StringVar(&mapPath, "map", "", "Path to a map JSON file (embedded map by default)")
	flag.Parse()

	logger.Log.Info("Starting Snowy...")
	logger.Log.Info(version.String())

	mapData := assets.WorldMap
	if mapPath != "" {
		data, err := os.ReadFile(mapPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to read map")
		}
		mapData = data
	}
	checksum := engine.MapChecksum(mapData)
	cfg := engine.NewConfig()

	sim, err := engine.Boot(cfg, mapData)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load world")
	}

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("Mode: Replay Simulation")

		session, err := (&storage.ReplayService{}).Load(replayPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load replay")
		}
		if _, err := engine.Playback(sim, checksum, session); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return // Выходим после симуляции
	}

	var recorder engine.ReplayRecorder
	if recordDir != "" {
		replays, err := storage.NewReplayService(recordDir)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to prepare replay dir")
		}
		recorder = replays
	}

	port := os.Getenv("SNOWY_PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Инициализация ядра
	gameService := engine.NewService(sim, checksum, recorder)
	gameService.Start(ctx)

	// 3. Запуск сервера
	srv := server.New(gameService, port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Server error")
		stop()
	}

	logger.Log.Info("Shutting down...")
	<-gameService.Done() // реплей сохраняется при остановке цикла
	logger.Log.Info("Done.")
}
