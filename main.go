package main

import (
	"log"

	"museum-concierge/cmd"
	"museum-concierge/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if err := cmd.RunServer(config, logger); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}
