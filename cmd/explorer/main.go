package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"project-explorer/config"
	"project-explorer/dataset"
	"project-explorer/server"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	listen := flag.String("listen", "", "listen address, overrides config")
	input := flag.String("input", "", "path to project CSV file, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *input != "" {
		cfg.DataPath = *input
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	store := dataset.NewStore(cfg.DataPath, logger)
	// Load up front: a malformed CSV aborts startup instead of failing
	// every request later.
	if _, err := store.Dataset(); err != nil {
		logger.Fatal("dataset load failed", zap.Error(err))
	}

	srv := server.New(cfg, store, logger)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
