package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/eladmint/whatsapp-analyzer/internal/app"
	"github.com/eladmint/whatsapp-analyzer/pkg/config"
	"github.com/eladmint/whatsapp-analyzer/pkg/logger"
)

// build metadata - set via ldflags during build/release
var version = "dev"

func main() {
	_ = godotenv.Load(".env")
	addrVal, dbVal, cfgVal, setFlags := config.ParseCommandFlags()

	cfg, err := config.Load(cfgVal)
	if err != nil {
		if setFlags["config"] {
			// an explicitly named config file must exist
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = &config.Config{}
	}
	config.LoadEnvOverrides(cfg)
	logger.InitWithLevel(cfg.Logging.Level)

	// flags win over config/env when explicitly provided
	addr := addrVal
	if !setFlags["addr"] && cfg.Server.Port != 0 {
		addr = cfg.Addr()
	}
	dbPath := dbVal
	if !setFlags["db"] && cfg.Storage.DBPath != "" {
		dbPath = cfg.Storage.DBPath
	}

	a, err := app.New(cfg, addr, dbPath, version)
	if err != nil {
		logger.Error("startup_failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		logger.Error("server_error", "error", err)
		os.Exit(1)
	}
}
