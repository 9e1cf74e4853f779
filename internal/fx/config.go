package fx

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/bharath-541/FinSight/config"
	"github.com/bharath-541/FinSight/internal/logger"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env from current directory: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("warning: could not load ../../.env: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
