package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Vectus-Drive/backend/internal/app"
	"github.com/Vectus-Drive/backend/internal/bootstrap"
	"github.com/Vectus-Drive/backend/internal/shared/apperror"
)

func main() {
	_ = godotenv.Load()
	logger, err := bootstrap.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunWorker(); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}
