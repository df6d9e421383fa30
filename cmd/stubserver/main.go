package main

import (
	"context"
	"os"
	"time"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/bootstrap"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/shared/apperror"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/stubstore"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()
	r := gin.Default()

	repo := stubstore.NewMemoryRepository()
	if os.Getenv("SEED") != "false" {
		if err := stubstore.Seed(context.Background(), repo); err != nil {
			logger.Fatal("seed stub store failed", zap.Error(err))
		}
	}
	stubstore.RegisterRoutes(r, stubstore.NewHandler(repo))

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
	)
}
