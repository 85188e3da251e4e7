package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/Immanah/FinancialWellnessHub/internal/advisor"
	"github.com/Immanah/FinancialWellnessHub/internal/api"
	"github.com/Immanah/FinancialWellnessHub/internal/auth"
	"github.com/Immanah/FinancialWellnessHub/internal/config"
	"github.com/Immanah/FinancialWellnessHub/internal/logger"
	"github.com/Immanah/FinancialWellnessHub/internal/service"
	"github.com/Immanah/FinancialWellnessHub/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.Init(cfg.Env == "development", cfg.LogLevel); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Get()

	db, err := store.New(cfg.DBSource)
	if err != nil {
		zlog.Fatal("unable to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Wire the layers explicitly; nothing holds a global connection.
	ledger := service.NewLedger(db.Pool())
	goals := service.NewGoals(db.Pool())
	generator := advisor.NewOpenAIGenerator(cfg.OpenAIAPIKey)
	adviser := advisor.New(generator, zlog)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	handler := api.NewHandler(db, ledger, goals, adviser, tokens, zlog)

	zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := http.ListenAndServe(":"+cfg.Port, handler.Router()); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
