package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	apiconfig "intrinsic_valuation/pkg/api/config"
	apivaluation "intrinsic_valuation/pkg/api/valuation"
	"intrinsic_valuation/pkg/core/config"
	"intrinsic_valuation/pkg/core/fetch"
	"intrinsic_valuation/pkg/core/sector"
)

func main() {
	// Load environment variables
	godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// Sector table: config file wins, built-in table otherwise.
	sectors := sector.Default()
	if path := envOr("SECTORS_FILE", "config/sectors.yaml"); path != "" {
		if loaded, err := sector.Load(path); err != nil {
			logger.Warn("sector table load failed, using built-in",
				zap.String("path", path), zap.Error(err))
		} else {
			sectors = loaded
		}
	}

	assumptions, err := config.LoadAssumptions(envOr("ASSUMPTIONS_FILE", "config/assumptions.hjson"))
	if err != nil {
		logger.Warn("assumptions load failed, using defaults", zap.Error(err))
	}

	client := fetch.NewClient(logger)

	valuationHandler := apivaluation.NewHandler(client, sectors, assumptions, logger)
	http.HandleFunc("/api/valuation/analyze", valuationHandler.HandleAnalyze)
	http.HandleFunc("/api/valuation/report", valuationHandler.HandleReport)

	configHandler := apiconfig.NewHandler(assumptions, sectors)
	http.HandleFunc("/api/config", configHandler.HandleConfig)

	addr := ":" + envOr("PORT", "8080")
	logger.Info("API server starting",
		zap.String("addr", addr),
		zap.Strings("endpoints", []string{
			"POST /api/valuation/analyze",
			"GET  /api/valuation/report",
			"GET  /api/config",
		}))

	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
