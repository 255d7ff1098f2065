package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/kpi-dashboard/internal/config"
	appHTTP "github.com/cmlabs-hris/kpi-dashboard/internal/handler/http"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/diagnostic"
	"github.com/cmlabs-hris/kpi-dashboard/internal/pkg/jwt"
	"github.com/cmlabs-hris/kpi-dashboard/internal/repository/postgresql"
	kpiService "github.com/cmlabs-hris/kpi-dashboard/internal/service/kpi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	level, _ := cfg.SlogLevel()
	logger := appHTTP.NewLogger(os.Stdout, cfg.App, level)
	slog.SetDefault(logger)

	db := database.NewHandle(cfg.Supabase.URL, cfg.Supabase.Key)
	if err := db.Validate(); err != nil {
		var cfgErr *database.ConfigurationError
		if errors.As(err, &cfgErr) {
			logger.Error("Data store is not configured", slog.Any("missing", cfgErr.Missing))
		}
		log.Fatal(err)
	}

	gateway := postgresql.NewGateway(db, diagnostic.NewLogReporter(logger))
	kpiRepo := postgresql.NewKPIRepository(gateway, postgresql.Tables{
		Sales:       cfg.Store.SalesTable,
		Labor:       cfg.Store.LaborTable,
		Waste:       cfg.Store.WasteTable,
		StoreColumn: cfg.Store.StoreColumn,
	})
	kpiSvc := kpiService.NewKPIService(kpiRepo, cfg.Store.DefaultWindowDays)
	kpiHandler := appHTTP.NewKPIHandler(kpiSvc, cfg.Store.PCNumber)

	var JWTService jwt.Service
	if cfg.AuthEnabled() {
		JWTService = jwt.NewJWTService(cfg.Auth.Secret)
	} else {
		logger.Warn("AUTH_JWT_SECRET is not set, API is open")
	}

	router := appHTTP.NewRouter(logger, appHTTP.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		DefaultStoreID: cfg.Store.PCNumber,
		LogLevel:       level,
	}, JWTService, kpiHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Server running", slog.String("addr", "http://localhost"+port), slog.String("store", cfg.Store.PCNumber))
	if err := http.ListenAndServe(port, router); err != nil {
		logger.Error("Server error", slog.Any("error", err))
		os.Exit(1)
	}
}
