package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akhilm2223/vertical-farmingg/config"
	"github.com/akhilm2223/vertical-farmingg/database"
	"github.com/akhilm2223/vertical-farmingg/logger"
	"github.com/akhilm2223/vertical-farmingg/router"
	"github.com/akhilm2223/vertical-farmingg/web"

	// Catalog
	catalogCtrlImp "github.com/akhilm2223/vertical-farmingg/pkg/catalog/controllerImp"
	catalogRepoImp "github.com/akhilm2223/vertical-farmingg/pkg/catalog/repositoryImp"
	catalogSvc "github.com/akhilm2223/vertical-farmingg/pkg/catalog/service"
	catalogSvcImp "github.com/akhilm2223/vertical-farmingg/pkg/catalog/serviceImp"

	// Plan
	"github.com/akhilm2223/vertical-farmingg/pkg/climate"
	planCtrlImp "github.com/akhilm2223/vertical-farmingg/pkg/plan/controllerImp"
	planSvcImp "github.com/akhilm2223/vertical-farmingg/pkg/plan/serviceImp"

	// Health
	healthCtrlImp "github.com/akhilm2223/vertical-farmingg/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log, err := logger.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	log.Info("config loaded",
		zap.String("env", cfg.Env),
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
	)

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath, cfg.LogLevel == "debug")
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	// 3) Catalog: seed when empty, then load and validate
	catSvc := catalogSvcImp.NewCatalogService(catalogRepoImp.New(db), log)
	cat, err := catSvc.Bootstrap(catalogSvc.Sources{
		Workbook: cfg.CatalogWorkbook,
		ZonesCSV: cfg.CatalogZonesCSV,
		CropsCSV: cfg.CatalogCropsCSV,
	})
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}
	log.Info("catalog ready", zap.Int("zones", len(cat.Zones())), zap.Int("crops", len(cat.Crops())))

	// 4) Planner
	rules := climate.New(cat)
	pSvc := planSvcImp.NewPlanService(rules, log)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("templates", zap.Error(err))
	}
	e.Renderer = renderer

	// 6) Router
	router.New(e, log,
		planCtrlImp.NewPlanCtrl(pSvc, log),
		catalogCtrlImp.New(cat),
		healthCtrlImp.NewHealthCtrl(db, cat),
	)

	// 7) Start, stop on SIGINT/SIGTERM
	go func() {
		log.Info("listening", zap.String("addr", ":"+cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
