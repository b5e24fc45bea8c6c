package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	catalogCtrl "github.com/akhilm2223/vertical-farmingg/pkg/catalog/controller"
	"github.com/akhilm2223/vertical-farmingg/pkg/middleware"
	planCtrl "github.com/akhilm2223/vertical-farmingg/pkg/plan/controller"
	"github.com/akhilm2223/vertical-farmingg/web"
)

func New(
	e *echo.Echo,
	log *zap.Logger,
	plan planCtrl.PlanController,
	cat catalogCtrl.CatalogController,
	health interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLog(log))

	e.StaticFS("/static", web.Static())
	e.GET("/health", health.Health)

	// HTML flow
	e.GET("/", plan.Form)
	e.POST("/results", plan.Results)

	api := e.Group("/api/v1")
	api.POST("/plans", plan.Create)
	api.GET("/catalog/zones", cat.Zones)
	api.GET("/catalog/crops", cat.Crops)
	return e
}
