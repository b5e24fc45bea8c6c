package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
)

var appStart = time.Now()

type HealthCtrl struct {
	db  *gorm.DB
	cat *catalog.Catalog
}

func NewHealthCtrl(db *gorm.DB, cat *catalog.Catalog) *HealthCtrl {
	return &HealthCtrl{db: db, cat: cat}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.checkDB(ctx)
	cat := sub{OK: h.cat != nil}
	if !cat.OK {
		cat.Err = "catalog not loaded"
	}

	allOK := db.OK && cat.OK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"catalog":  cat,
		},
		"time": time.Now().Format(time.RFC3339),
	}
	if h.cat != nil {
		resp["catalog"] = map[string]int{"zones": len(h.cat.Zones()), "crops": len(h.cat.Crops())}
	}
	return c.JSON(status, resp)
}

func (h *HealthCtrl) checkDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}
