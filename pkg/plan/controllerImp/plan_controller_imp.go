package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akhilm2223/vertical-farmingg/pkg/plan/controller"
	"github.com/akhilm2223/vertical-farmingg/pkg/plan/service"
	"github.com/akhilm2223/vertical-farmingg/pkg/plan/types"
	"github.com/akhilm2223/vertical-farmingg/web"
)

type PlanCtrl struct {
	svc service.PlanService
	log *zap.Logger
}

func NewPlanCtrl(svc service.PlanService, log *zap.Logger) *PlanCtrl {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlanCtrl{svc: svc, log: log}
}

// Form renders the empty input form.
func (h *PlanCtrl) Form(c echo.Context) error {
	return c.Render(http.StatusOK, web.PageForm, web.NewFormPage())
}

// Results handles the form post and renders the plan page. Invalid input
// re-renders the form with the submitted values and field messages.
func (h *PlanCtrl) Results(c echo.Context) error {
	var f types.PlanForm
	if err := c.Bind(&f); err != nil {
		return c.String(http.StatusBadRequest, "bad form")
	}
	in, errs := f.ToInput()
	if errs != nil {
		h.log.Info("plan form rejected", zap.Error(errs))
		page := web.NewFormPage()
		page.Form = f
		page.Errors = errs
		return c.Render(http.StatusBadRequest, web.PageForm, page)
	}
	return c.Render(http.StatusOK, web.PageResults, web.ResultsPage{Plan: h.svc.Generate(in)})
}

// Create is the JSON API for plan generation.
func (h *PlanCtrl) Create(c echo.Context) error {
	var req types.PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	in, errs := req.ToInput()
	if errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "invalid input",
			"fields": map[string]string(errs),
		})
	}
	return c.JSON(http.StatusOK, h.svc.Generate(in))
}

var _ controller.PlanController = (*PlanCtrl)(nil)
