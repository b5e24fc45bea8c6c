package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Form(c echo.Context) error
	Results(c echo.Context) error
	Create(c echo.Context) error
}
