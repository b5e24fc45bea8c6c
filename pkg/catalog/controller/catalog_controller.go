package controller

import "github.com/labstack/echo/v4"

type CatalogController interface {
	Zones(c echo.Context) error
	Crops(c echo.Context) error
}
