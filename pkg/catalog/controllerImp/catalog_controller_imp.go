package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/akhilm2223/vertical-farmingg/entities"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog"
	"github.com/akhilm2223/vertical-farmingg/pkg/catalog/controller"
)

type CatalogCtrl struct{ cat *catalog.Catalog }

func New(cat *catalog.Catalog) *CatalogCtrl { return &CatalogCtrl{cat} }

// Zones lists zone definitions in classification order.
func (h *CatalogCtrl) Zones(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cat.Zones())
}

// Crops lists crop profiles. ?id= narrows the result to one crop.
func (h *CatalogCtrl) Crops(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		p, ok := h.cat.Crop(entities.CropID(id))
		if !ok {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
		}
		return c.JSON(http.StatusOK, p)
	}
	return c.JSON(http.StatusOK, h.cat.Crops())
}

var _ controller.CatalogController = (*CatalogCtrl)(nil)
