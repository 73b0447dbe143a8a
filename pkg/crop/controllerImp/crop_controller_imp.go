package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	"cropplan/pkg/crop/service"
	"cropplan/pkg/httperr"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func (h *CropCtrl) Create(c echo.Context) error {
	var req service.NewPlan
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	p, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *CropCtrl) List(c echo.Context) error {
	f, err := analytics.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	out, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Summary(c echo.Context) error {
	f, err := analytics.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	sum, err := h.svc.Summary(c.Request().Context(), f)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *CropCtrl) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

type datesReq struct {
	PlantingDate string `json:"planting_date"`
	HarvestDate  string `json:"harvest_date"`
}

func (h *CropCtrl) UpdateDates(c echo.Context) error {
	var req datesReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	p, err := h.svc.UpdateDates(c.Request().Context(), c.Param("id"), req.PlantingDate, req.HarvestDate)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CropCtrl) UpdateStatus(c echo.Context) error {
	var req struct {
		Status entities.CropStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	p, err := h.svc.Transition(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Cycle is the stateless calculator behind the planning form.
func (h *CropCtrl) Cycle(c echo.Context) error {
	var req datesReq
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	n, err := h.svc.Cycle(req.PlantingDate, req.HarvestDate)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"planting_date": req.PlantingDate,
		"harvest_date":  req.HarvestDate,
		"cycle":         n,
	})
}

func (h *CropCtrl) CycleLabel(c echo.Context) error {
	var req struct {
		Name   string `json:"name"`
		Season string `json:"season"`
	}
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	l, err := h.svc.CycleLabel(req.Name, req.Season)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, l)
}
