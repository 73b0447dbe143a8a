package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cropplan/entities"
	"cropplan/pkg/httperr"
	"cropplan/pkg/plot/service"
)

type PlotCtrl struct{ svc service.PlotService }

func New(svc service.PlotService) *PlotCtrl { return &PlotCtrl{svc} }

func (h *PlotCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) Create(c echo.Context) error {
	var req service.NewPlot
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	p, err := h.svc.Add(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlotCtrl) Update(c echo.Context) error {
	var req entities.Plot
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	if err := h.svc.Update(c.Request().Context(), c.Param("id"), req); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
