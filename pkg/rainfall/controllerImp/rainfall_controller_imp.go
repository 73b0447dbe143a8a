package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropplan/pkg/analytics"
	"cropplan/pkg/httperr"
	"cropplan/pkg/rainfall/service"
)

type RainfallCtrl struct{ svc service.RainfallService }

func New(svc service.RainfallService) *RainfallCtrl { return &RainfallCtrl{svc} }

func query(c echo.Context) (service.Query, error) {
	p, err := analytics.ParseRainPeriod(c.QueryParam("period"))
	if err != nil {
		return service.Query{}, err
	}
	return service.Query{Period: p, Location: strings.TrimSpace(c.QueryParam("location"))}, nil
}

func (h *RainfallCtrl) Create(c echo.Context) error {
	var req service.NewRain
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	rec, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *RainfallCtrl) List(c echo.Context) error {
	q, err := query(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	out, err := h.svc.List(c.Request().Context(), q)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RainfallCtrl) Summary(c echo.Context) error {
	q, err := query(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	sum, err := h.svc.Summary(c.Request().Context(), q)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *RainfallCtrl) Export(c echo.Context) error {
	q, err := query(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	b, err := h.svc.Export(c.Request().Context(), q)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.Blob(http.StatusOK, "application/pdf", b)
}
