package controllerImp

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"cropplan/pkg/httperr"
	"cropplan/pkg/machine/service"
)

type MachineCtrl struct{ svc service.MachineService }

func New(svc service.MachineService) *MachineCtrl { return &MachineCtrl{svc} }

func (h *MachineCtrl) Create(c echo.Context) error {
	var req service.NewMachine
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	m, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

// GET /machines?type=tractor|harvester|...|all
func (h *MachineCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MachineCtrl) Summary(c echo.Context) error {
	sum, err := h.svc.Summary(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *MachineCtrl) Get(c echo.Context) error {
	d, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *MachineCtrl) Update(c echo.Context) error {
	var req service.NewMachine
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	m, err := h.svc.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MachineCtrl) UploadImage(c echo.Context) error {
	b, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return httperr.JSON(c, err)
	}
	if err := h.svc.UploadImage(c.Request().Context(), c.Param("id"), b); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MachineCtrl) LogActivity(c echo.Context) error {
	if err := h.svc.LogActivity(c.Request().Context(), c.Param("id")); err != nil {
		return httperr.JSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MachineCtrl) ExportReport(c echo.Context) error {
	b, err := h.svc.ExportReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.Blob(http.StatusOK, "application/pdf", b)
}

func (h *MachineCtrl) ScheduleMaintenance(c echo.Context) error {
	var req service.NewMaintenance
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	rec, err := h.svc.ScheduleMaintenance(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *MachineCtrl) Pending(c echo.Context) error {
	out, err := h.svc.Pending(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
