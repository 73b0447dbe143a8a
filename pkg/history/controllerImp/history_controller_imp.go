package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"cropplan/pkg/analytics"
	"cropplan/pkg/history/service"
	"cropplan/pkg/httperr"
)

type HistoryCtrl struct{ svc service.HistoryService }

func New(svc service.HistoryService) *HistoryCtrl { return &HistoryCtrl{svc} }

func (h *HistoryCtrl) Create(c echo.Context) error {
	var req service.NewRecord
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	rec, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *HistoryCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), strings.TrimSpace(c.QueryParam("field")))
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Stats serves GET /history/stats?field=&by=field|crop.
func (h *HistoryCtrl) Stats(c echo.Context) error {
	opts := analytics.AggregateOptions{
		FieldID: strings.TrimSpace(c.QueryParam("field")),
		By:      analytics.GroupBy(strings.ToLower(strings.TrimSpace(c.QueryParam("by")))),
	}
	rep, err := h.svc.Aggregate(c.Request().Context(), opts)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *HistoryCtrl) Fields(c echo.Context) error {
	out, err := h.svc.Fields(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
