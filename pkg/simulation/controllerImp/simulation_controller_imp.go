package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"cropplan/entities"
	"cropplan/pkg/analytics"
	"cropplan/pkg/httperr"
	"cropplan/pkg/simulation/service"
)

type SimulationCtrl struct{ svc service.SimulationService }

func New(svc service.SimulationService) *SimulationCtrl { return &SimulationCtrl{svc} }

// queryArea returns nil when ?area= is absent so the service default
// applies.
func queryArea(c echo.Context) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam("area"))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &analytics.ValidationError{Field: "area", Reason: "not a number: " + strconv.Quote(raw)}
	}
	return &v, nil
}

func (h *SimulationCtrl) Profiles(c echo.Context) error {
	out, err := h.svc.Profiles(c.Request().Context())
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SimulationCtrl) UpsertProfile(c echo.Context) error {
	var req entities.CropSimulationProfile
	if err := c.Bind(&req); err != nil {
		return httperr.BadJSON(c)
	}
	req.CropName = c.Param("crop")
	p, err := h.svc.UpsertProfile(c.Request().Context(), req)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *SimulationCtrl) Simulate(c echo.Context) error {
	area, err := queryArea(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	res, err := h.svc.Simulate(c.Request().Context(), c.Param("crop"), area)
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type compareReq struct {
	Crops    []string                         `json:"crops"`
	Profiles []entities.CropSimulationProfile `json:"profiles"`
}

// Compare serves both GET (stored profiles, ?crop= repeatable) and POST
// (inline profiles or crop names in the body).
func (h *SimulationCtrl) Compare(c echo.Context) error {
	area, err := queryArea(c)
	if err != nil {
		return httperr.JSON(c, err)
	}
	req := compareReq{Crops: c.QueryParams()["crop"]}
	if c.Request().Method == http.MethodPost {
		if err := c.Bind(&req); err != nil {
			return httperr.BadJSON(c)
		}
	}

	var cmp analytics.Comparison
	if len(req.Profiles) > 0 {
		cmp, err = h.svc.CompareProfiles(req.Profiles, area)
	} else {
		cmp, err = h.svc.Compare(c.Request().Context(), area, req.Crops...)
	}
	if err != nil {
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, cmp)
}
