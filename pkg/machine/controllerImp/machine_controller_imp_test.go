package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropplan/database"
	"cropplan/pkg/machine/repositoryImp"
	"cropplan/pkg/machine/serviceImp"
)

func TestMachineEndpoints(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "machines.db"))
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2025, 4, 16, 12, 0, 0, 0, time.UTC) }
	h := New(serviceImp.NewMachineService(repositoryImp.New(db), now, zerolog.Nop()))
	e := echo.New()
	e.GET("/machines", h.List)
	e.POST("/machines", h.Create)
	e.GET("/machines/summary", h.Summary)
	e.GET("/machines/:id", h.Get)
	e.PUT("/machines/:id", h.Update)
	e.POST("/machines/:id/image", h.UploadImage)
	e.POST("/machines/:id/activities", h.LogActivity)
	e.GET("/machines/:id/report", h.ExportReport)
	e.GET("/maintenance", h.Pending)
	e.POST("/maintenance", h.ScheduleMaintenance)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/machines", `{"name":"Pulverizador Jacto","model":"Uniport 3030","code":"PL-JC-01","type":"sprayer","hours_used":980,"cost_per_hour":120}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/machines", `{"name":"Sem código","model":"X"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/machines", `{`).Code)

	rec = do(http.MethodGet, "/machines?type=sprayer", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PL-JC-01")
	assert.Equal(t, "[]\n", do(http.MethodGet, "/machines?type=plane", "").Body.String())
	assert.Equal(t, http.StatusBadRequest, do(http.MethodGet, "/machines?type=boat", "").Code)

	rec = do(http.MethodPost, "/maintenance", `{"machine_id":"`+created.ID+`","date":"2025-04-05","type":"corrective","description":"Reparo na bomba","cost":3200}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/maintenance", `{"machine_id":"ghost","description":"x"}`).Code)

	rec = do(http.MethodGet, "/machines/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_maintenance":"3200"`)
	assert.Contains(t, rec.Body.String(), `"maintenance_cost_per_hour":"3.27"`)
	assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/machines/ghost", "").Code)

	rec = do(http.MethodGet, "/maintenance", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"machine_name":"Pulverizador Jacto"`)

	rec = do(http.MethodGet, "/machines/summary", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pending_maintenance":1`)

	assert.Equal(t, http.StatusNotImplemented, do(http.MethodPut, "/machines/"+created.ID, `{}`).Code)
	assert.Equal(t, http.StatusNotImplemented, do(http.MethodPost, "/machines/"+created.ID+"/image", "png").Code)
	assert.Equal(t, http.StatusNotImplemented, do(http.MethodPost, "/machines/"+created.ID+"/activities", "").Code)
	assert.Equal(t, http.StatusNotImplemented, do(http.MethodGet, "/machines/"+created.ID+"/report", "").Code)
}
