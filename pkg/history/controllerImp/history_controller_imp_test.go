package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropplan/database"
	"cropplan/pkg/analytics"
	"cropplan/pkg/history/repositoryImp"
	"cropplan/pkg/history/serviceImp"
)

func TestHistoryEndpoints(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	h := New(serviceImp.NewHistoryService(repositoryImp.New(db), zerolog.Nop()))
	e := echo.New()
	e.POST("/history", h.Create)
	e.GET("/history", h.List)
	e.GET("/history/stats", h.Stats)
	e.GET("/history/fields", h.Fields)

	post := func(body string) int {
		req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}
	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	assert.Equal(t, http.StatusCreated, post(`{"field_id":"field1","field_name":"Talhão 1","crop_name":"Soja","season":"2023/2024","yield_per_hectare":62,"total_yield":2480}`))
	assert.Equal(t, http.StatusCreated, post(`{"field_id":"field2","field_name":"Talhão 2","crop_name":"Soja","season":"2022/2023","yield_per_hectare":65,"total_yield":1950}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"field_id":"","crop_name":"Soja"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{bad`))

	rec := get("/history/stats?field=field2&by=crop")
	require.Equal(t, http.StatusOK, rec.Code)
	var rep analytics.HistoryReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 1, rep.Records)
	require.Len(t, rep.Groups, 1)
	assert.Equal(t, 65.0, rep.Groups[0].Stats.MaxYield)

	assert.Equal(t, http.StatusBadRequest, get("/history/stats?by=season").Code)

	rec = get("/history?field=field1")
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = get("/history/fields")
	assert.Contains(t, rec.Body.String(), "Talhão 2")
}
