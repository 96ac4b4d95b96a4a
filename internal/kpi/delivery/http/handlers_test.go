package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"polaris-api/internal/kpi"
	"polaris-api/internal/middleware"
	"polaris-api/internal/model"
	"polaris-api/pkg/filter"
	"polaris-api/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	kpis    []model.KPI
	err     error
	lastIn  kpi.ListInput
	lastUpd kpi.UpdateInput
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, ip kpi.ListInput) ([]model.KPI, error) {
	f.lastIn = ip
	return f.kpis, f.err
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.KPI, error) {
	if f.err != nil {
		return model.KPI{}, f.err
	}
	return f.kpis[0], nil
}

func (f *fakeUseCase) Update(ctx context.Context, sc model.Scope, ip kpi.UpdateInput) (model.KPI, error) {
	f.lastUpd = ip
	if f.err != nil {
		return model.KPI{}, f.err
	}
	return f.kpis[0], nil
}

func (f *fakeUseCase) Trends(ctx context.Context, sc model.Scope, ip kpi.TrendsInput) ([]kpi.TrendPoint, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []kpi.TrendPoint{{Date: "2026-10-15", Count: 1}}, nil
}

func newTestRouter(uc kpi.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(r.Group("/api/v1"), middleware.New(log.NewNop(), nil, nil))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListHandler(t *testing.T) {
	uc := &fakeUseCase{kpis: []model.KPI{{ID: "k1", Name: "NPS", Status: model.KPIStatusOnTrack}}}
	w := do(newTestRouter(uc), http.MethodGet, "/api/v1/kpis?department=Sales&status=all&limit=5", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, kpi.Filter{Department: "Sales", Status: "all", Limit: 5}, uc.lastIn.Filter)

	var body struct {
		Data listResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "on-track", body.Data.Items[0].Status)
}

func TestUpdateHandler(t *testing.T) {
	uc := &fakeUseCase{kpis: []model.KPI{{ID: "k1"}}}
	w := do(newTestRouter(uc), http.MethodPatch, "/api/v1/kpis/k1", `{"value": 88, "status": "at-risk"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "k1", uc.lastUpd.ID)
	require.NotNil(t, uc.lastUpd.Status)
	assert.Equal(t, model.KPIStatusAtRisk, *uc.lastUpd.Status)
	assert.Nil(t, uc.lastUpd.Target)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		method string
		path   string
		body   string
		want   int
	}{
		{name: "not found", err: kpi.ErrKPINotFound, method: http.MethodGet, path: "/api/v1/kpis/k9", want: http.StatusNotFound},
		{name: "invalid status", err: kpi.ErrInvalidStatus, method: http.MethodPatch, path: "/api/v1/kpis/k1", body: `{"status":"x"}`, want: http.StatusBadRequest},
		{name: "bad range", err: filter.ErrInvalidTimeWindow, method: http.MethodGet, path: "/api/v1/kpis/trends?time_range=abc", want: http.StatusBadRequest},
		{name: "store failure", err: errors.New("pq: connection refused"), method: http.MethodGet, path: "/api/v1/kpis", want: http.StatusInternalServerError},
		{name: "malformed body", method: http.MethodPatch, path: "/api/v1/kpis/k1", body: `{`, want: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(newTestRouter(&fakeUseCase{err: tc.err, kpis: []model.KPI{{ID: "k1"}}}), tc.method, tc.path, tc.body)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
