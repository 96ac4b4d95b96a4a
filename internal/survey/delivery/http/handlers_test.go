package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"polaris-api/internal/middleware"
	"polaris-api/internal/model"
	"polaris-api/internal/survey"
	"polaris-api/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	surveys []model.Survey
	err     error
	lastIn  survey.ListInput
	created survey.CreateInput
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, ip survey.ListInput) ([]model.Survey, error) {
	f.lastIn = ip
	return f.surveys, f.err
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, ip survey.CreateInput) (model.Survey, error) {
	f.created = ip
	if f.err != nil {
		return model.Survey{}, f.err
	}
	return model.Survey{ID: "s1", Title: ip.Title, Type: ip.Type, Status: model.SurveyStatusDraft}, nil
}

func (f *fakeUseCase) Analytics(ctx context.Context, sc model.Scope) (survey.Analytics, error) {
	return survey.Analytics{TotalSurveys: 4, ActiveSurveys: 1, TotalResponses: 90, AvgCompletionRate: 72.5}, f.err
}

func newTestRouter(uc survey.UseCase) *gin.Engine {
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
	uc := &fakeUseCase{}
	w := do(newTestRouter(uc), http.MethodGet, "/api/v1/surveys?status=active&type=customer", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, survey.Filter{Status: "active", Type: "customer"}, uc.lastIn.Filter)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "created", body: `{"title":"Q4 pulse","type":"employee"}`, want: http.StatusCreated},
		{name: "missing title", body: `{"type":"employee"}`, want: http.StatusBadRequest},
		{name: "bad status", body: `{"title":"Q4","type":"employee","status":"live"}`, err: survey.ErrInvalidStatus, want: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(newTestRouter(&fakeUseCase{err: tc.err}), http.MethodPost, "/api/v1/surveys", tc.body)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAnalyticsHandler(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/api/v1/surveys/analytics", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data survey.Analytics `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 90, body.Data.TotalResponses)
	assert.Equal(t, 72.5, body.Data.AvgCompletionRate)
}
