package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"polaris-api/internal/dashboard"
	"polaris-api/internal/middleware"
	"polaris-api/internal/model"
	"polaris-api/pkg/filter"
	"polaris-api/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUseCase struct {
	err    error
	lastIn dashboard.GetInput
}

func (f *fakeUseCase) Get(ctx context.Context, sc model.Scope, ip dashboard.GetInput) (dashboard.Overview, error) {
	f.lastIn = ip
	return dashboard.Overview{}, f.err
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "ok", want: http.StatusOK},
		{name: "bad range", err: filter.ErrInvalidTimeWindow, want: http.StatusBadRequest},
	}

	gin.SetMode(gin.TestMode)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			r := gin.New()
			New(log.NewNop(), uc, nil).RegisterRoutes(r.Group("/api/v1"), middleware.New(log.NewNop(), nil, nil))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?time_range=90d", nil))

			assert.Equal(t, tc.want, w.Code)
			assert.Equal(t, "90d", uc.lastIn.TimeRange)
		})
	}
}
