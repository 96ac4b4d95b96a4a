package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"polaris-api/internal/middleware"
	"polaris-api/internal/model"
	"polaris-api/internal/user"
	"polaris-api/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	err     error
	lastIn  user.ListInput
	lastUpd user.UpdateProfileInput
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id string) (user.UserOutput, error) {
	return user.UserOutput{User: model.User{ID: id}}, f.err
}

func (f *fakeUseCase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	return user.UserOutput{User: model.User{ID: "u1", Email: "ana@polaris.io"}}, f.err
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, ip user.ListInput) ([]model.User, error) {
	f.lastIn = ip
	return nil, f.err
}

func (f *fakeUseCase) UpdateProfile(ctx context.Context, sc model.Scope, ip user.UpdateProfileInput) (user.UserOutput, error) {
	f.lastUpd = ip
	return user.UserOutput{}, f.err
}

func newTestRouter(uc user.UseCase) *gin.Engine {
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

func TestMeRoutesBeatIDParam(t *testing.T) {
	w := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/api/v1/users/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"ana@polaris.io"`)
}

func TestUpdateProfileHandler(t *testing.T) {
	uc := &fakeUseCase{}
	w := do(newTestRouter(uc), http.MethodPatch, "/api/v1/users/me", `{"department":"Support"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.lastUpd.Department)
	assert.Equal(t, "Support", *uc.lastUpd.Department)
	assert.Nil(t, uc.lastUpd.FirstName)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		method string
		path   string
		want   int
	}{
		{name: "anonymous me", err: user.ErrUnauthorized, method: http.MethodGet, path: "/api/v1/users/me", want: http.StatusUnauthorized},
		{name: "unknown id", err: user.ErrUserNotFound, method: http.MethodGet, path: "/api/v1/users/x", want: http.StatusNotFound},
		{name: "empty patch", err: user.ErrEmptyPatch, method: http.MethodPatch, path: "/api/v1/users/me", want: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(newTestRouter(&fakeUseCase{err: tc.err}), tc.method, tc.path, `{}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
