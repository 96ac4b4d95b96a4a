package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "polaris-api/pkg/errors"
)

var errAlertNotFound = errors.New("alert not found")

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, fn func(c *gin.Context)) (int, Resp) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)
	fn(c)

	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestErrorParsing(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"validation", pkgErrors.NewValidationError(400, "status", "invalid"), http.StatusBadRequest, 400},
		{"http", pkgErrors.NewHTTPError(140004, "alert not found", http.StatusNotFound), http.StatusNotFound, 140004},
		{"wrapped http", fmt.Errorf("wrap: %w", pkgErrors.NewHTTPError(1, "x", http.StatusConflict)), http.StatusConflict, 1},
		{"unknown", errors.New("pq: connection refused"), http.StatusInternalServerError, InternalServerErrorCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := perform(t, func(c *gin.Context) { Error(c, tt.err, nil) })
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.ErrorCode)
		})
	}
}

func TestInternalErrorDoesNotLeakMessage(t *testing.T) {
	_, resp := perform(t, func(c *gin.Context) { Error(c, errors.New("pq: password authentication failed"), nil) })
	assert.Equal(t, DefaultErrorMessage, resp.Message)
}

func TestErrorWithMap(t *testing.T) {
	eMap := ErrorMapping{
		errAlertNotFound: pkgErrors.NewHTTPError(140004, "Alert not found", http.StatusNotFound),
	}

	status, resp := perform(t, func(c *gin.Context) {
		ErrorWithMap(c, fmt.Errorf("usecase: %w", errAlertNotFound), eMap, nil)
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Alert not found", resp.Message)
}

func TestPanicErrorWithNonError(t *testing.T) {
	status, resp := perform(t, func(c *gin.Context) { PanicError(c, "nil map", nil) })
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, InternalServerErrorCode, resp.ErrorCode)
}

func TestSplitMessage(t *testing.T) {
	msg := strings.Repeat("a", 30) + "\n" + strings.Repeat("b", 30)
	chunks := splitMessage(msg, 40)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 30), chunks[0])
	assert.Equal(t, strings.Repeat("b", 30), chunks[1])

	long := splitMessage(strings.Repeat("c", 100), 40)
	assert.Len(t, long, 3)
}
