package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPErrorDefaultsToBadRequest(t *testing.T) {
	err := NewHTTPError(140001, "invalid status", 0)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "invalid status", err.Error())
}

func TestValidationErrorCollector(t *testing.T) {
	c := NewValidationErrorCollector()
	assert.False(t, c.HasError())

	c.Add(NewValidationError(400, "status", "must be one of active, acknowledged, resolved")).
		Add(NewValidationError(400, "limit", "must be positive"))

	assert.True(t, c.HasError())
	assert.Len(t, c.Errors(), 2)
	assert.Equal(t, "status: must be one of active, acknowledged, resolved, limit: must be positive", c.Error())
}
