package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	Success(rr, http.StatusOK, "ok", map[string]int{"total": 2})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"ok","data":{"total":2}}`, rr.Body.String())
}

func TestNotFound_DefaultMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFound(rr, "")

	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "Resource not found", resp.Message)
}

func TestValidationError(t *testing.T) {
	rr := httptest.NewRecorder()
	ValidationError(rr, map[string]string{"Sort": "Sort must be one of: fees experience"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Validation failed")
}
