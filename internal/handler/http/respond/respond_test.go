package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["message"])
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusBadRequest, errors.New("news_url is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "news_url is required")
}

func TestSafeError_ValidationPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusBadRequest, errors.New("news_url: must not be empty"))

	assert.Contains(t, rec.Body.String(), "must not be empty")
}

func TestSafeError_InternalDetailsMasked(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusInternalServerError, errors.New("pq: connection to postgres://user:[email protected] failed"))

	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestSafeError_5xxAlwaysGeneric(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusInternalServerError, errors.New("value must be positive"))

	assert.Contains(t, rec.Body.String(), "internal server error")
}
