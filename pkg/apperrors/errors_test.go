package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeDatabaseError, "users", "Lookup failed", http.StatusInternalServerError)

	assert.Contains(t, err.Error(), "users")
	assert.Contains(t, err.Error(), "Lookup failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))

	// Without a cause the message stands alone
	plain := New(CodeNotFound, "ads", "Ad not found", http.StatusNotFound)
	assert.Equal(t, "[ads:NOT_FOUND] Ad not found", plain.Error())
}

func TestAppError_MarshalJSON_HidesInternals(t *testing.T) {
	cause := errors.New("secret detail")
	err := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.NotContains(t, string(data), "secret detail")
	assert.NotContains(t, string(data), "500")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "INTERNAL_ERROR", got["code"])
	assert.Equal(t, "system", got["domain"])
}

func TestAsAppError(t *testing.T) {
	appErr := New(CodeNotFound, "ads", "Ad not found", http.StatusNotFound)

	got, ok := AsAppError(fmt.Errorf("handling request: %w", appErr))
	require.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestHandleError_ResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, ErrAdNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(CodeNotFound), body["error"]["code"])
	assert.Equal(t, "Ad not found", body["error"]["message"])
}

func TestHandleError_WrapsUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleError(c, errors.New("boom"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(CodeInternalError), body["error"]["code"])
}
