package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_Wrapped(t *testing.T) {
	sentinel := New(KindNotFound, "thing not found")
	wrapped := fmt.Errorf("lookup: %w", sentinel)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, stderrors.Is(wrapped, sentinel))
	assert.Equal(t, KindInternal, KindOf(stderrors.New("plain")))
}

func TestRespond_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
		code   string
	}{
		{New(KindValidation, "bad"), http.StatusBadRequest, ErrCodeInvalidInput},
		{New(KindUnauthorized, "who"), http.StatusUnauthorized, ErrCodeUnauthorized},
		{New(KindInvalidCredentials, "wrong password"), http.StatusUnauthorized, ErrCodeInvalidCredentials},
		{New(KindForbidden, "no"), http.StatusForbidden, ErrCodeForbidden},
		{New(KindNotFound, "gone"), http.StatusNotFound, ErrCodeNotFound},
		{New(KindInvalidState, "not now"), http.StatusBadRequest, ErrCodeInvalidState},
		{New(KindConflict, "taken"), http.StatusConflict, ErrCodeConflict},
		{stderrors.New("db down"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, fmt.Errorf("wrapped: %w", tt.err))

			require.Equal(t, tt.status, w.Code)

			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}

func TestRespond_HidesInternalMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, stderrors.New("dial tcp 10.0.0.1:3306: connection refused"))

	assert.NotContains(t, w.Body.String(), "10.0.0.1")
	assert.Len(t, c.Errors, 1)
}

func TestBadRequestWithDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequestWithDetails(c, "Invalid request body", "unexpected EOF")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeInvalidInput, body.Code)
	assert.Equal(t, "unexpected EOF", body.Details)
}
