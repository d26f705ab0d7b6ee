package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gharrison91/camp-connect-sub002/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name:            "not found",
			err:             apperrors.ErrNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedError:   "not_found",
			expectedMessage: "The requested resource was not found",
		},
		{
			name:            "conflict",
			err:             apperrors.ErrConflict,
			expectedStatus:  http.StatusConflict,
			expectedError:   "conflict",
			expectedMessage: "A conflict occurred with existing data",
		},
		{
			name:            "invalid input carries detail",
			err:             apperrors.Wrap(apperrors.ErrInvalidInput, "name cannot be blank"),
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedError:   "invalid_input",
			expectedMessage: "name cannot be blank: invalid input",
		},
		{
			name:            "unauthenticated",
			err:             apperrors.Wrap(apperrors.ErrUnauthenticated, "token expired"),
			expectedStatus:  http.StatusUnauthorized,
			expectedError:   "unauthenticated",
			expectedMessage: "Authentication is required",
		},
		{
			name:            "forbidden hides the reason",
			err:             apperrors.Wrap(apperrors.ErrForbidden, "portal access disabled"),
			expectedStatus:  http.StatusForbidden,
			expectedError:   "forbidden",
			expectedMessage: "You don't have access to this resource",
		},
		{
			name:            "misconfigured",
			err:             apperrors.Wrap(apperrors.ErrMisconfigured, "no verification method"),
			expectedStatus:  http.StatusInternalServerError,
			expectedError:   "misconfigured",
			expectedMessage: "The service is unable to process authentication",
		},
		{
			name:            "unknown error is not exposed",
			err:             assert.AnError,
			expectedStatus:  http.StatusInternalServerError,
			expectedError:   "internal_error",
			expectedMessage: "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleErrorGin(c, tt.err, testLogger())

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
			assert.Equal(t, tt.expectedMessage, response.Message)
		})
	}
}

func TestHandleErrorGin_UnauthenticatedChallenge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorGin(c, apperrors.ErrUnauthenticated, testLogger())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestHandleErrorGin_NilError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorGin(c, nil, testLogger())

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBadRequestGin(c, assert.AnError, testLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "bad_request", response.Error)
	assert.Equal(t, assert.AnError.Error(), response.Message)
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleValidationErrorGin(c, assert.AnError, testLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
	assert.Equal(t, assert.AnError.Error(), response.Message)
}
