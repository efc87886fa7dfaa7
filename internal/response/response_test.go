package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFailEnvelope(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		Fail(c, http.StatusUnprocessableEntity, ErrCreditLimitExceeded)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrCreditLimitExceeded, body.Error.Code)
	assert.Equal(t, GetMessage(ErrCreditLimitExceeded), body.Error.Message)
	assert.Equal(t, "abc-123", body.Metadata.RequestID)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRequestIDRejectsOversizedHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		Success(c, http.StatusOK, RequestID(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", 200))
	r.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	assert.Len(t, id, 36)
	assert.Contains(t, w.Body.String(), id)
}

func TestEveryCodeHasMessage(t *testing.T) {
	codes := []ErrCode{
		ErrInvalidCredentials, ErrSessionInvalidated, ErrTokenRequired, ErrTokenInvalid,
		ErrTokenExpired, ErrValidation, ErrInvalidID, ErrInvalidPayload, ErrInvalidFilter,
		ErrUnknownCourse, ErrAlreadyRegistered, ErrAlreadyInCart, ErrCreditLimitExceeded,
		ErrNotificationNotFound, ErrNotFound, ErrRateLimitExceeded, ErrInternal,
	}
	unknown := GetMessage("SOMETHING_ELSE")
	for _, code := range codes {
		assert.NotEqual(t, unknown, GetMessage(code), code)
	}
}
