package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/portal"
	"github.com/temitayo1239/student-information-portal-main/internal/response"
	"github.com/temitayo1239/student-information-portal-main/internal/service"
)

// errorStatus maps a domain error to its HTTP status and error code. Errors
// that are not part of the domain map to INTERNAL_ERROR.
func errorStatus(err error) (int, response.ErrCode) {
	switch {
	case errors.Is(err, portal.ErrCreditLimitExceeded):
		return http.StatusUnprocessableEntity, response.ErrCreditLimitExceeded
	case errors.Is(err, portal.ErrAlreadyRegistered):
		return http.StatusConflict, response.ErrAlreadyRegistered
	case errors.Is(err, portal.ErrAlreadyInCart):
		return http.StatusConflict, response.ErrAlreadyInCart
	case errors.Is(err, portal.ErrUnknownCourse):
		return http.StatusNotFound, response.ErrUnknownCourse
	case errors.Is(err, portal.ErrNotificationNotFound):
		return http.StatusNotFound, response.ErrNotificationNotFound
	case errors.Is(err, portal.ErrInvalidFilter):
		return http.StatusBadRequest, response.ErrInvalidFilter
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, portal.ErrNotAuthenticated):
		return http.StatusUnauthorized, response.ErrSessionInvalidated
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, response.ErrInvalidCredentials
	default:
		return http.StatusInternalServerError, response.ErrInternal
	}
}

// failWithError writes the error response for err, logging anything
// unexpected.
func failWithError(c *gin.Context, log zerolog.Logger, err error) {
	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		log.Error().Err(err).
			Str("request_id", response.RequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}
	response.Fail(c, status, code)
}
