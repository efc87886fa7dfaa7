package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/middleware"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
	"github.com/temitayo1239/student-information-portal-main/internal/response"
	"github.com/temitayo1239/student-information-portal-main/internal/service"
	"github.com/temitayo1239/student-information-portal-main/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	portal *service.PortalService
	log    zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(portal *service.PortalService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{portal: portal, log: logger.Component(log, "auth_handler")}
}

// StudentLogin godoc
// POST /api/v1/auth/student/login
// Accepts any non-empty matric number and password and starts a session.
func (h *AuthHandler) StudentLogin(c *gin.Context) {
	var req model.StudentLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, profile, err := h.portal.Login(c.Request.Context(), req.MatricNumber, req.Password)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, model.StudentLoginResponse{
		Token:   token,
		Student: profile,
	})
}

// StudentLogout godoc
// POST /api/v1/auth/student/logout
// Ends the session. Registration and inbox changes are discarded.
func (h *AuthHandler) StudentLogout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.portal.Logout(c.Request.Context(), claims.SessionID()); err != nil {
		failWithError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// GetStudentProfile godoc
// GET /api/v1/auth/student/me
// Returns the profile of the currently authenticated student.
func (h *AuthHandler) GetStudentProfile(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	profile, err := h.portal.Profile(c.Request.Context(), claims.SessionID())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"student": profile})
}
