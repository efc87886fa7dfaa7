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

// RegistrationHandler serves the course catalog and the registration cart.
type RegistrationHandler struct {
	portal *service.PortalService
	log    zerolog.Logger
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(portal *service.PortalService, log zerolog.Logger) *RegistrationHandler {
	return &RegistrationHandler{portal: portal, log: logger.Component(log, "registration_handler")}
}

// ListCourses godoc
// GET /api/v1/student/courses
// Returns every catalog course with its registration state.
func (h *RegistrationHandler) ListCourses(c *gin.Context) {
	courses, err := h.portal.Courses(c.Request.Context(), middleware.GetClaims(c).SessionID())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, courses)
}

// GetRegistration godoc
// GET /api/v1/student/registration
func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	summary, err := h.portal.Registration(c.Request.Context(), middleware.GetClaims(c).SessionID())
	h.respond(c, summary, err)
}

// AddToCart godoc
// POST /api/v1/student/registration/cart
// Stages a course. Rejected when it would push the total past 24 credits.
func (h *RegistrationHandler) AddToCart(c *gin.Context) {
	var req model.AddToCartRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	summary, err := h.portal.AddToCart(c.Request.Context(), middleware.GetClaims(c).SessionID(), req.Code)
	h.respond(c, summary, err)
}

// RemoveFromCart godoc
// DELETE /api/v1/student/registration/cart/:code
func (h *RegistrationHandler) RemoveFromCart(c *gin.Context) {
	summary, err := h.portal.RemoveFromCart(c.Request.Context(), middleware.GetClaims(c).SessionID(), c.Param("code"))
	h.respond(c, summary, err)
}

// CommitRegistration godoc
// POST /api/v1/student/registration/commit
func (h *RegistrationHandler) CommitRegistration(c *gin.Context) {
	summary, err := h.portal.CommitRegistration(c.Request.Context(), middleware.GetClaims(c).SessionID())
	h.respond(c, summary, err)
}

// DropCourse godoc
// DELETE /api/v1/student/registration/courses/:code
func (h *RegistrationHandler) DropCourse(c *gin.Context) {
	summary, err := h.portal.DropCourse(c.Request.Context(), middleware.GetClaims(c).SessionID(), c.Param("code"))
	h.respond(c, summary, err)
}

func (h *RegistrationHandler) respond(c *gin.Context, summary model.RegistrationSummary, err error) {
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, summary)
}
