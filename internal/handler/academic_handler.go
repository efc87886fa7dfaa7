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

// AcademicHandler serves the read-only academic pages.
type AcademicHandler struct {
	portal *service.PortalService
	log    zerolog.Logger
}

// NewAcademicHandler creates a new AcademicHandler.
func NewAcademicHandler(portal *service.PortalService, log zerolog.Logger) *AcademicHandler {
	return &AcademicHandler{portal: portal, log: logger.Component(log, "academic_handler")}
}

// GetDashboard godoc
// GET /api/v1/student/dashboard
func (h *AcademicHandler) GetDashboard(c *gin.Context) {
	d, err := h.portal.Dashboard(c.Request.Context(), middleware.GetClaims(c).SessionID())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// GetResults godoc
// GET /api/v1/student/results
func (h *AcademicHandler) GetResults(c *gin.Context) {
	results := h.portal.Results()
	out := make([]gin.H, 0, len(results))
	for _, r := range results {
		out = append(out, gin.H{
			"semester":      r.Semester,
			"session":       r.Session,
			"level":         r.Level,
			"gpa":           r.GPA,
			"total_credits": r.TotalCredits(),
			"courses":       r.Courses,
		})
	}
	response.Success(c, http.StatusOK, out)
}

// GetTimetable godoc
// GET /api/v1/student/timetable?day=Monday
func (h *AcademicHandler) GetTimetable(c *gin.Context) {
	var q model.TimetableQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	response.Success(c, http.StatusOK, h.portal.Timetable(q.Day))
}

// GetFees godoc
// GET /api/v1/student/fees
func (h *AcademicHandler) GetFees(c *gin.Context) {
	fees := h.portal.Fees()
	response.Success(c, http.StatusOK, gin.H{
		"statement":       fees,
		"paid_percentage": fees.PaidPercentage(),
	})
}
