package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/middleware"
	"github.com/temitayo1239/student-information-portal-main/internal/model"
	"github.com/temitayo1239/student-information-portal-main/internal/portal"
	"github.com/temitayo1239/student-information-portal-main/internal/response"
	"github.com/temitayo1239/student-information-portal-main/internal/service"
)

// NotificationHandler serves the student's inbox.
type NotificationHandler struct {
	portal *service.PortalService
	log    zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(portal *service.PortalService, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{portal: portal, log: logger.Component(log, "notification_handler")}
}

// ListNotifications godoc
// GET /api/v1/student/notifications?filter=all|unread|<category>
// Returns matching notifications, newest first, with the unread count.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var q model.NotificationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidFilter)
		return
	}
	filter, err := portal.ParseFilter(q.Filter)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}

	view, err := h.portal.Notifications(c.Request.Context(), middleware.GetClaims(c).SessionID(), filter)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// MarkRead godoc
// POST /api/v1/student/notifications/:id/read
// Returns the unread inbox after the change.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	view, _, err := h.portal.MarkRead(c.Request.Context(), middleware.GetClaims(c).SessionID(), id)
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

// MarkAllRead godoc
// POST /api/v1/student/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	view, changed, err := h.portal.MarkAllRead(c.Request.Context(), middleware.GetClaims(c).SessionID())
	if err != nil {
		failWithError(c, h.log, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"changed":       changed,
		"unread_count":  view.UnreadCount,
		"notifications": view.Notifications,
	})
}
