package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prodigyhire/backend/internal/dto"
	"github.com/prodigyhire/backend/internal/middleware"
	"github.com/prodigyhire/backend/internal/service"
)

type NotificationController struct {
	notificationSvc service.NotificationService
}

func NewNotificationController(notificationSvc service.NotificationService) *NotificationController {
	return &NotificationController{notificationSvc: notificationSvc}
}

// List godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param is_read query bool false "Filter by read state"
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /notifications [get]
func (ctrl *NotificationController) List(c *gin.Context) {
	var filter dto.NotificationFilterDTO
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
		return
	}

	list, err := ctrl.notificationSvc.List(middleware.UserID(c), filter)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(list))
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /notifications/{id}/read [patch]
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.notificationSvc.MarkRead(middleware.UserID(c), id); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessMessage("Notification marked as read", nil))
}

// MarkAllRead godoc
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.Envelope
// @Security BearerAuth
// @Router /notifications/read-all [patch]
func (ctrl *NotificationController) MarkAllRead(c *gin.Context) {
	if err := ctrl.notificationSvc.MarkAllRead(middleware.UserID(c)); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessMessage("All notifications marked as read", nil))
}
