package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vendorlynx/vendorlynx-go/internal/application"
	"github.com/vendorlynx/vendorlynx-go/internal/domain/notification"
	"github.com/vendorlynx/vendorlynx-go/pkg/response"
	"github.com/vendorlynx/vendorlynx-go/pkg/utils"
)

type NotificationHandler struct {
	svc *application.NotificationService
}

func NewNotificationHandler(svc *application.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param before query uint false "Return notifications with an ID below this cursor"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {array} notification.Notification
// @Failure 401 {object} response.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	var q notification.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	items, err := h.svc.ListForRecipient(claims, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// MarkRead godoc
// @Summary Mark one notification as read
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param notification_id path uint true "Notification ID"
// @Success 200 {object} notification.Notification
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/read/{notification_id} [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "notification_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid notification id"})
		return
	}
	n, err := h.svc.MarkRead(claims, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// Delete godoc
// @Summary Delete one of the caller's notifications
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param notification_id path uint true "Notification ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /notifications/{notification_id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	claims, err := utils.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "notification_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid notification id"})
		return
	}
	if err := h.svc.Delete(claims, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "notification deleted"})
}
