package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/admin/notifications")
	notifications.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		notifications.GET("", h.ListNotifications)
		notifications.GET("/notices", h.GetNotices)
		notifications.GET("/templates", h.ListTemplates)
		notifications.DELETE("/:notificationId", h.DeleteNotification)
	}
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.NotificationListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.notificationService.List(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) ListTemplates(c *gin.Context) {
	_, token, ok := h.Session(c)
	if !ok {
		return
	}

	resp, err := h.notificationService.Templates(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	err := h.notificationService.Delete(c.Request.Context(), adminID, token, c.Param("notificationId"), Confirmed(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification deleted"})
}

func (h *NotificationHandler) GetNotices(c *gin.Context) {
	adminID, _, ok := h.Session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: h.notificationService.Notices(adminID)})
}
