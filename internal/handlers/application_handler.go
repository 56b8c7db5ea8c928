package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	applications := r.Group("/admin/applications")
	applications.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		applications.GET("", h.ListApplications)
		applications.GET("/notices", h.GetNotices)
		applications.POST("/:applicationId/status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.ApplicationListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.applicationService.List(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	row, err := h.applicationService.UpdateStatus(
		c.Request.Context(), adminID, token,
		c.Param("applicationId"), models.ApplicationStatus(req.Status), req.EmployerNotes,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *ApplicationHandler) GetNotices(c *gin.Context) {
	adminID, _, ok := h.Session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: h.applicationService.Notices(adminID)})
}
