package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type GoogleHandler struct {
	*BaseHandler
	googleService *services.GoogleService
}

func NewGoogleHandler(base *BaseHandler, googleService *services.GoogleService) *GoogleHandler {
	return &GoogleHandler{
		BaseHandler:   base,
		googleService: googleService,
	}
}

func (h *GoogleHandler) RegisterRoutes(r *gin.RouterGroup) {
	google := r.Group("/admin/google")
	google.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		google.GET("/integrations", h.ListIntegrations)
		google.GET("/emails", h.ListEmails)
		google.GET("/responses", h.ListResponses)
		google.GET("/notices", h.GetNotices)
		google.GET("/authorize", h.Authorize)
		google.POST("/disconnect", h.Disconnect)
		google.PATCH("/auto-apply", h.UpdateAutoApply)
		google.POST("/auto-apply/trigger", h.TriggerAutoApply)
		google.POST("/check-responses", h.CheckResponses)
	}
}

func (h *GoogleHandler) ListIntegrations(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.IntegrationListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.googleService.ListIntegrations(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GoogleHandler) ListEmails(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.EmailListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.googleService.ListEmails(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GoogleHandler) ListResponses(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.ResponseListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.googleService.ListResponses(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Authorize отдает OAuth URL платформы; сам редирект делает UI
func (h *GoogleHandler) Authorize(c *gin.Context) {
	_, token, ok := h.Session(c)
	if !ok {
		return
	}

	resp, err := h.googleService.AuthorizeURL(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GoogleHandler) Disconnect(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	row, err := h.googleService.Disconnect(c.Request.Context(), adminID, token, Confirmed(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *GoogleHandler) UpdateAutoApply(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var req dto.UpdateAutoApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	row, err := h.googleService.UpdateAutoApply(c.Request.Context(), adminID, token, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *GoogleHandler) TriggerAutoApply(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	session, err := h.googleService.TriggerAutoApply(c.Request.Context(), adminID, token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, session)
}

func (h *GoogleHandler) CheckResponses(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	resp, err := h.googleService.CheckResponses(c.Request.Context(), adminID, token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GoogleHandler) GetNotices(c *gin.Context) {
	adminID, _, ok := h.Session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: h.googleService.Notices(adminID)})
}
