package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type AIHandler struct {
	*BaseHandler
	aiService *services.AIService
}

func NewAIHandler(base *BaseHandler, aiService *services.AIService) *AIHandler {
	return &AIHandler{
		BaseHandler: base,
		aiService:   aiService,
	}
}

func (h *AIHandler) RegisterRoutes(r *gin.RouterGroup) {
	ai := r.Group("/admin/ai")
	ai.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		ai.GET("/dashboard", h.GetDashboard)
		ai.GET("/notices", h.GetNotices)
		ai.PATCH("/settings", h.UpdateSettings)
		ai.POST("/retrain", h.RetrainModels)
	}
}

func (h *AIHandler) GetDashboard(c *gin.Context) {
	_, token, ok := h.Session(c)
	if !ok {
		return
	}

	resp, err := h.aiService.Dashboard(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AIHandler) UpdateSettings(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var req dto.UpdateAISettingsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	settings, err := h.aiService.UpdateSettings(c.Request.Context(), adminID, token, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *AIHandler) RetrainModels(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	result, err := h.aiService.RetrainModels(c.Request.Context(), adminID, token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, result)
}

func (h *AIHandler) GetNotices(c *gin.Context) {
	adminID, _, ok := h.Session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: h.aiService.Notices(adminID)})
}
