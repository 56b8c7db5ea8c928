package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type SearchHandler struct {
	*BaseHandler
	searchService *services.SearchService
}

func NewSearchHandler(base *BaseHandler, searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		BaseHandler:   base,
		searchService: searchService,
	}
}

func (h *SearchHandler) RegisterRoutes(r *gin.RouterGroup) {
	search := r.Group("/admin/search")
	search.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		search.GET("/queries", h.ListQueries)
	}
}

func (h *SearchHandler) ListQueries(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.SearchQueryListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.searchService.List(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
