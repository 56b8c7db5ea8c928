package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type CompanyHandler struct {
	*BaseHandler
	companyService *services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	companies := r.Group("/admin/companies")
	companies.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		companies.GET("", h.ListCompanies)
		companies.GET("/notices", h.GetNotices)
	}
}

func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.CompanyListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.companyService.List(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) GetNotices(c *gin.Context) {
	adminID, _, ok := h.Session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: h.companyService.Notices(adminID)})
}
