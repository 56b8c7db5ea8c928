package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/admin/jobs")
	jobs.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/notices", h.GetNotices)
		jobs.POST("/:slug/status", h.UpdateStatus)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.JobListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.jobService.List(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	row, err := h.jobService.UpdateStatus(c.Request.Context(), adminID, token, c.Param("slug"), models.JobStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *JobHandler) GetNotices(c *gin.Context) {
	adminID, _, ok := h.Session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: h.jobService.Notices(adminID)})
}
