package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/models"
	"jobhub_admin/internal/services"
	"jobhub_admin/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	userService *services.UserService
}

func NewUserHandler(base *BaseHandler, userService *services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/admin/users")
	users.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		users.GET("", h.ListUsers)
		users.GET("/notices", h.GetNotices)
		users.GET("/:userId", h.GetUser)
		users.POST("/:userId/toggle-active", h.ToggleActive)
		users.POST("/:userId/toggle-verified", h.ToggleVerified)
		users.DELETE("/:userId", h.DeleteUser)
	}
}

// ListUsers - страница пользователей: список + stats + фильтры
func (h *UserHandler) ListUsers(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	var q dto.UserListQuery
	if !h.BindAndValidate_Query(c, &q) {
		return
	}

	resp, err := h.userService.List(c.Request.Context(), adminID, token, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	_, token, ok := h.Session(c)
	if !ok {
		return
	}

	row, err := h.userService.Get(c.Request.Context(), token, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *UserHandler) ToggleActive(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	row, err := h.userService.ToggleActive(c.Request.Context(), adminID, token, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *UserHandler) ToggleVerified(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	row, err := h.userService.ToggleVerified(c.Request.Context(), adminID, token, c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	adminID, token, ok := h.Session(c)
	if !ok {
		return
	}

	err := h.userService.Delete(c.Request.Context(), adminID, token, c.Param("userId"), Confirmed(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}

func (h *UserHandler) GetNotices(c *gin.Context) {
	adminID, _, ok := h.Session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.NoticesResponse{Notices: h.userService.Notices(adminID)})
}
