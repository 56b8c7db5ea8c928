package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/apperrors"
	"jobhub_admin/internal/logger"
	"jobhub_admin/internal/middleware"
	"jobhub_admin/internal/validator"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// ============================================================================
// 2. Методы привязки и валидации
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed (query)", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error (query)", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 3. Обработка ошибок сервисного слоя
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	// Вытесненный fetch - не сбой сервера: проигравший запрос получает
	// 409, его ответ UI все равно отбрасывает
	if apperrors.Is(err, context.Canceled) {
		logger.CtxDebug(ctx, "Request superseded", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ErrRequestSuperseded)
		return
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.CtxWarn(ctx, "Service error",
			"kind", string(appErr.Kind),
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
}

// ============================================================================
// 4. Вспомогательные функции
// ============================================================================

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	ctx := c.Request.Context()

	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		logger.CtxWarn(ctx, "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok || userIDStr == "" {
		logger.CtxWarn(ctx, "Unauthorized access: invalid userID in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid user ID in context"))
		return "", false
	}

	return userIDStr, true
}

// GetBearerToken извлекает сырой токен, который AuthMiddleware положил
// в контекст. Он уходит платформенному API без изменений.
func (h *BaseHandler) GetBearerToken(c *gin.Context) (string, bool) {
	tokenVal, exists := c.Get(middleware.ContextBearerToken)
	if !exists {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	token, ok := tokenVal.(string)
	if !ok || token == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid token in context"))
		return "", false
	}
	return token, true
}

// Session извлекает id админа и его bearer-токен одним вызовом
func (h *BaseHandler) Session(c *gin.Context) (adminID, token string, ok bool) {
	adminID, ok = h.GetAndAuthorizeUserID(c)
	if !ok {
		return "", "", false
	}
	token, ok = h.GetBearerToken(c)
	if !ok {
		return "", "", false
	}
	return adminID, token, true
}

// Confirmed: деструктивные эндпоинты требуют confirm=true в query
func Confirmed(c *gin.Context) bool {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	return confirmed
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
