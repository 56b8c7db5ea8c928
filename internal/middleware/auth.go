package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobhub_admin/internal/apperrors"
	"jobhub_admin/internal/auth"
	"jobhub_admin/internal/logger"
	"jobhub_admin/internal/models"
)

// Ключи gin.Context, которые выставляет AuthMiddleware
const (
	ContextUserID      = "userID"
	ContextRole        = "role"
	ContextBearerToken = "bearerToken"
)

// AuthMiddleware - проверка JWT. Сырой bearer-токен сохраняется
// в контексте: сервисы пробрасывают его платформенному API как есть.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			// Истекший и невалидный токены оба Kind=auth:
			// UI реагирует редиректом на логин, не generic-ошибкой
			abortWithError(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextBearerToken, tokenStr)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware - ограничение по роли
func RoleMiddleware(requiredRole models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRole)
		if !exists {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: no role"))
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortWithError(c, apperrors.NewForbiddenError("Access denied: invalid role type"))
				return
			}
			role = models.UserRole(roleStr)
		}

		if role != requiredRole {
			abortWithError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			return
		}

		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) {
		appErr = apperrors.InternalError(err)
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}
