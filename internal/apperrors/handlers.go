package apperrors

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("Server error: %v", err)
	}

	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleError - обработка ошибок для Gin контекста.
// Неизвестные ошибки оборачиваются в InternalError.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	handler := &GinErrorHandler{Debug: true} // В проде установить false
	handler.HandleGinError(c, appErr)
}

// HandleValidationError - специальный обработчик для ошибок валидации
func HandleValidationError(c *gin.Context, err error) {
	validationErr := ErrValidationFailed.WithDetails(gin.H{"details": err.Error()})
	HandleError(c, validationErr)
}

// FromStatusCode сопоставляет HTTP статус платформенного API с Kind.
// Используется клиентом upstream при непустых не-2xx ответах.
func FromStatusCode(status int, message string) *AppError {
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return UpstreamError(KindValidation, message, status)
	case status == http.StatusUnauthorized:
		return UpstreamError(KindAuth, message, status)
	case status == http.StatusForbidden:
		return UpstreamError(KindForbidden, message, status)
	case status == http.StatusNotFound:
		return UpstreamError(KindNotFound, message, status)
	case status == http.StatusConflict:
		return UpstreamError(KindConflict, message, status)
	case status >= 500:
		return UpstreamError(KindServer, message, http.StatusBadGateway)
	default:
		return UpstreamError(KindServer, message, status)
	}
}
