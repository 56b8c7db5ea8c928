package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения.
// Kind определяет реакцию UI, Code - конкретную причину.
type AppError struct {
	Kind     ErrorKind   `json:"kind"`
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(kind ErrorKind, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Kind:     kind,
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, kind ErrorKind, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Kind:     kind,
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Вспомогательные методы
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Kind    ErrorKind   `json:"kind"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// KindOf возвращает Kind ошибки, KindServer для неизвестных
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServer
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrUnauthorized = New(KindAuth, CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden    = New(KindForbidden, CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken = New(KindAuth, CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrTokenExpired = New(KindAuth, CodeTokenExpired, "Token has expired", http.StatusUnauthorized)

	// Валидация
	ErrValidationFailed = New(KindValidation, CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrInvalidStatus    = New(KindValidation, CodeInvalidStatus, "Invalid status value", http.StatusBadRequest)
	ErrInvalidUserRole  = New(KindValidation, CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)

	// Ресурсы
	ErrUserNotFound         = New(KindNotFound, CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrJobNotFound          = New(KindNotFound, CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrApplicationNotFound  = New(KindNotFound, CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrCompanyNotFound      = New(KindNotFound, CodeCompanyNotFound, "Company not found", http.StatusNotFound)
	ErrNotificationNotFound = New(KindNotFound, CodeNotificationNotFound, "Notification not found", http.StatusNotFound)
	ErrIntegrationNotFound  = New(KindNotFound, CodeIntegrationNotFound, "Google integration not found", http.StatusNotFound)

	// Бизнес-логика
	ErrConfirmationRequired = New(KindValidation, CodeConfirmationRequired, "Destructive action requires confirm=true", http.StatusBadRequest)
	ErrIntegrationInactive  = New(KindConflict, CodeIntegrationInactive, "Google integration is not connected", http.StatusConflict)
	// Запрос вытеснен более новым (быстрое перелистывание) -
	// не ошибка сервера, проигравший ответ просто отбрасывается
	ErrRequestSuperseded = New(KindConflict, CodeRequestSuperseded, "Request was superseded by a newer request", http.StatusConflict)

	// Системные
	ErrUpstreamUnavailable = New(KindNetwork, CodeNetworkError, "Platform API is unreachable", http.StatusBadGateway)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func NotFound(resource string) *AppError {
	return New(KindNotFound, CodeResourceNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func InternalError(err error) *AppError {
	return Wrap(err, KindServer, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// UpstreamError оборачивает ошибку платформенного API с сохранением
// статуса и серверного сообщения
func UpstreamError(kind ErrorKind, message string, httpCode int) *AppError {
	if message == "" {
		message = "Platform API request failed"
	}
	return New(kind, CodeUpstreamError, message, httpCode)
}

func NetworkError(err error) *AppError {
	return Wrap(err, KindNetwork, CodeNetworkError, "Platform API is unreachable", http.StatusBadGateway)
}

// Функции-помощники для создания стандартных ошибок
func NewConflictError(message string) *AppError {
	return New(KindConflict, CodeConflict, message, http.StatusConflict)
}

func NewInternalError(message string) *AppError {
	return New(KindServer, CodeInternalError, message, http.StatusInternalServerError)
}

func NewUnauthorizedError(message string) *AppError {
	return New(KindAuth, CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(KindForbidden, CodeForbidden, message, http.StatusForbidden)
}

func NewNotFoundError(message string) *AppError {
	return New(KindNotFound, CodeResourceNotFound, message, http.StatusNotFound)
}

func NewBadRequestError(message string) *AppError {
	return New(KindValidation, CodeValidationFailed, message, http.StatusBadRequest)
}
