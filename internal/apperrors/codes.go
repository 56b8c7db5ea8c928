package apperrors

// ErrorKind - класс ошибки. В отличие от Code (конкретная причина),
// Kind говорит UI как реагировать: auth → редирект на логин,
// validation → подсветка полей формы, network → "попробуйте позже".
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindForbidden  ErrorKind = "forbidden"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindNetwork    ErrorKind = "network"
	KindServer     ErrorKind = "server"
)

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired ErrorCode = "TOKEN_EXPIRED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Ресурсы
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound          ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound  ErrorCode = "APPLICATION_NOT_FOUND"
	CodeCompanyNotFound      ErrorCode = "COMPANY_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"
	CodeIntegrationNotFound  ErrorCode = "INTEGRATION_NOT_FOUND"
	CodeResourceNotFound     ErrorCode = "RESOURCE_NOT_FOUND"

	// Бизнес-логика
	CodeConfirmationRequired ErrorCode = "CONFIRMATION_REQUIRED"
	CodeIntegrationInactive  ErrorCode = "INTEGRATION_INACTIVE"
	CodeConflict             ErrorCode = "CONFLICT"
	CodeRequestSuperseded    ErrorCode = "REQUEST_SUPERSEDED"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeUpstreamError ErrorCode = "UPSTREAM_ERROR"
	CodeNetworkError  ErrorCode = "NETWORK_ERROR"
)
