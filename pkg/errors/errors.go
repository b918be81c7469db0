package errors

import (
	"fmt"
	"net/http"
)

// Сентинельные ошибки ядра авторизации. Ошибки токенов различаются
// внутри процесса (для логов и политики), но наружу все отдаются
// одинаковым 401 — см. StatusOf и pkg/api.ErrorResponse.
var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenMalformed       = fmt.Errorf("токен имеет неверный формат")
	ErrTokenSignature       = fmt.Errorf("подпись токена не прошла проверку")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrTokenIsNotAccess     = fmt.Errorf("ожидался access-токен")
	ErrTokenIsNotRefresh    = fmt.Errorf("ожидался refresh-токен")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrAccountInactive    = fmt.Errorf("учётная запись отключена")
	ErrAccountLocked      = fmt.Errorf("учётная запись временно заблокирована, попробуйте позже")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")

	// Контекст
	ErrClaimsNotFoundInContext = fmt.Errorf("данные пользователя не найдены в контексте запроса")

	// Общие
	ErrNotFound       = fmt.Errorf("запись не найдена")
	ErrUserNotFound   = fmt.Errorf("пользователь не найден")
	ErrBadRequest     = fmt.Errorf("неверный запрос")
	ErrInternalServer = fmt.Errorf("внутренняя ошибка сервера")
)

// statusCodes — соответствие сентинельных ошибок HTTP-статусам.
// Все ошибки токенов схлопываются в 401, детали остаются в логах.
var statusCodes = map[error]int{
	ErrInvalidSigningMethod: http.StatusUnauthorized,
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrTokenMalformed:       http.StatusUnauthorized,
	ErrTokenSignature:       http.StatusUnauthorized,
	ErrTokenExpired:         http.StatusUnauthorized,
	ErrTokenNotYetValid:     http.StatusUnauthorized,
	ErrTokenIsNotAccess:     http.StatusUnauthorized,
	ErrTokenIsNotRefresh:    http.StatusUnauthorized,

	ErrEmptyAuthHeader:    http.StatusUnauthorized,
	ErrInvalidAuthHeader:  http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrAccountInactive:    http.StatusUnauthorized,
	ErrAccountLocked:      http.StatusTooManyRequests,
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,

	ErrClaimsNotFoundInContext: http.StatusUnauthorized,

	ErrNotFound:       http.StatusNotFound,
	ErrUserNotFound:   http.StatusNotFound,
	ErrBadRequest:     http.StatusBadRequest,
	ErrInternalServer: http.StatusInternalServerError,
}

// StatusOf возвращает HTTP-статус для сентинельной ошибки,
// либо 500, если ошибка неизвестна.
func StatusOf(err error) int {
	if code, ok := statusCodes[err]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// IsAuthTokenError сообщает, относится ли ошибка к проверке токена.
// Наружу такие ошибки показываются одним сообщением (анти-перечисление),
// а различие нужно логам и будущим политикам (например, повтор с refresh).
func IsAuthTokenError(err error) bool {
	switch err {
	case ErrInvalidSigningMethod, ErrInvalidToken, ErrTokenMalformed,
		ErrTokenSignature, ErrTokenExpired, ErrTokenNotYetValid,
		ErrTokenIsNotAccess, ErrTokenIsNotRefresh:
		return true
	}
	return false
}

// HttpError — прикладная ошибка с HTTP-статусом. Message уходит клиенту,
// Err и Context остаются только в серверных логах.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message}
}

func NewValidationError(message string, details interface{}) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Details: details}
}

func NewNotFoundError(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}
