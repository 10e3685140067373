package domain

import (
	"errors"
	"fmt"

	"lootvalue/pkg/errcodes"
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    errcodes.ErrorCode
	Kind    errcodes.Kind
	Message string
	cause   error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает ошибки по коду, поэтому sentinel-ошибки пакетов
// совпадают с любыми ошибками того же кода.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func (e *AppError) ErrorCode() errcodes.ErrorCode {
	return e.Code
}

func (e *AppError) ErrorKind() errcodes.Kind {
	return e.Kind
}

func (e *AppError) Description() string {
	return e.Message
}

// NewError создаёт новую доменную ошибку.
func NewError(code errcodes.ErrorCode, kind errcodes.Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
// Вид ошибки наследуется от обёрнутой доменной ошибки, если она есть.
func WrapError(err error, code errcodes.ErrorCode, message string) *AppError {
	kind := errcodes.KindInternal

	var inner *AppError
	if errors.As(err, &inner) {
		kind = inner.Kind
	}

	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (errcodes.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
