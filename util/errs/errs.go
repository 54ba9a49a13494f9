package errs

import (
	"errors"
	"fmt"
	"net/http"

	"edu-client/util/httpclient"
)

type ErrorType string

const (
	TypeInputValidation   ErrorType = "input_validation_error"
	TypeAuthentication    ErrorType = "authentication_error"
	TypeAuthorization     ErrorType = "authorization_error"
	TypeResourceNotFound  ErrorType = "resource_not_found"
	TypeConflict          ErrorType = "conflict_error"
	TypeBusinessRule      ErrorType = "business_rule_error"
	TypeRemoteUnavailable ErrorType = "remote_unavailable_error"
	TypeInternal          ErrorType = "internal_error"
)

// AppError คือ error กลางของระบบ ทุก layer จะคืน error ชนิดนี้กลับไป
// แล้วให้ middleware เป็นคนแปลงเป็น HTTP response
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func InputValidationError(message string) *AppError {
	return New(TypeInputValidation, message)
}

// UnauthenticatedError ใช้กรณียังไม่ได้ sign-in ฝั่ง frontend จะ redirect ไปหน้า login เอง
func UnauthenticatedError(message string) *AppError {
	return New(TypeAuthentication, message)
}

func AuthorizationError(message string) *AppError {
	return New(TypeAuthorization, message)
}

func ResourceNotFoundError(message string) *AppError {
	return New(TypeResourceNotFound, message)
}

func ConflictError(message string) *AppError {
	return New(TypeConflict, message)
}

func BusinessRuleError(message string) *AppError {
	return New(TypeBusinessRule, message)
}

func RemoteUnavailableError(message string) *AppError {
	return New(TypeRemoteUnavailable, message)
}

// HandleRemoteError แปลง error จากการเรียก service ปลายทางให้เป็น AppError
// ถ้า service ปลายทางตอบ 4xx ให้ส่งข้อความของปลายทางกลับไปตรง ๆ (verbatim)
func HandleRemoteError(err error) *AppError {
	var remoteErr *httpclient.RemoteError
	if errors.As(err, &remoteErr) {
		switch {
		case remoteErr.StatusCode == http.StatusNotFound:
			return ResourceNotFoundError(remoteErr.Message)
		case remoteErr.StatusCode == http.StatusConflict:
			return ConflictError(remoteErr.Message)
		case remoteErr.StatusCode >= 400 && remoteErr.StatusCode < 500:
			return BusinessRuleError(remoteErr.Message)
		}
	}
	return RemoteUnavailableError(fmt.Sprintf("remote service unavailable: %v", err))
}

// TypeOf คืนชนิดของ error ถ้าไม่ใช่ AppError จะถือว่าเป็น internal error
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return TypeInternal
}

// GetStatusCode map ชนิดของ error เป็น HTTP status code
func GetStatusCode(err error) int {
	switch TypeOf(err) {
	case TypeInputValidation:
		return http.StatusBadRequest
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeResourceNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeBusinessRule:
		return http.StatusUnprocessableEntity
	case TypeRemoteUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
