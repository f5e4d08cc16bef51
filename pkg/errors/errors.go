package errors

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type AppError struct {
	Code            Code
	Message         string
	InternalDetails string
	IsUserFacing    bool
	SuggestedAction string
	WrappedError    error
	StackTrace      string
}

func (e *AppError) Error() string {
	if e.WrappedError != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.WrappedError)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.WrappedError
}

// WithDetails returns e after recording details meant for logs, not for users.
func (e *AppError) WithDetails(format string, args ...any) *AppError {
	e.InternalDetails = fmt.Sprintf(format, args...)
	return e
}

func New(code Code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StackTrace: string(debug.Stack()),
	}
}

func NewUserFacing(code Code, message string, suggestion string) *AppError {
	return &AppError{
		Code:            code,
		Message:         message,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

// Wrap returns err unchanged when it already is an AppError so the original
// code and stack survive.
func Wrap(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return &AppError{
		Code:         code,
		Message:      message,
		WrappedError: err,
		StackTrace:   string(debug.Stack()),
	}
}

// WrapWithoutStack is Wrap for errors raised on hot paths, such as a failed
// log write, where capturing a stack per occurrence is too costly.
// StackTrace is left empty unless err already is an AppError.
func WrapWithoutStack(err error, code Code, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Code: code, Message: message, WrappedError: err}
}

func WrapUserFacing(err error, code Code, message string, suggestion string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:            code,
			Message:         message,
			InternalDetails: appErr.Error(),
			IsUserFacing:    true,
			SuggestedAction: suggestion,
			WrappedError:    err,
			StackTrace:      appErr.StackTrace,
		}
	}

	return &AppError{
		Code:            code,
		Message:         message,
		WrappedError:    err,
		IsUserFacing:    true,
		SuggestedAction: suggestion,
		StackTrace:      string(debug.Stack()),
	}
}

func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetUserFacingMessage walks the chain for the first user facing AppError.
func GetUserFacingMessage(err error) (string, string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.IsUserFacing {
			return appErr.Message, appErr.SuggestedAction, true
		}
		nextErr := errors.Unwrap(appErr)
		for nextErr != nil {
			if !errors.As(nextErr, &appErr) {
				break
			}
			if appErr.IsUserFacing {
				return appErr.Message, appErr.SuggestedAction, true
			}
			nextErr = errors.Unwrap(appErr)
		}
	}
	return "An unexpected error occurred.", "Check logs for more details.", false
}
