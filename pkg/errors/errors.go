package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrNotDirectory ErrorCode = "NOT_DIRECTORY"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrConfigWrite   ErrorCode = "CONFIG_WRITE"

	// Platform selection errors
	ErrUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"
	ErrPlatformNotFound    ErrorCode = "PLATFORM_NOT_FOUND"
	ErrPlatformExists      ErrorCode = "PLATFORM_EXISTS"

	// Traversal errors
	ErrTraversal ErrorCode = "TRAVERSAL"

	// Repository errors
	ErrRepoOpen     ErrorCode = "REPO_OPEN"
	ErrRepoHead     ErrorCode = "REPO_HEAD"
	ErrRepoStatus   ErrorCode = "REPO_STATUS"
	ErrRepoRemotes  ErrorCode = "REPO_REMOTES"
	ErrRepoFetch    ErrorCode = "REPO_FETCH"
	ErrRepoBranches ErrorCode = "REPO_BRANCHES"
	ErrUnbornBranch ErrorCode = "UNBORN_BRANCH"

	// Action errors
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"
	ErrActionInput   ErrorCode = "ACTION_INPUT"
)

// CleanerError represents a structured error with code and details
type CleanerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CleanerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CleanerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CleanerError) Is(target error) bool {
	var targetErr *CleanerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CleanerError with the given code and message
func New(code ErrorCode, message string) *CleanerError {
	return &CleanerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CleanerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CleanerError {
	return &CleanerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CleanerError
func Wrap(err error, code ErrorCode, message string) *CleanerError {
	if err == nil {
		return nil
	}
	return &CleanerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CleanerError {
	if err == nil {
		return nil
	}
	return &CleanerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CleanerError) WithDetail(key string, value interface{}) *CleanerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var cleanerErr *CleanerError
		if !errors.As(err, &cleanerErr) {
			return false
		}
		if cleanerErr.Code == code {
			return true
		}
		err = cleanerErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CleanerError
func GetErrorCode(err error) ErrorCode {
	var cleanerErr *CleanerError
	if errors.As(err, &cleanerErr) {
		return cleanerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CleanerError
func GetErrorDetails(err error) map[string]interface{} {
	var cleanerErr *CleanerError
	if errors.As(err, &cleanerErr) {
		return cleanerErr.Details
	}
	return nil
}

// Message returns the human readable part of an error without the code prefix.
// Plain errors are returned unchanged and empty messages are skipped.
func Message(err error) string {
	var cleanerErr *CleanerError
	if !errors.As(err, &cleanerErr) {
		return err.Error()
	}
	switch {
	case cleanerErr.Wrapped == nil:
		return cleanerErr.Message
	case cleanerErr.Message == "":
		return Message(cleanerErr.Wrapped)
	}
	return fmt.Sprintf("%s: %s", cleanerErr.Message, Message(cleanerErr.Wrapped))
}
