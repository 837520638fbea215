package failure

import (
	"errors"
	"net/http"
)

// Kinds of failure reported to clients.
const (
	KindInvalidName        = "invalid_name"
	KindInvalidPhone       = "invalid_phone"
	KindMissingPackage     = "missing_package"
	KindMissingDate        = "missing_date"
	KindInvalidPhoneFormat = "invalid_phone_format"
	KindInvalidCredentials = "invalid_credentials"
	KindStorage            = "storage_error"
	KindUpload             = "upload_error"
)

// Client facing messages of failures that carry an internal cause.
const (
	MessageStorage = "Storage error"
	MessageUpload  = "Image upload failed"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var InvalidCredentials = &Failure{Code: http.StatusUnauthorized, Kind: KindInvalidCredentials, Message: "Invalid username or password"}

// Error returns the message, followed by the cause when there is one.
func (e *Failure) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.Cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request Failure tagged with a validation kind.
func Validation(kind, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    kind,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// Storage wraps a persistence engine error. Clients only see MessageStorage.
func Storage(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindStorage,
		Message: MessageStorage,
		Cause:   err,
	}
}

// Upload wraps an image host error. Clients only see MessageUpload.
func Upload(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindUpload,
		Message: MessageUpload,
		Cause:   err,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, or empty when none.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}

// GetMessage returns the client facing message of an error interface.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	if err == nil {
		return ""
	}

	return err.Error()
}

// GetDetail returns the internal cause of a failure, falling back to its message.
func GetDetail(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Cause != nil {
		return fail.Cause.Error()
	}

	return GetMessage(err)
}
