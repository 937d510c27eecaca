package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a pobbin error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrBuildTooLarge  ErrorCode = "BUILD_TOO_LARGE" // 413
	ErrBase64Decode   ErrorCode = "BASE64_DECODE"   // 422
	ErrDeflate        ErrorCode = "DEFLATE"         // 422
	ErrStringDecode   ErrorCode = "STRING_DECODE"   // 422
	ErrParseXML       ErrorCode = "PARSE_XML"       // 422
	ErrInvalidItem    ErrorCode = "INVALID_ITEM"    // 422
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// PobError represents a structured error with code, status, and details.
type PobError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *PobError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *PobError) Unwrap() error {
	return e.Cause
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *PobError {
	return &PobError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a paste cannot be found.
func NewNotFound(identifier string) *PobError {
	return &PobError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("paste not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewBuildTooLarge creates a 413 error when a build code exceeds the size limit.
func NewBuildTooLarge(max, actual int) *PobError {
	return &PobError{
		Code:    ErrBuildTooLarge,
		Status:  413,
		Message: fmt.Sprintf("build code exceeds maximum size: %d bytes (max %d)", actual, max),
		Details: map[string]any{"max_bytes": max, "actual_bytes": actual},
	}
}

// NewBase64Decode creates a 422 error for export strings that are not valid URL-safe base64.
func NewBase64Decode(err error) *PobError {
	return &PobError{
		Code:    ErrBase64Decode,
		Status:  422,
		Message: fmt.Sprintf("unable to base64 decode input: %v", err),
		Cause:   err,
	}
}

// NewDeflate creates a 422 error for payloads that fail to inflate.
func NewDeflate(err error) *PobError {
	return &PobError{
		Code:    ErrDeflate,
		Status:  422,
		Message: fmt.Sprintf("failed to deflate/decompress input: %v", err),
		Cause:   err,
	}
}

// NewStringDecode creates a 422 error for payloads that are neither UTF-8 nor Windows-1252.
func NewStringDecode(err error) *PobError {
	return &PobError{
		Code:    ErrStringDecode,
		Status:  422,
		Message: fmt.Sprintf("failed to decode decompressed input: %v", err),
		Cause:   err,
	}
}

// NewParseXML creates a 422 error for structurally invalid build documents.
// path is a best-effort location of the failure and is meant for diagnostics.
func NewParseXML(path string, err error) *PobError {
	return &PobError{
		Code:    ErrParseXML,
		Status:  422,
		Message: fmt.Sprintf("failed to parse input XML at %s: %v", path, err),
		Details: map[string]any{"path": path},
		Cause:   err,
	}
}

// NewInvalidItem creates a 422 error for item text without a usable rarity line.
func NewInvalidItem(reason string) *PobError {
	return &PobError{
		Code:    ErrInvalidItem,
		Status:  422,
		Message: fmt.Sprintf("cannot parse item: %s", reason),
		Details: map[string]any{"reason": reason},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The message stays generic; the original error text is kept in Details.
func NewInternal(err error) *PobError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &PobError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
		Cause:   err,
	}
}

// Is checks if an error is, or wraps, a PobError with the given code.
func Is(err error, code ErrorCode) bool {
	var pErr *PobError
	if stderrors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}

// IsBadBuildCode reports whether err means the export code itself is unusable:
// a transport failure or a structural XML failure.
func IsBadBuildCode(err error) bool {
	var pErr *PobError
	if !stderrors.As(err, &pErr) {
		return false
	}
	switch pErr.Code {
	case ErrBase64Decode, ErrDeflate, ErrStringDecode, ErrParseXML:
		return true
	}
	return false
}
