package apperr

import (
	"errors"
	"fmt"
)

// Code identifies the category of a failure for the frontend
type Code string

const (
	CodeConfiguration Code = "CONFIGURATION"
	CodeValidation    Code = "VALIDATION"
	CodeNotFound      Code = "NOT_FOUND"
	CodeHTTP          Code = "HTTP"
	CodeNetwork       Code = "NETWORK"
	CodeDecode        Code = "DECODE"
	CodeAssetNotFound Code = "ASSET_NOT_FOUND"
)

// Error is the single error type surfaced to the user.
// Status is only set for CodeHTTP.
type Error struct {
	Code    Code
	Message string
	Status  int
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap exposes the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so errors.Is(err, &Error{Code: CodeNotFound}) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func Configuration(message string) *Error {
	return &Error{Code: CodeConfiguration, Message: message}
}

func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Unknown error occurred."
	}
	return &Error{Code: CodeNotFound, Message: message}
}

// HTTP formats the message as "<status>: <reason>"
func HTTP(status int, reason string) *Error {
	return &Error{
		Code:    CodeHTTP,
		Message: fmt.Sprintf("%d: %s", status, reason),
		Status:  status,
	}
}

func Network(err error) *Error {
	return &Error{Code: CodeNetwork, Message: fmt.Sprintf("network error: %v", err), Err: err}
}

func Decode(what string, err error) *Error {
	return &Error{Code: CodeDecode, Message: fmt.Sprintf("failed to decode %s: %v", what, err), Err: err}
}

func AssetNotFound(path string) *Error {
	return &Error{Code: CodeAssetNotFound, Message: "asset not found: " + path}
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the text shown in the error dialog
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unexpected error occurred."
}
