package exceptions

import (
	"errors"
	"fmt"
	"runtime"
	"safeclinic-web/internal/pkg/constvars"
)

// Kind classifies a failure so callers can react without string matching:
// the retry policy only repeats Connection/Server failures and the route
// guard only invalidates sessions on Authorization failures.
type Kind int

const (
	KindInternal Kind = iota
	KindConnection
	KindInvalidCredentials
	KindValidation
	KindAuthorization
	KindServer
	KindMalformedResponse
	KindRateLimited
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	Kind          Kind     `json:"-"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func WrapWithError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Location:      getLocation(2),
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

// KindOf returns the classification of err, or KindInternal when err is not
// a CustomError.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

func IsConnection(err error) bool    { return KindOf(err) == KindConnection }
func IsAuthorization(err error) bool { return KindOf(err) == KindAuthorization }

// IsRetryable reports whether err represents a transient failure that a
// bounded retry may resolve: the server never saw the request, or it failed
// with a 5xx.
func IsRetryable(err error) bool {
	kind := KindOf(err)
	return kind == KindConnection || kind == KindServer
}

// ClientMessageOf extracts the user-facing message, falling back to a
// generic one for unclassified errors.
func ClientMessageOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrong
}
