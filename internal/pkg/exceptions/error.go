package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"caregate-service/internal/pkg/constvars"
)

// Kind classifies a failure for the caller's retry/rollback decision.
type Kind string

const (
	KindNetwork           Kind = "network"
	KindMalformedResponse Kind = "malformed-response"
	KindNotFound          Kind = "not-found"
	KindValidation        Kind = "validation"
	KindInternal          Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Kind          Kind     `json:"-"`
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

func BuildNewCustomError(err error, statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          kind,
		Location:      location,
	}
}

// IsNotFound reports whether err is a not-found condition. Delete callers
// treat it as soft when the item is already gone locally.
func IsNotFound(err error) bool {
	var customErr *CustomError
	return errors.As(err, &customErr) && customErr.Kind == KindNotFound
}

// IsRetryable reports whether err is a transient network condition. The
// gateway itself never retries; the caller decides.
func IsRetryable(err error) bool {
	var customErr *CustomError
	return errors.As(err, &customErr) && customErr.Kind == KindNetwork
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
