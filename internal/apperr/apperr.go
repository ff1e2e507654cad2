// Package apperr defines the error payload used by the demo programs: a
// message paired with a numeric code.
package apperr

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
)

type Code int

// Error codes. Each doubles as the process exit code of the demo CLI.
const (
	// CodeUnknown is the fallback for errors without a clearer code.
	CodeUnknown Code = iota + 1
	CodeInvalid
	CodeUnavailable
	CodeTimeout
)

func (c Code) String() string {
	switch c {
	case CodeInvalid:
		return "invalid"
	case CodeUnavailable:
		return "unavailable"
	case CodeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Error is a message + code pair. It is comparable, so two equal Errors
// compare equal inside an outcome.
type Error struct {
	Message string
	Code    Code
}

func New(code Code, message string) Error {
	return Error{Message: message, Code: code}
}

func Newf(code Code, format string, args ...any) Error {
	return Error{Message: fmt.Sprintf(format, args...), Code: code}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s (%s, code %d)", e.Message, e.Code, int(e.Code))
}

// Diagnostic renders e for a terminal, with the code highlighted.
func (e Error) Diagnostic() string {
	tag := color.New(color.FgWhite, color.BgRed).Sprintf(" %s ", e.Code)
	return fmt.Sprintf("%s %s", tag, color.RedString(e.Message))
}

// CodeOf returns the code carried by err, or CodeUnknown when err does not
// wrap an Error. A nil err has code 0.
func CodeOf(err error) Code {
	if err == nil {
		return 0
	}
	var ae Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}
