package errs

import (
	"errors"
	"fmt"
)

// Code - Discriminant of an error returned by any patientstore operation.
// The numeric values are part of the function surface consumed by binding layers and must never change.
type Code int

const (
	// CodeNone - Returned by CodeOf for a nil error
	CodeNone Code = 0

	CodeNullPointer     Code = 100
	CodeInvalidArgument Code = 101
	CodeOutOfRange      Code = 102
	CodeAlloc           Code = 103
	CodeIO              Code = 104
	CodeDuplicate       Code = 105
	CodeNotFound        Code = 106
	CodeAssign          Code = 107

	// Field validation, one code per rule
	CodeCINull                Code = 200
	CodeCIFormat              Code = 201
	CodeNameNull              Code = 202
	CodeNameTooLong           Code = 203
	CodeAgeInvalid            Code = 204
	CodeGenderInvalid         Code = 205
	CodeDiagnosisNull         Code = 206
	CodeDiagnosisTooLong      Code = 207
	CodeSpecialtyNull         Code = 208
	CodeSpecialtyTooLong      Code = 209
	CodeAppointmentDateNull   Code = 210
	CodeAppointmentDateFormat Code = 211

	// Index file parsing
	CodeParseLine  Code = 300
	CodeIndexRange Code = 301

	// CodeUnknown - Returned by CodeOf for errors that did not originate in patientstore
	CodeUnknown Code = -1
)

var descriptions = map[Code]string{
	CodeNullPointer:           "null pointer argument",
	CodeInvalidArgument:       "invalid argument",
	CodeOutOfRange:            "value out of allowed range",
	CodeAlloc:                 "memory allocation failed",
	CodeIO:                    "file I/O error",
	CodeDuplicate:             "duplicate entry",
	CodeNotFound:              "entry not found",
	CodeAssign:                "assignment to destination failed",
	CodeCINull:                "CI is missing",
	CodeCIFormat:              "CI must be exactly 8 digits",
	CodeNameNull:              "name is missing",
	CodeNameTooLong:           "name is too long",
	CodeAgeInvalid:            "invalid age (must be >= 0)",
	CodeGenderInvalid:         "invalid gender (must be 'M' or 'F')",
	CodeDiagnosisNull:         "diagnosis is missing",
	CodeDiagnosisTooLong:      "diagnosis is too long",
	CodeSpecialtyNull:         "specialty is missing",
	CodeSpecialtyTooLong:      "specialty is too long",
	CodeAppointmentDateNull:   "appointment date is missing",
	CodeAppointmentDateFormat: "appointment date must be YYYY-MM-DD (10 chars)",
	CodeParseLine:             "malformed or unreadable line in file",
	CodeIndexRange:            "hash/index out of allowed range",
}

// Description - Returns the fixed human readable description of a code
func (C Code) Description() string {
	if d, ok := descriptions[C]; ok {
		return d
	}
	return "unknown error code"
}

// Error - Custom error carrying a Code, an optional message and an optional underlying cause.
// Two Error values match in errors.Is whenever their codes are equal, so the sentinels below
// can be used directly as targets.
type Error struct {
	Code Code
	msg  string
	err  error
}

// Error - Returns the message, falling back on the code description
func (E Error) Error() string {
	msg := E.msg
	if msg == "" {
		msg = E.Code.Description()
	}
	if E.err != nil {
		return fmt.Sprintf("%s: %s", msg, E.err)
	}
	return msg
}

// Unwrap - Returns the underlying cause, if any
func (E Error) Unwrap() error {
	return E.err
}

// Is - Matches any Error with the same code
func (E Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == E.Code
}

// New - Returns an Error with code and a formatted message
func New(code Code, format string, a ...any) Error {
	return Error{Code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap - Returns an Error with code wrapping err, the message is formatted from format and a
func Wrap(code Code, err error, format string, a ...any) Error {
	return Error{Code: code, msg: fmt.Sprintf(format, a...), err: err}
}

// CodeOf - Returns the discriminant of err: CodeNone for nil, the code of the first Error in the chain,
// or CodeUnknown if err never passed through this package.
func CodeOf(err error) Code {
	if err == nil {
		return CodeNone
	}
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

var (
	ErrNullPointer           = Error{Code: CodeNullPointer}
	ErrInvalidArgument       = Error{Code: CodeInvalidArgument}
	ErrOutOfRange            = Error{Code: CodeOutOfRange}
	ErrAlloc                 = Error{Code: CodeAlloc}
	ErrIO                    = Error{Code: CodeIO}
	ErrDuplicate             = Error{Code: CodeDuplicate}
	ErrNotFound              = Error{Code: CodeNotFound}
	ErrAssign                = Error{Code: CodeAssign}
	ErrCINull                = Error{Code: CodeCINull}
	ErrCIFormat              = Error{Code: CodeCIFormat}
	ErrNameNull              = Error{Code: CodeNameNull}
	ErrNameTooLong           = Error{Code: CodeNameTooLong}
	ErrAgeInvalid            = Error{Code: CodeAgeInvalid}
	ErrGenderInvalid         = Error{Code: CodeGenderInvalid}
	ErrDiagnosisNull         = Error{Code: CodeDiagnosisNull}
	ErrDiagnosisTooLong      = Error{Code: CodeDiagnosisTooLong}
	ErrSpecialtyNull         = Error{Code: CodeSpecialtyNull}
	ErrSpecialtyTooLong      = Error{Code: CodeSpecialtyTooLong}
	ErrAppointmentDateNull   = Error{Code: CodeAppointmentDateNull}
	ErrAppointmentDateFormat = Error{Code: CodeAppointmentDateFormat}
	ErrParseLine             = Error{Code: CodeParseLine}
	ErrIndexRange            = Error{Code: CodeIndexRange}
)
