package types

import (
	"fmt"
)

// CodespaceType reserves a block of error codes for a module.
type CodespaceType uint16

// CodeType identifies one error kind inside a codespace.
type CodeType uint16

// CodeOK marks a successful Result; it is never a valid error code.
const CodeOK CodeType = 0

// Root codespace error codes, shared by every module.
const (
	CodespaceRoot CodespaceType = 1

	CodeInternal       CodeType = 1
	CodeUnknownRequest CodeType = 2
	CodeUnauthorized   CodeType = 3
	CodeInvalidAddress CodeType = 4
)

// Error is an expected, recoverable-by-caller failure. Handlers turn
// it into a failed Result; it is never used for internal invariant
// violations (those panic).
type Error interface {
	error

	Code() CodeType
	Codespace() CodespaceType
	Result() Result
}

// NewError constructs an Error in the given codespace.
func NewError(codespace CodespaceType, code CodeType, format string, args ...interface{}) Error {
	return &sdkError{
		codespace: codespace,
		code:      code,
		message:   fmt.Sprintf(format, args...),
	}
}

type sdkError struct {
	codespace CodespaceType
	code      CodeType
	message   string
}

func (err *sdkError) Error() string {
	return fmt.Sprintf("{codespace: %d, code: %d, message: %s}", err.codespace, err.code, err.message)
}

func (err *sdkError) Code() CodeType           { return err.code }
func (err *sdkError) Codespace() CodespaceType { return err.codespace }

func (err *sdkError) Result() Result {
	return Result{
		Code:      err.Code(),
		Codespace: err.Codespace(),
		Log:       err.message,
	}
}

// nolint
func ErrInternal(msg string) Error {
	return NewError(CodespaceRoot, CodeInternal, msg)
}
func ErrUnknownRequest(msg string) Error {
	return NewError(CodespaceRoot, CodeUnknownRequest, msg)
}
func ErrUnauthorized(msg string) Error {
	return NewError(CodespaceRoot, CodeUnauthorized, msg)
}
func ErrInvalidAddress(msg string) Error {
	return NewError(CodespaceRoot, CodeInvalidAddress, msg)
}

// AppendMsgToErr appends a message to an existing error string.
func AppendMsgToErr(msg string, err string) string {
	return fmt.Sprintf("%s; %s", msg, err)
}
