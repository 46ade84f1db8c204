package errors

import (
	stderrors "errors"
	"fmt"

	"tradesdk/pkg/errors/ecode"
)

// codeError 带业务错误码的错误
type codeError struct {
	code  int
	msg   string
	cause error
}

func (e *codeError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *codeError) Unwrap() error {
	return e.cause
}

func New(msg string) error {
	return stderrors.New(msg)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// WithCode 创建一个带错误码的错误
func WithCode(code int, msg string) error {
	return &codeError{code: code, msg: msg}
}

func WithCodef(code int, format string, args ...any) error {
	return &codeError{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap 包装底层错误并附加错误码，err为nil时返回nil
func Wrap(err error, code int, msg string) error {
	if err == nil {
		return nil
	}
	return &codeError{code: code, msg: msg, cause: err}
}

func Wrapf(err error, code int, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &codeError{code: code, msg: fmt.Sprintf(format, args...), cause: err}
}

// Code 取最外层的错误码，普通错误返回 ecode.Unknown
func Code(err error) int {
	if err == nil {
		return ecode.Success
	}
	var ce *codeError
	if stderrors.As(err, &ce) {
		return ce.code
	}
	return ecode.Unknown
}

// DecodeErr 解析错误，返回错误码和错误信息
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, ecode.Text(ecode.Success)
	}
	return Code(err), err.Error()
}
