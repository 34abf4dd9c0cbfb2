package domain

import "errors"

// 业务错误码（与 HTTP 语义对齐）
const (
	CodeInvalidArgument = 400
	CodeUnauthenticated = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeInternal        = 500
)

// ErrDuplicate 唯一键冲突的哨兵错误；存储层负责把方言错误翻译过来
var ErrDuplicate = errors.New("duplicate record")

type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "domain error"
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) error         { return &Error{Code: CodeInvalidArgument, Msg: msg} }
func Unauthenticated(msg string) error { return &Error{Code: CodeUnauthenticated, Msg: msg} }
func Forbidden(msg string) error       { return &Error{Code: CodeForbidden, Msg: msg} }
func NotFound(msg string) error        { return &Error{Code: CodeNotFound, Msg: msg} }
func Conflict(msg string) error        { return &Error{Code: CodeConflict, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Code: CodeInternal, Msg: msg, Err: err}
}

// CodeOf 取业务错误码；非 *Error 一律按 500 处理
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
