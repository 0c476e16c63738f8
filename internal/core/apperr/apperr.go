// Package apperr 定义组件层统一错误：每个失败都带一个 Kind，
// 传输层据此映射 HTTP 状态码，组件内部不做恢复或重试。
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota // 必填项缺失 / 格式错误 → 400
	KindAuth                   // 凭据不匹配 → 401（消息统一，不泄露用户是否存在）
	KindNotFound               // 目标实体不存在 → 404
	KindConflict               // 唯一字段冲突 → 409
	KindStore                  // 底层存储失败 → 500（消息原样透传）
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // 底层原因，可为空
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus 返回该错误类别对应的 HTTP 状态码。
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func Auth(msg string) error       { return &Error{Kind: KindAuth, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Msg: msg} }

// Store 包装底层存储错误；msg 为空时直接透传底层消息。
func Store(msg string, err error) error {
	return &Error{Kind: KindStore, Msg: msg, Err: err}
}

// Is 判断 err 是否为指定 Kind 的组件错误。
func Is(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
