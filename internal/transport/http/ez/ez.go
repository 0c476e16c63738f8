// Package ez 路由轻封装：一行注册一个动作，绑定入参、
// 把组件错误按 Kind 映射成 HTTP 状态码、统一包响应信封。
package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/core/apperr"
	resp "jobdesk/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON body 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param / c.PostForm 取
)

// Action 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method string // "GET" | "POST" | "PUT" | "DELETE"
	Path   string
	Binder Binder
	Status int    // 成功状态码，0 按 200 处理
	Msg    string // 成功 msg（操作回执），空则取默认

	Handler func(c *gin.Context, in *I) (O, error)
}

func Register[I any, O any](g *gin.RouterGroup, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, bindErr.Error()))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			WriteErr(c, err)
			return
		}

		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		msg := a.Msg
		if msg == "" {
			msg = resp.CodeMsgMap[status]
		}
		c.JSON(status, resp.New(status, msg, out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		g.GET(a.Path, h)
	case http.MethodPut:
		g.PUT(a.Path, h)
	case http.MethodDelete:
		g.DELETE(a.Path, h)
	default:
		g.POST(a.Path, h)
	}
}

// WriteErr 组件错误 → HTTP：带 Kind 的按分类映射，
// 其余一律 500 且消息原样透传（无重试、无本地兜底）。
func WriteErr(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.HTTPStatus(), resp.Error(ae.HTTPStatus(), ae.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, err.Error()))
}
