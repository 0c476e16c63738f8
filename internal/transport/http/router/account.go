package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/feature/account"
	"jobdesk/internal/transport/http/ez"
)

func mountAccount(g *gin.RouterGroup, svc *account.Service) {
	// 必填项校验在组件层做（空串也算缺失），这里不用 binding 标签
	ez.Register(g, ez.Action[account.RegisterInput, struct{}]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Msg:    "User registered successfully.",
		Handler: func(c *gin.Context, in *account.RegisterInput) (struct{}, error) {
			return struct{}{}, svc.Register(*in)
		},
	})

	ez.Register(g, ez.Action[account.LoginInput, *account.Identity]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *account.LoginInput) (*account.Identity, error) {
			return svc.Login(*in)
		},
	})
}
