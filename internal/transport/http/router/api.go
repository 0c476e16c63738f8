package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobdesk/internal/feature/account"
	"jobdesk/internal/feature/application"
	"jobdesk/internal/feature/attachment"
	"jobdesk/internal/feature/job"
	"jobdesk/internal/feature/views"
	mdw "jobdesk/internal/transport/http/middleware"
)

// Deps 各组件在 main 里显式构造后注入，路由层不持有全局状态。
type Deps struct {
	Account     *account.Service
	Jobs        *job.Service
	Tracker     *application.Service
	Views       *views.Facade
	Attachments attachment.Store
}

func NewAPIEngine(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	mountAccount(api, d.Account)
	mountJobs(api, d.Jobs)
	mountApplications(api, d.Tracker, d.Views, d.Attachments)

	return r
}
