package router

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/domain"
	"jobdesk/internal/feature/job"
	"jobdesk/internal/transport/http/ez"
)

func mountJobs(g *gin.RouterGroup, svc *job.Service) {
	ez.Register(g, ez.Action[job.Input, struct{}]{
		Method: http.MethodPost,
		Path:   "/jobs",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Msg:    "Job added successfully",
		Handler: func(c *gin.Context, in *job.Input) (struct{}, error) {
			return struct{}{}, svc.Create(*in)
		},
	})

	type listQ struct {
		UserID string `form:"userId"`
	}
	ez.Register(g, ez.Action[listQ, []domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Job, error) {
			return svc.ListForUser(in.UserID)
		},
	})

	// 静态段（all/search/apply/applicants）必须先于 :id 可达，
	// gin 的树按静态优先匹配，这里的注册顺序只是便于阅读
	ez.Register(g, ez.Action[struct{}, []domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs/all",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Job, error) {
			return svc.ListAll()
		},
	})

	type searchQ struct {
		SearchQuery string `form:"searchQuery"`
		Location    string `form:"location"`
		Type        string `form:"type"`
	}
	ez.Register(g, ez.Action[searchQ, []domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs/search",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *searchQ) ([]domain.Job, error) {
			return svc.Search(domain.JobFilter{
				Title:    in.SearchQuery,
				Location: in.Location,
				Type:     in.Type,
			})
		},
	})

	ez.Register(g, ez.Action[struct{}, *domain.Job]{
		Method: http.MethodGet,
		Path:   "/jobs/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Job, error) {
			// 非数字 id 等价于查不到（SQL 契约下 0 行即 404）
			return svc.Get(uintParam(c, "id"))
		},
	})

	ez.Register(g, ez.Action[job.Input, struct{}]{
		Method: http.MethodPut,
		Path:   "/jobs/:id",
		Binder: ez.BindJSON,
		Msg:    "Job updated successfully",
		Handler: func(c *gin.Context, in *job.Input) (struct{}, error) {
			// 盲覆盖：不存在的 id 命中 0 行，依然报成功
			return struct{}{}, svc.Update(uintParam(c, "id"), *in)
		},
	})
}

func uintParam(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v)
}
