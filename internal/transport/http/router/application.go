package router

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobdesk/internal/core/apperr"
	"jobdesk/internal/domain"
	"jobdesk/internal/feature/application"
	"jobdesk/internal/feature/attachment"
	"jobdesk/internal/feature/views"
	"jobdesk/internal/transport/http/ez"
	resp "jobdesk/internal/transport/http/response"
)

func mountApplications(g *gin.RouterGroup, svc *application.Service, facade *views.Facade, blobs attachment.Store) {
	// multipart 上传走显式 handler，不进 Action 封装
	g.POST("/jobs/apply", func(c *gin.Context) {
		jobID, _ := strconv.ParseUint(c.PostForm("id_job"), 10, 64)
		userID, _ := strconv.ParseUint(c.PostForm("id_user"), 10, 64)

		var up *application.Upload
		if fh, err := c.FormFile("file"); err == nil {
			f, err := fh.Open()
			if err != nil {
				ez.WriteErr(c, apperr.Store("", err))
				return
			}
			defer f.Close()
			up = &application.Upload{Name: fh.Filename, Data: f}
		}
		// 无文件的校验在组件层：up == nil → 400
		if err := svc.Apply(c.Request.Context(), uint(jobID), uint(userID), up); err != nil {
			ez.WriteErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp.Created("Application submitted successfully"))
	})

	ez.Register(g, ez.Action[struct{}, []domain.ApplicantRow]{
		Method: http.MethodGet,
		Path:   "/jobs/:id/applicants",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.ApplicantRow, error) {
			return facade.ApplicantsForJob(uintParam(c, "id"))
		},
	})

	// status 必须是严格布尔：*bool 绑定失败或缺失都按 400 处理
	g.PUT("/jobs/:id/applicants/:userId/status", func(c *gin.Context) {
		var body struct {
			Status *bool `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Status == nil {
			ez.WriteErr(c, apperr.Validation("Status must be boolean."))
			return
		}
		if err := svc.SetStatus(uintParam(c, "id"), uintParam(c, "userId"), *body.Status); err != nil {
			ez.WriteErr(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.New(resp.CodeOK, "Status updated successfully", nil))
	})

	g.GET("/jobs/applicants/:fileId/download", func(c *gin.Context) {
		fileID := c.Param("fileId")
		rc, err := blobs.Open(c.Request.Context(), fileID)
		if err != nil {
			ez.WriteErr(c, err)
			return
		}
		defer rc.Close()
		c.Header("Content-Disposition", `attachment; filename="`+fileID+`"`)
		c.Header("Content-Type", "application/octet-stream")
		c.Status(http.StatusOK)
		_, _ = io.Copy(c.Writer, rc)
	})

	ez.Register(g, ez.Action[struct{}, []domain.SeekerRow]{
		Method: http.MethodGet,
		Path:   "/users/:userId/applications",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.SeekerRow, error) {
			return facade.ApplicationsForUser(uintParam(c, "userId"))
		},
	})
}
