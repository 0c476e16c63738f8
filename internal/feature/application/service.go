// Package application 投递跟踪：建立 User-Job 关联、维护布尔状态机、
// 绑定简历附件。
package application

import (
	"context"
	"io"
	"strings"
	"time"

	"jobdesk/internal/core/apperr"
	"jobdesk/internal/domain"
	"jobdesk/internal/feature/attachment"
)

// Upload 一份待存储的简历。
type Upload struct {
	Name string // 原始文件名，用于提取扩展名
	Data io.Reader
}

type Service struct {
	apps  domain.ApplicationRepository
	blobs attachment.Store
}

func NewService(apps domain.ApplicationRepository, blobs attachment.Store) *Service {
	return &Service{apps: apps, blobs: blobs}
}

// Apply 先落盘附件再插行。插行失败不回删附件（无补偿删除，
// 既有限制原样保留）。jobID/userID 不做存在性校验，重复投递产生多行；
// 只有打开 hardening 唯一索引时，重复才会以 409 暴露。
func (s *Service) Apply(ctx context.Context, jobID, userID uint, up *Upload) error {
	if up == nil || up.Data == nil {
		return apperr.Validation("No file uploaded")
	}
	fileID, err := s.blobs.Save(ctx, up.Name, up.Data)
	if err != nil {
		return apperr.Store("", err)
	}
	a := domain.Application{
		JobID:      jobID,
		UserID:     userID,
		Status:     domain.StatusPending,
		PostedDate: time.Now(),
		FileID:     fileID,
	}
	if err := s.apps.Create(&a); err != nil {
		if isDupKey(err) {
			return apperr.Conflict("Application already submitted")
		}
		return apperr.Store("", err)
	}
	return nil
}

// SetStatus 置位幂等：同一值重复设置观测状态不变。
// 0 行命中 → 404。布尔严格性由传输层绑定保证。
func (s *Service) SetStatus(jobID, userID uint, status bool) error {
	matched, err := s.apps.UpdateStatus(jobID, userID, status)
	if err != nil {
		return apperr.Store("", err)
	}
	if matched == 0 {
		return apperr.NotFound("Application not found")
	}
	return nil
}

// isDupKey 不依赖 gorm.ErrDuplicatedKey，避免方言差异
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "unique failed")
}
