package repo

import (
	"gorm.io/gorm"

	"jobdesk/internal/domain"
)

type ApplicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

func (r *ApplicationRepo) Create(a *domain.Application) error { return r.db.Create(a).Error }

// UpdateStatus 返回 (id_job, id_user) 命中的行数。
// 先 Count 再 Update：MySQL 对"值未变化"的 UPDATE 报告 0 行受影响，
// 直接看 RowsAffected 会破坏重复置位的幂等契约。
func (r *ApplicationRepo) UpdateStatus(jobID, userID uint, status bool) (int64, error) {
	var matched int64
	if err := r.db.Model(&domain.Application{}).
		Where("id_job = ? AND id_user = ?", jobID, userID).
		Count(&matched).Error; err != nil {
		return 0, err
	}
	if matched == 0 {
		return 0, nil
	}
	if err := r.db.Model(&domain.Application{}).
		Where("id_job = ? AND id_user = ?", jobID, userID).
		Update("status", status).Error; err != nil {
		return 0, err
	}
	return matched, nil
}

func (r *ApplicationRepo) ApplicantsForJob(jobID uint) ([]domain.ApplicantRow, error) {
	var rows []domain.ApplicantRow
	err := r.db.Table("jobs_seekers js").
		Select("js.id_user, js.status, js.postedDate, js.fileId, u.nom, u.prenom, u.email").
		Joins("JOIN users u ON js.id_user = u.id").
		Where("js.id_job = ?", jobID).
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepo) ApplicationsForUser(userID uint) ([]domain.SeekerRow, error) {
	var rows []domain.SeekerRow
	err := r.db.Table("jobs_seekers js").
		Select("j.title, j.company, j.location, js.status, js.postedDate, js.fileId").
		Joins("JOIN jobs j ON js.id_job = j.id").
		Where("js.id_user = ?", userID).
		Scan(&rows).Error
	return rows, err
}
