package repo

import (
	"errors"

	"gorm.io/gorm"

	"jobdesk/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Create(j *domain.Job) error { return r.db.Create(j).Error }

func (r *JobRepo) ListByPoster(userID uint) ([]domain.Job, error) {
	var jobs []domain.Job
	// 不加 ORDER BY，保持存储自然顺序
	err := r.db.Where("userId = ?", userID).Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) ListAll() ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) FindByID(id uint) (*domain.Job, error) {
	var j domain.Job
	err := r.db.First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Update 整条覆盖十个字段（发布者除外）。用 map 强制写入零值，
// 不做存在性检查：0 行命中同样返回 nil。
func (r *JobRepo) Update(id uint, j *domain.Job) error {
	return r.db.Model(&domain.Job{}).Where("id = ?", id).Updates(map[string]any{
		"title":       j.Title,
		"company":     j.Company,
		"location":    j.Location,
		"type":        j.Type,
		"minSalary":   j.MinSalary,
		"maxSalary":   j.MaxSalary,
		"experience":  j.Experience,
		"description": j.Description,
		"skills":      j.Skills,
		"remote":      j.Remote,
	}).Error
}

func (r *JobRepo) Search(f domain.JobFilter) ([]domain.Job, error) {
	cond, args := f.Conditions()
	var jobs []domain.Job
	err := r.db.Where(cond, args...).Find(&jobs).Error
	return jobs, err
}
