// Package job 职位目录：增改查 + 动态搜索过滤。
package job

import (
	"strconv"

	"jobdesk/internal/core/apperr"
	"jobdesk/internal/domain"
)

// Input 十一个字段原样入库，不做范围或类型收窄；
// Update 路径忽略 UserID（发布者不可改）。
type Input struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	MinSalary   int    `json:"minSalary"`
	MaxSalary   int    `json:"maxSalary"`
	Experience  string `json:"experience"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
	UserID      uint   `json:"userId"`
	Remote      bool   `json:"remote"`
}

func (in Input) toJob() domain.Job {
	return domain.Job{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		Type:        in.Type,
		MinSalary:   in.MinSalary,
		MaxSalary:   in.MaxSalary,
		Experience:  in.Experience,
		Description: in.Description,
		Skills:      in.Skills,
		UserID:      in.UserID,
		Remote:      in.Remote,
	}
}

type Service struct {
	jobs domain.JobRepository
}

func NewService(jobs domain.JobRepository) *Service {
	return &Service{jobs: jobs}
}

func (s *Service) Create(in Input) error {
	j := in.toJob()
	if err := s.jobs.Create(&j); err != nil {
		return apperr.Store("", err)
	}
	return nil
}

// ListForUser 接收原始查询参数，缺失即 400。
func (s *Service) ListForUser(userID string) ([]domain.Job, error) {
	if userID == "" {
		return nil, apperr.Validation("Missing userId parameter")
	}
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return nil, apperr.Validation("Missing userId parameter")
	}
	jobs, err := s.jobs.ListByPoster(uint(id))
	if err != nil {
		return nil, apperr.Store("", err)
	}
	return jobs, nil
}

// ListAll 空目录按约定返回 404（与 Search 的空数组成对比，
// 两者的不对称是受测契约，不要"修正"）。
func (s *Service) ListAll() ([]domain.Job, error) {
	jobs, err := s.jobs.ListAll()
	if err != nil {
		return nil, apperr.Store("", err)
	}
	if len(jobs) == 0 {
		return nil, apperr.NotFound("Job not found")
	}
	return jobs, nil
}

func (s *Service) Get(id uint) (*domain.Job, error) {
	j, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, apperr.Store("", err)
	}
	if j == nil {
		return nil, apperr.NotFound("Job not found")
	}
	return j, nil
}

// Update 盲覆盖：不存在的 id 命中 0 行，同样报成功。
func (s *Service) Update(id uint, in Input) error {
	j := in.toJob()
	if err := s.jobs.Update(id, &j); err != nil {
		return apperr.Store("", err)
	}
	return nil
}

// Search 零匹配不是错误，返回空集合。
func (s *Service) Search(f domain.JobFilter) ([]domain.Job, error) {
	jobs, err := s.jobs.Search(f)
	if err != nil {
		return nil, apperr.Store("", err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}
