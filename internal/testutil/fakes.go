// Package testutil 内存版仓库实现，供各 feature 包测试使用。
// 语义对齐 SQL 契约：Search 的子串/精确匹配、join 视图、盲覆盖更新。
package testutil

import (
	"fmt"
	"strings"
	"sync"

	"jobdesk/internal/domain"
)

type FakeUserRepo struct {
	mu     sync.Mutex
	Users  []domain.User
	nextID uint
}

func NewFakeUserRepo() *FakeUserRepo { return &FakeUserRepo{} }

func (r *FakeUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	r.Users = append(r.Users, *u)
	return nil
}

func (r *FakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Users {
		if r.Users[i].Email == email {
			u := r.Users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// CountByEmail 测试断言用
func (r *FakeUserRepo) CountByEmail(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for i := range r.Users {
		if r.Users[i].Email == email {
			n++
		}
	}
	return n
}

type FakeJobRepo struct {
	mu     sync.Mutex
	Jobs   []domain.Job
	nextID uint
}

func NewFakeJobRepo() *FakeJobRepo { return &FakeJobRepo{} }

func (r *FakeJobRepo) Create(j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	j.ID = r.nextID
	r.Jobs = append(r.Jobs, *j)
	return nil
}

func (r *FakeJobRepo) ListByPoster(userID uint) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.Jobs {
		if j.UserID == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *FakeJobRepo) ListAll() ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Job(nil), r.Jobs...), nil
}

func (r *FakeJobRepo) FindByID(id uint) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Jobs {
		if r.Jobs[i].ID == id {
			j := r.Jobs[i]
			return &j, nil
		}
	}
	return nil, nil
}

func (r *FakeJobRepo) Update(id uint, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Jobs {
		if r.Jobs[i].ID == id {
			poster := r.Jobs[i].UserID
			r.Jobs[i] = *j
			r.Jobs[i].ID = id
			r.Jobs[i].UserID = poster // 发布者不在覆盖范围内
		}
	}
	// 0 行命中同样成功
	return nil
}

func (r *FakeJobRepo) Search(f domain.JobFilter) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, j := range r.Jobs {
		if f.Title != "" && !strings.Contains(j.Title, f.Title) {
			continue
		}
		if f.Location != "" && !strings.Contains(j.Location, f.Location) {
			continue
		}
		if f.Type != "" && j.Type != f.Type {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

type FakeApplicationRepo struct {
	mu     sync.Mutex
	Apps   []domain.Application
	Users  *FakeUserRepo
	Jobs   *FakeJobRepo
	Unique bool // 模拟 hardening 唯一索引
	nextID uint
}

func NewFakeApplicationRepo(users *FakeUserRepo, jobs *FakeJobRepo) *FakeApplicationRepo {
	return &FakeApplicationRepo{Users: users, Jobs: jobs}
}

func (r *FakeApplicationRepo) Create(a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Unique {
		for _, ex := range r.Apps {
			if ex.JobID == a.JobID && ex.UserID == a.UserID {
				return fmt.Errorf("Duplicate entry '%d-%d' for key 'uidx_jobs_seekers_job_user'", a.JobID, a.UserID)
			}
		}
	}
	r.nextID++
	a.ID = r.nextID
	r.Apps = append(r.Apps, *a)
	return nil
}

func (r *FakeApplicationRepo) UpdateStatus(jobID, userID uint, status bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched int64
	for i := range r.Apps {
		if r.Apps[i].JobID == jobID && r.Apps[i].UserID == userID {
			r.Apps[i].Status = status
			matched++
		}
	}
	return matched, nil
}

func (r *FakeApplicationRepo) ApplicantsForJob(jobID uint) ([]domain.ApplicantRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []domain.ApplicantRow
	for _, a := range r.Apps {
		if a.JobID != jobID {
			continue
		}
		// 内连接语义：缺用户的行不出现
		for _, u := range r.Users.Users {
			if u.ID == a.UserID {
				rows = append(rows, domain.ApplicantRow{
					UserID:     a.UserID,
					Status:     a.Status,
					PostedDate: a.PostedDate,
					FileID:     a.FileID,
					Nom:        u.Nom,
					Prenom:     u.Prenom,
					Email:      u.Email,
				})
			}
		}
	}
	return rows, nil
}

func (r *FakeApplicationRepo) ApplicationsForUser(userID uint) ([]domain.SeekerRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []domain.SeekerRow
	for _, a := range r.Apps {
		if a.UserID != userID {
			continue
		}
		for _, j := range r.Jobs.Jobs {
			if j.ID == a.JobID {
				rows = append(rows, domain.SeekerRow{
					Title:      j.Title,
					Company:    j.Company,
					Location:   j.Location,
					Status:     a.Status,
					PostedDate: a.PostedDate,
					FileID:     a.FileID,
				})
			}
		}
	}
	return rows, nil
}
