package domain

import "time"

// Application 的状态机只有两个可观测状态：
//
//	pending(false) ──► accepted(true)
//
// 拒绝不是独立状态：置回/保持 false 即可，与"未审核"不可区分。
// 这是既有契约的一部分，不引入第三个状态。
const (
	StatusPending  = false
	StatusAccepted = true
)

// Application 关联一个 Job 和一个 User（求职者）。
// 默认不做 (id_job, id_user) 去重，重复投递会产生多行；
// 唯一索引仅在 hardening.unique_applications 打开时存在。
type Application struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	JobID      uint      `gorm:"column:id_job;index" json:"id_job"`
	UserID     uint      `gorm:"column:id_user;index" json:"id_user"`
	Status     bool      `json:"status"`
	PostedDate time.Time `gorm:"column:postedDate" json:"postedDate"` // 服务端投递时刻
	FileID     string    `gorm:"column:fileId;size:191" json:"fileId"`
}

func (Application) TableName() string { return "jobs_seekers" }

// ApplicantRow 雇主视角：每条申请附带求职者身份。
type ApplicantRow struct {
	UserID     uint      `gorm:"column:id_user" json:"id_user"`
	Status     bool      `json:"status"`
	PostedDate time.Time `gorm:"column:postedDate" json:"postedDate"`
	FileID     string    `gorm:"column:fileId" json:"fileId"`
	Nom        string    `json:"nom"`
	Prenom     string    `json:"prenom"`
	Email      string    `json:"email"`
}

// SeekerRow 求职者视角：每条申请附带职位概要。
type SeekerRow struct {
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Location   string    `json:"location"`
	Status     bool      `json:"status"`
	PostedDate time.Time `gorm:"column:postedDate" json:"postedDate"`
	FileID     string    `gorm:"column:fileId" json:"fileId"`
}

type ApplicationRepository interface {
	Create(a *Application) error
	// UpdateStatus 返回命中的行数；重复投递时命中多行与原契约一致
	UpdateStatus(jobID, userID uint, status bool) (int64, error)
	ApplicantsForJob(jobID uint) ([]ApplicantRow, error)
	ApplicationsForUser(userID uint) ([]SeekerRow, error)
}
