// Package views 查询门面：把投递数据组合成两种消费视角——
// 雇主看一个职位的申请人，求职者看自己的全部投递。
package views

import (
	"jobdesk/internal/core/apperr"
	"jobdesk/internal/domain"
)

type Facade struct {
	apps domain.ApplicationRepository
}

func NewFacade(apps domain.ApplicationRepository) *Facade {
	return &Facade{apps: apps}
}

// ApplicantsForJob 连 users 表，每条申请一行；无申请时返回空集合。
func (f *Facade) ApplicantsForJob(jobID uint) ([]domain.ApplicantRow, error) {
	rows, err := f.apps.ApplicantsForJob(jobID)
	if err != nil {
		return nil, apperr.Store("", err)
	}
	if rows == nil {
		rows = []domain.ApplicantRow{}
	}
	return rows, nil
}

// ApplicationsForUser 连 jobs 表，带职位概要。
func (f *Facade) ApplicationsForUser(userID uint) ([]domain.SeekerRow, error) {
	rows, err := f.apps.ApplicationsForUser(userID)
	if err != nil {
		return nil, apperr.Store("", err)
	}
	if rows == nil {
		rows = []domain.SeekerRow{}
	}
	return rows, nil
}
