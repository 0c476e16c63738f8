// Package account 凭据存取：注册时查重后写入 bcrypt 散列，
// 登录只做无状态校验，不签发任何令牌。
package account

import (
	"jobdesk/internal/core/apperr"
	"jobdesk/internal/domain"
	"jobdesk/pkg/utils"
)

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"` // 可选
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity 登录成功后的用户视图，绝不携带口令散列。
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"` // "名 姓" 拼接
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Service struct {
	users domain.UserRepository
}

func NewService(users domain.UserRepository) *Service {
	return &Service{users: users}
}

// Register 查重 + 插入不是原子的：并发同邮箱注册可能都成功，
// 这是既有设计保留的竞争窗口。成功时不返回新建 id。
func (s *Service) Register(in RegisterInput) error {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return apperr.Validation("All fields are required.")
	}
	existing, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return apperr.Store("", err)
	}
	if existing != nil {
		return apperr.Conflict("Email already registered.")
	}
	u := domain.User{
		Nom:      in.LastName,
		Prenom:   in.FirstName,
		Email:    in.Email,
		Password: utils.HashPassword(in.Password),
		Role:     in.Role,
	}
	if err := s.users.Create(&u); err != nil {
		return apperr.Store("", err)
	}
	return nil
}

// Login 对"查无此人"和"口令不符"返回同一条消息，不泄露用户是否存在。
func (s *Service) Login(in LoginInput) (*Identity, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("Email and password are required.")
	}
	u, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return nil, apperr.Store("", err)
	}
	if u == nil || !utils.CheckPassword(in.Password, u.Password) {
		return nil, apperr.Auth("Invalid email or password.")
	}
	return &Identity{
		ID:    u.ID,
		Name:  u.Prenom + " " + u.Nom,
		Email: u.Email,
		Role:  u.Role,
	}, nil
}
