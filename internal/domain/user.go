package domain

// User 注册后不可变；email 唯一性靠插入前查询保证，
// 表上没有唯一约束（写入竞争窗口是已知限制）。
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Nom      string `gorm:"column:nom;size:100" json:"nom"`       // 姓
	Prenom   string `gorm:"column:prenom;size:100" json:"prenom"` // 名
	Email    string `gorm:"size:191" json:"email"`
	Password string `gorm:"column:mot_de_passe;size:100" json:"-"` // bcrypt 散列
	Role     string `gorm:"size:32" json:"role"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	// FindByEmail 查不到返回 (nil, nil)
	FindByEmail(email string) (*User, error)
}
