package domain

// Job 由发布者创建，更新为整条覆盖（非增量 patch），不提供删除。
// 列名沿用既有表结构（驼峰列）。min/max 薪资之间不校验大小关系。
type Job struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"size:191" json:"title"`
	Company     string `gorm:"size:191" json:"company"`
	Location    string `gorm:"size:191" json:"location"`
	Type        string `gorm:"size:64" json:"type"`
	MinSalary   int    `gorm:"column:minSalary" json:"minSalary"`
	MaxSalary   int    `gorm:"column:maxSalary" json:"maxSalary"`
	Experience  string `gorm:"size:191" json:"experience"`
	Description string `gorm:"type:text" json:"description"`
	Skills      string `gorm:"type:text" json:"skills"` // 原样文本，不做集合化
	UserID      uint   `gorm:"column:userId;index" json:"userId"`
	Remote      bool   `json:"remote"`
}

func (Job) TableName() string { return "jobs" }

// JobFilter 搜索条件：title/location 子串匹配，type 精确匹配，
// 空字段不参与过滤。大小写行为交给存储层排序规则。
type JobFilter struct {
	Title    string
	Location string
	Type     string
}

// Conditions 在 "匹配一切" 基底上拼接 AND 子句，返回 WHERE 片段与参数。
func (f JobFilter) Conditions() (string, []any) {
	sql := "1=1"
	args := []any{}
	if f.Title != "" {
		sql += " AND title LIKE ?"
		args = append(args, "%"+f.Title+"%")
	}
	if f.Location != "" {
		sql += " AND location LIKE ?"
		args = append(args, "%"+f.Location+"%")
	}
	if f.Type != "" {
		sql += " AND type = ?"
		args = append(args, f.Type)
	}
	return sql, args
}

type JobRepository interface {
	Create(j *Job) error
	// ListByPoster 按发布者过滤，保持存储自然顺序
	ListByPoster(userID uint) ([]Job, error)
	ListAll() ([]Job, error)
	// FindByID 查不到返回 (nil, nil)
	FindByID(id uint) (*Job, error)
	// Update 按 id 盲覆盖除发布者以外的全部字段；0 行命中也算成功
	Update(id uint, j *Job) error
	Search(f JobFilter) ([]Job, error)
}
