package model

import "time"

// StaffRole 员工角色
type StaffRole string

const (
	RoleTeamLeader StaffRole = "TEAM_LEADER"
	RoleSalesman   StaffRole = "SALESMAN"
)

// Staff 统一的员工记录，组长与销售共用一张表，按 Role 区分
// 销售通过 LeaderID 弱引用所属组长，只表达关系不表达归属
type Staff struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:64;comment:姓名"`
	Phone     string    `json:"phone" gorm:"size:20;comment:手机号"`
	Wechat    string    `json:"wechat" gorm:"size:64;comment:微信号"`
	Role      StaffRole `json:"role" gorm:"size:16;index;comment:角色"`
	StoreID   int64     `json:"store_id" gorm:"index;comment:所属门店"`
	LeaderID  int64     `json:"leader_id,omitempty" gorm:"index;comment:所属组长(仅销售)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string { return "staffs" }
