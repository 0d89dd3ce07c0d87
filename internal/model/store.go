package model

import "time"

// Store 门店
// 创建后身份不变，被员工/包房/预约引用
type Store struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:64;comment:门店名称"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 房价方案，两种形态之一，JSON 存储
	PricingScheme string `json:"pricing_scheme,omitempty" gorm:"type:text;comment:房价方案JSON"`
}

func (Store) TableName() string { return "stores" }
