package model

import "time"

// CardTier 会员卡等级，由累计充值额按固定门槛划分
type CardTier struct {
	Type      string
	MinAmount float64
}

// 卡等级门槛表，MinAmount 升序
// 不变式：cardType = 满足 minAmount <= 累计充值 的最高档
var CardTiers = []CardTier{
	{Type: "普通卡", MinAmount: 0},
	{Type: "银卡", MinAmount: 5000},
	{Type: "金卡", MinAmount: 20000},
	{Type: "钻石卡", MinAmount: 50000},
}

// DeriveCardType 按累计充值额推导卡等级
func DeriveCardType(cumulativeRecharge float64) string {
	tier := CardTiers[0].Type
	for _, t := range CardTiers {
		if cumulativeRecharge >= t.MinAmount {
			tier = t.Type
		}
	}
	return tier
}

// Member 会员账户
// 余额分实充 (RemainingRecharge) 与赠送 (RemainingGift) 两部分
type Member struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	MemberNo           string    `json:"member_no" gorm:"size:20;uniqueIndex;comment:会员编号"`
	Name               string    `json:"name" gorm:"size:64;comment:姓名"`
	Phone              string    `json:"phone" gorm:"size:20;comment:手机号"`
	CardType           string    `json:"card_type" gorm:"size:16;comment:卡等级(由累计充值推导)"`
	IDNumber           string    `json:"id_number" gorm:"size:32;comment:证件号"`
	RegisterDate       time.Time `json:"register_date" gorm:"comment:注册日期"`
	CumulativeRecharge float64   `json:"cumulative_recharge" gorm:"comment:累计充值"`
	RemainingRecharge  float64   `json:"remaining_recharge" gorm:"comment:实充余额"`
	RemainingGift      float64   `json:"remaining_gift" gorm:"comment:赠送余额"`
	SalesID            int64     `json:"sales_id" gorm:"index;comment:所属销售(弱引用)"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Member) TableName() string { return "members" }
