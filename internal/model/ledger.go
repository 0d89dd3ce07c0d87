package model

import "time"

// RecordStatus 流水审核状态
type RecordStatus string

const (
	RecordPending   RecordStatus = "PENDING"
	RecordApproved  RecordStatus = "APPROVED"
	RecordRejected  RecordStatus = "REJECTED"
	RecordCancelled RecordStatus = "CANCELLED"
	RecordVoid      RecordStatus = "VOID"
)

// RechargeRecord 充值流水，只增不改的台账
// Balance/GiftBalance 是本笔入账后的余额快照
type RechargeRecord struct {
	ID           int64        `json:"id" gorm:"primaryKey"`
	MemberID     int64        `json:"member_id" gorm:"index;comment:会员ID"`
	Amount       float64      `json:"amount" gorm:"comment:实充金额"`
	GiftAmount   float64      `json:"gift_amount" gorm:"comment:赠送金额"`
	Balance      float64      `json:"balance" gorm:"comment:实充余额快照"`
	GiftBalance  float64      `json:"gift_balance" gorm:"comment:赠送余额快照"`
	StaffID      int64        `json:"staff_id" gorm:"index;comment:经办人"`
	Status       RecordStatus `json:"status" gorm:"size:16;index;comment:状态"`
	ReviewerID   int64        `json:"reviewer_id,omitempty" gorm:"comment:审核人"`
	ReviewedAt   *time.Time   `json:"reviewed_at,omitempty" gorm:"comment:审核时间"`
	RejectReason string       `json:"reject_reason,omitempty" gorm:"size:255;comment:驳回原因"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (RechargeRecord) TableName() string { return "recharge_records" }

// ConsumeRecord 消费流水，金额为扣减方向
// 一笔消费上有申请人与接待人两个独立的员工引用
type ConsumeRecord struct {
	ID               int64        `json:"id" gorm:"primaryKey"`
	MemberID         int64        `json:"member_id" gorm:"index;comment:会员ID"`
	Amount           float64      `json:"amount" gorm:"comment:扣减金额(负向)"`
	GiftAmount       float64      `json:"gift_amount" gorm:"comment:扣减赠送金额"`
	Balance          float64      `json:"balance" gorm:"comment:实充余额快照"`
	GiftBalance      float64      `json:"gift_balance" gorm:"comment:赠送余额快照"`
	RoomNo           string       `json:"room_no" gorm:"size:16;comment:包房号"`
	ConsumeType      string       `json:"consume_type" gorm:"size:32;comment:消费类型"`
	ApplyStaffID     int64        `json:"apply_staff_id" gorm:"index;comment:申请员工"`
	ReceptionStaffID int64        `json:"reception_staff_id" gorm:"index;comment:接待员工"`
	PaymentVoucher   string       `json:"payment_voucher,omitempty" gorm:"size:255;comment:支付凭证图片"`
	Status           RecordStatus `json:"status" gorm:"size:16;index;comment:状态"`
	ReviewerID       int64        `json:"reviewer_id,omitempty" gorm:"comment:审核人"`
	ReviewedAt       *time.Time   `json:"reviewed_at,omitempty" gorm:"comment:审核时间"`
	RejectReason     string       `json:"reject_reason,omitempty" gorm:"size:255;comment:驳回原因"`
	CreatedAt        time.Time    `json:"created_at"`
}

func (ConsumeRecord) TableName() string { return "consume_records" }
