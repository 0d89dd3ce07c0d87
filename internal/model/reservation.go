package model

import "time"

// ReservationStatus 预约审核状态
type ReservationStatus string

const (
	ReservePending   ReservationStatus = "PENDING"
	ReserveApproved  ReservationStatus = "APPROVED"
	ReserveRejected  ReservationStatus = "REJECTED"
	ReserveCancelled ReservationStatus = "CANCELLED"
)

// StatusBadge 状态徽标文案，未知状态给通用文案
func StatusBadge(status ReservationStatus) string {
	switch status {
	case ReservePending:
		return "待审核"
	case ReserveApproved:
		return "已通过"
	case ReserveRejected:
		return "已驳回"
	case ReserveCancelled:
		return "已取消"
	default:
		return "未知状态"
	}
}

// CellStateOf 由预约生命周期推导格子状态
// FINISHED 由上游在离店结算后落在格子上，这里只处理审核期
func CellStateOf(status ReservationStatus) CellState {
	switch status {
	case ReservePending:
		return CellPending
	case ReserveApproved:
		return CellBooked
	default:
		return CellAvailable
	}
}

// Reservation 包房预约
// 一个 (roomId, date) 格子至多挂一条活跃预约
type Reservation struct {
	ID          int64             `json:"id" gorm:"primaryKey"`
	ReserveNo   string            `json:"reserve_no" gorm:"size:40;uniqueIndex;comment:预约单号"`
	Status      ReservationStatus `json:"status" gorm:"size:16;index;comment:状态"`
	StoreID     int64             `json:"store_id" gorm:"index;comment:门店"`
	RoomID      int64             `json:"room_id" gorm:"index;comment:包房"`
	MemberID    int64             `json:"member_id" gorm:"index;comment:会员"`
	StaffID     int64             `json:"staff_id,omitempty" gorm:"index;comment:销售(可空)"`
	ReserveDate string            `json:"reserve_date" gorm:"size:10;index;comment:预约日期 YYYY-MM-DD"`
	GuestCount  int               `json:"guest_count,omitempty" gorm:"comment:预计人数"`
	Remark      string            `json:"remark,omitempty" gorm:"size:255;comment:备注"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (Reservation) TableName() string { return "reservations" }
