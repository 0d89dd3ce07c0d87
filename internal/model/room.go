package model

import "time"

// Room 包房，按门店静态配置，本身不随时间变化
type Room struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	RoomNo    string    `json:"room_no" gorm:"size:16;comment:包房号"`
	RoomType  string    `json:"room_type" gorm:"size:32;comment:房型"`
	StoreID   int64     `json:"store_id" gorm:"index;comment:所属门店"`
	Price     float64   `json:"price" gorm:"comment:门市价"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

// CellState 排期格子状态
type CellState string

const (
	CellAvailable CellState = "AVAILABLE"
	CellPending   CellState = "PENDING"
	CellBooked    CellState = "BOOKED"
	CellFinished  CellState = "FINISHED"
)

// CellLabel 状态到展示文案的映射，未知状态回退为可订
func CellLabel(state CellState) string {
	switch state {
	case CellPending:
		return "待审核"
	case CellBooked:
		return "已预定"
	case CellFinished:
		return "已完成"
	default:
		return "可订"
	}
}

// ScheduleCell 排期矩阵中的一个格子，(roomId, date) 唯一
// 无预约的格子恒为 AVAILABLE；状态由预约生命周期推导
type ScheduleCell struct {
	RoomID        int64     `json:"room_id"`
	Date          string    `json:"date"` // YYYY-MM-DD
	State         CellState `json:"state"`
	ReservationID int64     `json:"reservation_id,omitempty"`
}

// ScheduleRow 一行排期：包房 + 窗口内各日期的格子
type ScheduleRow struct {
	Room  Room           `json:"room"`
	Cells []ScheduleCell `json:"cells"`
}
