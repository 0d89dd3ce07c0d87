package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
)

// newReserveNo 预约单号：日期 + uuid 前 8 位
func newReserveNo() string {
	return fmt.Sprintf("R%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(uuid.NewString()[:8]))
}

// activeStatuses 占格子的预约状态；驳回/取消的格子重新放开
var activeStatuses = []model.ReservationStatus{model.ReservePending, model.ReserveApproved}

// cellState 由预约推导格子状态
// 已通过且日期已过视为已完成
func cellState(r model.Reservation, today string) model.CellState {
	if r.Status == model.ReservePending {
		return model.CellPending
	}
	if r.Status == model.ReserveApproved {
		if r.ReserveDate < today {
			return model.CellFinished
		}
		return model.CellBooked
	}
	return model.CellAvailable
}

// scheduleMatrix 排期矩阵：一房一行，窗口内每天一格
// 只支持单店查询，跨店聚合由调用方自行扇出
func (s *Server) scheduleMatrix(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Query("storeId"), 10, 64)
	if err != nil || storeID <= 0 {
		fail(c, http.StatusBadRequest, 400, "storeId 必填")
		return
	}

	from := c.Query("from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		fail(c, http.StatusBadRequest, 400, "from 格式应为 YYYY-MM-DD")
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	if days < 1 || days > 31 {
		days = 7
	}

	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format("2006-01-02"))
	}

	var rooms []model.Room
	if err := s.db.Where("store_id = ?", storeID).Find(&rooms).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}

	var reservations []model.Reservation
	if err := s.db.
		Where("store_id = ? AND reserve_date IN ? AND status IN ?", storeID, dates, activeStatuses).
		Find(&reservations).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}

	// (roomId, date) → 预约
	occupied := make(map[string]model.Reservation, len(reservations))
	for _, r := range reservations {
		occupied[fmt.Sprintf("%d/%s", r.RoomID, r.ReserveDate)] = r
	}

	today := time.Now().Format("2006-01-02")
	rows := make([]model.ScheduleRow, 0, len(rooms))
	for _, room := range rooms {
		cells := make([]model.ScheduleCell, 0, len(dates))
		for _, date := range dates {
			cell := model.ScheduleCell{RoomID: room.ID, Date: date, State: model.CellAvailable}
			if r, found := occupied[fmt.Sprintf("%d/%s", room.ID, date)]; found {
				cell.State = cellState(r, today)
				cell.ReservationID = r.ID
			}
			cells = append(cells, cell)
		}
		rows = append(rows, model.ScheduleRow{Room: room, Cells: cells})
	}

	ok(c, rows)
}

// directReserve 管理员直订：跳过审核，建出来就是已通过
func (s *Server) directReserve(c *gin.Context) {
	var req struct {
		StoreID     int64  `json:"storeId" binding:"required"`
		RoomID      int64  `json:"roomId" binding:"required"`
		MemberID    int64  `json:"memberId" binding:"required"`
		StaffID     int64  `json:"staffId"`
		ReserveDate string `json:"reserveDate" binding:"required"`
		GuestCount  int    `json:"guestCount"`
		Remark      string `json:"remark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	var member model.Member
	if err := s.db.First(&member, req.MemberID).Error; err != nil {
		bizFail(c, "会员不存在")
		return
	}
	var room model.Room
	if err := s.db.First(&room, req.RoomID).Error; err != nil {
		bizFail(c, "包房不存在")
		return
	}

	// 一格至多一条活跃预约
	var count int64
	s.db.Model(&model.Reservation{}).
		Where("room_id = ? AND reserve_date = ? AND status IN ?", req.RoomID, req.ReserveDate, activeStatuses).
		Count(&count)
	if count > 0 {
		bizFail(c, "该包房当日已有预约")
		return
	}

	reservation := model.Reservation{
		ReserveNo:   newReserveNo(),
		Status:      model.ReserveApproved,
		StoreID:     req.StoreID,
		RoomID:      req.RoomID,
		MemberID:    req.MemberID,
		StaffID:     req.StaffID,
		ReserveDate: req.ReserveDate,
		GuestCount:  req.GuestCount,
		Remark:      req.Remark,
	}
	if err := s.db.Create(&reservation).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	ok(c, reservation)
}
