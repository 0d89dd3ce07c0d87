package api

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
)

// Schedule 排期矩阵与管理员直订
// 上游没有跨门店聚合接口，矩阵只能按单店拉取，多店在控制台侧并发扇出
type Schedule struct {
	client *rest.Client
}

// Matrix 拉取某门店从 from 起 days 天的排期矩阵
// from 格式 YYYY-MM-DD
func (s *Schedule) Matrix(ctx context.Context, storeID int64, from string, days int) ([]model.ScheduleRow, error) {
	data, err := call(ctx, s.client, "/api/admin/room-schedules", rest.Options{
		Query: map[string]string{
			"storeId": strconv.FormatInt(storeID, 10),
			"from":    from,
			"days":    strconv.Itoa(days),
		},
	})
	if err != nil {
		return nil, err
	}
	var rows []model.ScheduleRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DirectReserveReq 管理员直订请求
// 与普通顾客预约是两条通路：直订创建出来就是已通过状态，无人工审核
type DirectReserveReq struct {
	StoreID     int64  `json:"storeId"`
	RoomID      int64  `json:"roomId"`
	MemberID    int64  `json:"memberId"`
	StaffID     int64  `json:"staffId,omitempty"`
	ReserveDate string `json:"reserveDate"`
	GuestCount  int    `json:"guestCount,omitempty"`
	Remark      string `json:"remark,omitempty"`
}

// DirectReserve 直订
func (s *Schedule) DirectReserve(ctx context.Context, req DirectReserveReq) (*model.Reservation, error) {
	return createOf[model.Reservation](ctx, s.client, "/api/admin/reservations/direct", req)
}
