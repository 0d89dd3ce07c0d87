package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
)

// WindowDays 排期窗口固定 7 天
const WindowDays = 7

// ErrMemberRequired 直订未选会员，在发起任何网络请求之前拦下
var ErrMemberRequired = errors.New("请先选择会员")

// CellAction 点击格子后的动作
type CellAction string

const (
	ActionCreate CellAction = "create" // 打开直订弹窗
	ActionDetail CellAction = "detail" // 打开预约详情
	ActionNone   CellAction = "none"   // 不响应
)

// Dispatch 格子点击分派规则
// 可订 → 创建；非可订且有预约引用 → 详情；
// 非可订但引用缺失属于数据不一致，保守地不响应
func Dispatch(cell model.ScheduleCell) CellAction {
	if cell.State == "" || cell.State == model.CellAvailable {
		return ActionCreate
	}
	if cell.ReservationID > 0 {
		return ActionDetail
	}
	return ActionNone
}

// Window 从锚点日期起连续 7 个自然日
func Window(anchor time.Time) []string {
	dates := make([]string, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		dates = append(dates, anchor.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

// ShiftAnchor 前后翻一周
func ShiftAnchor(anchor time.Time, weeks int) time.Time {
	return anchor.AddDate(0, 0, weeks*WindowDays)
}

// GridService 排期矩阵 + 直订
type GridService struct {
	api   *api.API
	cache *querycache.Cache
}

func NewGridService(a *api.API, cache *querycache.Cache) *GridService {
	return &GridService{api: a, cache: cache}
}

// matrixKey 缓存键，失效按 "schedule" 前缀整体打
func matrixKey(storeID int64, from string) string {
	return querycache.Key("schedule", map[string]string{
		"storeId": strconv.FormatInt(storeID, 10),
		"from":    from,
	})
}

// Matrix 拉取排期矩阵
// 指定门店时单次请求；未指定门店时对所有已知门店并发扇出再拍平，
// 单个门店失败不拖垮整体，错误逐个带回由上层提示
func (g *GridService) Matrix(ctx context.Context, storeID int64, anchor time.Time) ([]model.ScheduleRow, []error) {
	from := anchor.Format("2006-01-02")

	if storeID > 0 {
		rows, err := g.storeMatrix(ctx, storeID, from)
		if err != nil {
			return nil, []error{err}
		}
		return rows, nil
	}

	// 上游没有全店聚合接口，先拿门店清单再逐店扇出
	stores, err := g.api.Stores.List(ctx, api.Filter{Page: 1, Size: 100})
	if err != nil {
		return nil, []error{fmt.Errorf("门店列表获取失败: %w", err)}
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		rows []model.ScheduleRow
		errs []error
	)

	for _, store := range stores.List {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			part, err := g.storeMatrix(ctx, id, from)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("门店 %d 排期获取失败: %w", id, err))
				return
			}
			rows = append(rows, part...)
		}(store.ID)
	}
	wg.Wait()

	return rows, errs
}

func (g *GridService) storeMatrix(ctx context.Context, storeID int64, from string) ([]model.ScheduleRow, error) {
	data, err := g.cache.Get(ctx, matrixKey(storeID, from), func(ctx context.Context) (interface{}, error) {
		return g.api.Schedule.Matrix(ctx, storeID, from, WindowDays)
	})
	if err != nil {
		return nil, err
	}
	return data.([]model.ScheduleRow), nil
}

// DirectBook 管理员直订
// 会员必选，校验不过不发请求；成功后矩阵缓存整体失效，
// 所有打开的排期视图下次读取时重新拉取
func (g *GridService) DirectBook(ctx context.Context, req api.DirectReserveReq) (*model.Reservation, error) {
	if req.MemberID == 0 {
		return nil, ErrMemberRequired
	}

	reservation, err := g.api.Schedule.DirectReserve(ctx, req)
	if err != nil {
		return nil, err
	}

	g.cache.InvalidatePrefix("schedule")
	return reservation, nil
}

// BookingDetail 预约详情视图数据
// 会员名与销售名通过两次依赖查询解析，键缺失时跳过对应查询
type BookingDetail struct {
	Reservation model.Reservation `json:"reservation"`
	StatusBadge string            `json:"status_badge"`
	MemberName  string            `json:"member_name"`
	StaffName   string            `json:"staff_name"`
}

func (g *GridService) BookingDetail(ctx context.Context, id int64) (*BookingDetail, error) {
	reservation, err := g.api.Bookings.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, nil
	}

	detail := &BookingDetail{
		Reservation: *reservation,
		StatusBadge: model.StatusBadge(reservation.Status),
	}

	if reservation.MemberID > 0 {
		if member, err := g.api.Members.Detail(ctx, reservation.MemberID); err == nil && member != nil {
			detail.MemberName = member.Name
		}
	}
	if reservation.StaffID > 0 {
		if staff, err := g.api.Salespeople.Detail(ctx, reservation.StaffID); err == nil && staff != nil {
			detail.StaffName = staff.Name
		}
	}

	return detail, nil
}
