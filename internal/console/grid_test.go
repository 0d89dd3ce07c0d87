package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
)

// ==================== 格子分派 ====================

func TestDispatch(t *testing.T) {
	cases := []struct {
		name string
		cell model.ScheduleCell
		want CellAction
	}{
		{"可订格子打开直订", model.ScheduleCell{State: model.CellAvailable}, ActionCreate},
		{"零值状态视为可订", model.ScheduleCell{}, ActionCreate},
		{"待审核带引用看详情", model.ScheduleCell{State: model.CellPending, ReservationID: 3}, ActionDetail},
		{"已预定带引用看详情", model.ScheduleCell{State: model.CellBooked, ReservationID: 5}, ActionDetail},
		{"已完成带引用看详情", model.ScheduleCell{State: model.CellFinished, ReservationID: 8}, ActionDetail},
		{"非可订缺引用不响应", model.ScheduleCell{State: model.CellBooked}, ActionNone},
	}
	for _, c := range cases {
		if got := Dispatch(c.cell); got != c.want {
			t.Errorf("%s: Dispatch = %s, want %s", c.name, got, c.want)
		}
	}
}

// ==================== 时间窗口 ====================

func TestWindow(t *testing.T) {
	anchor := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	dates := Window(anchor)

	if len(dates) != WindowDays {
		t.Fatalf("窗口长度 = %d, want %d", len(dates), WindowDays)
	}
	if dates[0] != "2026-03-10" {
		t.Errorf("首日 = %s, want 2026-03-10", dates[0])
	}
	if dates[6] != "2026-03-16" {
		t.Errorf("末日 = %s, want 2026-03-16", dates[6])
	}
}

func TestShiftAnchor(t *testing.T) {
	anchor := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	next := ShiftAnchor(anchor, 1)
	if next.Format("2006-01-02") != "2026-03-17" {
		t.Errorf("下一周 = %s, want 2026-03-17", next.Format("2006-01-02"))
	}

	prev := ShiftAnchor(anchor, -1)
	if prev.Format("2006-01-02") != "2026-03-03" {
		t.Errorf("上一周 = %s, want 2026-03-03", prev.Format("2006-01-02"))
	}
}

// ==================== 测试辅助：假上游 ====================

// fakeUpstream 记录各端点命中次数的模拟后端
type fakeUpstream struct {
	srv          *httptest.Server
	matrixCalls  int64
	reserveCalls int64
	storesCalls  int64
	cellState    model.CellState // 矩阵返回的格子状态
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	f := &fakeUpstream{cellState: model.CellAvailable}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/room-schedules", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.matrixCalls, 1)
		rows := []model.ScheduleRow{{
			Room: model.Room{ID: 1, RoomNo: "101", StoreID: 1},
			Cells: []model.ScheduleCell{
				{RoomID: 1, Date: "2026-03-10", State: f.cellState, ReservationID: 7},
			},
		}}
		writeEnvelope(w, rows)
	})
	mux.HandleFunc("/api/admin/stores", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.storesCalls, 1)
		writeEnvelope(w, map[string]interface{}{
			"list":  []model.Store{{ID: 1, Name: "旗舰店"}, {ID: 2, Name: "滨江店"}},
			"total": 2,
		})
	})
	mux.HandleFunc("/api/admin/reservations/direct", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&f.reserveCalls, 1)
		f.cellState = model.CellBooked
		writeEnvelope(w, model.Reservation{
			ID: 7, ReserveNo: "A0000007", Status: model.ReserveApproved,
			StoreID: 1, RoomID: 1, MemberID: 3, ReserveDate: "2026-03-10",
		})
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func writeEnvelope(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    200,
		"success": true,
		"message": "操作成功",
		"data":    data,
	})
}

func newGrid(t *testing.T) (*GridService, *fakeUpstream) {
	upstream := newFakeUpstream(t)
	client := rest.NewClient(upstream.srv.URL, nil)
	return NewGridService(api.New(client), querycache.New()), upstream
}

// ==================== 矩阵 ====================

func TestGridService_MatrixCached(t *testing.T) {
	grid, upstream := newGrid(t)
	anchor := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	ctx := context.Background()

	rows, errs := grid.Matrix(ctx, 1, anchor)
	if len(errs) != 0 {
		t.Fatalf("Matrix 出错: %v", errs)
	}
	if len(rows) != 1 || rows[0].Room.RoomNo != "101" {
		t.Fatalf("矩阵行 = %+v", rows)
	}

	// 同窗重读命中缓存，不回源
	grid.Matrix(ctx, 1, anchor)
	if n := atomic.LoadInt64(&upstream.matrixCalls); n != 1 {
		t.Errorf("矩阵回源 %d 次, want 1", n)
	}
}

func TestGridService_MatrixFanOut(t *testing.T) {
	grid, upstream := newGrid(t)
	anchor := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	// 未指定门店：先拉门店清单，再逐店扇出
	rows, errs := grid.Matrix(context.Background(), 0, anchor)
	if len(errs) != 0 {
		t.Fatalf("扇出出错: %v", errs)
	}
	if len(rows) != 2 {
		t.Errorf("两家门店应拍平为 2 行, got %d", len(rows))
	}
	if atomic.LoadInt64(&upstream.storesCalls) != 1 {
		t.Error("应拉取一次门店清单")
	}
	if atomic.LoadInt64(&upstream.matrixCalls) != 2 {
		t.Errorf("应逐店各拉一次矩阵, got %d", upstream.matrixCalls)
	}
}

// ==================== 直订 ====================

func TestGridService_DirectBookMemberRequired(t *testing.T) {
	grid, upstream := newGrid(t)

	// 未选会员：本地拦截，一个网络请求都不发
	_, err := grid.DirectBook(context.Background(), api.DirectReserveReq{
		StoreID: 1, RoomID: 1, ReserveDate: "2026-03-10",
	})
	if err != ErrMemberRequired {
		t.Errorf("err = %v, want ErrMemberRequired", err)
	}
	if atomic.LoadInt64(&upstream.reserveCalls) != 0 {
		t.Error("校验不过不应发起网络请求")
	}
}

func TestGridService_DirectBookInvalidatesMatrix(t *testing.T) {
	grid, upstream := newGrid(t)
	anchor := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	ctx := context.Background()

	// 预热缓存：此时格子可订
	rows, _ := grid.Matrix(ctx, 1, anchor)
	if rows[0].Cells[0].State != model.CellAvailable {
		t.Fatalf("预热状态 = %s, want AVAILABLE", rows[0].Cells[0].State)
	}

	reservation, err := grid.DirectBook(ctx, api.DirectReserveReq{
		StoreID: 1, RoomID: 1, MemberID: 3, ReserveDate: "2026-03-10",
	})
	if err != nil {
		t.Fatalf("直订失败: %v", err)
	}
	if reservation.Status != model.ReserveApproved {
		t.Errorf("直订状态 = %s, want APPROVED (无人工审核)", reservation.Status)
	}

	// 缓存整体失效：重读回源并看到新状态
	rows, errs := grid.Matrix(ctx, 1, anchor)
	if len(errs) != 0 {
		t.Fatalf("重读出错: %v", errs)
	}
	if rows[0].Cells[0].State != model.CellBooked {
		t.Errorf("直订后格子 = %s, want BOOKED", rows[0].Cells[0].State)
	}
	if n := atomic.LoadInt64(&upstream.matrixCalls); n != 2 {
		t.Errorf("矩阵回源 %d 次, want 2 (失效后重新拉取)", n)
	}
}

// ==================== 预约详情 ====================

func TestGridService_BookingDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/bookings/7", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, model.Reservation{
			ID: 7, Status: model.ReservePending, MemberID: 3, StaffID: 2,
		})
	})
	mux.HandleFunc("/api/admin/members/3", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, model.Member{ID: 3, Name: "陈先生"})
	})
	mux.HandleFunc("/api/admin/salespersons/2", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, model.Staff{ID: 2, Name: "张销售"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	grid := NewGridService(api.New(rest.NewClient(srv.URL, nil)), querycache.New())
	detail, err := grid.BookingDetail(context.Background(), 7)
	if err != nil {
		t.Fatalf("详情失败: %v", err)
	}

	if detail.StatusBadge != "待审核" {
		t.Errorf("徽标 = %s, want 待审核", detail.StatusBadge)
	}
	if detail.MemberName != "陈先生" || detail.StaffName != "张销售" {
		t.Errorf("依赖解析 = %s/%s", detail.MemberName, detail.StaffName)
	}
}
