package api

import (
	"context"
	"fmt"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
)

// 每个资源一个门面：薄薄一层 list/detail/create/update/remove
// 过滤与分页都在上游完成，这里只透传

// Stores 门店
type Stores struct {
	client *rest.Client
}

func (s *Stores) List(ctx context.Context, f Filter) (*Page[model.Store], error) {
	return listOf[model.Store](ctx, s.client, "/api/admin/stores", f)
}

func (s *Stores) Detail(ctx context.Context, id int64) (*model.Store, error) {
	return detailOf[model.Store](ctx, s.client, fmt.Sprintf("/api/admin/stores/%d", id))
}

func (s *Stores) Create(ctx context.Context, body interface{}) (*model.Store, error) {
	return createOf[model.Store](ctx, s.client, "/api/admin/stores", body)
}

func (s *Stores) Update(ctx context.Context, id int64, patch interface{}) (*model.Store, error) {
	return updateOf[model.Store](ctx, s.client, fmt.Sprintf("/api/admin/stores/%d", id), patch)
}

func (s *Stores) Remove(ctx context.Context, id int64) error {
	return removeAt(ctx, s.client, fmt.Sprintf("/api/admin/stores/%d", id))
}

// TeamLeaders 组长
type TeamLeaders struct {
	client *rest.Client
}

func (t *TeamLeaders) List(ctx context.Context, f Filter) (*Page[model.Staff], error) {
	return listOf[model.Staff](ctx, t.client, "/api/admin/team-leaders", f)
}

func (t *TeamLeaders) Detail(ctx context.Context, id int64) (*model.Staff, error) {
	return detailOf[model.Staff](ctx, t.client, fmt.Sprintf("/api/admin/team-leaders/%d", id))
}

func (t *TeamLeaders) Create(ctx context.Context, body interface{}) (*model.Staff, error) {
	return createOf[model.Staff](ctx, t.client, "/api/admin/team-leaders", body)
}

func (t *TeamLeaders) Update(ctx context.Context, id int64, patch interface{}) (*model.Staff, error) {
	return updateOf[model.Staff](ctx, t.client, fmt.Sprintf("/api/admin/team-leaders/%d", id), patch)
}

func (t *TeamLeaders) Remove(ctx context.Context, id int64) error {
	return removeAt(ctx, t.client, fmt.Sprintf("/api/admin/team-leaders/%d", id))
}

// Salespeople 销售
type Salespeople struct {
	client *rest.Client
}

func (s *Salespeople) List(ctx context.Context, f Filter) (*Page[model.Staff], error) {
	return listOf[model.Staff](ctx, s.client, "/api/admin/salespersons", f)
}

func (s *Salespeople) Detail(ctx context.Context, id int64) (*model.Staff, error) {
	return detailOf[model.Staff](ctx, s.client, fmt.Sprintf("/api/admin/salespersons/%d", id))
}

func (s *Salespeople) Create(ctx context.Context, body interface{}) (*model.Staff, error) {
	return createOf[model.Staff](ctx, s.client, "/api/admin/salespersons", body)
}

func (s *Salespeople) Update(ctx context.Context, id int64, patch interface{}) (*model.Staff, error) {
	return updateOf[model.Staff](ctx, s.client, fmt.Sprintf("/api/admin/salespersons/%d", id), patch)
}

func (s *Salespeople) Remove(ctx context.Context, id int64) error {
	return removeAt(ctx, s.client, fmt.Sprintf("/api/admin/salespersons/%d", id))
}

// Members 会员
type Members struct {
	client *rest.Client
}

func (m *Members) List(ctx context.Context, f Filter) (*Page[model.Member], error) {
	return listOf[model.Member](ctx, m.client, "/api/admin/members", f)
}

func (m *Members) Detail(ctx context.Context, id int64) (*model.Member, error) {
	return detailOf[model.Member](ctx, m.client, fmt.Sprintf("/api/admin/members/%d", id))
}

func (m *Members) Create(ctx context.Context, body interface{}) (*model.Member, error) {
	return createOf[model.Member](ctx, m.client, "/api/admin/members", body)
}

func (m *Members) Update(ctx context.Context, id int64, patch interface{}) (*model.Member, error) {
	return updateOf[model.Member](ctx, m.client, fmt.Sprintf("/api/admin/members/%d", id), patch)
}

func (m *Members) Remove(ctx context.Context, id int64) error {
	return removeAt(ctx, m.client, fmt.Sprintf("/api/admin/members/%d", id))
}

// RechargeReq 充值请求
type RechargeReq struct {
	Amount     float64 `json:"amount"`
	GiftAmount float64 `json:"giftAmount"`
	StaffID    int64   `json:"staffId"`
}

// Recharge 为会员充值，上游落流水并重新推导卡等级
func (m *Members) Recharge(ctx context.Context, memberID int64, req RechargeReq) (*model.RechargeRecord, error) {
	return createOf[model.RechargeRecord](ctx, m.client,
		fmt.Sprintf("/api/admin/members/%d/recharge", memberID), req)
}

// Recharges 充值流水，只读台账
type Recharges struct {
	client *rest.Client
}

func (r *Recharges) List(ctx context.Context, f Filter) (*Page[model.RechargeRecord], error) {
	return listOf[model.RechargeRecord](ctx, r.client, "/api/admin/recharges", f)
}

func (r *Recharges) Detail(ctx context.Context, id int64) (*model.RechargeRecord, error) {
	return detailOf[model.RechargeRecord](ctx, r.client, fmt.Sprintf("/api/admin/recharges/%d", id))
}

// Consumes 消费流水，只读台账
type Consumes struct {
	client *rest.Client
}

func (c *Consumes) List(ctx context.Context, f Filter) (*Page[model.ConsumeRecord], error) {
	return listOf[model.ConsumeRecord](ctx, c.client, "/api/admin/consumes", f)
}

func (c *Consumes) Detail(ctx context.Context, id int64) (*model.ConsumeRecord, error) {
	return detailOf[model.ConsumeRecord](ctx, c.client, fmt.Sprintf("/api/admin/consumes/%d", id))
}

// Rooms 包房
type Rooms struct {
	client *rest.Client
}

func (r *Rooms) List(ctx context.Context, f Filter) (*Page[model.Room], error) {
	return listOf[model.Room](ctx, r.client, "/api/admin/rooms", f)
}

// Bookings 预约
type Bookings struct {
	client *rest.Client
}

func (b *Bookings) List(ctx context.Context, f Filter) (*Page[model.Reservation], error) {
	return listOf[model.Reservation](ctx, b.client, "/api/admin/bookings", f)
}

func (b *Bookings) Detail(ctx context.Context, id int64) (*model.Reservation, error) {
	return detailOf[model.Reservation](ctx, b.client, fmt.Sprintf("/api/admin/bookings/%d", id))
}

func (b *Bookings) Create(ctx context.Context, body interface{}) (*model.Reservation, error) {
	return createOf[model.Reservation](ctx, b.client, "/api/admin/bookings", body)
}

func (b *Bookings) Update(ctx context.Context, id int64, patch interface{}) (*model.Reservation, error) {
	return updateOf[model.Reservation](ctx, b.client, fmt.Sprintf("/api/admin/bookings/%d", id), patch)
}
