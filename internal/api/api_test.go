package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
)

// ==================== 过滤参数 ====================

func TestFilter_QueryOmitsZeroValues(t *testing.T) {
	q := Filter{Page: 2, Size: 20, Keyword: "张"}.Query()

	assert.Equal(t, "2", q["page"])
	assert.Equal(t, "20", q["size"])
	assert.Equal(t, "张", q["keyword"])

	// 零值不出现，上游按缺省处理
	_, hasStore := q["storeId"]
	assert.False(t, hasStore)
	_, hasSales := q["salesId"]
	assert.False(t, hasSales)
}

func TestFilter_QueryEmpty(t *testing.T) {
	assert.Empty(t, Filter{}.Query())
}

// ==================== 响应壳 ====================

func jsonServer(t *testing.T, handler http.HandlerFunc) *rest.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, nil)
}

func TestListOf_DecodesPage(t *testing.T) {
	client := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 0, "success": true, "message": "success",
			"data": {"list": [{"id": 1, "name": "旗舰店"}], "total": 1, "page": 1, "size": 10}
		}`))
	})

	api := New(client)
	page, err := api.Stores.List(context.Background(), Filter{Page: 1})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.List, 1)
	assert.Equal(t, "旗舰店", page.List[0].Name)
}

func TestCall_BusinessFailure(t *testing.T) {
	// HTTP 200 但 success=false：与传输错误同等对待
	client := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 1000, "success": false, "message": "该包房当日已有预约"}`))
	})

	api := New(client)
	_, err := api.Schedule.DirectReserve(context.Background(), DirectReserveReq{
		StoreID: 1, RoomID: 1, MemberID: 1, ReserveDate: "2026-03-10",
	})

	assert.Error(t, err)
	bizErr, ok := err.(*BusinessError)
	assert.True(t, ok, "应为 BusinessError, got %T", err)
	assert.Equal(t, 1000, bizErr.Code)
	assert.Equal(t, "该包房当日已有预约", bizErr.Message)
}

func TestDetailOf_NullData(t *testing.T) {
	// data 为 null：记录不存在而非错误
	client := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 0, "success": true, "message": "success", "data": null}`))
	})

	api := New(client)
	store, err := api.Stores.Detail(context.Background(), 999)

	assert.NoError(t, err)
	assert.Nil(t, store)
}

func TestAuth_AdminLogin(t *testing.T) {
	client := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/auth/admin/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code": 0, "success": true, "data": {"token": "jwt-abc"}}`))
	})

	api := New(client)
	token, err := api.Auth.AdminLogin(context.Background(), "admin", "admin123")

	assert.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
}
