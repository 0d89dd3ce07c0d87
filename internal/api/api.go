package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
)

// Envelope 上游统一响应壳
type Envelope struct {
	Code    int             `json:"code"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Page 分页集合
type Page[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// BusinessError HTTP 成功但业务失败 (success=false)
// 调用方与传输错误同等对待，展示 Message
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("business failure %d: %s", e.Code, e.Message)
}

// Filter 列表过滤参数，原样透传给上游，不做客户端二次解释
type Filter struct {
	Page     int
	Size     int
	Keyword  string
	StoreID  int64
	SalesID  int64
	MemberID int64
}

// Query 组装查询参数，零值省略
func (f Filter) Query() map[string]string {
	q := map[string]string{}
	if f.Page > 0 {
		q["page"] = strconv.Itoa(f.Page)
	}
	if f.Size > 0 {
		q["size"] = strconv.Itoa(f.Size)
	}
	if f.Keyword != "" {
		q["keyword"] = f.Keyword
	}
	if f.StoreID > 0 {
		q["storeId"] = strconv.FormatInt(f.StoreID, 10)
	}
	if f.SalesID > 0 {
		q["salesId"] = strconv.FormatInt(f.SalesID, 10)
	}
	if f.MemberID > 0 {
		q["memberId"] = strconv.FormatInt(f.MemberID, 10)
	}
	return q
}

// call 发请求并剥开响应壳，success=false 转为 BusinessError
func call(ctx context.Context, client *rest.Client, path string, opt rest.Options) (json.RawMessage, error) {
	var env Envelope
	if err := client.JSON(ctx, path, opt, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, &BusinessError{Code: env.Code, Message: env.Message}
	}
	return env.Data, nil
}

// listOf 拉取分页集合并解码
func listOf[T any](ctx context.Context, client *rest.Client, path string, f Filter) (*Page[T], error) {
	data, err := call(ctx, client, path, rest.Options{Query: f.Query()})
	if err != nil {
		return nil, err
	}
	var page Page[T]
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// detailOf 拉取单个实体，data 为 null 时返回 (nil, nil)
func detailOf[T any](ctx context.Context, client *rest.Client, path string) (*T, error) {
	data, err := call(ctx, client, path, rest.Options{})
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// createOf POST 新建并解码返回实体
func createOf[T any](ctx context.Context, client *rest.Client, path string, body interface{}) (*T, error) {
	data, err := call(ctx, client, path, rest.Options{Method: "POST", Body: body})
	if err != nil {
		return nil, err
	}
	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// updateOf PUT 局部更新
func updateOf[T any](ctx context.Context, client *rest.Client, path string, patch interface{}) (*T, error) {
	data, err := call(ctx, client, path, rest.Options{Method: "PUT", Body: patch})
	if err != nil {
		return nil, err
	}
	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// removeAt DELETE，只要 success 即认为删除成功
func removeAt(ctx context.Context, client *rest.Client, path string) error {
	_, err := call(ctx, client, path, rest.Options{Method: "DELETE"})
	return err
}

// API 全部资源门面的集合，注入到控制台各视图
type API struct {
	Auth        *Auth
	Stores      *Stores
	TeamLeaders *TeamLeaders
	Salespeople *Salespeople
	Members     *Members
	Recharges   *Recharges
	Consumes    *Consumes
	Rooms       *Rooms
	Bookings    *Bookings
	Schedule    *Schedule
}

func New(client *rest.Client) *API {
	return &API{
		Auth:        &Auth{client: client},
		Stores:      &Stores{client: client},
		TeamLeaders: &TeamLeaders{client: client},
		Salespeople: &Salespeople{client: client},
		Members:     &Members{client: client},
		Recharges:   &Recharges{client: client},
		Consumes:    &Consumes{client: client},
		Rooms:       &Rooms{client: client},
		Bookings:    &Bookings{client: client},
		Schedule:    &Schedule{client: client},
	}
}
