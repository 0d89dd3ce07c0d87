package console

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/api"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/querycache"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/rest"
	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/pkg/response"
)

// ListResult 列表视图渲染数据
type ListResult struct {
	Columns    []Column   `json:"columns"`
	Rows       []Row      `json:"rows"`
	Pagination Pagination `json:"pagination"`
	Sort       SortState  `json:"sort"`
}

// BatchDeleteReq 批量删除请求
type BatchDeleteReq struct {
	IDs []int64 `json:"ids" binding:"required"`
}

// BatchDeleteResult 批次结束后的汇总
// 单条失败互不影响，跑完整个批次再一起汇报
type BatchDeleteResult struct {
	Deleted []int64          `json:"deleted"`
	Failed  map[int64]string `json:"failed,omitempty"`
}

// parseFilter 从查询串解析过滤参数，原样转给上游
func parseFilter(c *gin.Context) api.Filter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	storeID, _ := strconv.ParseInt(c.Query("storeId"), 10, 64)
	salesID, _ := strconv.ParseInt(c.Query("salesId"), 10, 64)
	memberID, _ := strconv.ParseInt(c.Query("memberId"), 10, 64)

	return api.Filter{
		Page:     page,
		Size:     size,
		Keyword:  c.Query("keyword"),
		StoreID:  storeID,
		SalesID:  salesID,
		MemberID: memberID,
	}
}

// parseSort 当前列排序状态；click 参数表示本次点击的列，在服务端完成三态循环
func parseSort(c *gin.Context) SortState {
	state := SortState{
		Key:   c.Query("sort"),
		Order: Order(c.DefaultQuery("order", string(OrderNone))),
	}
	if clicked := c.Query("click"); clicked != "" {
		state = state.Click(clicked)
	}
	return state
}

// loadList 过缓存拉取一页数据并套用视图侧排序
func loadList[T any](
	ctx context.Context,
	cache *querycache.Cache,
	resource string,
	list func(context.Context, api.Filter) (*api.Page[T], error),
	columns []Column,
	toRow func(T) Row,
	filter api.Filter,
	sortState SortState,
) (*ListResult, error) {
	fetch := func(f api.Filter) (*api.Page[T], error) {
		key := querycache.KeyJSON(resource, f)
		data, err := cache.Get(ctx, key, func(ctx context.Context) (interface{}, error) {
			return list(ctx, f)
		})
		if err != nil {
			return nil, err
		}
		return data.(*api.Page[T]), nil
	}

	page, err := fetch(filter)
	if err != nil {
		return nil, err
	}

	// 页码越界时按钳制后的页码重取，返回的行必须就是该页的数据
	pagination := Paginate(page.Total, filter.Size, filter.Page)
	if pagination.Page != filter.Page {
		filter.Page = pagination.Page
		if page, err = fetch(filter); err != nil {
			return nil, err
		}
	}

	rows := make([]Row, 0, len(page.List))
	for _, item := range page.List {
		rows = append(rows, toRow(item))
	}

	return &ListResult{
		Columns:    columns,
		Rows:       SortRows(rows, columns, sortState),
		Pagination: pagination,
		Sort:       sortState,
	}, nil
}

// batchDelete 逐个串行删除，单条错误就地捕获，批次不中断
func batchDelete(ctx context.Context, ids []int64, remove func(context.Context, int64) error) BatchDeleteResult {
	result := BatchDeleteResult{Deleted: make([]int64, 0, len(ids))}
	for _, id := range ids {
		if err := remove(ctx, id); err != nil {
			if result.Failed == nil {
				result.Failed = make(map[int64]string)
			}
			result.Failed[id] = err.Error()
			continue
		}
		result.Deleted = append(result.Deleted, id)
	}
	return result
}

// sessionInvalidator 上游 401 时强制登出用
type sessionInvalidator interface {
	Invalidate() error
}

// respondError 统一的错误出口
// 401 → 清会话并要求重新登录；业务失败与传输失败同样以 message 透出
func respondError(c *gin.Context, sess sessionInvalidator, err error) {
	if rest.IsUnauthorized(err) {
		if sess != nil {
			_ = sess.Invalidate()
		}
		c.Header("X-Relogin", "1")
		response.Unauthorized(c, "登录已失效，请重新登录")
		return
	}

	if bizErr, ok := err.(*api.BusinessError); ok {
		response.UpstreamError(c, bizErr.Message)
		return
	}
	if apiErr, ok := err.(*rest.APIError); ok {
		msg := apiErr.Message
		if msg == "" {
			msg = "上游接口异常"
		}
		response.UpstreamError(c, msg)
		return
	}

	response.ServerError(c, err.Error())
}
