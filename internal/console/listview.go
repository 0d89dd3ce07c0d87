package console

import (
	"sort"
	"strconv"
	"strings"
)

// Order 列排序方向，三态
type Order string

const (
	OrderNone Order = "none"
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Column 列描述：键 + 表头文案 + 可选的自定义比较器
type Column struct {
	Key     string                `json:"key"`
	Label   string                `json:"label"`
	Compare func(a, b string) int `json:"-"`
}

// Row 一行渲染数据，按列键取值
type Row map[string]string

// SortState 表头排序状态
// 同一时刻至多一列有排序；点击循环 asc → desc → none，
// 点击另一列时清掉当前列的状态
type SortState struct {
	Key   string `json:"key"`
	Order Order  `json:"order"`
}

// Click 点击某列表头后的新状态
func (s SortState) Click(key string) SortState {
	if s.Key != key {
		return SortState{Key: key, Order: OrderAsc}
	}
	switch s.Order {
	case OrderAsc:
		return SortState{Key: key, Order: OrderDesc}
	case OrderDesc:
		return SortState{Key: key, Order: OrderNone}
	default:
		return SortState{Key: key, Order: OrderAsc}
	}
}

// CompareValues 默认比较器
// 两边都是数字按数值比，否则忽略大小写按字典序
func CompareValues(a, b string) int {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortRows 按排序状态重排本页数据
// none 保持服务端原始顺序；排序必须稳定，等值行不乱序
func SortRows(rows []Row, columns []Column, state SortState) []Row {
	if state.Order == OrderNone || state.Key == "" {
		return rows
	}

	compare := CompareValues
	for _, col := range columns {
		if col.Key == state.Key && col.Compare != nil {
			compare = col.Compare
			break
		}
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compare(sorted[i][state.Key], sorted[j][state.Key])
		if state.Order == OrderDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return sorted
}

// Pagination 分页控件状态
type Pagination struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// Paginate 计算分页：totalPages = ceil(total/size)，页码钳制到 [1, totalPages]
// total 为 0 时不渲染页码 (TotalPages=0, Page=1)
func Paginate(total int64, size, page int) Pagination {
	if size <= 0 {
		size = 10
	}
	totalPages := int((total + int64(size) - 1) / int64(size))

	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	return Pagination{
		Page:       page,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
