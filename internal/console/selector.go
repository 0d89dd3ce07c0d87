package console

import (
	"strconv"
	"strings"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
)

// SelectorOption 选择器候选项：选中后回传 ID + 展示名
// Search 是参与子串匹配的展示字段 (1~4 个)
type SelectorOption struct {
	ID     int64    `json:"id"`
	Label  string   `json:"label"`
	Search []string `json:"-"`
}

// FilterOptions 客户端侧过滤：忽略大小写的子串匹配
// 空查询返回全量 (打开控件即开始新一轮搜索)
func FilterOptions(options []SelectorOption, query string) []SelectorOption {
	if query == "" {
		return options
	}
	q := strings.ToLower(query)

	matched := make([]SelectorOption, 0, len(options))
	for _, opt := range options {
		for _, field := range opt.Search {
			if strings.Contains(strings.ToLower(field), q) {
				matched = append(matched, opt)
				break
			}
		}
	}
	return matched
}

// 各资源到候选项的映射

func MemberOptions(members []model.Member) []SelectorOption {
	options := make([]SelectorOption, 0, len(members))
	for _, m := range members {
		options = append(options, SelectorOption{
			ID:     m.ID,
			Label:  m.Name,
			Search: []string{m.Name, m.Phone, m.MemberNo, strconv.FormatInt(m.ID, 10)},
		})
	}
	return options
}

func StaffOptions(staffs []model.Staff) []SelectorOption {
	options := make([]SelectorOption, 0, len(staffs))
	for _, s := range staffs {
		options = append(options, SelectorOption{
			ID:     s.ID,
			Label:  s.Name,
			Search: []string{s.Name, s.Phone, strconv.FormatInt(s.ID, 10)},
		})
	}
	return options
}

func StoreOptions(stores []model.Store) []SelectorOption {
	options := make([]SelectorOption, 0, len(stores))
	for _, s := range stores {
		options = append(options, SelectorOption{
			ID:     s.ID,
			Label:  s.Name,
			Search: []string{s.Name, strconv.FormatInt(s.ID, 10)},
		})
	}
	return options
}
