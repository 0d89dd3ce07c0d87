package console

import (
	"testing"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
)

func memberPool() []SelectorOption {
	return MemberOptions([]model.Member{
		{ID: 1, Name: "陈先生", Phone: "13700000001", MemberNo: "C0000001"},
		{ID: 2, Name: "林女士", Phone: "13700000002", MemberNo: "C0000002"},
		{ID: 30, Name: "Alice Chen", Phone: "13900000003", MemberNo: "C0000030"},
	})
}

func TestFilterOptions_EmptyQueryReturnsAll(t *testing.T) {
	// 打开控件即开始新一轮搜索，空查询回全量
	got := FilterOptions(memberPool(), "")
	if len(got) != 3 {
		t.Errorf("空查询返回 %d 项, want 3", len(got))
	}
}

func TestFilterOptions_MatchByName(t *testing.T) {
	got := FilterOptions(memberPool(), "陈")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("按姓名匹配 = %+v", got)
	}
}

func TestFilterOptions_MatchByPhone(t *testing.T) {
	got := FilterOptions(memberPool(), "0000002")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("按手机号匹配 = %+v", got)
	}
}

func TestFilterOptions_MatchByMemberNo(t *testing.T) {
	got := FilterOptions(memberPool(), "c0000030")
	if len(got) != 1 || got[0].ID != 30 {
		t.Errorf("会员编号匹配应忽略大小写, got %+v", got)
	}
}

func TestFilterOptions_CaseInsensitive(t *testing.T) {
	got := FilterOptions(memberPool(), "ALICE")
	if len(got) != 1 || got[0].ID != 30 {
		t.Errorf("忽略大小写匹配 = %+v", got)
	}
}

func TestFilterOptions_NoMatch(t *testing.T) {
	got := FilterOptions(memberPool(), "不存在的人")
	if len(got) != 0 {
		t.Errorf("无匹配应返回空, got %+v", got)
	}
}

func TestStaffOptions_SearchFields(t *testing.T) {
	options := StaffOptions([]model.Staff{
		{ID: 9, Name: "王组长", Phone: "13800000001"},
	})

	// ID 也参与匹配，方便直接敲编号
	if got := FilterOptions(options, "9"); len(got) != 1 {
		t.Errorf("按 ID 匹配 = %+v", got)
	}
}
