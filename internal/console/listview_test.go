package console

import (
	"testing"
)

// ==================== 排序状态 ====================

func TestSortState_ClickCycle(t *testing.T) {
	state := SortState{}

	// 首次点击进入升序
	state = state.Click("name")
	if state.Key != "name" || state.Order != OrderAsc {
		t.Errorf("首次点击 = %+v, want name/asc", state)
	}

	// 再点降序
	state = state.Click("name")
	if state.Order != OrderDesc {
		t.Errorf("二次点击 = %v, want desc", state.Order)
	}

	// 三点回到无排序
	state = state.Click("name")
	if state.Order != OrderNone {
		t.Errorf("三次点击 = %v, want none", state.Order)
	}

	// 第四次重新开始循环
	state = state.Click("name")
	if state.Order != OrderAsc {
		t.Errorf("四次点击 = %v, want asc", state.Order)
	}
}

func TestSortState_ClickOtherColumnResets(t *testing.T) {
	state := SortState{Key: "name", Order: OrderDesc}

	// 点别的列：旧列状态清空，新列从升序开始
	state = state.Click("phone")
	if state.Key != "phone" || state.Order != OrderAsc {
		t.Errorf("切列后 = %+v, want phone/asc", state)
	}
}

// ==================== 比较器 ====================

func TestCompareValues_Numeric(t *testing.T) {
	// 都是数字时按数值比，"9" < "10"
	if CompareValues("9", "10") >= 0 {
		t.Error("数值比较下 9 应小于 10")
	}
	if CompareValues("1500.5", "200") <= 0 {
		t.Error("数值比较下 1500.5 应大于 200")
	}
}

func TestCompareValues_Lexicographic(t *testing.T) {
	// 任一侧非数字回退到忽略大小写的字典序
	if CompareValues("C0000010", "C0000009") <= 0 {
		t.Error("字典序下 C0000010 应大于 C0000009")
	}
	if CompareValues("Alice", "bob") >= 0 {
		t.Error("忽略大小写后 Alice 应小于 bob")
	}
	if CompareValues("abc", "ABC") != 0 {
		t.Error("仅大小写不同应视为相等")
	}
}

// ==================== 排序 ====================

func sampleRows() []Row {
	return []Row{
		{"name": "张三", "amount": "100"},
		{"name": "李四", "amount": "9"},
		{"name": "王五", "amount": "25"},
	}
}

func sampleColumns() []Column {
	return []Column{
		{Key: "name", Label: "姓名"},
		{Key: "amount", Label: "金额"},
	}
}

func TestSortRows_NumericAsc(t *testing.T) {
	rows := SortRows(sampleRows(), sampleColumns(), SortState{Key: "amount", Order: OrderAsc})

	got := []string{rows[0]["amount"], rows[1]["amount"], rows[2]["amount"]}
	want := []string{"9", "25", "100"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("升序结果 = %v, want %v", got, want)
		}
	}
}

func TestSortRows_Desc(t *testing.T) {
	rows := SortRows(sampleRows(), sampleColumns(), SortState{Key: "amount", Order: OrderDesc})
	if rows[0]["amount"] != "100" {
		t.Errorf("降序首行 = %s, want 100", rows[0]["amount"])
	}
}

func TestSortRows_NonePreservesServerOrder(t *testing.T) {
	original := sampleRows()
	rows := SortRows(original, sampleColumns(), SortState{Key: "amount", Order: OrderNone})
	for i := range original {
		if rows[i]["name"] != original[i]["name"] {
			t.Fatal("none 状态应保持服务端原始顺序")
		}
	}
}

func TestSortRows_Stable(t *testing.T) {
	rows := []Row{
		{"name": "a", "amount": "10"},
		{"name": "b", "amount": "10"},
		{"name": "c", "amount": "10"},
	}
	sorted := SortRows(rows, sampleColumns(), SortState{Key: "amount", Order: OrderAsc})
	if sorted[0]["name"] != "a" || sorted[1]["name"] != "b" || sorted[2]["name"] != "c" {
		t.Error("等值行排序后乱序，必须稳定")
	}
}

func TestSortRows_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	SortRows(rows, sampleColumns(), SortState{Key: "amount", Order: OrderAsc})
	if rows[0]["amount"] != "100" {
		t.Error("排序不应修改入参切片")
	}
}

// ==================== 分页 ====================

func TestPaginate_Basic(t *testing.T) {
	p := Paginate(95, 10, 3)

	if p.TotalPages != 10 {
		t.Errorf("TotalPages = %d, want 10", p.TotalPages)
	}
	if p.Page != 3 {
		t.Errorf("Page = %d, want 3", p.Page)
	}
	if !p.HasPrev || !p.HasNext {
		t.Error("中间页应同时有上一页和下一页")
	}
}

func TestPaginate_ClampHigh(t *testing.T) {
	// 越界页码钳到最后一页
	p := Paginate(30, 10, 99)
	if p.Page != 3 {
		t.Errorf("Page = %d, want 3", p.Page)
	}
	if p.HasNext {
		t.Error("末页不应有下一页")
	}
}

func TestPaginate_ClampLow(t *testing.T) {
	p := Paginate(30, 10, 0)
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.HasPrev {
		t.Error("首页不应有上一页")
	}
}

func TestPaginate_EmptyTotal(t *testing.T) {
	// total=0 不渲染页码
	p := Paginate(0, 10, 5)
	if p.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", p.TotalPages)
	}
	if p.Page != 1 {
		t.Errorf("Page = %d, want 1", p.Page)
	}
	if p.HasPrev || p.HasNext {
		t.Error("空数据集不应有翻页")
	}
}

func TestPaginate_ExactDivision(t *testing.T) {
	p := Paginate(100, 10, 10)
	if p.TotalPages != 10 {
		t.Errorf("TotalPages = %d, want 10", p.TotalPages)
	}
}
