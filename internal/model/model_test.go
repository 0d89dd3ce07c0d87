package model

import "testing"

// ==================== 卡等级推导 ====================

func TestDeriveCardType(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "普通卡"},
		{4999, "普通卡"},
		{5000, "银卡"},
		{19999, "银卡"},
		{20000, "金卡"},
		{49999.99, "金卡"},
		{50000, "钻石卡"},
		{999999, "钻石卡"},
	}
	for _, c := range cases {
		if got := DeriveCardType(c.amount); got != c.want {
			t.Errorf("DeriveCardType(%v) = %s, want %s", c.amount, got, c.want)
		}
	}
}

// ==================== 计价方案 ====================

func TestPricingScheme_RoundTrip(t *testing.T) {
	scheme := &PricingScheme{
		Kind: SchemeTimeSlot,
		TimeSlot: &TimeSlotScheme{Slots: []TimeSlot{
			{Start: "12:00", End: "18:00", Price: 188},
		}},
	}

	raw, err := scheme.Encode()
	if err != nil {
		t.Fatalf("Encode 失败: %v", err)
	}

	parsed, err := ParsePricingScheme(raw)
	if err != nil {
		t.Fatalf("Parse 失败: %v", err)
	}
	if parsed.Kind != SchemeTimeSlot || len(parsed.TimeSlot.Slots) != 1 {
		t.Errorf("往返后结构不一致: %+v", parsed)
	}
	if parsed.TimeSlot.Slots[0].Price != 188 {
		t.Errorf("价格 = %v, want 188", parsed.TimeSlot.Slots[0].Price)
	}
}

func TestPricingScheme_ValidateRejectsMismatch(t *testing.T) {
	// kind 与载荷不一致
	scheme := &PricingScheme{Kind: SchemeMembershipTier}
	if err := scheme.Validate(); err == nil {
		t.Error("缺载荷的 MEMBERSHIP_TIER 应校验失败")
	}

	unknown := &PricingScheme{Kind: "FLAT_RATE"}
	if err := unknown.Validate(); err == nil {
		t.Error("未知 kind 应校验失败")
	}
}

func TestPricingScheme_ValidateRejectsEmpty(t *testing.T) {
	scheme := &PricingScheme{Kind: SchemeTimeSlot, TimeSlot: &TimeSlotScheme{}}
	if err := scheme.Validate(); err == nil {
		t.Error("空时段列表应校验失败")
	}

	negative := &PricingScheme{
		Kind: SchemeMembershipTier,
		MembershipTier: &MembershipTierScheme{Prices: []TierPrice{
			{CardType: "金卡", Price: -1},
		}},
	}
	if err := negative.Validate(); err == nil {
		t.Error("负价格应校验失败")
	}
}

func TestParsePricingScheme_Empty(t *testing.T) {
	// 门店未配置方案：空串解析为 nil，不算错误
	parsed, err := ParsePricingScheme("")
	if err != nil || parsed != nil {
		t.Errorf("空串解析 = %v/%v, want nil/nil", parsed, err)
	}
}

// ==================== 旧式编号 ====================

func TestLegacyID(t *testing.T) {
	if got := LegacyID(LegacyPrefixMember, 1); got != "C0000001" {
		t.Errorf("LegacyID = %s, want C0000001", got)
	}
	if got := LegacyID(LegacyPrefixStaff, 123); got != "Y0000123" {
		t.Errorf("LegacyID = %s, want Y0000123", got)
	}
	if got := LegacyID(LegacyPrefixReserv, 9999999); got != "A9999999" {
		t.Errorf("LegacyID = %s, want A9999999", got)
	}
}

// ==================== 状态映射 ====================

func TestCellStateOf(t *testing.T) {
	cases := []struct {
		status ReservationStatus
		want   CellState
	}{
		{ReservePending, CellPending},
		{ReserveApproved, CellBooked},
		{ReserveRejected, CellAvailable},
		{ReserveCancelled, CellAvailable},
	}
	for _, c := range cases {
		if got := CellStateOf(c.status); got != c.want {
			t.Errorf("CellStateOf(%s) = %s, want %s", c.status, got, c.want)
		}
	}
}

func TestCellLabel(t *testing.T) {
	if CellLabel(CellPending) != "待审核" {
		t.Error("PENDING 格子文案应为 待审核")
	}
	if CellLabel(CellBooked) != "已预定" {
		t.Error("BOOKED 格子文案应为 已预定")
	}
	if CellLabel(CellFinished) != "已完成" {
		t.Error("FINISHED 格子文案应为 已完成")
	}
	// 未知状态回退为可订
	if CellLabel(CellState("???")) != "可订" {
		t.Error("未知状态应回退为 可订")
	}
}

func TestStatusBadge_Unknown(t *testing.T) {
	if StatusBadge(ReservationStatus("WEIRD")) != "未知状态" {
		t.Error("未知预约状态应给通用徽标")
	}
}
