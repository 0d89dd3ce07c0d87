package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// 房价方案是一个变体类型：分时段计价或按卡等级一口价
// 两种形态共用一个 JSON 壳 {kind, ...}，按 kind 分派
const (
	SchemeTimeSlot       = "TIME_SLOT"
	SchemeMembershipTier = "MEMBERSHIP_TIER"
)

// TimeSlot 一个计价时段
type TimeSlot struct {
	Start string  `json:"start"` // "HH:MM"
	End   string  `json:"end"`
	Price float64 `json:"price"`
}

// TimeSlotScheme 分时段计价
type TimeSlotScheme struct {
	Slots []TimeSlot `json:"slots"`
}

func (s *TimeSlotScheme) Validate() error {
	if len(s.Slots) == 0 {
		return errors.New("分时段方案至少需要一个时段")
	}
	for _, slot := range s.Slots {
		if slot.Price < 0 {
			return fmt.Errorf("时段 %s-%s 价格不能为负", slot.Start, slot.End)
		}
	}
	return nil
}

// TierPrice 某卡等级的一口价
type TierPrice struct {
	CardType string  `json:"card_type"`
	Price    float64 `json:"price"`
}

// MembershipTierScheme 按卡等级一口价
type MembershipTierScheme struct {
	Prices []TierPrice `json:"prices"`
}

func (s *MembershipTierScheme) Validate() error {
	if len(s.Prices) == 0 {
		return errors.New("会员价方案至少需要一档价格")
	}
	for _, p := range s.Prices {
		if p.Price < 0 {
			return fmt.Errorf("卡等级 %s 价格不能为负", p.CardType)
		}
	}
	return nil
}

// PricingScheme 变体壳
// TimeSlot / MembershipTier 恰有一个非空，与 Kind 一致
type PricingScheme struct {
	Kind           string                `json:"kind"`
	TimeSlot       *TimeSlotScheme       `json:"time_slot,omitempty"`
	MembershipTier *MembershipTierScheme `json:"membership_tier,omitempty"`
}

func (p *PricingScheme) Validate() error {
	switch p.Kind {
	case SchemeTimeSlot:
		if p.TimeSlot == nil {
			return errors.New("TIME_SLOT 方案缺少 time_slot 配置")
		}
		return p.TimeSlot.Validate()
	case SchemeMembershipTier:
		if p.MembershipTier == nil {
			return errors.New("MEMBERSHIP_TIER 方案缺少 membership_tier 配置")
		}
		return p.MembershipTier.Validate()
	default:
		return fmt.Errorf("未知的计价方案: %q", p.Kind)
	}
}

// ParsePricingScheme 解析门店上存储的方案 JSON
func ParsePricingScheme(raw string) (*PricingScheme, error) {
	if raw == "" {
		return nil, nil
	}
	var scheme PricingScheme
	if err := json.Unmarshal([]byte(raw), &scheme); err != nil {
		return nil, err
	}
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	return &scheme, nil
}

// Encode 序列化回门店字段
func (p *PricingScheme) Encode() (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
