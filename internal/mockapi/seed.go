package mockapi

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
)

// Seed 首次启动灌入演示数据，已有数据时跳过
// 会员/员工沿用迁移前的旧式占位编号 (C/Y + 7 位补零)
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("[mockapi] 灌入演示数据")

	admin := AdminUser{Username: "admin", Password: "admin123"}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	// 两家门店，两种计价方案各占一种
	timeSlot := &model.PricingScheme{
		Kind: model.SchemeTimeSlot,
		TimeSlot: &model.TimeSlotScheme{Slots: []model.TimeSlot{
			{Start: "12:00", End: "18:00", Price: 188},
			{Start: "18:00", End: "02:00", Price: 388},
		}},
	}
	tierPrice := &model.PricingScheme{
		Kind: model.SchemeMembershipTier,
		MembershipTier: &model.MembershipTierScheme{Prices: []model.TierPrice{
			{CardType: "普通卡", Price: 328},
			{CardType: "银卡", Price: 298},
			{CardType: "金卡", Price: 258},
			{CardType: "钻石卡", Price: 198},
		}},
	}

	encodedSlot, err := timeSlot.Encode()
	if err != nil {
		return err
	}
	encodedTier, err := tierPrice.Encode()
	if err != nil {
		return err
	}

	stores := []model.Store{
		{Name: "旗舰店", PricingScheme: encodedSlot},
		{Name: "滨江店", PricingScheme: encodedTier},
	}
	if err := db.Create(&stores).Error; err != nil {
		return err
	}

	leaders := []model.Staff{
		{Name: "王组长", Phone: "13800000001", Wechat: "wang_lead", Role: model.RoleTeamLeader, StoreID: stores[0].ID},
		{Name: "李组长", Phone: "13800000002", Wechat: "li_lead", Role: model.RoleTeamLeader, StoreID: stores[1].ID},
	}
	if err := db.Create(&leaders).Error; err != nil {
		return err
	}

	sales := []model.Staff{
		{Name: "张销售", Phone: "13900000001", Role: model.RoleSalesman, StoreID: stores[0].ID, LeaderID: leaders[0].ID},
		{Name: "赵销售", Phone: "13900000002", Role: model.RoleSalesman, StoreID: stores[0].ID, LeaderID: leaders[0].ID},
		{Name: "孙销售", Phone: "13900000003", Role: model.RoleSalesman, StoreID: stores[1].ID, LeaderID: leaders[1].ID},
	}
	if err := db.Create(&sales).Error; err != nil {
		return err
	}

	members := make([]model.Member, 0, 5)
	amounts := []float64{800, 6000, 25000, 60000, 0}
	names := []string{"陈先生", "林女士", "黄先生", "吴女士", "周先生"}
	for i, amount := range amounts {
		members = append(members, model.Member{
			MemberNo:           model.LegacyID(model.LegacyPrefixMember, i+1),
			Name:               names[i],
			Phone:              fmt.Sprintf("1370000000%d", i),
			CardType:           model.DeriveCardType(amount),
			RegisterDate:       time.Now().AddDate(0, -i, 0),
			CumulativeRecharge: amount,
			RemainingRecharge:  amount / 2,
			RemainingGift:      amount / 10,
			SalesID:            sales[i%len(sales)].ID,
		})
	}
	if err := db.Create(&members).Error; err != nil {
		return err
	}

	rooms := []model.Room{
		{RoomNo: "101", RoomType: "小包", StoreID: stores[0].ID, Price: 188},
		{RoomNo: "102", RoomType: "中包", StoreID: stores[0].ID, Price: 288},
		{RoomNo: "103", RoomType: "大包", StoreID: stores[0].ID, Price: 488},
		{RoomNo: "201", RoomType: "中包", StoreID: stores[1].ID, Price: 298},
		{RoomNo: "202", RoomType: "豪华包", StoreID: stores[1].ID, Price: 688},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	reservations := []model.Reservation{
		{
			ReserveNo: model.LegacyID(model.LegacyPrefixReserv, 1), Status: model.ReservePending,
			StoreID: stores[0].ID, RoomID: rooms[0].ID, MemberID: members[0].ID,
			StaffID: sales[0].ID, ReserveDate: today, GuestCount: 4,
		},
		{
			ReserveNo: model.LegacyID(model.LegacyPrefixReserv, 2), Status: model.ReserveApproved,
			StoreID: stores[0].ID, RoomID: rooms[1].ID, MemberID: members[1].ID,
			ReserveDate: tomorrow, GuestCount: 8, Remark: "生日聚会",
		},
	}
	if err := db.Create(&reservations).Error; err != nil {
		return err
	}

	recharges := []model.RechargeRecord{
		{
			MemberID: members[1].ID, Amount: 3000, GiftAmount: 300,
			Balance: members[1].RemainingRecharge, GiftBalance: members[1].RemainingGift,
			StaffID: sales[1].ID, Status: model.RecordApproved,
		},
		{
			MemberID: members[2].ID, Amount: 10000, GiftAmount: 2000,
			Balance: members[2].RemainingRecharge, GiftBalance: members[2].RemainingGift,
			StaffID: sales[2].ID, Status: model.RecordPending,
		},
	}
	if err := db.Create(&recharges).Error; err != nil {
		return err
	}

	consumes := []model.ConsumeRecord{
		{
			MemberID: members[1].ID, Amount: 688, RoomNo: "102", ConsumeType: "包房消费",
			ApplyStaffID: sales[1].ID, ReceptionStaffID: leaders[0].ID,
			Balance: members[1].RemainingRecharge - 688, GiftBalance: members[1].RemainingGift,
			Status: model.RecordApproved,
		},
		{
			MemberID: members[3].ID, Amount: 1288, RoomNo: "202", ConsumeType: "酒水消费",
			ApplyStaffID: sales[2].ID, ReceptionStaffID: leaders[1].ID,
			Balance: members[3].RemainingRecharge, GiftBalance: members[3].RemainingGift,
			Status: model.RecordPending,
		},
	}
	if err := db.Create(&consumes).Error; err != nil {
		return err
	}

	return nil
}
