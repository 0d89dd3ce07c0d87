package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/croiii1006/ktv-manager-hub-c88d59dc-sub000/internal/model"
)

// ==================== 门店 ====================

func (s *Server) listStores(c *gin.Context) {
	page, size := pageParams(c)
	query := s.db.Model(&model.Store{})
	if keyword := c.Query("keyword"); keyword != "" {
		query = query.Where("name LIKE ?", "%"+keyword+"%")
	}

	var stores []model.Store
	total, err := findPage(query, page, size, &stores)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	okList(c, stores, total, page, size)
}

func (s *Server) storeDetail(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var store model.Store
	if err := s.db.First(&store, id).Error; err != nil {
		ok(c, nil)
		return
	}
	ok(c, store)
}

func (s *Server) createStore(c *gin.Context) {
	var store model.Store
	if err := c.ShouldBindJSON(&store); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	// 计价方案如果带了就先校验形状
	if store.PricingScheme != "" {
		if _, err := model.ParsePricingScheme(store.PricingScheme); err != nil {
			bizFail(c, "计价方案不合法: "+err.Error())
			return
		}
	}

	if err := s.db.Create(&store).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	ok(c, store)
}

func (s *Server) updateStore(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	s.patchEntity(c, id, &model.Store{})
}

func (s *Server) deleteStore(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	res := s.db.Delete(&model.Store{}, id)
	if res.Error != nil {
		fail(c, http.StatusInternalServerError, 500, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		bizFail(c, "门店不存在")
		return
	}
	ok(c, nil)
}

// ==================== 员工 ====================

func (s *Server) listStaff(role model.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := pageParams(c)
		query := s.db.Model(&model.Staff{}).Where("role = ?", role)
		if keyword := c.Query("keyword"); keyword != "" {
			query = query.Where("name LIKE ? OR phone LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
		}
		if storeID := c.Query("storeId"); storeID != "" {
			query = query.Where("store_id = ?", storeID)
		}

		var staffs []model.Staff
		total, err := findPage(query, page, size, &staffs)
		if err != nil {
			fail(c, http.StatusInternalServerError, 500, err.Error())
			return
		}
		okList(c, staffs, total, page, size)
	}
}

func (s *Server) staffDetail(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var staff model.Staff
	if err := s.db.First(&staff, id).Error; err != nil {
		ok(c, nil)
		return
	}
	ok(c, staff)
}

func (s *Server) createStaff(role model.StaffRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		var staff model.Staff
		if err := c.ShouldBindJSON(&staff); err != nil {
			fail(c, http.StatusBadRequest, 400, err.Error())
			return
		}
		staff.Role = role

		if err := s.db.Create(&staff).Error; err != nil {
			fail(c, http.StatusInternalServerError, 500, err.Error())
			return
		}
		ok(c, staff)
	}
}

func (s *Server) updateStaff(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	s.patchEntity(c, id, &model.Staff{})
}

func (s *Server) deleteStaff(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	res := s.db.Delete(&model.Staff{}, id)
	if res.Error != nil {
		fail(c, http.StatusInternalServerError, 500, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		bizFail(c, "员工不存在")
		return
	}
	ok(c, nil)
}

// ==================== 会员 ====================

func (s *Server) listMembers(c *gin.Context) {
	page, size := pageParams(c)
	query := s.db.Model(&model.Member{})
	if keyword := c.Query("keyword"); keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR member_no LIKE ?", like, like, like)
	}
	if salesID := c.Query("salesId"); salesID != "" {
		query = query.Where("sales_id = ?", salesID)
	}

	var members []model.Member
	total, err := findPage(query, page, size, &members)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	okList(c, members, total, page, size)
}

func (s *Server) memberDetail(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var member model.Member
	if err := s.db.First(&member, id).Error; err != nil {
		ok(c, nil)
		return
	}
	ok(c, member)
}

func (s *Server) createMember(c *gin.Context) {
	var member model.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}

	if member.RegisterDate.IsZero() {
		member.RegisterDate = time.Now()
	}
	member.CardType = model.DeriveCardType(member.CumulativeRecharge)

	if err := s.db.Create(&member).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	if member.MemberNo == "" {
		member.MemberNo = model.LegacyID(model.LegacyPrefixMember, int(member.ID))
		s.db.Model(&member).Update("member_no", member.MemberNo)
	}
	ok(c, member)
}

func (s *Server) updateMember(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	s.patchEntity(c, id, &model.Member{})
}

func (s *Server) deleteMember(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	res := s.db.Delete(&model.Member{}, id)
	if res.Error != nil {
		fail(c, http.StatusInternalServerError, 500, res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		bizFail(c, "会员不存在")
		return
	}
	ok(c, nil)
}

// rechargeMember 充值：入账、推导卡等级、落只增台账，一个事务完成
func (s *Server) rechargeMember(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}

	var req struct {
		Amount     float64 `json:"amount"`
		GiftAmount float64 `json:"giftAmount"`
		StaffID    int64   `json:"staffId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}
	if req.Amount <= 0 && req.GiftAmount <= 0 {
		bizFail(c, "充值金额必须大于 0")
		return
	}

	var record model.RechargeRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member model.Member
		if err := tx.First(&member, id).Error; err != nil {
			return err
		}

		member.CumulativeRecharge += req.Amount
		member.RemainingRecharge += req.Amount
		member.RemainingGift += req.GiftAmount
		// 卡等级只升不降：推导基于累计充值，而累计充值只增
		member.CardType = model.DeriveCardType(member.CumulativeRecharge)

		if err := tx.Save(&member).Error; err != nil {
			return err
		}

		record = model.RechargeRecord{
			MemberID:    member.ID,
			Amount:      req.Amount,
			GiftAmount:  req.GiftAmount,
			Balance:     member.RemainingRecharge,
			GiftBalance: member.RemainingGift,
			StaffID:     req.StaffID,
			Status:      model.RecordApproved,
		}
		return tx.Create(&record).Error
	})

	if err != nil {
		bizFail(c, "充值失败: "+err.Error())
		return
	}
	ok(c, record)
}

// ==================== 台账 ====================

func (s *Server) listRecharges(c *gin.Context) {
	page, size := pageParams(c)
	query := s.db.Model(&model.RechargeRecord{}).Order("id DESC")
	if memberID := c.Query("memberId"); memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}

	var records []model.RechargeRecord
	total, err := findPage(query, page, size, &records)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	okList(c, records, total, page, size)
}

func (s *Server) rechargeDetail(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var record model.RechargeRecord
	if err := s.db.First(&record, id).Error; err != nil {
		ok(c, nil)
		return
	}
	ok(c, record)
}

func (s *Server) listConsumes(c *gin.Context) {
	page, size := pageParams(c)
	query := s.db.Model(&model.ConsumeRecord{}).Order("id DESC")
	if memberID := c.Query("memberId"); memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}

	var records []model.ConsumeRecord
	total, err := findPage(query, page, size, &records)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	okList(c, records, total, page, size)
}

func (s *Server) consumeDetail(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var record model.ConsumeRecord
	if err := s.db.First(&record, id).Error; err != nil {
		ok(c, nil)
		return
	}
	ok(c, record)
}

// ==================== 包房 ====================

func (s *Server) listRooms(c *gin.Context) {
	page, size := pageParams(c)
	query := s.db.Model(&model.Room{})
	if storeID := c.Query("storeId"); storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	var rooms []model.Room
	total, err := findPage(query, page, size, &rooms)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	okList(c, rooms, total, page, size)
}

// ==================== 预约 ====================

func (s *Server) listBookings(c *gin.Context) {
	page, size := pageParams(c)
	query := s.db.Model(&model.Reservation{}).Order("id DESC")
	if storeID := c.Query("storeId"); storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}
	if memberID := c.Query("memberId"); memberID != "" {
		query = query.Where("member_id = ?", memberID)
	}

	var reservations []model.Reservation
	total, err := findPage(query, page, size, &reservations)
	if err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	okList(c, reservations, total, page, size)
}

func (s *Server) bookingDetail(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var reservation model.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		ok(c, nil)
		return
	}
	ok(c, reservation)
}

// createBooking 普通预约通路：创建后处于待审核
func (s *Server) createBooking(c *gin.Context) {
	var reservation model.Reservation
	if err := c.ShouldBindJSON(&reservation); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}
	reservation.Status = model.ReservePending
	reservation.ReserveNo = newReserveNo()

	if err := s.db.Create(&reservation).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	ok(c, reservation)
}

func (s *Server) updateBooking(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	s.patchEntity(c, id, &model.Reservation{})
}

// ==================== 通用 patch ====================

// patchEntity 局部更新：body 的键值直接落在对应列上
func (s *Server) patchEntity(c *gin.Context, id int64, entity interface{}) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, 400, err.Error())
		return
	}
	delete(patch, "id")

	if err := s.db.First(entity, id).Error; err != nil {
		fail(c, http.StatusNotFound, 404, "记录不存在")
		return
	}
	if err := s.db.Model(entity).Updates(patch).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	if err := s.db.First(entity, id).Error; err != nil {
		fail(c, http.StatusInternalServerError, 500, err.Error())
		return
	}
	ok(c, entity)
}
