package model

import "fmt"

// 迁移前本地造的占位数据沿用固定编号：前缀 + 7 位补零序号
// C=会员(Customer) Y=员工(staff) A=预约(Appointment)
// 仅历史脚手架使用，后端生成的数据不受此约束
const (
	LegacyPrefixMember = "C"
	LegacyPrefixStaff  = "Y"
	LegacyPrefixReserv = "A"
)

// LegacyID 生成旧式占位编号，如 C0000001
func LegacyID(prefix string, seq int) string {
	return fmt.Sprintf("%s%07d", prefix, seq)
}
