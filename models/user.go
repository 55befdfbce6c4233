package models

import "time"

// 用户角色
const (
	RoleVictim  = "victim"
	RoleOfficer = "officer"
	RoleAdmin   = "admin"
)

// ValidRole 判断角色取值是否合法
func ValidRole(role string) bool {
	return role == RoleVictim || role == RoleOfficer || role == RoleAdmin
}

// User represents all portal accounts; role decides which profile table applies
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"` // Password not exposed in JSON
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Role      string    `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	VictimProfile  *VictimProfile  `gorm:"foreignKey:UserID" json:"victim_profile,omitempty"`
	OfficerProfile *OfficerProfile `gorm:"foreignKey:UserID" json:"officer_profile,omitempty"`
	AdminProfile   *AdminProfile   `gorm:"foreignKey:UserID" json:"admin_profile,omitempty"`
}

// VictimProfile 受害人角色扩展信息
type VictimProfile struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	UserID           uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	NID              string `gorm:"column:nid;type:varchar(50)" json:"nid"`
	Address          string `gorm:"type:varchar(255)" json:"address"`
	EmergencyContact string `gorm:"type:varchar(100)" json:"emergency_contact"`
}

// OfficerProfile 警员角色扩展信息
type OfficerProfile struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	BadgeNumber    string `gorm:"type:varchar(50)" json:"badge_number"`
	Department     string `gorm:"type:varchar(100)" json:"department"`
	Specialization string `gorm:"type:varchar(100)" json:"specialization"`
	RankName       string `gorm:"type:varchar(50)" json:"rank_name"`
}

// AdminProfile 管理员角色扩展信息
type AdminProfile struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	AdminCode string `gorm:"type:varchar(50)" json:"admin_code"`
	Position  string `gorm:"type:varchar(100)" json:"position"`
}
