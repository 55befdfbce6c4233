package services

import (
	"errors"
	"strings"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"
	"cybercrime-report-service/utils"

	"gorm.io/gorm"
)

// 用户管理相关的业务错误
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfDelete       = errors.New("cannot delete your own account")
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrPasswordTooShort = errors.New("new password must be at least 6 characters")
)

// ProfileData 用户个人资料，角色字段按需出现
type ProfileData struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	JoinDate string `json:"join_date"`

	NID              string `json:"nid,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`

	BadgeNumber    string `json:"badge_number,omitempty"`
	Department     string `json:"department,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	RankName       string `json:"rank,omitempty"`

	AdminCode string `json:"admin_code,omitempty"`
	Position  string `json:"position,omitempty"`
}

// UpdateProfileInput 更新个人资料的输入，nil 字段保持不变
type UpdateProfileInput struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	Specialization *string `json:"specialization"`
	Department     *string `json:"department"`
	Position       *string `json:"position"`
}

// ProfileStats 个人资料页的角色统计
type ProfileStats struct {
	TotalReports   int64 `json:"total_reports,omitempty"`
	OpenReports    int64 `json:"open_reports,omitempty"`
	ClosedReports  int64 `json:"closed_reports,omitempty"`
	AssignedCases  int64 `json:"assigned_cases,omitempty"`
	ActiveCases    int64 `json:"active_cases,omitempty"`
	SolvedCases    int64 `json:"solved_cases,omitempty"`
	ManagedUsers   int64 `json:"managed_users,omitempty"`
	ManagedReports int64 `json:"managed_reports,omitempty"`
}

// ManagedUser 管理员用户列表行
type ManagedUser struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Role           string `json:"role"`
	JoinDate       string `json:"joinDate"`
	Specialization string `json:"specialization"`
	Department     string `json:"department"`
	Badge          string `json:"badge"`
}

// UserStats 用户规模统计
type UserStats struct {
	TotalUsers int64 `json:"total_users"`
	Victims    int64 `json:"victims"`
	Officers   int64 `json:"officers"`
	Admins     int64 `json:"admins"`
}

// AdminUpdateUserInput 管理员修改用户的输入
type AdminUpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// InterfaceUserService 定义用户服务接口
type InterfaceUserService interface {
	GetProfile(userID uint) (*ProfileData, error)
	UpdateProfile(userID uint, input UpdateProfileInput) (*ProfileData, error)
	ChangePassword(userID uint, current, newPassword, confirm string) error
	GetProfileStats(userID uint) (*ProfileStats, error)
	ListUsers() ([]ManagedUser, error)
	UpdateUser(userID uint, input AdminUpdateUserInput) error
	DeactivateUser(actingAdminID, userID uint) error
	GetUserStats() (*UserStats, error)
}

// UserService 提供用户与个人资料相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// loadUser 读取在册用户并预加载角色档案
func (s *UserService) loadUser(userID uint) (*models.User, error) {
	var user models.User
	err := s.DB.Preload("VictimProfile").
		Preload("OfficerProfile").
		Preload("AdminProfile").
		Where("id = ? AND is_active = ?", userID, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// buildProfile 按角色拼出个人资料
func buildProfile(user *models.User) *ProfileData {
	profile := &ProfileData{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		Role:     user.Role,
		JoinDate: user.CreatedAt.Format(models.DateLayout),
	}
	switch user.Role {
	case models.RoleVictim:
		if user.VictimProfile != nil {
			profile.NID = user.VictimProfile.NID
			profile.Address = user.VictimProfile.Address
			profile.EmergencyContact = user.VictimProfile.EmergencyContact
		}
	case models.RoleOfficer:
		if user.OfficerProfile != nil {
			profile.BadgeNumber = user.OfficerProfile.BadgeNumber
			profile.Department = user.OfficerProfile.Department
			profile.Specialization = user.OfficerProfile.Specialization
			profile.RankName = user.OfficerProfile.RankName
		}
	case models.RoleAdmin:
		if user.AdminProfile != nil {
			profile.AdminCode = user.AdminProfile.AdminCode
			profile.Position = user.AdminProfile.Position
		}
	}
	return profile
}

// 1. GetProfile 获取当前用户的个人资料
func (s *UserService) GetProfile(userID uint) (*ProfileData, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	return buildProfile(user), nil
}

// 2. UpdateProfile 更新个人资料，未提交的字段保持原值
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*ProfileData, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	userUpdates := map[string]interface{}{}
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		userUpdates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		userUpdates["phone"] = *input.Phone
	}
	if len(userUpdates) > 0 {
		if err := s.DB.Model(user).Updates(userUpdates).Error; err != nil {
			return nil, err
		}
	}

	switch user.Role {
	case models.RoleVictim:
		if input.Address != nil && user.VictimProfile != nil {
			err = s.DB.Model(user.VictimProfile).Update("address", *input.Address).Error
		}
	case models.RoleOfficer:
		if user.OfficerProfile != nil {
			updates := map[string]interface{}{}
			if input.Specialization != nil {
				updates["specialization"] = *input.Specialization
			}
			if input.Department != nil {
				updates["department"] = *input.Department
			}
			if len(updates) > 0 {
				err = s.DB.Model(user.OfficerProfile).Updates(updates).Error
			}
		}
	case models.RoleAdmin:
		if input.Position != nil && user.AdminProfile != nil {
			err = s.DB.Model(user.AdminProfile).Update("position", *input.Position).Error
		}
	}
	if err != nil {
		return nil, err
	}

	refreshed, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}
	return buildProfile(refreshed), nil
}

// 3. ChangePassword 校验旧密码后改密
func (s *UserService) ChangePassword(userID uint, current, newPassword, confirm string) error {
	if current == "" || newPassword == "" || confirm == "" {
		return ErrMissingFields
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(current, user.Password) {
		return ErrWrongPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.DB.Model(user).Update("password", hashed).Error
}

// 4. GetProfileStats 按角色统计个人资料页的数据
func (s *UserService) GetProfileStats(userID uint) (*ProfileStats, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &ProfileStats{}
	switch user.Role {
	case models.RoleVictim:
		base := s.DB.Model(&models.Report{}).Where("victim_id = ?", userID)
		if err := base.Session(&gorm.Session{}).Count(&stats.TotalReports).Error; err != nil {
			return nil, err
		}
		if err := base.Session(&gorm.Session{}).Where("status <> ?", models.StatusClosed).Count(&stats.OpenReports).Error; err != nil {
			return nil, err
		}
		if err := base.Session(&gorm.Session{}).Where("status = ?", models.StatusClosed).Count(&stats.ClosedReports).Error; err != nil {
			return nil, err
		}
	case models.RoleOfficer:
		base := s.DB.Model(&models.Report{}).Where("assigned_officer_id = ?", userID)
		if err := base.Session(&gorm.Session{}).Count(&stats.AssignedCases).Error; err != nil {
			return nil, err
		}
		if err := base.Session(&gorm.Session{}).Where("status <> ?", models.StatusClosed).Count(&stats.ActiveCases).Error; err != nil {
			return nil, err
		}
		if err := base.Session(&gorm.Session{}).Where("status = ?", models.StatusClosed).Count(&stats.SolvedCases).Error; err != nil {
			return nil, err
		}
	case models.RoleAdmin:
		if err := s.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&stats.ManagedUsers).Error; err != nil {
			return nil, err
		}
		if err := s.DB.Model(&models.Report{}).Count(&stats.ManagedReports).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// titleRole 角色名首字母大写，用于管理端展示
func titleRole(role string) string {
	if role == "" {
		return role
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

// 5. ListUsers 管理员获取全部在册用户
func (s *UserService) ListUsers() ([]ManagedUser, error) {
	var users []models.User
	err := s.DB.Preload("OfficerProfile").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	rows := make([]ManagedUser, 0, len(users))
	for i := range users {
		u := &users[i]
		row := ManagedUser{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			Phone:          u.Phone,
			Role:           titleRole(u.Role),
			JoinDate:       u.CreatedAt.Format(models.DateLayout),
			Specialization: "N/A",
			Department:     "N/A",
			Badge:          "N/A",
		}
		if u.Role == models.RoleOfficer && u.OfficerProfile != nil {
			if u.OfficerProfile.Specialization != "" {
				row.Specialization = u.OfficerProfile.Specialization
			}
			if u.OfficerProfile.Department != "" {
				row.Department = u.OfficerProfile.Department
			}
			if u.OfficerProfile.BadgeNumber != "" {
				row.Badge = u.OfficerProfile.BadgeNumber
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// 6. UpdateUser 管理员修改用户基本信息
func (s *UserService) UpdateUser(userID uint, input AdminUpdateUserInput) error {
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil && strings.TrimSpace(*input.Email) != "" {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		var count int64
		err := s.DB.Model(&models.User{}).
			Where("email = ? AND id <> ?", email, userID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		updates["email"] = email
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if len(updates) == 0 {
		return nil
	}
	return s.DB.Model(user).Updates(updates).Error
}

// 7. DeactivateUser 软删除用户，管理员不能删除自己
func (s *UserService) DeactivateUser(actingAdminID, userID uint) error {
	if actingAdminID == userID {
		return ErrSelfDelete
	}
	user, err := s.loadUser(userID)
	if err != nil {
		return err
	}
	return s.DB.Model(user).Update("is_active", false).Error
}

// 8. GetUserStats 按角色统计在册用户数量
func (s *UserService) GetUserStats() (*UserStats, error) {
	stats := &UserStats{}
	base := s.DB.Model(&models.User{}).Where("is_active = ?", true)

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("role = ?", models.RoleVictim).Count(&stats.Victims).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("role = ?", models.RoleOfficer).Count(&stats.Officers).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("role = ?", models.RoleAdmin).Count(&stats.Admins).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
