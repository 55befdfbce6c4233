package services

import (
	"errors"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"
	"cybercrime-report-service/utils"

	"gorm.io/gorm"
)

// 认证相关的业务错误
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// RoleProfile 按角色区分的注册扩展字段。
// 三种角色各自携带自己的字段集合，而不是一个大而全的可选字段结构。
type RoleProfile interface {
	Role() string
	Validate() error
	record(userID uint) interface{}
}

// VictimSignup 受害人注册扩展字段
type VictimSignup struct {
	NID string
}

// Role 实现 RoleProfile
func (v VictimSignup) Role() string { return models.RoleVictim }

// Validate 实现 RoleProfile
func (v VictimSignup) Validate() error {
	if v.NID == "" {
		return ErrMissingFields
	}
	return nil
}

func (v VictimSignup) record(userID uint) interface{} {
	return &models.VictimProfile{UserID: userID, NID: v.NID}
}

// OfficerSignup 警员注册扩展字段
type OfficerSignup struct {
	Badge          string
	Department     string
	Specialization string
}

// Role 实现 RoleProfile
func (o OfficerSignup) Role() string { return models.RoleOfficer }

// Validate 实现 RoleProfile
func (o OfficerSignup) Validate() error {
	if o.Badge == "" || o.Department == "" || o.Specialization == "" {
		return ErrMissingFields
	}
	return nil
}

func (o OfficerSignup) record(userID uint) interface{} {
	return &models.OfficerProfile{
		UserID:         userID,
		BadgeNumber:    o.Badge,
		Department:     o.Department,
		Specialization: o.Specialization,
	}
}

// AdminSignup 管理员注册扩展字段
type AdminSignup struct {
	AdminCode string
	Position  string
}

// Role 实现 RoleProfile
func (a AdminSignup) Role() string { return models.RoleAdmin }

// Validate 实现 RoleProfile
func (a AdminSignup) Validate() error {
	if a.AdminCode == "" || a.Position == "" {
		return ErrMissingFields
	}
	return nil
}

func (a AdminSignup) record(userID uint) interface{} {
	return &models.AdminProfile{UserID: userID, AdminCode: a.AdminCode, Position: a.Position}
}

// SignupInput 所有角色共有的注册字段
type SignupInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// InterfaceAuthService 定义认证服务接口
type InterfaceAuthService interface {
	Signup(input SignupInput, profile RoleProfile) (*models.User, error)
	Login(email, password string) (*models.User, error)
}

// AuthService 提供注册与登录相关的服务
type AuthService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAuthService 创建一个新的认证服务
func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		DB:     db,
		Config: cfg,
	}
}

// Signup 注册新用户，角色扩展信息与用户记录在同一事务内落库
func (s *AuthService) Signup(input SignupInput, profile RoleProfile) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		return nil, ErrMissingFields
	}
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if profile == nil {
		return nil, ErrInvalidRole
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	// 邮箱唯一性检查
	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		Role:     profile.Role(),
		IsActive: true,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(profile.record(user.ID)).Error
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login 校验邮箱与密码，只允许激活状态的账户登录
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}
