package services

import (
	"errors"
	"testing"

	"cybercrime-report-service/models"
)

func validSignupInput(email string) SignupInput {
	return SignupInput{
		Name:            "Alice Rahman",
		Email:           email,
		Phone:           "01700000000",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

// TestSignupVictim 验证受害人注册及角色档案落库
func TestSignupVictim(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(t))

	user, err := svc.Signup(validSignupInput("alice@example.com"), VictimSignup{NID: "1234567890"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Role != models.RoleVictim {
		t.Errorf("角色 = %q, want %q", user.Role, models.RoleVictim)
	}

	var profile models.VictimProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		t.Fatalf("受害人档案未落库: %v", err)
	}
	if profile.NID != "1234567890" {
		t.Errorf("NID = %q, want %q", profile.NID, "1234567890")
	}
}

// TestSignupValidation 验证注册的各类校验失败路径
func TestSignupValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(t))

	// 密码不一致
	input := validSignupInput("a@example.com")
	input.ConfirmPassword = "different"
	if _, err := svc.Signup(input, VictimSignup{NID: "123"}); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("密码不一致 err = %v, want ErrPasswordMismatch", err)
	}

	// 警员缺少警号
	officer := OfficerSignup{Department: "Cyber Crime", Specialization: "Fraud"}
	if _, err := svc.Signup(validSignupInput("b@example.com"), officer); !errors.Is(err, ErrMissingFields) {
		t.Errorf("缺少警号 err = %v, want ErrMissingFields", err)
	}

	// 未知角色
	if _, err := svc.Signup(validSignupInput("c@example.com"), nil); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("未知角色 err = %v, want ErrInvalidRole", err)
	}

	// 邮箱重复
	if _, err := svc.Signup(validSignupInput("dup@example.com"), VictimSignup{NID: "123"}); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	if _, err := svc.Signup(validSignupInput("dup@example.com"), VictimSignup{NID: "456"}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("重复邮箱 err = %v, want ErrEmailTaken", err)
	}
}

// TestLogin 验证登录的凭证校验与停用账户拦截
func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig(t))

	if _, err := svc.Signup(validSignupInput("alice@example.com"), VictimSignup{NID: "123"}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	user, err := svc.Login("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("邮箱 = %q", user.Email)
	}

	if _, err := svc.Login("alice@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("错误密码 err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("不存在用户 err = %v, want ErrInvalidCredentials", err)
	}

	// 停用后不能登录
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("停用用户失败: %v", err)
	}
	if _, err := svc.Login("alice@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("停用账户 err = %v, want ErrInvalidCredentials", err)
	}
}
