package services

import (
	"errors"
	"testing"

	"cybercrime-report-service/models"
)

// TestChangePassword 验证改密的校验链
func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))
	userID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)

	tests := []struct {
		name    string
		current string
		newPass string
		confirm string
		wantErr error
	}{
		{"旧密码错误", "wrongpass", "newsecret", "newsecret", ErrWrongPassword},
		{"两次不一致", "secret123", "newsecret", "other", ErrPasswordMismatch},
		{"新密码过短", "secret123", "abc", "abc", ErrPasswordTooShort},
		{"缺字段", "", "newsecret", "newsecret", ErrMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(userID, tt.current, tt.newPass, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := svc.ChangePassword(userID, "secret123", "newsecret", "newsecret"); err != nil {
		t.Fatalf("改密失败: %v", err)
	}
	// 新密码可登录
	auth := NewAuthService(db, testConfig(t))
	if _, err := auth.Login("alice@example.com", "newsecret"); err != nil {
		t.Errorf("新密码登录失败: %v", err)
	}
}

// TestDeactivateUser 验证软删除与自删保护
func TestDeactivateUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	adminID := seedUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	victimID := seedUser(t, db, "Alice Rahman", "alice@example.com", models.RoleVictim)

	if err := svc.DeactivateUser(adminID, adminID); !errors.Is(err, ErrSelfDelete) {
		t.Errorf("自删 err = %v, want ErrSelfDelete", err)
	}

	if err := svc.DeactivateUser(adminID, victimID); err != nil {
		t.Fatalf("DeactivateUser: %v", err)
	}

	// 软删除：记录仍在，仅置为停用
	var user models.User
	if err := db.First(&user, victimID).Error; err != nil {
		t.Fatalf("用户记录被物理删除: %v", err)
	}
	if user.IsActive {
		t.Error("用户未被停用")
	}

	// 停用用户不再出现在列表中
	users, err := svc.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	for _, u := range users {
		if u.ID == victimID {
			t.Error("停用用户仍出现在用户列表中")
		}
	}
}

// TestGetProfileByRole 验证角色字段只在对应角色出现
func TestGetProfileByRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	officerID := seedUser(t, db, "Officer Khan", "khan@police.gov", models.RoleOfficer)
	profile := models.OfficerProfile{
		UserID:         officerID,
		BadgeNumber:    "DMP-1024",
		Department:     "Cyber Crime",
		Specialization: "Online Fraud",
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("插入警员档案失败: %v", err)
	}

	got, err := svc.GetProfile(officerID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.BadgeNumber != "DMP-1024" || got.Specialization != "Online Fraud" {
		t.Errorf("警员档案 = %+v", got)
	}
	if got.NID != "" || got.AdminCode != "" {
		t.Errorf("警员资料泄露其他角色字段: %+v", got)
	}
}

// TestGetUserStats 验证按角色的用户统计
func TestGetUserStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	seedUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	seedUser(t, db, "Alice", "alice@example.com", models.RoleVictim)
	seedUser(t, db, "Bob", "bob@example.com", models.RoleVictim)
	seedUser(t, db, "Khan", "khan@police.gov", models.RoleOfficer)

	stats, err := svc.GetUserStats()
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.TotalUsers != 4 || stats.Victims != 2 || stats.Officers != 1 || stats.Admins != 1 {
		t.Errorf("统计 = %+v", stats)
	}
}
