package services

import (
	"testing"
	"time"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"
	"cybercrime-report-service/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存数据库并迁移全部模型
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.VictimProfile{},
		&models.OfficerProfile{},
		&models.AdminProfile{},
		&models.Report{},
		&models.Evidence{},
		&models.CaseLog{},
		&models.AuditLog{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

// testConfig 构造测试用配置
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecretKey: "test-secret",
		UploadDir:    t.TempDir(),
	}
}

// seedUser 插入一个用户并返回其ID
func seedUser(t *testing.T, db *gorm.DB, name, email, role string) uint {
	t.Helper()

	hashed, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}
	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Phone:    "0170000000",
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("插入用户失败: %v", err)
	}
	return user.ID
}

// seedReport 插入一条举报并返回其ID
func seedReport(t *testing.T, db *gorm.DB, victimID uint, crimeType, status string, officerID *uint, submitted time.Time) uint {
	t.Helper()

	report := models.Report{
		VictimID:          victimID,
		CrimeType:         crimeType,
		Description:       "test report",
		Location:          "Dhaka",
		Status:            status,
		Priority:          "Medium",
		AssignedOfficerID: officerID,
	}
	if err := db.Create(&report).Error; err != nil {
		t.Fatalf("插入举报失败: %v", err)
	}
	// autoCreateTime 会覆盖传入值，这里显式回写提交时间
	if err := db.Model(&report).Update("date_submitted", submitted).Error; err != nil {
		t.Fatalf("回写提交时间失败: %v", err)
	}
	return report.ID
}
