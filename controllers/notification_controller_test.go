package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"cybercrime-report-service/config"
	"cybercrime-report-service/models"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupNotificationRouter 构造带内存数据库的通知路由，中间件直接注入登录身份
func setupNotificationRouter(t *testing.T, userID uint) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}

	cfg := &config.Config{JWTSecretKey: "test-secret", UploadDir: t.TempDir()}
	serviceContainer := container.NewServiceContainer(db, cfg)

	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set("user_id", userID)
		ctx.Set("role", models.RoleVictim)
		ctx.Next()
	})
	r.POST("/notifications/mark-read", HandleNotificationFunc(serviceContainer, "markRead"))
	return r, db
}

// seedNotification 插入一条通知并返回其ID
func seedNotification(t *testing.T, db *gorm.DB, userID uint, message string) uint {
	t.Helper()
	n := models.Notification{UserID: userID, Message: message}
	if err := db.Create(&n).Error; err != nil {
		t.Fatalf("插入通知失败: %v", err)
	}
	return n.ID
}

// TestMarkReadPartial 请求体携带 notification_ids 时只标记指定通知
func TestMarkReadPartial(t *testing.T) {
	const userID = uint(1)
	r, db := setupNotificationRouter(t, userID)

	first := seedNotification(t, db, userID, "案件已受理")
	second := seedNotification(t, db, userID, "案件状态更新")

	body := []byte(fmt.Sprintf(`{"notification_ids": [%d]}`, first))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications/mark-read", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200, 得到 %d: %s", w.Code, w.Body.String())
	}

	var got models.Notification
	if err := db.First(&got, first).Error; err != nil {
		t.Fatalf("查询通知失败: %v", err)
	}
	if !got.Read {
		t.Error("指定的通知应被标记为已读")
	}
	got = models.Notification{}
	if err := db.First(&got, second).Error; err != nil {
		t.Fatalf("查询通知失败: %v", err)
	}
	if got.Read {
		t.Error("未指定的通知不应被标记为已读")
	}
}

// TestMarkReadAll 空请求体等价于全部标记已读
func TestMarkReadAll(t *testing.T) {
	const userID = uint(1)
	r, db := setupNotificationRouter(t, userID)

	seedNotification(t, db, userID, "案件已受理")
	seedNotification(t, db, userID, "案件状态更新")
	other := seedNotification(t, db, userID+1, "别人的通知")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications/mark-read", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200, 得到 %d: %s", w.Code, w.Body.String())
	}

	var unread int64
	if err := db.Model(&models.Notification{}).Where("user_id = ? AND `read` = ?", userID, false).Count(&unread).Error; err != nil {
		t.Fatalf("统计未读通知失败: %v", err)
	}
	if unread != 0 {
		t.Errorf("当前用户应无未读通知, 还剩 %d 条", unread)
	}

	var got models.Notification
	if err := db.First(&got, other).Error; err != nil {
		t.Fatalf("查询通知失败: %v", err)
	}
	if got.Read {
		t.Error("其他用户的通知不应被波及")
	}
}
