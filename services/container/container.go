package container

import (
	"cybercrime-report-service/config"
	"cybercrime-report-service/services"

	"gorm.io/gorm"
)

// ServiceContainer 统一持有各业务服务，供控制器按名取用
type ServiceContainer struct {
	DB       *gorm.DB
	Config   *config.Config
	services map[string]interface{}
}

// NewServiceContainer 创建服务容器并初始化所有服务
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	container := &ServiceContainer{
		DB:       db,
		Config:   cfg,
		services: make(map[string]interface{}),
	}
	container.initializeServices()
	return container
}

// initializeServices 注册全部服务实例
func (c *ServiceContainer) initializeServices() {
	redisService := services.NewRedisService(c.Config)

	c.services["jwt"] = services.NewJWTService(c.Config)
	c.services["redis"] = redisService
	c.services["session"] = services.NewSessionService(redisService)
	c.services["auth"] = services.NewAuthService(c.DB, c.Config)
	c.services["user"] = services.NewUserService(c.DB, c.Config)
	c.services["report"] = services.NewReportService(c.DB, c.Config)
	c.services["case"] = services.NewCaseService(c.DB, c.Config)
	c.services["caseLog"] = services.NewCaseLogService(c.DB, c.Config)
	c.services["evidence"] = services.NewEvidenceService(c.DB, c.Config)
	c.services["audit"] = services.NewAuditService(c.DB, c.Config)
	c.services["notification"] = services.NewNotificationService(c.DB, c.Config)
	c.services["analytics"] = services.NewAnalyticsService(c.DB, c.Config)
}

// GetService 按名称获取服务实例
func (c *ServiceContainer) GetService(name string) interface{} {
	return c.services[name]
}

// JWT 获取令牌服务
func (c *ServiceContainer) JWT() services.InterfaceJWTService {
	return c.services["jwt"].(services.InterfaceJWTService)
}

// Session 获取会话缓存服务
func (c *ServiceContainer) Session() services.InterfaceSessionService {
	return c.services["session"].(services.InterfaceSessionService)
}

// Auth 获取认证服务
func (c *ServiceContainer) Auth() services.InterfaceAuthService {
	return c.services["auth"].(services.InterfaceAuthService)
}

// User 获取用户服务
func (c *ServiceContainer) User() services.InterfaceUserService {
	return c.services["user"].(services.InterfaceUserService)
}

// Report 获取举报服务
func (c *ServiceContainer) Report() services.InterfaceReportService {
	return c.services["report"].(services.InterfaceReportService)
}

// Case 获取案件服务
func (c *ServiceContainer) Case() services.InterfaceCaseService {
	return c.services["case"].(services.InterfaceCaseService)
}

// CaseLog 获取办案日志服务
func (c *ServiceContainer) CaseLog() services.InterfaceCaseLogService {
	return c.services["caseLog"].(services.InterfaceCaseLogService)
}

// Evidence 获取证据服务
func (c *ServiceContainer) Evidence() services.InterfaceEvidenceService {
	return c.services["evidence"].(services.InterfaceEvidenceService)
}

// Audit 获取审计服务
func (c *ServiceContainer) Audit() services.InterfaceAuditService {
	return c.services["audit"].(services.InterfaceAuditService)
}

// Notification 获取通知服务
func (c *ServiceContainer) Notification() services.InterfaceNotificationService {
	return c.services["notification"].(services.InterfaceNotificationService)
}

// Analytics 获取统计分析服务
func (c *ServiceContainer) Analytics() services.InterfaceAnalyticsService {
	return c.services["analytics"].(services.InterfaceAnalyticsService)
}
