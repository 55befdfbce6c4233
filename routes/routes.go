package routes

import (
	"cybercrime-report-service/config"
	"cybercrime-report-service/controllers"
	_ "cybercrime-report-service/docs"
	"cybercrime-report-service/middleware"
	"cybercrime-report-service/models"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件，前端携带Cookie访问，必须允许凭证
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 注册公共路由
	registerPublicRoutes(r, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(r, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 健康检查
	healthController := controllers.NewHealthCheckController()
	r.GET("/api/ping", healthController.Ping)

	// 认证路由
	r.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))
	r.POST("/auth/signup", controllers.HandleAuthFunc(container, "signup"))

	// 证据文件下载
	r.GET("/uploads/:filename", controllers.HandleUploadFunc(container, "serveFile"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 登录态路由，角色不限
	auth := r.Group("/")
	auth.Use(middleware.AuthenticateUser())

	auth.POST("/auth/logout", controllers.HandleAuthFunc(container, "logout"))

	// 个人资料路由
	auth.GET("/profile", controllers.HandleProfileFunc(container, "getProfile"))
	auth.PUT("/profile", controllers.HandleProfileFunc(container, "updateProfile"))
	auth.POST("/profile/change-password", controllers.HandleProfileFunc(container, "changePassword"))
	auth.GET("/profile/stats", controllers.HandleProfileFunc(container, "getProfileStats"))

	// 通知路由
	auth.GET("/notifications", controllers.HandleNotificationFunc(container, "getNotifications"))
	auth.POST("/notifications/mark-read", controllers.HandleNotificationFunc(container, "markRead"))

	// 受害人路由
	victim := auth.Group("/victim")
	victim.Use(middleware.RequireRole(models.RoleVictim))
	victim.POST("/report", controllers.HandleVictimFunc(container, "createReport"))
	victim.GET("/reports", controllers.HandleVictimFunc(container, "getMyReports"))
	victim.GET("/report/:id", controllers.HandleVictimFunc(container, "getReportDetail"))
	victim.POST("/report/:id/evidence", controllers.HandleVictimFunc(container, "uploadEvidence"))
	victim.GET("/report/:id/logs", controllers.HandleVictimFunc(container, "getReportLogs"))

	// 警员路由
	officer := auth.Group("/officer")
	officer.Use(middleware.RequireRole(models.RoleOfficer))
	officer.GET("/assigned_cases", controllers.HandleOfficerFunc(container, "getAssignedCases"))
	officer.GET("/case/:id", controllers.HandleOfficerFunc(container, "getCaseDetail"))
	officer.PUT("/case/:id", controllers.HandleOfficerFunc(container, "updateCaseStatus"))
	officer.POST("/case/:id/logs", controllers.HandleOfficerFunc(container, "addCaseLog"))
	officer.GET("/case/:id/logs", controllers.HandleOfficerFunc(container, "getCaseLogs"))
	officer.GET("/case/:id/evidence", controllers.HandleOfficerFunc(container, "getCaseEvidence"))
	officer.POST("/case/:id/evidence", controllers.HandleOfficerFunc(container, "uploadCaseEvidence"))
	officer.GET("/all_evidence", controllers.HandleOfficerFunc(container, "getEvidenceLibrary"))
	officer.GET("/dashboard", controllers.HandleOfficerFunc(container, "getDashboard"))
	officer.GET("/workload", controllers.HandleOfficerFunc(container, "getWorkload"))

	// 管理员路由
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("/all_reports", controllers.HandleAdminFunc(container, "getAllReports"))
	admin.POST("/assign", controllers.HandleAdminFunc(container, "assignOfficer"))
	admin.GET("/available_officers", controllers.HandleAdminFunc(container, "getAvailableOfficers"))
	admin.GET("/users", controllers.HandleAdminFunc(container, "getUsers"))
	admin.GET("/users/stats", controllers.HandleAdminFunc(container, "getUserStats"))
	admin.PUT("/users/:id", controllers.HandleAdminFunc(container, "updateUser"))
	admin.DELETE("/users/:id", controllers.HandleAdminFunc(container, "deleteUser"))
	admin.GET("/audit_logs", controllers.HandleAdminFunc(container, "getAuditLogs"))
	admin.DELETE("/audit_logs/reset", controllers.HandleAdminFunc(container, "resetAuditLogs"))
	admin.GET("/analytics", controllers.HandleAdminFunc(container, "getAnalytics"))
	admin.GET("/active_cases", controllers.HandleAdminFunc(container, "getActiveCases"))
	admin.GET("/officer_performance", controllers.HandleAdminFunc(container, "getOfficerPerformance"))
	admin.GET("/audit_trail", controllers.HandleAdminFunc(container, "getAuditTrail"))
}
