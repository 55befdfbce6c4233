package controllers

import (
	"errors"
	"net/http"

	"cybercrime-report-service/internal/error/code"
	"cybercrime-report-service/internal/error/response"
	"cybercrime-report-service/models"
	"cybercrime-report-service/services"
	"cybercrime-report-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 认证Cookie的有效期（秒）
const authCookieMaxAge = 24 * 60 * 60

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
	Signup()
	Logout()
}

// AuthController 处理注册、登录与登出请求
type AuthController struct {
	BaseControllerImpl
}

// NewAuthController 创建一个新的认证控制器
func (f *ControllerFactory) NewAuthController(ctx *gin.Context) *AuthController {
	return &AuthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"victim@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// SignupRequest 注册请求，角色字段按 role 取用
type SignupRequest struct {
	Name            string `json:"name" binding:"required" example:"Alice Rahman"`
	Email           string `json:"email" binding:"required,email" example:"alice@example.com"`
	Phone           string `json:"phone" binding:"required" example:"01700000000"`
	Password        string `json:"password" binding:"required" example:"secret123"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"secret123"`
	Role            string `json:"role" binding:"required" example:"victim"`

	// victim
	NID string `json:"nid" example:"1234567890"`

	// officer
	BadgeNumber    string `json:"badge_number" example:"DMP-1024"`
	Department     string `json:"department" example:"Cyber Crime"`
	Specialization string `json:"specialization" example:"Online Fraud"`

	// admin
	AdminCode string `json:"admin_code" example:"HQ-7"`
	Position  string `json:"position" example:"System Administrator"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)

	return func(ctx *gin.Context) {
		controller := factory.NewAuthController(ctx)

		switch method {
		case "login":
			controller.Login()
		case "signup":
			controller.Signup()
		case "logout":
			controller.Logout()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "无效的方法"})
		}
	}
}

// setAuthCookies 下发登录态Cookie。
// auth_token 仅限HTTP读取；session_id 供前端读取以访问会话缓存。
func (c *AuthController) setAuthCookies(token, sessionID string) {
	c.Context.SetCookie("auth_token", token, authCookieMaxAge, "/", "", false, true)
	c.Context.SetCookie("session_id", sessionID, authCookieMaxAge, "/", "", false, false)
}

// clearAuthCookies 清除登录态Cookie
func (c *AuthController) clearAuthCookies() {
	c.Context.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.Context.SetCookie("session_id", "", -1, "/", "", false, false)
}

// Login 处理用户登录
// @Summary      用户登录
// @Description  校验凭证并下发JWT令牌与会话Cookie
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录参数"
// @Success      200  {object}  map[string]interface{}  "登录成功"
// @Failure      400  {object}  response.ErrorBody  "参数错误"
// @Failure      401  {object}  response.ErrorBody  "凭证无效"
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "Email and password are required")
		return
	}

	user, err := c.Container.Auth().Login(req.Email, req.Password)
	if err != nil {
		c.Container.Audit().Record(nil, "Failed Login",
			"Failed login attempt for "+req.Email, "Failed", c.Context.ClientIP())
		response.FailWithMessage(c.Context, code.ErrUserPasswordIncorrect, "Invalid credentials")
		return
	}

	sessionID := uuid.NewString()
	token, err := c.Container.JWT().GenerateToken(user.ID, user.Role, user.Email, sessionID)
	if err != nil {
		response.ServerError(c.Context)
		return
	}

	// 会话缓存预置展示字段，后续请求直接读取
	session := c.Container.Session()
	session.Write(sessionID, "name", user.Name)
	session.Write(sessionID, "email", user.Email)
	session.Write(sessionID, "phone", user.Phone)
	session.Write(sessionID, "role", user.Role)

	c.setAuthCookies(token, sessionID)
	c.Container.Audit().Record(&user.ID, "User Login",
		user.Role+" logged in", "Success", c.Context.ClientIP())

	response.Success(c.Context, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// buildRoleProfile 把平铺的注册字段折成对应角色的档案
func buildRoleProfile(req *SignupRequest) services.RoleProfile {
	switch req.Role {
	case models.RoleVictim:
		return services.VictimSignup{NID: req.NID}
	case models.RoleOfficer:
		return services.OfficerSignup{
			Badge:          req.BadgeNumber,
			Department:     req.Department,
			Specialization: req.Specialization,
		}
	case models.RoleAdmin:
		return services.AdminSignup{
			AdminCode: req.AdminCode,
			Position:  req.Position,
		}
	default:
		return nil
	}
}

// Signup 处理用户注册
// @Summary      用户注册
// @Description  创建账户并按角色落库扩展档案
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "注册参数"
// @Success      201  {object}  map[string]string  "注册成功"
// @Failure      400  {object}  response.ErrorBody  "参数错误"
// @Router       /auth/signup [post]
func (c *AuthController) Signup() {
	var req SignupRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Context, "All fields are required")
		return
	}

	input := services.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	user, err := c.Container.Auth().Signup(input, buildRoleProfile(&req))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			response.FailWithMessage(c.Context, code.ErrUserAlreadyExist, "User already exists")
		case errors.Is(err, services.ErrPasswordMismatch):
			response.FailWithMessage(c.Context, code.ErrPasswordMismatch, "Passwords do not match")
		case errors.Is(err, services.ErrInvalidRole):
			response.FailWithMessage(c.Context, code.ErrInvalidRole, "Invalid role")
		default:
			response.ParamError(c.Context, err.Error())
		}
		return
	}

	c.Container.Audit().Record(&user.ID, "User Signup",
		"New "+user.Role+" account created", "Success", c.Context.ClientIP())
	c.Context.JSON(http.StatusCreated, gin.H{"message": "Account created successfully"})
}

// Logout 处理用户登出
// @Summary      用户登出
// @Description  清理会话缓存并失效Cookie
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]string  "登出成功"
// @Router       /auth/logout [post]
func (c *AuthController) Logout() {
	if sid, exists := c.Context.Get("session_id"); exists {
		if sessionID, ok := sid.(string); ok && sessionID != "" {
			c.Container.Session().Clear(sessionID)
		}
	}
	if uid, exists := c.Context.Get("user_id"); exists {
		if userID, ok := uid.(uint); ok {
			c.Container.Audit().Record(&userID, "User Logout", "User logged out", "Success", c.Context.ClientIP())
		}
	}

	c.clearAuthCookies()
	response.Message(c.Context, "Logged out successfully")
}
