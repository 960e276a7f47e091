package api

import (
	"errors"
	"net/http"
	"time"

	"teslastats/config"
	"teslastats/database"
	"teslastats/middleware"
	"teslastats/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// LoginRequest 登录请求（支持用户名或邮箱）
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"` // 可为用户名或邮箱
	Password string `json:"password" binding:"required" example:"admin123456"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// Login 用户登录
// @Summary 用户登录
// @Description 登录获取 JWT token，导入与修改交付记录需要携带
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 查找用户（支持用户名或邮箱）
	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error; err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	if user.Status != models.UserStatusActive {
		Error(c, http.StatusForbidden, "账号已锁定，请联系管理员解锁")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{
		Token:    token,
		UserInfo: user,
	})
}

// ProfileResponse 当前用户及其数据维护情况
type ProfileResponse struct {
	User models.User `json:"user"`
	// ImportBatches 该用户发起的导入批次数
	ImportBatches int64 `json:"import_batches"`
	// MaintainedRecords 最后一次由该用户写入的交付记录数
	MaintainedRecords int64      `json:"maintained_records"`
	LastImportAt      *time.Time `json:"last_import_at,omitempty"`
	LastImportFile    string     `json:"last_import_file,omitempty"`
}

// GetProfile 获取用户信息
// @Summary 获取当前用户信息
// @Description 返回用户信息以及其导入批次数、维护的交付记录数和最近一次导入
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=ProfileResponse} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	profile := ProfileResponse{User: user}
	if err := database.DB.Model(&models.ImportBatch{}).Where("created_by = ?", user.ID).Count(&profile.ImportBatches).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询导入批次失败"))
		return
	}
	if err := database.DB.Model(&models.DeliveryRecord{}).Where("updated_by = ?", user.ID).Count(&profile.MaintainedRecords).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询交付记录失败"))
		return
	}

	if profile.ImportBatches > 0 {
		var latest models.ImportBatch
		err := database.DB.Where("created_by = ?", user.ID).Order("created_at DESC").First(&latest).Error
		switch {
		case err == nil:
			profile.LastImportAt = &latest.CreatedAt
			profile.LastImportFile = latest.FileName
		case !errors.Is(err, gorm.ErrRecordNotFound):
			InternalError(c, SafeErrorMessage(err, "查询导入批次失败"))
			return
		}
	}

	Success(c, profile)
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"oldpassword123"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50" example:"newpassword123"`
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Description 修改当前用户密码
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "密码信息"
// @Success 200 {object} Response "修改成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "原密码错误"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		Unauthorized(c, "原密码错误")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "密码加密失败")
		return
	}

	if err := database.DB.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		InternalError(c, "更新密码失败")
		return
	}

	SuccessWithMessage(c, "密码修改成功", nil)
}
