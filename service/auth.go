package service

import (
	"errors"
	"fmt"
	"log"

	"ledger/models"

	"gorm.io/gorm"
)

// AuthService 认证服务，负责注册和登录校验
// 数据库连接由调用方注入，服务本身不持有全局状态
type AuthService struct {
	db *gorm.DB
}

// NewAuthService 创建认证服务
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Session 登录成功后返回的会话信息
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// SignUp 注册新用户
// 用户名重复返回 ErrDuplicateUsername，密码以 bcrypt 摘要落库
func (s *AuthService) SignUp(username, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	digest, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := models.User{
		Username: username,
		Password: digest,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return &user, nil
}

// LogIn 登录校验
// 用户不存在和密码错误统一返回 ErrInvalidCredentials
// 旧版 SHA-256 摘要校验通过后就地升级为 bcrypt
func (s *AuthService) LogIn(username, password string) (*Session, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if !CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// 存量账号迁移：旧摘要校验通过后改存 bcrypt，下次登录走正常路径
	if IsLegacyDigest(user.Password) {
		if digest, err := HashPassword(password); err == nil {
			if err := s.db.Model(&user).Update("password", digest).Error; err != nil {
				log.Printf("升级用户 %d 的密码摘要失败: %v", user.ID, err)
			}
		}
	}

	return &Session{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// ChangePassword 修改密码，旧密码校验失败返回 ErrInvalidCredentials
func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("查询用户失败: %w", err)
	}

	if !CheckPassword(oldPassword, user.Password) {
		return ErrInvalidCredentials
	}

	digest, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}
	if err := s.db.Model(&user).Update("password", digest).Error; err != nil {
		return fmt.Errorf("更新密码失败: %w", err)
	}
	return nil
}

// GetUser 按 ID 获取用户
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}
