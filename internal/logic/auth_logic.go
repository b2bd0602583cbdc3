package logic

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/logger"
	"github.com/andrew21-mch/crowdfunding-api/internal/mailer"
	"github.com/andrew21-mch/crowdfunding-api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// AuthLogic 用户认证业务逻辑
type AuthLogic struct {
	db      *gorm.DB
	mailer  mailer.Mailer
	baseURL string
}

// NewAuthLogic 创建用户认证业务逻辑
func NewAuthLogic(db *gorm.DB, m mailer.Mailer, baseURL string) *AuthLogic {
	return &AuthLogic{
		db:      db,
		mailer:  m,
		baseURL: baseURL,
	}
}

// Register 注册用户并发送验证邮件
func (a *AuthLogic) Register(name, email, password string) (*model.User, error) {
	if name == "" {
		return nil, newValidationError("用户名不能为空")
	}
	if email == "" {
		return nil, newValidationError("邮箱不能为空")
	}
	if len(password) < minPasswordLength {
		return nil, newValidationError("密码长度不能少于6位")
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := a.db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, newValidationError("邮箱已被注册")
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	// 发送验证邮件，失败不影响注册结果
	link := fmt.Sprintf("%s/api/v1/email/verify/%d/%s", a.baseURL, user.Id, VerificationHash(user.Email))
	if err := a.mailer.SendVerificationEmail(user.Email, user.Name, link); err != nil {
		logger.Error("Failed to send verification email to %s: %v", user.Email, err)
	}

	return user, nil
}

// Authenticate 校验邮箱密码
func (a *AuthLogic) Authenticate(email, password string) (*model.User, error) {
	var user model.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Logout 记录注销时间，使该时间之前签发的令牌全部失效
func (a *AuthLogic) Logout(userId int64) error {
	result := a.db.Model(&model.User{}).Where("id = ?", userId).Update("last_logout_at", time.Now())
	if result.Error != nil {
		return fmt.Errorf("注销失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetUser 按 ID 获取用户
func (a *AuthLogic) GetUser(id int64) (*model.User, error) {
	var user model.User
	if err := a.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// UpdateProfile 更新用户资料
func (a *AuthLogic) UpdateProfile(userId int64, name, email string) (*model.User, error) {
	if name == "" {
		return nil, newValidationError("用户名不能为空")
	}
	if email == "" {
		return nil, newValidationError("邮箱不能为空")
	}

	user, err := a.GetUser(userId)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":  name,
		"email": email,
	}
	if err := a.db.Model(user).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, newValidationError("邮箱已被注册")
		}
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	return user, nil
}

// ChangePassword 修改密码，需要校验当前密码
func (a *AuthLogic) ChangePassword(userId int64, currentPassword, newPassword string) error {
	user, err := a.GetUser(userId)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return newValidationError("当前密码不正确")
	}
	if len(newPassword) < minPasswordLength {
		return newValidationError("密码长度不能少于6位")
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}

	if err := a.db.Model(user).Update("password", hashed).Error; err != nil {
		return fmt.Errorf("更新密码失败: %w", err)
	}
	return nil
}

// SendResetLink 生成密码重置令牌并发送邮件，返回明文令牌
func (a *AuthLogic) SendResetLink(email string) (string, error) {
	if email == "" {
		return "", newValidationError("邮箱不能为空")
	}

	var user model.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", newValidationError("用户邮箱无效")
		}
		return "", fmt.Errorf("查询用户失败: %w", err)
	}

	plainToken := uuid.NewString()
	hashed, err := HashPassword(plainToken)
	if err != nil {
		return "", fmt.Errorf("令牌加密失败: %w", err)
	}

	reset := &model.PasswordReset{
		Email: email,
		Token: hashed,
	}
	if err := a.db.Create(reset).Error; err != nil {
		return "", fmt.Errorf("保存重置令牌失败: %w", err)
	}

	if err := a.mailer.SendPasswordResetEmail(email, plainToken); err != nil {
		logger.Error("Failed to send password reset email to %s: %v", email, err)
	}

	return plainToken, nil
}

// ResetPassword 校验重置令牌并更新密码
func (a *AuthLogic) ResetPassword(plainToken, email, password string) error {
	if email == "" {
		return newValidationError("邮箱不能为空")
	}
	if len(password) < minPasswordLength {
		return newValidationError("密码长度不能少于6位")
	}

	var reset model.PasswordReset
	if err := a.db.Where("email = ?", email).First(&reset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newValidationError("密码重置令牌无效")
		}
		return fmt.Errorf("查询重置令牌失败: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(reset.Token), []byte(plainToken)); err != nil {
		return newValidationError("密码重置令牌无效")
	}

	var user model.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("查询用户失败: %w", err)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}
	if err := a.db.Model(&user).Update("password", hashed).Error; err != nil {
		return fmt.Errorf("更新密码失败: %w", err)
	}

	// 重置完成后清理该邮箱的所有令牌
	if err := a.db.Where("email = ?", email).Delete(&model.PasswordReset{}).Error; err != nil {
		return fmt.Errorf("清理重置令牌失败: %w", err)
	}

	return nil
}

// VerifyEmail 校验验证链接并标记邮箱已验证，重复验证是幂等的
func (a *AuthLogic) VerifyEmail(userId int64, hash string) error {
	user, err := a.GetUser(userId)
	if err != nil {
		return err
	}

	if hash != VerificationHash(user.Email) {
		return newValidationError("验证链接无效")
	}

	if !user.Verified {
		if err := a.db.Model(user).Update("verified", true).Error; err != nil {
			return fmt.Errorf("更新验证状态失败: %w", err)
		}
	}
	return nil
}

// ResendVerification 重发验证邮件
func (a *AuthLogic) ResendVerification(userId int64) error {
	user, err := a.GetUser(userId)
	if err != nil {
		return err
	}

	if user.Verified {
		return newValidationError("邮箱已完成验证")
	}

	link := fmt.Sprintf("%s/api/v1/email/verify/%d/%s", a.baseURL, user.Id, VerificationHash(user.Email))
	if err := a.mailer.SendVerificationEmail(user.Email, user.Name, link); err != nil {
		return fmt.Errorf("发送验证邮件失败: %w", err)
	}
	return nil
}

// HashPassword 生成密码哈希
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerificationHash 由邮箱推导验证链接里的哈希
func VerificationHash(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:])
}

// isDuplicateKey 判断唯一约束冲突
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
