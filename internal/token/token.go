package token

import (
	"errors"
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/config"
	"github.com/golang-jwt/jwt"
)

// SignedDetails 令牌载荷
type SignedDetails struct {
	UserId int64 `json:"user_id"`
	jwt.StandardClaims
}

// Manager 令牌签发与校验
type Manager struct {
	secret []byte
	expire time.Duration
}

// NewManager 创建令牌管理器
func NewManager(cfg config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		expire: time.Duration(cfg.ExpireMinutes) * time.Minute,
	}
}

// Generate 为用户签发令牌
func (m *Manager) Generate(userId int64) (string, error) {
	now := time.Now()
	claims := &SignedDetails{
		UserId: userId,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(m.expire).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate 校验令牌并返回载荷
func (m *Manager) Validate(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("the token is invalid")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, errors.New("token is expired")
	}

	return claims, nil
}

// IssuedTime 令牌签发时间
func (c *SignedDetails) IssuedTime() time.Time {
	return time.Unix(c.StandardClaims.IssuedAt, 0)
}
