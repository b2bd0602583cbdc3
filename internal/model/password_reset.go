package model

import (
	"time"
)

// PasswordReset 密码重置令牌，token 字段存 bcrypt 哈希
type PasswordReset struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Email string `json:"email" gorm:"index;not null"`
	Token string `json:"-" gorm:"not null"`
}

// TableName 自定义表名
func (PasswordReset) TableName() string {
	return "password_reset"
}
