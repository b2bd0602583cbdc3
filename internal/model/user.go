package model

import (
	"time"
)

// User 用户模型
type User struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`

	// 邮箱验证状态
	Verified bool `json:"verified" gorm:"default:false"`

	// 注销时间，晚于该时间签发的令牌才有效
	LastLogoutAt *time.Time `json:"-"`
}

// TableName 自定义表名
func (User) TableName() string {
	return "users"
}
