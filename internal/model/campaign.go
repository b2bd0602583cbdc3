package model

import (
	"time"
)

// Campaign 众筹活动模型
type Campaign struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	// 众筹金额
	GoalAmount    float64 `json:"goal_amount" gorm:"not null"`
	CurrentAmount float64 `json:"current_amount" gorm:"default:0"`

	// 创建者
	UserId *int64 `json:"user_id" gorm:"index"`

	// 关联
	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserId"`
	Donations []Donation `json:"donations,omitempty" gorm:"foreignKey:CampaignId"`
}

// TableName 自定义表名
func (Campaign) TableName() string {
	return "campaign"
}
