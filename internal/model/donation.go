package model

import (
	"time"
)

// Donation 捐款记录，创建后不可修改
type Donation struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	CampaignId int64   `json:"campaign_id" gorm:"not null;index"`
	Amount     float64 `json:"amount" gorm:"not null"`

	// 捐款人，匿名捐款时为空
	UserId *int64 `json:"user_id"`
}

// TableName 自定义表名
func (Donation) TableName() string {
	return "donation"
}
