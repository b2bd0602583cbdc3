package logic

import (
	"errors"
	"fmt"

	"github.com/andrew21-mch/crowdfunding-api/internal/model"
	"gorm.io/gorm"
)

// DonationLogic 捐款业务逻辑
type DonationLogic struct {
	db *gorm.DB
}

// NewDonationLogic 创建捐款业务逻辑
func NewDonationLogic(db *gorm.DB) *DonationLogic {
	return &DonationLogic{db: db}
}

// Donate 记录捐款并累加活动已筹金额。
// 捐款写入和金额累加在同一事务内完成，累加由数据库原子执行，
// 并发捐款同一活动时不会丢失更新。userId 为空表示匿名捐款。
func (l *DonationLogic) Donate(campaignId int64, amount float64, userId *int64) (*model.Donation, error) {
	if amount < 0 {
		return nil, newValidationError("捐款金额不能为负数")
	}

	// 检查活动是否存在
	var campaign model.Campaign
	if err := l.db.First(&campaign, campaignId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("获取活动失败: %w", err)
	}

	donation := &model.Donation{
		CampaignId: campaign.Id,
		Amount:     amount,
		UserId:     userId,
	}

	// 开始事务
	tx := l.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 创建捐款记录
	if err := tx.Create(donation).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("创建捐款记录失败: %w", err)
	}

	// 更新活动当前金额
	if err := tx.Model(&model.Campaign{}).
		Where("id = ?", campaign.Id).
		Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("更新活动金额失败: %w", err)
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return donation, nil
}
