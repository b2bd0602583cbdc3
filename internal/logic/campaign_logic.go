package logic

import (
	"errors"
	"fmt"

	"github.com/andrew21-mch/crowdfunding-api/internal/model"
	"gorm.io/gorm"
)

// CampaignLogic 众筹活动业务逻辑
type CampaignLogic struct {
	db *gorm.DB
}

// NewCampaignLogic 创建众筹活动业务逻辑
func NewCampaignLogic(db *gorm.DB) *CampaignLogic {
	return &CampaignLogic{db: db}
}

// CreateCampaign 创建活动
func (l *CampaignLogic) CreateCampaign(userId int64, title, description string, goalAmount float64) (*model.Campaign, error) {
	// 验证活动数据
	if err := l.validateCampaign(title, description, goalAmount); err != nil {
		return nil, err
	}

	campaign := &model.Campaign{
		Title:         title,
		Description:   description,
		GoalAmount:    goalAmount,
		CurrentAmount: 0,
		UserId:        &userId,
	}

	if err := l.db.Create(campaign).Error; err != nil {
		return nil, fmt.Errorf("创建活动失败: %w", err)
	}

	return campaign, nil
}

// GetCampaigns 获取活动列表
func (l *CampaignLogic) GetCampaigns() ([]model.Campaign, error) {
	var campaigns []model.Campaign

	// 获取所有活动及创建者信息
	if err := l.db.Preload("User").Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("获取活动列表失败: %w", err)
	}

	return campaigns, nil
}

// GetCampaign 获取活动详情，包含创建者和捐款记录
func (l *CampaignLogic) GetCampaign(id int64) (*model.Campaign, error) {
	var campaign model.Campaign
	if err := l.db.Preload("User").
		Preload("Donations").
		First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("获取活动详情失败: %w", err)
	}

	return &campaign, nil
}

// UpdateCampaign 更新活动，current_amount 不受更新影响
func (l *CampaignLogic) UpdateCampaign(id int64, title, description string, goalAmount float64) (*model.Campaign, error) {
	// 验证活动数据
	if err := l.validateCampaign(title, description, goalAmount); err != nil {
		return nil, err
	}

	var campaign model.Campaign
	if err := l.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, fmt.Errorf("获取活动失败: %w", err)
	}

	updates := map[string]interface{}{
		"title":       title,
		"description": description,
		"goal_amount": goalAmount,
	}
	if err := l.db.Model(&campaign).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("更新活动失败: %w", err)
	}

	return &campaign, nil
}

// DeleteCampaign 删除活动并级联删除其捐款记录
func (l *CampaignLogic) DeleteCampaign(id int64) error {
	var campaign model.Campaign
	if err := l.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return fmt.Errorf("获取活动失败: %w", err)
	}

	// 开始事务
	tx := l.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 先删除活动下的捐款记录
	if err := tx.Where("campaign_id = ?", campaign.Id).Delete(&model.Donation{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("删除捐款记录失败: %w", err)
	}

	// 再删除活动本身
	if err := tx.Delete(&campaign).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("删除活动失败: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	return nil
}

// validateCampaign 验证活动数据
func (l *CampaignLogic) validateCampaign(title, description string, goalAmount float64) error {
	if title == "" {
		return newValidationError("活动标题不能为空")
	}
	if description == "" {
		return newValidationError("活动描述不能为空")
	}
	if goalAmount < 0 {
		return newValidationError("目标金额不能为负数")
	}
	return nil
}
