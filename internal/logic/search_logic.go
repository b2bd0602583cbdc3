package logic

import (
	"fmt"
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/cache"
	"github.com/andrew21-mch/crowdfunding-api/internal/model"
	"gorm.io/gorm"
)

// SearchLogic 活动搜索业务逻辑，查询结果按指纹缓存
type SearchLogic struct {
	db    *gorm.DB
	cache *cache.Store
	ttl   time.Duration
}

// NewSearchLogic 创建活动搜索业务逻辑
func NewSearchLogic(db *gorm.DB, store *cache.Store, ttl time.Duration) *SearchLogic {
	return &SearchLogic{
		db:    db,
		cache: store,
		ttl:   ttl,
	}
}

// Fingerprint 由过滤条件推导缓存键。
// 键里带上过滤字段名，不同字段组合不会串到同一个键。
func Fingerprint(title, description string) string {
	return "title=" + title + "&description=" + description
}

// SearchCampaigns 按标题和描述过滤活动，条件同时给出时取交集。
// 命中缓存时原样返回缓存结果，缓存窗口内的脏读是可接受的。
func (l *SearchLogic) SearchCampaigns(title, description string) ([]model.Campaign, error) {
	key := Fingerprint(title, description)

	if cached, ok := l.cache.Get(key); ok {
		return cached.([]model.Campaign), nil
	}

	query := l.db.Preload("User")
	if title != "" {
		query = query.Where("title ILIKE ?", "%"+title+"%")
	}
	if description != "" {
		query = query.Where("description ILIKE ?", "%"+description+"%")
	}

	var campaigns []model.Campaign
	if err := query.Find(&campaigns).Error; err != nil {
		return nil, fmt.Errorf("搜索活动失败: %w", err)
	}

	l.cache.Set(key, campaigns, l.ttl)

	return campaigns, nil
}
