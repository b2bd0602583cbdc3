package task

import (
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/cache"
	"github.com/andrew21-mch/crowdfunding-api/internal/config"
	"github.com/andrew21-mch/crowdfunding-api/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// CachePurgeJob 搜索缓存清理任务
type CachePurgeJob struct {
	store  *cache.Store
	config *config.Config
}

// NewCachePurgeJob 创建搜索缓存清理任务
func NewCachePurgeJob(store *cache.Store, cfg *config.Config) *CachePurgeJob {
	return &CachePurgeJob{
		store:  store,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *CachePurgeJob) GetName() string {
	return "cache_purge"
}

// GetSchedule 获取调度配置
func (j *CachePurgeJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.PurgeInterval) * time.Second)
}

// Execute 执行任务
func (j *CachePurgeJob) Execute() {
	purged := j.store.PurgeExpired()
	if purged > 0 {
		logger.Debug("Purged %d expired cache entries", purged)
	}
}
