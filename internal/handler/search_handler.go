package handler

import (
	"net/http"
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/cache"
	"github.com/andrew21-mch/crowdfunding-api/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SearchHandler 活动搜索处理器
type SearchHandler struct {
	searchLogic *logic.SearchLogic
}

// NewSearchHandler 创建活动搜索处理器
func NewSearchHandler(db *gorm.DB, store *cache.Store, ttl time.Duration) *SearchHandler {
	return &SearchHandler{
		searchLogic: logic.NewSearchLogic(db, store, ttl),
	}
}

// SearchCampaigns 按标题和描述搜索活动
func (h *SearchHandler) SearchCampaigns(c *gin.Context) {
	title := c.Query("title")
	description := c.Query("description")

	campaigns, err := h.searchLogic.SearchCampaigns(title, description)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "搜索活动成功", SearchCampaignsResponse{
		Campaigns: ToCampaignResponseList(campaigns),
	})
}
