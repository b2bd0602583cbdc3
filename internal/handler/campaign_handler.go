package handler

import (
	"net/http"
	"strconv"

	"github.com/andrew21-mch/crowdfunding-api/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CampaignHandler 众筹活动处理器
type CampaignHandler struct {
	campaignLogic *logic.CampaignLogic
}

// NewCampaignHandler 创建众筹活动处理器
func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	return &CampaignHandler{
		campaignLogic: logic.NewCampaignLogic(db),
	}
}

// CreateCampaign 创建活动
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "未认证的请求")
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	campaign, err := h.campaignLogic.CreateCampaign(user.Id, req.Title, req.Description, req.GoalAmount)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "活动创建成功", CreateCampaignResponse{
		Campaign: ToCampaignResponse(campaign),
	})
}

// GetCampaigns 获取活动列表
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.campaignLogic.GetCampaigns()
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动列表成功", GetCampaignsResponse{
		Campaigns: ToCampaignResponseList(campaigns),
	})
}

// GetCampaign 获取活动详情
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	campaign, err := h.campaignLogic.GetCampaign(id)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "获取活动详情成功", GetCampaignResponse{
		Campaign: ToCampaignDetailResponse(campaign),
	})
}

// UpdateCampaign 更新活动
func (h *CampaignHandler) UpdateCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	campaign, err := h.campaignLogic.UpdateCampaign(id, req.Title, req.Description, req.GoalAmount)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动更新成功", CreateCampaignResponse{
		Campaign: ToCampaignResponse(campaign),
	})
}

// DeleteCampaign 删除活动
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	if err := h.campaignLogic.DeleteCampaign(id); err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "活动删除成功", nil)
}
