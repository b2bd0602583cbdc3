package handler

import (
	"net/http"
	"strconv"

	"github.com/andrew21-mch/crowdfunding-api/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DonationHandler 捐款处理器
type DonationHandler struct {
	donationLogic *logic.DonationLogic
}

// NewDonationHandler 创建捐款处理器
func NewDonationHandler(db *gorm.DB) *DonationHandler {
	return &DonationHandler{
		donationLogic: logic.NewDonationLogic(db),
	}
}

// Donate 向活动捐款，未登录时记为匿名捐款
func (h *DonationHandler) Donate(c *gin.Context) {
	campaignId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的活动ID")
		return
	}

	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	donation, err := h.donationLogic.Donate(campaignId, req.Amount, currentUserId(c))
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "捐款成功", DonateResponse{
		Donation: ToDonationResponse(donation),
	})
}
