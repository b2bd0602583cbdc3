package handler

import (
	"time"

	"github.com/andrew21-mch/crowdfunding-api/internal/model"
	"github.com/gin-gonic/gin"
)

// Response 通用响应结构，code 与 HTTP 状态码一致
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Code    int         `json:"code"`
}

// 请求模型

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 更新用户资料请求
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// SendResetLinkRequest 发送密码重置邮件请求
type SendResetLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest 重置密码请求
type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateCampaignRequest 创建活动请求，字段约束由 logic 层校验
type CreateCampaignRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	GoalAmount  float64 `json:"goal_amount"`
}

// UpdateCampaignRequest 更新活动请求
type UpdateCampaignRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	GoalAmount  float64 `json:"goal_amount"`
}

// DonateRequest 捐款请求
type DonateRequest struct {
	Amount float64 `json:"amount"`
}

// 响应模型

// UserResponse 用户响应模型
type UserResponse struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

// CampaignResponse 活动响应模型
type CampaignResponse struct {
	Id            int64         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	GoalAmount    float64       `json:"goalAmount"`
	CurrentAmount float64       `json:"currentAmount"`
	User          *UserResponse `json:"user,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// CampaignDetailResponse 活动详情响应模型，带捐款记录
type CampaignDetailResponse struct {
	CampaignResponse
	Donations []DonationResponse `json:"donations"`
}

// DonationResponse 捐款记录响应模型
type DonationResponse struct {
	Id         int64     `json:"id"`
	CampaignId int64     `json:"campaignId"`
	UserId     *int64    `json:"userId"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterResponse 注册响应
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// ResetTokenResponse 重置令牌响应
type ResetTokenResponse struct {
	Token string `json:"token"`
}

// CreateCampaignResponse 创建活动响应
type CreateCampaignResponse struct {
	Campaign CampaignResponse `json:"campaign"`
}

// GetCampaignsResponse 活动列表响应
type GetCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

// GetCampaignResponse 活动详情响应
type GetCampaignResponse struct {
	Campaign CampaignDetailResponse `json:"campaign"`
}

// DonateResponse 捐款响应
type DonateResponse struct {
	Donation DonationResponse `json:"donation"`
}

// SearchCampaignsResponse 活动搜索响应
type SearchCampaignsResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
}

// 转换函数

// ToUserResponse 将用户数据库模型转换为响应模型
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}

// ToCampaignResponse 将活动数据库模型转换为响应模型
func ToCampaignResponse(campaign *model.Campaign) CampaignResponse {
	resp := CampaignResponse{
		Id:            campaign.Id,
		Title:         campaign.Title,
		Description:   campaign.Description,
		GoalAmount:    campaign.GoalAmount,
		CurrentAmount: campaign.CurrentAmount,
		CreatedAt:     campaign.CreatedAt,
		UpdatedAt:     campaign.UpdatedAt,
	}
	if campaign.User != nil {
		user := ToUserResponse(campaign.User)
		resp.User = &user
	}
	return resp
}

// ToCampaignResponseList 将活动数据库模型列表转换为响应模型列表
func ToCampaignResponseList(campaigns []model.Campaign) []CampaignResponse {
	result := make([]CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		result[i] = ToCampaignResponse(&campaign)
	}
	return result
}

// ToCampaignDetailResponse 将活动数据库模型转换为详情响应模型
func ToCampaignDetailResponse(campaign *model.Campaign) CampaignDetailResponse {
	return CampaignDetailResponse{
		CampaignResponse: ToCampaignResponse(campaign),
		Donations:        ToDonationResponseList(campaign.Donations),
	}
}

// ToDonationResponse 将捐款记录数据库模型转换为响应模型
func ToDonationResponse(donation *model.Donation) DonationResponse {
	return DonationResponse{
		Id:         donation.Id,
		CampaignId: donation.CampaignId,
		UserId:     donation.UserId,
		Amount:     donation.Amount,
		CreatedAt:  donation.CreatedAt,
	}
}

// ToDonationResponseList 将捐款记录数据库模型列表转换为响应模型列表
func ToDonationResponseList(donations []model.Donation) []DonationResponse {
	result := make([]DonationResponse, len(donations))
	for i, donation := range donations {
		result[i] = ToDonationResponse(&donation)
	}
	return result
}

// currentUser 获取上下文中的已认证用户
func currentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return nil, false
	}
	user, ok := v.(model.User)
	if !ok {
		return nil, false
	}
	return &user, true
}

// currentUserId 获取上下文中的用户ID，匿名请求返回 nil
func currentUserId(c *gin.Context) *int64 {
	v, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	id, ok := v.(int64)
	if !ok {
		return nil
	}
	return &id
}
