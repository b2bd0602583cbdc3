package logic

import "errors"

// 业务错误，由 handler 层映射为 HTTP 状态码
var (
	ErrCampaignNotFound   = errors.New("活动不存在")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
)

// ValidationError 参数校验错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidation 判断是否为参数校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound 判断是否为记录不存在错误
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCampaignNotFound) || errors.Is(err, ErrUserNotFound)
}
