package mailer

import (
	"fmt"

	"github.com/andrew21-mch/crowdfunding-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer 事务邮件发送接口
type Mailer interface {
	SendVerificationEmail(email, name, link string) error
	SendPasswordResetEmail(email, token string) error
}

// SMTP 基于 SMTP 的邮件发送
type SMTP struct {
	cfg config.SMTPConfig
}

// New 创建 SMTP 邮件发送器
func New(cfg config.SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

// SendVerificationEmail 发送邮箱验证邮件
func (s *SMTP) SendVerificationEmail(email, name, link string) error {
	body := fmt.Sprintf("Hello %s,\n\nPlease verify your email address by visiting the link below:\n\n%s\n", name, link)
	return s.send(email, "Verify Your Email Address", body)
}

// SendPasswordResetEmail 发送密码重置邮件
func (s *SMTP) SendPasswordResetEmail(email, token string) error {
	body := fmt.Sprintf("Your password reset token is: %s\n\nIf you did not request a password reset, no further action is required.\n", token)
	return s.send(email, "Reset Password Notification", body)
}

func (s *SMTP) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// Noop 不发送邮件，测试用
type Noop struct{}

func (Noop) SendVerificationEmail(email, name, link string) error { return nil }

func (Noop) SendPasswordResetEmail(email, token string) error { return nil }
