package mailing

import (
	"SipMate-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func SendVerificationMail(toEmail string, username string, token string) error {
	appURL := utils.GetConfig("APP_URL")
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>Welcome to SipMate! Please confirm your email address by clicking the link below:</p>
		<p><a href="%s/api/v1/users/verify?token=%s">Verify my email</a></p>
		<p>If you did not create a SipMate account, you can ignore this message.</p>`,
		username, appURL, token,
	)
	return SendMail(toEmail, "Verify your SipMate account", body)
}

func SendResetPasswordMail(toEmail string, username string, token string) error {
	appURL := utils.GetConfig("APP_URL")
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
		<p>We received a request to reset your SipMate password. Use the link below to choose a new one:</p>
		<p><a href="%s/reset-password?token=%s">Reset my password</a></p>
		<p>This link expires in 30 minutes. If you did not request a reset, ignore this message.</p>`,
		username, appURL, token,
	)
	return SendMail(toEmail, "Reset your SipMate password", body)
}
