package mailing

import (
	"fmt"
	"strconv"

	"freezer-backend/internal/utils"

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
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
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

	if err := dialer.DialAndSend(mailer); err != nil {
		return err
	}

	return nil
}

// SendNewUserNotification tells the ops mailbox a new user was seeded.
// No-op when SMTP is not configured.
func SendNewUserNotification(userID string) error {
	emailConfig := LoadMailConfig()
	if emailConfig.SMTPHost == "" || emailConfig.SMTPEmail == "" {
		return nil
	}

	body := fmt.Sprintf(
		"<p>New user <b>%s</b> was bootstrapped with the default freezers.</p>",
		userID,
	)
	return SendMail(emailConfig.SMTPEmail, "New freezer user seeded", body)
}
