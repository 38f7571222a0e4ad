package mailer

import (
	"context"
	"eduak/logger"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	SenderEmail string
}

type smtpSender struct {
	cfg SMTPConfig
	d   *gomail.Dialer
}

func NewSMTPSender(cfg SMTPConfig) Sender {
	return &smtpSender{
		cfg: cfg,
		d:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *smtpSender) Send(ctx context.Context, to []string, subject, html string) error {
	if s.cfg.Host == "" || s.cfg.Username == "" || s.cfg.Password == "" || s.cfg.SenderEmail == "" {
		return fmt.Errorf("SMTP configuration is incomplete")
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients provided for email")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SenderEmail)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	done := make(chan error, 1)
	go func() {
		done <- s.d.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("email sending cancelled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			logger.Log.Error("Failed to send email", zap.Error(err), zap.Strings("to", to), zap.String("subject", subject))
			return fmt.Errorf("failed to send email: %w", err)
		}
	}

	logger.Log.Info("Email sent successfully", zap.Strings("to", to), zap.String("subject", subject))
	return nil
}
