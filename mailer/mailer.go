package mailer

import (
	"context"
	"eduak/config"
	"eduak/logger"

	"go.uber.org/zap"
)

// Sender delivers an HTML email.
type Sender interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

// Default is the process-wide sender. It logs instead of sending until main
// replaces it with New.
var Default Sender = NewLogSender()

// New picks SendGrid when an API key is configured, SMTP when credentials are
// present and the logging sender otherwise.
func New(cfg *config.Config) Sender {
	switch {
	case cfg.SendGridAPIKey != "":
		logger.Log.Info("mailer: using SendGrid")
		return NewSendGridSender(cfg.SendGridAPIKey, cfg.DefaultFromEmail)
	case cfg.EmailHostUser != "" && cfg.EmailHostPassword != "":
		logger.Log.Info("mailer: using SMTP", zap.String("host", cfg.EmailHost), zap.Int("port", cfg.EmailPort))
		return NewSMTPSender(SMTPConfig{
			Host:        cfg.EmailHost,
			Port:        cfg.EmailPort,
			Username:    cfg.EmailHostUser,
			Password:    cfg.EmailHostPassword,
			SenderEmail: cfg.DefaultFromEmail,
		})
	default:
		logger.Log.Warn("mailer: no email backend configured, emails will only be logged")
		return NewLogSender()
	}
}

type logSender struct{}

// NewLogSender returns a Sender that records messages in the log.
func NewLogSender() Sender {
	return logSender{}
}

func (logSender) Send(_ context.Context, to []string, subject, _ string) error {
	logger.Log.Info("email not sent, no backend configured",
		zap.Strings("to", to), zap.String("subject", subject))
	return nil
}
