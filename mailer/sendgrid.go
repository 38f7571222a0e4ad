package mailer

import (
	"context"
	"eduak/logger"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type sendGridSender struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridSender(apiKey, from string) Sender {
	return &sendGridSender{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail("Eduak", from),
	}
}

func (s *sendGridSender) Send(ctx context.Context, to []string, subject, html string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients provided for email")
	}
	for _, addr := range to {
		msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", addr), "", html)
		resp, err := s.client.SendWithContext(ctx, msg)
		if err != nil {
			return fmt.Errorf("sendgrid: %w", err)
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
		}
	}
	logger.Log.Info("Email sent successfully", zap.Strings("to", to), zap.String("subject", subject))
	return nil
}
