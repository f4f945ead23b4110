package mail

import (
	"bytes"
	"context"
	"fmt"

	"mtr_backend/internal/infrastructure/config"
	"mtr_backend/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPNotifier delivers outbound mail through the configured SMTP relay.
type SMTPNotifier struct {
	client *gomail.Client
	from   string
	log    *zap.Logger
}

func NewSMTPNotifier(cfg config.Mail, log *zap.Logger) (*SMTPNotifier, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPNotifier{client: client, from: cfg.From, log: log}, nil
}

func (n *SMTPNotifier) Send(ctx context.Context, m interfaces.Email) error {
	msg := gomail.NewMsg()

	from := m.From
	if from == "" {
		from = n.from
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return fmt.Errorf("mail reply-to: %w", err)
		}
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, m.Text)
	if m.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, m.HTML)
	}

	for _, part := range m.Attachments {
		if err := msg.AttachReader(part.Filename, bytes.NewReader(part.Data),
			gomail.WithFileContentType(gomail.ContentType(part.MimeType))); err != nil {
			return fmt.Errorf("mail attach %s: %w", part.Filename, err)
		}
	}

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	n.log.Info("mail sent",
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.Int("attachments", len(m.Attachments)))
	return nil
}

// NoopNotifier stands in when no SMTP relay is configured. Sends are
// logged and dropped so document issuance still completes.
type NoopNotifier struct {
	log *zap.Logger
}

func NewNoopNotifier(log *zap.Logger) *NoopNotifier {
	return &NoopNotifier{log: log}
}

func (n *NoopNotifier) Send(_ context.Context, m interfaces.Email) error {
	n.log.Warn("smtp not configured, mail dropped",
		zap.String("to", m.To),
		zap.String("subject", m.Subject))
	return nil
}

// NewNotifier picks the SMTP notifier when a host is configured and the
// noop notifier otherwise.
func NewNotifier(cfg config.Mail, log *zap.Logger) (interfaces.INotifier, error) {
	if cfg.Host == "" {
		return NewNoopNotifier(log), nil
	}
	return NewSMTPNotifier(cfg, log)
}
