package email

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/metrics"
	"github.com/jhillyerd/enmime"
	"github.com/resend/resend-go/v2"
)

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender logs emails instead of sending them. Used with MAIL_PROVIDER=log.
type LogSender struct {
	logger *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "email (log provider)", "to", to, "subject", subject, "body", body)
	return nil
}

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func (s *ResendSender) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// SMTPSender builds an HTML MIME message and hands it to an SMTP relay.
// net/smtp upgrades to STARTTLS whenever the server offers it.
type SMTPSender struct {
	transport enmime.Sender
	addr      string
	from      string
}

// Send checks ctx before handing off, but enmime's SMTP sender takes no context,
// so a relay that stalls mid-session is not interrupted by cancellation.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	err := enmime.Builder().
		From("", s.from).
		To("", to).
		Subject(subject).
		HTML([]byte(body)).
		Send(s.transport)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	return &SMTPSender{
		transport: enmime.NewSMTP(addr, auth),
		addr:      addr,
		from:      from,
	}
}

// Ping opens and closes a TCP connection to the relay for readiness checks.
func (s *SMTPSender) Ping(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	return conn.Close()
}

type SenderConfig struct {
	Provider     string // smtp, resend or log
	From         string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	ResendAPIKey string
}

// NewSender picks the transport named by cfg.Provider. Unknown providers fall
// back to logging so a misconfigured local setup never mails real people.
func NewSender(cfg SenderConfig, logger *slog.Logger) Sender {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.From)
	case "resend":
		return &ResendSender{
			client: resend.NewClient(cfg.ResendAPIKey),
			from:   cfg.From,
		}
	default:
		return &LogSender{logger: logger}
	}
}

// Mailer is the outbound-mail entry point. When disabled, SendEmail does
// nothing and reports success.
type Mailer struct {
	sender  Sender
	enabled bool
	logger  *slog.Logger
}

func NewMailer(sender Sender, enabled bool, logger *slog.Logger) *Mailer {
	return &Mailer{
		sender:  sender,
		enabled: enabled,
		logger:  logger.With("component", "mailer"),
	}
}

func (m *Mailer) SendEmail(ctx context.Context, subject, body, to string) error {
	if !m.enabled {
		m.logger.DebugContext(ctx, "mailing disabled, skipping send", "to", to)
		metrics.EmailsTotal.WithLabelValues("skipped").Inc()
		return nil
	}

	if err := m.sender.Send(ctx, to, subject, body); err != nil {
		metrics.EmailsTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %w", domain.ErrMailDelivery, err)
	}

	metrics.EmailsTotal.WithLabelValues("sent").Inc()
	return nil
}
