package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/wjs20/weight-tracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

type Params struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Mailer sends messages over SMTP with implicit TLS (port 465 style).
// The account mails itself: sender and recipient are both Username.
type Mailer struct {
	host string
	addr string
	auth smtp.Auth
	from string
}

func NewMailer(params Params) *Mailer {
	return &Mailer{
		host: params.Host,
		addr: fmt.Sprintf("%s:%d", params.Host, params.Port),
		auth: smtp.PlainAuth("", params.Username, params.Password, params.Host),
		from: params.Username,
	}
}

func (m *Mailer) Send(ctx context.Context, msg Message) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mail.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	content := msg.render(m.from, m.from)

	dialer := &net.Dialer{Timeout: 30 * time.Second}
	conn, err := tls.DialWithDialer(dialer, "tcp", m.addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("connect to %s: %w", m.addr, err)
	}
	defer conn.Close()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(m.auth); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(m.from); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("open data writer: %w", err)
	}
	if _, err := writer.Write([]byte(content)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close data writer: %w", err)
	}

	log.Debugf("mail [%s] sent to %s", msg.Subject, m.from)

	return client.Quit()
}
