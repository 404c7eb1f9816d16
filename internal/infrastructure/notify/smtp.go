// Package notify implements the outbound email channel over SMTP.
package notify

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/freshbasket/grocery-system/internal/core/domain"
	"github.com/freshbasket/grocery-system/internal/core/ports"
)

// Config carries the SMTP settings. Missing credentials disable the channel:
// Notify then returns domain.ErrNotifierDisabled, which consumers treat as a
// non-fatal outcome.
type Config struct {
	Host     string
	Port     int
	From     string
	Password string
}

// Configured reports whether credentials are present.
func (c Config) Configured() bool {
	return c.From != "" && c.Password != ""
}

// SMTPNotifier delivers a single notification per call.
type SMTPNotifier struct {
	from   string
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	n := &SMTPNotifier{from: cfg.From}
	if cfg.Configured() {
		n.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.From, cfg.Password)
	}
	return n
}

// Notify sends one HTML email. gomail has no context support, so the dial and
// send run in a goroutine and the ctx deadline bounds how long the caller
// waits; an abandoned send finishes (or fails) in the background.
func (n *SMTPNotifier) Notify(ctx context.Context, msg ports.Notification) error {
	if n.dialer == nil {
		return domain.ErrNotifierDisabled
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	errCh := make(chan error, 1)
	go func() {
		errCh <- n.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	}
}
