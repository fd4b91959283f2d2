// Package mail sends booking notification emails over SMTP. Sends are
// best-effort: the caller treats failures as advisory, never as a reason
// to fail the booking operation that triggered them.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// Config carries the SMTP endpoint and the restaurant details rendered
// into the messages.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration

	RestaurantName  string
	RestaurantPhone string
	ManagerEmail    string
}

// Client is the SMTP notification sender.
type Client struct {
	cfg Config
	log Logger
}

// NewClient creates a mail client.
func NewClient(cfg Config, log Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

// SendCustomerConfirmation emails the booking confirmation to the guest.
func (c *Client) SendCustomerConfirmation(ctx context.Context, booking *domain.Booking) error {
	body, err := renderCustomerEmail(c.cfg, booking)
	if err != nil {
		return fmt.Errorf("%w: customer confirmation: %v", ErrRenderTemplate, err)
	}

	subject := fmt.Sprintf("Booking Confirmation - %s", c.cfg.RestaurantName)
	if err := c.send(ctx, booking.Email, subject, body); err != nil {
		return err
	}

	c.log.Info("mail: customer confirmation sent for booking id=%d to=%s", booking.ID, booking.Email)
	return nil
}

// SendManagerAlert emails the new-booking alert to the restaurant.
func (c *Client) SendManagerAlert(ctx context.Context, booking *domain.Booking) error {
	body, err := renderManagerEmail(c.cfg, booking)
	if err != nil {
		return fmt.Errorf("%w: manager alert: %v", ErrRenderTemplate, err)
	}

	subject := fmt.Sprintf("New Booking - %s", c.cfg.RestaurantName)
	if err := c.send(ctx, c.cfg.ManagerEmail, subject, body); err != nil {
		return err
	}

	c.log.Info("mail: manager alert sent for booking id=%d", booking.ID)
	return nil
}

// send performs one SMTP exchange, bounded by the configured timeout and
// the context deadline, whichever is sooner.
func (c *Client) send(ctx context.Context, to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	deadline := time.Now().Add(c.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	conn, err := net.DialTimeout("tcp", addr, time.Until(deadline))
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrSendFailed, addr, err)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return fmt.Errorf("%w: set deadline: %v", ErrSendFailed, err)
	}

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: smtp handshake: %v", ErrSendFailed, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(c.tlsConfig()); err != nil {
			return fmt.Errorf("%w: starttls: %v", ErrSendFailed, err)
		}
	}

	if c.cfg.User != "" {
		auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Password, c.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("%w: auth: %v", ErrSendFailed, err)
		}
	}

	if err := client.Mail(fromAddress(c.cfg.From)); err != nil {
		return fmt.Errorf("%w: mail from: %v", ErrSendFailed, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("%w: rcpt to: %v", ErrSendFailed, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: data: %v", ErrSendFailed, err)
	}

	msg := buildMessage(c.cfg.From, to, subject, htmlBody)
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrSendFailed, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSendFailed, err)
	}

	return client.Quit()
}

// tlsConfig names the server we dialed so the STARTTLS handshake can
// verify its certificate.
func (c *Client) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: c.cfg.Host}
}

func buildMessage(from, to, subject, htmlBody string) string {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return b.String()
}

// fromAddress strips an RFC 5322 display name down to the bare address
// for the SMTP envelope.
func fromAddress(from string) string {
	if start := strings.LastIndex(from, "<"); start != -1 {
		if end := strings.LastIndex(from, ">"); end > start {
			return from[start+1 : end]
		}
	}
	return from
}
