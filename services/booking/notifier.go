package booking

import (
	"fmt"

	"brightsmile/config"

	"gopkg.in/gomail.v2"
)

// Notifier sends the confirmation for a persisted booking. Strictly
// best-effort: the orchestrator observes a returned error by logging only.
type Notifier interface {
	Configured() bool
	Send(record BookingRecord) error
}

// EmailNotifier mails a plain-text confirmation to the patient over
// implicit-TLS SMTP.
type EmailNotifier struct {
	dialer     *gomail.Dialer
	from       string
	clinicName string
}

// NewEmailNotifier builds the notifier from configuration. With SMTP_USER
// or SMTP_PASS missing it stays unconfigured and Send is never called.
func NewEmailNotifier() *EmailNotifier {
	cfg := config.AppConfig

	n := &EmailNotifier{
		from:       cfg.SMTPUser,
		clinicName: cfg.ClinicName,
	}
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
		return n
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	// Port 465 is implicit TLS; gomail switches to SSL on dial.
	dialer.SSL = cfg.SMTPPort == 465
	n.dialer = dialer
	return n
}

func (n *EmailNotifier) Configured() bool {
	return n.dialer != nil
}

func (n *EmailNotifier) Send(record BookingRecord) error {
	if n.dialer == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", n.from, n.clinicName)
	msg.SetHeader("To", record.Email)
	msg.SetHeader("Subject", "Dental Appointment Confirmed")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nYour dental appointment for %s on %s has been booked.\n\nThank you!",
		record.Name, record.Treatment, record.FormattedDate,
	))

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}
