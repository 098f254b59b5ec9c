package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/donatinator/donatinator/internal/pkg/env"
)

// SendMail sends an HTML email via SMTP.
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendThankYou mails the donor a receipt-style thank you. A failure here is
// logged by SendMail and must never fail the donation itself.
func SendThankYou(to, siteTitle string, amount int64, currency string) error {
	if to == "" {
		return nil
	}

	subject := fmt.Sprintf("Thank you for supporting %s", siteTitle)
	body := fmt.Sprintf(
		"<p>Thank you for your donation of %s to %s.</p><p>Your support makes all the difference.</p>",
		FormatAmount(amount, currency), siteTitle,
	)
	return SendMail(to, subject, body)
}

// FormatAmount renders a minor-unit amount as e.g. "12.50 nzd".
func FormatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", amount/100, amount%100, currency)
}
