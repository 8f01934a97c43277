package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/AndikaSaputra/RumahLink/internal/pkg/env"
)

// SendMail sends an HTML email via SMTP
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

// SendPaymentReceipt notifies a buyer that their subscription purchase
// completed.
func SendPaymentReceipt(to, orderID string, amount int64, days int) error {
	subject := "Pembayaran berhasil - RumahLink Premium"
	body := fmt.Sprintf(
		"<p>Pembayaran untuk pesanan <b>%s</b> sebesar Rp%d telah kami terima.</p>"+
			"<p>Akses premium Anda aktif selama %d hari.</p>",
		orderID, amount, days,
	)
	return SendMail(to, subject, body)
}

// SendListingApproved notifies a seller that their listing went live.
func SendListingApproved(to, title string) error {
	subject := "Iklan Anda telah tayang - RumahLink"
	body := fmt.Sprintf("<p>Iklan <b>%s</b> telah disetujui dan sekarang tayang.</p>", title)
	return SendMail(to, subject, body)
}
