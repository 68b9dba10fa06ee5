package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendEmail delivers an HTML notification through the configured SMTP relay.
// With no SMTP_HOST set (local development) it logs and drops the message so
// booking flows keep working without a mail server.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("SMTP not configured, dropping email to %s (%s)", to, subject)
		return nil
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", os.Getenv("EMAIL_USER"), "PetConnect")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(host, port, os.Getenv("EMAIL_USER"), os.Getenv("EMAIL_PASS"))

	return d.DialAndSend(m)
}
