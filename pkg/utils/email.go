package utils

import "gopkg.in/gomail.v2"

type EmailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

func BuildEmail(msg EmailMessage) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	return m
}

func SendEmail(message *gomail.Message, sender string, password string, smtpServer string, smtpPort int) error {
	d := gomail.NewDialer(smtpServer, smtpPort, sender, password)

	if err := d.DialAndSend(message); err != nil {
		return err
	}

	return nil
}
