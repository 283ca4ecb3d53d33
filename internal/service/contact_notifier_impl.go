package service

import (
	"context"
	"fmt"

	"github.com/matifood/catalog-service/config"
	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type EmailContactNotifierImpl struct {
	config config.SMTPConfig
	send   func(message *gomail.Message) error
}

// CreateContactNotifier mails new contact submissions to the site owner.
// Without an SMTP host or recipient it returns a notifier that does nothing.
func CreateContactNotifier(cfg config.SMTPConfig) ContactNotifier {
	if cfg.Host == "" || cfg.NotifyEmail == "" {
		return NoopContactNotifierImpl{}
	}

	return &EmailContactNotifierImpl{
		config: cfg,
		send: func(message *gomail.Message) error {
			return utils.SendEmail(message, cfg.Username, cfg.Password, cfg.Host, cfg.Port)
		},
	}
}

func (n *EmailContactNotifierImpl) NotifyContact(ctx context.Context, contact domain.Contact) error {
	from := n.config.Sender
	if from == "" {
		from = n.config.Username
	}

	message := utils.BuildEmail(utils.EmailMessage{
		From:    from,
		To:      n.config.NotifyEmail,
		ReplyTo: contact.Email,
		Subject: fmt.Sprintf("New contact message from %s", contact.Name),
		Body:    contactEmailBody(contact),
	})

	if err := n.send(message); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	log.Ctx(ctx).Debug().Str("contact_id", contact.ID).Msg("Contact notification sent")

	return nil
}

func contactEmailBody(contact domain.Contact) string {
	newsletter := "no"
	if contact.Newsletter {
		newsletter = "yes"
	}

	return fmt.Sprintf("Name: %s\nEmail: %s\nNewsletter: %s\nReceived: %s\n\n%s\n",
		contact.Name, contact.Email, newsletter, contact.CreatedAt.Format("2006-01-02 15:04:05 MST"), contact.Message)
}

type NoopContactNotifierImpl struct{}

func (NoopContactNotifierImpl) NotifyContact(ctx context.Context, contact domain.Contact) error {
	return nil
}
