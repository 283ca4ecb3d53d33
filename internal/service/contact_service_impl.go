package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/repository"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ContactServiceImpl struct {
	contactRepo    repository.ContactRepository
	newsletterRepo repository.NewsletterRepository
	verifier       RecaptchaVerifier
	notifier       ContactNotifier
	publisher      EventPublisher
}

// CreateContactService wires the contact flow. A nil verifier disables
// reCAPTCHA checks.
func CreateContactService(contactRepo repository.ContactRepository, newsletterRepo repository.NewsletterRepository, verifier RecaptchaVerifier, notifier ContactNotifier, publisher EventPublisher) ContactService {
	return &ContactServiceImpl{
		contactRepo:    contactRepo,
		newsletterRepo: newsletterRepo,
		verifier:       verifier,
		notifier:       notifier,
		publisher:      publisher,
	}
}

func (s *ContactServiceImpl) SubmitContact(ctx context.Context, req dto.ContactRequest, remoteIP string) (contact domain.Contact, err error) {
	if s.verifier != nil {
		if err = s.verifier.Verify(ctx, req.RecaptchaToken, remoteIP); err != nil {
			return domain.Contact{}, err
		}
	}

	now := time.Now().UTC()
	contact = domain.Contact{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		Newsletter: req.Newsletter,
		Status:     domain.ContactStatusNew,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.contactRepo.AddContact(ctx, contact); err != nil {
		return domain.Contact{}, err
	}

	if req.Newsletter {
		name := req.Name
		_, err := s.Subscribe(ctx, dto.NewsletterRequest{Email: req.Email, Name: &name})
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "SubmitContact").Msg("Failed to subscribe to newsletter")
		}
	}

	if err := s.notifier.NotifyContact(ctx, contact); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "SubmitContact").Msg("Failed to send contact notification")
	}

	if err := s.publisher.Publish(ctx, dto.EventContactSubmitted, contact.ID, contact); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SubmitContact").Msg("Failed to publish contact_submitted")
	}

	log.Ctx(ctx).Info().Str("contact_id", contact.ID).Msg("New contact submission")

	return contact, nil
}

func (s *ContactServiceImpl) GetContacts(ctx context.Context, status *string, page pkgdto.Pagination) (data []domain.Contact, err error) {
	return s.contactRepo.GetContacts(ctx, status, page)
}

func (s *ContactServiceImpl) UpdateContactStatus(ctx context.Context, id string, status string) (contact domain.Contact, err error) {
	if !domain.IsValidContactStatus(status) {
		return domain.Contact{}, errs.ErrInvalidContactStatus
	}

	return s.contactRepo.UpdateContactStatus(ctx, id, status, time.Now().UTC())
}

// Subscribe returns an active subscription unchanged and reactivates an
// unsubscribed one.
func (s *ContactServiceImpl) Subscribe(ctx context.Context, req dto.NewsletterRequest) (subscription domain.NewsletterSubscription, err error) {
	email := strings.TrimSpace(req.Email)

	existing, err := s.newsletterRepo.GetSubscriptionByEmail(ctx, email)
	switch {
	case err == nil && existing.Subscribed:
		return existing, nil
	case err == nil:
		return s.newsletterRepo.Resubscribe(ctx, email)
	case !errors.Is(err, errs.ErrSubscriberNotFound):
		return domain.NewsletterSubscription{}, err
	}

	subscription = domain.NewsletterSubscription{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         req.Name,
		Subscribed:   true,
		SubscribedAt: time.Now().UTC(),
	}

	err = s.newsletterRepo.AddSubscription(ctx, subscription)
	if errors.Is(err, errs.ErrConflict) {
		// Lost a race with a concurrent subscribe for the same address.
		return s.newsletterRepo.GetSubscriptionByEmail(ctx, email)
	}
	if err != nil {
		return domain.NewsletterSubscription{}, err
	}

	if err := s.publisher.Publish(ctx, dto.EventNewsletterSubscribed, subscription.Email, subscription); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Subscribe").Msg("Failed to publish newsletter_subscribed")
	}

	return subscription, nil
}

func (s *ContactServiceImpl) Unsubscribe(ctx context.Context, email string) (err error) {
	return s.newsletterRepo.Unsubscribe(ctx, strings.TrimSpace(email), time.Now().UTC())
}
