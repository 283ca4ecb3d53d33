package service

import (
	"context"
	"errors"
	"testing"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/repository/memory"
	"github.com/matifood/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactService(store *memory.Store, verifier RecaptchaVerifier, notifier ContactNotifier) ContactService {
	return CreateContactService(store, store, verifier, notifier, CreateNoopEventPublisher())
}

func TestContactService_SubmitContact(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	notifier := new(mockContactNotifier)
	notifier.On("NotifyContact", ctx, mock.AnythingOfType("domain.Contact")).Return(nil).Once()

	svc := newContactService(store, nil, notifier)
	contact, err := svc.SubmitContact(ctx, dto.ContactRequest{
		Name:       "Ana",
		Email:      "ana@example.com",
		Message:    "Hello",
		Newsletter: true,
	}, "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusNew, contact.Status)
	notifier.AssertExpectations(t)

	sub, err := store.GetSubscriptionByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, sub.Subscribed)
	require.NotNil(t, sub.Name)
	assert.Equal(t, "Ana", *sub.Name)
}

func TestContactService_SubmitContactIgnoresNotifierFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	notifier := new(mockContactNotifier)
	notifier.On("NotifyContact", ctx, mock.Anything).Return(errors.New("smtp down")).Once()

	svc := newContactService(store, nil, notifier)
	_, err := svc.SubmitContact(ctx, dto.ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi"}, "")

	require.NoError(t, err)
	count, err := store.CountContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestContactService_SubmitContactRecaptcha(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected token stores nothing", func(t *testing.T) {
		store := memory.CreateMemoryStore()
		verifier := new(mockRecaptchaVerifier)
		verifier.On("Verify", ctx, "bad", "10.0.0.1").Return(errs.ErrRecaptchaFailed).Once()

		svc := newContactService(store, verifier, NoopContactNotifierImpl{})
		_, err := svc.SubmitContact(ctx, dto.ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi", RecaptchaToken: "bad"}, "10.0.0.1")

		assert.ErrorIs(t, err, errs.ErrRecaptchaFailed)
		count, err := store.CountContacts(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("accepted token", func(t *testing.T) {
		store := memory.CreateMemoryStore()
		verifier := new(mockRecaptchaVerifier)
		verifier.On("Verify", ctx, "good", "").Return(nil).Once()

		svc := newContactService(store, verifier, NoopContactNotifierImpl{})
		_, err := svc.SubmitContact(ctx, dto.ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi", RecaptchaToken: "good"}, "")

		require.NoError(t, err)
		verifier.AssertExpectations(t)
	})
}

func TestContactService_UpdateContactStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	require.NoError(t, store.AddContact(ctx, domain.Contact{ID: "c1", Status: domain.ContactStatusNew}))

	svc := newContactService(store, nil, NoopContactNotifierImpl{})

	contact, err := svc.UpdateContactStatus(ctx, "c1", domain.ContactStatusReplied)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusReplied, contact.Status)

	_, err = svc.UpdateContactStatus(ctx, "c1", "archived")
	assert.ErrorIs(t, err, errs.ErrInvalidContactStatus)

	_, err = svc.UpdateContactStatus(ctx, "missing", domain.ContactStatusRead)
	assert.ErrorIs(t, err, errs.ErrContactNotFound)
}

func TestContactService_NewsletterLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	svc := newContactService(store, nil, NoopContactNotifierImpl{})

	first, err := svc.Subscribe(ctx, dto.NewsletterRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.True(t, first.Subscribed)

	again, err := svc.Subscribe(ctx, dto.NewsletterRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	require.NoError(t, svc.Unsubscribe(ctx, "ana@example.com"))
	sub, err := store.GetSubscriptionByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.False(t, sub.Subscribed)
	assert.NotNil(t, sub.UnsubscribedAt)

	back, err := svc.Subscribe(ctx, dto.NewsletterRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, back.ID)
	assert.True(t, back.Subscribed)
	assert.Nil(t, back.UnsubscribedAt)

	assert.ErrorIs(t, svc.Unsubscribe(ctx, "nobody@example.com"), errs.ErrSubscriberNotFound)
}
