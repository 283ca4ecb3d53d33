// Package memory is a process-local implementation of the repository
// contracts. It backs STORE_DRIVER=memory and the service tests.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/filter"
	"github.com/matifood/catalog-service/internal/repository"
	pkgdto "github.com/matifood/catalog-service/pkg/dto"
	"github.com/matifood/catalog-service/pkg/errs"
)

type Store struct {
	mu         sync.RWMutex
	products   []domain.Product
	reviews    []domain.Review
	contacts   []domain.Contact
	newsletter []domain.NewsletterSubscription
	events     []domain.AnalyticsEvent
}

func CreateMemoryStore() *Store {
	return &Store{}
}

// Repositories exposes s through the repository contracts.
func (s *Store) Repositories() repository.Store {
	return repository.Store{
		Products:   s,
		Reviews:    s,
		Contacts:   s,
		Newsletter: s,
		Analytics:  s,
		Health:     s,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) AddProduct(ctx context.Context, data domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.productIndex(data.ID) >= 0 {
		return errs.ErrConflict
	}
	s.products = append(s.products, data)
	return nil
}

func (s *Store) AddProducts(ctx context.Context, data []domain.Product) error {
	for _, p := range data {
		if err := s.AddProduct(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) GetProducts(ctx context.Context, f filter.ProductFilter, page pkgdto.Pagination) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []domain.Product{}
	for _, p := range s.products {
		if f.Match(p) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, page), nil
}

func (s *Store) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.productIndex(id)
	if i < 0 {
		return domain.Product{}, errs.ErrProductNotFound
	}
	return s.products[i], nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, data domain.ProductUpdate, updatedAt time.Time) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return domain.Product{}, errs.ErrProductNotFound
	}
	data.Apply(&s.products[i])
	s.products[i].UpdatedAt = updatedAt
	return s.products[i], nil
}

func (s *Store) UpdateProductRating(ctx context.Context, id string, rating float64, count int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return false, nil
	}
	s.products[i].Rating = rating
	s.products[i].ReviewCount = count
	return true, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return errs.ErrProductNotFound
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.products)), nil
}

func (s *Store) AddReview(ctx context.Context, data domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append(s.reviews, data)
	return nil
}

func (s *Store) AddReviews(ctx context.Context, data []domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append(s.reviews, data...)
	return nil
}

func (s *Store) GetReviews(ctx context.Context, f filter.ReviewFilter, page pkgdto.Pagination) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []domain.Review{}
	for i := len(s.reviews) - 1; i >= 0; i-- {
		if f.Match(s.reviews[i]) {
			matched = append(matched, s.reviews[i])
		}
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})
	return paginate(matched, page), nil
}

func (s *Store) GetReviewByID(ctx context.Context, id string) (domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Review{}, errs.ErrReviewNotFound
}

func (s *Store) UpdateReviewModeration(ctx context.Context, id string, data domain.ReviewModeration) (domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == id {
			data.Apply(&s.reviews[i])
			return s.reviews[i], nil
		}
	}
	return domain.Review{}, errs.ErrReviewNotFound
}

func (s *Store) AggregateRating(ctx context.Context, productID string) (domain.RatingSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum, count int
	for _, r := range s.reviews {
		if r.ProductID != nil && *r.ProductID == productID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return domain.RatingSummary{}, nil
	}
	return domain.RatingSummary{Average: float64(sum) / float64(count), Count: count}, nil
}

func (s *Store) CountReviews(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.reviews)), nil
}

func (s *Store) AddContact(ctx context.Context, data domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = append(s.contacts, data)
	return nil
}

func (s *Store) GetContacts(ctx context.Context, status *string, page pkgdto.Pagination) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []domain.Contact{}
	for i := len(s.contacts) - 1; i >= 0; i-- {
		c := s.contacts[i]
		if status != nil && *status != "" && c.Status != *status {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].CreatedAt.After(matched[b].CreatedAt)
	})
	return paginate(matched, page), nil
}

func (s *Store) UpdateContactStatus(ctx context.Context, id string, status string, updatedAt time.Time) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].Status = status
			s.contacts[i].UpdatedAt = updatedAt
			return s.contacts[i], nil
		}
	}
	return domain.Contact{}, errs.ErrContactNotFound
}

func (s *Store) CountContacts(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.contacts)), nil
}

func (s *Store) AddSubscription(ctx context.Context, data domain.NewsletterSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subscriptionIndex(data.Email) >= 0 {
		return errs.ErrConflict
	}
	s.newsletter = append(s.newsletter, data)
	return nil
}

func (s *Store) GetSubscriptionByEmail(ctx context.Context, email string) (domain.NewsletterSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.subscriptionIndex(email)
	if i < 0 {
		return domain.NewsletterSubscription{}, errs.ErrSubscriberNotFound
	}
	return s.newsletter[i], nil
}

func (s *Store) Resubscribe(ctx context.Context, email string) (domain.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.subscriptionIndex(email)
	if i < 0 {
		return domain.NewsletterSubscription{}, errs.ErrSubscriberNotFound
	}
	s.newsletter[i].Subscribed = true
	s.newsletter[i].UnsubscribedAt = nil
	return s.newsletter[i], nil
}

func (s *Store) Unsubscribe(ctx context.Context, email string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.subscriptionIndex(email)
	if i < 0 {
		return errs.ErrSubscriberNotFound
	}
	s.newsletter[i].Subscribed = false
	s.newsletter[i].UnsubscribedAt = &at
	return nil
}

func (s *Store) CountActiveSubscribers(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, sub := range s.newsletter {
		if sub.Subscribed {
			count++
		}
	}
	return count, nil
}

func (s *Store) GetRecentSubscriptions(ctx context.Context, limit int) ([]domain.NewsletterSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := []domain.NewsletterSubscription{}
	for i := len(s.newsletter) - 1; i >= 0; i-- {
		if s.newsletter[i].Subscribed {
			active = append(active, s.newsletter[i])
		}
	}
	sort.SliceStable(active, func(a, b int) bool {
		return active[a].SubscribedAt.After(active[b].SubscribedAt)
	})
	return paginate(active, pkgdto.Pagination{Limit: limit}), nil
}

func (s *Store) AddEvent(ctx context.Context, data domain.AnalyticsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, data)
	return nil
}

// Events returns a copy of every stored analytics event.
func (s *Store) Events() []domain.AnalyticsEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.events)
}

func (s *Store) productIndex(id string) int {
	return slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ID == id })
}

func (s *Store) subscriptionIndex(email string) int {
	return slices.IndexFunc(s.newsletter, func(n domain.NewsletterSubscription) bool { return n.Email == email })
}

func paginate[T any](items []T, page pkgdto.Pagination) []T {
	if page.Skip >= len(items) {
		return []T{}
	}
	items = items[page.Skip:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}
