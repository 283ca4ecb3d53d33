package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/matifood/catalog-service/internal/domain"
	"github.com/matifood/catalog-service/internal/dto"
	"github.com/matifood/catalog-service/internal/repository/memory"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	failures int
	calls    int
	messages []kafka.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.calls++
	if w.calls <= w.failures {
		return errors.New("leader not available")
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

type fakeReader struct {
	messages []kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func TestKafkaEventPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	writer := &fakeWriter{failures: 1}
	publisher := &KafkaEventPublisherImpl{writer: writer, backoff: time.Millisecond}

	err := publisher.Publish(ctx, dto.EventReviewCreated, "p1", map[string]string{"id": "r1"})

	require.NoError(t, err)
	assert.Equal(t, 2, writer.calls)
	require.Len(t, writer.messages, 1)
	assert.Equal(t, []byte("p1"), writer.messages[0].Key)

	var msg dto.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &msg))
	assert.Equal(t, dto.EventReviewCreated, msg.EventType)
	assert.Equal(t, map[string]interface{}{"id": "r1"}, msg.Data)
}

func TestKafkaEventPublisher_GivesUpAfterRetries(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	publisher := &KafkaEventPublisherImpl{writer: writer, backoff: time.Millisecond}

	err := publisher.Publish(context.Background(), dto.EventContactSubmitted, "", "payload")

	assert.Error(t, err)
	assert.Equal(t, publishMaxRetries, writer.calls)
}

func TestKafkaEventPublisher_NoBackoffAfterLastAttempt(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	publisher := &KafkaEventPublisherImpl{writer: writer, backoff: 100 * time.Millisecond}

	start := time.Now()
	err := publisher.Publish(context.Background(), dto.EventReviewCreated, "p1", "payload")
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Equal(t, publishMaxRetries, writer.calls)
	// Backoff grows 100ms, 200ms between attempts. A third wait would add 300ms.
	assert.GreaterOrEqual(t, elapsed, 300*time.Millisecond)
	assert.Less(t, elapsed, 550*time.Millisecond)
}

type blockingPublisher struct {
	release chan struct{}
}

func (p blockingPublisher) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	<-p.release
	return nil
}

func TestAsyncEventPublisher(t *testing.T) {
	t.Run("delivers after the request context is cancelled", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := CreateAsyncEventPublisher(&KafkaEventPublisherImpl{writer: writer, backoff: time.Millisecond})

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, publisher.Publish(ctx, dto.EventReviewCreated, "p1", "payload"))
		cancel()

		require.NoError(t, publisher.(EventDrainer).Drain(context.Background()))
		assert.Len(t, writer.messages, 1)
	})

	t.Run("drain gives up when its context expires", func(t *testing.T) {
		next := blockingPublisher{release: make(chan struct{})}
		defer close(next.release)
		publisher := CreateAsyncEventPublisher(next)

		require.NoError(t, publisher.Publish(context.Background(), dto.EventReviewCreated, "", "payload"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := publisher.(EventDrainer).Drain(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestAddReview_DoesNotWaitForFailingBroker(t *testing.T) {
	ctx := context.Background()
	store := memory.CreateMemoryStore()
	require.NoError(t, store.AddProduct(ctx, domain.Product{ID: "p1"}))

	writer := &fakeWriter{failures: 100}
	publisher := CreateAsyncEventPublisher(&KafkaEventPublisherImpl{writer: writer, backoff: 200 * time.Millisecond})
	svc := CreateReviewService(store, CreateRatingAggregator(store, store, publisher), publisher)

	start := time.Now()
	_, err := svc.AddReview(ctx, dto.ReviewRequest{ProductID: strPtr("p1"), CustomerName: "Ana", Rating: 5, Comment: "ok"})
	elapsed := time.Since(start)

	require.NoError(t, err)
	// Each event spends 600ms retrying before it is dropped.
	assert.Less(t, elapsed, 300*time.Millisecond)

	product, err := store.GetProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, product.ReviewCount)

	drainCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, publisher.(EventDrainer).Drain(drainCtx))

	writer.mu.Lock()
	defer writer.mu.Unlock()
	// review_created and product_rating_updated both exhaust their retries.
	assert.Equal(t, 2*publishMaxRetries, writer.calls)
	assert.Empty(t, writer.messages)
}

func TestEventConsumer_RecomputesRequestedProduct(t *testing.T) {
	recompute, err := json.Marshal(dto.KafkaMessage{
		EventType: dto.EventRecomputeProductRating,
		Data:      dto.ProductRatingEvent{ProductID: "p1"},
	})
	require.NoError(t, err)

	other, err := json.Marshal(dto.KafkaMessage{EventType: dto.EventReviewCreated, Data: map[string]string{"id": "r1"}})
	require.NoError(t, err)

	reader := &fakeReader{messages: []kafka.Message{
		{Value: []byte("not json")},
		{Value: other},
		{Value: recompute},
	}}

	aggregator := new(mockRatingAggregator)
	aggregator.On("Recompute", context.Background(), "p1").Once()

	CreateEventConsumer(reader, aggregator).ConsumeEvent(context.Background())

	aggregator.AssertExpectations(t)
}
