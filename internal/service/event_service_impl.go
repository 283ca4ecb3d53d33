package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/matifood/catalog-service/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const publishMaxRetries = 3

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type KafkaEventPublisherImpl struct {
	writer  MessageWriter
	backoff time.Duration
}

func CreateKafkaEventPublisher(writer MessageWriter) EventPublisher {
	return &KafkaEventPublisherImpl{writer: writer, backoff: time.Second}
}

func (p *KafkaEventPublisherImpl) Publish(ctx context.Context, eventType string, key string, data interface{}) (err error) {
	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal Kafka message: %w", err)
	}

	msg := kafka.Message{Value: jsonMsg}
	if key != "" {
		msg.Key = []byte(key)
	}

	for i := 0; i < publishMaxRetries; i++ {
		err = p.writer.WriteMessages(ctx, msg)
		if err == nil {
			return nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "Publish").Str("event_type", eventType).Int("attempt", i+1).Msg("")

		if i == publishMaxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.backoff * time.Duration(i+1)):
		}
	}

	return fmt.Errorf("failed to write Kafka message after %d attempts: %w", publishMaxRetries, err)
}

// AsyncEventPublisherImpl hands events to next on a background goroutine so
// request handlers never wait on the broker. Failures are only logged.
type AsyncEventPublisherImpl struct {
	next     EventPublisher
	inflight sync.WaitGroup
}

func CreateAsyncEventPublisher(next EventPublisher) EventPublisher {
	return &AsyncEventPublisherImpl{next: next}
}

// Publish returns immediately. The event outlives ctx cancellation but keeps
// its values, so the request logger still tags the delivery logs.
func (p *AsyncEventPublisherImpl) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	bgCtx := context.WithoutCancel(ctx)

	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		if err := p.next.Publish(bgCtx, eventType, key, data); err != nil {
			log.Ctx(bgCtx).Error().Err(err).Str("component", "AsyncPublish").Str("event_type", eventType).Msg("")
		}
	}()

	return nil
}

// Drain waits for queued events until ctx expires.
func (p *AsyncEventPublisherImpl) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("draining events: %w", ctx.Err())
	}
}

// NoopEventPublisherImpl is used when no broker is configured.
type NoopEventPublisherImpl struct{}

func CreateNoopEventPublisher() EventPublisher {
	return NoopEventPublisherImpl{}
}

func (NoopEventPublisherImpl) Publish(ctx context.Context, eventType string, key string, data interface{}) error {
	log.Ctx(ctx).Debug().Str("event_type", eventType).Msg("No broker configured, event dropped")
	return nil
}

type EventConsumerImpl struct {
	reader     MessageReader
	aggregator RatingAggregator
}

func CreateEventConsumer(reader MessageReader, aggregator RatingAggregator) EventConsumer {
	return &EventConsumerImpl{reader: reader, aggregator: aggregator}
}

// ConsumeEvent reads until ctx is cancelled or the reader is closed.
func (s *EventConsumerImpl) ConsumeEvent(ctx context.Context) {
	for {
		msg, err := s.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return
			}
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		s.handleMessage(ctx, msg)
	}
}

func (s *EventConsumerImpl) handleMessage(ctx context.Context, msg kafka.Message) {
	var receivedMsg dto.KafkaMessage
	if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
		log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
		return
	}

	switch receivedMsg.EventType {
	case dto.EventRecomputeProductRating:
		var event dto.ProductRatingEvent
		dataBytes, err := json.Marshal(receivedMsg.Data)
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			return
		}

		if err := json.Unmarshal(dataBytes, &event); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			return
		}

		if event.ProductID == "" {
			log.Warn().Str("component", "ConsumeEvent").Msg("recompute request without product_id")
			return
		}

		s.aggregator.Recompute(ctx, event.ProductID)
	default:
		log.Debug().Str("component", "ConsumeEvent").Str("event_type", receivedMsg.EventType).Msg("Ignoring event")
	}
}
