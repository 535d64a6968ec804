// Package pubsub publishes realtime events over redis.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	ticketusecases "studyhall/internal/application/ticket/usecases"
	"studyhall/internal/shared/logger"
)

// TicketEventChannel is the redis channel admin dashboards subscribe to.
const TicketEventChannel = "studyhall:tickets:created"

// RedisTicketPublisher publishes ticket events to the admin channel.
type RedisTicketPublisher struct {
	client *redis.Client
}

func NewRedisTicketPublisher(client *redis.Client) *RedisTicketPublisher {
	return &RedisTicketPublisher{client: client}
}

func (p *RedisTicketPublisher) PublishTicketCreated(ctx context.Context, event ticketusecases.TicketCreatedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode ticket event: %w", err)
	}
	if err := p.client.Publish(ctx, TicketEventChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish ticket event: %w", err)
	}
	return nil
}

// TicketEventSubscriber feeds ticket events to a handler until the context
// is cancelled. Used by the admin SSE endpoint.
type TicketEventSubscriber struct {
	client *redis.Client
	logger logger.Interface
}

func NewTicketEventSubscriber(client *redis.Client, logger logger.Interface) *TicketEventSubscriber {
	return &TicketEventSubscriber{client: client, logger: logger}
}

// Subscribe blocks, invoking handler for each event, until ctx is done.
func (s *TicketEventSubscriber) Subscribe(ctx context.Context, handler func(ticketusecases.TicketCreatedEvent)) error {
	sub := s.client.Subscribe(ctx, TicketEventChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event ticketusecases.TicketCreatedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				s.logger.Warnw("discarding malformed ticket event", "error", err)
				continue
			}
			handler(event)
		}
	}
}
