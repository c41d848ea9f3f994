// Package pubsub broadcasts order events over redis so every server
// instance can push updates to its own websocket clients.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const ChannelOrderEvents = "order_events"

// OrderEvent is published whenever an order is created or changes status.
type OrderEvent struct {
	Type         string `json:"type"`
	OrderID      int64  `json:"order_id"`
	CustomerID   int64  `json:"customer_id"`
	RestaurantID int64  `json:"restaurant_id"`
	Status       string `json:"status"`
	PickupToken  string `json:"pickup_token,omitempty"`
}

type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishOrderEvent pushes an event onto the shared channel.
func (p *Publisher) PublishOrderEvent(ctx context.Context, event *OrderEvent) error {
	if event.Type == "" {
		event.Type = "order_update"
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	return p.client.Publish(ctx, ChannelOrderEvents, data).Err()
}

type Subscriber struct {
	client *redis.Client
}

func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe blocks, invoking handler for each order event until ctx ends.
func (s *Subscriber) Subscribe(ctx context.Context, handler func(*OrderEvent)) error {
	sub := s.client.Subscribe(ctx, ChannelOrderEvents)
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

			var event OrderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue // skip undecodable payloads
			}

			handler(&event)
		}
	}
}
