package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const deliveryQueueKey = "dispatch_events"

// Envelope - сериализованная форма события для подписчиков и очереди доставки
type Envelope struct {
	Event     string          `json:"event"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// RedisBroadcaster - реализация Broadcaster поверх Redis: PUBLISH в каналы
// подключенных сессий и LPUSH в очередь для воркера вебхуков
type RedisBroadcaster struct {
	redisClient *redis.Client
}

// NewRedisBroadcaster создает новый RedisBroadcaster
func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{
		redisClient: client,
	}
}

// Publish публикует событие в каналы реального времени и очередь доставки
func (b *RedisBroadcaster) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.Name(), err)
	}

	envelope, err := json.Marshal(Envelope{
		Event:     event.Name(),
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	for _, channel := range event.Channels() {
		if err := b.redisClient.Publish(ctx, channel, envelope).Err(); err != nil {
			return fmt.Errorf("failed to publish event to channel %s: %w", channel, err)
		}
	}

	// Используем LPUSH для добавления события в очередь доставки вебхуков
	if err := b.redisClient.LPush(ctx, deliveryQueueKey, envelope).Err(); err != nil {
		return fmt.Errorf("failed to enqueue event for delivery: %w", err)
	}
	return nil
}
