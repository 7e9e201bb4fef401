package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupPrefix = "crm:webhook:"

// WebhookDeduplicator remembers processed webhook deliveries so retries are acknowledged
// without being processed twice
type WebhookDeduplicator struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewWebhookDeduplicator creates a deduplicator sharing an existing client
func NewWebhookDeduplicator(client *redis.Client, ttl time.Duration) *WebhookDeduplicator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &WebhookDeduplicator{
		client:    client,
		keyPrefix: defaultDedupPrefix,
		ttl:       ttl,
	}
}

// FirstDelivery atomically marks source/deliveryID as seen. It returns false when the delivery
// was already recorded inside the TTL window.
func (d *WebhookDeduplicator) FirstDelivery(ctx context.Context, source, deliveryID string) (bool, error) {
	key := d.keyPrefix + source + ":" + deliveryID
	ok, err := d.client.SetNX(ctx, key, "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record webhook delivery: %w", err)
	}
	return ok, nil
}

// Forget drops a delivery marker so a failed delivery can be retried by the sender
func (d *WebhookDeduplicator) Forget(ctx context.Context, source, deliveryID string) error {
	if err := d.client.Del(ctx, d.keyPrefix+source+":"+deliveryID).Err(); err != nil {
		return fmt.Errorf("failed to forget webhook delivery: %w", err)
	}
	return nil
}
