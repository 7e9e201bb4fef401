package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"crm-backend/internal/logger"
	"crm-backend/internal/metrics"
)

// Webhook outcomes reported to callers and metrics
const (
	WebhookProcessed = "processed"
	WebhookDuplicate = "duplicate"
	WebhookIgnored   = "ignored"
	WebhookFailed    = "failed"
	WebhookRejected  = "rejected"
)

// SignHMACSHA256 returns the "sha256=<hex>" signature of payload
func SignHMACSHA256(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// verifyHMACSHA256 checks a "sha256=<hex>" (or bare hex) signature of payload
func verifyHMACSHA256(secret string, payload []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	signature = strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(got, mac.Sum(nil))
}

// secretsEqual compares shared secrets in constant time; empty secrets never match
func secretsEqual(expected, provided string) bool {
	if expected == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}

// deliveryGuard wraps the optional deduplicator used by webhook receivers
type deliveryGuard struct {
	source  string
	dedup   WebhookDeduplicator
	metrics *metrics.Registry
}

// claim reports whether the delivery should be processed. Without a deduplicator, or when
// Redis fails, every delivery is processed.
func (g deliveryGuard) claim(ctx context.Context, deliveryID string) bool {
	if g.dedup == nil || deliveryID == "" {
		return true
	}
	first, err := g.dedup.FirstDelivery(ctx, g.source, deliveryID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).WithField("source", g.source).Warn("Webhook de-duplication unavailable")
		return true
	}
	return first
}

// release lets the sender retry a delivery whose processing failed
func (g deliveryGuard) release(ctx context.Context, deliveryID string) {
	if g.dedup == nil || deliveryID == "" {
		return
	}
	if err := g.dedup.Forget(ctx, g.source, deliveryID); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("source", g.source).Warn("Failed to release webhook delivery")
	}
}

func (g deliveryGuard) observe(outcome string) {
	g.metrics.ObserveWebhook(g.source, outcome)
}
