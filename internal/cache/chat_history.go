package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const chatHistoryPrefix = "crm:ai:chat:"

// ChatTurn is a single message of an AI conversation
type ChatTurn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ChatHistoryStore keeps recent AI chat turns per conversation in a capped Redis list
type ChatHistoryStore struct {
	client      *redis.Client
	ttl         time.Duration
	maxMessages int
}

// NewChatHistoryStore creates a history store keeping the last maxTurns exchanges. A turn
// is a user question plus the assistant reply, so the list holds twice as many messages.
func NewChatHistoryStore(client *redis.Client, ttl time.Duration, maxTurns int) *ChatHistoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &ChatHistoryStore{client: client, ttl: ttl, maxMessages: 2 * maxTurns}
}

// Conversations are namespaced by organization and profile so ids cannot be replayed across tenants
func (s *ChatHistoryStore) key(orgID, profileID uuid.UUID, conversationID string) string {
	return chatHistoryPrefix + orgID.String() + ":" + profileID.String() + ":" + conversationID
}

// Load returns the stored turns oldest first. A missing conversation yields an empty slice.
func (s *ChatHistoryStore) Load(ctx context.Context, orgID, profileID uuid.UUID, conversationID string) ([]ChatTurn, error) {
	raw, err := s.client.LRange(ctx, s.key(orgID, profileID, conversationID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	turns := make([]ChatTurn, 0, len(raw))
	for _, item := range raw {
		var t ChatTurn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			continue
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// Append stores messages, trims the list to the newest exchanges and refreshes the TTL
func (s *ChatHistoryStore) Append(ctx context.Context, orgID, profileID uuid.UUID, conversationID string, turns ...ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(turns))
	for _, t := range turns {
		if t.At.IsZero() {
			t.At = time.Now().UTC()
		}
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to encode chat turn: %w", err)
		}
		values = append(values, string(b))
	}

	key := s.key(orgID, profileID, conversationID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, int64(-s.maxMessages), -1)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store chat history: %w", err)
	}
	return nil
}

// Clear deletes a conversation
func (s *ChatHistoryStore) Clear(ctx context.Context, orgID, profileID uuid.UUID, conversationID string) error {
	if err := s.client.Del(ctx, s.key(orgID, profileID, conversationID)).Err(); err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}
